// Package varying projects records down to the fields that matter when
// comparing many similar definitions side by side.
package varying

import (
	"sync"

	"github.com/google/go-cmp/cmp"

	"github.com/vk/defpeek/internal/recordstore"
)

// Projection maps one record to a reduced record. Nil records stay nil.
type Projection func(rec recordstore.Record) recordstore.Record

// FilterKeys keeps only the listed fields that are present on a record.
func FilterKeys(keys ...string) Projection {
	return func(rec recordstore.Record) recordstore.Record {
		if rec == nil {
			return nil
		}
		out := make(recordstore.Record, len(keys))
		for _, k := range keys {
			if v, ok := rec[k]; ok {
				out[k] = v
			}
		}
		return out
	}
}

// RemoveKeys drops the listed fields from a copy of a record.
func RemoveKeys(keys ...string) Projection {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	return func(rec recordstore.Record) recordstore.Record {
		if rec == nil {
			return nil
		}
		out := make(recordstore.Record, len(rec))
		for k, v := range rec {
			if !drop[k] {
				out[k] = v
			}
		}
		return out
	}
}

// Keys returns the fields that differ between any two neighbouring non-nil
// records, treating the list as a ring so the last record is compared with
// the first. Values are compared structurally. A field missing on one side
// differs from every value on the other, null included.
func Keys(records []recordstore.Record) map[string]bool {
	present := make([]recordstore.Record, 0, len(records))
	for _, r := range records {
		if r != nil {
			present = append(present, r)
		}
	}
	keys := make(map[string]bool)
	if len(present) <= 1 {
		return keys
	}
	for i, cur := range present {
		next := present[(i+1)%len(present)]
		for k, v := range cur {
			nv, ok := next[k]
			if !ok || !cmp.Equal(v, nv) {
				keys[k] = true
			}
		}
	}
	return keys
}

// Differ decides once which fields vary across a set of records and then
// projects each record to those fields plus the always-kept ones.
type Differ struct {
	keep []string
	once sync.Once
	proj Projection
}

// NewDiffer creates a Differ that always keeps the listed fields.
func NewDiffer(keep ...string) *Differ {
	return &Differ{keep: keep}
}

// Project reduces rec. The set of varying fields is computed from all on the
// first call and reused for every later call, whatever all is then.
func (d *Differ) Project(rec recordstore.Record, all []recordstore.Record) recordstore.Record {
	d.once.Do(func() {
		d.proj = d.decide(all)
	})
	return d.proj(rec)
}

func (d *Differ) decide(all []recordstore.Record) Projection {
	n := 0
	for _, r := range all {
		if r != nil {
			n++
		}
	}
	if n <= 1 {
		return func(rec recordstore.Record) recordstore.Record {
			if rec == nil {
				return nil
			}
			return recordstore.Record{}
		}
	}

	keys := append([]string(nil), d.keep...)
	for k := range Keys(all) {
		keys = append(keys, k)
	}
	return FilterKeys(keys...)
}

// Project applies a fresh Differ to every record of records.
func Project(records []recordstore.Record, keep ...string) []recordstore.Record {
	d := NewDiffer(keep...)
	out := make([]recordstore.Record, len(records))
	for i, r := range records {
		out[i] = d.Project(r, records)
	}
	return out
}
