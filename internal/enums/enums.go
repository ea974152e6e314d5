// Package enums turns raw enum definitions into key to value mappings that
// remember the declared key and value types.
package enums

import (
	"fmt"

	"github.com/vk/defpeek/internal/recordstore"
)

// StringType is the value type tag that selects the string value array.
const StringType = "STRING"

// Definition is one raw enum definition as stored on disk.
type Definition struct {
	ID            int64
	KeyType       string
	ValType       string
	Keys          []any
	IntVals       []any
	StringVals    []any
	DefaultInt    any
	DefaultString any
}

// DefinitionFromRecord reads the enum fields out of a generic record.
func DefinitionFromRecord(rec recordstore.Record) (Definition, error) {
	id, ok := rec.ID()
	if !ok {
		return Definition{}, fmt.Errorf("enum definition has no integer id")
	}
	def := Definition{
		ID:            id,
		DefaultInt:    rec["defaultInt"],
		DefaultString: rec["defaultString"],
	}
	def.KeyType, _ = rec["keyType"].(string)
	def.ValType, _ = rec["valType"].(string)

	var err error
	if def.Keys, err = array(rec, "keys"); err != nil {
		return Definition{}, fmt.Errorf("enum %d: %w", id, err)
	}
	if def.IntVals, err = array(rec, "intVals"); err != nil {
		return Definition{}, fmt.Errorf("enum %d: %w", id, err)
	}
	if def.StringVals, err = array(rec, "stringVals"); err != nil {
		return Definition{}, fmt.Errorf("enum %d: %w", id, err)
	}
	return def, nil
}

func array(rec recordstore.Record, field string) ([]any, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return nil, nil
	}
	a, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("field %q is %T, not an array", field, v)
	}
	return a, nil
}

// Entry is one key and its resolved value.
type Entry struct {
	Key   any
	Value any
}

// Materialized is an enum's key to value mapping along with its declared types.
type Materialized struct {
	ID      int64
	KeyType string
	ValType string
	Entries []Entry

	index map[any]int
}

// Get returns the value stored under key.
func (m *Materialized) Get(key any) (any, bool) {
	i, ok := m.index[indexKey(key)]
	if !ok {
		return nil, false
	}
	return m.Entries[i].Value, true
}

// Len is the number of distinct keys.
func (m *Materialized) Len() int {
	return len(m.Entries)
}

// indexKey folds integer shapes to int64 and anything unhashable to its
// printed form.
func indexKey(key any) any {
	if k, ok := recordstore.AsInt(key); ok {
		return k
	}
	switch key.(type) {
	case string, bool, float64, nil:
		return key
	default:
		return fmt.Sprint(key)
	}
}

// Materialize resolves every key of def to its positional value, or to the
// default when the value array has no element at that position. A present
// element always wins, including 0 and "". JSON null counts as absent.
func Materialize(def Definition) *Materialized {
	values, fallback := def.IntVals, def.DefaultInt
	if def.ValType == StringType {
		values, fallback = def.StringVals, def.DefaultString
	}

	m := &Materialized{
		ID:      def.ID,
		KeyType: def.KeyType,
		ValType: def.ValType,
		Entries: make([]Entry, 0, len(def.Keys)),
		index:   make(map[any]int, len(def.Keys)),
	}
	for i, key := range def.Keys {
		v := fallback
		if i < len(values) && values[i] != nil {
			v = values[i]
		}
		key = indexKey(key)
		if pos, seen := m.index[key]; seen {
			m.Entries[pos].Value = v
			continue
		}
		m.index[key] = len(m.Entries)
		m.Entries = append(m.Entries, Entry{Key: key, Value: v})
	}
	return m
}

// MaterializeAll materializes every enum in a raw enum collection, keyed by id.
func MaterializeAll(raw *recordstore.Collection) (map[int64]*Materialized, error) {
	out := make(map[int64]*Materialized, raw.Count())
	for _, rec := range raw.Present() {
		def, err := DefinitionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		out[def.ID] = Materialize(def)
	}
	return out, nil
}
