package recordstore

import (
	"encoding/json"
	"sort"
)

// Record is a single definition: field name to scalar, nested object or array.
type Record map[string]any

// Int returns the named field as an int64 when it holds an integer.
func (r Record) Int(field string) (int64, bool) {
	return AsInt(r[field])
}

// ID returns the record's embedded "id" field.
func (r Record) ID() (int64, bool) {
	return r.Int("id")
}

// Name returns the record's "name" field, or "" when absent or not a string.
func (r Record) Name() string {
	s, _ := r["name"].(string)
	return s
}

// Has reports whether field is present, even when it holds null.
func (r Record) Has(field string) bool {
	_, ok := r[field]
	return ok
}

// Keys returns the record's field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsInt converts the numeric shapes a record can hold into an int64.
func AsInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	}
	return 0, false
}

// normalize rewrites json.Number leaves into int64 or float64 and nested
// objects into plain maps.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}
