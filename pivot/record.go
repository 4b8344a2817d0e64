package pivot

import (
	"sort"
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is a read-only row of named scalar fields.
//
// Get reports the value stored under field and whether the field exists.
// Fields enumerates the field names in the record's natural order; it drives
// the pass-through columns of [Transpose].
type Record interface {
	Get(field string) (any, bool)
	Fields() []string
}

// Records converts a slice of any concrete Record type to []Record.
//
//	rows := pivot.Records([]pivot.Map{{"a": 1}, {"a": 2}})
func Records[R Record](items []R) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// FromMaps wraps each map as a [Map] record. The maps are not copied.
func FromMaps(items []map[string]any) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		out[i] = Map(item)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// Map is a Record backed by a plain Go map.
// Because Go maps are unordered, Fields returns the keys sorted lexically.
type Map map[string]any

// Get implements [Record].
func (m Map) Get(field string) (any, bool) {
	v, ok := m[field]
	return v, ok
}

// Fields implements [Record].
func (m Map) Fields() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// Tuple
// ─────────────────────────────────────────────────────────────────────────────

// Tuple is a positional Record. Field names are decimal indexes.
//
//	pivot.Tuple{"A", 1970}.Get("1") // → 1970, true
type Tuple []any

// Get implements [Record].
func (t Tuple) Get(field string) (any, bool) {
	i, err := strconv.Atoi(field)
	if err != nil || i < 0 || i >= len(t) {
		return nil, false
	}
	return t[i], true
}

// Fields implements [Record].
func (t Tuple) Fields() []string {
	out := make([]string, len(t))
	for i := range t {
		out[i] = strconv.Itoa(i)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Row
// ─────────────────────────────────────────────────────────────────────────────

// Row is an insertion-ordered Record. It is the row type produced by
// [Transpose] and marshals to a JSON object with its columns in order.
//
// The zero value is ready to use.
type Row struct {
	m *orderedmap.OrderedMap[string, any]
}

// NewRow returns a Row populated from alternating field/value pairs.
// A trailing field without a value is stored as nil.
//
//	pivot.NewRow("decade", 1970, "A", 1)
func NewRow(pairs ...any) *Row {
	r := &Row{m: orderedmap.New[string, any]()}
	for i := 0; i < len(pairs); i += 2 {
		var v any
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		r.Set(keyString(pairs[i]), v)
	}
	return r
}

func (r *Row) store() *orderedmap.OrderedMap[string, any] {
	if r.m == nil {
		r.m = orderedmap.New[string, any]()
	}
	return r.m
}

// Get implements [Record].
func (r *Row) Get(field string) (any, bool) {
	if r == nil || r.m == nil {
		return nil, false
	}
	return r.m.Get(field)
}

// Has reports whether field is present.
func (r *Row) Has(field string) bool {
	_, ok := r.Get(field)
	return ok
}

// Set stores value under field. An existing field keeps its position.
// Returns r for chaining.
func (r *Row) Set(field string, value any) *Row {
	r.store().Set(field, value)
	return r
}

// Len returns the number of columns.
func (r *Row) Len() int {
	if r == nil || r.m == nil {
		return 0
	}
	return r.m.Len()
}

// Fields implements [Record], returning columns in insertion order.
func (r *Row) Fields() []string {
	if r == nil || r.m == nil {
		return []string{}
	}
	out := make([]string, 0, r.m.Len())
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Map returns an unordered copy of the row.
func (r *Row) Map() map[string]any {
	out := make(map[string]any, r.Len())
	if r == nil || r.m == nil {
		return out
	}
	for p := r.m.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value
	}
	return out
}

// MarshalJSON encodes the row as a JSON object, preserving column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	return r.store().MarshalJSON()
}

// UnmarshalJSON decodes a JSON object into the row, preserving key order.
func (r *Row) UnmarshalJSON(data []byte) error {
	return r.store().UnmarshalJSON(data)
}
