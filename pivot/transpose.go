package pivot

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Placeholder fills the cells of spread values a group never saw.
const Placeholder = ""

// Spread names one (spread field → value field) pair of a [MergeMap].
// Distinct values of Field become column names; Value supplies the cells.
type Spread struct {
	Field string
	Value string
}

// MergeMap is the ordered list of spread pairs consumed by [Transpose].
type MergeMap []Spread

// Merge returns a MergeMap holding the single pair field → value.
func Merge(field, value string) MergeMap {
	return MergeMap{{Field: field, Value: value}}
}

// And returns a copy of m with the pair field → value appended.
func (m MergeMap) And(field, value string) MergeMap {
	out := make(MergeMap, len(m), len(m)+1)
	copy(out, m)
	return append(out, Spread{Field: field, Value: value})
}

// ParseMergeMap builds a MergeMap from "field=value" pairs.
//
//	m, err := pivot.ParseMergeMap("character=appearances")
func ParseMergeMap(pairs ...string) (MergeMap, error) {
	out := make(MergeMap, 0, len(pairs))
	for _, p := range pairs {
		field, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: merge pair %q must have the form field=value", ErrInvalidArgument, p)
		}
		out = append(out, Spread{Field: strings.TrimSpace(field), Value: strings.TrimSpace(value)})
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func (m MergeMap) validate() error {
	if len(m) == 0 {
		return fmt.Errorf("%w: merge map must not be empty", ErrInvalidArgument)
	}
	seen := make(map[string]struct{}, len(m))
	for _, s := range m {
		if s.Field == "" || s.Value == "" {
			return fmt.Errorf("%w: merge pair %q=%q has an empty name", ErrInvalidArgument, s.Field, s.Value)
		}
		if _, dup := seen[s.Field]; dup {
			return fmt.Errorf("%w: spread field %q appears twice", ErrInvalidArgument, s.Field)
		}
		seen[s.Field] = struct{}{}
	}
	return nil
}

// names returns the set of every spread and value field in m.
func (m MergeMap) names() map[string]struct{} {
	out := make(map[string]struct{}, 2*len(m))
	for _, s := range m {
		out[s.Field] = struct{}{}
		out[s.Value] = struct{}{}
	}
	return out
}

// Distinct returns the distinct stringified values of field across records,
// in first-seen order. A missing field contributes "".
func Distinct(records []Record, field string) []string {
	values := make([]string, len(records))
	for i, rec := range records {
		v, _ := rec.Get(field)
		values[i] = keyString(v)
	}
	return lo.Uniq(values)
}

// Transpose reshapes vertical records into one [Row] per distinct value of
// groupField.
//
// Each row starts with groupField set to the group's key value. For every
// record of the group and every pair of merge, the record's spread value
// becomes a column holding its value field; a later record overwrites an
// earlier one for the same column. Columns are then padded with
// [Placeholder] so every row covers the spread values seen anywhere in the
// input, and finally any other field of the group's first record is copied
// through unless the row already has it.
//
// Records must be pre-sorted by groupField, as for [GroupBy]. Empty key
// values are kept as their own group.
//
// When merge holds more than one pair, only the distinct values of the last
// spread field are used for padding, so rows may differ in the columns
// produced by earlier spread fields.
//
// Returns [ErrInvalidArgument] for an empty groupField or an empty or
// malformed merge map.
func Transpose(records []Record, groupField string, merge MergeMap) ([]*Row, error) {
	if groupField == "" {
		return nil, fmt.Errorf("%w: group field must not be empty", ErrInvalidArgument)
	}
	if err := merge.validate(); err != nil {
		return nil, err
	}

	universe := make(map[string][]string, len(merge))
	for _, s := range merge {
		universe[s.Field] = Distinct(records, s.Field)
	}
	padding := universe[merge[len(merge)-1].Field]
	reserved := merge.names()

	tree := group(records, []string{groupField}, true)
	rows := make([]*Row, 0, tree.Len())

	for _, b := range tree.buckets {
		row := NewRow()
		row.Set(groupField, b.Value)

		for _, rec := range b.Records {
			for _, s := range merge {
				col, _ := rec.Get(s.Field)
				val, _ := rec.Get(s.Value)
				row.Set(keyString(col), val)
			}
		}

		for _, col := range padding {
			if !row.Has(col) {
				row.Set(col, Placeholder)
			}
		}

		first := b.Records[0]
		for _, f := range first.Fields() {
			if _, skip := reserved[f]; skip || row.Has(f) {
				continue
			}
			v, _ := first.Get(f)
			row.Set(f, v)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// Columns returns the union of the rows' columns in first-seen order,
// suitable as the header list of a rendered table.
func Columns(rows []*Row) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range rows {
		for _, f := range r.Fields() {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}
