package pivot

import (
	"cmp"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// keyString converts a scalar to the string used for bucket keys and
// spread column names. nil becomes "".
func keyString(v any) string {
	return cast.ToString(v)
}

// isEmpty reports whether a key value is considered empty for grouping:
// nil, false, numeric zero, "" and "0".
func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == "" || x == "0"
	case bool:
		return !x
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f == 0
	}
	return false
}

// Compare orders two scalar values.
//
// When a is a string both sides compare lexically. Otherwise both sides are
// converted to float64 and compared numerically, falling back to a lexical
// comparison of their string forms when either side is not numeric.
// nil compares as zero.
func Compare(a, b any) int {
	if as, ok := a.(string); ok {
		return strings.Compare(as, cast.ToString(b))
	}
	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return cmp.Compare(af, bf)
	}
	return strings.Compare(cast.ToString(a), cast.ToString(b))
}

// compareFields compares a and b field by field, stopping at the first
// field that differs.
func compareFields(a, b Record, fields []string) int {
	for _, f := range fields {
		av, _ := a.Get(f)
		bv, _ := b.Get(f)
		if r := Compare(av, bv); r != 0 {
			return r
		}
	}
	return 0
}

// SortBy returns a copy of records stably sorted in ascending order by the
// given fields, in priority order. A missing field compares as nil.
//
// It is the usual preparation step for [GroupBy] and [Transpose]:
//
//	sorted := pivot.SortBy(records, "decade")
func SortBy(records []Record, fields ...string) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return compareFields(out[i], out[j], fields) < 0
	})
	return out
}

// SortByDesc is like [SortBy] but sorts in descending order.
func SortByDesc(records []Record, fields ...string) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return compareFields(out[i], out[j], fields) > 0
	})
	return out
}
