package arr

import (
	"cmp"
	"errors"
	"iter"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// ErrTooFewLists is returned by [ZipAll] when fewer than two slices are given.
var ErrTooFewLists = errors.New("arr: at least two lists are required")

// ─────────────────────────────────────────────────────────────────────────────
// Positional access
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element.
// Returns the zero value and false when items is empty.
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}

// Last returns the last element.
// Returns the zero value and false when items is empty.
func Last[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[len(items)-1], true
}

// Middle returns the element closest to the centre of items.
//
// For an even number of elements there are two candidates; weightedToFront
// picks the one nearer the start, otherwise the one nearer the end. With two
// elements that means the first or the last. Returns the zero value and
// false when items is empty.
func Middle[T any](items []T, weightedToFront bool) (T, bool) {
	var zero T
	n := len(items)
	switch {
	case n == 0:
		return zero, false
	case n%2 != 0:
		return items[n/2], true
	case weightedToFront:
		return items[n/2-1], true
	default:
		return items[n/2], true
	}
}

// FirstMatch returns the first element for which fn(item, index) is true.
func FirstMatch[T any](items []T, fn func(T, int) bool) (T, bool) {
	for i, item := range items {
		if fn(item, i) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Removing & adding
// ─────────────────────────────────────────────────────────────────────────────

// Pop removes up to n elements from the end of items. It returns the
// remaining elements and the removed ones in the order they were popped
// (last element first).
//
//	rest, popped := arr.Pop([]int{1, 2, 3, 4}, 2) // → [1 2], [4 3]
func Pop[T any](items []T, n int) (rest, popped []T) {
	n = min(max(n, 0), len(items))
	cut := len(items) - n
	return slices.Clone(items[:cut]), lo.Reverse(slices.Clone(items[cut:]))
}

// Shift removes up to n elements from the start of items. It returns the
// remaining elements and the removed ones in their original order.
//
//	rest, shifted := arr.Shift([]int{1, 2, 3, 4}, 2) // → [3 4], [1 2]
func Shift[T any](items []T, n int) (rest, shifted []T) {
	n = min(max(n, 0), len(items))
	return slices.Clone(items[n:]), slices.Clone(items[:n])
}

// AddConstrain appends value and, when the result holds more than maxItems
// elements, drops elements from the front until it fits. A non-positive
// maxItems yields an empty slice.
//
//	arr.AddConstrain([]int{1, 2, 3}, 4, 3) // → [2 3 4]
func AddConstrain[T any](items []T, value T, maxItems int) []T {
	out := append(slices.Clone(items), value)
	if maxItems <= 0 {
		return out[:0]
	}
	if extra := len(out) - maxItems; extra > 0 {
		out = out[extra:]
	}
	return out
}

// Prune returns items without any element equal to empty.
//
//	arr.Prune([]string{"a", "", "b"}, "") // → [a b]
func Prune[T comparable](items []T, empty T) []T {
	return lo.Without(items, empty)
}

// Compact returns items without zero-value elements (nil, "", 0, …).
func Compact[T comparable](items []T) []T {
	return lo.Compact(items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & Randomisation
// ─────────────────────────────────────────────────────────────────────────────

// Sorted returns an ascending copy of items.
func Sorted[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)
	return out
}

// RSorted returns a descending copy of items.
func RSorted[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}

// Choose returns a random element of items.
// Returns the zero value and false when items is empty.
func Choose[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return lo.Sample(items), true
}

// Sample returns n random integers in the closed range [low, high].
// The bounds may be given in either order. A non-positive n yields an empty
// slice.
func Sample(low, high, n int) []int {
	if low > high {
		low, high = high, low
	}
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = low + rand.IntN(high-low+1)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Zip yields one slice per index, holding the element at that index of each
// list. Iteration runs to the length of the longest list; shorter lists
// contribute the zero value.
//
// Each yielded slice is freshly allocated and may be retained.
func Zip[T any](lists ...[]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		longest := 0
		for _, l := range lists {
			longest = max(longest, len(l))
		}
		for i := 0; i < longest; i++ {
			values := make([]T, len(lists))
			for j, l := range lists {
				if i < len(l) {
					values[j] = l[i]
				}
			}
			if !yield(values) {
				return
			}
		}
	}
}

// ZipAll yields every combination of one value from each list, the last
// list varying fastest.
//
//	seq, _ := arr.ZipAll([]string{"a", "b"}, []string{"1", "2"})
//	// yields [a 1] [a 2] [b 1] [b 2]
//
// Returns [ErrTooFewLists] when fewer than two lists are given.
func ZipAll[T any](lists ...[]T) (iter.Seq[[]T], error) {
	if len(lists) < 2 {
		return nil, ErrTooFewLists
	}
	return func(yield func([]T) bool) {
		var walk func(depth int, current []T) bool
		walk = func(depth int, current []T) bool {
			if depth == len(lists) {
				return yield(slices.Clone(current))
			}
			for _, v := range lists[depth] {
				if !walk(depth+1, append(current, v)) {
					return false
				}
			}
			return true
		}
		walk(0, make([]T, 0, len(lists)))
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Testing
// ─────────────────────────────────────────────────────────────────────────────

// Any reports whether items contains value.
func Any[T comparable](items []T, value T) bool {
	return lo.Contains(items, value)
}

// AnyFunc reports whether at least one element satisfies fn.
func AnyFunc[T any](items []T, fn func(T) bool) bool {
	return lo.SomeBy(items, fn)
}

// All reports whether every element equals value. It is true for an empty
// slice.
func All[T comparable](items []T, value T) bool {
	return lo.EveryBy(items, func(item T) bool { return item == value })
}

// AllFunc reports whether every element satisfies fn.
func AllFunc[T any](items []T, fn func(T) bool) bool {
	return lo.EveryBy(items, fn)
}

// StartsWith reports whether the first element equals value.
func StartsWith[T comparable](items []T, value T) bool {
	first, ok := First(items)
	return ok && first == value
}

// EndsWith reports whether the last element equals value.
func EndsWith[T comparable](items []T, value T) bool {
	last, ok := Last(items)
	return ok && last == value
}

// ─────────────────────────────────────────────────────────────────────────────
// Joining
// ─────────────────────────────────────────────────────────────────────────────

// Encapsulate wraps every element's string form in start and end tokens.
// With no end token, start is used on both sides.
//
//	arr.Encapsulate([]int{1, 2}, "'") // → ['1' '2']
func Encapsulate[T any](items []T, start string, end ...string) []string {
	closing := start
	if len(end) > 0 {
		closing = end[0]
	}
	return lo.Map(items, func(item T, _ int) string {
		return start + cast.ToString(item) + closing
	})
}

// Implode joins the string forms of items with delimiter.
// Nested []any elements are joined with the same delimiter.
func Implode[T any](delimiter string, items []T) string {
	return strings.Join(lo.Map(items, func(item T, _ int) string {
		if nested, ok := any(item).([]any); ok {
			return Implode(delimiter, nested)
		}
		return cast.ToString(item)
	}), delimiter)
}

// ImplodeAssoc joins the key/value pairs of m as "key<kv>value" separated by
// delimiter, in ascending key order.
//
//	arr.ImplodeAssoc(", ", map[string]int{"b": 2, "a": 1}, "=") // → "a=1, b=2"
func ImplodeAssoc[V any](delimiter string, m map[string]V, kv string) string {
	keys := Sorted(lo.Keys(m))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + kv + cast.ToString(m[k])
	}
	return strings.Join(parts, delimiter)
}

// Values returns the values of m under keys, in key order, skipping keys
// that are absent.
func Values[K comparable, V any](m map[K]V, keys ...K) []V {
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out = append(out, v)
		}
	}
	return out
}

// ImplodeOnly joins the non-empty values of m under keys with delimiter.
func ImplodeOnly[V any](delimiter string, m map[string]V, keys ...string) string {
	strs := lo.Map(Values(m, keys...), func(v V, _ int) string { return cast.ToString(v) })
	return strings.Join(lo.Compact(strs), delimiter)
}
