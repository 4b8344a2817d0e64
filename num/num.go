// Package num provides small numeric helpers: clamping, range checks and
// integer sequences.
package num

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bound is an optional limit. The zero value is unbounded.
type Bound[T Number] struct {
	Value T
	Set   bool
}

// At returns a Bound set to v.
func At[T Number](v T) Bound[T] { return Bound[T]{Value: v, Set: true} }

// Constrain clips value to [min, max]. The maximum is applied first, so when
// min > max the result is min.
func Constrain[T Number](value, min, max T) T {
	return ConstrainBounds(value, At(min), At(max))
}

// ConstrainBounds is [Constrain] with optional bounds; an unset bound is
// not applied.
func ConstrainBounds[T Number](value T, min, max Bound[T]) T {
	if max.Set && value > max.Value {
		value = max.Value
	}
	if min.Set && value < min.Value {
		value = min.Value
	}
	return value
}

// IsWithin reports whether min <= value <= max.
func IsWithin[T Number](value, min, max T) bool {
	return IsWithinBounds(value, At(min), At(max))
}

// IsWithinBounds is [IsWithin] with optional bounds. With neither bound set
// every value is within.
func IsWithinBounds[T Number](value T, min, max Bound[T]) bool {
	if max.Set && value > max.Value {
		return false
	}
	if min.Set && value < min.Value {
		return false
	}
	return true
}

// Sequence yields start, start+step, … up to and including end.
// A non-positive step yields nothing.
//
//	for i := range num.Sequence(0, 10, 5) {
//	    fmt.Println(i) // 0, 5, 10
//	}
func Sequence(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step <= 0 {
			return
		}
		for i := start; i <= end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// SequenceTo yields every integer between 0 and n inclusive, ascending:
// 0…n for positive n and n…0 for negative n.
func SequenceTo(n int) iter.Seq[int] {
	if n < 0 {
		return Sequence(n, 0, 1)
	}
	return Sequence(0, n, 1)
}
