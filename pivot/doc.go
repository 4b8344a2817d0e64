// Package pivot groups uniform records into ordered bucket trees and
// reshapes vertical record sets into wide pivot tables.
//
// # Records
//
// Grouping and pivoting are agnostic to how a row is stored. Anything that
// implements [Record] can be fed in; three implementations ship with the
// package:
//
//   - [Map]: a plain map[string]any (fields enumerate in lexical order)
//   - [Row]: an insertion-ordered record, also the output type of [Transpose]
//   - [Tuple]: a positional []any addressed by "0", "1", …
//
// # Grouping
//
// [GroupBy] partitions records into a [Tree] of buckets keyed by one or more
// fields. The scan is a single left-to-right pass: a bucket is closed when a
// run of consecutive records sharing the active key value ends. Input must
// therefore be pre-sorted by the key path; use [SortBy] first when it is not:
//
//	sorted := pivot.SortBy(records, "decade", "character")
//	tree, err := pivot.GroupBy(sorted, []string{"decade", "character"}, false)
//
// Records whose key value is empty (nil, false, zero, "" or "0") are dropped
// unless keepEmptyKeys is set.
//
// # Transposition
//
// [Transpose] turns one row per (group, spread value) into one row per group
// with a column per distinct spread value:
//
//	rows, err := pivot.Transpose(sorted, "decade", pivot.Merge("character", "appearances"))
//	// decade  A  B
//	// 1970    1  ""
//	// 1980    2  1
//
// With a single spread pair every output row carries the same column set:
// spread values a group never saw are filled with [Placeholder].
//
// # Purity
//
// All functions return freshly built values and never mutate their input,
// so they are safe to call concurrently on independent inputs.
package pivot
