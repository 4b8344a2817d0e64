// Package arr provides standalone helper functions for Go slices and
// dot-notation map access, aimed at keeping data-shaping code readable.
//
// # Slice helpers
//
// All slice helpers are generic and operate on plain []T values. None of
// them modify their input; every result is a fresh slice:
//
//	mid, _       := arr.Middle([]int{1, 2, 3, 4, 5}, true) // → 3
//	rest, popped := arr.Pop([]int{1, 2, 3, 4}, 2)          // → [1 2], [4 3]
//	recent       := arr.AddConstrain(history, event, 10)   // keeps the last 10
//	sorted       := arr.Sorted([]string{"b", "a"})         // → [a b]
//
// # Iteration helpers
//
// [Zip] walks several slices in lock-step and [ZipAll] walks every
// combination of their values; both return an iter.Seq:
//
//	for vs := range arr.Zip([]int{1, 2}, []int{10, 20, 30}) {
//	    fmt.Println(vs) // [1 10], [2 20], [0 30]
//	}
//
// # Dot-notation map access
//
// Functions in this package also read and write values in nested
// map[string]any structures using dot notation:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "age":  "42",
//	    },
//	}
//	arr.Get(m, "user.name")          // → "Alice"
//	arr.GetInt(m, "user.age")        // → 42
//	arr.Get(m, "user.city", "Paris") // → "Paris"
//	arr.Set(m, "user.address.city", "London")
package arr
