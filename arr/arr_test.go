package arr_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/hasbyte1/go-shape-utils/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── First / Last / Middle ────────────────────────────────────────────────────

func TestFirstLast(t *testing.T) {
	if v, ok := arr.First([]int{10, 20, 30}); !ok || v != 10 {
		t.Fatalf("First = %v, %v; want 10, true", v, ok)
	}
	if v, ok := arr.Last([]int{10, 20, 30}); !ok || v != 30 {
		t.Fatalf("Last = %v, %v; want 30, true", v, ok)
	}
	if _, ok := arr.First([]int{}); ok {
		t.Fatal("First on empty should return false")
	}
	if _, ok := arr.Last[int](nil); ok {
		t.Fatal("Last on nil should return false")
	}
}

func TestMiddle(t *testing.T) {
	tests := []struct {
		items []int
		front bool
		want  int
	}{
		{[]int{1}, true, 1},
		{[]int{1, 2}, true, 1},
		{[]int{1, 2}, false, 2},
		{[]int{1, 2, 3, 4, 5}, true, 3},
		{[]int{1, 2, 3, 4, 5}, false, 3},
		{[]int{1, 2, 3, 4}, true, 2},
		{[]int{1, 2, 3, 4}, false, 3},
	}
	for _, tc := range tests {
		got, ok := arr.Middle(tc.items, tc.front)
		if !ok || got != tc.want {
			t.Errorf("Middle(%v, %v) = %v, %v; want %v", tc.items, tc.front, got, ok, tc.want)
		}
	}
	if _, ok := arr.Middle([]int{}, true); ok {
		t.Error("Middle on empty should return false")
	}
}

func TestFirstMatch(t *testing.T) {
	v, ok := arr.FirstMatch([]int{1, 2, 3, 4}, func(n, _ int) bool { return n > 2 })
	if !ok || v != 3 {
		t.Fatalf("FirstMatch = %v, %v; want 3, true", v, ok)
	}
	if _, ok := arr.FirstMatch([]int{1}, func(n, _ int) bool { return n > 2 }); ok {
		t.Fatal("FirstMatch should return false without a match")
	}
}

// ─── Pop / Shift / AddConstrain ───────────────────────────────────────────────

func TestPop(t *testing.T) {
	in := []int{1, 2, 3, 4}
	rest, popped := arr.Pop(in, 2)
	assertSlice(t, rest, []int{1, 2})
	assertSlice(t, popped, []int{4, 3})
	assertSlice(t, in, []int{1, 2, 3, 4})

	rest, popped = arr.Pop(in, 10)
	assertSlice(t, rest, []int{})
	assertSlice(t, popped, []int{4, 3, 2, 1})
}

func TestShift(t *testing.T) {
	rest, shifted := arr.Shift([]int{1, 2, 3, 4}, 2)
	assertSlice(t, rest, []int{3, 4})
	assertSlice(t, shifted, []int{1, 2})

	rest, shifted = arr.Shift([]int{1, 2}, -1)
	assertSlice(t, rest, []int{1, 2})
	assertSlice(t, shifted, []int{})
}

func TestAddConstrain(t *testing.T) {
	in := []int{1, 2, 3}
	assertSlice(t, arr.AddConstrain(in, 4, 3), []int{2, 3, 4})
	assertSlice(t, arr.AddConstrain(in, 4, 10), []int{1, 2, 3, 4})
	assertSlice(t, arr.AddConstrain(in, 4, 0), []int{})
	assertSlice(t, in, []int{1, 2, 3})
}

// ─── Prune / Compact ──────────────────────────────────────────────────────────

func TestPrune(t *testing.T) {
	assertSlice(t, arr.Prune([]string{"a", "", "b", ""}, ""), []string{"a", "b"})
	assertSlice(t, arr.Prune([]int{1, -1, 2}, -1), []int{1, 2})
}

func TestCompact(t *testing.T) {
	assertSlice(t, arr.Compact([]string{"a", "", "b"}), []string{"a", "b"})
	assertSlice(t, arr.Compact([]int{0, 1, 0, 2}), []int{1, 2})
}

// ─── Sorting & Randomisation ──────────────────────────────────────────────────

func TestSorted(t *testing.T) {
	in := []int{3, 1, 2}
	assertSlice(t, arr.Sorted(in), []int{1, 2, 3})
	assertSlice(t, arr.RSorted(in), []int{3, 2, 1})
	assertSlice(t, in, []int{3, 1, 2})
}

func TestChoose(t *testing.T) {
	items := []string{"a", "b", "c"}
	for range 20 {
		v, ok := arr.Choose(items)
		if !ok || !slices.Contains(items, v) {
			t.Fatalf("Choose = %q, %v", v, ok)
		}
	}
	if _, ok := arr.Choose([]string{}); ok {
		t.Fatal("Choose on empty should return false")
	}
}

func TestSample(t *testing.T) {
	got := arr.Sample(5, 1, 50)
	if len(got) != 50 {
		t.Fatalf("len = %d; want 50", len(got))
	}
	for _, n := range got {
		if n < 1 || n > 5 {
			t.Fatalf("Sample value %d outside [1, 5]", n)
		}
	}
	if len(arr.Sample(1, 2, -3)) != 0 {
		t.Fatal("negative amount should yield an empty slice")
	}
}

// ─── Zip / ZipAll ─────────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	var got [][]string
	for vs := range arr.Zip([]string{"a", "b", "c"}, []string{"1", "2", "3", "4"}, []string{"#", "?"}) {
		got = append(got, vs)
	}
	want := [][]string{{"a", "1", "#"}, {"b", "2", "?"}, {"c", "3", ""}, {"", "4", ""}}
	if len(got) != len(want) {
		t.Fatalf("Zip yielded %d rows; want %d", len(got), len(want))
	}
	for i := range want {
		assertSlice(t, got[i], want[i])
	}
}

func TestZipAll(t *testing.T) {
	seq, err := arr.ZipAll([]string{"a", "b"}, []string{"1", "2"}, []string{"#"})
	if err != nil {
		t.Fatalf("ZipAll: %v", err)
	}
	var got [][]string
	for vs := range seq {
		got = append(got, vs)
	}
	want := [][]string{{"a", "1", "#"}, {"a", "2", "#"}, {"b", "1", "#"}, {"b", "2", "#"}}
	if len(got) != len(want) {
		t.Fatalf("ZipAll yielded %d rows; want %d", len(got), len(want))
	}
	for i := range want {
		assertSlice(t, got[i], want[i])
	}

	if _, err := arr.ZipAll([]int{1}); !errors.Is(err, arr.ErrTooFewLists) {
		t.Fatalf("err = %v; want ErrTooFewLists", err)
	}
}

func TestZipAll_StopsEarly(t *testing.T) {
	seq, _ := arr.ZipAll([]int{1, 2, 3}, []int{4, 5, 6})
	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iterated %d times; want 2", n)
	}
}

// ─── Testing ──────────────────────────────────────────────────────────────────

func TestAnyAll(t *testing.T) {
	if !arr.Any([]string{"a", "b"}, "b") || arr.Any([]string{"a"}, "z") {
		t.Fatal("Any")
	}
	if !arr.AnyFunc([]int{1, 2, 3}, func(n int) bool { return n == 2 }) {
		t.Fatal("AnyFunc should be true")
	}
	if !arr.All([]int{7, 7}, 7) || arr.All([]int{7, 8}, 7) {
		t.Fatal("All")
	}
	if !arr.All([]int{}, 7) {
		t.Fatal("All on empty should be true")
	}
	if arr.AllFunc([]int{1, 2, 3}, func(n int) bool { return n < 3 }) {
		t.Fatal("AllFunc should be false")
	}
}

func TestStartsEndsWith(t *testing.T) {
	items := []string{"x", "y", "z"}
	if !arr.StartsWith(items, "x") || arr.StartsWith(items, "z") {
		t.Fatal("StartsWith")
	}
	if !arr.EndsWith(items, "z") || arr.EndsWith(items, "x") {
		t.Fatal("EndsWith")
	}
	if arr.StartsWith([]string{}, "") || arr.EndsWith([]string{}, "") {
		t.Fatal("empty slices neither start nor end with anything")
	}
}

// ─── Joining ──────────────────────────────────────────────────────────────────

func TestEncapsulate(t *testing.T) {
	assertSlice(t, arr.Encapsulate([]int{1, 2}, "'"), []string{"'1'", "'2'"})
	assertSlice(t, arr.Encapsulate([]string{"a"}, "(", ")"), []string{"(a)"})
}

func TestImplode(t *testing.T) {
	if got := arr.Implode(", ", []any{1, "two", 3.5}); got != "1, two, 3.5" {
		t.Errorf("Implode = %q", got)
	}
	if got := arr.Implode("-", []any{1, []any{2, 3}}); got != "1-2-3" {
		t.Errorf("Implode nested = %q", got)
	}
}

func TestImplodeAssoc(t *testing.T) {
	got := arr.ImplodeAssoc(", ", map[string]int{"b": 2, "a": 1}, "=")
	if got != "a=1, b=2" {
		t.Errorf("ImplodeAssoc = %q", got)
	}
}

func TestValues(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2, "c": 3}
	assertSlice(t, arr.Values(m, "c", "z", "a"), []int{3, 1})
}

func TestImplodeOnly(t *testing.T) {
	m := map[string]any{"first": "Ada", "middle": "", "last": "Lovelace"}
	if got := arr.ImplodeOnly(" ", m, "first", "middle", "last", "missing"); got != "Ada Lovelace" {
		t.Errorf("ImplodeOnly = %q", got)
	}
}
