package pivot_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-shape-utils/pivot"
)

func maps(ms ...map[string]any) []pivot.Record { return pivot.FromMaps(ms) }

// leafMaps renders a bucket's leaves as plain maps for diffing.
func leafMaps(t *testing.T, records []pivot.Record) []map[string]any {
	t.Helper()
	out := make([]map[string]any, len(records))
	for i, r := range records {
		m, ok := r.(pivot.Map)
		if !ok {
			t.Fatalf("record %d: got %T, want pivot.Map", i, r)
		}
		out[i] = m
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// GroupBy
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy_SingleKey(t *testing.T) {
	records := maps(
		map[string]any{"d": 1970, "c": "A"},
		map[string]any{"d": 1980, "c": "A"},
		map[string]any{"d": 1980, "c": "B"},
	)
	tree, err := pivot.GroupBy(records, []string{"d"}, true)
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if diff := cmp.Diff([]string{"1970", "1980"}, tree.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}

	b, ok := tree.Get("1970")
	if !ok || !b.IsLeaf() {
		t.Fatalf("Get(1970) = %v, %v; want leaf bucket", b, ok)
	}
	if diff := cmp.Diff([]map[string]any{{"d": 1970, "c": "A"}}, leafMaps(t, b.Records)); diff != "" {
		t.Errorf("1970 bucket (-want +got):\n%s", diff)
	}

	b, _ = tree.Get("1980")
	want := []map[string]any{{"d": 1980, "c": "A"}, {"d": 1980, "c": "B"}}
	if diff := cmp.Diff(want, leafMaps(t, b.Records)); diff != "" {
		t.Errorf("1980 bucket (-want +got):\n%s", diff)
	}
	if b.Value != 1980 {
		t.Errorf("bucket value = %v (%T); want original int 1980", b.Value, b.Value)
	}
}

func TestGroupBy_MultiLevel(t *testing.T) {
	records := maps(
		map[string]any{"dept": "eng", "team": "api", "name": "ann"},
		map[string]any{"dept": "eng", "team": "api", "name": "bob"},
		map[string]any{"dept": "eng", "team": "web", "name": "cid"},
		map[string]any{"dept": "ops", "team": "sre", "name": "dee"},
	)
	tree, err := pivot.GroupBy(records, []string{"dept", "team"}, false)
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if tree.Depth() != 2 {
		t.Fatalf("Depth = %d; want 2", tree.Depth())
	}

	eng, _ := tree.Get("eng")
	if eng.IsLeaf() {
		t.Fatal("eng bucket should hold a nested tree")
	}
	if diff := cmp.Diff([]string{"api", "web"}, eng.Tree.Keys()); diff != "" {
		t.Fatalf("eng keys (-want +got):\n%s", diff)
	}
	api, _ := eng.Tree.Get("api")
	if len(api.Records) != 2 {
		t.Fatalf("eng/api has %d records; want 2", len(api.Records))
	}
	if got := len(eng.Leaves()); got != 3 {
		t.Errorf("eng leaves = %d; want 3", got)
	}
	if tree.Count() != 4 {
		t.Errorf("Count = %d; want 4", tree.Count())
	}
}

func TestGroupBy_EmptyKeys(t *testing.T) {
	records := maps(
		map[string]any{"k": "a"},
		map[string]any{"k": ""},
		map[string]any{"k": nil},
		map[string]any{"k": 0},
		map[string]any{"k": "0"},
		map[string]any{"k": false},
		map[string]any{},
		map[string]any{"k": "b"},
	)

	dropped, err := pivot.GroupByField(records, "k", false)
	if err != nil {
		t.Fatalf("GroupByField: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, dropped.Keys()); diff != "" {
		t.Errorf("keys without empties (-want +got):\n%s", diff)
	}
	if dropped.Count() != 2 {
		t.Errorf("Count = %d; want 2", dropped.Count())
	}

	kept, _ := pivot.GroupByField(records, "k", true)
	if kept.Count() != len(records) {
		t.Errorf("Count with empties = %d; want %d", kept.Count(), len(records))
	}
}

func TestGroupBy_CardinalityPreserved(t *testing.T) {
	records := maps(
		map[string]any{"y": 2001, "m": 1},
		map[string]any{"y": 2001, "m": 0},
		map[string]any{"y": 2001, "m": 2},
		map[string]any{"y": 0, "m": 3},
		map[string]any{"y": 2002, "m": 3},
	)
	for _, tc := range []struct {
		keep bool
		want int
	}{
		{keep: true, want: 5},
		{keep: false, want: 3}, // y=0 dropped at level one, m=0 at level two
	} {
		tree, err := pivot.GroupBy(records, []string{"y", "m"}, tc.keep)
		if err != nil {
			t.Fatalf("GroupBy: %v", err)
		}
		if got := tree.Count(); got != tc.want {
			t.Errorf("keep=%v: Count = %d; want %d", tc.keep, got, tc.want)
		}
		if got := len(tree.Leaves()); got != tc.want {
			t.Errorf("keep=%v: len(Leaves) = %d; want %d", tc.keep, got, tc.want)
		}
	}
}

func TestGroupBy_IdempotentOnGroupedInput(t *testing.T) {
	records := pivot.SortBy(maps(
		map[string]any{"a": "x", "b": 2},
		map[string]any{"a": "y", "b": 1},
		map[string]any{"a": "x", "b": 1},
		map[string]any{"a": "y", "b": 1},
	), "a", "b")
	keys := []string{"a", "b"}

	first, err := pivot.GroupBy(records, keys, false)
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	second, err := pivot.GroupBy(first.Leaves(), keys, false)
	if err != nil {
		t.Fatalf("GroupBy (regroup): %v", err)
	}

	if diff := cmp.Diff(shape(first), shape(second)); diff != "" {
		t.Errorf("regrouped tree differs (-first +second):\n%s", diff)
	}
}

// shape describes a tree as nested key lists with leaf sizes.
func shape(t *pivot.Tree) []any {
	var out []any
	for key, b := range t.All() {
		if b.IsLeaf() {
			out = append(out, key, len(b.Records))
			continue
		}
		out = append(out, key, shape(b.Tree))
	}
	return out
}

func TestGroupBy_UnsortedInputSplitsRuns(t *testing.T) {
	records := maps(
		map[string]any{"k": "a", "n": 1},
		map[string]any{"k": "b", "n": 2},
		map[string]any{"k": "a", "n": 3},
	)
	tree, _ := pivot.GroupByField(records, "k", false)
	if diff := cmp.Diff([]string{"a", "b", "a"}, tree.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	b, _ := tree.Get("a")
	if len(b.Records) != 1 || b.Records[0].(pivot.Map)["n"] != 1 {
		t.Errorf("Get(a) should return the first run, got %v", b.Records)
	}
	if tree.Count() != 3 {
		t.Errorf("Count = %d; want 3", tree.Count())
	}
}

func TestGroupBy_EmptyInput(t *testing.T) {
	tree, err := pivot.GroupBy(nil, []string{"k"}, false)
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if tree.Len() != 0 || tree.Count() != 0 {
		t.Errorf("empty input: Len=%d Count=%d; want 0, 0", tree.Len(), tree.Count())
	}
}

func TestGroupBy_SingleRun(t *testing.T) {
	records := maps(map[string]any{"k": 1}, map[string]any{"k": 1})
	tree, _ := pivot.GroupByField(records, "k", false)
	if tree.Len() != 1 {
		t.Fatalf("Len = %d; want 1", tree.Len())
	}
}

func TestGroupBy_NumericStringKeysShareBucket(t *testing.T) {
	records := maps(map[string]any{"k": 1970}, map[string]any{"k": "1970"}, map[string]any{"k": 1970.0})
	tree, _ := pivot.GroupByField(records, "k", false)
	if tree.Len() != 1 {
		t.Errorf("Len = %d; want 1 (keys compare on their string form)", tree.Len())
	}
}

func TestGroupBy_InvalidArguments(t *testing.T) {
	for name, keys := range map[string][]string{
		"nil":         nil,
		"empty":       {},
		"blank field": {"a", ""},
	} {
		t.Run(name, func(t *testing.T) {
			tree, err := pivot.GroupBy(maps(map[string]any{"a": 1}), keys, false)
			if !errors.Is(err, pivot.ErrInvalidArgument) {
				t.Fatalf("err = %v; want ErrInvalidArgument", err)
			}
			if tree != nil {
				t.Error("expected nil tree on error")
			}
		})
	}
}

func TestGroupBy_TupleRecords(t *testing.T) {
	records := pivot.Records([]pivot.Tuple{{"x", 1}, {"x", 2}, {"y", 3}})
	tree, err := pivot.GroupByField(records, "0", false)
	if err != nil {
		t.Fatalf("GroupByField: %v", err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, tree.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestTree_NilIsEmpty(t *testing.T) {
	var tree *pivot.Tree
	if tree.Len() != 0 || tree.Count() != 0 || len(tree.Leaves()) != 0 || len(tree.Keys()) != 0 {
		t.Fatal("nil tree should behave as empty")
	}
	if _, ok := tree.Get("x"); ok {
		t.Fatal("Get on nil tree should report false")
	}
	for range tree.All() {
		t.Fatal("All on nil tree should not yield")
	}
}
