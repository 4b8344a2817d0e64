package pivot

import (
	"fmt"
	"iter"
)

// Bucket is one entry of a [Tree]: a run of consecutive records sharing the
// same key value. Exactly one of Tree and Records is set: Tree when further
// key levels remain, Records at the leaves.
type Bucket struct {
	// Key is the stringified key value.
	Key string

	// Value is the key value as read from the first record of the run.
	Value any

	// Tree holds the next grouping level, or nil for a leaf.
	Tree *Tree

	// Records holds the leaf records in input order, or nil for a branch.
	Records []Record
}

// IsLeaf reports whether b holds records rather than a nested tree.
func (b Bucket) IsLeaf() bool { return b.Tree == nil }

// Leaves returns every record below b in bucket order.
func (b Bucket) Leaves() []Record {
	if b.IsLeaf() {
		out := make([]Record, len(b.Records))
		copy(out, b.Records)
		return out
	}
	return b.Tree.Leaves()
}

// Tree is the ordered result of [GroupBy]. Buckets keep the order in which
// their key values were first seen.
//
// Input that was not sorted by the key path produces several buckets with
// the same key, one per contiguous run; [Tree.Get] returns the first.
//
// A nil *Tree behaves as an empty tree.
type Tree struct {
	depth   int
	buckets []Bucket
	index   map[string]int
}

func newTree(depth int) *Tree {
	return &Tree{depth: depth, index: make(map[string]int)}
}

func (t *Tree) add(b Bucket) {
	if _, ok := t.index[b.Key]; !ok {
		t.index[b.Key] = len(t.buckets)
	}
	t.buckets = append(t.buckets, b)
}

// Len returns the number of buckets at this level.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.buckets)
}

// Depth returns the number of key levels the tree was built with.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	return t.depth
}

// Keys returns the bucket keys at this level in order.
func (t *Tree) Keys() []string {
	out := make([]string, t.Len())
	for i := range out {
		out[i] = t.buckets[i].Key
	}
	return out
}

// Get returns the first bucket stored under key.
func (t *Tree) Get(key string) (Bucket, bool) {
	if t == nil {
		return Bucket{}, false
	}
	i, ok := t.index[key]
	if !ok {
		return Bucket{}, false
	}
	return t.buckets[i], true
}

// Buckets returns a copy of the buckets at this level.
func (t *Tree) Buckets() []Bucket {
	out := make([]Bucket, t.Len())
	if t != nil {
		copy(out, t.buckets)
	}
	return out
}

// All iterates over the buckets at this level as key/bucket pairs.
//
//	for key, b := range tree.All() {
//	    fmt.Println(key, len(b.Leaves()))
//	}
func (t *Tree) All() iter.Seq2[string, Bucket] {
	return func(yield func(string, Bucket) bool) {
		if t == nil {
			return
		}
		for _, b := range t.buckets {
			if !yield(b.Key, b) {
				return
			}
		}
	}
}

// Leaves flattens the tree back into a record slice, in bucket order.
func (t *Tree) Leaves() []Record {
	out := make([]Record, 0, t.Count())
	if t == nil {
		return out
	}
	for _, b := range t.buckets {
		if b.IsLeaf() {
			out = append(out, b.Records...)
			continue
		}
		out = append(out, b.Tree.Leaves()...)
	}
	return out
}

// Count returns the total number of records across all leaves.
func (t *Tree) Count() int {
	if t == nil {
		return 0
	}
	n := 0
	for _, b := range t.buckets {
		if b.IsLeaf() {
			n += len(b.Records)
			continue
		}
		n += b.Tree.Count()
	}
	return n
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy partitions records into a tree of buckets, one level per field in
// keys.
//
// Records must already be ordered so that records sharing keys[0] are
// contiguous, and within each run records sharing keys[1] are contiguous,
// and so on. GroupBy does not sort; a new bucket is opened every time the key
// value changes.
//
// A record whose key value is empty (nil, false, zero, "" or "0", or a
// missing field) is skipped at that level unless keepEmptyKeys is true.
//
// Returns [ErrInvalidArgument] when keys is empty or names an empty field.
func GroupBy(records []Record, keys []string, keepEmptyKeys bool) (*Tree, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: key path must not be empty", ErrInvalidArgument)
	}
	for i, k := range keys {
		if k == "" {
			return nil, fmt.Errorf("%w: key path element %d is empty", ErrInvalidArgument, i)
		}
	}
	return group(records, keys, keepEmptyKeys), nil
}

// GroupByField is [GroupBy] with a single key.
func GroupByField(records []Record, key string, keepEmptyKeys bool) (*Tree, error) {
	return GroupBy(records, []string{key}, keepEmptyKeys)
}

// group performs one level of the scan; keys is the remaining key path and
// is never empty.
func group(records []Record, keys []string, keepEmptyKeys bool) *Tree {
	field, rest := keys[0], keys[1:]
	tree := newTree(len(keys))

	var (
		current Bucket
		open    bool
	)
	flush := func() {
		if !open {
			return
		}
		if len(rest) > 0 {
			current.Tree = group(current.Records, rest, keepEmptyKeys)
			current.Records = nil
		}
		tree.add(current)
	}

	for _, rec := range records {
		v, _ := rec.Get(field)
		if !keepEmptyKeys && isEmpty(v) {
			continue
		}
		key := keyString(v)
		if !open || key != current.Key {
			flush()
			current = Bucket{Key: key, Value: v}
			open = true
		}
		current.Records = append(current.Records, rec)
	}
	flush()

	return tree
}
