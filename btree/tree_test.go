package btree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/ordtree/compare"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	for _, degree := range []int{-1, 0, 1} {
		_, err := New[Item[int], int](Config[int]{Degree: degree, Comparer: compare.Ordered[int]()})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig for degree %d, got %v", degree, err)
		}
	}
	_, err := New[Item[int], int](Config[int]{Degree: 3})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing comparer, got %v", err)
	}
}

func TestNilTreeAccessors(t *testing.T) {
	var tree *intTree
	if tree.Count() != 0 || tree.Height() != 0 || tree.Degree() != 0 || tree.Version() != 0 {
		t.Errorf("nil tree must report zero values")
	}
	if !tree.IsEmpty() {
		t.Errorf("nil tree must be empty")
	}
	if cfg := tree.Config(); cfg.Degree != 0 || cfg.Comparer != nil {
		t.Errorf("nil tree must report a zero config, have %+v", cfg)
	}
}

func TestNewEmptyTree(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := newIntTree(t, 4, false)
	if tree.Count() != 0 || tree.Height() != 1 || tree.Degree() != 4 {
		t.Fatalf("unexpected empty tree state count=%d height=%d degree=%d",
			tree.Count(), tree.Height(), tree.Degree())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if _, ok := tree.Find(1); ok {
		t.Errorf("empty tree must not find anything")
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("empty tree must not have a minimum")
	}
	if _, ok := tree.RemoveMax(); ok {
		t.Errorf("empty tree must not remove anything")
	}
	if tree.Config().Degree != 4 {
		t.Errorf("Config must report the configured degree")
	}
}

// Degree 2 means 1..3 entries per block.
func TestInsertSplitsRootOnce(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 10, 20, 5, 6, 12, 30, 7, 17)
	if !slices.Equal(keysOf(tree), []int{5, 6, 7, 10, 12, 17, 20, 30}) {
		t.Errorf("unexpected in-order traversal: %v", keysOf(tree))
	}
	if tree.Height() != 2 || tree.Count() != 8 {
		t.Errorf("expected height 2 and count 8, have %d and %d", tree.Height(), tree.Count())
	}
	if got := shape(tree.root); got != "[10 20]([5 6 7] [12 17] [30])" {
		t.Errorf("unexpected shape: %s", got)
	}
}

func TestRemoveFromLeafKeepsShape(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 10, 20, 5, 6, 12, 30, 7, 17)
	if _, ok := tree.Remove(6); !ok {
		t.Fatalf("expected 6 to be removed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(keysOf(tree), []int{5, 7, 10, 12, 17, 20, 30}) || tree.Count() != 7 {
		t.Errorf("unexpected traversal %v (count %d)", keysOf(tree), tree.Count())
	}
	if tree.Contains(6) {
		t.Errorf("removed key still found")
	}
}

func TestRemoveSingleKey(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 42)
	e, ok := tree.Remove(42)
	if !ok || e.Value != 42 {
		t.Fatalf("expected to remove 42, have %v/%v", e, ok)
	}
	if tree.Count() != 0 || tree.Height() != 1 {
		t.Errorf("expected empty tree of height 1, have count=%d height=%d", tree.Count(), tree.Height())
	}
	if _, ok := tree.Find(42); ok {
		t.Errorf("42 still found after removal")
	}
}

func TestRemoveInternalKeyPromotesSuccessor(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	if got := shape(tree.root); got != "[2 4]([1] [3] [5 6 7])" {
		t.Fatalf("unexpected shape before removal: %s", got)
	}
	tree.Remove(4)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	// predecessor block [3] is at minimum, so the successor 5 moves up
	if got := shape(tree.root); got != "[2 5]([1] [3] [6 7])" {
		t.Errorf("unexpected shape after removal: %s", got)
	}
}

func TestRemoveInternalKeyPromotesPredecessor(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	addAll(t, tree, 0)
	// [2 4]([0 1] [3] [5 6 7])
	tree.Remove(2)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := shape(tree.root); got != "[1 4]([0] [3] [5 6 7])" {
		t.Errorf("unexpected shape after removal: %s", got)
	}
}

func TestRemoveInternalKeyMergesAndCollapsesRoot(t *testing.T) {
	teardown := redirectTracing(t)
	defer teardown()
	//
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 1, 2, 3, 4)
	tree.Remove(4)
	if got := shape(tree.root); got != "[2]([1] [3])" {
		t.Fatalf("unexpected shape: %s", got)
	}
	tree.Remove(2)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := shape(tree.root); got != "[1 3]" || tree.Height() != 1 {
		t.Errorf("expected collapsed leaf root [1 3], have %s with height %d", got, tree.Height())
	}
}

func TestRemoveBorrowsFromRightSibling(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 1, 2, 3, 4)
	tree.Remove(1)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := shape(tree.root); got != "[3]([2] [4])" {
		t.Errorf("unexpected shape: %s", got)
	}
}

func TestRemoveBorrowsFromLeftSibling(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 1, 2, 3, 4, 0)
	tree.Remove(4)
	tree.Remove(3)
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if got := shape(tree.root); got != "[1]([0] [2])" {
		t.Errorf("unexpected shape: %s", got)
	}
}

func TestBoundaryFirstSplit(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 1, 2, 3)
	if tree.Height() != 1 {
		t.Fatalf("three keys fit into a degree-2 root")
	}
	addAll(t, tree, 4)
	if tree.Height() != 2 || tree.root.count() != 1 || tree.root.children.Len() != 2 {
		t.Errorf("expected exactly one split, have %s", shape(tree.root))
	}
}

func TestRemoveAllCollapsesToLeaf(t *testing.T) {
	tree := newIntTree(t, 2, true)
	keys := []int{10, 20, 5, 6, 12, 30, 7, 17}
	addAll(t, tree, keys...)
	for _, k := range keys {
		if _, ok := tree.Remove(k); !ok {
			t.Fatalf("Remove(%d) reported not found", k)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after Remove(%d): %v", k, err)
		}
	}
	if tree.Count() != 0 || tree.Height() != 1 || !tree.root.isLeaf() {
		t.Errorf("expected empty leaf root, have count=%d height=%d", tree.Count(), tree.Height())
	}
}

func TestRemoveAbsentKeyIsNoOp(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 1, 2, 3, 4)
	tree.Remove(4)
	// [2]([1] [3]): descending for an absent key would merge
	version, height, before := tree.Version(), tree.Height(), shape(tree.root)
	if _, ok := tree.Remove(99); ok {
		t.Fatalf("Remove(99) must report not found")
	}
	if tree.Version() != version || tree.Height() != height || shape(tree.root) != before || tree.Count() != 3 {
		t.Errorf("tree changed by removing an absent key: %s", shape(tree.root))
	}
}

func TestUniqueRejectsDuplicates(t *testing.T) {
	tree := newIntTree(t, 3, true)
	addAll(t, tree, 1, 2, 3)
	version := tree.Version()
	err := tree.Add(Item[int]{Value: 2})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if tree.Count() != 3 || tree.Version() != version {
		t.Errorf("rejected Add must not mutate the tree")
	}
}

func TestDuplicatesAllowedByDefault(t *testing.T) {
	tree := newIntTree(t, 2, false)
	addAll(t, tree, 5, 5, 5, 1, 5, 9, 5, 5)
	if !slices.Equal(keysOf(tree), []int{1, 5, 5, 5, 5, 5, 5, 9}) {
		t.Fatalf("unexpected traversal %v", keysOf(tree))
	}
	for tree.Contains(5) {
		tree.Remove(5)
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(keysOf(tree), []int{1, 9}) {
		t.Errorf("unexpected traversal after removing all 5s: %v", keysOf(tree))
	}
}

func TestReplaceOrAdd(t *testing.T) {
	tree, err := New[Pair[string, int], string](Config[string]{
		Degree:   2,
		Comparer: compare.Ordered[string](),
		Unique:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, k := range []string{"d", "b", "a", "c", "e"} {
		if _, replaced := tree.ReplaceOrAdd(NewPair(k, i)); replaced {
			t.Fatalf("nothing to replace for %q", k)
		}
	}
	version := tree.Version()
	old, replaced := tree.ReplaceOrAdd(NewPair("b", 100))
	if !replaced || old.Value() != 1 {
		t.Errorf("expected to replace b:1, have %v/%v", old, replaced)
	}
	if tree.Version() != version {
		t.Errorf("replacing a value must not advance the version")
	}
	p, ok := tree.Find("b")
	if !ok || p.Value() != 100 || tree.Count() != 5 {
		t.Errorf("expected b:100 among 5 entries, have %v (count %d)", p, tree.Count())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestMinMaxAndRemoveMinMax(t *testing.T) {
	tree := newIntTree(t, 3, true)
	addAll(t, tree, rangeKeys(1, 30)...)
	if e, _ := tree.Min(); e.Value != 1 {
		t.Errorf("Min = %d", e.Value)
	}
	if e, _ := tree.Max(); e.Value != 30 {
		t.Errorf("Max = %d", e.Value)
	}
	for want := 1; want <= 10; want++ {
		e, ok := tree.RemoveMin()
		if !ok || e.Value != want {
			t.Fatalf("RemoveMin = %d/%v, expected %d", e.Value, ok, want)
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	for want := 30; want > 20; want-- {
		e, ok := tree.RemoveMax()
		if !ok || e.Value != want {
			t.Fatalf("RemoveMax = %d/%v, expected %d", e.Value, ok, want)
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(keysOf(tree), rangeKeys(11, 20)) {
		t.Errorf("unexpected rest: %v", keysOf(tree))
	}
}

func TestClear(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 20)...)
	version := tree.Version()
	tree.Clear()
	if tree.Count() != 0 || tree.Height() != 1 || tree.Version() <= version {
		t.Errorf("unexpected state after Clear: count=%d height=%d", tree.Count(), tree.Height())
	}
	addAll(t, tree, 3, 1, 2)
	if !slices.Equal(keysOf(tree), []int{1, 2, 3}) {
		t.Errorf("tree unusable after Clear: %v", keysOf(tree))
	}
}

func TestCopyTo(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, 3, 1, 2)
	dst := make([]Item[int], 5)
	n, err := tree.CopyTo(dst, 1)
	if err != nil || n != 3 {
		t.Fatalf("CopyTo returned %d/%v", n, err)
	}
	if dst[1].Value != 1 || dst[2].Value != 2 || dst[3].Value != 3 || dst[4].Value != 0 {
		t.Errorf("unexpected destination %v", dst)
	}
	if _, err := tree.CopyTo(dst, 3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for short destination, got %v", err)
	}
	if _, err := tree.CopyTo(dst, -1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected ErrIndexOutOfBounds for negative offset, got %v", err)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	tree.root.child(2).entries.Set(0, Item[int]{Value: 0})
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Errorf("expected ErrCorrupted for misplaced key, got %v", err)
	}
	tree = newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	tree.root.child(0).entries.Clear()
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Errorf("expected ErrCorrupted for underfull block, got %v", err)
	}
	tree = newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	tree.count++
	if err := tree.Check(); !errors.Is(err, ErrCorrupted) {
		t.Errorf("expected ErrCorrupted for count mismatch, got %v", err)
	}
}

func TestBlocksInspection(t *testing.T) {
	tree := newIntTree(t, 2, true)
	addAll(t, tree, rangeKeys(1, 7)...)
	var infos []BlockInfo[Item[int]]
	tree.Blocks(func(info BlockInfo[Item[int]]) bool {
		infos = append(infos, info)
		return true
	})
	if len(infos) != 4 {
		t.Fatalf("expected 4 blocks, have %d", len(infos))
	}
	root := infos[0]
	if root.ID != 0 || root.Parent != -1 || root.Depth != 1 || root.Leaf || len(root.Entries) != 2 {
		t.Errorf("unexpected root info %+v", root)
	}
	last := infos[3]
	if last.Parent != 0 || last.Index != 2 || last.Depth != 2 || !last.Leaf || last.Entries[2].Value != 7 {
		t.Errorf("unexpected last leaf info %+v", last)
	}
	n := 0
	tree.Blocks(func(BlockInfo[Item[int]]) bool { n++; return false })
	if n != 1 {
		t.Errorf("Blocks must stop when fn returns false, visited %d", n)
	}
}

func BenchmarkAddRemove(b *testing.B) {
	tree := newIntTree(b, DefaultDegree, true)
	for i := 0; i < b.N; i++ {
		k := (i * 7919) % 100000
		if tree.Contains(k) {
			tree.Remove(k)
		} else {
			_ = tree.Add(Item[int]{Value: k})
		}
	}
}
