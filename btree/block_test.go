package btree

import (
	"slices"
	"testing"

	"github.com/npillmayer/ordtree/compare"
)

func leafOf(degree int, keys ...int) *block[Item[int], int] {
	b := newBlock[Item[int], int](degree)
	for _, k := range keys {
		b.entries.Append(Item[int]{Value: k})
	}
	return b
}

func parentOf(degree int, keys []int, children ...*block[Item[int], int]) *block[Item[int], int] {
	b := leafOf(degree, keys...)
	for _, c := range children {
		b.children.Append(c)
	}
	return b
}

func TestBlockPredicates(t *testing.T) {
	b := leafOf(3)
	if !b.isLeaf() || b.hasMinimumEntries() || b.isFull() {
		t.Errorf("empty degree-3 block: leaf=%v min=%v full=%v", b.isLeaf(), b.hasMinimumEntries(), b.isFull())
	}
	b = leafOf(3, 1, 2)
	if !b.hasMinimumEntries() || b.hasSpare() {
		t.Errorf("block with m-1 entries must have minimum but no spare")
	}
	b = leafOf(3, 1, 2, 3, 4, 5)
	if !b.isFull() || !b.hasSpare() {
		t.Errorf("block with 2m-1 entries must be full")
	}
}

func TestBlockFind(t *testing.T) {
	b := leafOf(3, 10, 20, 30, 40)
	cmp := compare.Ordered[int]()
	cases := []struct {
		key   int
		pos   int
		found bool
	}{
		{5, 0, false}, {10, 0, true}, {15, 1, false}, {30, 2, true}, {40, 3, true}, {45, 4, false},
	}
	for _, c := range cases {
		pos, found := b.find(c.key, cmp)
		if pos != c.pos || found != c.found {
			t.Errorf("find(%d) = (%d,%v), expected (%d,%v)", c.key, pos, found, c.pos, c.found)
		}
	}
}

func TestSplitLeafChild(t *testing.T) {
	child := leafOf(3, 1, 2, 3, 4, 5)
	parent := parentOf(3, nil, child)
	parent.splitChild(0, newBlock[Item[int], int](3))
	if got := shape(parent); got != "[3]([1 2] [4 5])" {
		t.Errorf("unexpected shape after split: %s", got)
	}
	if !parent.child(0).hasMinimumEntries() || !parent.child(1).hasMinimumEntries() {
		t.Errorf("both halves must hold the minimum after a split")
	}
}

func TestSplitInternalChild(t *testing.T) {
	leaves := make([]*block[Item[int], int], 4)
	for i := range leaves {
		leaves[i] = leafOf(2, 10*i+1)
	}
	child := parentOf(2, []int{5, 15, 25}, leaves...)
	right := leafOf(2, 99)
	parent := parentOf(2, []int{50}, child, right)
	parent.splitChild(0, newBlock[Item[int], int](2))
	if got := shape(parent); got != "[15 50]([5]([1] [11]) [25]([21] [31]) [99])" {
		t.Errorf("unexpected shape after split: %s", got)
	}
	if parent.child(1).children.Len() != 2 {
		t.Errorf("sibling must take over m children")
	}
}

func TestSplitRequiresFullChild(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected splitting a non-full child to panic")
		}
	}()
	parent := parentOf(3, nil, leafOf(3, 1, 2))
	parent.splitChild(0, newBlock[Item[int], int](3))
}

func TestMergeChildren(t *testing.T) {
	parent := parentOf(3, []int{3, 9}, leafOf(3, 1, 2), leafOf(3, 4, 5), leafOf(3, 10, 11))
	merged := parent.mergeChildren(0)
	if got := shape(parent); got != "[9]([1 2 3 4 5] [10 11])" {
		t.Errorf("unexpected shape after merge: %s", got)
	}
	if merged != parent.child(0) || !merged.isFull() {
		t.Errorf("merged block must replace the left child and be full")
	}
}

func TestRotations(t *testing.T) {
	parent := parentOf(2, []int{3}, leafOf(2, 1, 2), leafOf(2, 4))
	parent.rotateRight(1)
	if got := shape(parent); got != "[2]([1] [3 4])" {
		t.Errorf("unexpected shape after right rotation: %s", got)
	}
	parent.rotateLeft(0)
	if got := shape(parent); got != "[3]([1 2] [4])" {
		t.Errorf("unexpected shape after left rotation: %s", got)
	}
}

func TestRotationMovesChildren(t *testing.T) {
	left := parentOf(2, []int{2, 4}, leafOf(2, 1), leafOf(2, 3), leafOf(2, 5))
	child := parentOf(2, []int{8}, leafOf(2, 7), leafOf(2, 9))
	parent := parentOf(2, []int{6}, left, child)
	parent.rotateRight(1)
	if got := shape(parent); got != "[4]([2]([1] [3]) [6 8]([5] [7] [9]))" {
		t.Errorf("unexpected shape after internal right rotation: %s", got)
	}
	parent.rotateLeft(0)
	if got := shape(parent); got != "[6]([2 4]([1] [3] [5]) [8]([7] [9]))" {
		t.Errorf("unexpected shape after internal left rotation: %s", got)
	}
}

func TestMoveTail(t *testing.T) {
	src := leafOf(3, 1, 2, 3, 4)
	dst := leafOf(3, 0)
	src.moveTailTo(dst, 2, 0)
	if !slices.Equal(blockKeys(src), []int{1, 2}) || !slices.Equal(blockKeys(dst), []int{0, 3, 4}) {
		t.Errorf("moveTailTo: src=%v dst=%v", blockKeys(src), blockKeys(dst))
	}
}
