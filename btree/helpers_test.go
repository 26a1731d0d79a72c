package btree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/ordtree/compare"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func redirectTracing(t *testing.T) func() {
	t.Helper()
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

type intTree = Tree[Item[int], int]

func newIntTree(t testing.TB, degree int, unique bool) *intTree {
	t.Helper()
	tree, err := New[Item[int], int](Config[int]{
		Degree:   degree,
		Comparer: compare.Ordered[int](),
		Unique:   unique,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func addAll(t testing.TB, tree *intTree, keys ...int) {
	t.Helper()
	for _, k := range keys {
		if err := tree.Add(Item[int]{Value: k}); err != nil {
			t.Fatalf("Add(%d) failed: %v", k, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after Add(%d): %v", k, err)
		}
	}
}

func keysOf(tree *intTree) []int {
	var out []int
	for _, e := range tree.Entries() {
		out = append(out, e.Value)
	}
	return out
}

func blockKeys(b *block[Item[int], int]) []int {
	out := make([]int, 0, b.count())
	for _, e := range b.entries.Items() {
		out = append(out, e.Value)
	}
	return out
}

// shape renders a block structure compactly, e.g. "[2]([1] [3 4])".
func shape(b *block[Item[int], int]) string {
	s := fmt.Sprint(blockKeys(b))
	if b.isLeaf() {
		return s
	}
	children := make([]string, 0, b.children.Len())
	for _, c := range b.children.Items() {
		children = append(children, shape(c))
	}
	return s + "(" + strings.Join(children, " ") + ")"
}

func rangeKeys(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		out = append(out, k)
	}
	return out
}
