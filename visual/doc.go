/*
Package visual renders the block structure of a B-tree, for debugging and
for teaching the algorithms.

Three formats are supported: Graphviz DOT (Dot), an indented, colored
console listing (Console) and nested HTML lists (HTML). All renderers work on
anything that can enumerate its blocks the way btree.Tree does; ordtree.Set
and ordtree.Map expose their tree through Tree().

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package visual

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Blocker is implemented by btree.Tree.
type Blocker[E any] interface {
	Blocks(fn func(info btree.BlockInfo[E]) bool)
}

// Label formats a single entry. A nil Label uses fmt.Sprint.
type Label[E any] func(e E) string

func (l Label[E]) apply(e E) string {
	if l == nil {
		return fmt.Sprint(e)
	}
	return l(e)
}

func (l Label[E]) join(entries []E, sep string) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = l.apply(e)
	}
	return strings.Join(parts, sep)
}

func collect[E any](t Blocker[E]) []btree.BlockInfo[E] {
	var blocks []btree.BlockInfo[E]
	t.Blocks(func(info btree.BlockInfo[E]) bool {
		blocks = append(blocks, info)
		return true
	})
	return blocks
}
