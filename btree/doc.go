/*
Package btree provides an in-memory, order-m B-tree engine for ordered sets
and ordered maps.

A tree of degree m keeps its entries in blocks. Every block except the root
holds between m-1 and 2m-1 entries; an internal block holds one more child
than it has entries. All leaves sit at the same depth, the tree's height.

The engine is generic over its entry type E and the ordering key K the entry
exposes through Keyed[K]. Set-mode trees store Item[T], whose key is the value
itself; map-mode trees store Pair[K,V]. Both share one algorithm:

  - insertion splits full blocks on the way down (proactive splitting), so a
    leaf always has room when it is reached,
  - deletion fixes blocks on the way down by borrowing from a sibling
    (rotation) or merging with it, so a block always has a spare entry
    before the descent continues,
  - deleting from an internal block promotes the predecessor if the left
    subtree has a spare entry, else the successor, else merges both
    subtrees around the deleted entry.

Trees are not safe for concurrent use. Every structural mutation advances a
version counter; iterators capture it and fail with ErrIterationInvalidated
instead of yielding entries from a changed tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
