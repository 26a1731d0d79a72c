/*
Package ordtree offers ordered sets and ordered maps backed by an in-memory
B-tree.

# Ordered containers

Set and Map keep their elements sorted by a pluggable total ordering (see
package compare). Lookups, insertions and removals touch O(log_m n) blocks of
a B-tree of degree m; iteration yields elements in ascending order. Both
containers share one engine, package btree: a Set stores bare values, a Map
stores key/value pairs.

Keys are unique in both containers. Set.Add reports false for a value that
is already present, Map.Add fails with ErrDuplicateKey, and Map.Put replaces
the value of an existing key.

Containers are not safe for concurrent use; callers must synchronize access
themselves. Iterating while modifying a container is detected: a structural
change makes any live iteration fail with ErrIterationInvalidated instead of
skipping or repeating elements.

# Choosing a degree

Degree m bounds every block but the root to between m-1 and 2m-1 elements.
Small degrees (2 gives a 2-3-4 tree) are useful to study the algorithms;
btree.DefaultDegree is a good general-purpose choice for in-memory use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ordtree

import (
	"github.com/npillmayer/ordtree/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// traceCreated is called from generic constructors, where a type parameter
// named T shadows the tracer.
func traceCreated(kind string, degree int) {
	T().Debugf("ordtree: created %s of degree %d", kind, degree)
}

// Errors of package btree, re-exported for clients of the containers.
var (
	ErrInvalidConfig        = btree.ErrInvalidConfig
	ErrDuplicateKey         = btree.ErrDuplicateKey
	ErrIterationInvalidated = btree.ErrIterationInvalidated
	ErrIndexOutOfBounds     = btree.ErrIndexOutOfBounds
)
