/*
Package bfs stores a complete binary tree in breadth-first order.

The node at flat index i keeps its children at 2i+1 and 2i+2, with the root
at index 0 — the classic binary-heap rule. A cursor is just the pair of a
flat index and the shared backing slice; descending is pure index
arithmetic.

The mutable cursor relies on an index-disjointness invariant: every live
cursor's index was reached by exactly one path of child selections from a
single root cursor, and splitting consumes the parent, so no two live
cursors can ever address the same slot. Mutation happens strictly by index
into the one shared slice — the pointers handed out for the two children of
a split therefore always reference distinct elements.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bfs

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("comptree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
