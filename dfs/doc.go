/*
Package dfs stores a complete binary tree in depth-first order.

Every subtree occupies one contiguous run of the backing slice, so a cursor
is nothing but the remaining span. Which slot of a span holds the current
node is decided by an order policy — PreOrder, InOrder or PostOrder — chosen
as a type parameter, so a tree's storage order is part of its type.

Splitting a span into current node, left span and right span uses plain
subslicing: the three ranges are disjoint by construction, which is why the
mutable cursor needs no index-disjointness argument at all. The layout's
practical advantage over package bfs is locality — descending a subtree
narrows the working set to one contiguous run, whereas breadth-first
children of deep nodes can be arbitrarily far apart.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dfs

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("comptree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
