package dfs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// splitSpan describes how a span of length n > 1 decomposes into the
// current node and the two child sub-spans, as index ranges into the span.
type splitSpan struct {
	cur            int
	leftLo, leftHi int
	rghtLo, rghtHi int
}

// Order is a storage-order policy for the depth-first layout. The policy
// decides where, within a contiguous span, the current node sits relative
// to its children's spans. Policies are zero-sized tags bound at the type
// level; the three implementations are PreOrder, InOrder and PostOrder.
type Order interface {
	split(n int) splitSpan
}

// InOrder stores each subtree as left subtree, root, right subtree.
type InOrder struct{}

// PreOrder stores each subtree as root, left subtree, right subtree.
type PreOrder struct{}

// PostOrder stores each subtree as left subtree, right subtree, root.
type PostOrder struct{}

func (InOrder) split(n int) splitSpan {
	mid := n / 2
	return splitSpan{
		cur:    mid,
		leftLo: 0, leftHi: mid,
		rghtLo: mid + 1, rghtHi: n,
	}
}

func (PreOrder) split(n int) splitSpan {
	half := (n - 1) / 2
	return splitSpan{
		cur:    0,
		leftLo: 1, leftHi: 1 + half,
		rghtLo: 1 + half, rghtHi: n,
	}
}

func (PostOrder) split(n int) splitSpan {
	half := (n - 1) / 2
	return splitSpan{
		cur:    n - 1,
		leftLo: 0, leftHi: half,
		rghtLo: half, rghtHi: n - 1,
	}
}
