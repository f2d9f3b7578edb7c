package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Visitor is a single-use cursor onto one node of a complete binary tree.
//
// Next consumes the visitor: it yields the current node's item and, for an
// internal node, exactly two child visitors; children is nil iff the node is
// a leaf. There is no failure case — a visitor obtained from a validly
// constructed tree always sits on either a leaf or a full internal node.
//
// A visitor value represents the exclusive right to act on its subtree.
// Splitting transfers that right to the two children, which are guaranteed to
// reference disjoint parts of the backing buffer. Callers must not use a
// visitor again after calling Next on it; Go cannot enforce this move, so it
// is a documented contract (the layouts additionally guarantee that honest
// use can never produce two live cursors onto the same node).
//
// LevelRemainingHint estimates the number of levels at and below the current
// node, as a lower bound and an optional upper bound (bounded reports whether
// upper is meaningful). The uninformative default is (0, 0, false); both
// storage layouts return the exact level count and additionally implement
// FixedDepthVisitor.
type Visitor[T any] interface {
	Next() (item T, children *[2]Visitor[T])
	LevelRemainingHint() (lower int, upper int, bounded bool)
}

// FixedDepthVisitor is a marker capability: visitors implementing it promise
// that LevelRemainingHint always returns an exact value (lower == upper).
// Pull iterators test for the marker and, when present, report exact
// remaining element counts instead of mere bounds.
type FixedDepthVisitor interface {
	FixedDepth()
}

// DFSPreorder walks the subtree under v, calling fn on every item in
// root, left, right order.
//
// The walk recurses on the call stack, one frame per level. For trees of
// unusual height prefer the pull iterators, which keep an explicit stack.
func DFSPreorder[T any](v Visitor[T], fn func(T)) {
	item, children := v.Next()
	fn(item)
	if children != nil {
		DFSPreorder(children[0], fn)
		DFSPreorder(children[1], fn)
	}
}

// DFSInorder walks the subtree under v, calling fn on every item in
// left, root, right order.
func DFSInorder[T any](v Visitor[T], fn func(T)) {
	item, children := v.Next()
	if children == nil {
		fn(item)
		return
	}
	DFSInorder(children[0], fn)
	fn(item)
	DFSInorder(children[1], fn)
}

// DFSPostorder walks the subtree under v, calling fn on every item in
// left, right, root order.
func DFSPostorder[T any](v Visitor[T], fn func(T)) {
	item, children := v.Next()
	if children != nil {
		DFSPostorder(children[0], fn)
		DFSPostorder(children[1], fn)
	}
	fn(item)
}

// exactLevels returns the exact number of levels under v, or ok=false if the
// level hint does not pin the count down. Visitors carrying the fixed-depth
// marker are checked against their own promise.
func exactLevels[T any](v Visitor[T]) (int, bool) {
	lower, upper, bounded := v.LevelRemainingHint()
	if _, fixed := v.(FixedDepthVisitor); fixed {
		assert(bounded && lower == upper, "fixed-depth visitor must report an exact level hint")
		return lower, true
	}
	if bounded && lower == upper {
		return lower, true
	}
	return 0, false
}
