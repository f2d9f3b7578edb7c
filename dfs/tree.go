package dfs

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/comptree"
)

// Tree is a complete binary tree of height ≥ 1, stored as a flat slice in
// the depth-first order selected by the policy type parameter O. Its shape
// is fixed: a tree of height h holds exactly 2^h − 1 elements.
type Tree[T any, O Order] struct {
	nodes  []T
	height int
}

// New creates a tree of the given height, calling gen once per node in
// storage order — for the depth-first layout the storage order is the
// traversal order of the policy O, so this is a plain linear fill. Height
// must be at least 1.
func New[T any, O Order](height int, gen func() T) *Tree[T, O] {
	assert(height >= 1, "complete trees have height of at least 1")
	n := comptree.NumNodes(height)
	nodes := make([]T, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, gen())
	}
	return &Tree[T, O]{nodes: nodes, height: height}
}

// FromSlice wraps a caller-supplied buffer, interpreted as depth-first
// storage in the order of policy O. The buffer length must be 2^h − 1 for
// some height h ≥ 1; any other length yields comptree.ErrInvalidTreeSize.
// The slice is not copied.
func FromSlice[T any, O Order](nodes []T) (*Tree[T, O], error) {
	if !comptree.IsCompleteLen(len(nodes)) {
		tracer().Debugf("dfs tree rejects buffer of length %d", len(nodes))
		return nil, fmt.Errorf("%w: length %d", comptree.ErrInvalidTreeSize, len(nodes))
	}
	return &Tree[T, O]{nodes: nodes, height: comptree.HeightForLen(len(nodes))}, nil
}

// Height returns the height of the tree, which is at least 1.
func (t *Tree[T, O]) Height() int {
	return t.height
}

// Len returns the number of nodes, which is 2^Height − 1.
func (t *Tree[T, O]) Len() int {
	return len(t.nodes)
}

// Nodes returns the backing slice in storage order.
func (t *Tree[T, O]) Nodes() []T {
	return t.nodes
}

// Cursor returns a read-only visitor positioned at the root.
func (t *Tree[T, O]) Cursor() Cursor[T, O] {
	return Cursor[T, O]{span: t.nodes}
}

// CursorMut returns a mutating visitor positioned at the root. Only one
// root cursor should be live at a time; descendants of a single root cursor
// are safe to use concurrently once split apart.
func (t *Tree[T, O]) CursorMut() CursorMut[T, O] {
	return CursorMut[T, O]{span: t.nodes}
}

// Cursor is a read-only visitor over a depth-first tree. It yields items by
// value. The cursor holds the contiguous span of the remaining subtree; a
// span of length 1 is a leaf.
type Cursor[T any, O Order] struct {
	span []T
}

// Next consumes the cursor, returning the current item and the two child
// cursors, or nil children at a leaf.
func (c Cursor[T, O]) Next() (T, *[2]comptree.Visitor[T]) {
	if len(c.span) == 1 {
		return c.span[0], nil
	}
	var order O
	s := order.split(len(c.span))
	return c.span[s.cur], &[2]comptree.Visitor[T]{
		Cursor[T, O]{span: c.span[s.leftLo:s.leftHi]},
		Cursor[T, O]{span: c.span[s.rghtLo:s.rghtHi]},
	}
}

// LevelRemainingHint returns the exact number of levels at and below the
// cursor, derived from the span length as log2(len+1).
func (c Cursor[T, O]) LevelRemainingHint() (int, int, bool) {
	left := comptree.HeightForLen(len(c.span))
	return left, left, true
}

// FixedDepth marks the level hint as exact.
func (c Cursor[T, O]) FixedDepth() {}

// CursorMut is a mutating visitor over a depth-first tree. It yields
// pointers into the backing slice. Splitting produces two sub-spans with
// disjoint index ranges, so the children are free to mutate concurrently.
type CursorMut[T any, O Order] struct {
	span []T
}

// Next consumes the cursor, returning a pointer to the current item and the
// two child cursors, or nil children at a leaf.
func (c CursorMut[T, O]) Next() (*T, *[2]comptree.Visitor[*T]) {
	if len(c.span) == 1 {
		return &c.span[0], nil
	}
	var order O
	s := order.split(len(c.span))
	// three-index slices: a child span must not be able to reach sibling
	// storage, not even through its capacity
	return &c.span[s.cur], &[2]comptree.Visitor[*T]{
		CursorMut[T, O]{span: c.span[s.leftLo:s.leftHi:s.leftHi]},
		CursorMut[T, O]{span: c.span[s.rghtLo:s.rghtHi:s.rghtHi]},
	}
}

// LevelRemainingHint returns the exact number of levels at and below the
// cursor, derived from the span length as log2(len+1).
func (c CursorMut[T, O]) LevelRemainingHint() (int, int, bool) {
	left := comptree.HeightForLen(len(c.span))
	return left, left, true
}

// FixedDepth marks the level hint as exact.
func (c CursorMut[T, O]) FixedDepth() {}
