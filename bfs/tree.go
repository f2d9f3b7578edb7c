package bfs

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
// breadth-first order. Its shape is fixed: a tree of height h holds exactly
// 2^h − 1 elements, never more, never less.
type Tree[T any] struct {
	nodes  []T
	height int
}

// New creates a tree of the given height, calling gen once per node in
// storage (breadth-first) order. Height must be at least 1.
func New[T any](height int, gen func() T) *Tree[T] {
	assert(height >= 1, "complete trees have height of at least 1")
	n := comptree.NumNodes(height)
	nodes := make([]T, 0, n)
	for i := 0; i < n; i++ {
		nodes = append(nodes, gen())
	}
	return &Tree[T]{nodes: nodes, height: height}
}

// FromSlice wraps a caller-supplied buffer, interpreted as breadth-first
// storage. The buffer length must be 2^h − 1 for some height h ≥ 1; any
// other length yields comptree.ErrInvalidTreeSize. The slice is not copied.
func FromSlice[T any](nodes []T) (*Tree[T], error) {
	if !comptree.IsCompleteLen(len(nodes)) {
		tracer().Debugf("bfs tree rejects buffer of length %d", len(nodes))
		return nil, fmt.Errorf("%w: length %d", comptree.ErrInvalidTreeSize, len(nodes))
	}
	return &Tree[T]{nodes: nodes, height: comptree.HeightForLen(len(nodes))}, nil
}

// Height returns the height of the tree, which is at least 1.
func (t *Tree[T]) Height() int {
	return t.height
}

// Len returns the number of nodes, which is 2^Height − 1.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Nodes returns the backing slice in storage (breadth-first) order.
func (t *Tree[T]) Nodes() []T {
	return t.nodes
}

// Cursor returns a read-only visitor positioned at the root.
func (t *Tree[T]) Cursor() Cursor[T] {
	return Cursor[T]{nodes: t.nodes, height: t.height}
}

// CursorMut returns a mutating visitor positioned at the root. Only one root
// cursor should be live at a time; descendants of a single root cursor are
// safe to use concurrently once split apart.
func (t *Tree[T]) CursorMut() CursorMut[T] {
	return CursorMut[T]{nodes: t.nodes, height: t.height}
}

// children returns the flat indices of the children of node i.
func children(i int) (int, int) {
	return 2*i + 1, 2*i + 2
}

// Cursor is a read-only visitor over a breadth-first tree. It yields items
// by value.
type Cursor[T any] struct {
	nodes  []T
	index  int
	depth  int
	height int
}

// Next consumes the cursor, returning the current item and the two child
// cursors, or nil children at a leaf.
func (c Cursor[T]) Next() (T, *[2]comptree.Visitor[T]) {
	item := c.nodes[c.index]
	if c.depth == c.height-1 {
		return item, nil
	}
	left, right := children(c.index)
	return item, &[2]comptree.Visitor[T]{
		Cursor[T]{nodes: c.nodes, index: left, depth: c.depth + 1, height: c.height},
		Cursor[T]{nodes: c.nodes, index: right, depth: c.depth + 1, height: c.height},
	}
}

// LevelRemainingHint returns the exact number of levels at and below the
// cursor.
func (c Cursor[T]) LevelRemainingHint() (int, int, bool) {
	left := c.height - c.depth
	return left, left, true
}

// FixedDepth marks the level hint as exact.
func (c Cursor[T]) FixedDepth() {}

// CursorMut is a mutating visitor over a breadth-first tree. It yields
// pointers into the backing slice.
//
// The two pointers produced by splitting an internal node address the slots
// 2i+1 and 2i+2 of the shared slice. Since each live cursor's index is
// reachable by exactly one descent path and splitting consumes the parent,
// sibling cursors can never collide on a slot — handing the two children to
// two goroutines and writing through both is free of data races.
type CursorMut[T any] struct {
	nodes  []T
	index  int
	depth  int
	height int
}

// Next consumes the cursor, returning a pointer to the current item and the
// two child cursors, or nil children at a leaf.
func (c CursorMut[T]) Next() (*T, *[2]comptree.Visitor[*T]) {
	item := &c.nodes[c.index]
	if c.depth == c.height-1 {
		return item, nil
	}
	left, right := children(c.index)
	return item, &[2]comptree.Visitor[*T]{
		CursorMut[T]{nodes: c.nodes, index: left, depth: c.depth + 1, height: c.height},
		CursorMut[T]{nodes: c.nodes, index: right, depth: c.depth + 1, height: c.height},
	}
}

// LevelRemainingHint returns the exact number of levels at and below the
// cursor.
func (c CursorMut[T]) LevelRemainingHint() (int, int, bool) {
	left := c.height - c.depth
	return left, left, true
}

// FixedDepth marks the level hint as exact.
func (c CursorMut[T]) FixedDepth() {}
