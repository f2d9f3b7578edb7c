package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "iter"

// The pull iterators below are the robust counterparts of the recursive
// walks in visitor.go: they keep an explicit stack (or queue), so tree
// height never translates into call-stack depth, and they support partial
// consumption.
//
// Every iterator reports a remaining-count estimate through SizeHint. When
// the seed visitor's level hint is exact — both storage layouts guarantee
// this — the count is exact as well and SizeHint returns (n, n, true).

// PreorderIter iterates items in root, left, right order.
type PreorderIter[T any] struct {
	stack     []Visitor[T]
	remaining int
	exact     bool
}

// NewPreorderIter creates a pull iterator over the subtree under v,
// yielding items in preorder.
func NewPreorderIter[T any](v Visitor[T]) *PreorderIter[T] {
	it := &PreorderIter[T]{}
	if levels, ok := exactLevels(v); ok {
		it.exact = true
		it.remaining = NumNodes(levels)
		it.stack = make([]Visitor[T], 0, levels+1)
	}
	it.stack = append(it.stack, v)
	return it
}

// Next yields the next item, or ok=false when the iterator is exhausted.
func (it *PreorderIter[T]) Next() (item T, ok bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	v := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	item, children := v.Next()
	if children != nil {
		// right below left, so that the next pop descends left first
		it.stack = append(it.stack, children[1], children[0])
	}
	it.remaining--
	return item, true
}

// SizeHint returns bounds on the number of items left, and whether the
// bounds are exact.
func (it *PreorderIter[T]) SizeHint() (lower int, upper int, exact bool) {
	if it.exact {
		return it.remaining, it.remaining, true
	}
	return len(it.stack), 0, false
}

// Range drains the iterator as a range-over-func sequence.
func (it *PreorderIter[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

// inorderFrame is a suspended node: its item is pending and, for internal
// nodes, its right subtree has not been entered yet.
type inorderFrame[T any] struct {
	item  T
	right Visitor[T]
	leaf  bool
}

// InorderIter iterates items in left, root, right order.
type InorderIter[T any] struct {
	stack     []inorderFrame[T]
	remaining int
	exact     bool
}

// NewInorderIter creates a pull iterator over the subtree under v,
// yielding items in inorder.
func NewInorderIter[T any](v Visitor[T]) *InorderIter[T] {
	it := &InorderIter[T]{}
	if levels, ok := exactLevels(v); ok {
		it.exact = true
		it.remaining = NumNodes(levels)
		it.stack = make([]inorderFrame[T], 0, levels)
	}
	it.descendLeft(v)
	return it
}

// descendLeft walks the left spine under v, suspending every node passed on
// the way, so that successive pops naturally yield left-to-right order.
func (it *InorderIter[T]) descendLeft(v Visitor[T]) {
	for {
		item, children := v.Next()
		if children == nil {
			it.stack = append(it.stack, inorderFrame[T]{item: item, leaf: true})
			return
		}
		it.stack = append(it.stack, inorderFrame[T]{item: item, right: children[1]})
		v = children[0]
	}
}

// Next yields the next item, or ok=false when the iterator is exhausted.
func (it *InorderIter[T]) Next() (item T, ok bool) {
	if len(it.stack) == 0 {
		var none T
		return none, false
	}
	f := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if !f.leaf {
		it.descendLeft(f.right)
	}
	it.remaining--
	return f.item, true
}

// SizeHint returns bounds on the number of items left, and whether the
// bounds are exact.
func (it *InorderIter[T]) SizeHint() (lower int, upper int, exact bool) {
	if it.exact {
		return it.remaining, it.remaining, true
	}
	return len(it.stack), 0, false
}

// Range drains the iterator as a range-over-func sequence.
func (it *InorderIter[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}

// BFSIter iterates items level by level, left to right within a level.
type BFSIter[T any] struct {
	queue     []Visitor[T]
	head      int
	remaining int
	exact     bool
}

// NewBFSIter creates a pull iterator over the subtree under v, yielding
// items in breadth-first order.
func NewBFSIter[T any](v Visitor[T]) *BFSIter[T] {
	it := &BFSIter[T]{}
	if levels, ok := exactLevels(v); ok {
		it.exact = true
		it.remaining = NumNodes(levels)
		// the queue is widest at the leaf level
		it.queue = make([]Visitor[T], 0, 1<<uint(levels-1))
	}
	it.queue = append(it.queue, v)
	return it
}

// Next yields the next item, or ok=false when the iterator is exhausted.
func (it *BFSIter[T]) Next() (item T, ok bool) {
	if it.head == len(it.queue) {
		var none T
		return none, false
	}
	v := it.queue[it.head]
	it.head++
	if it.head == len(it.queue) {
		it.queue = it.queue[:0]
		it.head = 0
	}
	item, children := v.Next()
	if children != nil {
		it.queue = append(it.queue, children[0], children[1])
	}
	it.remaining--
	return item, true
}

// SizeHint returns bounds on the number of items left, and whether the
// bounds are exact.
func (it *BFSIter[T]) SizeHint() (lower int, upper int, exact bool) {
	if it.exact {
		return it.remaining, it.remaining, true
	}
	return len(it.queue) - it.head, 0, false
}

// Range drains the iterator as a range-over-func sequence.
func (it *BFSIter[T]) Range() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
