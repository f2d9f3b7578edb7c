package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Adapters decorate a visitor with a new behaviour while preserving the
// Visitor contract, so that adapters and traversal algorithms compose
// freely, over either storage layout. All adapters forward the underlying
// level hint (Zip combines the two sides' hints).

// Pair carries the two items produced by the sides of a zipped visitor.
type Pair[S, T any] struct {
	Left  S
	Right T
}

type zipped[S, T any] struct {
	a Visitor[S]
	b Visitor[T]
}

// Zip advances two visitors in lockstep, pairing their items and their
// corresponding children.
//
// The two trees are expected to have the same shape. This is not defended
// against: with differing shapes the zipped visitor stops splitting as soon
// as either side reaches a leaf, silently hiding the rest of the deeper
// tree. Callers zip same-shaped trees only.
func Zip[S, T any](a Visitor[S], b Visitor[T]) Visitor[Pair[S, T]] {
	return zipped[S, T]{a: a, b: b}
}

func (z zipped[S, T]) Next() (Pair[S, T], *[2]Visitor[Pair[S, T]]) {
	aItem, aChildren := z.a.Next()
	bItem, bChildren := z.b.Next()
	item := Pair[S, T]{Left: aItem, Right: bItem}
	if aChildren == nil || bChildren == nil {
		return item, nil
	}
	return item, &[2]Visitor[Pair[S, T]]{
		zipped[S, T]{a: aChildren[0], b: bChildren[0]},
		zipped[S, T]{a: aChildren[1], b: bChildren[1]},
	}
}

func (z zipped[S, T]) LevelRemainingHint() (int, int, bool) {
	aLower, aUpper, aBounded := z.a.LevelRemainingHint()
	bLower, bUpper, bBounded := z.b.LevelRemainingHint()
	lower := min(aLower, bLower)
	switch {
	case aBounded && bBounded:
		return lower, min(aUpper, bUpper), true
	case aBounded:
		return lower, aUpper, true
	case bBounded:
		return lower, bUpper, true
	}
	return lower, 0, false
}

type mapped[S, T any] struct {
	inner Visitor[S]
	fn    func(S) T
}

// Map transforms every item with fn, preserving the tree shape. fn is handed
// unchanged to both children of every split and therefore must be safe to
// call from whatever contexts the children end up in.
func Map[S, T any](v Visitor[S], fn func(S) T) Visitor[T] {
	return mapped[S, T]{inner: v, fn: fn}
}

func (m mapped[S, T]) Next() (T, *[2]Visitor[T]) {
	item, children := m.inner.Next()
	if children == nil {
		return m.fn(item), nil
	}
	return m.fn(item), &[2]Visitor[T]{
		mapped[S, T]{inner: children[0], fn: m.fn},
		mapped[S, T]{inner: children[1], fn: m.fn},
	}
}

func (m mapped[S, T]) LevelRemainingHint() (int, int, bool) {
	return m.inner.LevelRemainingHint()
}

// Deep is an item decorated with the depth of its node.
type Deep[T any] struct {
	Depth int
	Item  T
}

type depthTagged[T any] struct {
	inner Visitor[T]
	depth int
}

// WithDepth decorates every item with a running depth counter, starting at
// start for the current node and increasing by one per level.
func WithDepth[T any](v Visitor[T], start int) Visitor[Deep[T]] {
	return depthTagged[T]{inner: v, depth: start}
}

func (d depthTagged[T]) Next() (Deep[T], *[2]Visitor[Deep[T]]) {
	item, children := d.inner.Next()
	tagged := Deep[T]{Depth: d.depth, Item: item}
	if children == nil {
		return tagged, nil
	}
	return tagged, &[2]Visitor[Deep[T]]{
		depthTagged[T]{inner: children[0], depth: d.depth + 1},
		depthTagged[T]{inner: children[1], depth: d.depth + 1},
	}
}

func (d depthTagged[T]) LevelRemainingHint() (int, int, bool) {
	return d.inner.LevelRemainingHint()
}

type flipped[T any] struct {
	inner Visitor[T]
}

// Flip swaps the left and right child on every split.
func Flip[T any](v Visitor[T]) Visitor[T] {
	return flipped[T]{inner: v}
}

func (f flipped[T]) Next() (T, *[2]Visitor[T]) {
	item, children := f.inner.Next()
	if children == nil {
		return item, nil
	}
	return item, &[2]Visitor[T]{
		flipped[T]{inner: children[1]},
		flipped[T]{inner: children[0]},
	}
}

func (f flipped[T]) LevelRemainingHint() (int, int, bool) {
	return f.inner.LevelRemainingHint()
}

type taken[T any] struct {
	inner  Visitor[T]
	levels int
}

// Take truncates recursion to at most the given number of levels, counting
// the current one: once the budget is down to one level, no children are
// produced. levels must be at least 1.
func Take[T any](v Visitor[T], levels int) Visitor[T] {
	assert(levels >= 1, "cannot take less than one level")
	return taken[T]{inner: v, levels: levels}
}

func (t taken[T]) Next() (T, *[2]Visitor[T]) {
	item, children := t.inner.Next()
	if children == nil || t.levels <= 1 {
		return item, nil
	}
	return item, &[2]Visitor[T]{
		taken[T]{inner: children[0], levels: t.levels - 1},
		taken[T]{inner: children[1], levels: t.levels - 1},
	}
}

func (t taken[T]) LevelRemainingHint() (int, int, bool) {
	lower, upper, bounded := t.inner.LevelRemainingHint()
	if !bounded {
		return min(lower, t.levels), t.levels, true
	}
	return min(lower, t.levels), min(upper, t.levels), true
}
