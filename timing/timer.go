package timing

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "time"

// Bag is the record handed back up a recursion: the total seconds spent per
// level, root level first. Bags from sibling subtrees are merged with
// Combine. The zero Bag (from the Empty timer) carries no measurements.
type Bag struct {
	seconds []float64
}

// Seconds returns the per-level elapsed times, starting at the root level
// and ending at the leaf level. Empty for bags produced by Empty timers.
func (b Bag) Seconds() []float64 {
	return b.seconds
}

// Combine merges the timer records of two sibling subtrees by adding their
// per-level times.
func Combine(a, b Bag) Bag {
	if a.seconds == nil {
		return b
	}
	for i := range a.seconds {
		if i >= len(b.seconds) {
			break
		}
		a.seconds[i] += b.seconds[i]
	}
	return a
}

// Timer is the hook interface driven by a caller's recursive traversal:
//
//	func recurse(v comptree.Visitor[...], tm timing.Timer) timing.Bag {
//	    tm.Start()
//	    item, children := v.Next()
//	    // ... work on item ...
//	    if children == nil {
//	        return tm.LeafFinish()
//	    }
//	    lt, rt := tm.Split()
//	    return timing.Combine(recurse(children[0], lt), recurse(children[1], rt))
//	}
//
// A Timer, like a visitor, is single-use: Split and LeafFinish consume it.
type Timer interface {
	// Start begins timing the current node.
	Start()
	// Split records the elapsed time on the current level and returns the
	// timers for the two children.
	Split() (Timer, Timer)
	// LeafFinish records the elapsed time and closes the record.
	LeafFinish() Bag
}

// Empty is the no-op timer. Passing it instead of a PerLevel timer opts out
// of measurement without changing the traversal code.
type Empty struct{}

func (Empty) Start()                {}
func (Empty) Split() (Timer, Timer) { return Empty{}, Empty{} }
func (Empty) LeafFinish() Bag       { return Bag{} }

// PerLevel measures elapsed wall-clock time per tree level.
type PerLevel struct {
	seconds []float64
	level   int
	started time.Time
	running bool
}

// NewPerLevel creates a timer for a traversal over a tree of the given
// height. Height must be at least 1.
func NewPerLevel(height int) *PerLevel {
	if height < 1 {
		tracer().Errorf("timing: per-level timer needs height >= 1, got %d", height)
		height = 1
	}
	return &PerLevel{seconds: make([]float64, height)}
}

// Start begins timing the current node.
func (t *PerLevel) Start() {
	t.started = time.Now()
	t.running = true
}

// Split records the elapsed time on the current level and returns the
// timers for the two children, one level further down. The left child
// inherits the accumulated record; the right child starts from zero and is
// merged back in through Combine.
func (t *PerLevel) Split() (Timer, Timer) {
	t.record()
	left := &PerLevel{seconds: t.seconds, level: t.level + 1}
	right := &PerLevel{seconds: make([]float64, len(t.seconds)), level: t.level + 1}
	return left, right
}

// LeafFinish records the elapsed time and returns the per-level record of
// the consumed path.
func (t *PerLevel) LeafFinish() Bag {
	t.record()
	return Bag{seconds: t.seconds}
}

func (t *PerLevel) record() {
	if !t.running {
		return
	}
	t.seconds[t.level] += time.Since(t.started).Seconds()
	t.running = false
}
