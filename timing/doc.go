/*
Package timing collects per-level elapsed times of recursive tree
traversals.

The package never touches tree internals. A caller's own recursion drives a
Timer through four hooks: Start before working on a node, Split when
descending into the two children, LeafFinish at a leaf, and Combine to merge
the records coming back from two siblings. The result is a Bag holding the
total seconds spent on each level, root level first.

Timer is an interface so that measurement can be compiled out of a hot
recursion: pass Empty instead of a PerLevel timer and every hook collapses
to a no-op.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package timing

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("comptree")
}
