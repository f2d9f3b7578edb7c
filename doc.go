/*
Package comptree provides a fixed-shape complete binary tree, stored in a
flat contiguous buffer, together with splittable cursors ("visitors") for
divide-and-conquer traversal.

# Complete trees

A complete binary tree of height h ≥ 1 has exactly 2^h − 1 nodes: every
internal node has exactly two children and all leaves sit at depth h−1.
Because the shape is fixed at construction time, a tree can live in a single
flat buffer and a traversal never has to handle a missing-child case. Two
storage layouts are provided as subpackages:

  - bfs: node i keeps its children at 2i+1 and 2i+2 (the classic heap rule),
  - dfs: every subtree occupies one contiguous span of the buffer, with
    pre-order, in-order and post-order span policies.

# Visitors

A Visitor is a single-use cursor onto one node. Calling Next consumes it and
yields the node's item plus, for internal nodes, two fresh visitors for the
left and right subtree. The two children always reference disjoint parts of
the backing buffer, so a caller may hand them to two goroutines and mutate
through both without synchronization. This package never spawns or schedules
anything itself; the disjointness guarantee is its entire contribution to
concurrency.

All traversal algorithms in this package — recursive walks, stack- and
queue-based pull iterators, zipping, mapping, depth tagging — are implemented
once against the Visitor contract and work identically over either layout.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package comptree

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global tracer with key 'comptree'.
func T() tracing.Trace {
	return tracing.Select("comptree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
