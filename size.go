package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "math/bits"

// NumNodes returns the number of nodes of a complete binary tree of the given
// height, which is 2^height − 1. Height must be at least 1.
func NumNodes(height int) int {
	assert(height >= 1, "complete trees have height of at least 1")
	return 1<<uint(height) - 1
}

// HeightForLen returns the height of a complete binary tree stored in a
// buffer of length n, which is log2(n+1). The result is exact only for valid
// complete-tree lengths (see IsCompleteLen).
func HeightForLen(n int) int {
	assert(n >= 1, "complete trees have at least one node")
	return bits.Len(uint(n+1)) - 1
}

// IsCompleteLen reports whether a buffer of length n can hold a complete
// binary tree, i.e., whether n+1 is a power of two and n is nonzero.
func IsCompleteLen(n int) bool {
	return n > 0 && (n+1)&n == 0
}
