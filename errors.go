package comptree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "errors"

var (
	// ErrInvalidTreeSize signals a buffer length which cannot hold a complete
	// binary tree, i.e., a length n where n+1 is not a power of two or n is 0.
	ErrInvalidTreeSize = errors.New("comptree: invalid complete-tree size")
)
