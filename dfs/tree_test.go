package dfs

import (
	"errors"
	"testing"

	"github.com/npillmayer/comptree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInorderRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	tree, err := FromSlice[int, InOrder]([]int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Height() != 3 {
		t.Fatalf("height = %d, want 3", tree.Height())
	}
	it := comptree.NewInorderIter[int](tree.Cursor())
	var res []int
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		res = append(res, a)
	}
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if !equalInts(res, want) {
		t.Errorf("inorder read-back = %v, want %v", res, want)
	}
}

func TestPreorderOverInorderStorage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	//       3
	//   1       5
	// 0   2   4   6
	tree, err := FromSlice[int, InOrder]([]int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it := comptree.NewPreorderIter[int](tree.Cursor())
	var res []int
	for a, ok := it.Next(); ok; a, ok = it.Next() {
		res = append(res, a)
	}
	want := []int{3, 1, 0, 2, 5, 4, 6}
	if !equalInts(res, want) {
		t.Errorf("preorder over inorder storage = %v, want %v", res, want)
	}
}

func TestPreorderStorageIsLinear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	tree, err := FromSlice[int, PreOrder]([]int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res []int
	comptree.DFSPreorder(tree.Cursor(), func(a int) {
		res = append(res, a)
	})
	if !equalInts(res, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("preorder traversal of preorder storage = %v, want linear", res)
	}
}

func TestPostorderStorage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	tree, err := FromSlice[int, PostOrder]([]int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res []int
	comptree.DFSPostorder(tree.Cursor(), func(a int) {
		res = append(res, a)
	})
	if !equalInts(res, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Errorf("postorder traversal of postorder storage = %v, want linear", res)
	}
	res = res[:0]
	comptree.DFSPreorder(tree.Cursor(), func(a int) {
		res = append(res, a)
	})
	want := []int{6, 2, 0, 1, 5, 3, 4}
	if !equalInts(res, want) {
		t.Errorf("preorder traversal of postorder storage = %v, want %v", res, want)
	}
}

func TestFromSliceValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	for _, length := range []int{0, 2, 4, 6, 8} {
		if _, err := FromSlice[int, InOrder](make([]int, length)); !errors.Is(err, comptree.ErrInvalidTreeSize) {
			t.Errorf("length %d: error = %v, want ErrInvalidTreeSize", length, err)
		}
	}
	for _, length := range []int{1, 3, 7, 15} {
		if _, err := FromSlice[int, InOrder](make([]int, length)); err != nil {
			t.Errorf("length %d: unexpected error: %v", length, err)
		}
	}
}

func TestGeneratorFillsStorageOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	for h := 1; h <= 6; h++ {
		next := 0
		tree := New[int, InOrder](h, func() int {
			v := next
			next++
			return v
		})
		if tree.Len() != comptree.NumNodes(h) {
			t.Errorf("height %d: %d nodes, want %d", h, tree.Len(), comptree.NumNodes(h))
		}
		// the generator fills in storage order, so the in-order walk is 0..n-1
		expectLinear(t, tree, h)
	}
}

func expectLinear(t *testing.T, tree *Tree[int, InOrder], h int) {
	t.Helper()
	want := 0
	comptree.DFSInorder(tree.Cursor(), func(a int) {
		if a != want {
			t.Errorf("height %d: inorder walk saw %d, want %d", h, a, want)
		}
		want++
	})
	if want != tree.Len() {
		t.Errorf("height %d: inorder walk visited %d nodes, want %d", h, want, tree.Len())
	}
}

func TestZipSumOverTwoTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	a, err := FromSlice[int, InOrder]([]int{0, 1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := FromSlice[int, InOrder]([]int{6, 5, 4, 3, 2, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sums := comptree.Map(comptree.Zip[int, int](a.Cursor(), b.Cursor()),
		func(p comptree.Pair[int, int]) int {
			return p.Left + p.Right
		})
	comptree.DFSInorder(sums, func(a int) {
		if a != 6 {
			t.Errorf("pairwise sum = %d, want 6 at every node", a)
		}
	})
}

func TestDepthTagging(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	tree := New[int, InOrder](4, func() int { return 0 })
	tagged := comptree.WithDepth[int](tree.Cursor(), 0)
	height := tree.Height()
	var walk func(v comptree.Visitor[comptree.Deep[int]], parentDepth int)
	walk = func(v comptree.Visitor[comptree.Deep[int]], parentDepth int) {
		d, children := v.Next()
		if d.Depth != parentDepth+1 {
			t.Errorf("depth %d under parent depth %d, want +1 per level", d.Depth, parentDepth)
		}
		if children == nil {
			if d.Depth != height-1 {
				t.Errorf("leaf at depth %d, want %d", d.Depth, height-1)
			}
			return
		}
		walk(children[0], d.Depth)
		walk(children[1], d.Depth)
	}
	walk(tagged, -1)
}

// TestSiblingSpanDisjointness writes sentinels through the two mutable
// children of a split; sub-span splitting must keep them apart.
func TestSiblingSpanDisjointness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	tree := New[int, InOrder](3, func() int { return 0 })
	root, children := tree.CursorMut().Next()
	if children == nil {
		t.Fatal("root of a height-3 tree must have children")
	}
	*root = 7
	left := 100
	comptree.DFSInorder(children[0], func(a *int) {
		*a = left
		left++
	})
	right := 200
	comptree.DFSInorder(children[1], func(a *int) {
		*a = right
		right++
	})
	// in-order storage: left subtree [0..2], root at 3, right subtree [4..6]
	want := []int{100, 101, 102, 7, 200, 201, 202}
	if !equalInts(tree.Nodes(), want) {
		t.Errorf("storage after sentinel writes = %v, want %v", tree.Nodes(), want)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
