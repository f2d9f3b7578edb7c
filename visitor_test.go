package comptree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// spanVisitor is a minimal in-order span visitor, local to the tests of the
// generic machinery. The real layouts live in the bfs and dfs subpackages
// and have their own tests.
type spanVisitor struct {
	span []int
}

func (v spanVisitor) Next() (int, *[2]Visitor[int]) {
	if len(v.span) == 1 {
		return v.span[0], nil
	}
	mid := len(v.span) / 2
	return v.span[mid], &[2]Visitor[int]{
		spanVisitor{span: v.span[:mid]},
		spanVisitor{span: v.span[mid+1:]},
	}
}

func (v spanVisitor) LevelRemainingHint() (int, int, bool) {
	left := HeightForLen(len(v.span))
	return left, left, true
}

func (v spanVisitor) FixedDepth() {}

// unhinted hides the exactness of an inner visitor's level hint.
type unhinted struct {
	inner Visitor[int]
}

func (v unhinted) Next() (int, *[2]Visitor[int]) {
	item, children := v.inner.Next()
	if children == nil {
		return item, nil
	}
	return item, &[2]Visitor[int]{
		unhinted{inner: children[0]},
		unhinted{inner: children[1]},
	}
}

func (v unhinted) LevelRemainingHint() (int, int, bool) {
	return 0, 0, false
}

func seven() spanVisitor {
	return spanVisitor{span: []int{0, 1, 2, 3, 4, 5, 6}}
}

func TestDFSPreorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	var res []int
	DFSPreorder(seven(), func(a int) {
		res = append(res, a)
	})
	want := []int{3, 1, 0, 2, 5, 4, 6}
	if !equalInts(res, want) {
		t.Errorf("preorder walk = %v, want %v", res, want)
	}
}

func TestDFSInorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	var res []int
	DFSInorder(seven(), func(a int) {
		res = append(res, a)
	})
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if !equalInts(res, want) {
		t.Errorf("inorder walk = %v, want %v", res, want)
	}
}

func TestDFSPostorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "comptree")
	defer teardown()
	//
	var res []int
	DFSPostorder(seven(), func(a int) {
		res = append(res, a)
	})
	want := []int{0, 2, 1, 4, 6, 5, 3}
	if !equalInts(res, want) {
		t.Errorf("postorder walk = %v, want %v", res, want)
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
