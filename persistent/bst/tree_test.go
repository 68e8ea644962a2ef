package bst

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/pfds/ord"
)

func TestTreeEmpty(t *testing.T) {
	tree := Ordered[int]()
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, "E", tree.String())
	assert.False(t, tree.Member(1))
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Depth())
	assert.True(t, tree.Valid())
}

func TestTreeZeroValue(t *testing.T) {
	var tree Tree[string]
	assert.True(t, tree.IsEmpty())
	assert.False(t, tree.Member("x"))
	assert.Equal(t, "E", tree.String())
	assert.Panics(t, func() { tree.Insert("x") })
	assert.Panics(t, func() { Immutable[string](nil) })
}

func TestTreeInsertInEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	defer teardown()
	//
	tree := Ordered[int]().Insert(7)
	require.NotNil(t, tree.root)
	assert.Nil(t, tree.root.left)
	assert.Nil(t, tree.root.right)
	assert.Equal(t, "(E, 7, E)", tree.String())
	assert.True(t, tree.Member(7))
}

func TestTreeTextbookScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	tree := Ordered[string]()
	for _, c := range []string{"d", "b", "a", "c", "g", "f", "h"} {
		tree = tree.Insert(c)
	}
	assert.Equal(t, "(((E, a, E), b, (E, c, E)), d, ((E, f, E), g, (E, h, E)))", tree.String())
	u := tree.Insert("e")
	assert.Equal(t, "(((E, a, E), b, (E, c, E)), d, (((E, e, E), f, E), g, (E, h, E)))", u.String())
	require.True(t, u.Valid(), "expected search tree property to hold")
	for _, c := range strings.Split("abcdefgh", "") {
		if !u.Member(c) {
			t.Errorf("expected %q to be a member of the tree", c)
		}
	}
	for _, c := range []string{"", "i", "z", "A", "dd"} {
		if u.Member(c) {
			t.Errorf("did not expect %q to be a member of the tree", c)
		}
	}
	assert.False(t, tree.Member("e"), "original tree must not change")
	// the untouched left subtree is shared, the path d→g→f is copied
	assert.Same(t, tree.root.left, u.root.left)
	assert.Same(t, tree.root.right.right, u.root.right.right)
	assert.NotSame(t, tree.root, u.root)
	assert.NotSame(t, tree.root.right, u.root.right)
	assert.NotSame(t, tree.root.right.left, u.root.right.left)
}

func TestTreeReinsertIsNoOp(t *testing.T) {
	tree := Ordered[int]().Insert(5).Insert(3).Insert(8)
	again := tree.Insert(3)
	assert.Same(t, tree.root, again.root)
	assert.Equal(t, tree.String(), again.String())
	assert.Equal(t, 3, again.Len())
}

func TestTreeDegeneratesForSortedInput(t *testing.T) {
	tree := Ordered[int]()
	for i := 0; i < 100; i++ {
		tree = tree.Insert(i)
	}
	assert.Equal(t, 100, tree.Len())
	assert.Equal(t, 100, tree.Depth())
	assert.True(t, tree.Valid())
	assert.True(t, tree.Member(99))
	assert.False(t, tree.Member(100))
}

func TestTreeElements(t *testing.T) {
	tree := Ordered[int]()
	for _, x := range []int{50, 20, 80, 10, 30, 70, 90, 20, 50} {
		tree = tree.Insert(x)
	}
	want := []int{10, 20, 30, 50, 70, 80, 90}
	if diff := cmp.Diff(want, tree.Elements()); diff != "" {
		t.Errorf("Elements() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, tree.Depth())
	assert.Empty(t, Ordered[int]().Elements())
}

func TestTreeWithComparator(t *testing.T) {
	tree := Immutable(ord.Reverse(ord.Natural[int]()))
	for _, x := range []int{2, 1, 3} {
		tree = tree.Insert(x)
	}
	assert.Equal(t, "((E, 3, E), 2, (E, 1, E))", tree.String())
	assert.Equal(t, []int{3, 2, 1}, tree.Elements())
	assert.True(t, tree.Valid())
	assert.True(t, tree.Member(1))
}

func TestTreeValidDetectsViolation(t *testing.T) {
	tree := Ordered[int]().Insert(5).Insert(3)
	broken := tree.withRoot(&node[int]{value: 5, left: &node[int]{value: 7}})
	assert.False(t, broken.Valid())
	broken = tree.withRoot(&node[int]{value: 5, right: &node[int]{value: 5}})
	assert.False(t, broken.Valid())
}

func TestTreeMatch(t *testing.T) {
	tree := Ordered[int]().Insert(2).Insert(1).Insert(3)
	var l, r Tree[int]
	var x int
	switch m := tree.Match(); m {
	case m.Node(&l, &x, &r):
		assert.Equal(t, 2, x)
		assert.Equal(t, "(E, 1, E)", l.String())
		assert.Equal(t, "(E, 3, E)", r.String())
		// subtrees keep the comparator
		assert.True(t, r.Insert(4).Valid())
	case m.Empty():
		t.Error("expected non-empty tree to match Node")
	}
	matched := false
	switch m := Ordered[int]().Match(); m {
	case m.Node(&l, &x, &r):
		t.Error("expected empty tree not to match Node")
	case m.Empty():
		matched = true
	}
	assert.True(t, matched)
}

func TestTreeSumByMatching(t *testing.T) {
	var sum func(Tree[int]) int
	sum = func(tree Tree[int]) int {
		var l, r Tree[int]
		var x int
		switch m := tree.Match(); m {
		case m.Node(&l, &x, &r):
			return sum(l) + x + sum(r)
		case m.Empty():
		}
		return 0
	}
	tree := Ordered[int]()
	for _, x := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree = tree.Insert(x)
	}
	assert.Equal(t, 28, sum(tree))
}

func TestFindPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.bst")
	defer teardown()
	//
	tree := Ordered[int]().Insert(4).Insert(2).Insert(6).Insert(5)
	path, found := tree.findPath(5, nil)
	require.True(t, found)
	assert.Equal(t, "[⟨4↘⟩⟨6↙⟩]", path.String())
	path, found = tree.findPath(3, nil)
	require.False(t, found)
	assert.Equal(t, "[⟨4↙⟩⟨2↘⟩]", path.String())
}

func TestLayout(t *testing.T) {
	tree := Ordered[string]().Insert("b").Insert("a")
	out := tree.Layout()
	t.Logf("layout =\n%s", out)
	for _, s := range []string{"b", "a", "E"} {
		assert.Contains(t, out, s)
	}
	assert.Contains(t, Ordered[int]().Layout(), "E")
}
