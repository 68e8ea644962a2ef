package bst

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used for variables holding clones of nodes.

- A new modified incarnation of a tree always is reflected by a new tree.root.

- Nodes are never changed after they have been linked into a tree.

*/

import (
	"golang.org/x/exp/constraints"

	"github.com/npillmayer/pfds/ord"
)

// Tree is an immutable binary search tree. It is either empty or a node
// holding an element together with a left and a right subtree.
//
// Every tree carries the comparator it was created with. Trees derived from it,
// by insertion or by matching subtrees, use the same comparator.
type Tree[T any] struct {
	root *node[T]
	cmp  ord.Comparator[T]
}

type node[T any] struct {
	left, right *node[T]
	value       T
}

// Immutable creates an empty tree ordered by cmp.
// Use it like this:
//
//     tree := bst.Immutable(ord.Reverse(ord.Natural[int]()))
//     tree = tree.Insert(42)
//
func Immutable[T any](cmp ord.Comparator[T]) Tree[T] {
	assertThat(cmp != nil, "tree needs a comparator")
	return Tree[T]{cmp: cmp}
}

// Ordered creates an empty tree ordered by the natural order of T.
func Ordered[T constraints.Ordered]() Tree[T] {
	return Tree[T]{cmp: ord.Natural[T]()}
}

// --- API -------------------------------------------------------------------

// IsEmpty is true iff tree holds no elements.
func (tree Tree[T]) IsEmpty() bool {
	return tree.root == nil
}

// Insert returns a tree containing all elements of tree plus elem.
// If elem is already present, tree is returned unchanged. O(depth).
func (tree Tree[T]) Insert(elem T) Tree[T] {
	assertThat(tree.cmp != nil, "attempt to insert into tree without comparator")
	path, found := tree.findPath(elem, nil)
	if found {
		tracer().Debugf("insert: %v already present, depth %d", elem, len(path))
		return tree
	}
	leaf := &node[T]{value: elem}
	tracer().Debugf("insert: new leaf %v, path = %s", elem, path)
	return tree.withRoot(path.foldR(cloneSeam[T], leaf))
}

// Member is true if an element comparing equal to elem is present. O(depth).
func (tree Tree[T]) Member(elem T) bool {
	n := tree.root
	for n != nil {
		switch ord.Compare(tree.cmp, elem, n.value) {
		case ord.LT:
			n = n.left
		case ord.GT:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of elements in tree. O(n).
func (tree Tree[T]) Len() int {
	return count(tree.root)
}

// Depth returns the number of nodes on the longest path from the root to a leaf.
func (tree Tree[T]) Depth() int {
	return depth(tree.root)
}

// Elements returns the elements of tree in ascending order.
func (tree Tree[T]) Elements() []T {
	elems := make([]T, 0, 16)
	var stack []*node[T]
	n := tree.root
	for n != nil || len(stack) > 0 {
		for ; n != nil; n = n.left {
			stack = append(stack, n)
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		elems = append(elems, n.value)
		n = n.right
	}
	return elems
}

// Valid checks the search tree property at every node: all elements of a left
// subtree are strictly less than the node's element, all elements of a right
// subtree strictly greater.
func (tree Tree[T]) Valid() bool {
	if tree.root == nil {
		return true
	}
	if tree.cmp == nil {
		return false
	}
	return tree.valid(tree.root, nil, nil)
}

func (tree Tree[T]) valid(n *node[T], lo, hi *T) bool {
	if n == nil {
		return true
	}
	if lo != nil && !ord.Greater(tree.cmp, n.value, *lo) {
		return false
	}
	if hi != nil && !ord.Less(tree.cmp, n.value, *hi) {
		return false
	}
	return tree.valid(n.left, lo, &n.value) && tree.valid(n.right, &n.value, hi)
}

func (tree Tree[T]) withRoot(root *node[T]) Tree[T] {
	return Tree[T]{root: root, cmp: tree.cmp}
}

func count[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + count(n.left) + count(n.right)
}

func depth[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	l, r := depth(n.left), depth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for the variants of tree. Use it like this:
//
//     var l, r bst.Tree[int]
//     var x int
//     switch m := tree.Match(); m {
//     case m.Node(&l, &x, &r):
//         …
//     case m.Empty():
//         …
//     }
//
func (tree Tree[T]) Match() Matcher[T] {
	return &matcher[T]{tree: tree}
}

// Matcher binds the payload of a tree variant in a switch statement.
// Exactly one of its methods returns the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Node(left *Tree[T], value *T, right *Tree[T]) Matcher[T]
	Empty() Matcher[T]
}

// matcher is used by pointer: Tree values hold a comparator func and are
// therefore not comparable.
type matcher[T any] struct {
	tree Tree[T]
}

func (tm *matcher[T]) Node(left *Tree[T], value *T, right *Tree[T]) Matcher[T] {
	n := tm.tree.root
	if n == nil {
		return nil
	}
	*left = tm.tree.withRoot(n.left)
	*value = n.value
	*right = tm.tree.withRoot(n.right)
	return tm
}

func (tm *matcher[T]) Empty() Matcher[T] {
	if tm.tree.root == nil {
		return tm
	}
	return nil
}
