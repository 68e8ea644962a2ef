package bst

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pfds/ord"
)

// --- Step ------------------------------------------------------------------

// step holds a node on a search path, together with the direction the search
// took from there.
type step[T any] struct {
	node *node[T]
	dir  ord.Ordering // LT: went left, GT: went right
}

func (s step[T]) String() string {
	if s.dir == ord.LT {
		return fmt.Sprintf("%v↙", s.node.value)
	}
	return fmt.Sprintf("%v↘", s.node.value)
}

// --- Path ------------------------------------------------------------------

type stepPath[T any] []step[T]

func (path stepPath[T]) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path stepPath[T]) foldR(f func(step[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

// findPath tracks the path from the root to the node holding elem, or to the
// empty subtree where elem would have to be inserted. The node holding elem
// is not part of the path.
func (tree Tree[T]) findPath(elem T, pathBuf stepPath[T]) (stepPath[T], bool) {
	path := pathBuf[:0]
	n := tree.root // walking nodes, start search at the top
	for n != nil {
		dir := ord.Compare(tree.cmp, elem, n.value)
		if dir == ord.EQ {
			return path, true
		}
		path = append(path, step[T]{node: n, dir: dir})
		if dir == ord.LT {
			n = n.left
		} else {
			n = n.right
		}
	}
	return path, false
}

// cloneSeam copies the parent node of a step and links child into it, on
// the side the search went. The other subtree is shared.
func cloneSeam[T any](parent step[T], child *node[T]) *node[T] {
	cow := *parent.node
	if parent.dir == ord.LT {
		cow.left = child
	} else {
		cow.right = child
	}
	return &cow
}
