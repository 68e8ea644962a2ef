package bst

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// String renders tree as nested triples (left, value, right), with the empty
// tree written as E, e.g.
//
//     ((E, a, E), b, (E, c, E))
//
func (tree Tree[T]) String() string {
	var sb strings.Builder
	writeNode(&sb, tree.root)
	return sb.String()
}

func writeNode[T any](sb *strings.Builder, n *node[T]) {
	if n == nil {
		sb.WriteRune('E')
		return
	}
	sb.WriteRune('(')
	writeNode(sb, n.left)
	sb.WriteString(", ")
	sb.WriteString(fmt.Sprint(n.value))
	sb.WriteString(", ")
	writeNode(sb, n.right)
	sb.WriteRune(')')
}

// Layout draws tree top-down, one node per line, left subtree before right.
// A missing child of an inner node is drawn as E.
func (tree Tree[T]) Layout() string {
	printer := tp.New()
	layoutNode(printer, tree.root)
	return printer.String()
}

func layoutNode[T any](printer tp.Tree, n *node[T]) {
	if n == nil {
		printer.AddNode("E")
		return
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(fmt.Sprint(n.value))
		return
	}
	branch := printer.AddBranch(fmt.Sprint(n.value))
	layoutNode(branch, n.left)
	layoutNode(branch, n.right)
}
