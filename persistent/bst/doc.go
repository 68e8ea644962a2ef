/*
Package bst implements a persistent (immutable) unbalanced binary search tree.

The tree holds a set of elements, ordered by a comparator. Inserting an element
copies the nodes on the path from the root to the insertion point and shares
every other node with the original tree:

    t := bst.Ordered[string]().Insert("d").Insert("b").Insert("g")
    u := t.Insert("e")      // t is unchanged; u shares t's left subtree
    u.Member("e")           // true
    t.Member("e")           // false

No rebalancing takes place: the shape of a tree depends on insertion order only.
Inserting elements in ascending order degrades a tree to a linear list.

This is the tree of chapter 2 of Chris Okasaki: “Purely Functional Data
Structures”, Cambridge University Press, 1998.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fp.bst: "+msg, msgargs...)
		panic(msg)
	}
}
