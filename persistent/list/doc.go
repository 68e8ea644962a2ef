/*
Package list implements a persistent (immutable) singly-linked list.

Lists are built from cons cells. Each cell holds one element and a reference to
the remainder of the list, which may be shared by any number of other lists.
No cell is ever modified after construction, therefore all operations which
“modify” a list create a new incarnation and leave the original untouched:

    xs := list.Of(0, 1, 2)
    ys := list.Of(3, 4, 5)
    zs := xs.Concat(ys)             // (0 :: (1 :: (2 :: (3 :: (4 :: (5 :: Nil))))))
    ws, err := zs.Update(2, 7)      // zs is still unchanged

Concat copies the cells of its left operand and shares the right one; Update
copies the cells in front of the updated position and shares everything behind
it. Suffixes copies nothing at all.

The zero value of List is the empty list. Lists are inherently
concurrency-safe.

This is the list of chapter 2 of Chris Okasaki: “Purely Functional Data
Structures”, Cambridge University Press, 1998.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("fp.list: "+msg, msgargs...)
		panic(msg)
	}
}
