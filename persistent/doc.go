/*
Package persistent is the home of immutable persistent data structures.

Persistent data structures are data structures which can be “modified”
efficiently, leaving the original unchanged. Every update returns a new version,
and every version observed earlier stays valid. Functional programming languages
like ML or Lisp have long relied on using them.

Sub-packages:

    list    a singly-linked cons list
    bst     an unbalanced binary search tree

Both offer structural sharing, which means that if two versions of a structure
are mostly copies of each other, most of the memory they take up will be shared
between them. No node is ever changed after construction, therefore persistent
structures may be read from any number of goroutines without locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
