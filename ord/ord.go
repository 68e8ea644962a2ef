/*
Package ord provides total-order comparison for element types of ordered
containers.

A Comparator is a plain three-way comparison function. Containers store a
comparator once and use the relational tests of this package at each
comparison site:

    cmp := ord.Natural[string]()
    if ord.Less(cmp, "a", "b") {
        …
    }

Any comparator satisfying the axioms of a total order (reflexive,
antisymmetric, transitive) is acceptable. Behaviour of containers is
undefined if a comparator answers inconsistently across calls.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ord

import (
	"golang.org/x/exp/constraints"
)

// Comparator compares a and b and returns a negative number if a < b,
// zero if a == b and a positive number if a > b.
type Comparator[T any] func(a, b T) int

// Natural returns a comparator for the built-in order of T.
func Natural[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// Reverse returns a comparator ordering elements opposite to c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// --- Ordering --------------------------------------------------------------

// Ordering is the result of a three-way comparison.
type Ordering int8

// Possible outcomes of a comparison.
const (
	LT Ordering = -1
	EQ Ordering = 0
	GT Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case LT:
		return "LT"
	case GT:
		return "GT"
	}
	return "EQ"
}

// Compare compares a and b using c and normalizes the result to an Ordering.
func Compare[T any](c Comparator[T], a, b T) Ordering {
	switch n := c(a, b); {
	case n < 0:
		return LT
	case n > 0:
		return GT
	}
	return EQ
}

// Less is true if a < b under c.
func Less[T any](c Comparator[T], a, b T) bool {
	return c(a, b) < 0
}

// Greater is true if a > b under c.
func Greater[T any](c Comparator[T], a, b T) bool {
	return c(a, b) > 0
}

// Equal is true if a and b compare equal under c.
func Equal[T any](c Comparator[T], a, b T) bool {
	return c(a, b) == 0
}
