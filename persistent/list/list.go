package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pfds/maybe"
	"github.com/npillmayer/pfds/result"
)

// List is a persistent list of elements of type T. It is either empty (Nil)
// or a cons cell of a head element and a tail list.
//
// An empty instance is usable as an empty list, i.e. this is legal:
//
//     xs := list.List[int]{}.Cons(42)
//
type List[T any] struct {
	cell *cell[T]
}

// cell is an immutable cons cell. count caches the length of the list
// starting at this cell.
type cell[T any] struct {
	head  T
	tail  *cell[T]
	count int
}

// Empty returns the empty list for element type T.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons returns a new list with x in front of xs. xs is shared, not copied.
func Cons[T any](x T, xs List[T]) List[T] {
	return xs.Cons(x)
}

// Cons2 returns the two-element list (x :: (y :: Nil)).
func Cons2[T any](x, y T) List[T] {
	return Cons(x, Cons(y, Empty[T]()))
}

// Of returns a list holding elems in the given order.
func Of[T any](elems ...T) List[T] {
	xs := Empty[T]()
	for i := len(elems) - 1; i >= 0; i-- {
		xs = xs.Cons(elems[i])
	}
	return xs
}

// --- API -------------------------------------------------------------------

// Cons returns a new list with x in front of xs. O(1).
func (xs List[T]) Cons(x T) List[T] {
	return List[T]{cell: &cell[T]{head: x, tail: xs.cell, count: xs.Len() + 1}}
}

// IsEmpty is true iff xs is the empty list.
func (xs List[T]) IsEmpty() bool {
	return xs.cell == nil
}

// Len returns the number of elements of xs. O(1).
func (xs List[T]) Len() int {
	if xs.cell == nil {
		return 0
	}
	return xs.cell.count
}

// Head returns the first element of xs. It returns ErrEmptyList if xs is empty.
func (xs List[T]) Head() (T, error) {
	if xs.cell == nil {
		var none T
		return none, ErrEmptyList
	}
	return xs.cell.head, nil
}

// Tail returns xs without its first element. The tail is shared with xs.
// It returns ErrEmptyList if xs is empty.
func (xs List[T]) Tail() (List[T], error) {
	if xs.cell == nil {
		return xs, ErrEmptyList
	}
	return List[T]{cell: xs.cell.tail}, nil
}

// First returns the first element of xs, or Nothing if xs is empty.
func (xs List[T]) First() maybe.Maybe[T] {
	if xs.cell == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(xs.cell.head)
}

// TryHead is Head packed into a Result.
func (xs List[T]) TryHead() result.Result[T] {
	return result.Of[T](xs.Head())
}

// TryTail is Tail packed into a Result.
func (xs List[T]) TryTail() result.Result[List[T]] {
	return result.Of[List[T]](xs.Tail())
}

// Slice returns the elements of xs as a newly allocated slice.
func (xs List[T]) Slice() []T {
	s := make([]T, 0, xs.Len())
	for c := xs.cell; c != nil; c = c.tail {
		s = append(s, c.head)
	}
	return s
}

// String renders xs as (x₀ :: (x₁ :: … Nil)). Elements are formatted with fmt.Sprint.
func (xs List[T]) String() string {
	var sb strings.Builder
	for c := xs.cell; c != nil; c = c.tail {
		sb.WriteRune('(')
		sb.WriteString(fmt.Sprint(c.head))
		sb.WriteString(" :: ")
	}
	sb.WriteString("Nil")
	sb.WriteString(strings.Repeat(")", xs.Len()))
	return sb.String()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for the variants of xs. Use it like this:
//
//     var x int
//     var rest list.List[int]
//     switch m := xs.Match(); m {
//     case m.Cons(&x, &rest):
//         …
//     case m.Nil():
//         …
//     }
//
func (xs List[T]) Match() Matcher[T] {
	return matcher[T]{xs: xs}
}

// Matcher binds the payload of a list variant in a switch statement.
// Exactly one of its methods returns the matcher itself, the other returns nil.
type Matcher[T any] interface {
	Cons(head *T, tail *List[T]) Matcher[T]
	Nil() Matcher[T]
}

type matcher[T any] struct {
	xs List[T]
}

func (lm matcher[T]) Cons(head *T, tail *List[T]) Matcher[T] {
	if lm.xs.cell == nil {
		return nil
	}
	*head = lm.xs.cell.head
	*tail = List[T]{cell: lm.xs.cell.tail}
	return lm
}

func (lm matcher[T]) Nil() Matcher[T] {
	if lm.xs.cell == nil {
		return lm
	}
	return nil
}
