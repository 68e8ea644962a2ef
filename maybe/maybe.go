/*
Package maybe implements optional values.

A Maybe is either Just a value or Nothing. Containers of this module use it for
accessors which have no sensible result for some inputs, e.g. the first element
of an empty list. Clients inspect a Maybe with a matcher:

    var x int
    switch m := xs.First().Match(); m {
    case m.Just(&x):
        …
    case m.Nothing():
        …
    }

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsNothing() bool
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the absent value for T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of returns Just(x) if ok, Nothing otherwise. It bridges Go's comma-ok idiom.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if any, possibly changing the type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher binds the payload of a Maybe in a switch statement.
// Exactly one of its methods returns the matcher itself, all others return nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
