/*
Package result implements values of computations which may fail.

A Result is either Ok, carrying a value, or Err, carrying an error. It is a
statically typed alternative to Go's (value, error) pairs for places where a
single value is more convenient, e.g. when results are stored in containers or
chained. Use the matcher to take a Result apart:

    var v int
    var err error
    switch m := r.Match(); m {
    case m.Ok(&v):
        …
    case m.Err(&err):
        …
    }

*/
package result

// Result is the outcome of a computation producing a T.
type Result[T any] interface {
	Match() Matcher[T]
	IsOk() bool
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err called with nil error")
	}
	return result[T]{err: err}
}

// Of converts Go's (value, error) pair into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to an Ok value; errors are passed on unchanged.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

// Matcher binds the payload of a Result in a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
