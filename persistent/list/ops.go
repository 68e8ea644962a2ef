package list

// Concat returns a list of the elements of xs followed by the elements of ys.
// The cells of xs are copied, ys becomes the shared tail of the result.
// Concat(Nil, ys) returns ys, Concat(xs, Nil) returns xs. O(len(xs)).
func (xs List[T]) Concat(ys List[T]) List[T] {
	if xs.cell == nil {
		return ys
	}
	if ys.cell == nil {
		return xs
	}
	tracer().Debugf("concat: copying %d cells in front of list of length %d", xs.Len(), ys.Len())
	return rebuild(xs.prefix(xs.Len()), ys)
}

// Update returns a copy of xs with the element at zero-based position i replaced
// by y. Cells in front of position i are copied, the tail behind it is shared.
// If i < 0 or i >= xs.Len(), Update returns the empty list and an error wrapping
// ErrIndexOutOfRange. O(i).
func (xs List[T]) Update(i int, y T) (List[T], error) {
	if i < 0 || i >= xs.Len() {
		tracer().Debugf("update: index %d not in [0…%d)", i, xs.Len())
		return Empty[T](), indexError("update", i, xs.Len())
	}
	front := xs.prefix(i)
	at := xs.drop(i)
	assertThat(at != nil, "inconsistent cached length %d", xs.Len())
	return rebuild(front, List[T]{cell: at.tail}.Cons(y)), nil
}

// Suffixes returns all suffixes of xs, longest first: xs itself, its tail,
// and so forth, down to and including the empty list. The resulting list has
// length xs.Len()+1. No cells of xs are copied.
//
//     Suffixes(Of(1, 2, 3)) = ((1 :: (2 :: (3 :: Nil))) :: ((2 :: (3 :: Nil)) :: ((3 :: Nil) :: (Nil :: Nil))))
//
func Suffixes[T any](xs List[T]) List[List[T]] {
	sfx := make([]List[T], 0, xs.Len()+1)
	for c := xs.cell; c != nil; c = c.tail {
		sfx = append(sfx, List[T]{cell: c})
	}
	sfx = append(sfx, Empty[T]())
	return rebuild(sfx, Empty[List[T]]())
}

// Equal is true if xs and ys hold equal elements in the same order.
func Equal[T comparable](xs, ys List[T]) bool {
	return EqualFunc(xs, ys, func(a, b T) bool { return a == b })
}

// EqualFunc compares xs and ys element-wise using eq.
func EqualFunc[T any](xs, ys List[T], eq func(a, b T) bool) bool {
	if xs.Len() != ys.Len() {
		return false
	}
	for a, b := xs.cell, ys.cell; a != nil; a, b = a.tail, b.tail {
		if a == b { // shared suffix
			return true
		}
		if !eq(a.head, b.head) {
			return false
		}
	}
	return true
}

// --- Internals -------------------------------------------------------------

// prefix collects the first n elements of xs. n must not exceed xs.Len().
func (xs List[T]) prefix(n int) []T {
	front := make([]T, 0, n)
	for c := xs.cell; len(front) < n; c = c.tail {
		front = append(front, c.head)
	}
	return front
}

// drop returns the cell at position i, or nil if the list is too short.
func (xs List[T]) drop(i int) *cell[T] {
	c := xs.cell
	for ; i > 0 && c != nil; i-- {
		c = c.tail
	}
	return c
}

// rebuild conses front onto tail, right to left, keeping the order of front.
func rebuild[T any](front []T, tail List[T]) List[T] {
	r := tail
	for i := len(front) - 1; i >= 0; i-- {
		r = r.Cons(front[i])
	}
	return r
}
