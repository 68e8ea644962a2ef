package list

import "github.com/pkg/errors"

// ErrEmptyList is returned when accessing the head or tail of an empty list.
var ErrEmptyList = errors.New("access to empty list")

// ErrIndexOutOfRange is returned when a list position does not exist.
// Errors returned by Update wrap it with index and length information;
// check for it with errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

func indexError(op string, i, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s at index %d of list with length %d", op, i, length)
}
