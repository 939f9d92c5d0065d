package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by List operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := l.RemoveAt(7); errors.Is(err, collections.ErrIndexOutOfRange) {
//	    // ...
//	}
var (
	// ErrIndexOutOfRange is returned when an index or span falls outside the
	// valid range of the list. The concrete error is a [*BoundsError].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrInvalidArgument is returned for malformed arguments: nil callbacks,
	// negative counts, surplus variadic arguments or an unusable copy
	// destination.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrNotSupported is returned by the extension points BinarySearch and
	// TrimExcess.
	ErrNotSupported = errors.New("collections: operation not supported")

	// ErrModifiedDuringIteration is returned by ForEach (and raised as a
	// panic by the iterators) when the list is mutated mid-traversal.
	ErrModifiedDuringIteration = errors.New("collections: list was modified during iteration")

	// ErrInvalidOption is returned when [Options] contain a value outside the
	// allowed range.
	ErrInvalidOption = errors.New("collections: invalid option value")
)

// BoundsError describes an index that falls outside [Min, Max].
//
// It unwraps to [ErrIndexOutOfRange]:
//
//	var be *collections.BoundsError
//	if errors.As(err, &be) {
//	    fmt.Println(be.Index, be.Min, be.Max)
//	}
type BoundsError struct {
	Index int
	Min   int
	Max   int
}

// Error reports the valid range and the offending value.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("collections: index out of range, max was %d, min was %d, but %d was given",
		e.Max, e.Min, e.Index)
}

// Unwrap returns [ErrIndexOutOfRange].
func (e *BoundsError) Unwrap() error { return ErrIndexOutOfRange }

func outOfRange(index, lo, hi int) error {
	return &BoundsError{Index: index, Min: lo, Max: hi}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}
