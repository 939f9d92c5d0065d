package collections

import "iter"

// Enumerable is the read surface shared by [*List] and [*ReadOnly].
//
// Accept Enumerable in your own functions when they only need to inspect a
// sequence, so callers can pass either a live list or a snapshot.
type Enumerable[T any] interface {
	// Count returns the number of elements.
	Count() int

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether there is at least one element.
	IsNotEmpty() bool

	// Get returns the element at index and whether index was valid.
	Get(index int) (T, bool)

	// ElementAt returns the element at index, counting negative indices
	// from the end. Out-of-range indices return a [*BoundsError].
	ElementAt(index int) (T, error)

	// First returns the first element, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last element, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)

	// Contains reports whether an equal element is present.
	Contains(item T) bool

	// IndexOf returns the index of the first equal element, or -1.
	IndexOf(item T) int

	// ForEach calls action(item, index) for every element in order.
	ForEach(action func(T, int)) error

	// ToArray returns a copy of the elements.
	ToArray() []T

	// Values returns an iterator over the elements.
	Values() iter.Seq[T]
}

var (
	_ Enumerable[int] = (*List[int])(nil)
	_ Enumerable[int] = (*ReadOnly[int])(nil)
)
