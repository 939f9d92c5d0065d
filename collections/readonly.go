package collections

import (
	"iter"

	"golang.org/x/exp/slices"
)

// ReadOnly is an immutable snapshot of a [List], returned by
// [List.AsReadOnly].
//
// It owns a private copy of the elements taken at snapshot time, so later
// changes to the source list are not visible and nothing can change the
// snapshot. A ReadOnly is safe for concurrent reads from multiple
// goroutines.
type ReadOnly[T any] struct {
	items []T
	opts  Options[T]
}

// Count returns the number of elements.
func (r *ReadOnly[T]) Count() int { return len(r.items) }

// IsEmpty reports whether the snapshot contains no elements.
func (r *ReadOnly[T]) IsEmpty() bool { return len(r.items) == 0 }

// IsNotEmpty reports whether the snapshot has at least one element.
func (r *ReadOnly[T]) IsNotEmpty() bool { return len(r.items) > 0 }

// Get returns the element at index together with a presence flag.
func (r *ReadOnly[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(r.items) {
		return zero, false
	}
	return r.items[index], true
}

// ElementAt returns the element at index; negative indices count from the
// end. See [List.ElementAt].
func (r *ReadOnly[T]) ElementAt(index int) (T, error) {
	var zero T
	n := len(r.items)
	if index < -n || index >= n {
		return zero, outOfRange(index, -n, n-1)
	}
	if index < 0 {
		index += n
	}
	return r.items[index], nil
}

// First returns the first element, optionally the first one matching fns[0].
func (r *ReadOnly[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range r.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	return r.Get(0)
}

// Last returns the last element, optionally the last one matching fns[0].
func (r *ReadOnly[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for i := len(r.items) - 1; i >= 0; i-- {
			if fns[0](r.items[i]) {
				return r.items[i], true
			}
		}
		return zero, false
	}
	return r.Get(len(r.items) - 1)
}

// Contains reports whether an element equal to item is present.
func (r *ReadOnly[T]) Contains(item T) bool { return r.IndexOf(item) >= 0 }

// IndexOf returns the index of the first element equal to item, or -1.
func (r *ReadOnly[T]) IndexOf(item T) int {
	return slices.IndexFunc(r.items, func(x T) bool { return r.opts.Equal(x, item) })
}

// ForEach calls action(item, index) for every element in order.
func (r *ReadOnly[T]) ForEach(action func(T, int)) error {
	if action == nil {
		return invalidArgument("action must not be nil")
	}
	for i, item := range r.items {
		action(item, i)
	}
	return nil
}

// ToArray returns a copy of the elements.
func (r *ReadOnly[T]) ToArray() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// ToList returns a new mutable list holding a copy of the snapshot.
func (r *ReadOnly[T]) ToList() *List[T] {
	l := newList(r.opts)
	l.load(r.items)
	return l
}

// Values returns an iterator over the elements in order.
func (r *ReadOnly[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.items {
			if !yield(item) {
				return
			}
		}
	}
}

// String joins the elements with commas. See [List.String].
func (r *ReadOnly[T]) String() string { return join(r.items) }
