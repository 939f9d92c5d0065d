package collections

import (
	"golang.org/x/exp/slices"
)

// Every method in this file validates its arguments before touching the
// buffer, so a returned error always means the list is unchanged.

// Add appends item, growing the buffer when it is full.
func (l *List[T]) Add(item T) {
	l.EnsureCapacity(l.count + 1)
	l.items[l.count] = item
	l.count++
	l.version++
}

// AddRange appends items in order.
func (l *List[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	l.EnsureCapacity(l.count + len(items))
	copy(l.items[l.count:], items)
	l.count += len(items)
	l.version++
}

// Set replaces the element at index.
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= l.count {
		return outOfRange(index, 0, l.count-1)
	}
	l.items[index] = item
	l.version++
	return nil
}

// Insert places item at index, shifting later elements right by one.
// index == Count() appends.
func (l *List[T]) Insert(index int, item T) error {
	return l.InsertRange(index, item)
}

// InsertRange places items at index, preserving their relative order.
// index must lie in [0, Count()].
func (l *List[T]) InsertRange(index int, items ...T) error {
	if index < 0 || index > l.count {
		return outOfRange(index, 0, l.count)
	}
	if len(items) == 0 {
		return nil
	}
	l.EnsureCapacity(l.count + len(items))
	// The buffer already has room, so Insert shifts in place.
	l.count = len(slices.Insert(l.items[:l.count], index, items...))
	l.version++
	return nil
}

// Remove deletes the first element equal to item (see Options.Equal) and
// reports whether one was found.
func (l *List[T]) Remove(item T) bool {
	i := l.IndexOf(item)
	if i < 0 {
		return false
	}
	l.removeRange(i, 1)
	return true
}

// RemoveAt deletes the element at index, shifting later elements left.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.count {
		return outOfRange(index, 0, l.count-1)
	}
	l.removeRange(index, 1)
	return nil
}

// RemoveRange deletes count elements starting at index.
func (l *List[T]) RemoveRange(index, count int) error {
	if err := l.checkSpan(index, count); err != nil {
		return err
	}
	if count > 0 {
		l.removeRange(index, count)
	}
	return nil
}

func (l *List[T]) removeRange(index, count int) {
	// Delete zeroes the vacated tail slots.
	l.count = len(slices.Delete(l.items[:l.count], index, index+count))
	l.version++
}

// RemoveAll deletes every element for which match returns true, keeping the
// survivors in order, and returns how many were removed.
func (l *List[T]) RemoveAll(match func(T) bool) (int, error) {
	if match == nil {
		return 0, invalidArgument("match must not be nil")
	}
	before := l.count
	l.count = len(slices.DeleteFunc(l.items[:l.count], match))
	removed := before - l.count
	if removed > 0 {
		l.version++
	}
	return removed, nil
}

// Clear removes every element and releases the buffer; Capacity drops to 0.
func (l *List[T]) Clear() {
	l.items = nil
	l.count = 0
	l.version++
}

// Reverse reverses the order of all elements in place.
func (l *List[T]) Reverse() {
	slices.Reverse(l.items[:l.count])
	l.version++
}

// ReverseRange reverses count elements starting at index in place.
func (l *List[T]) ReverseRange(index, count int) error {
	if err := l.checkSpan(index, count); err != nil {
		return err
	}
	slices.Reverse(l.items[index : index+count])
	l.version++
	return nil
}

// Sort orders the elements in place. The sort is stable.
//
// With no argument the list's natural ordering is used: Options.Compare if
// set, otherwise the built-in ordering of integer, float and string kinds.
// Pass one comparator to override it; it must return a negative number,
// zero or a positive number when a sorts before, with or after b.
//
// Returns [ErrInvalidArgument] if T has no natural ordering and none is
// given, if the comparator is nil, or if more than one comparator is passed.
func (l *List[T]) Sort(cmps ...func(a, b T) int) error {
	var cmp func(a, b T) int
	switch len(cmps) {
	case 0:
		cmp = l.options().Compare
		if cmp == nil {
			var zero T
			return invalidArgument("%T has no natural ordering; pass a comparator or set Options.Compare", zero)
		}
	case 1:
		if cmp = cmps[0]; cmp == nil {
			return invalidArgument("comparator must not be nil")
		}
	default:
		return invalidArgument("Sort accepts at most one comparator, got %d", len(cmps))
	}
	slices.SortStableFunc(l.items[:l.count], cmp)
	l.version++
	return nil
}

// checkSpan validates the forward window [index, index+count).
func (l *List[T]) checkSpan(index, count int) error {
	if count < 0 {
		return invalidArgument("count must be ≥ 0, got %d", count)
	}
	if index < 0 || index > l.count {
		return outOfRange(index, 0, l.count)
	}
	if count > l.count-index {
		return outOfRange(index+count, 0, l.count)
	}
	return nil
}
