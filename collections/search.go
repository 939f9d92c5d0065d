package collections

import (
	"golang.org/x/exp/slices"
)

// Search windows come in two shapes, mirroring the usual dynamic-array API:
//
//   - forward (IndexOf, FindIndex): [start, start+count), start ≤ Count()
//   - backward (LastIndexOf, FindLastIndex): [start-count+1, start], scanned
//     from start downwards; on an empty list only start == -1, count == 0
//     is accepted
//
// Every windowed variant returns the absolute index of the match, or -1.

// Contains reports whether an element equal to item is present.
func (l *List[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the index of the first element equal to item, or -1.
func (l *List[T]) IndexOf(item T) int {
	return l.indexFunc(0, l.count, l.equalTo(item))
}

// IndexOfFrom searches for item from start to the end of the list.
func (l *List[T]) IndexOfFrom(item T, start int) (int, error) {
	return l.IndexOfRange(item, start, l.count-start)
}

// IndexOfRange searches for item in the count elements starting at start.
func (l *List[T]) IndexOfRange(item T, start, count int) (int, error) {
	if err := l.checkWindow(start, count); err != nil {
		return -1, err
	}
	return l.indexFunc(start, count, l.equalTo(item)), nil
}

// LastIndexOf returns the index of the last element equal to item, or -1.
func (l *List[T]) LastIndexOf(item T) int {
	return l.lastIndexFunc(l.count-1, l.count, l.equalTo(item))
}

// LastIndexOfFrom searches backwards for item from start to the beginning of
// the list.
func (l *List[T]) LastIndexOfFrom(item T, start int) (int, error) {
	return l.LastIndexOfRange(item, start, start+1)
}

// LastIndexOfRange searches backwards for item in the count elements ending
// at start.
func (l *List[T]) LastIndexOfRange(item T, start, count int) (int, error) {
	if err := l.checkBackward(start, count); err != nil {
		return -1, err
	}
	return l.lastIndexFunc(start, count, l.equalTo(item)), nil
}

// Find returns the first element for which match returns true.
// Returns the zero value and false when nothing matches.
func (l *List[T]) Find(match func(T) bool) (T, bool) {
	var zero T
	if i := l.FindIndex(match); i >= 0 {
		return l.items[i], true
	}
	return zero, false
}

// FindLast returns the last element for which match returns true.
// Returns the zero value and false when nothing matches.
func (l *List[T]) FindLast(match func(T) bool) (T, bool) {
	var zero T
	if i := l.FindLastIndex(match); i >= 0 {
		return l.items[i], true
	}
	return zero, false
}

// FindAll returns a new list with every element matching match, in order.
func (l *List[T]) FindAll(match func(T) bool) *List[T] {
	out := l.derive()
	for _, item := range l.items[:l.count] {
		if match(item) {
			out.Add(item)
		}
	}
	return out
}

// FindIndex returns the index of the first element matching match, or -1.
func (l *List[T]) FindIndex(match func(T) bool) int {
	return l.indexFunc(0, l.count, match)
}

// FindIndexFrom searches from start to the end of the list.
func (l *List[T]) FindIndexFrom(start int, match func(T) bool) (int, error) {
	return l.FindIndexRange(start, l.count-start, match)
}

// FindIndexRange searches the count elements starting at start.
func (l *List[T]) FindIndexRange(start, count int, match func(T) bool) (int, error) {
	if match == nil {
		return -1, invalidArgument("match must not be nil")
	}
	if err := l.checkWindow(start, count); err != nil {
		return -1, err
	}
	return l.indexFunc(start, count, match), nil
}

// FindLastIndex returns the index of the last element matching match, or -1.
func (l *List[T]) FindLastIndex(match func(T) bool) int {
	return l.lastIndexFunc(l.count-1, l.count, match)
}

// FindLastIndexFrom searches backwards from start to the beginning of the
// list.
func (l *List[T]) FindLastIndexFrom(start int, match func(T) bool) (int, error) {
	return l.FindLastIndexRange(start, start+1, match)
}

// FindLastIndexRange searches backwards through the count elements ending at
// start.
func (l *List[T]) FindLastIndexRange(start, count int, match func(T) bool) (int, error) {
	if match == nil {
		return -1, invalidArgument("match must not be nil")
	}
	if err := l.checkBackward(start, count); err != nil {
		return -1, err
	}
	return l.lastIndexFunc(start, count, match), nil
}

// Exists reports whether any element matches match.
func (l *List[T]) Exists(match func(T) bool) bool {
	return l.FindIndex(match) >= 0
}

// TrueForAll reports whether every element matches match.
// It is true for an empty list.
func (l *List[T]) TrueForAll(match func(T) bool) bool {
	for _, item := range l.items[:l.count] {
		if !match(item) {
			return false
		}
	}
	return true
}

// GetRange returns a new list with a copy of the count elements starting at
// index.
func (l *List[T]) GetRange(index, count int) (*List[T], error) {
	if err := l.checkSpan(index, count); err != nil {
		return nil, err
	}
	out := l.derive()
	out.load(l.items[index : index+count])
	return out, nil
}

// CopyTo copies every element into dst starting at dst[dstIndex].
func (l *List[T]) CopyTo(dst []T, dstIndex int) error {
	return l.CopyRangeTo(0, dst, dstIndex, l.count)
}

// CopyRangeTo copies count elements starting at index into dst starting at
// dst[dstIndex]. A nil dst, or one without room for count elements after
// dstIndex, returns [ErrInvalidArgument].
func (l *List[T]) CopyRangeTo(index int, dst []T, dstIndex, count int) error {
	if dst == nil {
		return invalidArgument("destination must not be nil")
	}
	if err := l.checkSpan(index, count); err != nil {
		return err
	}
	if dstIndex < 0 || dstIndex > len(dst) {
		return outOfRange(dstIndex, 0, len(dst))
	}
	if len(dst)-dstIndex < count {
		return invalidArgument("destination too small: need %d slots from offset %d, have %d",
			count, dstIndex, len(dst)-dstIndex)
	}
	copy(dst[dstIndex:], l.items[index:index+count])
	return nil
}

// ForEach calls action(item, index) for every element in order.
//
// The list must not be modified while ForEach runs. If action mutates it,
// ForEach stops and returns [ErrModifiedDuringIteration].
func (l *List[T]) ForEach(action func(T, int)) error {
	if action == nil {
		return invalidArgument("action must not be nil")
	}
	version := l.version
	for i := 0; i < l.count; i++ {
		action(l.items[i], i)
		if l.version != version {
			return ErrModifiedDuringIteration
		}
	}
	return nil
}

func (l *List[T]) equalTo(item T) func(T) bool {
	eq := l.options().Equal
	return func(x T) bool { return eq(x, item) }
}

func (l *List[T]) indexFunc(start, count int, match func(T) bool) int {
	if i := slices.IndexFunc(l.items[start:start+count], match); i >= 0 {
		return start + i
	}
	return -1
}

func (l *List[T]) lastIndexFunc(start, count int, match func(T) bool) int {
	for i := start; i > start-count; i-- {
		if match(l.items[i]) {
			return i
		}
	}
	return -1
}

// checkWindow validates a forward search window, reporting a bad start
// before the count derived from it.
func (l *List[T]) checkWindow(start, count int) error {
	if start < 0 || start > l.count {
		return outOfRange(start, 0, l.count)
	}
	return l.checkSpan(start, count)
}

// checkBackward validates the window [start-count+1, start].
func (l *List[T]) checkBackward(start, count int) error {
	if count < 0 {
		return invalidArgument("count must be ≥ 0, got %d", count)
	}
	if l.count == 0 {
		if start != -1 {
			return outOfRange(start, -1, -1)
		}
		if count != 0 {
			return invalidArgument("count must be 0 on an empty list, got %d", count)
		}
		return nil
	}
	if start < 0 || start >= l.count {
		return outOfRange(start, 0, l.count-1)
	}
	if count > start+1 {
		return outOfRange(start-count+1, 0, l.count-1)
	}
	return nil
}
