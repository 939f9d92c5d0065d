package collections

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// This file contains package-level generic functions. Go methods cannot
// introduce their own type parameters or tighten T's constraint, so
// conversions to another element type and operations that need an ordered T
// live here:
//
//	lengths, _ := collections.ConvertAll(words, func(s string) int { return len(s) })
//	collections.SortOrdered(lengths)

// ConvertAll returns a new List[U] holding converter(item) for every element
// of l, in order. A nil converter returns [ErrInvalidArgument].
//
//	labels, _ := collections.ConvertAll(collections.New(1, 2, 3), strconv.Itoa)
//	// → "1,2,3"
func ConvertAll[T, U any](l *List[T], converter func(T) U) (*List[U], error) {
	if converter == nil {
		return nil, invalidArgument("converter must not be nil")
	}
	out := newList(DefaultOptions[U]())
	if l.count == 0 {
		return out, nil
	}
	out.items = make([]U, l.count)
	for i, item := range l.items[:l.count] {
		out.items[i] = converter(item)
	}
	out.count = l.count
	return out, nil
}

// Compare is the three-way comparison for ordered types. NaN sorts before
// every other float and equal to itself, so the ordering is total.
//
//	l.Sort(collections.Compare[int])
func Compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := a != a, b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// SortOrdered sorts a list of ordered elements ascending, without going
// through Options.Compare.
func SortOrdered[T constraints.Ordered](l *List[T]) {
	slices.SortStableFunc(l.items[:l.count], Compare[T])
	l.version++
}

// IsSorted reports whether l is in ascending order according to cmp.
func IsSorted[T any](l *List[T], cmp func(a, b T) int) bool {
	return slices.IsSortedFunc(l.items[:l.count], cmp)
}
