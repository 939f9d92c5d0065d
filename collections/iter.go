package collections

import "iter"

// All returns an iterator over (index, element) pairs in order.
//
//	for i, v := range l.All() {
//	    fmt.Println(i, v)
//	}
//
// Modifying the list inside the loop panics with
// [ErrModifiedDuringIteration].
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := l.version
		for i := 0; i < l.count; i++ {
			if !yield(i, l.items[i]) {
				return
			}
			l.checkVersion(version)
		}
	}
}

// Values returns an iterator over the elements in order.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over (index, element) pairs from the last
// element to the first.
func (l *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		version := l.version
		for i := l.count - 1; i >= 0; i-- {
			if !yield(i, l.items[i]) {
				return
			}
			l.checkVersion(version)
		}
	}
}

func (l *List[T]) checkVersion(version int) {
	if l.version != version {
		panic(ErrModifiedDuringIteration)
	}
}
