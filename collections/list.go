package collections

import (
	"fmt"
	"strings"
)

const maxInt = int(^uint(0) >> 1)

// List is a generic, growable, indexable sequence backed by a contiguous
// buffer.
//
// Unlike a plain slice, a List tracks its capacity explicitly: the buffer is
// allocated by the list, grows by doubling (see [List.EnsureCapacity]) and is
// released only by [List.Clear]. Slots between Count and Capacity always hold
// the zero value of T, so removed elements are never retained.
//
// # Creating a list
//
//	l := collections.New("a", "b", "c")
//	l := collections.From([]int{3, 1, 2})
//	l := collections.Empty[float64]()
//	l, _ := collections.Make[string](8) // 8 empty strings
//
// The zero value is an empty list ready to use.
//
// # Absence
//
// Lookups that can miss (Get, Find, First, Last, …) return the zero value of
// T together with false. The zero value is also what [Make] stores in every
// slot; for pointer, slice, map and interface element types that is nil.
//
// # Concurrency
//
// A List is not safe for concurrent use. Callers sharing a list between
// goroutines must serialise every call, e.g. with a sync.Mutex. Snapshots
// returned by [List.ToArray] and [List.AsReadOnly] are independent of the
// list and may be shared freely.
type List[T any] struct {
	items   []T // len(items) is the capacity
	count   int
	version int
	opts    Options[T]
	ready   bool
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty creates an empty List of type T with no allocated storage.
func Empty[T any]() *List[T] {
	return newList(DefaultOptions[T]())
}

// New creates a List holding a copy of items. Count and Capacity both equal
// len(items).
func New[T any](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T any](items []T) *List[T] {
	l := newList(DefaultOptions[T]())
	l.load(items)
	return l
}

// Make creates a pre-sized List of n zero values. Count and Capacity both
// equal n. A negative n returns [ErrInvalidArgument].
func Make[T any](n int) (*List[T], error) {
	if n < 0 {
		return nil, invalidArgument("size must be ≥ 0, got %d", n)
	}
	l := newList(DefaultOptions[T]())
	l.items = make([]T, n)
	l.count = n
	return l, nil
}

// NewWithOptions creates a List configured by opts and holding a copy of
// items. Returns [ErrInvalidOption] if opts fail validation.
func NewWithOptions[T any](opts Options[T], items ...T) (*List[T], error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	l := newList(opts.withDefaults())
	l.load(items)
	return l, nil
}

func newList[T any](opts Options[T]) *List[T] {
	return &List[T]{opts: opts, ready: true}
}

func (l *List[T]) load(items []T) {
	if len(items) == 0 {
		return
	}
	l.items = make([]T, len(items))
	copy(l.items, items)
	l.count = len(items)
}

// derive returns an empty list sharing l's configuration.
func (l *List[T]) derive() *List[T] {
	return newList(l.options())
}

func (l *List[T]) options() Options[T] {
	if !l.ready {
		l.opts = l.opts.withDefaults()
		l.ready = true
	}
	return l.opts
}

// Options returns the effective configuration of the list.
func (l *List[T]) Options() Options[T] { return l.options() }

// ─────────────────────────────────────────────────────────────────────────────
// Capacity
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements in the list.
func (l *List[T]) Count() int { return l.count }

// Capacity returns the size of the allocated backing buffer.
func (l *List[T]) Capacity() int { return len(l.items) }

// IsEmpty reports whether the list contains no elements.
func (l *List[T]) IsEmpty() bool { return l.count == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l *List[T]) IsNotEmpty() bool { return l.count > 0 }

// EnsureCapacity grows the backing buffer so that it can hold at least
// requested elements and returns the resulting capacity.
//
// Growth starts from the current capacity, or from Options.MinCapacity when
// the list has no storage yet, and doubles until the request fits. Capacity
// never decreases.
func (l *List[T]) EnsureCapacity(requested int) int {
	if len(l.items) < requested {
		l.grow(requested)
	}
	return len(l.items)
}

func (l *List[T]) grow(requested int) {
	newCap := len(l.items)
	if newCap == 0 {
		newCap = l.options().MinCapacity
	}
	for newCap < requested {
		if newCap > maxInt/2 {
			newCap = requested
			break
		}
		newCap *= 2
	}
	buf := make([]T, newCap)
	copy(buf, l.items[:l.count])
	l.items = buf
}

// BinarySearch is reserved for searching a sorted list. It is not
// implemented and always returns -1 and [ErrNotSupported].
func (l *List[T]) BinarySearch(item T) (int, error) {
	return -1, fmt.Errorf("%w: BinarySearch", ErrNotSupported)
}

// TrimExcess is reserved for shrinking Capacity to Count. It is not
// implemented and always returns [ErrNotSupported]; use [List.Clear] to
// release storage.
func (l *List[T]) TrimExcess() error {
	return fmt.Errorf("%w: TrimExcess", ErrNotSupported)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is outside [0, Count()-1].
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= l.count {
		return zero, false
	}
	return l.items[index], true
}

// ElementAt returns the element at index. Negative indices count from the
// end, so -1 is the last element; the valid range is [-Count(), Count()-1].
// Any other index returns a [*BoundsError].
func (l *List[T]) ElementAt(index int) (T, error) {
	var zero T
	if index < -l.count || index >= l.count {
		return zero, outOfRange(index, -l.count, l.count-1)
	}
	if index < 0 {
		index += l.count
	}
	return l.items[index], nil
}

// First returns the first element, optionally the first one matching fns[0].
// Returns the zero value and false when the list is empty or no element
// matches.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return l.Find(fns[0])
	}
	return l.Get(0)
}

// Last returns the last element, optionally the last one matching fns[0].
// Returns the zero value and false when the list is empty or no element
// matches.
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) {
	if len(fns) > 0 {
		return l.FindLast(fns[0])
	}
	return l.Get(l.count - 1)
}

// FirstOrDefault is like [List.First] but returns def instead of a presence
// flag when nothing is found.
func (l *List[T]) FirstOrDefault(def T, fns ...func(T) bool) T {
	if item, ok := l.First(fns...); ok {
		return item
	}
	return def
}

// LastOrDefault is like [List.Last] but returns def instead of a presence
// flag when nothing is found.
func (l *List[T]) LastOrDefault(def T, fns ...func(T) bool) T {
	if item, ok := l.Last(fns...); ok {
		return item
	}
	return def
}

// ToArray returns a copy of the elements. The result is never nil and never
// shares storage with the list.
func (l *List[T]) ToArray() []T {
	out := make([]T, l.count)
	copy(out, l.items[:l.count])
	return out
}

// AsReadOnly returns an immutable snapshot of the current elements.
// Later changes to the list are not visible through the snapshot.
func (l *List[T]) AsReadOnly() *ReadOnly[T] {
	return &ReadOnly[T]{items: l.ToArray(), opts: l.options()}
}

// Clone returns an independent copy of the list with the same
// configuration. The copy's capacity equals its count.
func (l *List[T]) Clone() *List[T] {
	out := l.derive()
	out.load(l.items[:l.count])
	return out
}

// String joins the elements, each formatted with %v, using commas.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	return join(l.items[:l.count])
}

func join[T any](items []T) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, ",")
}
