package collections

import (
	"fmt"
	"reflect"
)

// DefaultMinCapacity is the capacity allocated when a list with no storage
// first needs room for an element.
const DefaultMinCapacity = 4

// Options configures a [List]. Zero-valued fields fall back to the defaults
// described on each field, so Options{} is always valid.
type Options[T any] struct {
	// MinCapacity is the first capacity allocated when growing a list whose
	// capacity is 0. Doubling starts from here. Must be >= 1 when set.
	// Defaults to [DefaultMinCapacity].
	MinCapacity int

	// Equal decides element equality for Contains, IndexOf, LastIndexOf and
	// Remove. Defaults to == when T is comparable and reflect.DeepEqual
	// otherwise (slices, maps, funcs, interfaces).
	Equal func(a, b T) bool

	// Compare is the natural ordering used by Sort when no comparator is
	// passed. It returns a negative number, zero or a positive number when
	// a is less than, equal to or greater than b. Defaults to the built-in
	// ordering of integer, floating-point and string kinds; other element
	// types must set it to call Sort without arguments.
	Compare func(a, b T) int
}

// DefaultOptions returns Options with every default filled in.
// Compare stays nil when T has no natural ordering.
func DefaultOptions[T any]() Options[T] {
	cmp, _ := naturalCompare[T]()
	return Options[T]{
		MinCapacity: DefaultMinCapacity,
		Equal:       defaultEqual[T](),
		Compare:     cmp,
	}
}

func validateOptions[T any](opts Options[T]) error {
	if opts.MinCapacity < 0 {
		return fmt.Errorf("%w: min capacity must be ≥ 1, got %d", ErrInvalidOption, opts.MinCapacity)
	}
	return nil
}

// withDefaults resolves every zero field of opts.
func (opts Options[T]) withDefaults() Options[T] {
	if opts.MinCapacity <= 0 {
		opts.MinCapacity = DefaultMinCapacity
	}
	if opts.Equal == nil {
		opts.Equal = defaultEqual[T]()
	}
	if opts.Compare == nil {
		opts.Compare, _ = naturalCompare[T]()
	}
	return opts
}

func defaultEqual[T any]() func(a, b T) bool {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface && t.Comparable() {
		return func(a, b T) bool { return any(a) == any(b) }
	}
	return func(a, b T) bool { return reflect.DeepEqual(a, b) }
}

// naturalCompare returns the built-in ordering for T's underlying kind, so
// named types such as `type Celsius float64` sort without configuration.
func naturalCompare[T any]() (func(a, b T) int, bool) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	}
	return nil, false
}
