// Package collections provides [List], a generic dynamic array with the
// familiar list-manipulation API: search, insert and remove, range
// operations, conversion, sorting and convenience accessors.
//
// # Overview
//
//	l := collections.New("ciao", "mondo", "come", "va", "?")
//	l.Add("!")
//	_ = l.Insert(0, "hey")
//	i := l.IndexOf("come")                    // → 3
//	last, _ := l.ElementAt(-1)                // → "!"
//	n, _ := l.RemoveAll(func(s string) bool { return len(s) < 3 })
//
// A List owns its backing buffer. Capacity is explicit: it grows by doubling
// whenever an insertion needs room (see [List.EnsureCapacity]) and is
// released only by [List.Clear].
//
// # Mutation
//
// Unlike a plain slice, a List is mutated in place and has pointer
// semantics. Operations that can fail validate their arguments first and
// return an error without modifying the list:
//
//	if err := l.RemoveRange(2, 10); errors.Is(err, collections.ErrIndexOutOfRange) {
//	    // l is unchanged
//	}
//
// Out-of-range indices produce a [*BoundsError] carrying the offending value
// and the valid range.
//
// # Equality and ordering
//
// Element equality (Contains, IndexOf, Remove) and the natural ordering used
// by Sort are configured through [Options]. Comparable element types use ==
// and numeric or string kinds sort without configuration:
//
//	l, _ := collections.NewWithOptions(collections.Options[User]{
//	    Equal:   func(a, b User) bool { return a.ID == b.ID },
//	    Compare: func(a, b User) int { return strings.Compare(a.Name, b.Name) },
//	})
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// [ConvertAll] is a package-level function, as are [SortOrdered] and
// [Compare] for ordered element types.
//
// # Snapshots
//
// [List.ToArray] returns a fresh slice and [List.AsReadOnly] an immutable
// [ReadOnly] snapshot. Neither aliases the list's buffer. Both *List and
// *ReadOnly satisfy [Enumerable].
//
// # Concurrency
//
// A List is not safe for concurrent use; serialise access externally. The
// list detects its own modification from inside [List.ForEach] and the
// iterators returned by [List.All], [List.Values] and [List.Backward].
package collections
