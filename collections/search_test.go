package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collections/collections"
)

func is(want string) func(string) bool {
	return func(s string) bool { return s == want }
}

func TestContains(t *testing.T) {
	l := words()
	for _, w := range []string{"ciao", "mondo", "come", "va", "?"} {
		assert.True(t, l.Contains(w), w)
	}
	assert.False(t, l.Contains("!"))
	assert.False(t, collections.Empty[string]().Contains(""))
}

func TestContainsIgnoresSpareCapacity(t *testing.T) {
	l, err := collections.Make[int](0)
	require.NoError(t, err)
	l.EnsureCapacity(8)
	assert.False(t, l.Contains(0), "zero-valued spare slots are not elements")
}

func TestIndexOf(t *testing.T) {
	l := collections.New("a", "b", "a", "c", "a")
	assert.Equal(t, 0, l.IndexOf("a"))
	assert.Equal(t, 3, l.IndexOf("c"))
	assert.Equal(t, -1, l.IndexOf("z"))

	i, err := l.IndexOfFrom("a", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = l.IndexOfFrom("a", 5)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	i, err = l.IndexOfRange("a", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, i)

	i, err = l.IndexOfRange("c", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, -1, i)
}

func TestIndexOfInvalidWindow(t *testing.T) {
	l := collections.New("a", "b", "c")

	_, err := l.IndexOfFrom("a", 4)
	requireBounds(t, err, 4, 0, 3)

	_, err = l.IndexOfFrom("a", -1)
	requireBounds(t, err, -1, 0, 3)

	_, err = l.IndexOfRange("a", 1, 3)
	requireBounds(t, err, 4, 0, 3)

	_, err = l.IndexOfRange("a", 0, -1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestLastIndexOf(t *testing.T) {
	l := collections.New("a", "b", "a", "c", "a")
	assert.Equal(t, 4, l.LastIndexOf("a"))
	assert.Equal(t, 1, l.LastIndexOf("b"))
	assert.Equal(t, -1, l.LastIndexOf("z"))

	i, err := l.LastIndexOfFrom("a", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = l.LastIndexOfRange("a", 3, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	i, err = l.LastIndexOfRange("b", 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = l.LastIndexOfFrom("a", 5)
	requireBounds(t, err, 5, 0, 4)

	_, err = l.LastIndexOfRange("a", 2, 4)
	requireBounds(t, err, -1, 0, 4)
}

func TestLastIndexOfEmpty(t *testing.T) {
	l := collections.Empty[string]()
	assert.Equal(t, -1, l.LastIndexOf("a"))

	i, err := l.LastIndexOfFrom("a", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	_, err = l.LastIndexOfFrom("a", 0)
	requireBounds(t, err, 0, -1, -1)
}

func TestFind(t *testing.T) {
	l := words()
	v, ok := l.Find(is("mondo"))
	assert.True(t, ok)
	assert.Equal(t, "mondo", v)

	v, ok = l.Find(is("!"))
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestFindLast(t *testing.T) {
	type entry struct {
		Key string
		N   int
	}
	l := collections.New(entry{"a", 1}, entry{"b", 2}, entry{"a", 3})
	v, ok := l.FindLast(func(e entry) bool { return e.Key == "a" })
	assert.True(t, ok)
	assert.Equal(t, 3, v.N)

	_, ok = l.FindLast(func(e entry) bool { return e.Key == "z" })
	assert.False(t, ok)
}

func TestFindAll(t *testing.T) {
	l := words()
	long := l.FindAll(func(s string) bool { return len(s) > 3 })
	assert.Equal(t, []string{"ciao", "mondo", "come"}, long.ToArray())
	assert.Equal(t, 5, l.Count())

	none := l.FindAll(is("!"))
	assert.True(t, none.IsEmpty())
}

func TestFindAllKeepsOptions(t *testing.T) {
	type point struct{ X, Y int }
	byX := func(a, b point) int { return a.X - b.X }
	l, err := collections.NewWithOptions(collections.Options[point]{Compare: byX}, point{3, 0}, point{1, 0}, point{2, 9})
	require.NoError(t, err)
	sub := l.FindAll(func(p point) bool { return p.Y == 0 })
	require.NoError(t, sub.Sort())
	assert.Equal(t, []point{{1, 0}, {3, 0}}, sub.ToArray())
}

func TestFindIndex(t *testing.T) {
	l := words()
	for i, w := range []string{"ciao", "mondo", "come", "va", "?"} {
		assert.Equal(t, i, l.FindIndex(is(w)))
	}
	assert.Equal(t, -1, l.FindIndex(is("!")))
}

func TestFindIndexWindows(t *testing.T) {
	l := collections.New("ciao", "mondo", "come", "va", "?", "come")

	i, err := l.FindIndexFrom(3, is("come"))
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	i, err = l.FindIndexRange(0, 2, is("come"))
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	i, err = l.FindIndexRange(1, 2, is("come"))
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = l.FindIndexFrom(7, is("come"))
	requireBounds(t, err, 7, 0, 6)

	_, err = l.FindIndexRange(4, 3, is("come"))
	requireBounds(t, err, 7, 0, 6)

	_, err = l.FindIndexRange(0, 1, nil)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestFindLastIndex(t *testing.T) {
	l := collections.New("ciao", "mondo", "come", "va", "?", "come")
	assert.Equal(t, 5, l.FindLastIndex(is("come")))
	assert.Equal(t, 0, l.FindLastIndex(is("ciao")))
	assert.Equal(t, -1, l.FindLastIndex(is("!")))

	i, err := l.FindLastIndexFrom(4, is("come"))
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	i, err = l.FindLastIndexRange(4, 2, is("come"))
	require.NoError(t, err)
	assert.Equal(t, -1, i)

	i, err = l.FindLastIndexRange(5, 6, is("ciao"))
	require.NoError(t, err)
	assert.Equal(t, 0, i)

	_, err = l.FindLastIndexRange(5, 7, is("ciao"))
	requireBounds(t, err, -1, 0, 5)

	_, err = l.FindLastIndexFrom(-1, is("ciao"))
	requireBounds(t, err, -1, 0, 5)

	_, err = l.FindLastIndexFrom(0, nil)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestExistsTrueForAll(t *testing.T) {
	l := words()
	assert.True(t, l.Exists(is("va")))
	assert.False(t, l.Exists(is("!")))

	assert.True(t, l.TrueForAll(func(s string) bool { return len(s) > 0 }))
	assert.False(t, l.TrueForAll(func(s string) bool { return len(s) > 1 }))

	empty := collections.Empty[string]()
	assert.False(t, empty.Exists(func(string) bool { return true }))
	assert.True(t, empty.TrueForAll(func(string) bool { return false }))
}

func TestGetRange(t *testing.T) {
	l := letters()
	sub, err := l.GetRange(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, sub.ToArray())

	sub.Add("z")
	assert.Equal(t, "a,b,c,d,e", l.String(), "GetRange must copy")

	empty, err := l.GetRange(5, 0)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = l.GetRange(3, 3)
	requireBounds(t, err, 6, 0, 5)
	_, err = l.GetRange(-1, 1)
	requireBounds(t, err, -1, 0, 5)
	_, err = l.GetRange(0, -1)
	assert.ErrorIs(t, err, collections.ErrInvalidArgument)
}

func TestCopyTo(t *testing.T) {
	l := collections.New("a", "b", "c")

	dst := make([]string, 5)
	require.NoError(t, l.CopyTo(dst, 1))
	assert.Equal(t, []string{"", "a", "b", "c", ""}, dst)

	dst = make([]string, 3)
	require.NoError(t, l.CopyRangeTo(1, dst, 0, 2))
	assert.Equal(t, []string{"b", "c", ""}, dst)

	require.NoError(t, collections.Empty[string]().CopyTo([]string{}, 0))
}

func TestCopyToInvalid(t *testing.T) {
	l := collections.New("a", "b", "c")

	assert.ErrorIs(t, l.CopyTo(nil, 0), collections.ErrInvalidArgument)
	assert.ErrorIs(t, l.CopyTo(make([]string, 4), 2), collections.ErrInvalidArgument)
	requireBounds(t, l.CopyTo(make([]string, 4), -1), -1, 0, 4)
	requireBounds(t, l.CopyTo(make([]string, 4), 5), 5, 0, 4)
	requireBounds(t, l.CopyRangeTo(2, make([]string, 4), 0, 2), 4, 0, 3)

	dst := []string{"x", "x", "x"}
	assert.Error(t, l.CopyTo(dst, 1))
	assert.Equal(t, []string{"x", "x", "x"}, dst, "failed copy must not write")
}

func TestForEach(t *testing.T) {
	l := words()
	var seen []string
	err := l.ForEach(func(s string, i int) {
		v, _ := l.Get(i)
		assert.Equal(t, v, s)
		seen = append(seen, s)
	})
	require.NoError(t, err)
	assert.Equal(t, l.ToArray(), seen)

	assert.ErrorIs(t, l.ForEach(nil), collections.ErrInvalidArgument)
}

func TestForEachDetectsMutation(t *testing.T) {
	l := ints(1, 2, 3)
	calls := 0
	err := l.ForEach(func(n, _ int) {
		calls++
		l.Add(n)
	})
	assert.ErrorIs(t, err, collections.ErrModifiedDuringIteration)
	assert.Equal(t, 1, calls)
}
