package arr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-sentinel-array/arr"
)

func digest[T any](t *testing.T, a *arr.Array[T]) [arr.DigestSize]byte {
	t.Helper()
	d, err := a.Digest()
	require.NoError(t, err)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Insert
// ─────────────────────────────────────────────────────────────────────────────

func TestInsert(t *testing.T) {
	a := ints(10, 20, 30)

	require.True(t, a.Insert(2, 15))
	assertValid(t, a, []int{10, 15, 20, 30})

	require.True(t, a.Insert(1, 5))
	assertValid(t, a, []int{5, 10, 15, 20, 30})

	require.True(t, a.Insert(a.Len(), 25))
	assertValid(t, a, []int{5, 10, 15, 20, 25, 30})
}

func TestInsertRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		pos  int
	}{
		{"zero", 0},
		{"negative", -3},
		{"one past the end", 4},
		{"two past the end", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ints(1, 2, 3)
			before := digest(t, a)

			assert.False(t, a.Insert(tt.pos, 9))
			assert.ErrorIs(t, a.TryInsert(tt.pos, 9), arr.ErrIndexOutOfRange)

			assert.Equal(t, before, digest(t, a))
			assertValid(t, a, []int{1, 2, 3})
		})
	}
}

func TestInsertIntoEmpty(t *testing.T) {
	a := arr.New[int]()
	assert.False(t, a.Insert(1, 1), "insert at Len()+1 is not accepted")
	assert.True(t, a.IsEmpty())
}

func TestInsertRejectsAbsent(t *testing.T) {
	x := 1
	a := arr.Of(&x)
	assert.False(t, a.Insert(1, nil))
	assert.ErrorIs(t, a.TryInsert(1, nil), arr.ErrAbsentValue)
	assert.Equal(t, 1, a.Len())

	words := arr.New(arr.WithAbsent(func(s string) bool { return s == "" }))
	words.Append("a")
	assert.ErrorIs(t, words.TryInsert(1, ""), arr.ErrAbsentValue)
	assertValid(t, words, []string{"a"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────────────────────────────────────

func TestRemove(t *testing.T) {
	a := ints(10, 20, 30, 40)

	require.True(t, a.Remove(1))
	assertValid(t, a, []int{20, 30, 40})

	require.True(t, a.Remove(3))
	assertValid(t, a, []int{20, 30})

	require.True(t, a.Remove(1))
	require.True(t, a.Remove(1))
	assertValid(t, a, []int{})
}

func TestRemoveRejectsOutOfRange(t *testing.T) {
	for _, pos := range []int{-1, 0, 4, 10} {
		a := ints(1, 2, 3)
		before := digest(t, a)

		assert.False(t, a.Remove(pos), "Remove(%d)", pos)
		assert.ErrorIs(t, a.TryRemove(pos), arr.ErrIndexOutOfRange, "TryRemove(%d)", pos)

		assert.Equal(t, before, digest(t, a))
		assertValid(t, a, []int{1, 2, 3})
	}
}

func TestPull(t *testing.T) {
	a := ints(10, 20, 30)

	v, ok := a.Pull(2)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	assertValid(t, a, []int{10, 30})

	v, ok = a.Pull(5)
	assert.False(t, ok)
	assert.Zero(t, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Append
// ─────────────────────────────────────────────────────────────────────────────

func TestAppend(t *testing.T) {
	a := arr.New[string]()
	for i, s := range []string{"a", "b", "c"} {
		require.True(t, a.Append(s))
		assert.Equal(t, i+1, a.Len())
		last, ok := a.Get(a.Len())
		require.True(t, ok)
		assert.Equal(t, s, last)
	}
	assertValid(t, a, []string{"a", "b", "c"})
}

func TestAppendRejectsAbsent(t *testing.T) {
	a := arr.New[[]int]()
	assert.False(t, a.Append(nil))
	assert.ErrorIs(t, a.TryAppend(nil), arr.ErrAbsentValue)
	assert.True(t, a.Append([]int{}), "an empty, non-nil slice is a value")
	assert.Equal(t, 1, a.Len())

	counts := arr.New(arr.WithAbsent(isZero))
	assert.False(t, counts.Append(0))
	assert.True(t, counts.Append(3))
	assertValid(t, counts, []int{3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Properties
// ─────────────────────────────────────────────────────────────────────────────

func TestInsertRemoveRoundTrip(t *testing.T) {
	for pos := 1; pos <= 4; pos++ {
		a := ints(1, 2, 3, 4)
		before := digest(t, a)

		require.True(t, a.Insert(pos, 99), "Insert(%d)", pos)
		got, _ := a.Get(pos)
		assert.Equal(t, 99, got)
		assert.Equal(t, 5, a.Len())

		require.True(t, a.Remove(pos), "Remove(%d)", pos)
		assertValid(t, a, []int{1, 2, 3, 4})
		assert.Equal(t, before, digest(t, a))
	}
}

func TestMutationsKeepStructure(t *testing.T) {
	a := arr.Range(8)
	steps := []func() bool{
		func() bool { return a.Remove(4) },
		func() bool { return a.Insert(2, 100) },
		func() bool { return a.Append(200) },
		func() bool { return a.Remove(a.Len()) },
		func() bool { return a.Insert(a.Len(), 300) },
		func() bool { return a.Remove(1) },
	}
	for i, step := range steps {
		require.True(t, step(), "step %d", i)
		require.NoError(t, a.Check(), "step %d", i)
	}
	assertValid(t, a, []int{100, 2, 3, 5, 6, 7, 300, 8})
}
