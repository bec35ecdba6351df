package arr

import (
	"fmt"
	"sort"
)

// Base is the position of the first element of every Array.
const Base = 1

// NotFound is returned by [Array.Find] when no element matches.
const NotFound = -1

// Array is a dense sequence of T stored in a map from position to value.
//
// Positions Base..Base+Len()-1 are populated and position Base+Len() is not.
// Insert, Remove and Append shift elements to keep it that way, and refuse
// values that the array considers absent (see [WithAbsent]).
//
// The zero value is an empty array using the default absence predicate.
type Array[T any] struct {
	store map[int]T
	n     int
	cfg   config[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Array.
func New[T any](opts ...Option[T]) *Array[T] {
	return newWithConfig(newConfig(opts))
}

func newWithConfig[T any](cfg config[T]) *Array[T] {
	return &Array[T]{store: make(map[int]T), cfg: cfg}
}

// Of creates an Array holding values in order. Like every other constructor
// it stops at the first absent value: Of(&x, nil, &y) holds only &x.
func Of[T any](values ...T) *Array[T] {
	a := New[T]()
	for _, v := range values {
		if !a.Append(v) {
			break
		}
	}
	return a
}

// FromMap creates an Array from a raw position → value map. Only the
// contiguous run starting at Base is adopted (see [Length]); entries after
// the first missing or absent position are ignored. m is copied.
func FromMap[T any](m map[int]T, opts ...Option[T]) *Array[T] {
	a := New(opts...)
	n := Length(m)
	for pos := Base; pos < Base+n; pos++ {
		if !a.Append(m[pos]) {
			break
		}
	}
	return a
}

// Range returns the identity-filled array [1 2 … n]. A negative n yields an
// empty array.
func Range(n int) *Array[int] {
	a := New[int]()
	for pos := Base; pos < Base+n; pos++ {
		a.store[pos] = pos
	}
	if n > 0 {
		a.n = n
	}
	return a
}

// Clone returns an independent copy of a with the same options.
func (a *Array[T]) Clone() *Array[T] {
	out := a.empty()
	a.walk(func(v T, pos int) bool {
		out.store[pos] = v
		out.n++
		return true
	})
	return out
}

// empty returns a new, empty array sharing a's options.
func (a *Array[T]) empty() *Array[T] {
	return newWithConfig(a.cfg)
}

// ─────────────────────────────────────────────────────────────────────────────
// Length
// ─────────────────────────────────────────────────────────────────────────────

// Length counts the populated positions of m starting at Base, stopping at
// the first position with no entry. Entries after a hole are not counted.
//
//	Length(map[int]string{1: "a", 2: "b", 4: "d"}) // → 2
func Length[T any](m map[int]T) int {
	n := 0
	for {
		if _, ok := m[Base+n]; !ok {
			return n
		}
		n++
	}
}

// Len returns the number of elements in a.
func (a *Array[T]) Len() int { return a.n }

// IsEmpty reports whether a has no elements.
func (a *Array[T]) IsEmpty() bool { return a.n == 0 }

// Check verifies the array's structure: the recorded length must match the
// sentinel-derived length, no entries may exist past the end, and no live
// position may hold an absent value. It returns an error wrapping
// [ErrCorrupted] describing the first problem found.
func (a *Array[T]) Check() error {
	if scanned := Length(a.store); scanned != a.n {
		return fmt.Errorf("%w: recorded length %d, scanned length %d", ErrCorrupted, a.n, scanned)
	}
	if len(a.store) != a.n {
		stray := make([]int, 0, len(a.store)-a.n)
		for pos := range a.store {
			if pos < Base || pos >= Base+a.n {
				stray = append(stray, pos)
			}
		}
		sort.Ints(stray)
		return fmt.Errorf("%w: entries outside the populated run at %v", ErrCorrupted, stray)
	}
	for pos := Base; pos < Base+a.n; pos++ {
		if a.isAbsent(a.store[pos]) {
			return fmt.Errorf("%w: absent value at position %d", ErrCorrupted, pos)
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the element at pos together with a presence flag.
// Returns the zero value and false when pos is outside [1, Len()].
func (a *Array[T]) Get(pos int) (T, bool) {
	var zero T
	if pos < Base || pos >= Base+a.n {
		return zero, false
	}
	return a.store[pos], true
}

// All returns the elements as a plain slice, in order.
func (a *Array[T]) All() []T {
	out := make([]T, 0, a.n)
	a.walk(func(v T, _ int) bool {
		out = append(out, v)
		return true
	})
	return out
}

// walk visits populated positions in ascending order until the first empty
// position or until fn returns false. The store is re-read at every step, so
// changes made by fn are seen by later steps.
func (a *Array[T]) walk(fn func(v T, pos int) bool) {
	for pos := Base; ; pos++ {
		v, ok := a.store[pos]
		if !ok || !fn(v, pos) {
			return
		}
	}
}

func (a *Array[T]) isAbsent(v T) bool {
	if a.cfg.absent == nil {
		return isNil(v)
	}
	return a.cfg.absent(v)
}

// put writes v at pos, allocating the store for zero-value arrays.
func (a *Array[T]) put(pos int, v T) {
	if a.store == nil {
		a.store = make(map[int]T)
	}
	a.store[pos] = v
}
