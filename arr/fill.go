package arr

import "fmt"

type fillKind uint8

const (
	fillNone fillKind = iota
	fillConstant
	fillGenerator
)

// Fill describes how [Create] populates a new array: either every position
// gets the same value ([Constant]) or each value is computed ([Generator]).
// The zero Fill is invalid.
type Fill[T any] struct {
	kind  fillKind
	value T
	gen   func(pos, size int, partial *Array[T]) T
}

// Constant fills every position with v.
func Constant[T any](v T) Fill[T] {
	return Fill[T]{kind: fillConstant, value: v}
}

// Generator fills position pos with fn(pos, size, partial), where partial is
// the array built so far (it holds positions 1..pos-1). A nil fn yields an
// invalid Fill.
//
//	// running totals: [1 3 6 10]
//	arr.Generator(func(pos, _ int, partial *arr.Array[int]) int {
//	    prev, _ := partial.Get(pos - 1)
//	    return prev + pos
//	})
func Generator[T any](fn func(pos, size int, partial *Array[T]) T) Fill[T] {
	if fn == nil {
		return Fill[T]{}
	}
	return Fill[T]{kind: fillGenerator, gen: fn}
}

func (f Fill[T]) at(pos, size int, partial *Array[T]) T {
	if f.kind == fillGenerator {
		return f.gen(pos, size, partial)
	}
	return f.value
}

// Create builds an array of n elements using fill.
//
// Returns [ErrNegativeSize] when n < 0, [ErrInvalidFill] for the zero Fill,
// and [ErrAbsentValue] when fill produces a value the array considers absent.
// There is no default fill; use [Range] for the identity fill [1 2 … n].
//
//	squares, _ := arr.Create(3, arr.Generator(func(pos, _ int, _ *arr.Array[int]) int {
//	    return pos * pos
//	})) // → [1 4 9]
func Create[T any](n int, fill Fill[T], opts ...Option[T]) (*Array[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, n)
	}
	if fill.kind == fillNone {
		return nil, ErrInvalidFill
	}
	a := New(opts...)
	for pos := Base; pos < Base+n; pos++ {
		if err := a.TryAppend(fill.at(pos, n, a)); err != nil {
			return nil, fmt.Errorf("%w: create position %d of %d", err, pos, n)
		}
	}
	return a, nil
}
