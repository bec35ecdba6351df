package arr

import "golang.org/x/exp/constraints"

// This file holds the operations that turn an Array[T] into something of
// another type. Go methods cannot declare their own type parameters, so
// these are package-level functions:
//
//	names := arr.Map(users, func(u User, _ int, _ *arr.Array[User]) string {
//	    return u.Name
//	})

// Map applies fn to every element and returns a new Array[U] of the same
// length, configured with opts. If fn returns a value that the new array
// considers absent, the result ends just before that position.
func Map[T, U any](a *Array[T], fn func(T, int, *Array[T]) U, opts ...Option[U]) *Array[U] {
	return mapInto(a, fn, New(opts...))
}

func mapInto[T, U any](a *Array[T], fn func(T, int, *Array[T]) U, out *Array[U]) *Array[U] {
	a.walk(func(v T, pos int) bool {
		return out.Append(fn(v, pos, a))
	})
	return out
}

// Reduce folds a to a single value of type U, left to right.
//
//	total := arr.Reduce(prices, func(acc float64, p Price, _ int, _ *arr.Array[Price]) float64 {
//	    return acc + p.Amount
//	}, 0)
func Reduce[T, U any](a *Array[T], fn func(U, T, int, *Array[T]) U, initial U) U {
	result := initial
	a.walk(func(v T, pos int) bool {
		result = fn(result, v, pos, a)
		return true
	})
	return result
}

// Sum adds up the elements of a numeric array.
func Sum[T constraints.Integer | constraints.Float](a *Array[T]) T {
	return Reduce(a, func(acc, v T, _ int, _ *Array[T]) T { return acc + v }, 0)
}
