// Package arr provides a dense, sentinel-terminated array type and the
// functional helpers that operate on it (map, reduce, find, filter, for-each).
//
// # Length model
//
// An [Array] is backed by a plain map[int]T, an associative container with no
// intrinsic length. Positions start at [Base] (1) and the populated positions
// always form a contiguous run: the first position without an entry marks the
// end of the array. Every mutation shifts elements so that no hole ever
// appears before the logical end.
//
//	a := arr.Of(10, 20, 30)
//	a.Insert(2, 15)  // → [10 15 20 30]
//	a.Remove(1)      // → [15 20 30]
//	a.Append(40)     // → [15 20 30 40]
//	a.Insert(9, 99)  // false: beyond the populated run, a is unchanged
//
// The length is tracked explicitly, so [Array.Len] is O(1). [Length] derives
// it the slow way, by scanning a raw map for the first missing position, and
// [Array.Check] verifies that both agree.
//
// # Absent values
//
// A value that the array considers absent can never be stored, because it
// would end the array early. By default untyped nil and nil pointers, maps,
// slices, channels, funcs and interfaces are absent; [WithAbsent] installs a
// different predicate:
//
//	counts := arr.New(arr.WithAbsent(func(n int) bool { return n == 0 }))
//	counts.Append(0) // false
//
// # Combinators
//
// Callbacks receive (value, position, array), so they may read sibling
// elements. Operations that change the element type are package-level
// functions:
//
//	squares, _ := arr.Create(3, arr.Generator(func(pos, _ int, _ *arr.Array[int]) int {
//	    return pos * pos
//	})) // → [1 4 9]
//	labels := arr.Map(squares, func(n, _ int, _ *arr.Array[int]) string {
//	    return strconv.Itoa(n)
//	})
//	total := arr.Reduce(squares, func(acc float64, n, _ int, _ *arr.Array[int]) float64 {
//	    return acc + float64(n)
//	}, 0)
//
// # Concurrency
//
// Arrays are not safe for concurrent mutation. Callers that share an array
// between goroutines must serialise access themselves.
package arr
