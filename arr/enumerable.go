package arr

// Enumerable is the read-only surface of [Array][T].
//
// Accept Enumerable in your own functions so that callers can pass any
// array-like type without depending on *Array directly.
type Enumerable[T any] interface {
	// All returns every element as a plain Go slice, in order.
	All() []T

	// Len returns the number of elements.
	Len() int

	// Get returns the element at pos (1-based) and whether pos is in range.
	Get(pos int) (T, bool)

	// ForEach calls fn(value, position, array) for every element.
	ForEach(fn func(T, int, *Array[T]))

	// Find returns the position of the first element satisfying pred, or
	// NotFound.
	Find(pred func(T, int, *Array[T]) bool) int

	// FindAll returns a new array with the elements satisfying pred.
	FindAll(pred func(T, int, *Array[T]) bool) *Array[T]

	// IsEmpty reports whether there are no elements.
	IsEmpty() bool
}

var _ Enumerable[string] = (*Array[string])(nil)
