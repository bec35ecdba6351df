package arr

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// ForEach calls fn(value, position, a) for every element in ascending order.
//
// The walk re-reads a at every step: elements appended by fn are visited, and
// elements removed by fn are not.
func (a *Array[T]) ForEach(fn func(T, int, *Array[T])) {
	a.walk(func(v T, pos int) bool {
		fn(v, pos, a)
		return true
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the position of the first element satisfying pred, or
// [NotFound].
func (a *Array[T]) Find(pred func(T, int, *Array[T]) bool) int {
	found := NotFound
	a.walk(func(v T, pos int) bool {
		if pred(v, pos, a) {
			found = pos
			return false
		}
		return true
	})
	return found
}

// First returns the first element satisfying pred.
// Returns the zero value and false when nothing matches.
func (a *Array[T]) First(pred func(T, int, *Array[T]) bool) (T, bool) {
	return a.Get(a.Find(pred))
}

// Contains reports whether at least one element satisfies pred.
func (a *Array[T]) Contains(pred func(T, int, *Array[T]) bool) bool {
	return a.Find(pred) != NotFound
}

// FindAll returns a new array holding, in order, every element satisfying
// pred. The result shares a's options and may be empty.
func (a *Array[T]) FindAll(pred func(T, int, *Array[T]) bool) *Array[T] {
	return Reduce(a, func(acc *Array[T], v T, pos int, src *Array[T]) *Array[T] {
		if pred(v, pos, src) {
			acc.Append(v)
		}
		return acc
	}, a.empty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new array where position i holds fn(a[i], i, a). a itself is
// not modified and the result shares a's options.
//
// If fn returns an absent value the result ends just before that position.
// For results of another element type use the package-level [Map].
func (a *Array[T]) Map(fn func(T, int, *Array[T]) T) *Array[T] {
	return mapInto(a, fn, a.empty())
}

// Reduce folds the elements left to right, starting from initial. fn receives
// (accumulator, value, position, a).
//
// For reductions that change the type, use the package-level [Reduce].
func (a *Array[T]) Reduce(fn func(T, T, int, *Array[T]) T, initial T) T {
	return Reduce(a, fn, initial)
}
