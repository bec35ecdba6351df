package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove
//
// All mutators work in place. The boolean forms report success only; the
// Try forms return an error wrapping ErrIndexOutOfRange or ErrAbsentValue.
// A failed call never changes the array.
// ─────────────────────────────────────────────────────────────────────────────

// Append adds v after the last element. Returns false if v is absent.
func (a *Array[T]) Append(v T) bool {
	return a.TryAppend(v) == nil
}

// TryAppend adds v after the last element, or returns [ErrAbsentValue].
func (a *Array[T]) TryAppend(v T) error {
	if a.isAbsent(v) {
		return ErrAbsentValue
	}
	a.put(Base+a.n, v)
	a.n++
	return nil
}

// Insert places v at pos, moving the elements at pos and after it up by one.
// pos must be within [1, Len()]; inserting at Len()+1 is Append's job and is
// refused here. Returns false if pos is out of range or v is absent.
func (a *Array[T]) Insert(pos int, v T) bool {
	return a.TryInsert(pos, v) == nil
}

// TryInsert is like [Array.Insert] but reports why it failed.
func (a *Array[T]) TryInsert(pos int, v T) error {
	if pos < Base || pos >= Base+a.n {
		return fmt.Errorf("%w: insert at %d, length %d", ErrIndexOutOfRange, pos, a.n)
	}
	if a.isAbsent(v) {
		return ErrAbsentValue
	}
	// Highest first, so nothing is overwritten before it has moved.
	for k := Base + a.n - 1; k >= pos; k-- {
		a.store[k+1] = a.store[k]
	}
	a.store[pos] = v
	a.n++
	return nil
}

// Remove deletes the element at pos, moving every later element down by one.
// Returns false if pos is outside [1, Len()].
func (a *Array[T]) Remove(pos int) bool {
	_, ok := a.Pull(pos)
	return ok
}

// TryRemove is like [Array.Remove] but reports why it failed.
func (a *Array[T]) TryRemove(pos int) error {
	_, err := a.pull(pos)
	return err
}

// Pull removes and returns the element at pos.
// Returns the zero value and false if pos is outside [1, Len()].
func (a *Array[T]) Pull(pos int) (T, bool) {
	v, err := a.pull(pos)
	return v, err == nil
}

func (a *Array[T]) pull(pos int) (T, error) {
	var zero T
	if pos < Base || pos >= Base+a.n {
		return zero, fmt.Errorf("%w: remove at %d, length %d", ErrIndexOutOfRange, pos, a.n)
	}
	removed := a.store[pos]
	k := pos
	for {
		next, ok := a.store[k+1]
		if !ok {
			break
		}
		a.store[k] = next
		k++
	}
	delete(a.store, k)
	a.n--
	return removed, nil
}
