package arr

import "errors"

// Sentinel errors returned by Array operations.
//
// Use [errors.Is] for comparisons:
//
//	if err := a.TryInsert(pos, v); errors.Is(err, arr.ErrIndexOutOfRange) {
//	    // pos was outside [1, Len()]
//	}
var (
	// ErrIndexOutOfRange is returned when a position is outside the range an
	// operation accepts: [1, Len()] for removal and insertion.
	ErrIndexOutOfRange = errors.New("arr: index out of range")

	// ErrAbsentValue is returned when a value the array considers absent is
	// offered for storage.
	ErrAbsentValue = errors.New("arr: absent value cannot be stored")

	// ErrNegativeSize is returned by Create when the requested size is < 0.
	ErrNegativeSize = errors.New("arr: size must not be negative")

	// ErrInvalidFill is returned by Create when given the zero Fill value.
	ErrInvalidFill = errors.New("arr: fill must be a constant or a generator")

	// ErrCorrupted is returned by Check when the backing store no longer
	// forms a contiguous run matching the recorded length.
	ErrCorrupted = errors.New("arr: array is corrupted")
)
