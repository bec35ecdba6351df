package arr

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in bytes of the value returned by [Array.Digest].
const DigestSize = blake2b.Size256

// Digest returns a BLAKE2b-256 fingerprint of the array's contents: its
// length followed by the JSON encoding of each element in order. Arrays whose
// elements encode to the same JSON have the same digest regardless of their
// options. The digest covers encoded values, not identity: Of(&x) and Of(&y)
// collide whenever x == y.
//
// Digest fails only if an element cannot be encoded as JSON.
func (a *Array[T]) Digest() ([DigestSize]byte, error) {
	var sum [DigestSize]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return sum, err
	}

	var lenBuf [binary.MaxVarintLen64]byte
	h.Write(lenBuf[:binary.PutUvarint(lenBuf[:], uint64(a.n))])

	enc := json.NewEncoder(h)
	var encErr error
	a.walk(func(v T, pos int) bool {
		if err := enc.Encode(v); err != nil {
			encErr = fmt.Errorf("arr: digest position %d: %w", pos, err)
			return false
		}
		return true
	})
	if encErr != nil {
		return sum, encErr
	}
	copy(sum[:], h.Sum(nil))
	return sum, nil
}
