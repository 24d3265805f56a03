// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels (possibly wrapped with a call-site tag)
// and tests MUST check them via errors.Is. No method panics on user input.

package vector

import "errors"

// Every message is prefixed with "vector: ". Call sites wrap with
// fmt.Errorf("Vector.<Method>(...): %w", ErrX) so errors.Is keeps matching.

var (
	// ErrInvalidSize is returned when a requested size is <= 0 or above the ceiling.
	ErrInvalidSize = errors.New("vector: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("vector: invalid start index")

	// ErrIndexOutOfRange indicates a logical index outside [start, start+size).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates a binary operation between operands of different size.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("vector: nil vector")
)
