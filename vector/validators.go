// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single source of truth for size, start-index and bounds checks.
//   - Shared with package matrix, which validates its own size and row indices
//     through the same functions so both layers report identical sentinels.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, O(1) and allocate nothing.

package vector

// ValidateSize ensures 0 < size <= max.
// Returns ErrInvalidSize otherwise.
func ValidateSize(size, max int) error {
	if size <= 0 || size > max {
		return ErrInvalidSize
	}

	return nil
}

// ValidateStartIndex ensures start >= 0.
// Returns ErrInvalidStartIndex otherwise.
func ValidateStartIndex(start int) error {
	if start < 0 {
		return ErrInvalidStartIndex
	}

	return nil
}

// ValidateIndex ensures start <= k < start+size and returns the physical offset k-start.
//
// Inputs:
//   - k: logical index requested by the caller.
//   - start, size: the container's logical window.
//
// Returns:
//   - int: physical slot (0-based) when valid.
//   - error: ErrIndexOutOfRange when k falls outside the window.
//
// Notes:
//   - For start == 0 the window is the physical range [0, size).
func ValidateIndex(k, start, size int) (int, error) {
	off := k - start
	if off < 0 || off >= size {
		return 0, ErrIndexOutOfRange
	}

	return off, nil
}

// ValidateSameSize ensures two operand sizes agree.
// Returns ErrSizeMismatch otherwise.
func ValidateSameSize(a, b int) error {
	if a != b {
		return ErrSizeMismatch
	}

	return nil
}
