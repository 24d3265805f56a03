// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations return
// these sentinels (wrapped with a call-site tag) and tests MUST check them via
// errors.Is. No method panics on user input.

package matrix

import (
	"errors"

	"github.com/katalvlaran/utmatrix/vector"
)

// NOTE ON SHARED SENTINELS
// ------------------------
// Rows are vector.Vector values and column access is validated by the row, so
// a column error surfaces as vector.ErrIndexOutOfRange. The aliases below make
// the matrix and vector sentinels the same values: errors.Is(err,
// matrix.ErrIndexOutOfRange) holds no matter which layer detected the problem.

var (
	// ErrInvalidSize is returned when a requested size is <= 0 or above the ceiling.
	ErrInvalidSize = vector.ErrInvalidSize

	// ErrIndexOutOfRange indicates a row or column index outside the represented triangle.
	ErrIndexOutOfRange = vector.ErrIndexOutOfRange

	// ErrSizeMismatch indicates a binary operation between matrices of different size.
	ErrSizeMismatch = vector.ErrSizeMismatch
)

// ErrNilMatrix indicates a nil *Matrix argument.
var ErrNilMatrix = errors.New("matrix: nil matrix")
