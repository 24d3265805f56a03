// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise Add/Sub expressed as one vector operation per row.
//   - A single private kernel (ewRows) validates operands and drives the row loop.
//
// Determinism:
//   - Fixed row order 0..n-1; the first failing row aborts and nothing is returned.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/utmatrix/vector"
)

const (
	ctxAdd = "Add"
	ctxSub = "Sub"
)

// ewRows returns out.rows[i] = f(a.rows[i], b.rows[i]).
// Rows whose start indices differ are rejected with ErrSizeMismatch; f rejects differing sizes.
func ewRows[T vector.Element](
	method string,
	a, b *Matrix[T],
	f func(x, y *vector.Vector[T]) (*vector.Vector[T], error),
) (*Matrix[T], error) {
	if b == nil {
		return nil, fmt.Errorf("Matrix.%s: %w", method, ErrNilMatrix)
	}
	if err := vector.ValidateSameSize(len(a.rows), len(b.rows)); err != nil {
		return nil, matrixErrorf(method, []int{len(a.rows), len(b.rows)}, err)
	}
	out := make([]*vector.Vector[T], len(a.rows))
	for i := range a.rows {
		if a.rows[i].StartIndex() != b.rows[i].StartIndex() {
			return nil, matrixErrorf(method, []int{i}, ErrSizeMismatch)
		}
		row, err := f(a.rows[i], b.rows[i])
		if err != nil {
			return nil, matrixErrorf(method, []int{i}, err)
		}
		out[i] = row
	}

	return &Matrix[T]{rows: out}, nil
}

// Add returns m + other; row i of the result is m.Row(i).Add(other.Row(i)).
//
// Errors:
//   - ErrSizeMismatch when Size() differs.
//   - ErrNilMatrix when other is nil.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return ewRows(ctxAdd, m, other, (*vector.Vector[T]).Add)
}

// Sub returns m - other; row i of the result is m.Row(i).Sub(other.Row(i)).
//
// Errors:
//   - ErrSizeMismatch when Size() differs.
//   - ErrNilMatrix when other is nil.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return ewRows(ctxSub, m, other, (*vector.Vector[T]).Sub)
}
