// SPDX-License-Identifier: MIT

// Package matrix - triangular storage & safe accessors.
//
// Purpose:
//   - Own one vector.Vector per row; row i has size-i elements starting at column i.
//   - Guarantee safety at the public surface: Row/At/Set return errors instead of panicking.
//   - Guarantee value semantics: Clone and Assign deep-copy every row.
//
// Complexity quicksheet:
//   - New/Clone/Assign/Equal: O(n²/2); Row/At/Set: O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/utmatrix/vector"
)

// ---------- error context tags ----------

const (
	ctxNew    = "New"
	ctxRow    = "Row"
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAssign = "Assign"
)

// matrixErrorf wraps a sentinel with a uniform Matrix context and call-site indices.
func matrixErrorf(method string, args []int, err error) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}

	return fmt.Errorf("Matrix.%s(%s): %w", method, strings.Join(parts, ","), err)
}

// Matrix is a size×size upper-triangular matrix.
// rows[i] is exclusively owned and has Size()==size-i, StartIndex()==i.
//
// The zero value is not usable; construct with New.
type Matrix[T vector.Element] struct {
	rows []*vector.Vector[T]
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// New creates a size×size upper-triangular matrix of zero values.
//
// Implementation:
//   - Stage 1: validate size in (0, max] (MaxMatrixSize unless lowered by WithMaxSize).
//   - Stage 2: allocate row i as vector.New(size-i) starting at column i.
//
// Errors:
//   - ErrInvalidSize when size <= 0 or size > max.
//
// Complexity:
//   - Time O(n²/2), Space O(n²/2).
func New[T vector.Element](size int, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if err := vector.ValidateSize(size, o.maxSize); err != nil {
		return nil, matrixErrorf(ctxNew, []int{size}, err)
	}
	rows := make([]*vector.Vector[T], size)
	for i := range rows {
		row, err := vector.New[T](size-i, vector.WithStartIndex(i))
		if err != nil {
			// unreachable for a validated size
			return nil, matrixErrorf(ctxNew, []int{size}, err)
		}
		rows[i] = row
	}

	return &Matrix[T]{rows: rows}, nil
}

// Size returns the row (and column) count.
func (m *Matrix[T]) Size() int {
	return len(m.rows)
}

// Row returns the live row i; its valid column indices are [i, Size()).
// Mutations through the row (Set, Index, Assign) are visible in m. Keeping the
// row's size (Size()-i) and start index (i) intact is the caller's
// responsibility: At, Set and Equal trust the row as stored. Add and Sub only
// catch rows whose size or start index differ between the two operands.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Size().
func (m *Matrix[T]) Row(i int) (*vector.Vector[T], error) {
	if _, err := vector.ValidateIndex(i, 0, len(m.rows)); err != nil {
		return nil, matrixErrorf(ctxRow, []int{i}, err)
	}

	return m.rows[i], nil
}

// At returns the element at (i, j) for 0 <= i <= j < Size().
func (m *Matrix[T]) At(i, j int) (T, error) {
	if _, err := vector.ValidateIndex(i, 0, len(m.rows)); err != nil {
		var zero T
		return zero, matrixErrorf(ctxAt, []int{i, j}, err)
	}
	x, err := m.rows[i].At(j)
	if err != nil {
		return x, matrixErrorf(ctxAt, []int{i, j}, err)
	}

	return x, nil
}

// Set stores x at (i, j) for 0 <= i <= j < Size().
func (m *Matrix[T]) Set(i, j int, x T) error {
	if _, err := vector.ValidateIndex(i, 0, len(m.rows)); err != nil {
		return matrixErrorf(ctxSet, []int{i, j}, err)
	}
	if err := m.rows[i].Set(j, x); err != nil {
		return matrixErrorf(ctxSet, []int{i, j}, err)
	}

	return nil
}

// Clone returns a deep copy; no row is shared with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{rows: cloneRows(m.rows)}
}

// Assign replaces m's size and rows with deep copies of other's rows.
// Self-assignment is a no-op; a nil source returns ErrNilMatrix and leaves m unchanged.
func (m *Matrix[T]) Assign(other *Matrix[T]) error {
	if other == nil {
		return fmt.Errorf("Matrix.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if m == other {
		return nil
	}
	m.rows = cloneRows(other.rows)

	return nil
}

// Equal reports whether both matrices have the same size and pairwise equal rows.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil || len(m.rows) != len(other.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(other.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(other *Matrix[T]) bool {
	return !m.Equal(other)
}

// String implements fmt.Stringer: one line per row, each holding only its
// represented columns, e.g. "[1, 2]\n[3]\n".
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, row := range m.rows {
		sb.WriteString(row.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func cloneRows[T vector.Element](rows []*vector.Vector[T]) []*vector.Vector[T] {
	out := make([]*vector.Vector[T], len(rows))
	for i, row := range rows {
		out[i] = row.Clone()
	}

	return out
}
