// SPDX-License-Identifier: MIT
// Package testutil contains test fixtures shared by the vector and matrix test suites.
//
// Purpose:
//   - Keep construction boilerplate (New + error check) out of test bodies.
//   - Provide deterministic fills so expected values can be written by hand.

package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/utmatrix/matrix"
	"github.com/katalvlaran/utmatrix/vector"
)

// Real is the subset of vector.Element that ints can be converted into.
type Real interface {
	constraints.Integer | constraints.Float
}

// MustVector allocates a Vector or fails the test.
func MustVector[T vector.Element](tb testing.TB, size int, opts ...vector.Option) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.New[T](size, opts...)
	require.NoError(tb, err)

	return v
}

// MustFromSlice builds a Vector holding a copy of values or fails the test.
func MustFromSlice[T vector.Element](tb testing.TB, values []T, opts ...vector.Option) *vector.Vector[T] {
	tb.Helper()
	v, err := vector.FromSlice(values, opts...)
	require.NoError(tb, err)

	return v
}

// Sequence returns a Vector whose physical slot i holds T(i): [0, 1, ..., size-1].
func Sequence[T Real](tb testing.TB, size int, opts ...vector.Option) *vector.Vector[T] {
	tb.Helper()
	v := MustVector[T](tb, size, opts...)
	for i := 0; i < size; i++ {
		require.NoError(tb, v.Set(v.StartIndex()+i, T(i)))
	}

	return v
}

// MustMatrix allocates an upper-triangular Matrix or fails the test.
func MustMatrix[T vector.Element](tb testing.TB, size int, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](size, opts...)
	require.NoError(tb, err)

	return m
}

// FillTriangle writes f(i, j) into every represented cell (j >= i) of m.
func FillTriangle[T vector.Element](tb testing.TB, m *matrix.Matrix[T], f func(i, j int) T) {
	tb.Helper()
	for i := 0; i < m.Size(); i++ {
		for j := i; j < m.Size(); j++ {
			require.NoError(tb, m.Set(i, j, f(i, j)))
		}
	}
}

// Triangle builds a size×size Matrix filled by f.
func Triangle[T vector.Element](tb testing.TB, size int, f func(i, j int) T) *matrix.Matrix[T] {
	tb.Helper()
	m := MustMatrix[T](tb, size)
	FillTriangle(tb, m, f)

	return m
}
