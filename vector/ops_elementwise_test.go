// Package vector_test contains tests for the scalar, element-wise and dot-product operations.
package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/internal/testutil"
	"github.com/katalvlaran/utmatrix/vector"
)

// TestScalarOps verifies each scalar op applies to every element regardless of position.
func TestScalarOps(t *testing.T) {
	zero := testutil.MustVector[int](t, 5)

	require.Equal(t, []int{5, 5, 5, 5, 5}, zero.AddScalar(5).Values())
	require.Equal(t, []int{-5, -5, -5, -5, -5}, zero.SubScalar(5).Values())
	require.Equal(t, []int{5, 5, 5, 5, 5}, zero.AddScalar(1).MulScalar(5).Values())

	// operands are never mutated
	require.Equal(t, []int{0, 0, 0, 0, 0}, zero.Values())
}

// TestScalarOpsKeepStartIndex ensures results stay in the receiver's index window.
func TestScalarOpsKeepStartIndex(t *testing.T) {
	v := testutil.Sequence[float64](t, 3, vector.WithStartIndex(4))
	out := v.MulScalar(2)
	require.Equal(t, 4, out.StartIndex())
	require.Equal(t, []float64{0, 2, 4}, out.Values())
}

// TestAddVectors is table-driven over the documented element-wise sums.
func TestAddVectors(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		expected []int
	}{
		{"Mirror", []int{0, 1, 2, 3, 4}, []int{4, 3, 2, 1, 0}, []int{4, 4, 4, 4, 4}},
		{"Mixed", []int{1, 5, 7, 5, 5}, []int{8, 4, 0, 8, 5}, []int{9, 9, 7, 13, 10}},
		{"Single", []int{-3}, []int{3}, []int{0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testutil.MustFromSlice(t, tc.a)
			b := testutil.MustFromSlice(t, tc.b)
			sum, err := b.Add(a)
			require.NoError(t, err)
			require.True(t, sum.Equal(testutil.MustFromSlice(t, tc.expected)), "got %v", sum)
		})
	}
}

// TestSubVectors is table-driven over element-wise differences; operand order matters.
func TestSubVectors(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []int
		expected []int
	}{
		{"Mixed", []int{1, 5, 7}, []int{3, 1, 7}, []int{-2, 4, 0}},
		{"Reversed", []int{3, 1, 7}, []int{1, 5, 7}, []int{2, -4, 0}},
		{"Identical", []int{0, 1, 2, 3, 4}, []int{0, 1, 2, 3, 4}, []int{0, 0, 0, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := testutil.MustFromSlice(t, tc.a)
			b := testutil.MustFromSlice(t, tc.b)
			diff, err := a.Sub(b)
			require.NoError(t, err)
			require.Equal(t, tc.expected, diff.Values())

			// operands are never mutated
			require.Equal(t, tc.a, a.Values())
			require.Equal(t, tc.b, b.Values())
		})
	}
}

// TestDot verifies sum(v1[i]*v2[i]) on the documented example.
func TestDot(t *testing.T) {
	a := testutil.Sequence[int](t, 5)
	b := testutil.Sequence[int](t, 5)

	dot, err := b.Dot(a)
	require.NoError(t, err)
	require.Equal(t, 30, dot)
}

// TestDotComplex exercises a complex element type.
func TestDotComplex(t *testing.T) {
	a := testutil.MustFromSlice(t, []complex128{1 + 1i, 2})
	b := testutil.MustFromSlice(t, []complex128{1 - 1i, 3i})

	dot, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, complex(2, 6), dot)
}

// TestSizeMismatch ensures every binary op rejects differently sized operands.
func TestSizeMismatch(t *testing.T) {
	a := testutil.MustVector[int](t, 5)
	b := testutil.MustVector[int](t, 7)

	_, err := a.Add(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)

	_, err = a.Dot(b)
	require.ErrorIs(t, err, vector.ErrSizeMismatch)
}

// TestNilOperand ensures binary ops report ErrNilVector instead of panicking.
func TestNilOperand(t *testing.T) {
	a := testutil.MustVector[int](t, 2)

	_, err := a.Add(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)

	_, err = a.Sub(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)

	_, err = a.Dot(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}
