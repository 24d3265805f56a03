package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/matrix"
)

func TestWithMaxSize(t *testing.T) {
	_, err := matrix.New[int](3, matrix.WithMaxSize(3))
	require.NoError(t, err)

	_, err = matrix.New[int](4, matrix.WithMaxSize(3))
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
}

func TestWithMaxSizePanics(t *testing.T) {
	require.Panics(t, func() { matrix.WithMaxSize(-1) })
	require.Panics(t, func() { matrix.WithMaxSize(matrix.MaxMatrixSize + 1) })
}
