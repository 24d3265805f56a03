package vector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/vector"
)

func TestValidateSize(t *testing.T) {
	require.NoError(t, vector.ValidateSize(1, 1))
	require.NoError(t, vector.ValidateSize(10, 10))
	require.ErrorIs(t, vector.ValidateSize(0, 10), vector.ErrInvalidSize)
	require.ErrorIs(t, vector.ValidateSize(11, 10), vector.ErrInvalidSize)
}

func TestValidateStartIndex(t *testing.T) {
	require.NoError(t, vector.ValidateStartIndex(0))
	require.ErrorIs(t, vector.ValidateStartIndex(-1), vector.ErrInvalidStartIndex)
}

func TestValidateIndex(t *testing.T) {
	off, err := vector.ValidateIndex(5, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 2, off)

	_, err = vector.ValidateIndex(2, 3, 4)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)

	_, err = vector.ValidateIndex(7, 3, 4)
	require.ErrorIs(t, err, vector.ErrIndexOutOfRange)
}

func TestValidateSameSize(t *testing.T) {
	require.NoError(t, vector.ValidateSameSize(3, 3))
	require.ErrorIs(t, vector.ValidateSameSize(3, 4), vector.ErrSizeMismatch)
}
