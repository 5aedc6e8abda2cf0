// Package matrix_test contains unit tests for the canonical validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(MustDense(t, 1, 1)))
}

func TestValidateShapes(t *testing.T) {
	sq := MustDense(t, 3, 3)
	rect := MustDense(t, 3, 2)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"same shape ok", matrix.ValidateSameShape(sq, sq), nil},
		{"same shape cols", matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch},
		{"same shape nil", matrix.ValidateSameShape(nil, rect), matrix.ErrNilMatrix},
		{"square ok", matrix.ValidateSquare(sq), nil},
		{"square rect", matrix.ValidateSquare(rect), matrix.ErrDimensionMismatch},
		{"square non-nil nil", matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix},
		{"mul ok", matrix.ValidateMulCompatible(sq, rect), nil},
		{"mul mismatch", matrix.ValidateMulCompatible(rect, sq), matrix.ErrDimensionMismatch},
		{"veclen ok", matrix.ValidateVecLen([]float64{1, 2}, 2), nil},
		{"veclen short", matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch},
		{"veclen nil", matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.want == nil {
				require.NoError(t, tc.err)
				return
			}
			require.ErrorIs(t, tc.err, tc.want)
		})
	}
}

func TestValidateFinite(t *testing.T) {
	m := RandFilledDense(t, 3, 3, 5)
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))

	require.ErrorIs(t, matrix.ValidateFinite(infMatrix{math.Inf(-1)}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(infMatrix{math.NaN()}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}
