// Package matrix_test contains unit tests for spectral quantities.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

func TestSpectralRadius(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"diagonal", [][]float64{{2, 0}, {0, -3}}, 3},
		{"rotation", [][]float64{{0, -1}, {1, 0}}, 1}, // eigenvalues ±i
		{"nilpotent", [][]float64{{0, 1}, {0, 0}}, 0},
		{"upper triangular", [][]float64{{0.5, 9}, {0, -0.25}}, 0.5},
		{"scalar", [][]float64{{-7}}, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewFromRows(tc.rows)
			require.NoError(t, err)
			rho, err := matrix.SpectralRadius(m)
			require.NoError(t, err)
			require.InDelta(t, tc.want, rho, 1e-9)
		})
	}
}

// TestSpectralRadiusScaling checks ρ(αA) = |α|·ρ(A), the property used to
// rescale recurrent weights.
func TestSpectralRadiusScaling(t *testing.T) {
	a := RandFilledDense(t, 12, 12, 99)
	rho, err := matrix.SpectralRadius(a)
	require.NoError(t, err)
	require.Greater(t, rho, 0.0)

	scaled, err := matrix.Scale(a, 0.9/rho)
	require.NoError(t, err)
	got, err := matrix.SpectralRadius(hide{scaled})
	require.NoError(t, err)
	require.InDelta(t, 0.9, got, 1e-9)
}

func TestEigenvaluesErrors(t *testing.T) {
	_, err := matrix.Eigenvalues(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.SpectralRadius(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.SpectralRadius(infMatrix{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	vals, err := matrix.Eigenvalues(NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2}))
	require.NoError(t, err)
	require.Len(t, vals, 2)
}
