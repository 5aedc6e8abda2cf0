// Package matrix_test contains unit tests for the Moore–Penrose pseudo-inverse.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

func TestPseudoInverseKnown(t *testing.T) {
	tests := []struct {
		name string
		in   [][]float64
		want [][]float64
	}{
		{
			name: "invertible",
			in:   [][]float64{{4, 7}, {2, 6}},
			want: [][]float64{{0.6, -0.7}, {-0.2, 0.4}},
		},
		{
			name: "rank one", // A⁺ = Aᵀ/‖A‖²_F = A/25
			in:   [][]float64{{1, 2}, {2, 4}},
			want: [][]float64{{0.04, 0.08}, {0.08, 0.16}},
		},
		{
			name: "column vector",
			in:   [][]float64{{1}, {2}},
			want: [][]float64{{0.2, 0.4}},
		},
		{
			name: "zero",
			in:   [][]float64{{0, 0}, {0, 0}},
			want: [][]float64{{0, 0}, {0, 0}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := matrix.NewFromRows(tc.in)
			require.NoError(t, err)
			want, err := matrix.NewFromRows(tc.want)
			require.NoError(t, err)

			got, err := matrix.PseudoInverse(a)
			require.NoError(t, err)
			require.Equal(t, a.Cols(), got.Rows())
			require.Equal(t, a.Rows(), got.Cols())
			CompareClose(t, got, want, 1e-9, 1e-12)
		})
	}
}

// TestPseudoInversePenrose checks A·A⁺·A = A and A⁺·A·A⁺ = A⁺ on a random
// rectangular matrix.
func TestPseudoInversePenrose(t *testing.T) {
	a := RandFilledDense(t, 6, 4, 2024)
	p, err := matrix.PseudoInverse(hide{a})
	require.NoError(t, err)

	ap, err := matrix.Mul(a, p)
	require.NoError(t, err)
	apa, err := matrix.Mul(ap, a)
	require.NoError(t, err)
	CompareClose(t, apa, a, 1e-9, 1e-9)

	pa, err := matrix.Mul(p, a)
	require.NoError(t, err)
	pap, err := matrix.Mul(pa, p)
	require.NoError(t, err)
	CompareClose(t, pap, p, 1e-9, 1e-9)
}

func TestPseudoInverseErrors(t *testing.T) {
	_, err := matrix.PseudoInverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.PseudoInverse(infMatrix{math.Inf(1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
