// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the small set of reductions used for error metrics (sum of
//     squares) and readout summaries (Frobenius norm).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSumSquares    = "SumSquares"
	opFrobeniusNorm = "FrobeniusNorm"
)

// SumSquares returns Σ_ij m[i,j]².
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func SumSquares(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSumSquares, err)
	}

	acc := ZeroSum
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			acc += v * v
		}

		return acc, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opSumSquares, err)
			}
			acc += v * v
		}
	}

	return acc, nil
}

// FrobeniusNorm returns ‖m‖_F = sqrt(Σ m[i,j]²).
func FrobeniusNorm(m Matrix) (float64, error) {
	ss, err := SumSquares(m)
	if err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	return math.Sqrt(ss), nil
}
