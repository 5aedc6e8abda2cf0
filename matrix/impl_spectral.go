// SPDX-License-Identifier: MIT
// Package matrix - spectral quantities of general (non-symmetric) square matrices.
//
// Purpose:
//   - SpectralRadius: max |λ| over the complex spectrum, used to rescale
//     recurrent weight matrices.
//   - Eigenvalues: the full complex spectrum for inspection and tests.
//
// Implementation:
//   - gonum mat.Eigen (LAPACK-style Hessenberg QR) with EigenNone: values only.
//
// AI-Hints:
//   - Random sparse matrices are almost never symmetric; do not use a
//     symmetric solver (Jacobi) here.

package matrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	opEigenvalues    = "Eigenvalues"
	opSpectralRadius = "SpectralRadius"
)

// Eigenvalues returns the complex eigenvalues of a square matrix, in the
// order produced by the factorization.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil + ValidateFinite.
//   - Stage 2: copy to gonum, factorize with mat.EigenNone.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrNaNInf,
//     ErrEigenFailed (no convergence).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Eigenvalues(m Matrix) ([]complex128, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigenvalues, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigenvalues, ErrEigenFailed)
	}

	return eig.Values(nil), nil
}

// SpectralRadius returns ρ(m) = max_k |λ_k|.
//
// Behavior highlights:
//   - A nilpotent or all-zero matrix yields 0 (no error); callers that divide
//     by ρ must check for it.
//
// Errors:
//   - Same as Eigenvalues.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func SpectralRadius(m Matrix) (float64, error) {
	vals, err := Eigenvalues(m)
	if err != nil {
		return 0, matrixErrorf(opSpectralRadius, err)
	}

	rho := ZeroSum
	for _, v := range vals {
		if a := cmplx.Abs(v); a > rho {
			rho = a
		}
	}

	return rho, nil
}
