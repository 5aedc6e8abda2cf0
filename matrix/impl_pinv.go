// SPDX-License-Identifier: MIT
// Package matrix - Moore–Penrose pseudo-inverse.
//
// Purpose:
//   - PseudoInverse: A⁺ via thin SVD, well-defined for singular and
//     near-singular inputs (ridge normal equations, rank-deficient designs).
//
// Implementation:
//   - A = U Σ Vᵀ  ⇒  A⁺ = V Σ⁺ Uᵀ, where Σ⁺ inverts singular values above
//     tol = max(r,c) · ε · σ_max and zeroes the rest.
//
// AI-Hints:
//   - Prefer a regularized system (A + λI) with PseudoInverse over Inverse
//     when A comes from data; it never fails on exact singularity.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opPseudoInverse = "PseudoInverse"

// machineEpsilon is the float64 unit roundoff used for the rank cut-off.
const machineEpsilon = 2.220446049250313e-16

// PseudoInverse returns the c×r Moore–Penrose pseudo-inverse of an r×c matrix.
//
// Implementation:
//   - Stage 1: ValidateNotNil + ValidateFinite.
//   - Stage 2: thin SVD via gonum; cut-off small singular values.
//   - Stage 3: scale columns of V by 1/σ and multiply by Uᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrSVDFailed.
//
// Determinism:
//   - Deterministic for identical inputs (no randomness in the SVD).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func PseudoInverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if err := ValidateFinite(m); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPseudoInverse, ErrSVDFailed)
	}
	sigma := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Rank cut-off relative to the largest singular value (sigma is descending).
	rows, cols := m.Rows(), m.Cols()
	tol := ZeroSum
	if len(sigma) > 0 {
		tol = float64(max(rows, cols)) * machineEpsilon * sigma[0]
	}

	// V · Σ⁺ : scale column k of V by 1/σ_k, or zero it below tolerance.
	vr, _ := v.Dims()
	var i, k int
	var inv float64
	for k = 0; k < len(sigma); k++ {
		inv = ZeroSum
		if sigma[k] > tol {
			inv = 1 / sigma[k]
		}
		for i = 0; i < vr; i++ {
			v.Set(i, k, v.At(i, k)*inv)
		}
	}

	var out mat.Dense
	out.Mul(&v, u.T())

	res, err := fromGonum(&out)
	if err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}
	if err = ValidateFinite(res); err != nil {
		return nil, matrixErrorf(opPseudoInverse, err)
	}

	return res, nil
}
