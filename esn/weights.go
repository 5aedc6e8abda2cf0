// SPDX-License-Identifier: MIT
// Package esn - weight initialization.
//
// Draw order (fixed, part of the determinism contract):
//   1. Wr entries, row-major, U(-0.5, 0.5).
//   2. round(Nr²·sparsity) sparsity positions, each as (Intn(Nr), Intn(Nr)).
//   3. Wi entries, row-major, U(-0.5, 0.5).
//   4. Wf entries, row-major, U(-0.5, 0.5).

package esn

import (
	"math"

	"github.com/katalvlaran/reservoir/matrix"
)

const (
	opInitWeights   = "initWeights"
	opInitReservoir = "initReservoir"

	// weightCenter shifts U[0,1) draws to be centered on zero.
	weightCenter = 0.5
)

// weights bundles the three fixed matrices drawn at construction.
type weights struct {
	wr *matrix.Dense // Nr×Nr, rescaled to the target spectral radius
	wi *matrix.Dense // Nr×(Ni+1), column 0 is the bias
	wf *matrix.Dense // Nr×No
}

// initWeights draws Wr, Wi, Wf from cfg.rng.
//
// Implementation:
//   - Stage 1: Wr = U(-0.5,0.5), sparsify, rescale (initReservoir).
//   - Stage 2: Wi, Wf = U(-0.5,0.5), no sparsification or rescale.
//
// Errors:
//   - ErrNumericInstability when Wr has zero (or non-finite) spectral radius
//     after sparsification, or its eigen-decomposition fails.
//
// Complexity:
//   - Time O(Nr³) for the eigenvalues, Space O(Nr²).
func initWeights(cfg config) (weights, float64, error) {
	wr, rawRho, err := initReservoir(cfg.rng, cfg.nr, cfg.sparsity, cfg.spectralRadius)
	if err != nil {
		return weights{}, 0, esnErrorf(opInitWeights, err)
	}
	wi, err := uniformDense(cfg.rng, cfg.nr, cfg.ni+1)
	if err != nil {
		return weights{}, 0, esnErrorf(opInitWeights, err)
	}
	wf, err := uniformDense(cfg.rng, cfg.nr, cfg.no)
	if err != nil {
		return weights{}, 0, esnErrorf(opInitWeights, err)
	}

	return weights{wr: wr, wi: wi, wf: wf}, rawRho, nil
}

// initReservoir builds the sparse recurrent matrix and rescales it so that
// max|λ(Wr)| = rho. It also returns the pre-rescale spectral radius.
func initReservoir(src Source, nr int, sparsity, rho float64) (*matrix.Dense, float64, error) {
	data := uniformSlice(src, nr*nr)

	// Independent draws; a cell may be hit more than once.
	zeros := int(math.Round(float64(nr*nr) * sparsity))
	var k, i, j int
	for k = 0; k < zeros; k++ {
		i = src.Intn(nr)
		j = src.Intn(nr)
		data[i*nr+j] = 0
	}

	wr, err := matrix.NewDenseFrom(nr, nr, data)
	if err != nil {
		return nil, 0, esnErrorf(opInitReservoir, err)
	}
	current, err := matrix.SpectralRadius(wr)
	if err != nil {
		return nil, 0, unstable(opInitReservoir, err)
	}
	if current == 0 || math.IsNaN(current) || math.IsInf(current, 0) {
		return nil, current, esnErrorf(opInitReservoir, ErrNumericInstability)
	}
	scaled, err := matrix.Scale(wr, rho/current)
	if err != nil {
		return nil, 0, esnErrorf(opInitReservoir, err)
	}

	return scaled, current, nil
}

// uniformSlice draws n values from U(-0.5, 0.5) in order.
func uniformSlice(src Source, n int) []float64 {
	out := make([]float64, n)
	for k := range out {
		out[k] = src.Float64() - weightCenter
	}

	return out
}

// uniformDense draws a rows×cols matrix from U(-0.5, 0.5), row-major.
func uniformDense(src Source, rows, cols int) (*matrix.Dense, error) {
	return matrix.NewDenseFrom(rows, cols, uniformSlice(src, rows*cols))
}
