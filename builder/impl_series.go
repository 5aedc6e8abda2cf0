// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// impl_series.go - adapters from sample slices to time-major matrices.
//
// Purpose:
//   - Turn generator output into the k×T layout the esn package consumes
//     (one row per channel, one column per time step).
//   - Build one-step-ahead input/target pairs for autoregressive forecasting.
//   - Split a sequence matrix into a training prefix and a test suffix.
//
// Contract:
//   - All adapters copy; the caller's slices and matrices are never aliased.
//   - Size violations return ErrBadSize wrapped with the adapter name.

package builder

import (
	"github.com/katalvlaran/reservoir/matrix"
)

// Series stacks k equal-length channels into a k×T matrix.
//
// Errors:
//   - ErrBadSize if no channels are given, a channel is empty, or lengths differ.
//
// Complexity:
//   - O(k*T) time and memory.
func Series(channels ...[]float64) (*matrix.Dense, error) {
	if err := validateMin(MethodSeries, len(channels), 1); err != nil {
		return nil, err
	}
	T := len(channels[0])
	if err := validateMin(MethodSeries, T, MinSeriesLen); err != nil {
		return nil, err
	}
	if err := validateSameLen(MethodSeries, T, channels); err != nil {
		return nil, err
	}

	flat := make([]float64, 0, len(channels)*T)
	for _, ch := range channels {
		flat = append(flat, ch...)
	}

	return matrix.NewDenseFrom(len(channels), T, flat)
}

// NextStepPairs returns (inputs, targets) for one-step-ahead prediction of
// a scalar sequence: inputs = seq[0 : T-1], targets = seq[1 : T], both 1×(T−1).
//
// Errors:
//   - ErrBadSize if len(seq) < MinPairLen.
func NextStepPairs(seq []float64) (inputs, targets *matrix.Dense, err error) {
	if err = validateMin(MethodNextStepPairs, len(seq), MinPairLen); err != nil {
		return nil, nil, err
	}
	T := len(seq) - 1
	if inputs, err = matrix.NewDenseFrom(1, T, seq[:T]); err != nil {
		return nil, nil, err
	}
	if targets, err = matrix.NewDenseFrom(1, T, seq[1:]); err != nil {
		return nil, nil, err
	}

	return inputs, targets, nil
}

// SplitAt splits m into columns [0, at) and [at, Cols()).
//
// Errors:
//   - ErrBadSize if at ∉ [1, Cols()-1] (both halves must be non-empty).
func SplitAt(m *matrix.Dense, at int) (head, tail *matrix.Dense, err error) {
	if m == nil {
		return nil, nil, builderErrorf(MethodSplitAt, matrix.ErrNilMatrix, "nil sequence")
	}
	if at < 1 || at >= m.Cols() {
		return nil, nil, builderErrorf(MethodSplitAt, ErrBadSize, "split %d outside [1,%d]", at, m.Cols()-1)
	}
	if head, err = m.SliceCols(0, at); err != nil {
		return nil, nil, err
	}
	if tail, err = m.SliceCols(at, m.Cols()); err != nil {
		return nil, nil, err
	}

	return head, tail, nil
}
