// SPDX-License-Identifier: MIT
// Package esn - forecast error metrics.

package esn

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reservoir/matrix"
)

const (
	opRMSE  = "RMSE"
	opNRMSE = "NRMSE"
)

// RMSE returns the root-mean-square error between pred and target over
// columns fromCol..T−1, pooled across rows.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrShapeMismatch, ErrBadDiscard (fromCol ∉ [0,T)).
func RMSE(pred, target matrix.Matrix, fromCol int) (float64, error) {
	ss, count, err := windowSumSquares(opRMSE, pred, target, fromCol)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(ss / float64(count)), nil
}

// NRMSE returns RMSE divided by the RMS magnitude of target over the same
// window.
//
// Errors:
//   - As RMSE, plus ErrNumericInstability when the target window is all zero.
func NRMSE(pred, target matrix.Matrix, fromCol int) (float64, error) {
	ss, _, err := windowSumSquares(opNRMSE, pred, target, fromCol)
	if err != nil {
		return 0, err
	}
	t, err := matrix.AsDense(target)
	if err != nil {
		return 0, esnErrorf(opNRMSE, err)
	}
	tw, err := t.SliceCols(fromCol, t.Cols())
	if err != nil {
		return 0, esnErrorf(opNRMSE, err)
	}
	norm, err := matrix.SumSquares(tw)
	if err != nil {
		return 0, esnErrorf(opNRMSE, err)
	}
	if norm == 0 {
		return 0, fmt.Errorf("%s: zero-magnitude target: %w", opNRMSE, ErrNumericInstability)
	}

	return math.Sqrt(ss / norm), nil
}

// windowSumSquares returns Σ(pred−target)² over the window and the number of
// entries in it.
func windowSumSquares(op string, pred, target matrix.Matrix, fromCol int) (float64, int, error) {
	if err := matrix.ValidateNotNil(pred); err != nil {
		return 0, 0, esnErrorf(op, err)
	}
	if err := matrix.ValidateNotNil(target); err != nil {
		return 0, 0, esnErrorf(op, err)
	}
	if pred.Rows() != target.Rows() || pred.Cols() != target.Cols() {
		return 0, 0, fmt.Errorf("%s: %dx%d vs %dx%d: %w", op,
			pred.Rows(), pred.Cols(), target.Rows(), target.Cols(), ErrShapeMismatch)
	}
	T := pred.Cols()
	if fromCol < 0 || fromCol >= T {
		return 0, 0, fmt.Errorf("%s: window starts at %d of %d: %w", op, fromCol, T, ErrBadDiscard)
	}

	diff, err := matrix.Sub(pred, target)
	if err != nil {
		return 0, 0, esnErrorf(op, err)
	}
	w, err := diff.SliceCols(fromCol, T)
	if err != nil {
		return 0, 0, esnErrorf(op, err)
	}
	ss, err := matrix.SumSquares(w)
	if err != nil {
		return 0, 0, esnErrorf(op, err)
	}

	return ss, w.Rows() * w.Cols(), nil
}
