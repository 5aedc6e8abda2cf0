// SPDX-License-Identifier: MIT
// Package esn - ridge-regression readout training.

package esn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/reservoir/matrix"
)

const opTrain = "Train"

// Train fits the readout on inputs (Ni×T) and target outputs (No×T) and
// returns the fitted output Wo·X (No×T), transient columns included.
//
// Implementation:
//   - Stage 1: validate shapes and the discard window before any work.
//   - Stage 2: collect the teacher-forced state trajectory.
//   - Stage 3: X = [1; u; x] ((1+Ni+Nr)×T); keep columns d..T−1 as Xe, Oe.
//   - Stage 4: Wo = Oe·Xeᵀ·pinv(Xe·Xeᵀ + λI).
//   - Stage 5: commit Wo and the checkpoint (column T−1) in one swap.
//
// Errors:
//   - matrix.ErrNilMatrix for nil operands.
//   - ErrShapeMismatch when rows differ from Ni/No or T differs.
//   - ErrBadDiscard when d >= T.
//   - ErrNumericInstability when states or Wo are not finite or the SVD fails.
//
// On any error the previous readout and checkpoint are left untouched.
//
// Complexity:
//   - Time O(T·Nr² + T·D² + D³) with D = 1+Ni+Nr, Space O(D·T + D²).
func (n *Network) Train(inputs, outputs matrix.Matrix, opts ...TrainOption) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	if err := matrix.ValidateNotNil(outputs); err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	if inputs.Rows() != n.ni {
		return nil, fmt.Errorf("%s: inputs have %d rows, want %d: %w", opTrain, inputs.Rows(), n.ni, ErrShapeMismatch)
	}
	if outputs.Rows() != n.no {
		return nil, fmt.Errorf("%s: outputs have %d rows, want %d: %w", opTrain, outputs.Rows(), n.no, ErrShapeMismatch)
	}
	T := inputs.Cols()
	if outputs.Cols() != T || T < 1 {
		return nil, fmt.Errorf("%s: inputs have %d steps, outputs %d: %w", opTrain, T, outputs.Cols(), ErrShapeMismatch)
	}
	tc := newTrainConfig(T, opts...)
	if tc.discard >= T {
		return nil, fmt.Errorf("%s: discard %d with %d steps: %w", opTrain, tc.discard, T, ErrBadDiscard)
	}

	u, err := matrix.AsDense(inputs)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	y, err := matrix.AsDense(outputs)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}

	states, err := n.collect(u, y)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	X, err := designMatrix(u, states)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}

	wo, err := ridge(X, y, tc.discard, tc.reg)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	fitted, err := matrix.Mul(wo, X)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}

	cp, err := lastColumns(states, u, y)
	if err != nil {
		return nil, esnErrorf(opTrain, err)
	}
	n.ro = &readout{wo: wo, cp: cp}

	n.logTrain(fitted, y, wo, T, tc)

	return fitted, nil
}

// designMatrix stacks [1; u; states] into the extended state matrix.
func designMatrix(u, states *matrix.Dense) (*matrix.Dense, error) {
	ones, err := matrix.NewFilled(1, u.Cols(), 1)
	if err != nil {
		return nil, err
	}

	return matrix.VStack(ones, u, states)
}

// ridge solves Wo = Oe·Xeᵀ·pinv(Xe·Xeᵀ + λI) over columns d..T−1.
func ridge(X, y *matrix.Dense, d int, lambda float64) (*matrix.Dense, error) {
	T := X.Cols()
	Xe, err := X.SliceCols(d, T)
	if err != nil {
		return nil, err
	}
	Oe, err := y.SliceCols(d, T)
	if err != nil {
		return nil, err
	}
	XeT, err := matrix.Transpose(Xe)
	if err != nil {
		return nil, err
	}
	cov, err := matrix.Mul(Xe, XeT)
	if err != nil {
		return nil, err
	}
	I, err := matrix.NewIdentity(cov.Rows())
	if err != nil {
		return nil, err
	}
	lamI, err := matrix.Scale(I, lambda)
	if err != nil {
		return nil, err
	}
	regCov, err := matrix.Add(cov, lamI)
	if err != nil {
		return nil, err
	}
	pinv, err := matrix.PseudoInverse(regCov)
	if err != nil {
		return nil, unstable("ridge", err)
	}
	OeXeT, err := matrix.Mul(Oe, XeT)
	if err != nil {
		return nil, err
	}
	wo, err := matrix.Mul(OeXeT, pinv)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateFinite(wo); err != nil {
		return nil, unstable("ridge", err)
	}

	return wo, nil
}

// lastColumns snapshots column T−1 of states, inputs and outputs.
func lastColumns(states, u, y *matrix.Dense) (Checkpoint, error) {
	last := states.Cols() - 1
	var cp Checkpoint
	var err error
	if cp.State, err = states.Col(last); err != nil {
		return Checkpoint{}, err
	}
	if cp.Input, err = u.Col(last); err != nil {
		return Checkpoint{}, err
	}
	if cp.Output, err = y.Col(last); err != nil {
		return Checkpoint{}, err
	}

	return cp, nil
}

// logTrain emits the Debug training summary. The NRMSE and the readout norm
// are computed only when Debug is enabled.
func (n *Network) logTrain(fitted, y, wo *matrix.Dense, T int, tc trainConfig) {
	ctx := context.Background()
	if !n.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []slog.Attr{
		slog.Int("steps", T),
		slog.Int("discard", tc.discard),
		slog.Float64("regularization", tc.reg),
	}
	nrmse, err := NRMSE(fitted, y, tc.discard)
	switch {
	case err == nil:
		attrs = append(attrs, slog.Float64("nrmse", nrmse))
	case errors.Is(err, ErrNumericInstability):
		// constant-zero target, NRMSE undefined
	default:
		attrs = append(attrs, slog.String("nrmse_error", err.Error()))
	}
	if norm, err := matrix.FrobeniusNorm(wo); err == nil {
		attrs = append(attrs, slog.Float64("readout_norm", norm))
	}
	n.log.LogAttrs(ctx, slog.LevelDebug, "esn: readout trained", attrs...)
}
