// SPDX-License-Identifier: MIT
// Package esn - free-running prediction with the trained readout.

package esn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/reservoir/matrix"
)

const opPredict = "Predict"

// Predict forecasts No×Nd outputs for inputs (Ni×Nd).
//
// Warm-up: with cont the state, previous input and previous output start
// from the checkpoint of the latest Train; without cont they start at zero.
// Each step advances the reservoir (the feedback variant sees the previous
// prediction) and emits y_t = Wo·[1; u_t; x_t]. The warm-up column is not
// part of the result.
//
// Predict never writes the checkpoint or the readout: consecutive
// Predict(…, true) calls all resume from the same Train checkpoint. With a
// positive noise level it does advance the random source.
//
// Errors:
//   - ErrNotTrained before the first successful Train.
//   - matrix.ErrNilMatrix, ErrShapeMismatch (rows != Ni).
//   - ErrNumericInstability when a forecast leaves the finite range.
//
// Complexity:
//   - Time O(Nd·Nr·(Nr+Ni+No)), Space O(No·Nd).
func (n *Network) Predict(inputs matrix.Matrix, cont bool) (*matrix.Dense, error) {
	ro := n.ro
	if ro == nil {
		return nil, esnErrorf(opPredict, ErrNotTrained)
	}
	if err := matrix.ValidateNotNil(inputs); err != nil {
		return nil, esnErrorf(opPredict, err)
	}
	if inputs.Rows() != n.ni {
		return nil, fmt.Errorf("%s: inputs have %d rows, want %d: %w", opPredict, inputs.Rows(), n.ni, ErrShapeMismatch)
	}
	u, err := matrix.AsDense(inputs)
	if err != nil {
		return nil, esnErrorf(opPredict, err)
	}
	Nd := u.Cols()

	x := make([]float64, n.nr)
	yPrev := make([]float64, n.no)
	if cont {
		copy(x, ro.cp.State)
		copy(yPrev, ro.cp.Output)
	}

	out, err := matrix.NewDense(n.no, Nd)
	if err != nil {
		return nil, esnErrorf(opPredict, err)
	}
	scratch := make([]float64, 1+n.ni)
	ext := make([]float64, 1+n.ni+n.nr)
	var ut, cand, yt []float64
	for t := 0; t < Nd; t++ {
		if ut, err = u.Col(t); err != nil {
			return nil, esnErrorf(opPredict, err)
		}
		if cand, err = n.candidate(x, ut, yPrev, scratch); err != nil {
			return nil, esnErrorf(opPredict, err)
		}
		n.integrate(x, cand)

		ext[0] = 1
		copy(ext[1:], ut)
		copy(ext[1+n.ni:], x)
		if yt, err = matrix.MatVec(ro.wo, ext); err != nil {
			return nil, esnErrorf(opPredict, err)
		}
		if err = out.SetCol(t, yt); err != nil {
			if errors.Is(err, matrix.ErrNaNInf) {
				return nil, unstable(opPredict, err)
			}
			return nil, esnErrorf(opPredict, err)
		}
		yPrev = yt
	}

	n.log.LogAttrs(context.Background(), slog.LevelDebug, "esn: forecast",
		slog.Int("steps", Nd), slog.Bool("cont", cont))

	return out, nil
}
