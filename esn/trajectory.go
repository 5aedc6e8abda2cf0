// SPDX-License-Identifier: MIT
// Package esn - state trajectory under teacher forcing.

package esn

import (
	"errors"

	"github.com/katalvlaran/reservoir/matrix"
)

const opCollect = "collect"

// collect drives the reservoir over u (Ni×T) with targets y (No×T) and
// returns the Nr×T state history.
//
// Column 0 is the zero initial condition and is never produced by a
// transition. For t = 1..T−1:
//
//	X[:,t] = leaky(X[:,t−1], update(X[:,t−1], u[:,t], y[:,t−1]))
//
// The feedback variant sees the target at t−1, never a prediction.
//
// Errors:
//   - ErrNumericInstability if a state leaves the finite range.
//
// Complexity:
//   - Time O(T·Nr·(Nr+Ni+No)), Space O(Nr·T).
func (n *Network) collect(u, y *matrix.Dense) (*matrix.Dense, error) {
	T := u.Cols()
	states, err := matrix.NewDense(n.nr, T)
	if err != nil {
		return nil, esnErrorf(opCollect, err)
	}

	x := make([]float64, n.nr)
	ext := make([]float64, 1+n.ni)
	var ut, yPrev, cand []float64
	for t := 1; t < T; t++ {
		if ut, err = u.Col(t); err != nil {
			return nil, esnErrorf(opCollect, err)
		}
		if yPrev, err = y.Col(t - 1); err != nil {
			return nil, esnErrorf(opCollect, err)
		}
		if cand, err = n.candidate(x, ut, yPrev, ext); err != nil {
			return nil, esnErrorf(opCollect, err)
		}
		n.integrate(x, cand)
		if err = states.SetCol(t, x); err != nil {
			if errors.Is(err, matrix.ErrNaNInf) {
				return nil, unstable(opCollect, err)
			}
			return nil, esnErrorf(opCollect, err)
		}
	}

	return states, nil
}
