// SPDX-License-Identifier: MIT
// Package esn - one reservoir transition.
//
// The architecture is a closed two-way choice fixed in New:
//
//	archInputOnly: cand = f(Wi·[1;u] + Wr·x)
//	archFeedback:  cand = f(Wi·[1;u] + Wr·x + Wf·yPrev)
//
// Noise: after the activation and before leaky integration,
// cand[i] += noiseLevel·(U[0,1) − 0.5) on every step, both in Train and
// Predict. With noiseLevel == 0 nothing is drawn.

package esn

import (
	"github.com/katalvlaran/reservoir/matrix"
)

const opUpdate = "update"

// architecture selects the update variant.
type architecture uint8

const (
	archInputOnly architecture = iota // no output feedback
	archFeedback                      // Wf·yPrev enters the pre-activation
)

// String returns a short label used in logs.
func (a architecture) String() string {
	if a == archFeedback {
		return "feedback"
	}

	return "input-only"
}

// candidate computes the unintegrated next state for state x, input u and
// previous output yPrev (ignored by archInputOnly). It does not modify its
// arguments. ext must have length 1+Ni and is used as scratch for [1;u].
func (n *Network) candidate(x, u, yPrev, ext []float64) ([]float64, error) {
	ext[0] = 1
	copy(ext[1:], u)

	pre, err := matrix.MatVec(n.w.wi, ext)
	if err != nil {
		return nil, esnErrorf(opUpdate, err)
	}
	rec, err := matrix.MatVec(n.w.wr, x)
	if err != nil {
		return nil, esnErrorf(opUpdate, err)
	}
	for i := range pre {
		pre[i] += rec[i]
	}

	switch n.arch {
	case archFeedback:
		fb, err := matrix.MatVec(n.w.wf, yPrev)
		if err != nil {
			return nil, esnErrorf(opUpdate, err)
		}
		for i := range pre {
			pre[i] += fb[i]
		}
	case archInputOnly:
		// input and recurrence only
	}

	for i, v := range pre {
		pre[i] = n.act(v)
	}
	if n.noiseLevel > 0 {
		for i := range pre {
			pre[i] += n.noiseLevel * (n.rng.Float64() - weightCenter)
		}
	}

	return pre, nil
}

// integrate applies leaky integration in place: x ← (1−a)·x + a·cand.
func (n *Network) integrate(x, cand []float64) {
	a := n.leakingRate
	keep := 1 - a
	for i := range x {
		x[i] = keep*x[i] + a*cand[i]
	}
}
