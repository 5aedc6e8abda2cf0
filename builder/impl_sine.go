// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// impl_sine.go - deterministic sine wave generator.
//
// Purpose:
//   - Produce the canonical forecasting fixture: a pure (or lightly noisy)
//     sinusoid, optionally with DC offset and linear trend.
//
// Contract:
//   - BuildSine(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.

package builder

import (
	"math"
)

// DefaultSineFrequency is the sine frequency when WithFrequency is not given
// (cycles/sample). Period = 25 samples.
const DefaultSineFrequency = 0.04

// BuildSine returns a length-n sinusoid.
// Model:
//   - yᵢ = offset + A·sin(τ·f·i + φ) + trend·i + σ·N(0,1)
//
// Validation:
//   - n < 1 ⇒ nil.
//
// Complexity:
//   - O(n) time, O(n) memory.
func BuildSine(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}
	cfg := newBuilderConfig(opts...)
	f := cfg.frequencyOr(DefaultSineFrequency)
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = finishSample(cfg, rng, cfg.amplitude*math.Sin(tau*f*float64(i)+cfg.phase), i)
	}

	return out
}
