// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// impl_chirp.go - deterministic linear chirp generator.
//
// Purpose:
//   - Produce a 1-D linear chirp (frequency sweep from f0 to f1), a harder
//     forecasting fixture than a pure sine because the dynamics drift.
//   - Optional offset, linear trend and Gaussian noise.
//   - Strict determinism with the same policy as BuildPulse.
//
// Contract:
//   - BuildChirp(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n) time, O(n) memory. No panics. No global state.
//
// Determinism policy (aligned with builders):
//   - If cfg.rng != nil → use cfg.rng (shared stream via WithSeed(...)).
//   - Else → rng := rand.New(rand.NewSource(seed)).
//
// AI-Hints:
//   - Need exponential sweep? Swap linear fi with geometric interpolation.
//   - Want phase-continuous multi-chirp sequences? Reuse the same theta accumulator.

package builder

import (
	"math"
)

// -----------------------------
// Defaults specific to chirp.
// -----------------------------

const (
	defChirpF0 = 0.02 // start frequency (cycles/sample) > 0
	defChirpF1 = 0.25 // end   frequency (cycles/sample) > 0
)

// -----------------------------
// Param bundle & resolver.
// -----------------------------
type seqChirpParams struct {
	amp float64 // amplitude > 0
	f0  float64 // start freq > 0
	f1  float64 // end   freq > 0
}

// extractChirpParams maps builderConfig → seqChirpParams.
// WithFrequency moves the start of the sweep; the end stays at defChirpF1.
func extractChirpParams(cfg builderConfig) seqChirpParams {
	return seqChirpParams{
		amp: cfg.amplitude,
		f0:  cfg.frequencyOr(defChirpF0),
		f1:  defChirpF1,
	}
}

// -----------------------------
// Public API.
// -----------------------------

// BuildChirp returns a length-n linear chirp: f sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π, θ₀=φ)
//   - yᵢ  = A * sin(θᵢ) + offset + trend*i + noise
func BuildChirp(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractChirpParams(cfg)
	if p.amp <= 0 || p.f0 <= 0 || p.f1 <= 0 {
		return nil
	}

	// RNG selection (shared vs local).
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	// Phase accumulator starts at the configured phase for reproducibility.
	theta := cfg.phase

	var (
		t  float64 // normalized position in [0,1]
		fi float64 // instantaneous frequency at sample i
	)

	for i := 0; i < n; i++ {
		if n > 1 {
			t = float64(i) / float64(n-1)
		} else {
			t = unitZero
		}

		// Instantaneous frequency fi (linear sweep).
		fi = p.f0 + (p.f1-p.f0)*t

		// Update phase (discrete-time integration with dt=1).
		theta += tau * fi

		out[i] = finishSample(cfg, rng, p.amp*math.Sin(theta), i)
	}

	return out
}
