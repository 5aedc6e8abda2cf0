// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// impl_pulse.go - deterministic rectangular/triangular pulse generator.
//
// Purpose (single responsibility):
//   • Provide a reproducible 1-D pulse sequence for tests, demos and fixtures.
//     Pulses are discontinuous, which stresses the reservoir's memory.
//   • Shape controls: rectangular (duty ∈ [0,1]) or triangular (0..A envelope).
//   • Optional offset, linear trend and additive Gaussian noise, all deterministic.
//
// Contract:
//   • BuildPulse(n, seed, opts...) returns a slice of length n (or nil on invalid input).
//   • BuildTrianglePulse is the triangular variant with the same contract.
//   • Strict determinism per (n, seed, options); no panics; no global state.
//
// AI-Hints (practical):
//   • For rectangular waveforms, frac := mod(i*f0,1) is faster than trig checks.

package builder

import (
	"math"
)

// -----------------------------------------------------------------------------
// File-local defaults (no magic numbers; cohesive to the pulse generator).
// -----------------------------------------------------------------------------

const (
	defBaseFreq = 0.125 // Default base frequency f0 in cycles/sample (>0). Period ≈ 8.
	defDuty     = 0.5   // Default rectangular duty cycle in [0,1].
)

// seqPulseParams holds all resolved knobs for the pulse generator.
type seqPulseParams struct {
	amp        float64 // amplitude > 0
	f0         float64 // base frequency > 0 (cycles/sample)
	duty       float64 // rectangular duty in [0,1]
	triangular bool    // rectangular(false) or triangular(true)
}

// extractPulseParams maps builderConfig → seqPulseParams.
func extractPulseParams(cfg builderConfig, triangular bool) seqPulseParams {
	return seqPulseParams{
		amp:        cfg.amplitude,
		f0:         cfg.frequencyOr(defBaseFreq),
		duty:       defDuty,
		triangular: triangular,
	}
}

// BuildPulse returns a length-n rectangular pulse sequence.
// Shape:
//   - y ∈ {0, A} chosen by phase fraction < duty, then offset/trend/noise.
//
// Validation:
//   - If n < 1 ⇒ return nil (invalid request).
//
// Complexity:
//   - O(n) time, O(n) memory, constant-small overhead.
func BuildPulse(n int, seed int64, opts ...BuilderOption) []float64 {
	return buildPulse(n, seed, false, opts...)
}

// BuildTrianglePulse returns a length-n triangular wave in [0, A]
// via 1 − |2*frac − 1| (no trig), then offset/trend/noise.
func BuildTrianglePulse(n int, seed int64, opts ...BuilderOption) []float64 {
	return buildPulse(n, seed, true, opts...)
}

func buildPulse(n int, seed int64, triangular bool, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil // Contract: invalid input → no data, never panic.
	}

	cfg := newBuilderConfig(opts...)
	p := extractPulseParams(cfg, triangular)
	if p.amp <= 0 || p.f0 <= 0 || p.duty < 0 || p.duty > 1 {
		return nil
	}

	// RNG selection: prefer cfg.rng to honor global determinism; otherwise fall back to 'seed'.
	rng := rngFrom(cfg, seed)

	out := make([]float64, n)

	var (
		frac float64 // phase fraction in [0,1)
		base float64 // base waveform before offset/trend/noise
	)

	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): frac = (i*f0) mod 1.
		frac = math.Mod(float64(i)*p.f0, unitOne)

		if p.triangular {
			base = p.amp * (unitOne - math.Abs(triDouble*frac-triCenter))
		} else if frac < p.duty {
			base = p.amp
		} else {
			base = unitZero
		}

		out[i] = finishSample(cfg, rng, base, i)
	}

	return out
}
