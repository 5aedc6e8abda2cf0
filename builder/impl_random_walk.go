// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// impl_random_walk.go - deterministic geometric random walk (discrete-time GBM).
//
// Purpose:
//   - Emit a reproducible aperiodic, strictly positive series. Unlike Sine or
//     Pulse it has no period for a readout to lock onto, so it probes the
//     fading-memory side of a reservoir.
//   - A small fixed number of sub-steps per sample smooths the path.
//
// Contract:
//   - BuildRandomWalk(n, seed, opts...) returns a slice of length n (or nil).
//   - O(n * steps) time; O(n) memory; steps is a tiny constant.
//
// Option mapping:
//   - WithAmplitude → starting level S0.
//   - WithTrend     → per-sample drift μ.
//   - WithNoise     → per-sample volatility σ (default defWalkVol when unset).
//   - WithOffset    → added after simulation (may shift below zero).

package builder

import (
	"math"
)

const (
	defWalkVol   = 0.02 // Default per-sample volatility σ (≥0)
	defSubSteps  = 8    // Fixed sub-steps per sample (small constant)
	walkHalfCoef = 0.5  // Itô correction factor in (μ - ½σ²)
)

// seqWalkParams groups resolved knobs for the random walk.
type seqWalkParams struct {
	S0    float64 // initial level > 0
	mu    float64 // per-sample drift
	vol   float64 // per-sample volatility ≥ 0
	steps int     // sub-steps per sample ≥ 1
}

// extractWalkParams maps builderConfig → seqWalkParams.
func extractWalkParams(cfg builderConfig) seqWalkParams {
	vol := defWalkVol
	if cfg.noiseSigma > 0 {
		vol = cfg.noiseSigma
	}

	return seqWalkParams{
		S0:    cfg.amplitude,
		mu:    cfg.trendK,
		vol:   vol,
		steps: defSubSteps,
	}
}

// BuildRandomWalk returns a deterministic GBM path of length n.
// Model (per sub-step with Δt = 1/steps):
//
//	S_{t+Δt} = S_t * exp((μ - 0.5σ²)Δt + σ√Δt * Z),  Z ~ N(0,1).
//
// Sample i is the level after i full samples (sample 0 is S0).
func BuildRandomWalk(n int, seed int64, opts ...BuilderOption) []float64 {
	if n < 1 {
		return nil
	}

	cfg := newBuilderConfig(opts...)
	p := extractWalkParams(cfg)
	if p.S0 <= 0 || p.vol < 0 || p.steps < 1 {
		return nil
	}

	rng := rngFrom(cfg, seed)
	out := make([]float64, n)

	// Precompute sub-step constants.
	dt := 1.0 / float64(p.steps)
	driftTerm := (p.mu - walkHalfCoef*p.vol*p.vol) * dt
	noiseScale := p.vol * math.Sqrt(dt)

	S := p.S0
	out[0] = S + cfg.offset
	var i, s int
	for i = 1; i < n; i++ {
		for s = 0; s < p.steps; s++ {
			S *= math.Exp(driftTerm + noiseScale*rng.NormFloat64())
		}
		out[i] = S + cfg.offset
	}

	return out
}
