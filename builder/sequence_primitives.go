// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// sequence_primitives.go - shared defaults and helpers for sequence builders.
//
// Purpose:
//   - Hold tiny named constants shared by every generator.
//   - Provide deterministic RNG selection with cfg.rng priority.
//   - Provide the common "post-processing" of a base sample (offset, trend, noise).
//
// Contract:
//   - Pure helpers (no global state).

package builder

import (
	"math"
	"math/rand"
)

// -----------------------------
// Tiny numeric named constants.
// -----------------------------
const (
	unitZero  = 0.0 // named zero to avoid magic 0.0
	unitOne   = 1.0 // named one to avoid magic 1.0
	triDouble = 2.0 // factor used in triangular wave: 2*frac-1
	triCenter = 1.0 // center offset used in triangular wave
)

// tau is 2π, precomputed for phase accumulation.
const tau = 2.0 * math.Pi

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}

// finishSample adds DC offset, linear trend and optional Gaussian noise to a
// base value at index i. The rng is touched only when sigma > 0, so noiseless
// sequences never advance a shared stream.
func finishSample(cfg builderConfig, rng *rand.Rand, base float64, i int) float64 {
	v := base + cfg.offset + cfg.trendK*float64(i)
	if cfg.noiseSigma > 0 {
		v += cfg.noiseSigma * rng.NormFloat64()
	}

	return v
}
