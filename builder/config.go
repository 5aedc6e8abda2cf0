// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all sequence knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil   (local rand seeded by the call's seed argument)
//   • amplitude   = 1.0
//   • frequency   = 0.0   (unset: each generator resolves its own default)
//   • phase       = 0.0
//   • offset      = 0.0
//   • trendK      = 0.0
//   • noiseSigma  = 0.0
//
// AI-Hints:
//   • Set WithSeed to share one RNG stream across several composed generators.
//   • frequency is in cycles/sample; keep it below the Nyquist limit 0.5.

package builder

import (
	"math/rand" // RNG for noisy generators
)

// builderConfig aggregates all knobs used by sequence generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	// RNG for noise draws; nil means "derive from the call's seed".
	rng *rand.Rand

	// Sequence dataset controls (Sine/Pulse/Chirp/RandomWalk).
	amplitude  float64 // >0
	frequency  float64 // >0 when set, cycles/sample; 0 means generator default
	phase      float64 // radians, any real
	offset     float64 // constant DC level added to every sample
	trendK     float64 // any real
	noiseSigma float64 // >=0
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultAmplitude  = 1.0 // sequence amplitude
	defaultFrequency  = 0.0 // unset; resolved per generator
	defaultPhase      = 0.0 // radians
	defaultOffset     = 0.0 // DC level
	defaultTrend      = 0.0 // linear trend coefficient
	defaultNoiseSigma = 0.0 // Gaussian noise stdev
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,
		amplitude:  defaultAmplitude,
		frequency:  defaultFrequency,
		phase:      defaultPhase,
		offset:     defaultOffset,
		trendK:     defaultTrend,
		noiseSigma: defaultNoiseSigma,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// frequencyOr returns the configured frequency, or def when none was set.
func (c builderConfig) frequencyOr(def float64) float64 {
	if c.frequency > 0 {
		return c.frequency
	}

	return def
}
