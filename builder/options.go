// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.
//
// AI-Hints:
//   • Prefer WithSeed for reproducible noisy fixtures.
//   • WithFrequency applies to the periodic generators (Sine, Pulse) and is the
//     start frequency of a Chirp.

package builder

import (
	"math/rand" // RNG source for noisy generators
)

// BuilderOption customizes the behavior of a generator by mutating a
// builderConfig instance before synthesis begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for noisy generators.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAmplitude sets the sequence amplitude A (>0).
// Panics if A <= 0 to avoid degenerate outputs.
// Complexity: O(1) time, O(1) space.
func WithAmplitude(A float64) BuilderOption {
	if A <= 0 {
		panic("builder: WithAmplitude(A<=0)")
	}
	return func(c *builderConfig) {
		c.amplitude = A
	}
}

// WithFrequency sets the base frequency f0 (>0, cycles/sample).
// Panics if f0 <= 0.
// Complexity: O(1) time, O(1) space.
func WithFrequency(f0 float64) BuilderOption {
	if f0 <= 0 {
		panic("builder: WithFrequency(f0<=0)")
	}
	return func(c *builderConfig) {
		c.frequency = f0
	}
}

// WithPhase sets the initial phase in radians for Sine and Chirp.
// Any real value is accepted.
func WithPhase(phi float64) BuilderOption {
	return func(c *builderConfig) {
		c.phase = phi
	}
}

// WithOffset adds a constant DC level to every sample.
func WithOffset(level float64) BuilderOption {
	return func(c *builderConfig) {
		c.offset = level
	}
}

// WithTrend sets the linear trend coefficient k for sequences (y += k*i).
// Any real value is accepted (including 0).
// Complexity: O(1) time, O(1) space.
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) {
		c.trendK = k
	}
}

// WithNoise sets Gaussian noise sigma (>=0) for sequences.
// Panics if sigma < 0. Noise draws are seeded by c.rng.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *builderConfig) {
		// Standard deviation for additive noise; 0 means noiseless.
		c.noiseSigma = sigma
	}
}
