// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDefaults verifies that newBuilderConfig starts from documented defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.Nil(t, cfg.rng)
	require.Equal(t, defaultAmplitude, cfg.amplitude)
	require.Equal(t, defaultFrequency, cfg.frequency)
	require.Equal(t, defaultPhase, cfg.phase)
	require.Equal(t, defaultOffset, cfg.offset)
	require.Equal(t, defaultTrend, cfg.trendK)
	require.Equal(t, defaultNoiseSigma, cfg.noiseSigma)

	// Unset frequency falls back to the generator default.
	require.Equal(t, 0.3, cfg.frequencyOr(0.3))
	require.Equal(t, 0.1, newBuilderConfig(WithFrequency(0.1)).frequencyOr(0.3))
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	expRNG := rand.New(rand.NewSource(123))
	cfgWithRand := newBuilderConfig(WithRand(expRNG))
	require.Same(t, expRNG, cfgWithRand.rng)

	cfgSeed1 := newBuilderConfig(WithSeed(42))
	cfgSeed2 := newBuilderConfig(WithSeed(42))
	require.Equal(t, cfgSeed1.rng.Int63(), cfgSeed2.rng.Int63())

	// rngFrom prefers the shared stream.
	require.Same(t, expRNG, rngFrom(cfgWithRand, 7))
	require.NotNil(t, rngFrom(newBuilderConfig(), 7))
}

// TestOptionsLastWins verifies in-order application of options.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithAmplitude(2), WithAmplitude(3),
		WithTrend(0.5), WithOffset(-1), WithPhase(1.5), WithNoise(0.1),
	)
	require.Equal(t, 3.0, cfg.amplitude)
	require.Equal(t, 0.5, cfg.trendK)
	require.Equal(t, -1.0, cfg.offset)
	require.Equal(t, 1.5, cfg.phase)
	require.Equal(t, 0.1, cfg.noiseSigma)
}

// TestOptionPanics verifies that option constructors fail fast on invalid input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "builder: WithRand(nil)", func() { WithRand(nil) })
	require.PanicsWithValue(t, "builder: WithAmplitude(A<=0)", func() { WithAmplitude(0) })
	require.PanicsWithValue(t, "builder: WithFrequency(f0<=0)", func() { WithFrequency(-1) })
	require.PanicsWithValue(t, "builder: WithNoise(sigma<0)", func() { WithNoise(-0.1) })
}

// TestFinishSampleNoRNGWithoutNoise ensures noiseless samples never advance a shared stream.
func TestFinishSampleNoRNGWithoutNoise(t *testing.T) {
	t.Parallel()

	shared := rand.New(rand.NewSource(1))
	ref := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithOffset(1), WithTrend(2))

	require.Equal(t, 1.0+1.0+2.0*3, finishSample(cfg, shared, 1, 3))
	require.Equal(t, ref.Int63(), shared.Int63())
}
