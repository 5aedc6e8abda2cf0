// Package builder provides deterministic synthetic time series and the
// adapters that turn them into the time-major matrices consumed by the esn
// package. Tests, examples and benchmarks draw their fixtures from here.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, amplitude, frequency, phase, offset, trend, noise.
//   - Sequence generators (all return []float64 of length n, nil on n < 1):
//     – BuildSine:          A·sin(2π·f·i + φ).
//     – BuildChirp:         linear frequency sweep.
//     – BuildPulse:         rectangular pulse train.
//     – BuildTrianglePulse: triangular wave.
//     – BuildRandomWalk:    geometric random walk (aperiodic, positive).
//   - Matrix adapters:
//     – Series:        k channels → k×T matrix.
//     – NextStepPairs: scalar sequence → one-step-ahead (inputs, targets).
//     – SplitAt:       train/test split along time.
//
// Guarantees:
//
//   - Determinism: identical (n, seed, options) give identical output.
//     Noise draws come from WithSeed/WithRand when set, otherwise from a
//     local source seeded by the call's seed argument.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Adapters return ErrBadSize (wrapped with the adapter name) on bad lengths.
package builder
