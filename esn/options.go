// SPDX-License-Identifier: MIT
// Package: reservoir/esn
//
// options.go - functional options and documented defaults.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     New/Train/Predict themselves never panic on user data.
//   • Determinism is explicit: an unconfigured network draws from
//     rand.New(rand.NewSource(DefaultSeed)); WithSeed/WithRand override it.
//   • Options apply in order; the last one wins.

package esn

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
)

// Construction defaults.
const (
	DefaultInputs         = 1
	DefaultOutputs        = 1
	DefaultReservoirSize  = 100
	DefaultSparsity       = 0.95
	DefaultSpectralRadius = 0.95
	DefaultNoiseLevel     = 0.001
	DefaultLeakingRate    = 1.0
	DefaultTeacherForcing = true
	DefaultSeed           = int64(42)
)

// Training defaults.
const (
	// DefaultRegularization is the ridge penalty λ.
	DefaultRegularization = 1e-8
	// DefaultDiscardFraction and MaxDefaultDiscard give the default transient
	// length min(T/DefaultDiscardFraction, MaxDefaultDiscard).
	DefaultDiscardFraction = 10
	MaxDefaultDiscard      = 100
)

// Source is the random stream consumed by the network: weight draws,
// sparsification positions and update noise. *math/rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// config aggregates all construction knobs.
type config struct {
	nr, ni, no     int
	sparsity       float64
	spectralRadius float64
	noiseLevel     float64
	leakingRate    float64
	teacherForcing bool
	rng            Source
	activation     Activation
	logger         *slog.Logger
}

// Option customizes a Network before its weights are drawn.
type Option func(*config)

// newConfig starts from defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		nr:             DefaultReservoirSize,
		ni:             DefaultInputs,
		no:             DefaultOutputs,
		sparsity:       DefaultSparsity,
		spectralRadius: DefaultSpectralRadius,
		noiseLevel:     DefaultNoiseLevel,
		leakingRate:    DefaultLeakingRate,
		teacherForcing: DefaultTeacherForcing,
		activation:     math.Tanh,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Resolve lazily so an explicit WithRand never pays for a default source.
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.logger == nil {
		// Go 1.21 stand-in for slog.DiscardHandler: discards output and reports
		// every level as disabled.
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}

	return cfg
}

// WithInputs sets the input width Ni (>=1).
func WithInputs(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("esn: WithInputs(%d): must be >= 1", n))
	}
	return func(c *config) { c.ni = n }
}

// WithOutputs sets the output width No (>=1).
func WithOutputs(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("esn: WithOutputs(%d): must be >= 1", n))
	}
	return func(c *config) { c.no = n }
}

// WithReservoirSize sets the reservoir width Nr (>=1).
func WithReservoirSize(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("esn: WithReservoirSize(%d): must be >= 1", n))
	}
	return func(c *config) { c.nr = n }
}

// WithSparsity sets the fraction of Nr² reservoir cells to zero, in [0,1].
func WithSparsity(p float64) Option {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("esn: WithSparsity(%v): must be in [0,1]", p))
	}
	return func(c *config) { c.sparsity = p }
}

// WithSpectralRadius sets the target spectral radius of Wr (>0, finite).
func WithSpectralRadius(rho float64) Option {
	if !(rho > 0) || math.IsInf(rho, 0) {
		panic(fmt.Sprintf("esn: WithSpectralRadius(%v): must be > 0", rho))
	}
	return func(c *config) { c.spectralRadius = rho }
}

// WithNoiseLevel sets the amplitude of the uniform state noise (>=0).
// Zero disables noise and makes Train/Predict consume no randomness.
func WithNoiseLevel(level float64) Option {
	if !(level >= 0) || math.IsInf(level, 0) {
		panic(fmt.Sprintf("esn: WithNoiseLevel(%v): must be >= 0", level))
	}
	return func(c *config) { c.noiseLevel = level }
}

// WithLeakingRate sets the leaky-integration rate a in (0,1].
func WithLeakingRate(a float64) Option {
	if !(a > 0 && a <= 1) {
		panic(fmt.Sprintf("esn: WithLeakingRate(%v): must be in (0,1]", a))
	}
	return func(c *config) { c.leakingRate = a }
}

// WithTeacherForcing selects the feedback architecture (true) or the
// input-only architecture (false).
func WithTeacherForcing(on bool) Option {
	return func(c *config) { c.teacherForcing = on }
}

// WithRand provides the network's random source for its whole lifetime.
// Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("esn: WithRand(nil)")
	}
	return func(c *config) { c.rng = src }
}

// WithSeed creates a new seeded *rand.Rand (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithActivation sets the reservoir nonlinearity. Panics on nil.
func WithActivation(fn Activation) Option {
	if fn == nil {
		panic("esn: WithActivation(nil)")
	}
	return func(c *config) { c.activation = fn }
}

// WithActivationName selects a builtin activation by name.
// Panics on an unknown name; use ActivationByName to check first.
func WithActivationName(name string) Option {
	fn, err := ActivationByName(name)
	if err != nil {
		panic(err.Error())
	}
	return WithActivation(fn)
}

// WithLogger sets the structured logger (Debug-level summaries of init,
// training and prediction). Panics on nil. Default discards.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("esn: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// trainConfig holds per-call training knobs.
type trainConfig struct {
	discard    int
	discardSet bool
	reg        float64
}

// TrainOption customizes a single Train call.
type TrainOption func(*trainConfig)

// newTrainConfig resolves defaults for a sequence of length T.
func newTrainConfig(T int, opts ...TrainOption) trainConfig {
	tc := trainConfig{reg: DefaultRegularization}
	for _, opt := range opts {
		opt(&tc)
	}
	if !tc.discardSet {
		tc.discard = min(T/DefaultDiscardFraction, MaxDefaultDiscard)
	}

	return tc
}

// WithDiscard sets the number of leading time steps excluded from the fit.
// Panics if d < 0.
func WithDiscard(d int) TrainOption {
	if d < 0 {
		panic(fmt.Sprintf("esn: WithDiscard(%d): must be >= 0", d))
	}
	return func(tc *trainConfig) {
		tc.discard = d
		tc.discardSet = true
	}
}

// WithRegularization sets the ridge penalty λ (>=0, finite).
func WithRegularization(lambda float64) TrainOption {
	if !(lambda >= 0) || math.IsInf(lambda, 0) {
		panic(fmt.Sprintf("esn: WithRegularization(%v): must be >= 0", lambda))
	}
	return func(tc *trainConfig) { tc.reg = lambda }
}
