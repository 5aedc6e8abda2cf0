// SPDX-License-Identifier: MIT
// Package esn - the Network type, its constructor and read-only accessors.

package esn

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/reservoir/matrix"
)

const opNew = "New"

// Network is an Echo State Network: fixed random reservoir weights plus a
// linear readout fitted by Train.
//
// Lifecycle: sizes, hyperparameters and Wr/Wi/Wf are fixed by New. Train
// replaces the readout and the continuation checkpoint together. Predict
// reads them and never writes them.
//
// A Network is not safe for concurrent use.
type Network struct {
	nr, ni, no int

	sparsity       float64
	spectralRadius float64
	noiseLevel     float64
	leakingRate    float64
	arch           architecture

	w   weights
	rng Source
	act Activation
	log *slog.Logger

	// ro is nil until the first successful Train.
	ro *readout
}

// readout is the trained state committed atomically by Train.
type readout struct {
	wo *matrix.Dense // No×(1+Ni+Nr)
	cp Checkpoint
}

// Checkpoint is the last training time step: the point Predict(cont=true)
// resumes from.
type Checkpoint struct {
	State  []float64 // len Nr
	Input  []float64 // len Ni
	Output []float64 // len No
}

func (c Checkpoint) clone() Checkpoint {
	return Checkpoint{
		State:  append([]float64(nil), c.State...),
		Input:  append([]float64(nil), c.Input...),
		Output: append([]float64(nil), c.Output...),
	}
}

// New builds a Network and draws its fixed weights.
// MAIN DESCRIPTION:
//   - Resolves options over documented defaults and draws Wr, Wi, Wf from the
//     configured Source in a fixed order, so equal seeds give bit-identical
//     weights.
//
// Errors:
//   - ErrNumericInstability if the sparsified reservoir has zero spectral
//     radius (e.g., sparsity 1.0) and cannot be rescaled.
//
// Complexity:
//   - Time O(Nr³), Space O(Nr² + Nr·(Ni+No)).
func New(opts ...Option) (*Network, error) {
	cfg := newConfig(opts...)

	w, rawRho, err := initWeights(cfg)
	if err != nil {
		return nil, esnErrorf(opNew, err)
	}

	arch := archInputOnly
	if cfg.teacherForcing {
		arch = archFeedback
	}
	n := &Network{
		nr:             cfg.nr,
		ni:             cfg.ni,
		no:             cfg.no,
		sparsity:       cfg.sparsity,
		spectralRadius: cfg.spectralRadius,
		noiseLevel:     cfg.noiseLevel,
		leakingRate:    cfg.leakingRate,
		arch:           arch,
		w:              w,
		rng:            cfg.rng,
		act:            cfg.activation,
		log:            cfg.logger,
	}
	n.log.LogAttrs(context.Background(), slog.LevelDebug, "esn: reservoir initialized",
		slog.Int("nr", n.nr), slog.Int("ni", n.ni), slog.Int("no", n.no),
		slog.Float64("raw_spectral_radius", rawRho),
		slog.Float64("spectral_radius", n.spectralRadius),
		slog.String("architecture", n.arch.String()),
	)

	return n, nil
}

// Sizes returns the reservoir, input and output widths.
func (n *Network) Sizes() (nr, ni, no int) { return n.nr, n.ni, n.no }

// TeacherForcing reports whether the feedback architecture is active.
func (n *Network) TeacherForcing() bool { return n.arch == archFeedback }

// LeakingRate returns the leaky-integration rate.
func (n *Network) LeakingRate() float64 { return n.leakingRate }

// NoiseLevel returns the state-noise amplitude.
func (n *Network) NoiseLevel() float64 { return n.noiseLevel }

// SpectralRadius returns the configured spectral radius of Wr.
func (n *Network) SpectralRadius() float64 { return n.spectralRadius }

// Sparsity returns the configured sparsity of Wr.
func (n *Network) Sparsity() float64 { return n.sparsity }

// ReservoirWeights returns a copy of Wr (Nr×Nr).
func (n *Network) ReservoirWeights() *matrix.Dense { return n.w.wr.Clone().(*matrix.Dense) }

// InputWeights returns a copy of Wi (Nr×(Ni+1), column 0 is the bias).
func (n *Network) InputWeights() *matrix.Dense { return n.w.wi.Clone().(*matrix.Dense) }

// FeedbackWeights returns a copy of Wf (Nr×No).
func (n *Network) FeedbackWeights() *matrix.Dense { return n.w.wf.Clone().(*matrix.Dense) }

// Trained reports whether a readout is present.
func (n *Network) Trained() bool { return n.ro != nil }

// Readout returns a copy of Wo (No×(1+Ni+Nr)), or false before training.
func (n *Network) Readout() (*matrix.Dense, bool) {
	if n.ro == nil {
		return nil, false
	}

	return n.ro.wo.Clone().(*matrix.Dense), true
}

// Checkpoint returns a copy of the continuation checkpoint, or false before
// training.
func (n *Network) Checkpoint() (Checkpoint, bool) {
	if n.ro == nil {
		return Checkpoint{}, false
	}

	return n.ro.cp.clone(), true
}
