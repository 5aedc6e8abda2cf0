// SPDX-License-Identifier: MIT
// Package esn: sentinel error set.
//
// Every message is prefixed with "esn: ..." for consistency and to allow easy
// grepping across logs. Operations attach context with
// fmt.Errorf("<Op>: %w", ErrX); callers match with errors.Is.
//
// ERROR PRIORITY (checked in this order by Train):
// nil -> shape -> discard -> numeric instability.
//
// Matrix-layer failures that mean "the numbers went bad" (NaN/Inf, failed
// eigen/SVD) are re-tagged as ErrNumericInstability while keeping the
// original matrix sentinel in the chain.

package esn

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates that inputs/outputs disagree with Ni/No or
	// with each other on the number of time steps.
	ErrShapeMismatch = errors.New("esn: shape mismatch")

	// ErrNotTrained indicates Predict was called before any successful Train.
	ErrNotTrained = errors.New("esn: network is not trained")

	// ErrNumericInstability indicates a degenerate spectral-radius rescale,
	// a failed factorization, or NaN/Inf in states or readout weights.
	ErrNumericInstability = errors.New("esn: numeric instability")

	// ErrBadDiscard indicates a transient discard that leaves no columns to fit
	// (discard >= T) or a metric window that starts outside the sequence.
	ErrBadDiscard = errors.New("esn: discard leaves no samples")

	// ErrUnknownActivation indicates a lookup of an unregistered activation name.
	ErrUnknownActivation = errors.New("esn: unknown activation")
)

// esnErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func esnErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// unstable tags a lower-level numeric failure with ErrNumericInstability
// while keeping cause reachable through errors.Is.
func unstable(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrNumericInstability, cause)
}
