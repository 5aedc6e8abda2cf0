// SPDX-License-Identifier: MIT
// Package esn - activation registry.
//
// The reservoir nonlinearity is a plain func(float64) float64 applied
// elementwise to the pre-activation vector. Builtins are looked up by name so
// configurations can refer to them as strings.

package esn

import (
	"fmt"
	"math"
	"sort"
)

// Activation is an elementwise reservoir nonlinearity.
type Activation func(x float64) float64

// Builtin activation names.
const (
	ActivationTanh     = "tanh"
	ActivationSigmoid  = "sigmoid"
	ActivationReLU     = "relu"
	ActivationIdentity = "identity"
)

// builtinActivations is read-only after package init.
var builtinActivations = map[string]Activation{
	ActivationTanh: math.Tanh,
	ActivationSigmoid: func(x float64) float64 {
		return 1.0 / (1.0 + math.Exp(-x))
	},
	ActivationReLU: func(x float64) float64 {
		if x < 0 {
			return 0
		}
		return x
	},
	ActivationIdentity: func(x float64) float64 { return x },
}

// ActivationByName returns the builtin activation registered under name.
// Errors: ErrUnknownActivation.
func ActivationByName(name string) (Activation, error) {
	fn, ok := builtinActivations[name]
	if !ok {
		return nil, fmt.Errorf("ActivationByName(%q): %w", name, ErrUnknownActivation)
	}

	return fn, nil
}

// ActivationNames lists builtin activation names in sorted order.
func ActivationNames() []string {
	names := make([]string, 0, len(builtinActivations))
	for name := range builtinActivations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
