// SPDX-License-Identifier: MIT
// Package: reservoir/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` via builderErrorf.
//   • Generators MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates invalid sizes/lengths for sequence datasets or adapters
// (n < 1, empty or ragged channel sets, split points outside the sequence).
// Usage: if errors.Is(err, ErrBadSize) { /* fix n / lengths */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates a parameter combination that option
// constructors cannot catch on their own (e.g., a chirp whose end frequency
// is not positive after resolution).
// Usage: if errors.Is(err, ErrOptionViolation) { /* correct option values */ }.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps a sentinel with the given method context and a formatted
// detail. It returns an error of the form "<Method>: <detail>: <sentinel>".
//
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)

	return fmt.Errorf("%s: %s: %w", method, inner, sentinel)
}
