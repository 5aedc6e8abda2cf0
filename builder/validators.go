// Package builder provides validation helpers to enforce
// parameter contracts in the matrix adapters.
//
// Each function returns an ErrBadSize wrapped via builderErrorf
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: parameter must be ≥ <min>, got <got>: <ErrBadSize>" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrBadSize, "parameter must be ≥ %d, got %d", min, got)
	}

	return nil
}

// validateSameLen checks that every channel has exactly n samples.
//
// Complexity: O(k) for k channels.
func validateSameLen(method string, n int, seqs [][]float64) error {
	for k, s := range seqs {
		if len(s) != n {
			return builderErrorf(method, ErrBadSize, "channel %d has %d samples, want %d", k, len(s), n)
		}
	}

	return nil
}
