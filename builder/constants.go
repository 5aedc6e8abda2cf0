// Package builder defines shared constants used by the sequence generators and
// matrix adapters, ensuring consistent error context and validation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the function name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSeries is the canonical name for the Series adapter.
	MethodSeries = "Series"
	// MethodNextStepPairs is the canonical name for the NextStepPairs adapter.
	MethodNextStepPairs = "NextStepPairs"
	// MethodSplitAt is the canonical name for the SplitAt adapter.
	MethodSplitAt = "SplitAt"
)

//-----------------------------------------------------------------------------
// Minimum Lengths
//-----------------------------------------------------------------------------

const (
	// MinSeriesLen is the minimum number of samples in a channel.
	MinSeriesLen = 1
	// MinPairLen is the minimum sequence length for input/target pairing.
	MinPairLen = 2
)
