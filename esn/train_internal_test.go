package esn

import (
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

// TestTrain_CheckpointIsLastColumn checks the stored checkpoint against a
// replayed trajectory of an identically seeded network.
func TestTrain_CheckpointIsLastColumn(t *testing.T) {
	t.Parallel()

	const T = 40
	opts := []Option{WithReservoirSize(10), WithInputs(2), WithOutputs(2), WithSeed(11), WithNoiseLevel(0.01)}
	u := randomInputs(t, 2, T, 1)
	y := randomInputs(t, 2, T, 2)

	n := mustNew(t, opts...)
	_, err := n.Train(u, y, WithDiscard(10))
	require.NoError(t, err)

	ref := mustNew(t, opts...)
	states, err := ref.collect(u, y)
	require.NoError(t, err)

	cp, ok := n.Checkpoint()
	require.True(t, ok)
	require.Equal(t, column(t, states, T-1), cp.State)
	require.Equal(t, column(t, u, T-1), cp.Input)
	require.Equal(t, column(t, y, T-1), cp.Output)

	// The returned checkpoint is a copy.
	cp.State[0] = 1e9
	again, _ := n.Checkpoint()
	require.NotEqual(t, 1e9, again.State[0])
}

// TestTrain_ReturnsFittedFromReadout checks fitted = Wo·[1; u; x] with the
// transient columns included.
func TestTrain_ReturnsFittedFromReadout(t *testing.T) {
	t.Parallel()

	const T = 30
	n := mustNew(t, WithReservoirSize(6), WithNoiseLevel(0), WithSeed(4))
	u := randomInputs(t, 1, T, 8)
	y := randomInputs(t, 1, T, 9)

	fitted, err := n.Train(u, y, WithDiscard(7))
	require.NoError(t, err)
	require.Equal(t, 1, fitted.Rows())
	require.Equal(t, T, fitted.Cols())

	ref := mustNew(t, WithReservoirSize(6), WithNoiseLevel(0), WithSeed(4))
	states, err := ref.collect(u, y)
	require.NoError(t, err)
	X, err := designMatrix(u, states)
	require.NoError(t, err)
	require.Equal(t, 1+1+6, X.Rows())

	wo, ok := n.Readout()
	require.True(t, ok)
	require.Equal(t, 8, wo.Cols())
	want, err := matrix.Mul(wo, X)
	require.NoError(t, err)
	ok, err = matrix.AllClose(fitted, want, 1e-12, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestPredict_ColdStartZero checks that an all-zero readout yields an
// all-zero forecast from a cold start, whatever the inputs.
func TestPredict_ColdStartZero(t *testing.T) {
	t.Parallel()

	n := mustNew(t, WithReservoirSize(7), WithInputs(3), WithOutputs(2), WithSeed(5))
	wo, err := matrix.NewZeros(2, 1+3+7)
	require.NoError(t, err)
	n.ro = &readout{wo: wo, cp: Checkpoint{
		State:  make([]float64, 7),
		Input:  make([]float64, 3),
		Output: make([]float64, 2),
	}}

	inputs := randomInputs(t, 3, 25, 42)
	out, err := n.Predict(inputs, false)
	require.NoError(t, err)
	zero, err := matrix.NewZeros(2, 25)
	require.NoError(t, err)
	require.Equal(t, zero, out)
}

// TestPredict_FeedbackUsesOwnPrediction checks that the feedback variant
// feeds back its previous forecast, seeded by the checkpoint output.
func TestPredict_FeedbackUsesOwnPrediction(t *testing.T) {
	t.Parallel()

	n := mustNew(t, WithReservoirSize(2), WithSparsity(0), WithNoiseLevel(0),
		WithActivationName(ActivationIdentity), WithSeed(1))
	zeroWeights(t, n)
	n.w.wf = filled(t, 2, 1, 1)
	// y = x[0]: columns are [bias, u, x0, x1].
	n.ro = &readout{
		wo: dense(t, [][]float64{{0, 0, 1, 0}}),
		cp: Checkpoint{State: []float64{0, 0}, Input: []float64{0}, Output: []float64{2}},
	}
	inputs := filled(t, 1, 3, 0)

	warm, err := n.Predict(inputs, true)
	require.NoError(t, err)
	require.Equal(t, dense(t, [][]float64{{2, 2, 2}}), warm)

	cold, err := n.Predict(inputs, false)
	require.NoError(t, err)
	require.Equal(t, dense(t, [][]float64{{0, 0, 0}}), cold)

	// The checkpoint is untouched by either call.
	cp, _ := n.Checkpoint()
	require.Equal(t, []float64{2}, cp.Output)

	// Without feedback the output stays at zero even when warm.
	n.arch = archInputOnly
	warm, err = n.Predict(inputs, true)
	require.NoError(t, err)
	require.Equal(t, dense(t, [][]float64{{0, 0, 0}}), warm)
}
