package esn_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Window(t *testing.T) {
	t.Parallel()

	pred, err := matrix.NewFromRows([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	target, err := matrix.NewFromRows([][]float64{{1, 2, 5}})
	require.NoError(t, err)

	tests := []struct {
		from        int
		rmse, nrmse float64
	}{
		{0, math.Sqrt(4.0 / 3.0), math.Sqrt(4.0 / 30.0)},
		{2, 2, 0.4},
	}
	for _, tc := range tests {
		rmse, err := esn.RMSE(pred, target, tc.from)
		require.NoError(t, err)
		assert.InDelta(t, tc.rmse, rmse, 1e-12, "from %d", tc.from)

		nrmse, err := esn.NRMSE(pred, target, tc.from)
		require.NoError(t, err)
		assert.InDelta(t, tc.nrmse, nrmse, 1e-12, "from %d", tc.from)
	}
}

func TestMetrics_Errors(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewZeros(1, 3)
	require.NoError(t, err)
	b, err := matrix.NewZeros(2, 3)
	require.NoError(t, err)

	_, err = esn.RMSE(a, b, 0)
	require.ErrorIs(t, err, esn.ErrShapeMismatch)
	_, err = esn.RMSE(a, a, 3)
	require.ErrorIs(t, err, esn.ErrBadDiscard)
	_, err = esn.RMSE(a, a, -1)
	require.ErrorIs(t, err, esn.ErrBadDiscard)
	_, err = esn.NRMSE(nil, a, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	// Zero target: RMSE is defined, NRMSE is not.
	rmse, err := esn.RMSE(a, a, 0)
	require.NoError(t, err)
	assert.Zero(t, rmse)
	_, err = esn.NRMSE(a, a, 0)
	require.ErrorIs(t, err, esn.ErrNumericInstability)
}
