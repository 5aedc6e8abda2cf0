package esn_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/reservoir/esn"
	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// records decodes one JSON log record per line.
func records(t *testing.T, buf *bytes.Buffer) map[string]map[string]any {
	t.Helper()
	out := make(map[string]map[string]any)
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec map[string]any
		require.NoError(t, dec.Decode(&rec))
		out[rec[slog.MessageKey].(string)] = rec
	}

	return out
}

func TestLogging_DebugSummaries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	in, out := sinePairs(t, 101)
	n, err := esn.New(esn.WithReservoirSize(20), esn.WithTeacherForcing(false), esn.WithLogger(logger))
	require.NoError(t, err)
	_, err = n.Train(in, out, esn.WithDiscard(10))
	require.NoError(t, err)
	_, err = n.Predict(in, true)
	require.NoError(t, err)

	recs := records(t, &buf)
	initRec, ok := recs["esn: reservoir initialized"]
	require.True(t, ok)
	assert.Equal(t, "input-only", initRec["architecture"])
	assert.InDelta(t, 0.95, initRec["spectral_radius"], 1e-12)

	train, ok := recs["esn: readout trained"]
	require.True(t, ok)
	assert.EqualValues(t, 100, train["steps"])
	assert.EqualValues(t, 10, train["discard"])
	assert.Contains(t, train, "nrmse")
	norm, ok := train["readout_norm"].(float64)
	require.True(t, ok)
	wo, _ := n.Readout()
	want, err := matrix.FrobeniusNorm(wo)
	require.NoError(t, err)
	assert.InEpsilon(t, want, norm, 1e-12)

	forecast, ok := recs["esn: forecast"]
	require.True(t, ok)
	assert.Equal(t, true, forecast["cont"])
}

func TestLogging_InfoSkipsSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	in, out := sinePairs(t, 31)
	n, err := esn.New(esn.WithReservoirSize(10), esn.WithLogger(logger))
	require.NoError(t, err)
	_, err = n.Train(in, out)
	require.NoError(t, err)
	assert.Zero(t, buf.Len())
}
