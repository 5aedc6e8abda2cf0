package esn

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/reservoir/matrix"
	"github.com/stretchr/testify/require"
)

// fixedSource returns the same Float64 forever and 0 from Intn.
type fixedSource struct {
	f     float64
	calls int
}

func (s *fixedSource) Float64() float64 { s.calls++; return s.f }
func (s *fixedSource) Intn(int) int     { return 0 }

// countingSource wraps a seeded rand and counts Float64 draws.
type countingSource struct {
	r      *rand.Rand
	floats int
}

func newCountingSource(seed int64) *countingSource {
	return &countingSource{r: rand.New(rand.NewSource(seed))}
}

func (s *countingSource) Float64() float64 { s.floats++; return s.r.Float64() }
func (s *countingSource) Intn(n int) int   { return s.r.Intn(n) }

// mustNew builds a network or fails the test.
func mustNew(t *testing.T, opts ...Option) *Network {
	t.Helper()
	n, err := New(opts...)
	require.NoError(t, err)

	return n
}

// dense builds a matrix from rows or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// filled returns an r×c matrix with every entry v.
func filled(t *testing.T, r, c int, v float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFilled(r, c, v)
	require.NoError(t, err)

	return m
}

// column reads column j of m.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	c, err := m.Col(j)
	require.NoError(t, err)

	return c
}

// randomInputs returns an r×c matrix of U(-1,1) values.
func randomInputs(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for k := range data {
		data[k] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}
