package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparseblock/matrix"
	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/stretchr/testify/require"
)

// randomDense fills a rows×cols dense matrix with small integers at density p.
// Integers keep Add sequences exact.
func randomDense(t testing.TB, rng *rand.Rand, rows, cols int, p float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseZeroOK(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < p {
				require.NoError(t, d.Set(i, j, float64(rng.Intn(9)+1)*sign(rng)))
			}
		}
	}

	return d
}

func sign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}

	return 1
}

// mustMCSR converts a dense matrix to MCSR.
func mustMCSR(t testing.TB, d *matrix.Dense) *sparse.MCSR {
	t.Helper()
	m, err := sparse.NewMCSRFromDense(d)
	require.NoError(t, err)

	return m
}

// requireSameDense asserts exact equality between a block and a dense reference.
func requireSameDense(t testing.TB, want *matrix.Dense, got sparse.Block) {
	t.Helper()
	d, err := sparse.ToDense(got)
	require.NoError(t, err)
	ok, err := matrix.Equal(want, d)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%s\ngot:\n%s", want, d)
}

// scenarioA builds the four-entry block used by several tests.
func scenarioA(t testing.TB) *sparse.CSC {
	t.Helper()
	c, err := sparse.NewCSC(3, 4)
	require.NoError(t, err)
	require.NoError(t, c.Append(2, 0, 5.0))
	require.NoError(t, c.Append(0, 1, 3.0))
	require.NoError(t, c.Append(1, 1, 7.0))
	require.NoError(t, c.Append(2, 2, 9.0))

	return c
}
