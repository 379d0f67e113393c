package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumView(t *testing.T) {
	c := scenarioA(t)
	g := c.Gonum()

	r, cols := g.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, cols)

	want := mat.NewDense(3, 3, []float64{
		0, 3, 0,
		0, 7, 0,
		5, 0, 9,
	})
	require.True(t, mat.Equal(want, g))
	require.True(t, mat.Equal(want.T(), g.T()))

	var prod mat.Dense
	prod.Mul(g.T(), g)
	require.Equal(t, 81.0, prod.At(2, 2))
	require.Equal(t, 25.0, prod.At(0, 0))
	require.Equal(t, 58.0, prod.At(1, 1))

	require.Panics(t, func() { g.At(3, 0) })
}
