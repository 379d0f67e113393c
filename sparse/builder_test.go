package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparseblock/matrix"
	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/stretchr/testify/require"
)

func TestTripleBuilder(t *testing.T) {
	b, err := sparse.NewTripleBuilder(3, 3)
	require.NoError(t, err)

	// Any insertion order; duplicates accumulate.
	require.NoError(t, b.Set(2, 2, 9))
	require.NoError(t, b.Add(1, 1, 3))
	require.NoError(t, b.Set(0, 1, 3))
	require.NoError(t, b.Add(1, 1, 4))
	require.NoError(t, b.Set(2, 0, 5))
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(0, 0, 0)) // removed
	require.NoError(t, b.Add(1, 2, 2))
	require.NoError(t, b.Add(1, 2, -2)) // cancels
	require.Equal(t, 4, b.Len())

	c, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 4}, c.Pointers())
	require.Equal(t, []int{2, 0, 1, 2}, c.Indexes()[:4])
	require.Equal(t, []float64{5, 3, 7, 9}, c.Values()[:4])

	require.ErrorIs(t, b.Set(3, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Add(0, -1, 1), sparse.ErrOutOfRange)
	_, err = sparse.NewTripleBuilder(-1, 2)
	require.ErrorIs(t, err, sparse.ErrDimension)
}

func TestTripleBuilderMatchesDense(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ref := randomDense(t, rng, 12, 9, 0.3)
	b, err := sparse.NewTripleBuilder(12, 9)
	require.NoError(t, err)

	// Insert in a shuffled order.
	perm := rng.Perm(12 * 9)
	for _, k := range perm {
		v, _ := ref.At(k/9, k%9)
		require.NoError(t, b.Set(k/9, k%9, v))
	}
	c, err := b.Build(sparse.WithInitialCapacity(256))
	require.NoError(t, err)
	require.Equal(t, 256, c.Capacity())
	requireSameDense(t, ref, c)

	ok, err := matrix.Equal(ref, c)
	require.NoError(t, err)
	require.True(t, ok)
}
