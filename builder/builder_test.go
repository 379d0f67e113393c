package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparseblock/builder"
	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cells lists the stored coordinates of m, row-major.
func cells(t *testing.T, m *sparse.MCSR) [][2]int {
	t.Helper()
	var out [][2]int
	for i := 0; i < m.Rows(); i++ {
		idx, _ := m.Row(i)
		for _, j := range idx {
			out = append(out, [2]int{i, j})
		}
	}

	return out
}

func TestBuildMatrixComposition(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMatrix(4, 5, []builder.Option{builder.WithValueFn(builder.ConstantValueFn(2))},
		builder.Diagonal(),
		builder.Band(1, 0))
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 5, m.Cols())
	// Diagonal plus one sub-diagonal.
	require.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}, {3, 2}, {3, 3}}, cells(t, m))
	v, err := m.At(3, 2)
	require.NoError(t, err)
	require.Equal(t, 2.0, v)
}

func TestBand(t *testing.T) {
	t.Parallel()

	m, err := builder.BuildMatrix(5, 5, nil, builder.Band(1, 2))
	require.NoError(t, err)
	for _, c := range cells(t, m) {
		d := c[1] - c[0]
		assert.True(t, d >= -1 && d <= 2, "cell %v", c)
	}
	// 5 + 4 + 4 + 3 diagonals.
	require.Equal(t, 16, m.NonZeros())

	_, err = builder.BuildMatrix(3, 3, nil, builder.Band(-1, 0))
	require.ErrorIs(t, err, builder.ErrBadSize)
}

func TestRandomSparseDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *sparse.CSC {
		c, err := builder.BuildCSC(40, 30,
			[]builder.Option{builder.WithSeed(seed), builder.WithValueFn(builder.IntegerValueFn(-3, 3))},
			nil,
			builder.RandomSparse(0.1))
		require.NoError(t, err)
		require.NoError(t, c.Validate())

		return c
	}
	a, b := build(7), build(7)
	require.Equal(t, a.Pointers(), b.Pointers())
	require.Equal(t, a.Indexes(), b.Indexes())
	require.Equal(t, a.Values(), b.Values())
	require.Equal(t, 40, a.Rows())

	// Roughly p of the cells.
	assert.InDelta(t, 120, a.NonZeros(), 45)
	for _, v := range a.Values()[:a.NonZeros()] {
		assert.True(t, v == math.Trunc(v) && v != 0 && math.Abs(v) <= 3)
	}

	c := build(8)
	assert.NotEqual(t, a.Indexes(), c.Indexes())
}

func TestRandomSparseEdges(t *testing.T) {
	t.Parallel()

	full, err := builder.BuildMatrix(3, 4, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	require.Equal(t, 12, full.NonZeros())

	empty, err := builder.BuildMatrix(3, 4, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	require.Equal(t, 0, empty.NonZeros())

	tests := []struct {
		name string
		p    float64
		opts []builder.Option
		want error
	}{
		{"negative p", -0.1, []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"p above one", 1.5, []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"NaN p", math.NaN(), []builder.Option{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"no rng", 0.5, nil, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMatrix(3, 3, tc.opts, builder.RandomSparse(tc.p))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildMatrixErrors(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildMatrix(-1, 3, nil)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.BuildMatrix(2, 2, nil, builder.Diagonal(), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// A zero value leaves the cell empty.
	m, err := builder.BuildMatrix(3, 3, []builder.Option{builder.WithValueFn(func(*rand.Rand) float64 { return 0 })}, builder.Diagonal())
	require.NoError(t, err)
	require.Equal(t, 0, m.NonZeros())
}

func TestValueFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	require.Equal(t, builder.DefaultValue, builder.DefaultValueFn(rng))
	require.Equal(t, 2.5, builder.ConstantValueFn(2.5)(nil))

	u := builder.UniformValueFn(-1, 1)
	require.Equal(t, builder.DefaultValue, u(nil))
	require.Equal(t, 4.0, builder.UniformValueFn(4, 4)(rng))
	seen := map[float64]bool{}
	in := builder.IntegerValueFn(-2, 2)
	for i := 0; i < 500; i++ {
		x := u(rng)
		require.True(t, x >= -1 && x < 1)
		seen[in(rng)] = true
	}
	require.Equal(t, map[float64]bool{-2: true, -1: true, 1: true, 2: true}, seen)

	onlyPos := builder.IntegerValueFn(0, 3)
	for i := 0; i < 100; i++ {
		require.NotZero(t, onlyPos(rng))
	}

	panics := []func(){
		func() { builder.ConstantValueFn(0) },
		func() { builder.ConstantValueFn(math.Inf(1)) },
		func() { builder.UniformValueFn(2, 1) },
		func() { builder.UniformValueFn(math.NaN(), 1) },
		func() { builder.IntegerValueFn(0, 0) },
		func() { builder.IntegerValueFn(3, 1) },
		func() { builder.WithRand(nil) },
		func() { builder.WithValueFn(nil) },
	}
	for i, fn := range panics {
		require.Panics(t, fn, "case %d", i)
	}
}
