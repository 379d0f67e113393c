package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparseblock/matrix"
	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/stretchr/testify/require"
)

// TestRoundTripRowMajor: row-major → CSC → dense equals the source.
func TestRoundTripRowMajor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 25; trial++ {
		rows, cols := rng.Intn(30)+1, rng.Intn(30)+1
		ref := randomDense(t, rng, rows, cols, rng.Float64()*0.4)
		if ref.NonZeros() == 0 {
			continue
		}

		mcsr := mustMCSR(t, ref)
		c, err := sparse.NewCSCFrom(mcsr, sparse.WithCols(cols))
		require.NoError(t, err)
		require.Equal(t, rows, c.Rows())
		require.NoError(t, c.Validate())
		requireSameDense(t, ref, c)

		csr, err := sparse.NewCSRFromDense(ref)
		require.NoError(t, err)
		c2, err := sparse.NewCSCFrom(csr, sparse.WithCols(cols))
		require.NoError(t, err)
		require.Equal(t, c.Pointers(), c2.Pointers())
	}
}

// TestConversionCommutes: row-major → CSC → {CSR, MCSR, MCSC, CSC} → dense
// matches row-major → dense.
func TestConversionCommutes(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ref := randomDense(t, rng, 17, 11, 0.3)
	c, err := sparse.NewCSCFrom(mustMCSR(t, ref), sparse.WithCols(11))
	require.NoError(t, err)

	cp, err := sparse.NewCSCFrom(c)
	require.NoError(t, err)
	fromMCSC, err := sparse.NewCSCFrom(c.ToMCSC())
	require.NoError(t, err)

	views := map[string]sparse.Block{
		"csr":       c.RowView(),
		"mcsr":      c.ToMCSR(),
		"mcsc":      c.ToMCSC(),
		"csc copy":  cp,
		"from mcsc": fromMCSC,
	}
	for name, b := range views {
		t.Run(name, func(t *testing.T) {
			requireSameDense(t, ref, b)
			require.Equal(t, ref.NonZeros(), b.NonZeros())
		})
	}
}

func TestColumnInference(t *testing.T) {
	d, err := matrix.NewDenseFromData(3, 5, []float64{
		0, 1, 0, 0, 0,
		0, 0, 2, 0, 0,
		3, 0, 0, 0, 0,
	})
	require.NoError(t, err)
	mcsr := mustMCSR(t, d)

	// Row-major: max column index + 1, trailing empty columns are not seen.
	c, err := sparse.NewCSCFrom(mcsr)
	require.NoError(t, err)
	require.Equal(t, 3, c.NumCols())
	require.Equal(t, 3, c.Rows())

	// Explicit count wins.
	c, err = sparse.NewCSCFrom(mcsr, sparse.WithCols(5))
	require.NoError(t, err)
	require.Equal(t, 5, c.NumCols())
	require.Equal(t, []int{0, 1, 2, 3, 3, 3}, c.Pointers())

	// Too small an explicit count is rejected.
	_, err = sparse.NewCSCFrom(mcsr, sparse.WithCols(2))
	require.ErrorIs(t, err, sparse.ErrDimension)

	// Column-major sources report their own count.
	mcsc, err := sparse.NewMCSC(3, 5)
	require.NoError(t, err)
	c, err = sparse.NewCSCFrom(mcsc)
	require.NoError(t, err)
	require.Equal(t, 5, c.NumCols())

	// An empty row-major source cannot be inferred.
	empty, err := sparse.NewMCSR(4, 4)
	require.NoError(t, err)
	_, err = sparse.NewCSCFrom(empty)
	require.ErrorIs(t, err, sparse.ErrDimension)

	c, err = sparse.NewCSCFrom(empty, sparse.WithCols(4))
	require.NoError(t, err)
	require.Equal(t, 0, c.NonZeros())
}

func TestRowCountAdoption(t *testing.T) {
	d, err := matrix.NewDenseFromData(4, 2, []float64{1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	mcsr := mustMCSR(t, d)

	// The source's row count is kept even with empty trailing rows.
	c, err := sparse.NewCSCFrom(mcsr, sparse.WithCols(2))
	require.NoError(t, err)
	require.Equal(t, 4, c.Rows())
	require.True(t, c.RowsTracked())

	_, err = sparse.NewCSCFrom(c, sparse.WithRows(0))
	require.ErrorIs(t, err, sparse.ErrDimension)

	raw, err := sparse.NewCSCFromRaw([]int{0, 1}, []int{2}, []float64{1}, 1)
	require.NoError(t, err)
	cp, err := sparse.NewCSCFrom(raw)
	require.NoError(t, err)
	require.False(t, cp.RowsTracked())
	require.Equal(t, 3, cp.Rows())
}

func TestConvertFromCSCWidens(t *testing.T) {
	c := scenarioA(t)
	wide, err := sparse.NewCSCFrom(c, sparse.WithCols(5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 4, 4, 4}, wide.Pointers())
	require.Equal(t, 4, wide.Capacity())

	// Independent buffers.
	require.NoError(t, wide.Set(0, 0, 1))
	require.Equal(t, 0.0, c.Get(0, 0))
}

func TestConvertFromUnsortedMCSC(t *testing.T) {
	m, err := sparse.NewMCSC(10, 2)
	require.NoError(t, err)
	for _, r := range []int{7, 2, 9, 0} {
		require.NoError(t, m.Push(r, 0, float64(r+1)))
	}
	require.NoError(t, m.Push(4, 1, 1))
	require.False(t, m.ColumnVector(0).IsSorted())

	c, err := sparse.NewCSCFrom(m)
	require.NoError(t, err)
	idx, vals := c.Column(0)
	require.Equal(t, []int{0, 2, 7, 9}, idx)
	require.Equal(t, []float64{1, 3, 8, 10}, vals)
	require.Equal(t, 10, c.Rows())
	require.NoError(t, c.Validate())
}

func TestNewCSCFromNil(t *testing.T) {
	_, err := sparse.NewCSCFrom(nil)
	require.ErrorIs(t, err, sparse.ErrNilBlock)

	_, err = sparse.ToDense(nil)
	require.ErrorIs(t, err, sparse.ErrNilBlock)
}

func TestNewCSCFromCapacityOverflow(t *testing.T) {
	c := scenarioA(t)
	restore := sparse.SetMaxNonZerosForTest(2)
	defer restore()

	_, err := sparse.NewCSCFrom(c)
	require.ErrorIs(t, err, sparse.ErrCapacityOverflow)
}

func TestNewCSCFromTriples(t *testing.T) {
	c, err := sparse.NewCSCFromTriples(4,
		[]int{1, 0, 2, 3},
		[]int{0, 2, 2, 3},
		[]float64{1, 2, 3, 4},
		sparse.WithRows(5))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 1, 3, 4}, c.Pointers())
	require.Equal(t, 5, c.Rows())
	require.NoError(t, c.Validate())

	tests := []struct {
		name    string
		r, c    []int
		v       []float64
		wantErr error
	}{
		{"length mismatch", []int{0}, []int{0, 1}, []float64{1}, sparse.ErrDimension},
		{"column out of range", []int{0}, []int{4}, []float64{1}, sparse.ErrDimension},
		{"columns decrease", []int{0, 0}, []int{2, 1}, []float64{1, 1}, sparse.ErrStructure},
		{"rows not increasing", []int{1, 1}, []int{0, 0}, []float64{1, 1}, sparse.ErrStructure},
		{"explicit zero", []int{0}, []int{0}, []float64{0}, sparse.ErrStructure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewCSCFromTriples(4, tc.r, tc.c, tc.v)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewCSCFromColumns(t *testing.T) {
	a := sparse.NewVector(2)
	a.Append(3, 1)
	a.Append(1, 2) // falls back to sorted insert
	b := sparse.NewVector(2)
	b.Push(5, 7)
	b.Push(0, 8)

	c, err := sparse.NewCSCFromColumns([]*sparse.Vector{a, nil, b})
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 2, 4}, c.Pointers())
	require.Equal(t, []int{1, 3, 0, 5}, c.Indexes()[:4])
	require.Equal(t, 6, c.Rows())
	require.NoError(t, c.Validate())

	_, err = sparse.NewCSCFromColumns([]*sparse.Vector{b}, sparse.WithRows(3))
	require.ErrorIs(t, err, sparse.ErrDimension)
}

// TestRowViewSorted: each derived row slice is column-sorted and rebuilt per call.
func TestRowViewSorted(t *testing.T) {
	c := scenarioA(t)
	v1 := c.RowView()
	require.Equal(t, []int{0, 1, 2, 4}, v1.Pointers())
	idx, vals := v1.Row(2)
	require.Equal(t, []int{0, 2}, idx)
	require.Equal(t, []float64{5, 9}, vals)

	require.NoError(t, c.Set(2, 1, 4))
	v2 := c.RowView()
	idx, _ = v2.Row(2)
	require.Equal(t, []int{0, 1, 2}, idx)
	idx, _ = v1.Row(2)
	require.Equal(t, []int{0, 2}, idx) // old view unaffected
}

func TestNewCSRValidation(t *testing.T) {
	_, err := sparse.NewCSR(2, 2, []int{0, 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, sparse.ErrDimension)
	_, err = sparse.NewCSR(2, 2, []int{0, 2, 1}, []int{0}, []float64{1})
	require.ErrorIs(t, err, sparse.ErrDimension)

	m, err := sparse.NewCSR(2, 3, []int{0, 1, 2}, []int{2, 0}, []float64{4, 5})
	require.NoError(t, err)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}
