package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparseblock/sparse"
	"github.com/stretchr/testify/require"
)

func TestCheckValidityRules(t *testing.T) {
	type raw struct {
		ptr  []int
		idx  []int
		vals []float64
		nnz  int
	}
	tests := []struct {
		name       string
		in         raw
		rlen, clen int
		nnz        int
		strict     bool
		rule       sparse.Rule
		index      int
		values     []float64
	}{
		{
			name: "pointer length", in: raw{[]int{0, 1}, []int{0}, []float64{1}, 1},
			rlen: 1, clen: 2, nnz: 1, strict: true,
			rule: sparse.RulePointerLen, index: 2, values: []float64{2, 3},
		},
		{
			name: "buffer shorter than declared nnz", in: raw{[]int{0, 1}, []int{0}, []float64{1}, 1},
			rlen: 1, clen: 1, nnz: 2, strict: true,
			rule: sparse.RuleBufferLen, index: 2, values: []float64{1, 1},
		},
		{
			name: "declared nnz disagrees", in: raw{[]int{0, 1}, []int{0, 0, 0, 0}, []float64{1, 0, 0, 0}, 1},
			rlen: 1, clen: 1, nnz: 2, strict: true,
			rule: sparse.RuleNonZeroCount, index: 1, values: []float64{1, 1, 2},
		},
		{
			name: "pointer decreases", in: raw{[]int{0, 2, 1, 3}, []int{0, 1, 2}, []float64{1, 1, 1}, 3},
			rlen: 3, clen: 3, nnz: 3, strict: true,
			rule: sparse.RuleMonotonic, index: 1, values: []float64{2, 1},
		},
		{
			name: "pointer beyond nnz", in: raw{[]int{0, 5, 3}, []int{0, 1, 2}, []float64{1, 1, 1}, 3},
			rlen: 3, clen: 2, nnz: 3, strict: true,
			rule: sparse.RulePointerRange, index: 1, values: []float64{5, 3},
		},
		{
			name: "pointer beyond nnz in non-strict mode", in: raw{[]int{0, 5, 3}, []int{0, 1, 2}, []float64{1, 1, 1}, 3},
			rlen: 3, clen: 2, nnz: 3, strict: false,
			rule: sparse.RulePointerRange, index: 1, values: []float64{5, 3},
		},
		{
			name: "negative pointer", in: raw{[]int{0, -1, 3}, []int{0, 1, 2}, []float64{1, 1, 1}, 3},
			rlen: 3, clen: 2, nnz: 3, strict: false,
			rule: sparse.RulePointerRange, index: 1, values: []float64{-1, 3},
		},
		{
			name: "duplicate row", in: raw{[]int{0, 2}, []int{1, 1}, []float64{1, 2}, 2},
			rlen: 2, clen: 1, nnz: 2, strict: false,
			rule: sparse.RuleSorted, index: 1, values: []float64{1, 1},
		},
		{
			name: "unsorted rows", in: raw{[]int{0, 0, 2}, []int{3, 0}, []float64{1, 2}, 2},
			rlen: 4, clen: 2, nnz: 2, strict: true,
			rule: sparse.RuleSorted, index: 1, values: []float64{3, 0},
		},
		{
			name: "row beyond declared rows", in: raw{[]int{0, 1}, []int{5}, []float64{1}, 1},
			rlen: 3, clen: 1, nnz: 1, strict: true,
			rule: sparse.RuleRowBound, index: 0, values: []float64{5, 3},
		},
		{
			name: "explicit zero", in: raw{[]int{0, 2}, []int{0, 1}, []float64{1, 0}, 2},
			rlen: 2, clen: 1, nnz: 2, strict: true,
			rule: sparse.RuleExplicitZero, index: 1, values: []float64{0},
		},
		{
			name: "over-allocated buffers", in: raw{[]int{0, 1}, make([]int, 64), append([]float64{1}, make([]float64, 63)...), 1},
			rlen: 1, clen: 1, nnz: 1, strict: true,
			rule: sparse.RuleCapacity, index: 1, values: []float64{64, 4},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := sparse.NewCSCFromRaw(tc.in.ptr, tc.in.idx, tc.in.vals, tc.in.nnz)
			require.NoError(t, err)

			err = c.CheckValidity(tc.rlen, tc.clen, tc.nnz, tc.strict)
			require.ErrorIs(t, err, sparse.ErrStructure)
			var ve *sparse.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tc.rule, ve.Rule)
			require.Equal(t, tc.index, ve.Index)
			require.Equal(t, tc.values, ve.Values)
		})
	}
}

func TestCheckValidityNonStrictToleratesPointerDip(t *testing.T) {
	c, err := sparse.NewCSCFromRaw([]int{0, 2, 1, 3}, []int{0, 1, 2}, []float64{1, 1, 1}, 3)
	require.NoError(t, err)

	require.NoError(t, c.CheckValidity(3, 3, 3, false))
	require.ErrorIs(t, c.CheckValidity(3, 3, 3, true), sparse.ErrStructure)
}

func TestCheckValidityNegativeDimensions(t *testing.T) {
	c := scenarioA(t)
	require.ErrorIs(t, c.CheckValidity(-1, 3, 4, true), sparse.ErrDimension)
	require.NoError(t, c.CheckValidity(3, 3, 4, true))
	require.NoError(t, c.CheckValidity(100, 3, 4, true))
}
