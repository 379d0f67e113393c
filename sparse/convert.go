// SPDX-License-Identifier: MIT

// Package sparse - Format Converter.
//
// Purpose:
//   - Build a CSC from any other layout (row-major, column-major, CSC).
//   - Materialize derived views (CSR, MCSR, MCSC, dense) on demand.
//
// AI-Hints:
//   - RowView is recomputed on every call and never cached; hoist it out of
//     loops.
//   - Pass WithCols when the source may have trailing empty columns:
//     inference only sees stored entries for row-major sources.

package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sparseblock/matrix"
)

// NewCSCFrom converts src into a new, independent CSC.
// MAIN DESCRIPTION:
//   - Dispatch on the closed set of layouts and apply the matching algorithm.
//
// Implementation:
//   - *CSC: direct buffer copy (trimmed to nnz).
//   - *MCSC: per-column concatenation; unsorted source columns are re-sorted
//     with SortColumn before returning.
//   - RowMajor (*CSR, *MCSR): three-pass counting sort. Pass 1 histograms
//     per-column counts, pass 2 prefix-sums them into ptr, pass 3 scatters
//     each entry through a per-column cursor. Rows are visited in increasing
//     order, so every column slice comes out row-sorted.
//
// Behavior highlights:
//   - Column count: WithCols(n) if given (must cover every stored column),
//     else CSC→NumCols, MCSC→Cols, row-major→max(columnIndex)+1.
//   - Row count: WithRows(n) if given (must cover every stored row), else the
//     source's row count; an untracked CSC source stays untracked.
//
// Errors:
//   - ErrNilBlock, ErrUnsupportedLayout.
//   - *DimensionError when inference sees no entries or an explicit count is
//     too small.
//   - *CapacityOverflowError when nnz exceeds MaxNonZeros.
//
// Complexity:
//   - Time O(rows + cols + nnz) (plus column sorts for unsorted MCSC input).
func NewCSCFrom(src Block, opts ...Option) (*CSC, error) {
	if src == nil {
		return nil, fmt.Errorf("NewCSCFrom: %w", ErrNilBlock)
	}
	o := gatherOptions(opts...)
	nnz := src.NonZeros()
	if nnz > maxNonZeros {
		return nil, &CapacityOverflowError{Requested: int64(nnz), Limit: int64(maxNonZeros)}
	}

	var (
		out *CSC
		err error
	)
	switch s := src.(type) {
	case *CSC:
		out, err = fromCSC(s, o)
	case *MCSC:
		out, err = fromMCSC(s, o)
	case RowMajor:
		out, err = fromRowMajor(s, o)
	default:
		return nil, fmt.Errorf("NewCSCFrom(%s): %w", src.Kind(), ErrUnsupportedLayout)
	}
	if err != nil {
		return nil, err
	}
	if err = out.adoptRows(src, o); err != nil {
		return nil, err
	}

	return out, nil
}

// adoptRows fixes the row count of a freshly converted block.
func (c *CSC) adoptRows(src Block, o Options) error {
	switch {
	case o.rows != unknown:
		if need := c.inferRows(); need > o.rows {
			return dimErr(o.rows, c.NumCols(), fmt.Sprintf("row %d stored beyond explicit row count", need-1))
		}
		c.rows = o.rows
	case src.Kind() == KindCSC && !src.(*CSC).RowsTracked():
		c.rows = unknown
	default:
		c.rows = src.Rows()
	}

	return nil
}

// resolveCols picks the result column count given the source's native count.
func resolveCols(o Options, native int) (int, error) {
	if o.cols == unknown {
		return native, nil
	}
	if o.cols < native {
		return 0, dimErr(o.rows, o.cols, fmt.Sprintf("source needs %d columns", native))
	}

	return o.cols, nil
}

// newConverted allocates a result block with exact-fit buffers, or the
// WithInitialCapacity reservation when that is larger.
func newConverted(cols, nnz int, o Options) *CSC {
	capacity := max(nnz, o.capacity)

	return &CSC{
		ptr:     make([]int, cols+1),
		indexes: make([]int, capacity),
		values:  make([]float64, capacity),
		size:    nnz,
		rows:    unknown,
		reserve: capacity,
		opt:     o,
	}
}

// fromCSC copies another CSC's buffers.
func fromCSC(s *CSC, o Options) (*CSC, error) {
	cols, err := resolveCols(o, s.NumCols())
	if err != nil {
		return nil, err
	}
	out := newConverted(cols, s.size, o)
	copy(out.ptr, s.ptr)
	for k := s.NumCols() + 1; k <= cols; k++ {
		out.ptr[k] = s.size // trailing empty columns
	}
	copy(out.indexes, s.indexes[:s.size])
	copy(out.values, s.values[:s.size])

	return out, nil
}

// fromMCSC concatenates column vectors.
func fromMCSC(s *MCSC, o Options) (*CSC, error) {
	cols, err := resolveCols(o, s.Cols())
	if err != nil {
		return nil, err
	}
	out := newConverted(cols, s.NonZeros(), o)
	pos := 0
	var unsorted []int
	for col := 0; col < s.Cols(); col++ {
		v := s.ColumnVector(col)
		if v != nil && !v.IsEmpty() {
			copy(out.indexes[pos:], v.Indexes())
			copy(out.values[pos:], v.Values())
			pos += v.Len()
			if !v.IsSorted() {
				unsorted = append(unsorted, col)
			}
		}
		out.ptr[col+1] = pos
	}
	for k := s.Cols() + 1; k <= cols; k++ {
		out.ptr[k] = pos
	}
	for _, col := range unsorted {
		out.SortColumn(col)
	}

	return out, nil
}

// fromRowMajor runs the three-pass counting sort.
func fromRowMajor(s RowMajor, o Options) (*CSC, error) {
	rows := s.Rows()

	native := -1
	for r := 0; r < rows; r++ {
		idx, _ := s.Row(r)
		for _, c := range idx {
			native = max(native, c)
		}
	}
	if o.cols == unknown && native < 0 {
		return nil, dimErr(rows, unknown, "cannot infer column count from a source without entries")
	}
	cols, err := resolveCols(o, native+1)
	if err != nil {
		return nil, err
	}

	// Pass 1: histogram per column.
	counts := make([]int, cols)
	for r := 0; r < rows; r++ {
		idx, _ := s.Row(r)
		for _, c := range idx {
			counts[c]++
		}
	}

	// Pass 2: prefix sum into ptr.
	nnz := 0
	for _, n := range counts {
		nnz += n
	}
	out := newConverted(cols, nnz, o)
	for c := 0; c < cols; c++ {
		out.ptr[c+1] = out.ptr[c] + counts[c]
	}

	// Pass 3: scatter through per-column cursors.
	cursor := slices.Clone(out.ptr[:cols])
	for r := 0; r < rows; r++ {
		idx, vals := s.Row(r)
		for k, c := range idx {
			out.indexes[cursor[c]] = r
			out.values[cursor[c]] = vals[k]
			cursor[c]++
		}
	}

	return out, nil
}

// NewCSCFromTriples builds a CSC from column-major sorted coordinate arrays
// (sorted by column, then row) with a single pass over colInd for the
// pointers.
//
// Errors: *DimensionError on length mismatch, negative cols or indexes out
// of range; *ValidationError when colInd decreases or rows are not strictly
// increasing inside a column, or a value is zero.
func NewCSCFromTriples(cols int, rowInd, colInd []int, values []float64, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	if cols < 0 {
		return nil, dimErr(o.rows, cols, "negative column count")
	}
	if len(rowInd) != len(values) || len(colInd) != len(values) {
		return nil, dimErr(len(rowInd), len(colInd), "coordinate arrays differ in length")
	}
	nnz := len(values)
	if nnz > maxNonZeros {
		return nil, &CapacityOverflowError{Requested: int64(nnz), Limit: int64(maxNonZeros)}
	}
	out := newConverted(cols, nnz, o)
	copy(out.indexes, rowInd)
	copy(out.values, values)

	last := 0
	for k := 0; k < nnz; k++ {
		c, r := colInd[k], rowInd[k]
		if c < 0 || c >= cols || r < 0 || (o.rows != unknown && r >= o.rows) {
			return nil, dimErr(r, c, fmt.Sprintf("entry %d out of range", k))
		}
		if c < last {
			return nil, violation(RuleMonotonic, k, last, c)
		}
		if k > 0 && colInd[k-1] == c && rowInd[k-1] >= r {
			return nil, violation(RuleSorted, k, rowInd[k-1], r)
		}
		if values[k] == 0 {
			return nil, violation(RuleExplicitZero, k, values[k])
		}
		for j := last + 1; j <= c; j++ {
			out.ptr[j] = k
		}
		last = c
	}
	for j := last + 1; j <= cols; j++ {
		out.ptr[j] = nnz
	}
	out.rows = o.rows

	return out, nil
}

// NewCSCFromColumns concatenates column vectors (nil means empty). Unsorted
// vectors are sorted in the result.
func NewCSCFromColumns(columns []*Vector, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	rows := 0
	if o.rows != unknown {
		rows = o.rows
	} else {
		for _, v := range columns {
			if v != nil {
				for _, r := range v.Indexes() {
					rows = max(rows, r+1)
				}
			}
		}
	}
	m := &MCSC{cols: columns, rows: rows}
	out, err := fromMCSC(m, o)
	if err != nil {
		return nil, err
	}
	if err = out.adoptRows(m, o); err != nil {
		return nil, err
	}

	return out, nil
}

// RowView materializes the transpose as a CSR.
// MAIN DESCRIPTION:
//   - Row access is not native to CSC; this builds it from scratch.
//
// Implementation:
//   - Stage 1: histogram entries per row.
//   - Stage 2: prefix-sum into a temporary row-pointer array.
//   - Stage 3: scatter through per-row cursors.
//   - Stage 4: key-sort every row slice by column (skipped when sorted).
//
// Notes:
//   - O(nnz) to O(nnz·log nnz) per call; the result is never cached, so it
//     cannot go stale after mutation.
func (c *CSC) RowView() *CSR {
	rows, cols := c.Rows(), c.NumCols()
	ptr := make([]int, rows+1)
	for _, r := range c.indexes[:c.size] {
		ptr[r+1]++
	}
	for r := 0; r < rows; r++ {
		ptr[r+1] += ptr[r]
	}
	idx := make([]int, c.size)
	vals := make([]float64, c.size)
	cursor := slices.Clone(ptr[:rows])
	for col := 0; col < cols; col++ {
		for k := c.ptr[col]; k < c.ptr[col+1]; k++ {
			r := c.indexes[k]
			idx[cursor[r]] = col
			vals[cursor[r]] = c.values[k]
			cursor[r]++
		}
	}
	for r := 0; r < rows; r++ {
		sortPairs(idx[ptr[r]:ptr[r+1]], vals[ptr[r]:ptr[r+1]])
	}

	return &CSR{rows: rows, cols: cols, ptr: ptr, indexes: idx, values: vals}
}

// ToMCSR materializes a row-vector copy.
func (c *CSC) ToMCSR() *MCSR {
	view := c.RowView()
	out := &MCSR{rows: make([]*Vector, view.rows), cols: view.cols}
	for r := 0; r < view.rows; r++ {
		idx, vals := view.Row(r)
		if len(idx) == 0 {
			continue
		}
		out.rows[r] = &Vector{idx: slices.Clone(idx), vals: slices.Clone(vals), sorted: true}
	}

	return out
}

// ToMCSC materializes a column-vector copy.
func (c *CSC) ToMCSC() *MCSC {
	out := &MCSC{cols: make([]*Vector, c.NumCols()), rows: c.Rows()}
	for col := range out.cols {
		idx, vals := c.Column(col)
		if len(idx) == 0 {
			continue
		}
		out.cols[col] = &Vector{idx: slices.Clone(idx), vals: slices.Clone(vals), sorted: slices.IsSorted(idx)}
	}

	return out
}

// ToDense materializes any block as a dense reference matrix.
// Complexity: O(rows*cols + nnz).
func ToDense(b Block) (*matrix.Dense, error) {
	if b == nil {
		return nil, fmt.Errorf("ToDense: %w", ErrNilBlock)
	}
	rows, cols := b.Rows(), b.Cols()
	d, err := matrix.NewDenseZeroOK(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("ToDense: %w", err)
	}
	switch s := b.(type) {
	case ColumnMajor:
		for c := 0; c < cols; c++ {
			idx, vals := s.Column(c)
			for k, r := range idx {
				if err = d.Set(r, c, vals[k]); err != nil {
					return nil, fmt.Errorf("ToDense: %w", err)
				}
			}
		}
	case RowMajor:
		for r := 0; r < rows; r++ {
			idx, vals := s.Row(r)
			for k, c := range idx {
				if err = d.Set(r, c, vals[k]); err != nil {
					return nil, fmt.Errorf("ToDense: %w", err)
				}
			}
		}
	default:
		return nil, fmt.Errorf("ToDense(%s): %w", b.Kind(), ErrUnsupportedLayout)
	}

	return d, nil
}

// NewMCSRFromDense copies the non-zeros of m into a new MCSR.
func NewMCSRFromDense(m matrix.Matrix) (*MCSR, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewMCSRFromDense: %w", ErrNilBlock)
	}
	out, err := NewMCSR(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("NewMCSRFromDense: %w", err)
			}
			if v != 0 {
				out.row(i).Append(j, v)
			}
		}
	}

	return out, nil
}
