// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sparseblock/matrix"
)

// CSR is a read-only compressed-sparse-row block: the row-major mirror of
// CSC. It is produced by (*CSC).RowView and NewCSRFromDense and consumed by
// the converter.
type CSR struct {
	rows, cols int
	ptr        []int     // len rows+1
	indexes    []int     // column indexes, len nnz
	values     []float64 // len nnz
}

// NewCSR takes ownership of row-major compressed buffers after checking
// that their lengths agree with the shape.
//
// Errors: *DimensionError on negative shapes or mismatched buffer lengths.
func NewCSR(rows, cols int, ptr, indexes []int, values []float64) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, dimErr(rows, cols, "negative shape")
	}
	if len(ptr) != rows+1 {
		return nil, dimErr(rows, cols, fmt.Sprintf("pointer length %d, want %d", len(ptr), rows+1))
	}
	if len(indexes) != len(values) || ptr[rows] != len(values) || ptr[0] != 0 {
		return nil, dimErr(rows, cols, "buffer lengths disagree with pointer array")
	}
	for r := 0; r < rows; r++ {
		if ptr[r] > ptr[r+1] {
			return nil, dimErr(rows, cols, fmt.Sprintf("pointer decreases at row %d", r))
		}
	}

	return &CSR{rows: rows, cols: cols, ptr: ptr, indexes: indexes, values: values}, nil
}

// NewCSRFromDense compresses a dense matrix row by row.
// Complexity: O(r*c).
func NewCSRFromDense(m matrix.Matrix) (*CSR, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewCSRFromDense: %w", ErrNilBlock)
	}
	rows, cols := m.Rows(), m.Cols()
	out := &CSR{rows: rows, cols: cols, ptr: make([]int, rows+1)}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("NewCSRFromDense: %w", err)
			}
			if v != 0 {
				out.indexes = append(out.indexes, j)
				out.values = append(out.values, v)
			}
		}
		out.ptr[i+1] = len(out.values)
	}

	return out, nil
}

func (m *CSR) sealed()       {}
func (m *CSR) Kind() Kind    { return KindCSR }
func (m *CSR) Rows() int     { return m.rows }
func (m *CSR) Cols() int     { return m.cols }
func (m *CSR) NonZeros() int { return m.ptr[m.rows] }

// RowSize returns the number of entries in row r (0 when out of range).
func (m *CSR) RowSize(r int) int {
	if r < 0 || r >= m.rows {
		return 0
	}

	return m.ptr[r+1] - m.ptr[r]
}

// Row returns the live column indexes and values of row r.
func (m *CSR) Row(r int) ([]int, []float64) {
	if r < 0 || r >= m.rows {
		return nil, nil
	}

	return m.indexes[m.ptr[r]:m.ptr[r+1]], m.values[m.ptr[r]:m.ptr[r+1]]
}

// At returns the value at (r, c). Column indexes inside a row are sorted.
func (m *CSR) At(r, c int) (float64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, blockErrorf(KindCSR, "At", r, c, ErrOutOfRange)
	}
	idx, vals := m.Row(r)
	if k, ok := slices.BinarySearch(idx, c); ok {
		return vals[k], nil
	}

	return 0, nil
}

// Pointers returns the live row-pointer buffer.
func (m *CSR) Pointers() []int { return m.ptr }
