// SPDX-License-Identifier: MIT

// Package sparse: the closed set of sparse layouts and their capability
// interfaces.

package sparse

import "fmt"

// Kind tags a sparse layout variant.
type Kind uint8

const (
	KindCSR  Kind = iota + 1 // compressed row, read-only
	KindMCSR                 // per-row vectors, mutable
	KindMCSC                 // per-column vectors, mutable
	KindCSC                  // compressed column
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCSR:
		return "CSR"
	case KindMCSR:
		return "MCSR"
	case KindMCSC:
		return "MCSC"
	case KindCSC:
		return "CSC"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Block is the shared surface of every sparse layout. The set of
// implementations is closed (CSR, MCSR, MCSC, CSC).
type Block interface {
	Kind() Kind
	Rows() int
	Cols() int
	NonZeros() int
	At(r, c int) (float64, error)

	sealed()
}

// RowMajor exposes row-oriented access. Row returns live slices that the
// caller must not modify.
type RowMajor interface {
	Block
	RowSize(r int) int
	Row(r int) (indexes []int, values []float64)
}

// ColumnMajor exposes column-oriented access. Column returns live slices
// that the caller must not modify.
type ColumnMajor interface {
	Block
	ColumnSize(c int) int
	Column(c int) (indexes []int, values []float64)
}

var (
	_ RowMajor    = (*CSR)(nil)
	_ RowMajor    = (*MCSR)(nil)
	_ ColumnMajor = (*MCSC)(nil)
	_ ColumnMajor = (*CSC)(nil)
)

// blockErrorf tags an error with the layout and method that produced it.
func blockErrorf(k Kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", k, method, row, col, err)
}
