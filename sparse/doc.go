// SPDX-License-Identifier: MIT

// Package sparse implements the compressed-sparse-column (CSC) matrix block
// together with the sibling sparse layouts it converts from and to.
//
// What & Why:
//
//   - CSC stores three parallel buffers: a column-pointer array of length
//     cols+1, a row-index array and a value array. Column c owns the slice
//     [ptr[c], ptr[c+1]) of the index/value buffers; inside a slice row
//     indices are strictly increasing and no stored value is zero.
//   - CSR, MCSR and MCSC form a closed set of variants next to CSC. All of
//     them satisfy Block; row-oriented access is exposed through RowMajor and
//     column-oriented access through ColumnMajor. Conversions are explicit
//     functions (NewCSCFrom, ToDense, (*CSC).RowView, ...), not virtual
//     dispatch.
//
// Components:
//
//   - Store: NewCSC, NewCSCFromRaw, accessors and raw-buffer export.
//   - Converter: NewCSCFrom, NewCSCFromTriples, NewCSCFromColumns, RowView,
//     ToMCSR, ToMCSC, ToDense.
//   - Mutation: Set, Add, Append, DeleteColumn, DeleteRange, SetColumn,
//     Sort, SortColumn, Compact, Reset.
//   - Query: Get, Size, ColumnRangeSize, PosFIndex*, NonEmptyRows,
//     NonEmptyColumns.
//   - Audit: CheckValidity.
//   - Bulk input: ReadUltraSparse, ReadSparse, TripleBuilder.
//   - Planning: EstimateSizeInMemory.
//
// Invariants kept after every public mutation:
//
//	monotonic  ptr is non-decreasing, ptr[0] == 0, ptr[cols] == nnz
//	sorted     row indices strictly increase inside each column slice
//	no zeros   no stored value equals zero
//	capacity   nnz <= capacity, bounded by the growth factor times nnz
//	row bound  a tracked row count exceeds every stored row index
//
// Concurrency:
//
// A CSC is single-writer. Concurrent readers are safe only while no
// mutation is in flight; the package takes no locks.
//
// Errors:
//
// Construction and mutation faults are returned immediately. Sentinels
// (ErrDimension, ErrOutOfRange, ErrCapacityOverflow, ErrStructure,
// ErrIOFormat) are matched with errors.Is; the typed errors DimensionError,
// CapacityOverflowError, ValidationError and FormatError carry the details.
package sparse
