// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Both Dense and the sparse block layouts implement it, so generic helpers
// (AllClose, validators) accept either.

package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// Complexity notes: Rows/Cols are O(1); At/Set are O(1) for Dense and
// O(log nnz_col) for column-compressed sparse blocks; Clone is a deep copy.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange (or a wrapping error) on invalid indices.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange (or a wrapping error) on invalid indices.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
