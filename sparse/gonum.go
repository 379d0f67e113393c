// SPDX-License-Identifier: MIT

package sparse

import "gonum.org/v1/gonum/mat"

// gonumView adapts a CSC to gonum's read-only mat.Matrix.
type gonumView struct {
	c          *CSC
	rows, cols int
}

var _ mat.Matrix = gonumView{}

// Gonum returns a read-only mat.Matrix view backed by c. The row count is
// captured when the view is created. Mutating c while the view is in use is
// allowed but the view does not see new rows on an untracked block.
func (c *CSC) Gonum() mat.Matrix {
	return gonumView{c: c, rows: c.Rows(), cols: c.NumCols()}
}

// Dims implements mat.Matrix.
func (g gonumView) Dims() (r, c int) { return g.rows, g.cols }

// At implements mat.Matrix; it panics on out-of-range indices like gonum's
// own types.
func (g gonumView) At(i, j int) float64 {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		panic(mat.ErrIndexOutOfRange)
	}

	return g.c.Get(i, j)
}

// T implements mat.Matrix.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }
