// SPDX-License-Identifier: MIT

// Package sparse - range counts and positional helpers.

package sparse

import (
	"fmt"
	"slices"
)

// Size counts stored entries with row in [rl, ru) and column in [cl, cu).
//
// For each column in range it binary-searches the first index >= rl and the
// first index >= ru inside the column slice; empty columns and empty ranges
// contribute zero.
//
// Errors: *DimensionError when a bound is negative, inverted, or cu exceeds
// the column count.
// Complexity: O((cu-cl) · log columnSize).
func (c *CSC) Size(rl, ru, cl, cu int) (int, error) {
	if rl < 0 || rl > ru {
		return 0, rangeError("row", rl, ru, c.Rows())
	}
	if cl < 0 || cl > cu || cu > c.NumCols() {
		return 0, rangeError("column", cl, cu, c.NumCols())
	}
	n := 0
	for col := cl; col < cu; col++ {
		if c.ptr[col] == c.ptr[col+1] {
			continue
		}
		lo, _ := c.find(rl, col)
		hi, _ := c.find(ru, col)
		n += hi - lo
	}

	return n, nil
}

// ColumnRangeSize counts entries in columns [cl, cu) straight from ptr.
// Errors: *DimensionError on an invalid range.
func (c *CSC) ColumnRangeSize(cl, cu int) (int, error) {
	if cl < 0 || cl > cu || cu > c.NumCols() {
		return 0, rangeError("column", cl, cu, c.NumCols())
	}

	return c.ptr[cu] - c.ptr[cl], nil
}

// RowSize counts entries in row r with one binary search per column.
// Complexity: O(cols · log columnSize).
func (c *CSC) RowSize(r int) int {
	if r < 0 {
		return 0
	}
	n := 0
	for col := 0; col < c.NumCols(); col++ {
		if _, ok := c.find(r, col); ok {
			n++
		}
	}

	return n
}

// IsEmptyRow reports RowSize(r) == 0.
func (c *CSC) IsEmptyRow(r int) bool { return c.RowSize(r) == 0 }

// The PosFIndex helpers return a position relative to ColumnPos(col), or -1
// when no entry qualifies or col is out of range.

// PosFIndexLTE returns the position of the last entry of column col with
// row <= r.
func (c *CSC) PosFIndexLTE(r, col int) int {
	idx, ok := c.columnIndexes(col)
	if !ok {
		return -1
	}
	k, found := slices.BinarySearch(idx, r)
	if found {
		return k
	}

	return k - 1 // -1 when every row exceeds r
}

// PosFIndexGTE returns the position of the first entry of column col with
// row >= r.
func (c *CSC) PosFIndexGTE(r, col int) int {
	idx, ok := c.columnIndexes(col)
	if !ok {
		return -1
	}
	k, _ := slices.BinarySearch(idx, r)
	if k < len(idx) {
		return k
	}

	return -1
}

// PosFIndexGT returns the position of the first entry of column col with
// row > r.
func (c *CSC) PosFIndexGT(r, col int) int {
	idx, ok := c.columnIndexes(col)
	if !ok {
		return -1
	}
	k, found := slices.BinarySearch(idx, r)
	if found {
		k++
	}
	if k < len(idx) {
		return k
	}

	return -1
}

func (c *CSC) columnIndexes(col int) ([]int, bool) {
	if col < 0 || col >= c.NumCols() {
		return nil, false
	}

	return c.indexes[c.ptr[col]:c.ptr[col+1]], true
}

// rangeError rejects the half-open range [lo, hi) over a dimension of size
// limit. Only the dimension the range indexes is set on the error.
func rangeError(what string, lo, hi, limit int) error {
	rows, cols := limit, unknown
	if what == "column" {
		rows, cols = unknown, limit
	}

	return dimErr(rows, cols, fmt.Sprintf("invalid %s range [%d,%d)", what, lo, hi))
}
