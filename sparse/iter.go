// SPDX-License-Identifier: MIT

// Package sparse - forward-only iterators over non-empty rows and columns.
//
// Both iterators are finite and not restartable: re-iterating requires a new
// iterator. The row iterator pays an O(nnz) presence scan up front; the
// column iterator reads ptr directly.

package sparse

import "github.com/bits-and-blooms/bitset"

// RowIterator yields the non-empty rows of a row range in ascending order.
type RowIterator struct {
	present *bitset.BitSet
	next    uint
	end     uint
}

// NonEmptyRows builds an iterator over the non-empty rows in [rl, ru).
//
// Implementation:
//   - Stage 1: scan every stored row index once and mark it in a bitset.
//   - Stage 2: Next advances a cursor with NextSet.
//
// Errors: *DimensionError when rl < 0 or rl > ru.
// Complexity: O(nnz) to build, O(ru-rl) words total to drain.
func (c *CSC) NonEmptyRows(rl, ru int) (*RowIterator, error) {
	if rl < 0 || rl > ru {
		return nil, rangeError("row", rl, ru, c.Rows())
	}
	present := bitset.New(uint(ru))
	for _, r := range c.indexes[:c.size] {
		if r >= rl && r < ru {
			present.Set(uint(r))
		}
	}

	return &RowIterator{present: present, next: uint(rl), end: uint(ru)}, nil
}

// Next returns the next non-empty row, or false when exhausted.
func (it *RowIterator) Next() (int, bool) {
	r, ok := it.present.NextSet(it.next)
	if !ok || r >= it.end {
		it.next = it.end
		return 0, false
	}
	it.next = r + 1

	return int(r), true
}

// Count returns how many rows the iterator yields in total.
func (it *RowIterator) Count() int { return int(it.present.Count()) }

// ColumnIterator yields the non-empty columns of a column range.
type ColumnIterator struct {
	ptr  []int
	next int
	end  int
}

// NonEmptyColumns builds an iterator over the non-empty columns in [cl, cu).
// Errors: *DimensionError on an invalid range.
func (c *CSC) NonEmptyColumns(cl, cu int) (*ColumnIterator, error) {
	if cl < 0 || cl > cu || cu > c.NumCols() {
		return nil, rangeError("column", cl, cu, c.NumCols())
	}

	return &ColumnIterator{ptr: c.ptr, next: cl, end: cu}, nil
}

// Next returns the next non-empty column, or false when exhausted.
func (it *ColumnIterator) Next() (int, bool) {
	for it.next < it.end {
		col := it.next
		it.next++
		if it.ptr[col+1] > it.ptr[col] {
			return col, true
		}
	}

	return 0, false
}
