// SPDX-License-Identifier: MIT

// Package sparse - Mutation Engine.
//
// Purpose:
//   - Point set/add/append and bulk column deletion that keep ptr, indexes
//     and values consistent after every call.
//   - Re-sorting of columns filled out of order.
//
// AI-Hints:
//   - Insert order matters: Append in column-major, row-ascending order hits
//     the O(1) tail path; anything else pays a tail shift.
//   - The logical column count never changes after construction.

package sparse

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sort"
)

// insertionSortMax is the slice length up to which SortColumn uses an
// exchange sort instead of sort.Sort.
const insertionSortMax = 16

// Set stores v at (r, col).
// MAIN DESCRIPTION:
//   - Binary-search r in column col's slice and overwrite, delete, insert or
//     do nothing depending on presence and whether v is zero.
//
// Implementation:
//   - Stage 1: bounds and numeric-policy checks.
//   - Stage 2: found & v==0 → shift left by one, decrement ptr after col.
//   - Stage 3: found & v!=0 → overwrite in place.
//   - Stage 4: absent & v==0 → no-op.
//   - Stage 5: absent & v!=0 → grow if full, shift the tail right by one,
//     write, increment ptr after col.
//
// Errors:
//   - ErrOutOfRange for coordinates outside the block (tracked rows only).
//   - ErrNaNInf under WithValidateNaNInf.
//   - *CapacityOverflowError when the insert would exceed MaxNonZeros.
//
// Determinism:
//   - Idempotent: repeating Set with the same value leaves the block unchanged.
//
// Complexity:
//   - Time O(log columnSize + nnz - pos + cols) worst case; amortized growth.
func (c *CSC) Set(r, col int, v float64) error {
	if err := c.checkWrite(ctxSet, r, col, v); err != nil {
		return err
	}
	pos, found := c.find(r, col)
	switch {
	case found && v == 0:
		c.deleteAt(col, pos)
	case found:
		c.values[pos] = v
	case v == 0:
		// zero is represented by absence
	default:
		if err := c.insertAt(col, pos, r, v); err != nil {
			return cscErrorf(ctxSet, r, col, err)
		}
	}

	return nil
}

// Add accumulates delta into (r, col), inserting it when absent.
//
// A result of exactly zero deletes the entry under ZeroDelete (default) and
// is stored under ZeroKeep. A zero delta on an absent entry is a no-op.
//
// Errors: as Set.
func (c *CSC) Add(r, col int, delta float64) error {
	if err := c.checkWrite(ctxAdd, r, col, delta); err != nil {
		return err
	}
	pos, found := c.find(r, col)
	if found {
		c.values[pos] += delta
		if c.values[pos] == 0 && c.opt.zeroPolicy == ZeroDelete {
			c.deleteAt(col, pos)
		}

		return nil
	}
	if delta == 0 {
		return nil
	}
	if err := c.insertAt(col, pos, r, delta); err != nil {
		return cscErrorf(ctxAdd, r, col, err)
	}

	return nil
}

// Append inserts v at (r, col) assuming the caller visits entries in
// column-major, row-ascending order. Zeros are ignored.
//
// When the entry lands after the last stored entry of its column and that
// column is the last non-empty one, the write is O(1) amortized. Otherwise
// Append falls back to the Set path (an existing entry is overwritten).
func (c *CSC) Append(r, col int, v float64) error {
	if err := c.checkWrite(ctxAppend, r, col, v); err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	end := c.ptr[col+1]
	if end > c.ptr[col] && c.indexes[end-1] >= r {
		pos, found := c.find(r, col)
		if found {
			c.values[pos] = v
			return nil
		}
		if err := c.insertAt(col, pos, r, v); err != nil {
			return cscErrorf(ctxAppend, r, col, err)
		}

		return nil
	}
	if err := c.insertAt(col, end, r, v); err != nil {
		return cscErrorf(ctxAppend, r, col, err)
	}

	return nil
}

// checkWrite runs the bounds and numeric-policy checks shared by writers.
func (c *CSC) checkWrite(method string, r, col int, v float64) error {
	if err := c.checkIndex(method, r, col); err != nil {
		return err
	}
	if c.opt.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return cscErrorf(method, r, col, ErrNaNInf)
	}

	return nil
}

// insertAt writes (r, v) at absolute position pos inside column col.
func (c *CSC) insertAt(col, pos, r int, v float64) error {
	if err := c.ensureCapacity(1); err != nil {
		return err
	}
	if pos < c.size {
		c.shiftRight(pos, 1)
	}
	c.indexes[pos] = r
	c.values[pos] = v
	c.size++
	c.incrPtr(col, 1)

	return nil
}

// deleteAt removes the entry at absolute position pos of column col.
func (c *CSC) deleteAt(col, pos int) {
	c.shiftLeft(pos, 1)
	c.size--
	c.incrPtr(col, -1)
	c.shrink()
}

// DeleteColumn removes every entry of column col with one block copy and a
// pointer decrement across the following columns.
// Errors: ErrOutOfRange when col is outside [0,cols).
// Complexity: O(nnz - ptr[col+1] + cols).
func (c *CSC) DeleteColumn(col int) error {
	if col < 0 || col >= c.NumCols() {
		return fmt.Errorf("CSC.DeleteColumn(%d): %w", col, ErrOutOfRange)
	}
	c.deleteSpan(col, c.ptr[col], c.ptr[col+1])

	return nil
}

// ResetColumn is DeleteColumn: the column stays, its entries go.
func (c *CSC) ResetColumn(col int) error { return c.DeleteColumn(col) }

// DeleteRange removes the entries of column col whose row lies in [rl, ru).
// Errors: ErrOutOfRange for a bad column; *DimensionError when rl > ru or rl < 0.
func (c *CSC) DeleteRange(col, rl, ru int) error {
	if col < 0 || col >= c.NumCols() {
		return fmt.Errorf("CSC.DeleteRange(%d): %w", col, ErrOutOfRange)
	}
	if rl < 0 || rl > ru {
		return rangeError("row", rl, ru, c.Rows())
	}
	lo, _ := c.find(rl, col)
	hi, _ := c.find(ru, col)
	c.deleteSpan(col, lo, hi)

	return nil
}

// deleteSpan removes absolute positions [lo, hi) that belong to column col.
func (c *CSC) deleteSpan(col, lo, hi int) {
	n := hi - lo
	if n <= 0 {
		return
	}
	c.shiftLeft(lo, n)
	c.size -= n
	c.incrPtr(col, -n)
	c.shrink()
}

// SetColumn replaces column col with the given (row, value) pairs.
// MAIN DESCRIPTION:
//   - Bulk column write: pairs may arrive in any order; zeros are dropped.
//
// Implementation:
//   - Stage 1: validate lengths, bounds and duplicates on a sorted local copy.
//   - Stage 2: grow if needed and move the tail once by the size delta.
//   - Stage 3: copy the new slice and fix ptr after col.
//
// Errors:
//   - *DimensionError when len(rows) != len(vals).
//   - ErrOutOfRange for a bad column or row.
//   - *ValidationError (RuleSorted) on a duplicate row; the block is untouched.
//   - *CapacityOverflowError.
func (c *CSC) SetColumn(col int, rows []int, vals []float64) error {
	if col < 0 || col >= c.NumCols() {
		return fmt.Errorf("CSC.SetColumn(%d): %w", col, ErrOutOfRange)
	}
	if len(rows) != len(vals) {
		return dimErr(len(rows), len(vals), "row and value lengths differ")
	}
	type entry struct {
		r int
		v float64
	}
	next := make([]entry, 0, len(rows))
	for k, r := range rows {
		if err := c.checkWrite("SetColumn", r, col, vals[k]); err != nil {
			return err
		}
		if vals[k] != 0 {
			next = append(next, entry{r, vals[k]})
		}
	}
	slices.SortFunc(next, func(a, b entry) int { return cmp.Compare(a.r, b.r) })
	for k := 1; k < len(next); k++ {
		if next[k].r == next[k-1].r {
			return violation(RuleSorted, k, next[k-1].r, next[k].r)
		}
	}

	lo, hi := c.ptr[col], c.ptr[col+1]
	delta := len(next) - (hi - lo)
	if delta > 0 {
		if err := c.ensureCapacity(delta); err != nil {
			return fmt.Errorf("CSC.SetColumn(%d): %w", col, err)
		}
		c.shiftRight(hi, delta)
	} else if delta < 0 {
		c.shiftLeft(hi+delta, -delta)
	}
	for k, e := range next {
		c.indexes[lo+k] = e.r
		c.values[lo+k] = e.v
	}
	c.size += delta
	c.incrPtr(col, delta)
	if delta < 0 {
		c.shrink()
	}

	return nil
}

// Sort restores row order in every column.
func (c *CSC) Sort() {
	for col := 0; col < c.NumCols(); col++ {
		c.SortColumn(col)
	}
}

// SortColumn orders column col by row index. Slices up to insertionSortMax
// use an exchange sort; longer slices are skipped when already sorted and
// key-sorted otherwise. Out-of-range columns are ignored.
func (c *CSC) SortColumn(col int) {
	if col < 0 || col >= c.NumCols() {
		return
	}
	lo, hi := c.ptr[col], c.ptr[col+1]
	sortPairs(c.indexes[lo:hi], c.values[lo:hi])
}

// sortPairs orders parallel slices by idx.
func sortPairs(idx []int, vals []float64) {
	n := len(idx)
	if n <= 1 {
		return
	}
	if n <= insertionSortMax {
		for i := 1; i < n; i++ {
			for j := i; j > 0 && idx[j-1] > idx[j]; j-- {
				idx[j-1], idx[j] = idx[j], idx[j-1]
				vals[j-1], vals[j] = vals[j], vals[j-1]
			}
		}

		return
	}
	if slices.IsSorted(idx) {
		return
	}
	sort.Sort(pairSorter{idx: idx, vals: vals})
}

// Compact drops explicitly stored zeros (left by ZeroKeep or raw buffers)
// and returns how many were removed.
// Complexity: O(nnz + cols).
func (c *CSC) Compact() int {
	w := 0
	removed := 0
	for col := 0; col < c.NumCols(); col++ {
		lo, hi := c.ptr[col], c.ptr[col+1]
		c.ptr[col] = w
		for k := lo; k < hi; k++ {
			if c.values[k] == 0 {
				removed++
				continue
			}
			c.indexes[w] = c.indexes[k]
			c.values[w] = c.values[k]
			w++
		}
	}
	c.ptr[c.NumCols()] = w
	c.size = w
	c.shrink()

	return removed
}

// Reset drops every entry and restores the construction-time capacity.
// The column count and tracked row count are kept.
func (c *CSC) Reset() {
	clear(c.ptr)
	c.size = 0
	if len(c.values) != max(c.reserve, DefaultInitCapacity) {
		c.resize(max(c.reserve, DefaultInitCapacity))
	}
}
