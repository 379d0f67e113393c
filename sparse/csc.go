// SPDX-License-Identifier: MIT

// Package sparse - Compressed Column Store.
//
// Purpose:
//   - Hold three parallel buffers (column pointers, row indexes, values) plus
//     size/capacity bookkeeping.
//   - Answer point lookups with a binary search inside one column slice.
//   - Export the raw buffers read-only for accelerated consumers.
//
// AI-Hints:
//   - len(indexes) == len(values) is the physical capacity; size is the
//     logical nnz. Everything past size is scratch.
//   - Row access is not native; use RowView for a materialized transpose.
//
// Complexity quicksheet:
//   - NewCSC: O(cols+capacity); Get/At: O(log columnSize); NonZeros: O(1);
//     Rows (untracked): O(nnz).

package sparse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/sparseblock/matrix"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAdd    = "Add"
	ctxAppend = "Append"
)

// CSC is a compressed-sparse-column matrix block.
type CSC struct {
	ptr     []int     // len cols+1; ptr[0]==0, ptr[cols]==size
	indexes []int     // row indexes, len == capacity
	values  []float64 // values, len == capacity
	size    int       // stored non-zeros
	rows    int       // tracked row count or unknown
	reserve int       // capacity requested at construction; floor for shrinking
	opt     Options
}

var (
	_ matrix.Matrix = (*CSC)(nil)
	_ fmt.Stringer  = (*CSC)(nil)
)

// NewCSC builds an empty block with cols columns and room for capacity
// entries. WithRows fixes the row count; otherwise it is inferred lazily.
//
// Errors: *DimensionError when cols or capacity is negative;
// *CapacityOverflowError when capacity exceeds MaxNonZeros.
// Complexity: O(cols + capacity).
func NewCSC(cols, capacity int, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	if cols < 0 {
		return nil, dimErr(o.rows, cols, "negative column count")
	}
	if capacity < 0 {
		return nil, dimErr(o.rows, cols, "negative capacity")
	}
	if capacity > maxNonZeros {
		return nil, &CapacityOverflowError{Requested: int64(capacity), Limit: int64(maxNonZeros)}
	}
	o.capacity = capacity

	return &CSC{
		ptr:     make([]int, cols+1),
		indexes: make([]int, capacity),
		values:  make([]float64, capacity),
		rows:    o.rows,
		reserve: capacity,
		opt:     o,
	}, nil
}

// NewCSCFromRaw takes ownership of pre-built buffers. The caller must not
// use ptr, indexes or values afterwards.
//
// Implementation:
//   - Stage 1: check lengths: len(ptr) >= 1, len(indexes) == len(values) >= nnz.
//   - Stage 2: check ptr[0] == 0 and ptr[cols] == nnz.
//   - Stage 3: adopt the slices; their length becomes the capacity. Buffers
//     larger than the growth bound of nnz fail the capacity rule of
//     CheckValidity and are trimmed on the next deletion.
//
// Behavior highlights:
//   - Ordering and zero-freedom are not re-checked; run CheckValidity when
//     the producer is untrusted.
//
// Errors:
//   - *DimensionError on inconsistent lengths or pointers.
//   - *CapacityOverflowError when nnz exceeds MaxNonZeros.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewCSCFromRaw(ptr, indexes []int, values []float64, nnz int, opts ...Option) (*CSC, error) {
	o := gatherOptions(opts...)
	if len(ptr) == 0 {
		return nil, dimErr(o.rows, unknown, "empty pointer array")
	}
	cols := len(ptr) - 1
	if nnz < 0 {
		return nil, dimErr(o.rows, cols, "negative nnz")
	}
	if nnz > maxNonZeros {
		return nil, &CapacityOverflowError{Requested: int64(nnz), Limit: int64(maxNonZeros)}
	}
	if len(indexes) != len(values) || len(values) < nnz {
		return nil, dimErr(o.rows, cols,
			fmt.Sprintf("buffer lengths %d/%d cannot hold nnz %d", len(indexes), len(values), nnz))
	}
	if ptr[0] != 0 || ptr[cols] != nnz {
		return nil, dimErr(o.rows, cols,
			fmt.Sprintf("pointer bounds [%d,%d], want [0,%d]", ptr[0], ptr[cols], nnz))
	}

	return &CSC{
		ptr:     ptr,
		indexes: indexes,
		values:  values,
		size:    nnz,
		rows:    o.rows,
		reserve: max(nnz, DefaultInitCapacity),
		opt:     o,
	}, nil
}

func (c *CSC) sealed()    {}
func (c *CSC) Kind() Kind { return KindCSC }

// NumCols returns the logical column count (len(ptr)-1).
func (c *CSC) NumCols() int { return len(c.ptr) - 1 }

// Cols is NumCols; it satisfies matrix.Matrix.
func (c *CSC) Cols() int { return len(c.ptr) - 1 }

// Rows returns the tracked row count, or max(rowIndex)+1 when untracked.
// Complexity: O(1) tracked, O(nnz) inferred.
func (c *CSC) Rows() int {
	if c.rows != unknown {
		return c.rows
	}

	return c.inferRows()
}

// RowsTracked reports whether the row count was supplied explicitly.
func (c *CSC) RowsTracked() bool { return c.rows != unknown }

func (c *CSC) inferRows() int {
	maxRow := -1
	for _, r := range c.indexes[:c.size] {
		maxRow = max(maxRow, r)
	}

	return maxRow + 1
}

// NonZeros returns ptr[cols], the stored entry count.
func (c *CSC) NonZeros() int { return c.ptr[len(c.ptr)-1] }

// Capacity returns the physical buffer capacity.
func (c *CSC) Capacity() int { return len(c.values) }

// ColumnSize returns ptr[col+1]-ptr[col], or 0 outside [0,cols).
func (c *CSC) ColumnSize(col int) int {
	if col < 0 || col >= c.NumCols() {
		return 0
	}

	return c.ptr[col+1] - c.ptr[col]
}

// IsEmptyColumn reports ColumnSize(col) == 0.
func (c *CSC) IsEmptyColumn(col int) bool { return c.ColumnSize(col) == 0 }

// ColumnPos returns the absolute buffer position of column col's slice.
func (c *CSC) ColumnPos(col int) int { return c.ptr[col] }

// Column returns the live row indexes and values of column col.
func (c *CSC) Column(col int) ([]int, []float64) {
	if col < 0 || col >= c.NumCols() {
		return nil, nil
	}
	lo, hi := c.ptr[col], c.ptr[col+1]

	return c.indexes[lo:hi], c.values[lo:hi]
}

// find binary-searches row r in column col. It returns the absolute
// insertion position and whether r is stored there.
func (c *CSC) find(r, col int) (int, bool) {
	lo, hi := c.ptr[col], c.ptr[col+1]
	k, ok := slices.BinarySearch(c.indexes[lo:hi], r)

	return lo + k, ok
}

// Get returns the value at (r, col), or 0 when absent or out of range.
// Complexity: O(log columnSize).
func (c *CSC) Get(r, col int) float64 {
	if r < 0 || col < 0 || col >= c.NumCols() {
		return 0
	}
	if pos, ok := c.find(r, col); ok {
		return c.values[pos]
	}

	return 0
}

// At is the bounds-checked form of Get.
// Errors: ErrOutOfRange when (r, col) lies outside [0,Rows())×[0,Cols()).
func (c *CSC) At(r, col int) (float64, error) {
	if err := c.checkIndex(ctxAt, r, col); err != nil {
		return 0, err
	}

	return c.Get(r, col), nil
}

// checkIndex validates a coordinate against the column count and, when
// tracked, the row count. Untracked rows accept any r >= 0 for writes; At
// checks against the inferred count.
func (c *CSC) checkIndex(method string, r, col int) error {
	if col < 0 || col >= c.NumCols() || r < 0 {
		return cscErrorf(method, r, col, ErrOutOfRange)
	}
	if c.rows != unknown && r >= c.rows {
		return cscErrorf(method, r, col, ErrOutOfRange)
	}
	if c.rows == unknown && method == ctxAt && r >= c.inferRows() {
		return cscErrorf(method, r, col, ErrOutOfRange)
	}

	return nil
}

// Pointers returns the live column-pointer buffer (len cols+1). Read-only:
// mutating it outside this package breaks the block's invariants.
func (c *CSC) Pointers() []int { return c.ptr }

// Indexes returns the live row-index buffer (len Capacity(); first
// NonZeros() entries are meaningful). Read-only.
func (c *CSC) Indexes() []int { return c.indexes }

// Values returns the live value buffer (len Capacity()). Read-only.
func (c *CSC) Values() []float64 { return c.values }

// Copy returns an independent block with buffers trimmed to nnz (at least
// DefaultInitCapacity).
// Complexity: O(cols + nnz).
func (c *CSC) Copy() *CSC {
	capacity := max(c.size, DefaultInitCapacity)
	out := &CSC{
		ptr:     slices.Clone(c.ptr),
		indexes: make([]int, capacity),
		values:  make([]float64, capacity),
		size:    c.size,
		rows:    c.rows,
		reserve: capacity,
		opt:     c.opt,
	}
	copy(out.indexes, c.indexes[:c.size])
	copy(out.values, c.values[:c.size])

	return out
}

// Clone implements matrix.Matrix; the dynamic type is *CSC.
func (c *CSC) Clone() matrix.Matrix { return c.Copy() }

// String renders the block column by column, e.g.
// "CSC 3x3 nnz=2\n col 0: (2, 5)\n col 1: (0, 3)\n".
func (c *CSC) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSC %dx%d nnz=%d\n", c.Rows(), c.NumCols(), c.size)
	for col := 0; col < c.NumCols(); col++ {
		if c.IsEmptyColumn(col) {
			continue
		}
		fmt.Fprintf(&sb, " col %d:", col)
		for k := c.ptr[col]; k < c.ptr[col+1]; k++ {
			fmt.Fprintf(&sb, " (%d, %g)", c.indexes[k], c.values[k])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
