// SPDX-License-Identifier: MIT

package sparse

import (
	"math"
	"unsafe"
)

// Byte costs used by the footprint model.
const (
	intBytes       = int64(unsafe.Sizeof(int(0)))     // row index / pointer
	floatBytes     = int64(unsafe.Sizeof(float64(0))) // value
	cscHeaderBytes = int64(unsafe.Sizeof(CSC{}))      // struct incl. slice headers and options
)

// EstimateSizeInMemory predicts the footprint in bytes of a CSC holding
// ceil(sparsity·rows·cols) entries, without building one. Planners use it
// to choose a representation before materializing.
//
// The model charges the struct, the pointer array (cols+1 ints) and both
// entry buffers at max(DefaultInitCapacity, nnz). It is non-decreasing in
// sparsity and increases with cols for a fixed nnz.
//
// Errors: *DimensionError for negative dimensions; ErrBadSparsity when
// sparsity is NaN or outside [0,1].
func EstimateSizeInMemory(rows, cols int64, sparsity float64) (int64, error) {
	if rows < 0 || cols < 0 {
		return 0, dimErr(int(rows), int(cols), "negative dimensions")
	}
	if math.IsNaN(sparsity) || sparsity < 0 || sparsity > 1 {
		return 0, ErrBadSparsity
	}
	nnz := int64(math.Ceil(sparsity * float64(rows) * float64(cols)))
	capacity := max(nnz, DefaultInitCapacity)

	return cscHeaderBytes +
		sliceBytes(cols+1, intBytes) +
		sliceBytes(capacity, intBytes) +
		sliceBytes(capacity, floatBytes), nil
}

// SizeInMemory returns the exact footprint of this block's buffers.
func (c *CSC) SizeInMemory() int64 {
	return cscHeaderBytes +
		sliceBytes(int64(len(c.ptr)), intBytes) +
		sliceBytes(int64(len(c.indexes)), intBytes) +
		sliceBytes(int64(len(c.values)), floatBytes)
}

// sliceBytes is the backing-array cost; slice headers live in cscHeaderBytes.
func sliceBytes(n, elem int64) int64 { return n * elem }
