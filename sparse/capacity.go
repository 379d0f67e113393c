// SPDX-License-Identifier: MIT

// Package sparse - buffer capacity management.
//
// Growth is geometric: capacity is multiplied by f1 while it is at or below
// the threshold and by f2 above it, repeatedly, until it covers the request.
// N inserts therefore trigger O(log N) reallocations and never overallocate
// by more than max(f1, f2). Shifts inside the buffers use copy, which is
// overlap-safe.

package sparse

import "math"

// newCapacity returns the smallest capacity in the growth sequence starting
// at the current capacity that is >= minSize, capped at maxNonZeros.
func (c *CSC) newCapacity(minSize int) int {
	capacity := max(len(c.values), 1)
	for capacity < minSize {
		f := c.opt.f2
		if capacity <= c.opt.threshold {
			f = c.opt.f1
		}
		capacity = int(math.Ceil(float64(capacity) * f)) // ceil guarantees progress for f > 1
	}

	return min(capacity, maxNonZeros)
}

// capacityBound is the largest capacity tolerated for nnz entries.
func (c *CSC) capacityBound(nnz int) int {
	return max(c.reserve, DefaultInitCapacity, int(math.Ceil(float64(nnz)*c.opt.maxFactor()))+1)
}

// ensureCapacity makes room for extra more entries, reallocating when needed.
// Errors: *CapacityOverflowError when size+extra exceeds maxNonZeros.
func (c *CSC) ensureCapacity(extra int) error {
	need := c.size + extra
	if need > maxNonZeros {
		return &CapacityOverflowError{Requested: int64(need), Limit: int64(maxNonZeros)}
	}
	if need <= len(c.values) {
		return nil
	}
	c.resize(c.newCapacity(need))

	return nil
}

// resize reallocates both buffers to capacity, keeping the first size entries.
func (c *CSC) resize(capacity int) {
	idx := make([]int, capacity)
	vals := make([]float64, capacity)
	copy(idx, c.indexes[:c.size])
	copy(vals, c.values[:c.size])
	c.indexes, c.values = idx, vals
}

// shrink releases memory after deletions once capacity leaves capacityBound.
func (c *CSC) shrink() {
	if len(c.values) > c.capacityBound(c.size) {
		c.resize(max(c.reserve, c.size, DefaultInitCapacity))
	}
}

// shiftRight opens a gap of n slots at pos; the caller ensured capacity.
func (c *CSC) shiftRight(pos, n int) {
	copy(c.indexes[pos+n:c.size+n], c.indexes[pos:c.size])
	copy(c.values[pos+n:c.size+n], c.values[pos:c.size])
}

// shiftLeft closes the gap [pos, pos+n).
func (c *CSC) shiftLeft(pos, n int) {
	copy(c.indexes[pos:], c.indexes[pos+n:c.size])
	copy(c.values[pos:], c.values[pos+n:c.size])
}

// incrPtr adds delta to ptr[col+1:].
func (c *CSC) incrPtr(col, delta int) {
	for k := col + 1; k < len(c.ptr); k++ {
		c.ptr[k] += delta
	}
}
