// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"
	"sort"
)

// Vector is a growable (index, value) list: one row of an MCSR or one column
// of an MCSC. Set and Append keep indexes sorted and unique; Push appends
// without checks for bulk loading and leaves the vector unsorted until Sort.
type Vector struct {
	idx    []int
	vals   []float64
	sorted bool
}

// NewVector returns an empty vector with room for capacity entries.
func NewVector(capacity int) *Vector {
	if capacity < 0 {
		capacity = 0
	}

	return &Vector{
		idx:    make([]int, 0, capacity),
		vals:   make([]float64, 0, capacity),
		sorted: true,
	}
}

// Len reports the number of stored entries.
func (v *Vector) Len() int { return len(v.idx) }

// IsEmpty reports Len() == 0.
func (v *Vector) IsEmpty() bool { return len(v.idx) == 0 }

// IsSorted reports whether indexes are known to be strictly increasing.
func (v *Vector) IsSorted() bool { return v.sorted }

// Indexes returns the live index slice.
func (v *Vector) Indexes() []int { return v.idx }

// Values returns the live value slice.
func (v *Vector) Values() []float64 { return v.vals }

// search returns the insertion point for i and whether it is present.
// Unsorted vectors fall back to a linear scan.
func (v *Vector) search(i int) (int, bool) {
	if !v.sorted {
		for k, x := range v.idx {
			if x == i {
				return k, true
			}
		}

		return len(v.idx), false
	}

	return slices.BinarySearch(v.idx, i)
}

// Get returns the value at index i, or 0 when absent.
func (v *Vector) Get(i int) float64 {
	if k, ok := v.search(i); ok {
		return v.vals[k]
	}

	return 0
}

// Set writes x at index i. Zero deletes an existing entry.
// Reports whether the vector changed.
func (v *Vector) Set(i int, x float64) bool {
	if !v.sorted {
		v.Sort()
	}
	k, ok := v.search(i)
	switch {
	case ok && x == 0:
		v.idx = slices.Delete(v.idx, k, k+1)
		v.vals = slices.Delete(v.vals, k, k+1)
		return true
	case ok:
		changed := v.vals[k] != x
		v.vals[k] = x
		return changed
	case x == 0:
		return false
	default:
		v.idx = slices.Insert(v.idx, k, i)
		v.vals = slices.Insert(v.vals, k, x)
		return true
	}
}

// Append adds (i, x) at the tail when i exceeds the last index, otherwise it
// behaves like Set. Zeros are ignored.
func (v *Vector) Append(i int, x float64) {
	if x == 0 {
		return
	}
	if v.sorted && (len(v.idx) == 0 || v.idx[len(v.idx)-1] < i) {
		v.idx = append(v.idx, i)
		v.vals = append(v.vals, x)
		return
	}
	v.Set(i, x)
}

// Push appends (i, x) unchecked. Zeros are ignored. The caller must not push
// an index twice.
func (v *Vector) Push(i int, x float64) {
	if x == 0 {
		return
	}
	if len(v.idx) > 0 && v.idx[len(v.idx)-1] >= i {
		v.sorted = false
	}
	v.idx = append(v.idx, i)
	v.vals = append(v.vals, x)
}

// Sort orders entries by index.
func (v *Vector) Sort() {
	if !v.sorted {
		sort.Sort(pairSorter{idx: v.idx, vals: v.vals})
		v.sorted = true
	}
}

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	return &Vector{idx: slices.Clone(v.idx), vals: slices.Clone(v.vals), sorted: v.sorted}
}

// pairSorter key-sorts parallel index/value slices by index.
type pairSorter struct {
	idx  []int
	vals []float64
}

func (p pairSorter) Len() int           { return len(p.idx) }
func (p pairSorter) Less(i, j int) bool { return p.idx[i] < p.idx[j] }
func (p pairSorter) Swap(i, j int) {
	p.idx[i], p.idx[j] = p.idx[j], p.idx[i]
	p.vals[i], p.vals[j] = p.vals[j], p.vals[i]
}
