// SPDX-License-Identifier: MIT

package estim

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Source is the column-oriented view the estimator reads. Every
// sparse.ColumnMajor block satisfies it.
type Source interface {
	Rows() int
	Cols() int
	Column(c int) (indexes []int, values []float64)
}

// Bitmap is the per-group summary consumed by the size model.
// Tuples are numbered in order of first occurrence (lowest row first).
type Bitmap struct {
	cols    []int
	rows    int
	tuples  [][]float64
	offsets []*roaring.Bitmap
}

// NewBitmap summarises the given columns of src. Column slices may be
// unsorted; stored zeros are ignored.
//
// Errors: ErrBadGroup for an empty group, a duplicate, or an out-of-range
// column.
// Complexity: O(nnz(group) · log) plus one map entry per non-empty row.
func NewBitmap(src Source, cols []int) (*Bitmap, error) {
	if err := checkGroup(cols, src.Cols()); err != nil {
		return nil, fmt.Errorf("NewBitmap(%v): %w", cols, err)
	}

	return buildBitmap(src, cols), nil
}

func checkGroup(cols []int, limit int) error {
	if len(cols) == 0 {
		return fmt.Errorf("%w: empty", ErrBadGroup)
	}
	seen := make(map[int]struct{}, len(cols))
	for _, c := range cols {
		if c < 0 || c >= limit {
			return fmt.Errorf("%w: column %d outside [0,%d)", ErrBadGroup, c, limit)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: duplicate column %d", ErrBadGroup, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

func buildBitmap(src Source, cols []int) *Bitmap {
	b := &Bitmap{cols: append([]int(nil), cols...), rows: src.Rows()}

	present := roaring.New()
	byRow := make(map[uint32][]float64)
	for j, col := range cols {
		idx, vals := src.Column(col)
		for k, r := range idx {
			if vals[k] == 0 {
				continue
			}
			t := byRow[uint32(r)]
			if t == nil {
				t = make([]float64, len(cols))
				byRow[uint32(r)] = t
				present.Add(uint32(r))
			}
			t[j] = vals[k]
		}
	}

	index := make(map[string]int)
	key := make([]byte, 0, 8*len(cols))
	it := present.Iterator()
	for it.HasNext() {
		r := it.Next()
		t := byRow[r]
		key = key[:0]
		for _, v := range t {
			key = binary.LittleEndian.AppendUint64(key, math.Float64bits(v))
		}
		i, ok := index[string(key)]
		if !ok {
			i = len(b.tuples)
			index[string(key)] = i
			b.tuples = append(b.tuples, t)
			b.offsets = append(b.offsets, roaring.New())
		}
		b.offsets[i].Add(r)
	}

	return b
}

// Columns returns a copy of the group's column ids.
func (b *Bitmap) Columns() []int { return append([]int(nil), b.cols...) }

// NumRows is the row count of the source.
func (b *Bitmap) NumRows() int { return b.rows }

// NumValues is the number of distinct non-zero tuples.
func (b *Bitmap) NumValues() int { return len(b.tuples) }

// NumOffsets is the number of rows holding a non-zero tuple.
func (b *Bitmap) NumOffsets() int {
	n := 0
	for _, o := range b.offsets {
		n += int(o.GetCardinality())
	}

	return n
}

// NumRuns counts maximal runs of consecutive rows, summed over tuples.
func (b *Bitmap) NumRuns() int {
	runs := 0
	for _, o := range b.offsets {
		prev := int64(-2)
		it := o.Iterator()
		for it.HasNext() {
			x := int64(it.Next())
			if x != prev+1 {
				runs++
			}
			prev = x
		}
	}

	return runs
}

// NumSingletons counts tuples that occur in exactly one row.
func (b *Bitmap) NumSingletons() int {
	n := 0
	for _, o := range b.offsets {
		if o.GetCardinality() == 1 {
			n++
		}
	}

	return n
}

// Tuple returns a copy of tuple i.
func (b *Bitmap) Tuple(i int) []float64 { return append([]float64(nil), b.tuples[i]...) }

// Offsets returns a copy of the rows holding tuple i.
func (b *Bitmap) Offsets(i int) *roaring.Bitmap { return b.offsets[i].Clone() }
