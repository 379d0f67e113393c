// SPDX-License-Identifier: MIT

// Package sparse - bulk deserialization from forward-only streams.
//
// Two stream shapes are consumed:
//   - ultra-sparse: (row, col, value) triples sorted by column, then row;
//   - sparse: per column, a count followed by count (row, value) pairs.
//
// Both build the three buffers in a single forward pass without random
// access. Any deviation surfaces as a *FormatError.

package sparse

import (
	"errors"
	"io"
)

const (
	streamUltraSparse = "ultra-sparse"
	streamSparse      = "sparse"
)

// Triple is one stored entry.
type Triple struct {
	Row, Col int
	Value    float64
}

// TripleReader yields triples one at a time and returns io.EOF when done.
type TripleReader interface {
	ReadTriple() (Triple, error)
}

// ColumnRecordReader yields sparse-stream records: ReadCount starts a column
// record, ReadEntry returns one of its (row, value) pairs.
type ColumnRecordReader interface {
	ReadCount() (int, error)
	ReadEntry() (row int, value float64, err error)
}

// SliceTripleReader serves triples from memory.
type SliceTripleReader struct {
	triples []Triple
	next    int
}

// NewSliceTripleReader wraps ts without copying.
func NewSliceTripleReader(ts []Triple) *SliceTripleReader {
	return &SliceTripleReader{triples: ts}
}

// ReadTriple implements TripleReader.
func (s *SliceTripleReader) ReadTriple() (Triple, error) {
	if s.next >= len(s.triples) {
		return Triple{}, io.EOF
	}
	t := s.triples[s.next]
	s.next++

	return t, nil
}

// formatErr builds a FormatError, mapping io.EOF to a truncation.
func formatErr(stream string, record int, reason string, cause error) error {
	if errors.Is(cause, io.EOF) || errors.Is(cause, io.ErrUnexpectedEOF) {
		return &FormatError{Stream: stream, Record: record, Reason: "truncated: " + reason, Err: cause}
	}

	return &FormatError{Stream: stream, Record: record, Reason: reason, Err: cause}
}

// checkStreamShape validates the declared header of a stream.
func checkStreamShape(rows, cols, nnz int) error {
	if rows < 0 || cols < 0 || nnz < 0 {
		return dimErr(rows, cols, "negative stream header")
	}
	if nnz > maxNonZeros {
		return &CapacityOverflowError{Requested: int64(nnz), Limit: int64(maxNonZeros)}
	}

	return nil
}

// streamChunk bounds what a stream reader allocates before records arrive;
// a declared nnz or column count is not trusted until it is read.
const streamChunk = 1 << 12

// newStreamed starts a stream build holding only ptr[0]. The block's final
// capacity max(nnz, o.capacity) is kept as reserve.
func newStreamed(rows, cols, nnz int, o Options) *CSC {
	final := max(nnz, o.capacity)
	start := min(final, streamChunk)

	return &CSC{
		ptr:     make([]int, 1, min(cols, streamChunk)+1),
		indexes: make([]int, start),
		values:  make([]float64, start),
		rows:    rows,
		reserve: final,
		opt:     o,
	}
}

// push appends one entry during a stream build, growing geometrically.
func (c *CSC) push(r int, v float64) {
	if c.size == len(c.values) {
		c.resize(c.newCapacity(c.size + 1))
	}
	c.indexes[c.size] = r
	c.values[c.size] = v
	c.size++
}

// finishStream settles the buffers at the reserved capacity.
func (c *CSC) finishStream() *CSC {
	if len(c.values) != c.reserve {
		c.resize(c.reserve)
	}

	return c
}

// ReadUltraSparse consumes exactly nnz triples and builds a rows×cols CSC.
// MAIN DESCRIPTION:
//   - Single forward pass: each triple is written at position k; ptr entries
//     for columns skipped since the previous triple are filled with k.
//
// Errors:
//   - *DimensionError / *CapacityOverflowError for a bad header.
//   - *FormatError when the stream ends early, a triple is out of range,
//     out of (column, row) order, duplicated, or holds a zero.
//
// Buffers grow with the triples actually read, so a truncated stream fails
// before the declared nnz is allocated.
//
// Complexity:
//   - Time O(nnz + cols), Space O(nnz + cols).
func ReadUltraSparse(src TripleReader, rows, cols, nnz int, opts ...Option) (*CSC, error) {
	if err := checkStreamShape(rows, cols, nnz); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	o.rows = rows
	out := newStreamed(rows, cols, nnz, o)

	last := Triple{Row: -1, Col: 0}
	for k := 0; k < nnz; k++ {
		t, err := src.ReadTriple()
		if err != nil {
			return nil, formatErr(streamUltraSparse, k, "reading triple", err)
		}
		switch {
		case t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols:
			return nil, formatErr(streamUltraSparse, k, "coordinate out of range", nil)
		case t.Col < last.Col || (t.Col == last.Col && t.Row <= last.Row):
			return nil, formatErr(streamUltraSparse, k, "triples not sorted by column then row", nil)
		case t.Value == 0:
			return nil, formatErr(streamUltraSparse, k, "explicit zero", nil)
		}
		for j := last.Col + 1; j <= t.Col; j++ {
			out.ptr = append(out.ptr, k)
		}
		out.push(t.Row, t.Value)
		last = t
	}
	for j := last.Col + 1; j <= cols; j++ {
		out.ptr = append(out.ptr, nnz)
	}

	return out.finishStream(), nil
}

// ReadSparse consumes one record per column and builds a rows×cols CSC
// holding nnz entries.
//
// Errors:
//   - *FormatError when a count is negative or overruns nnz, a pair is out of
//     range, rows are not strictly increasing within a column, a value is
//     zero, the stream ends early, or the counts do not sum to nnz.
func ReadSparse(src ColumnRecordReader, rows, cols, nnz int, opts ...Option) (*CSC, error) {
	if err := checkStreamShape(rows, cols, nnz); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	o.rows = rows
	out := newStreamed(rows, cols, nnz, o)

	pos := 0
	for col := 0; col < cols; col++ {
		count, err := src.ReadCount()
		if err != nil {
			return nil, formatErr(streamSparse, col, "reading column count", err)
		}
		if count < 0 || pos+count > nnz {
			return nil, formatErr(streamSparse, col, "column count inconsistent with nnz", nil)
		}
		prev := -1
		for k := 0; k < count; k++ {
			r, v, err := src.ReadEntry()
			if err != nil {
				return nil, formatErr(streamSparse, col, "reading entry", err)
			}
			switch {
			case r < 0 || r >= rows:
				return nil, formatErr(streamSparse, col, "row out of range", nil)
			case r <= prev:
				return nil, formatErr(streamSparse, col, "rows not strictly increasing", nil)
			case v == 0:
				return nil, formatErr(streamSparse, col, "explicit zero", nil)
			}
			out.push(r, v)
			pos++
			prev = r
		}
		out.ptr = append(out.ptr, pos)
	}
	if pos != nnz {
		return nil, formatErr(streamSparse, cols, "column counts do not sum to nnz", nil)
	}

	return out.finishStream(), nil
}

// WriteUltraSparse emits every stored entry of c in column, then row, order.
// fn's first error stops the walk and is returned unchanged.
func (c *CSC) WriteUltraSparse(fn func(Triple) error) error {
	for col := 0; col < c.NumCols(); col++ {
		for k := c.ptr[col]; k < c.ptr[col+1]; k++ {
			if err := fn(Triple{Row: c.indexes[k], Col: col, Value: c.values[k]}); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteSparse emits, per column, the count followed by its (row, value)
// pairs. The first error from either callback stops the walk.
func (c *CSC) WriteSparse(count func(n int) error, entry func(row int, v float64) error) error {
	for col := 0; col < c.NumCols(); col++ {
		if err := count(c.ColumnSize(col)); err != nil {
			return err
		}
		for k := c.ptr[col]; k < c.ptr[col+1]; k++ {
			if err := entry(c.indexes[k], c.values[k]); err != nil {
				return err
			}
		}
	}

	return nil
}
