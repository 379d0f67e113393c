// SPDX-License-Identifier: MIT

package sparse

// MCSC ("modified CSC") stores one Vector per column. Columns are allocated
// on first write. Push loads entries without ordering checks; conversion to
// CSC sorts such columns.
type MCSC struct {
	cols []*Vector
	rows int
}

// NewMCSC returns an empty rows×cols block.
func NewMCSC(rows, cols int) (*MCSC, error) {
	if rows < 0 || cols < 0 {
		return nil, dimErr(rows, cols, "negative shape")
	}

	return &MCSC{cols: make([]*Vector, cols), rows: rows}, nil
}

func (m *MCSC) sealed()    {}
func (m *MCSC) Kind() Kind { return KindMCSC }
func (m *MCSC) Rows() int  { return m.rows }
func (m *MCSC) Cols() int  { return len(m.cols) }

// NonZeros sums the column lengths. Complexity: O(cols).
func (m *MCSC) NonZeros() int {
	n := 0
	for _, v := range m.cols {
		if v != nil {
			n += v.Len()
		}
	}

	return n
}

func (m *MCSC) inBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < len(m.cols)
}

// At returns the value at (r, c).
func (m *MCSC) At(r, c int) (float64, error) {
	if !m.inBounds(r, c) {
		return 0, blockErrorf(KindMCSC, "At", r, c, ErrOutOfRange)
	}
	if m.cols[c] == nil {
		return 0, nil
	}

	return m.cols[c].Get(r), nil
}

// Set writes v at (r, c); zero deletes.
func (m *MCSC) Set(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return blockErrorf(KindMCSC, "Set", r, c, ErrOutOfRange)
	}
	m.col(c).Set(r, v)

	return nil
}

// Push appends (r, v) to column c without ordering checks.
func (m *MCSC) Push(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return blockErrorf(KindMCSC, "Push", r, c, ErrOutOfRange)
	}
	m.col(c).Push(r, v)

	return nil
}

func (m *MCSC) col(c int) *Vector {
	if m.cols[c] == nil {
		m.cols[c] = NewVector(DefaultInitCapacity)
	}

	return m.cols[c]
}

// ColumnSize returns the entry count of column c.
func (m *MCSC) ColumnSize(c int) int {
	if c < 0 || c >= len(m.cols) || m.cols[c] == nil {
		return 0
	}

	return m.cols[c].Len()
}

// Column returns the live row indexes and values of column c.
func (m *MCSC) Column(c int) ([]int, []float64) {
	if c < 0 || c >= len(m.cols) || m.cols[c] == nil {
		return nil, nil
	}

	return m.cols[c].Indexes(), m.cols[c].Values()
}

// ColumnVector exposes column c (nil when never written).
func (m *MCSC) ColumnVector(c int) *Vector {
	if c < 0 || c >= len(m.cols) {
		return nil
	}

	return m.cols[c]
}
