// SPDX-License-Identifier: MIT

package sparse

// MCSR ("modified CSR") stores one Vector per row. Rows are allocated on
// first write.
type MCSR struct {
	rows []*Vector
	cols int
}

// NewMCSR returns an empty rows×cols block.
func NewMCSR(rows, cols int) (*MCSR, error) {
	if rows < 0 || cols < 0 {
		return nil, dimErr(rows, cols, "negative shape")
	}

	return &MCSR{rows: make([]*Vector, rows), cols: cols}, nil
}

func (m *MCSR) sealed()    {}
func (m *MCSR) Kind() Kind { return KindMCSR }
func (m *MCSR) Rows() int  { return len(m.rows) }
func (m *MCSR) Cols() int  { return m.cols }

// NonZeros sums the row lengths. Complexity: O(rows).
func (m *MCSR) NonZeros() int {
	n := 0
	for _, v := range m.rows {
		if v != nil {
			n += v.Len()
		}
	}

	return n
}

func (m *MCSR) inBounds(r, c int) bool {
	return r >= 0 && r < len(m.rows) && c >= 0 && c < m.cols
}

// At returns the value at (r, c).
func (m *MCSR) At(r, c int) (float64, error) {
	if !m.inBounds(r, c) {
		return 0, blockErrorf(KindMCSR, "At", r, c, ErrOutOfRange)
	}
	if m.rows[r] == nil {
		return 0, nil
	}

	return m.rows[r].Get(c), nil
}

// Set writes v at (r, c); zero deletes.
func (m *MCSR) Set(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return blockErrorf(KindMCSR, "Set", r, c, ErrOutOfRange)
	}
	m.row(r).Set(c, v)

	return nil
}

// Append adds v at the tail of row r when c exceeds its last column.
func (m *MCSR) Append(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return blockErrorf(KindMCSR, "Append", r, c, ErrOutOfRange)
	}
	m.row(r).Append(c, v)

	return nil
}

// row returns row r, allocating it on demand.
func (m *MCSR) row(r int) *Vector {
	if m.rows[r] == nil {
		m.rows[r] = NewVector(DefaultInitCapacity)
	}

	return m.rows[r]
}

// RowSize returns the entry count of row r.
func (m *MCSR) RowSize(r int) int {
	if r < 0 || r >= len(m.rows) || m.rows[r] == nil {
		return 0
	}

	return m.rows[r].Len()
}

// Row returns the live column indexes and values of row r.
func (m *MCSR) Row(r int) ([]int, []float64) {
	if r < 0 || r >= len(m.rows) || m.rows[r] == nil {
		return nil, nil
	}

	return m.rows[r].Indexes(), m.rows[r].Values()
}

// RowVector exposes row r (nil when never written).
func (m *MCSR) RowVector(r int) *Vector {
	if r < 0 || r >= len(m.rows) {
		return nil
	}

	return m.rows[r]
}
