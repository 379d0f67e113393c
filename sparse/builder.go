// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/tidwall/btree"
)

// TripleBuilder accumulates entries in any order and builds a CSC in one
// pass. Entries are kept in a B-tree ordered by (column, row), which is the
// ultra-sparse stream order, so Build feeds ReadUltraSparse directly.
type TripleBuilder struct {
	tree       *btree.BTreeG[Triple]
	rows, cols int
}

// tripleLess orders triples by column, then row.
func tripleLess(a, b Triple) bool {
	if a.Col != b.Col {
		return a.Col < b.Col
	}

	return a.Row < b.Row
}

// NewTripleBuilder returns an empty builder for a rows×cols block.
func NewTripleBuilder(rows, cols int) (*TripleBuilder, error) {
	if rows < 0 || cols < 0 {
		return nil, dimErr(rows, cols, "negative shape")
	}

	return &TripleBuilder{tree: btree.NewBTreeG[Triple](tripleLess), rows: rows, cols: cols}, nil
}

func (b *TripleBuilder) check(method string, r, c int) error {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return fmt.Errorf("TripleBuilder.%s(%d,%d): %w", method, r, c, ErrOutOfRange)
	}

	return nil
}

// Set stores v at (r, c), replacing any previous value; zero removes it.
func (b *TripleBuilder) Set(r, c int, v float64) error {
	if err := b.check("Set", r, c); err != nil {
		return err
	}
	if v == 0 {
		b.tree.Delete(Triple{Row: r, Col: c})
		return nil
	}
	b.tree.Set(Triple{Row: r, Col: c, Value: v})

	return nil
}

// Add accumulates v into (r, c). Entries that cancel to zero are removed.
func (b *TripleBuilder) Add(r, c int, v float64) error {
	if err := b.check("Add", r, c); err != nil {
		return err
	}
	key := Triple{Row: r, Col: c}
	if prev, ok := b.tree.Get(key); ok {
		v += prev.Value
	}
	if v == 0 {
		b.tree.Delete(key)
		return nil
	}
	key.Value = v
	b.tree.Set(key)

	return nil
}

// Len returns the number of distinct non-zero entries.
func (b *TripleBuilder) Len() int { return b.tree.Len() }

// Build produces the CSC. The builder stays usable afterwards.
// Complexity: O(nnz + cols).
func (b *TripleBuilder) Build(opts ...Option) (*CSC, error) {
	items := make([]Triple, 0, b.tree.Len())
	b.tree.Scan(func(t Triple) bool {
		items = append(items, t)
		return true
	})

	return ReadUltraSparse(NewSliceTripleReader(items), b.rows, b.cols, len(items), opts...)
}
