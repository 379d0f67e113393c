// SPDX-License-Identifier: MIT

package sparseio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/sparseblock/sparse"
)

// Write serializes c to w and returns the header it wrote.
//
// The block's logical row count (tracked or inferred) is recorded, so a
// round trip always yields a block with tracked rows. Entries are emitted in
// column, then row, order; c must be sorted (see (*sparse.CSC).Sort).
//
// Errors: w's failures and the codec's, wrapped with the Write context.
func Write(w io.Writer, c *sparse.CSC, opts ...Option) (Header, error) {
	if c == nil {
		return Header{}, fmt.Errorf("sparseio.Write: %w", sparse.ErrNilBlock)
	}
	o := gatherOptions(opts...)
	h := Header{
		Version:  version,
		Layout:   o.layout.resolve(c.NonZeros(), c.NumCols()),
		Codec:    o.codec,
		Rows:     c.Rows(),
		Cols:     c.NumCols(),
		NonZeros: c.NonZeros(),
	}
	if _, err := w.Write(h.marshal()); err != nil {
		return Header{}, fmt.Errorf("sparseio.Write: header: %w", err)
	}

	zw, err := compressor(w, o)
	if err != nil {
		return Header{}, fmt.Errorf("sparseio.Write: %s: %w", o.codec, err)
	}
	bw := bufio.NewWriter(zw)
	if err = writePayload(bw, c, h.Layout); err == nil {
		err = bw.Flush()
	}
	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Header{}, fmt.Errorf("sparseio.Write: %s payload: %w", h.Layout, err)
	}

	return h, nil
}

func writePayload(bw *bufio.Writer, c *sparse.CSC, layout Layout) error {
	scratch := make([]byte, 0, 2*binary.MaxVarintLen64+8)
	if layout == LayoutUltraSparse {
		return c.WriteUltraSparse(func(t sparse.Triple) error {
			scratch = binary.AppendUvarint(scratch[:0], uint64(t.Row))
			scratch = binary.AppendUvarint(scratch, uint64(t.Col))
			scratch = binary.LittleEndian.AppendUint64(scratch, math.Float64bits(t.Value))
			_, err := bw.Write(scratch)

			return err
		})
	}

	return c.WriteSparse(
		func(n int) error {
			scratch = binary.AppendUvarint(scratch[:0], uint64(n))
			_, err := bw.Write(scratch)

			return err
		},
		func(r int, v float64) error {
			scratch = binary.AppendUvarint(scratch[:0], uint64(r))
			scratch = binary.LittleEndian.AppendUint64(scratch, math.Float64bits(v))
			_, err := bw.Write(scratch)

			return err
		},
	)
}
