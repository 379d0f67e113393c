// SPDX-License-Identifier: MIT

package sparseio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/katalvlaran/sparseblock/sparse"
)

// payloadReader decodes payload records. It implements both
// sparse.TripleReader and sparse.ColumnRecordReader.
type payloadReader struct {
	br      *bufio.Reader
	scratch [8]byte
}

var (
	_ sparse.TripleReader       = (*payloadReader)(nil)
	_ sparse.ColumnRecordReader = (*payloadReader)(nil)
)

func (p *payloadReader) index() (int, error) {
	v, err := binary.ReadUvarint(p.br)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt32 {
		return 0, ErrVarintOverflow
	}

	return int(v), nil
}

func (p *payloadReader) value() (float64, error) {
	if _, err := io.ReadFull(p.br, p.scratch[:]); err != nil {
		return 0, err
	}

	return math.Float64frombits(binary.LittleEndian.Uint64(p.scratch[:])), nil
}

func (p *payloadReader) ReadTriple() (sparse.Triple, error) {
	r, err := p.index()
	if err != nil {
		return sparse.Triple{}, err
	}
	c, err := p.index()
	if err != nil {
		return sparse.Triple{}, err
	}
	v, err := p.value()
	if err != nil {
		return sparse.Triple{}, err
	}

	return sparse.Triple{Row: r, Col: c, Value: v}, nil
}

func (p *payloadReader) ReadCount() (int, error) { return p.index() }

func (p *payloadReader) ReadEntry() (int, float64, error) {
	r, err := p.index()
	if err != nil {
		return 0, 0, err
	}
	v, err := p.value()

	return r, v, err
}

// Read decodes one block file from r. opts configure the resulting block
// (growth, zero policy, extra capacity); its rows are always tracked.
func Read(r io.Reader, opts ...sparse.Option) (*sparse.CSC, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}

	return ReadPayload(r, h, opts...)
}

// ReadPayload decodes the payload that follows h in r. It is the second half
// of Read, for callers that inspect the header first.
//
// Errors: *sparse.FormatError for any malformed, truncated or over-long
// payload; header-level shape errors from package sparse.
func ReadPayload(r io.Reader, h Header, opts ...sparse.Option) (*sparse.CSC, error) {
	zr, release, err := decompressor(r, h.Codec)
	if err != nil {
		return nil, &sparse.FormatError{Stream: h.Codec.String(), Reason: "opening decoder", Err: err}
	}
	defer release()

	p := &payloadReader{br: bufio.NewReader(zr)}
	var c *sparse.CSC
	switch h.Layout {
	case LayoutUltraSparse:
		c, err = sparse.ReadUltraSparse(p, h.Rows, h.Cols, h.NonZeros, opts...)
	case LayoutSparse:
		c, err = sparse.ReadSparse(p, h.Rows, h.Cols, h.NonZeros, opts...)
	default:
		return nil, headerErr(h.Layout.String(), ErrUnknownLayout)
	}
	if err != nil {
		return nil, err
	}

	if _, err = p.br.ReadByte(); !errors.Is(err, io.EOF) {
		return nil, &sparse.FormatError{Stream: h.Layout.String(), Record: h.NonZeros, Reason: "payload longer than declared", Err: errors.Join(ErrTrailingData, err)}
	}

	return c, nil
}
