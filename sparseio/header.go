// SPDX-License-Identifier: MIT

package sparseio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/sparseblock/sparse"
)

const (
	magic       = "CSCB"
	version     = 1
	headerBytes = 32

	streamHeader = "header"
)

// Layout selects the payload shape.
type Layout uint8

const (
	// LayoutAuto picks LayoutUltraSparse when nnz < cols, LayoutSparse otherwise.
	LayoutAuto Layout = iota
	LayoutUltraSparse
	LayoutSparse
)

func (l Layout) String() string {
	switch l {
	case LayoutAuto:
		return "auto"
	case LayoutUltraSparse:
		return "ultra"
	case LayoutSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// ParseLayout maps "auto", "ultra" or "sparse" (any case) to a Layout.
func ParseLayout(s string) (Layout, error) {
	for l := LayoutAuto; l <= LayoutSparse; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}

	return 0, fmt.Errorf("ParseLayout(%q): %w", s, ErrUnknownLayout)
}

// resolve picks the concrete layout for a block.
func (l Layout) resolve(nnz, cols int) Layout {
	if l != LayoutAuto {
		return l
	}
	if nnz < cols {
		return LayoutUltraSparse
	}

	return LayoutSparse
}

// Codec selects payload compression.
type Codec uint8

const (
	CodecNone Codec = iota
	CodecLZ4
	CodecZstd
)

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZstd:
		return "zstd"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// ParseCodec maps "none", "lz4" or "zstd" (any case) to a Codec.
func ParseCodec(s string) (Codec, error) {
	for c := CodecNone; c <= CodecZstd; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("ParseCodec(%q): %w", s, ErrUnknownCodec)
}

// Header is the fixed prefix of a block file.
type Header struct {
	Version  uint8
	Layout   Layout
	Codec    Codec
	Rows     int
	Cols     int
	NonZeros int
}

func (h Header) marshal() []byte {
	buf := make([]byte, headerBytes)
	copy(buf, magic)
	buf[4] = h.Version
	buf[5] = byte(h.Layout)
	buf[6] = byte(h.Codec)
	binary.LittleEndian.PutUint64(buf[8:], uint64(h.Rows))
	binary.LittleEndian.PutUint64(buf[16:], uint64(h.Cols))
	binary.LittleEndian.PutUint64(buf[24:], uint64(h.NonZeros))

	return buf
}

func headerErr(reason string, err error) error {
	return &sparse.FormatError{Stream: streamHeader, Reason: reason, Err: err}
}

// ReadHeader consumes exactly the header from r and validates it.
//
// Errors: a *sparse.FormatError (matching sparse.ErrIOFormat) wrapping
// ErrBadMagic, ErrVersion, ErrUnknownLayout, ErrUnknownCodec or the read
// failure; a negative or oversized shape is reported the same way.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, headerBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, headerErr("truncated", err)
	}
	if string(buf[:4]) != magic {
		return Header{}, headerErr(fmt.Sprintf("magic %q", buf[:4]), ErrBadMagic)
	}
	h := Header{Version: buf[4], Layout: Layout(buf[5]), Codec: Codec(buf[6])}
	if h.Version != version {
		return Header{}, headerErr(fmt.Sprintf("version %d", h.Version), ErrVersion)
	}
	if h.Layout != LayoutUltraSparse && h.Layout != LayoutSparse {
		return Header{}, headerErr(h.Layout.String(), ErrUnknownLayout)
	}
	if h.Codec > CodecZstd {
		return Header{}, headerErr(h.Codec.String(), ErrUnknownCodec)
	}

	shape := [3]int64{}
	for i := range shape {
		shape[i] = int64(binary.LittleEndian.Uint64(buf[8+8*i:]))
		if shape[i] < 0 || shape[i] > math.MaxInt32 {
			return Header{}, headerErr(fmt.Sprintf("shape field %d out of range: %d", i, shape[i]), nil)
		}
	}
	h.Rows, h.Cols, h.NonZeros = int(shape[0]), int(shape[1]), int(shape[2])

	return h, nil
}
