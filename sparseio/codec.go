// SPDX-License-Identifier: MIT

package sparseio

import (
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// nopWriteCloser lets CodecNone share the Close path.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compressor wraps w so that Close finishes the frame. Closing never closes w.
func compressor(w io.Writer, o Options) (io.WriteCloser, error) {
	switch o.codec {
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	case CodecZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(o.zstdLevel))
	default:
		return nopWriteCloser{w}, nil
	}
}

// decompressor returns the payload reader and a release func.
func decompressor(r io.Reader, c Codec) (io.Reader, func(), error) {
	switch c {
	case CodecLZ4:
		return lz4.NewReader(r), func() {}, nil
	case CodecZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, nil, err
		}

		return dec, dec.Close, nil
	default:
		return r, func() {}, nil
	}
}
