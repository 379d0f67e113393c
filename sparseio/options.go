// SPDX-License-Identifier: MIT

package sparseio

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Defaults for Write.
const (
	DefaultLayout    = LayoutAuto
	DefaultCodec     = CodecNone
	DefaultZstdLevel = 3
)

// Option configures Write.
type Option func(*Options)

// Options is the resolved Write configuration.
type Options struct {
	layout    Layout
	codec     Codec
	zstdLevel zstd.EncoderLevel
}

// WithLayout selects the payload layout. Panics on an unknown value.
func WithLayout(l Layout) Option {
	if l > LayoutSparse {
		panic(fmt.Sprintf("sparseio: WithLayout(%d): %v", uint8(l), ErrUnknownLayout))
	}

	return func(o *Options) { o.layout = l }
}

// WithCodec selects payload compression. Panics on an unknown value.
func WithCodec(c Codec) Option {
	if c > CodecZstd {
		panic(fmt.Sprintf("sparseio: WithCodec(%d): %v", uint8(c), ErrUnknownCodec))
	}

	return func(o *Options) { o.codec = c }
}

// WithZstdLevel sets the zstd level (1..22, mapped onto the encoder's
// speed presets). It has no effect on other codecs.
func WithZstdLevel(level int) Option {
	if level < 1 || level > 22 {
		panic(fmt.Sprintf("sparseio: WithZstdLevel(%d): level must be in [1,22]", level))
	}

	return func(o *Options) { o.zstdLevel = zstd.EncoderLevelFromZstd(level) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		layout:    DefaultLayout,
		codec:     DefaultCodec,
		zstdLevel: zstd.EncoderLevelFromZstd(DefaultZstdLevel),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
