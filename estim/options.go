// SPDX-License-Identifier: MIT

package estim

import (
	"fmt"
	"log/slog"
	"slices"
)

// Option configures an Estimator.
type Option func(*Options)

// Options is the resolved configuration.
type Options struct {
	valid      []Encoding
	logger     *slog.Logger
	transposed bool
}

// WithValidEncodings restricts the encodings priced for each group.
// Panics when encs is empty or holds an unknown value.
func WithValidEncodings(encs ...Encoding) Option {
	if len(encs) == 0 {
		panic("estim: WithValidEncodings needs at least one encoding")
	}
	set := make([]Encoding, 0, len(encs))
	for _, e := range encs {
		if e > RLE {
			panic(fmt.Sprintf("estim: WithValidEncodings: unknown %s", e))
		}
		if !slices.Contains(set, e) {
			set = append(set, e)
		}
	}
	slices.Sort(set)

	return func(o *Options) { o.valid = set }
}

// WithLogger sets the logger for dispatch and fallback events. nil keeps the
// discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTransposed estimates over the source's rows instead of its columns.
func WithTransposed() Option {
	return func(o *Options) { o.transposed = true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		valid:  allEncodings,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
