// SPDX-License-Identifier: MIT

package shuffle

import (
	"io"
	"log/slog"
)

const (
	panicNilStore  = "shuffle: WithStore: store must be non-nil"
	panicNilLogger = "shuffle: WithLogger: logger must be non-nil"
)

// Option configures an Expander. Constructors panic on nonsensical values.
type Option func(*Options)

// Options holds the resolved Expander configuration.
type Options struct {
	store  Store
	logger *slog.Logger
}

// WithStore sets the backing cache. Default: a fresh MemoryStore.
// Sharing one Store between expanders shares their work.
func WithStore(s Store) Option {
	if s == nil {
		panic(panicNilStore)
	}

	return func(o *Options) { o.store = s }
}

// WithLogger sets the logger used by Precompute. Default: discard.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewMemoryStore()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o
}
