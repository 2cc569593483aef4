// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sequence construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Silent by default: diagnostics go to a discarding logger unless
//     WithLogger is supplied.
package matrix

import "log/slog"

// DefaultExactLength leaves surplus input unconsumed instead of reporting it.
const DefaultExactLength = false

const (
	panicNilLogger = "matrix: WithLogger(nil)"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the resolved configuration of TryFromIter.
// Fields are unexported; public APIs consume ...Option.
type Options struct {
	logger      *slog.Logger // construction diagnostics (Debug level)
	exactLength bool         // report surplus input as ErrOverflowed
}

// WithLogger routes construction diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithExactLength makes TryFromIter pull one value past R×C and fail with
// ErrOverflowed if the sequence supplies it.
func WithExactLength() Option {
	return func(o *Options) { o.exactLength = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		logger:      slog.New(slog.DiscardHandler),
		exactLength: DefaultExactLength,
	}
}

// gatherOptions applies opts in order over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
