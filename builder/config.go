// SPDX-License-Identifier: MIT
// Package: matriz/builder
//
// config.go — internal configuration and defaults.
//
// Deterministic defaults:
//   • release = releaseValue (calls Release on values implementing Releaser)

package builder

// Releaser is implemented by values that own something beyond their memory
// (a pooled buffer, a handle, a reference count). Discard calls Release
// exactly once for every live value it drops.
type Releaser interface {
	Release()
}

// builderConfig aggregates the knobs of a Builder.
type builderConfig[T any] struct {
	// release is run once per live value by Discard.
	release func(T)
}

// newBuilderConfig applies opts in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig[T any](opts []Option[T]) builderConfig[T] {
	cfg := builderConfig[T]{release: releaseValue[T]}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// releaseValue is the default hook: Release if v implements Releaser.
func releaseValue[T any](v T) {
	if r, ok := any(v).(Releaser); ok {
		r.Release()
	}
}

// Release runs the default hook on v: Release if v implements Releaser,
// nothing otherwise. Callers that take ownership of a value a Builder
// refused (or never received) use it to dispose of the value the same way
// Discard would.
// Complexity: O(1) plus the cost of v.Release.
func Release[T any](v T) { releaseValue(v) }
