// SPDX-License-Identifier: MIT
// Package: matriz/builder
//
// options.go — functional options for Builder.
//
// Contract (strict):
//   • Options are functional (type Option[T] func(*builderConfig[T])).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder methods themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

// Option customizes a Builder before its first Push.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option[T any] func(*builderConfig[T])

// WithRelease installs the hook Discard runs once per live value.
// It replaces the default Releaser-based hook. Panics on nil.
// Complexity: O(1).
func WithRelease[T any](fn func(T)) Option[T] {
	if fn == nil {
		// Fail fast: a nil hook would turn Discard into a nil call.
		panic(panicNilRelease)
	}

	return func(c *builderConfig[T]) {
		c.release = fn
	}
}
