// SPDX-License-Identifier: MIT
// Package: matriz/builder
//
// errors.go — sentinel errors and typed carriers for the builder package.
//
// Error policy:
//   • Sentinels are package-level; callers branch with errors.Is(err, ErrX).
//   • Push and Build failures are typed carriers (CapacityExceededError,
//     IncompleteError) that Unwrap to their sentinel and hand back what the
//     caller would otherwise lose: the rejected value, or the live builder.
//   • Nothing in this package panics on a runtime condition; panics are
//     confined to option constructors (WithRelease(nil)).

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matriz/dim"
)

// ErrCapacityExceeded indicates Push was called on a full builder.
// The concrete error is a *CapacityExceededError carrying the rejected value.
var ErrCapacityExceeded = errors.New("builder: capacity exceeded")

// ErrIncomplete indicates Build was called before the builder was full.
// The concrete error is an *IncompleteError carrying the live builder.
var ErrIncomplete = errors.New("builder: incomplete")

// ErrConsumed indicates Push or Build on a builder whose contents were
// already transferred by a successful Build.
var ErrConsumed = errors.New("builder: already built")

// CapacityExceededError is returned by Push on a full builder.
// Value is the exact value that was passed in, untouched.
type CapacityExceededError[T any] struct {
	Value T   // rejected value, returned to the caller unmodified
	Cap   int // capacity of the builder that rejected it
}

func (e *CapacityExceededError[T]) Error() string {
	return fmt.Sprintf("%s(cap=%d): %v", MethodPush, e.Cap, ErrCapacityExceeded)
}

// Unwrap exposes ErrCapacityExceeded to errors.Is.
func (e *CapacityExceededError[T]) Unwrap() error { return ErrCapacityExceeded }

// IncompleteError is returned by Build on a builder with filled < N.
// Builder is the same builder Build was called on, contents intact.
type IncompleteError[T any, N dim.Dim] struct {
	Builder *Builder[T, N]
}

func (e *IncompleteError[T, N]) Error() string {
	return fmt.Sprintf("%s(filled=%d, cap=%d): %v", MethodBuild, e.Builder.Len(), e.Builder.Cap(), ErrIncomplete)
}

// Unwrap exposes ErrIncomplete to errors.Is.
func (e *IncompleteError[T, N]) Unwrap() error { return ErrIncomplete }

// RejectedValue extracts the value refused by Push from err.
// Returns (zero, false) if err is not a *CapacityExceededError[T].
// Complexity: O(depth of the wrap chain).
func RejectedValue[T any](err error) (T, bool) {
	var ce *CapacityExceededError[T]
	if errors.As(err, &ce) {
		return ce.Value, true
	}
	var zero T

	return zero, false
}

// Recover extracts the live builder returned by a failed Build.
// Returns (nil, false) if err is not an *IncompleteError[T, N].
// Complexity: O(depth of the wrap chain).
func Recover[T any, N dim.Dim](err error) (*Builder[T, N], bool) {
	var ie *IncompleteError[T, N]
	if errors.As(err, &ie) {
		return ie.Builder, true
	}

	return nil, false
}

// builderErrorf prefixes a sentinel with the method name, preserving it for errors.Is.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
