// SPDX-License-Identifier: MIT
// Package: matriz/builder
//
// builder.go — Builder[T, N]: fixed-capacity accumulation and finalization.
//
// Invariants (held after every method returns):
//   • 0 ≤ filled ≤ N.
//   • items[0:filled] are live values; items[filled:N] are zero values.
//   • After a successful Build: items == nil, filled == 0, consumed == true.

package builder

import (
	"iter"

	"github.com/katalvlaran/matriz/dim"
)

// Builder accumulates exactly N values of type T.
// The zero Builder is not usable; construct with New.
type Builder[T any, N dim.Dim] struct {
	items    []T     // len == N until Build transfers it; never reallocated
	filled   int     // number of leading live slots
	consumed bool    // set by a successful Build
	release  func(T) // run once per live value by Discard
}

// New returns an empty builder with capacity dim.Of[N]().
// MAIN DESCRIPTION:
//   - Allocate the N-slot buffer once; no further allocation happens on Push.
//
// Complexity:
//   - Time O(N) zeroing, Space O(N).
func New[T any, N dim.Dim](opts ...Option[T]) *Builder[T, N] {
	cfg := newBuilderConfig(opts)

	return &Builder[T, N]{
		items:   make([]T, dim.Of[N]()),
		release: cfg.release,
	}
}

// Len returns the number of values pushed so far.
// Complexity: O(1).
func (b *Builder[T, N]) Len() int { return b.filled }

// Cap returns the fixed capacity N.
// Complexity: O(1).
func (b *Builder[T, N]) Cap() int { return dim.Of[N]() }

// IsFull reports whether Build would succeed.
// Complexity: O(1).
func (b *Builder[T, N]) IsFull() bool { return !b.consumed && b.filled == len(b.items) }

// Push appends v at slot filled.
// MAIN DESCRIPTION:
//   - On a full builder, v is handed back untouched inside a
//     *CapacityExceededError; the builder is not modified.
//
// Errors:
//   - *CapacityExceededError[T] (errors.Is ErrCapacityExceeded) when full.
//   - ErrConsumed after a successful Build.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Builder[T, N]) Push(v T) error {
	if b.consumed {
		return builderErrorf(MethodPush, ErrConsumed)
	}
	if b.filled == len(b.items) {
		return &CapacityExceededError[T]{Value: v, Cap: len(b.items)}
	}
	b.items[b.filled] = v // slot filled was zero; now live
	b.filled++

	return nil
}

// Build finalizes the builder into a slice of exactly N values.
// MAIN DESCRIPTION:
//   - filled == N: the buffer itself is returned (no copy, no release) and
//     the builder becomes inert.
//   - filled < N: the builder is returned inside *IncompleteError so the
//     caller can inspect it, keep pushing, or Discard it.
//
// Errors:
//   - *IncompleteError[T, N] (errors.Is ErrIncomplete) when not full.
//   - ErrConsumed after a successful Build.
//
// Complexity:
//   - Time O(1), Space O(1).
func (b *Builder[T, N]) Build() ([]T, error) {
	if b.consumed {
		return nil, builderErrorf(MethodBuild, ErrConsumed)
	}
	if b.filled != len(b.items) {
		return nil, &IncompleteError[T, N]{Builder: b}
	}
	out := b.items
	// Ownership moved to out: forget the buffer so Discard cannot reach it.
	b.items = nil
	b.filled = 0
	b.consumed = true

	return out, nil
}

// Discard releases every live value once, in index order, and empties the builder.
// MAIN DESCRIPTION:
//   - Intended for `defer b.Discard()`: after a successful Build it is a no-op,
//     so the same deferred call covers success, early return and abandonment.
//
// Implementation:
//   - Stage 1: snapshot filled and reset it to 0 before running hooks, so a
//     re-entrant or repeated Discard finds nothing to release.
//   - Stage 2: for i in [0, n): zero the slot, then release its former value.
//
// Behavior highlights:
//   - Slots [filled, N) are never read.
//   - The builder stays usable: it is empty again and accepts pushes.
//
// Complexity:
//   - Time O(filled), Space O(1).
func (b *Builder[T, N]) Discard() {
	n := b.filled
	b.filled = 0
	var zero T
	for i := 0; i < n; i++ {
		v := b.items[i]
		b.items[i] = zero // drop the reference so the GC can reclaim it
		b.release(v)
	}
}

// Values yields the live prefix in insertion order without consuming it.
// The sequence reflects the builder at the time each step runs.
// Complexity: O(filled) per full iteration.
func (b *Builder[T, N]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < b.filled; i++ {
			if !yield(b.items[i]) {
				return
			}
		}
	}
}
