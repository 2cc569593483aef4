// SPDX-License-Identifier: MIT

// Package builder provides a fixed-capacity, incrementally filled buffer
// that finalizes into an exact-size slice.
//
// Builder[T, N] accumulates values one at a time into storage sized exactly
// to the compile-time capacity N (see package dim). It converts into a slice
// of exactly N values only when completely full, and guarantees that every
// value placed into it is released exactly once when it is abandoned
// instead of built.
//
// Lifecycle:
//
//	b := builder.New[int, dim.D3]()  // filled = 0
//	defer b.Discard()                // no-op once Build succeeded
//	_ = b.Push(1)                    // filled = 1
//	_ = b.Push(2)                    // filled = 2
//	out, err := b.Build()            // ErrIncomplete: b is returned inside the error
//	_ = b.Push(3)                    // filled = 3
//	out, err = b.Build()             // []int{1, 2, 3}; b is now inert
//
// Guarantees:
//
//   - Slots [0, filled) hold live values; slots [filled, N) hold the zero
//     value of T and are never handed to the release hook.
//   - Push on a full builder fails with ErrCapacityExceeded and hands the
//     rejected value back (CapacityExceededError.Value).
//   - Build on a partially filled builder fails with ErrIncomplete and hands
//     the live builder back (IncompleteError.Builder) with its contents
//     intact; it can keep accepting pushes or be discarded.
//   - Build on a full builder transfers the buffer to the caller without
//     copying and without releasing anything; the builder becomes inert.
//   - Discard releases exactly the live prefix, once each, in index order,
//     and resets filled to 0. Calling it again releases nothing.
//
// Release:
//
//	Go values are reclaimed by the garbage collector, so "destruction" is an
//	explicit hook. By default a value whose type implements Releaser has its
//	Release method called; WithRelease installs any other hook (returning a
//	value to a pool, closing a handle, counting in tests).
//
// Errors (match with errors.Is):
//
//	ErrCapacityExceeded - Push on a full builder.
//	ErrIncomplete       - Build before the builder is full.
//	ErrConsumed         - Push or Build after a successful Build.
//
// Concurrency:
//
//	A Builder is owned by one goroutine; it performs no locking.
package builder
