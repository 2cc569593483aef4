// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinels and the ConstructionError
// carrier. Callers MUST match with errors.Is. Out-of-range indexing is a
// programmer error: At/Set panic with an error value wrapping ErrOutOfRange.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflowed indicates a sequence supplied more values than the
	// target matrix holds (a builder refused a value).
	ErrOverflowed = errors.New("matrix: overflowed")

	// ErrUnderflowed indicates a sequence ran out before the target
	// matrix was complete.
	ErrUnderflowed = errors.New("matrix: underflowed")

	// ErrDimensionMismatch indicates literal input whose shape differs
	// from the type-level dimensions (FromRows, FromCols, VectorFrom).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates a (row, col) outside the matrix bounds.
	// It is only ever surfaced through a panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// ConstructionError reports where TryFromIter detected a shortfall or surplus.
type ConstructionError struct {
	Op     string // operation tag (opTryFromIter)
	Row    int    // row being assembled; equals the row count for surplus found after the last row
	Pulled int    // values pulled from the sequence before detection
	Err    error  // ErrOverflowed or ErrUnderflowed
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%s: row %d (pulled %d): %v", e.Op, e.Row, e.Pulled, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ConstructionError) Unwrap() error { return e.Err }

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps err with method context and coordinates.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
