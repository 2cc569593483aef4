// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the runtime shape checks that remain once
//    type-level dimensions are in place: Go slice literals carry no length
//    in their type, so FromRows / FromCols / VectorFrom validate them here.
//  - Return sentinel-wrapped errors; call sites wrap with their op tag.

package matrix

import "fmt"

// validateGrid ensures grid has exactly rows entries of exactly cols values.
// Returns an error wrapping ErrDimensionMismatch naming the first offender.
// Complexity: O(rows).
func validateGrid[T any](grid [][]T, rows, cols int) error {
	if len(grid) != rows {
		return fmt.Errorf("validateGrid: got %d rows, want %d: %w", len(grid), rows, ErrDimensionMismatch)
	}
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("validateGrid: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}

	return nil
}

// validateLen ensures items has exactly n values.
// Complexity: O(1).
func validateLen[T any](items []T, n int) error {
	if len(items) != n {
		return fmt.Errorf("validateLen: got %d values, want %d: %w", len(items), n, ErrDimensionMismatch)
	}

	return nil
}
