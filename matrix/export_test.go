// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for private validators and the options snapshot.
// This file is compiled only with the package tests, so matrix_test can
// verify unexported helpers without widening the production API.

// ValidateGrid_TestOnly exposes validateGrid.
func ValidateGrid_TestOnly[T any](grid [][]T, rows, cols int) error {
	return validateGrid(grid, rows, cols)
}

// ValidateLen_TestOnly exposes validateLen.
func ValidateLen_TestOnly[T any](items []T, n int) error {
	return validateLen(items, n)
}

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	HasLogger   bool
	ExactLength bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns the snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts)

	return OptionsSnapshot{HasLogger: o.logger != nil, ExactLength: o.exactLength}
}
