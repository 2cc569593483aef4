// SPDX-License-Identifier: MIT

// Package matrix - row-major storage accessors.
//
// Purpose:
//   - Provide the index formula row*C + col in one place.
//   - At/Set treat an out-of-range index as a programmer error and panic
//     with an error value wrapping ErrOutOfRange.
//   - Keep loops deterministic (fixed row→col order).
//
// Complexity quicksheet:
//   - Rows/Cols/Shape/At/Set: O(1); Clone/String/Equal: O(R*C).

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/matriz/dim"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in panic values
	ctxSet = "Set" // method tag used in panic values
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix[int, dim.D1, dim.D1]{}

// Rows returns the row count R. Complexity: O(1).
func (m Matrix[T, R, C]) Rows() int { return dim.Of[R]() }

// Cols returns the column count C. Complexity: O(1).
func (m Matrix[T, R, C]) Cols() int { return dim.Of[C]() }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m Matrix[T, R, C]) Shape() (rows, cols int) { return dim.Of[R](), dim.Of[C]() }

// offsetOf bounds-checks (row, col) and returns the row-major offset.
// Panics with indexErrorf(method, row, col, ErrOutOfRange) when outside
// [0,R)×[0,C).
func (m Matrix[T, R, C]) offsetOf(method string, row, col int) int {
	rows, cols := m.Shape()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		panic(indexErrorf(method, row, col, ErrOutOfRange))
	}

	return row*cols + col
}

// At returns the cell at (row, col).
// Panics on an out-of-range index; the panic value is an error matching
// ErrOutOfRange.
// Complexity: O(1).
func (m Matrix[T, R, C]) At(row, col int) T {
	return m.data[m.offsetOf(ctxAt, row, col)]
}

// Set assigns v at (row, col). Panics like At.
// Every Matrix value sharing this storage observes the write; see Clone.
// Complexity: O(1).
func (m Matrix[T, R, C]) Set(row, col int, v T) {
	m.data[m.offsetOf(ctxSet, row, col)] = v
}

// Clone returns an independent copy of m.
// Complexity: O(R*C) time and memory.
func (m Matrix[T, R, C]) Clone() Matrix[T, R, C] {
	return Matrix[T, R, C]{data: slices.Clone(m.data)}
}

// String implements fmt.Stringer: one "[a, b, c]" line per row.
// Complexity: O(R*C).
func (m Matrix[T, R, C]) String() string {
	var sb strings.Builder
	rows, cols := m.Shape()
	for i := 0; i < rows; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < cols; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*cols+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Equal reports whether a and b hold the same cells.
// Complexity: O(R*C).
func Equal[T comparable, R, C dim.Dim](a, b Matrix[T, R, C]) bool {
	return slices.Equal(a.data, b.data)
}
