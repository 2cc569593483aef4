// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file contains ONLY the type declarations shared by the constructors,
// accessors and kernels: Matrix, Vector and Pair.
package matrix

import "github.com/katalvlaran/matriz/dim"

// Matrix is a row-major grid of exactly R×C values of T.
//   - data holds the cells; offset of (row, col) is row*C + col.
//   - The shape lives in the type; len(data) == dim.Of[R]()*dim.Of[C]()
//     for every matrix returned by this package.
type Matrix[T any, R, C dim.Dim] struct {
	data []T // contiguous row-major storage
}

// Vector is a single-column matrix.
type Vector[T any, D dim.Dim] = Matrix[T, D, dim.D1]

// Pair is a cell of a zipped matrix.
type Pair[T, U any] struct {
	First  T // cell of the left operand
	Second U // cell of the right operand
}
