// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels.
//
// Purpose:
//   - Map and Zip are the two primitives; Add/Sub are Zip followed by Map,
//     Scale/Div are Map with a captured scalar.
//   - Operands are never mutated; each kernel returns a fresh matrix.
//
// Determinism:
//   - Single flat walk 0..R*C-1 over row-major storage.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/scalar"
)

// Operation name constants for defect panics.
const (
	opZip       = "Zip"
	opTranspose = "Transpose"
)

// Map returns the matrix of f applied to every cell of m, in row-major order.
// Complexity: O(R*C).
func Map[T, U any, R, C dim.Dim](m Matrix[T, R, C], f func(T) U) Matrix[U, R, C] {
	data := make([]U, len(m.data))
	for i, v := range m.data {
		data[i] = f(v)
	}

	return Matrix[U, R, C]{data: data}
}

// Zip pairs every cell of a with the corresponding cell of b.
// The shapes match by type, so the construction cannot fail; a failure
// is a defect and panics.
// Complexity: O(R*C).
func Zip[T, U any, R, C dim.Dim](a Matrix[T, R, C], b Matrix[U, R, C]) Matrix[Pair[T, U], R, C] {
	pairs := func(yield func(Pair[T, U]) bool) {
		for i := range a.data {
			if !yield(Pair[T, U]{First: a.data[i], Second: b.data[i]}) {
				return
			}
		}
	}
	m, err := TryFromIter[Pair[T, U], R, C](pairs)
	if err != nil {
		panic(fmt.Sprintf("matrix: %s: %v", opZip, err))
	}

	return m
}

// Add returns a + b cell by cell.
// Complexity: O(R*C).
func Add[T scalar.Scalar, R, C dim.Dim](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	return Map(Zip(a, b), func(p Pair[T, T]) T { return p.First + p.Second })
}

// Sub returns a − b cell by cell.
// Complexity: O(R*C).
func Sub[T scalar.Scalar, R, C dim.Dim](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	return Map(Zip(a, b), func(p Pair[T, T]) T { return p.First - p.Second })
}

// Scale returns s·m: every cell multiplied by s.
// Complexity: O(R*C).
func Scale[T scalar.Scalar, R, C dim.Dim](m Matrix[T, R, C], s T) Matrix[T, R, C] {
	return Map(m, func(v T) T { return v * s })
}

// Div returns m / s: every cell divided by s with T's own division.
// There is no zero guard: integer division by zero panics as in Go,
// floating-point division yields ±Inf or NaN.
// Complexity: O(R*C).
func Div[T scalar.Scalar, R, C dim.Dim](m Matrix[T, R, C], s T) Matrix[T, R, C] {
	return Map(m, func(v T) T { return v / s })
}
