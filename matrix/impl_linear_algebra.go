// SPDX-License-Identifier: MIT
// Package matrix provides the structural kernels: matrix product and
// transpose. The inner dimension of Mul is matched by the compiler, so
// neither kernel has a runtime failure mode.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/scalar"
)

// Mul returns the matrix product a × b: (R×C)·(C×X) → (R×X).
// MAIN DESCRIPTION:
//   - res[r][x] = Σ_c a[r][c]·b[c][x], accumulated from scalar.Zero.
//
// Determinism:
//   - Fixed r→c→x loop order; the inner x loop walks contiguous rows of
//     b and res.
//
// Complexity:
//   - Time O(R*C*X), Space O(R*X).
func Mul[T scalar.Scalar, R, C, X dim.Dim](a Matrix[T, R, C], b Matrix[T, C, X]) Matrix[T, R, X] {
	rows, inner, cols := dim.Of[R](), dim.Of[C](), dim.Of[X]()
	res := Zero[T, R, X]()
	var aik T
	for r := 0; r < rows; r++ {
		for c := 0; c < inner; c++ {
			aik = a.data[r*inner+c] // reuse across the x loop
			for x := 0; x < cols; x++ {
				res.data[r*cols+x] += aik * b.data[c*cols+x]
			}
		}
	}

	return res
}

// Transpose returns mᵀ: cell (c, r) of the result is cell (r, c) of m.
// It is TryFromIter over the column-major traversal of m, which has exactly
// C×R values; a failure is a defect and panics.
// Complexity: O(R*C).
func Transpose[T any, R, C dim.Dim](m Matrix[T, R, C]) Matrix[T, C, R] {
	t, err := TryFromIter[T, C, R](m.ColMajor())
	if err != nil {
		panic(fmt.Sprintf("matrix: %s: %v", opTranspose, err))
	}

	return t
}
