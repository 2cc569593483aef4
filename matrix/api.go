// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points that delegate to the
//     canonical kernels; no loop is duplicated here.
//   - Offer the long operation names (Subtract, Divide, Multiply) next to the
//     short kernel names for discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of the kernels.

package matrix

import (
	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/scalar"
)

// ---------- Arithmetic aliases (1:1 with kernels) ----------

// Subtract is an alias for Sub: element-wise a − b.
// Complexity: O(R*C).
func Subtract[T scalar.Scalar, R, C dim.Dim](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	return Sub(a, b)
}

// Divide is an alias for Div: m / s.
// Complexity: O(R*C).
func Divide[T scalar.Scalar, R, C dim.Dim](m Matrix[T, R, C], s T) Matrix[T, R, C] {
	return Div(m, s)
}

// Multiply is an alias for Mul: the matrix product a × b.
// Complexity: O(R*C*X).
func Multiply[T scalar.Scalar, R, C, X dim.Dim](a Matrix[T, R, C], b Matrix[T, C, X]) Matrix[T, R, X] {
	return Mul(a, b)
}

// T is an alias for Transpose: returns mᵀ.
// Complexity: O(R*C).
func T[E any, R, C dim.Dim](m Matrix[E, R, C]) Matrix[E, C, R] { return Transpose(m) }

// ---------- Shape-derived constructors ----------

// ZerosLike returns a zero matrix with the same shape as m.
// Complexity: O(R*C).
func ZerosLike[T scalar.Scalar, R, C dim.Dim](_ Matrix[T, R, C]) Matrix[T, R, C] {
	return Zero[T, R, C]()
}

// IdentityLike returns I with the dimension of the square matrix m.
// Complexity: O(N^2).
func IdentityLike[T scalar.Scalar, N dim.Dim](_ Matrix[T, N, N]) Matrix[T, N, N] {
	return Identity[T, N]()
}

// ---------- Convenience compositions ----------

// RowSums returns r where r[i] = Σ_j m[i,j].
// Implementation: Mul(m, ones(C)). No custom loops.
// Complexity: O(R*C).
func RowSums[T scalar.Scalar, R, C dim.Dim](m Matrix[T, R, C]) Vector[T, R] {
	return Mul(m, Splat[T, C, dim.D1](scalar.One[T]()))
}

// ColSums returns c where c[j] = Σ_i m[i,j].
// Implementation: Mul(mᵀ, ones(R)).
// Complexity: O(R*C).
func ColSums[T scalar.Scalar, R, C dim.Dim](m Matrix[T, R, C]) Vector[T, C] {
	return Mul(Transpose(m), Splat[T, R, dim.D1](scalar.One[T]()))
}
