// SPDX-License-Identifier: MIT
// Package matrix: single-column specialization.
//
// Vector[T, D] is Matrix[T, D, dim.D1]; every Matrix operation applies.
// This file adds the vector-only constructors and norms.

package matrix

import (
	"math"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/scalar"
)

const opVectorFrom = "VectorFrom"

// VectorFrom builds a D-vector; each item becomes its own single-cell row.
// Errors: ErrDimensionMismatch (wrapped with "VectorFrom") if len(items) != D.
// Complexity: O(D).
func VectorFrom[T any, D dim.Dim](items ...T) (Vector[T, D], error) {
	if err := validateLen(items, dim.Of[D]()); err != nil {
		return Vector[T, D]{}, matrixErrorf(opVectorFrom, err)
	}

	// A D×1 row-major grid is the item list itself.
	return Vector[T, D]{data: append([]T(nil), items...)}, nil
}

// MustVectorFrom is VectorFrom that panics on error.
func MustVectorFrom[T any, D dim.Dim](items ...T) Vector[T, D] {
	v, err := VectorFrom[T, D](items...)
	if err != nil {
		panic(err)
	}

	return v
}

// Dot returns Σ a[i]·b[i], accumulated from scalar.Zero.
// Complexity: O(D).
func Dot[T scalar.Scalar, D dim.Dim](a, b Vector[T, D]) T {
	sum := scalar.Zero[T]()
	for i := range a.data {
		sum += a.data[i] * b.data[i]
	}

	return sum
}

// LenSquared returns Σ v[i]², accumulated from scalar.Zero.
// Complexity: O(D).
func LenSquared[T scalar.Scalar, D dim.Dim](v Vector[T, D]) T {
	sum := scalar.Zero[T]()
	for x := range v.RowMajor() {
		sum += x * x
	}

	return sum
}

// Len returns the Euclidean length sqrt(LenSquared(v)).
// Complexity: O(D).
func Len[T scalar.Float, D dim.Dim](v Vector[T, D]) T {
	return T(math.Sqrt(float64(LenSquared(v))))
}

// Normalized returns v / Len(v), or v unchanged when Len(v) <= 0
// (the zero vector has no direction).
// Complexity: O(D).
func Normalized[T scalar.Float, D dim.Dim](v Vector[T, D]) Vector[T, D] {
	l := Len(v)
	if l > 0 {
		return Div(v, l)
	}

	return v
}
