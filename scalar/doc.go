// SPDX-License-Identifier: MIT

// Package scalar defines the element capability set used by matrix
// arithmetic.
//
// A Scalar supplies an additive identity (Zero), a multiplicative identity
// (One) and the four arithmetic operators. Every built-in integer and
// floating-point type qualifies, including named types whose underlying
// type is one of them:
//
//	type Meters float64 // usable as a matrix element as-is
//
// Float narrows the set to floating-point types for operations that need
// a square root (vector length, normalization).
package scalar
