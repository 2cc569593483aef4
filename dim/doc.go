// SPDX-License-Identifier: MIT

// Package dim provides type-level dimensions for fixed-size containers.
//
// Go has no value-level generics, so a dimension is expressed as a phantom
// type: an empty struct whose Len method reports the size. Containers that
// are parameterized by a Dim (builder.Builder, matrix.Matrix) carry their
// size in their type, which lets the compiler reject shape mismatches:
//
//	var a matrix.Matrix[int, dim.D2, dim.D3]
//	var b matrix.Matrix[int, dim.D3, dim.D2]
//	matrix.Add(a, b) // does not compile
//
// Sizes D0..D9 are predefined. Any other size is one declaration away:
//
//	type D16 struct{}
//
//	func (D16) Len() int { return 16 }
//
// Contract:
//   - Len MUST be a pure function of the type: every value of a Dim type
//     reports the same length, and the zero value is a valid receiver.
//   - Len MUST NOT be negative.
package dim
