// Package matriz is a small linear-algebra primitive: matrices whose row
// and column counts are part of their type.
//
// 🚀 What is matriz?
//
//	A pure-Go, allocation-light library that brings together:
//		• Type-level shapes: Matrix[T, dim.D2, dim.D3] never mixes with a 3×2
//		• Safe construction from iterators of unknown length
//		• Element-wise arithmetic, scalar scaling and division, products
//		• Transposition and row-major / column-major iteration
//		• Vectors (one-column matrices) with Dot, Len and Normalized
//
// ✨ Why choose matriz?
//
//   - Shape errors are compile errors wherever the shape is known statically
//   - Partial construction never leaks: every collected value is released
//     exactly once when a sequence is too short or too long
//   - Silent by default; plug a *slog.Logger in for construction diagnostics
//
// Under the hood, everything is organized under four subpackages:
//
//	dim/     — phantom dimension types D0…D9 and the Dim interface
//	scalar/  — Scalar / Float constraints, Zero and One
//	builder/ — fixed-capacity builder with release-on-discard semantics
//	matrix/  — Matrix, Vector, construction, arithmetic and iteration
//
// Quick example:
//
//	a := matrix.MustFromRows[int, dim.D2, dim.D2]([]int{1, 2}, []int{3, 4})
//	b := matrix.Identity[int, dim.D2]()
//	fmt.Print(matrix.Mul(a, b))
//	// [1, 2]
//	// [3, 4]
//
//	go get github.com/katalvlaran/matriz/matrix
package matriz
