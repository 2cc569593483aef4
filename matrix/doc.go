// SPDX-License-Identifier: MIT

// Package matrix provides a fixed-dimension, row-major matrix whose row and
// column counts are part of its type.
//
// Matrix[T, R, C] holds exactly R×C values of T, where R and C are
// dimensions from package dim. Shapes are checked by the compiler:
//
//	a := matrix.MustFromRows[int, dim.D2, dim.D3]([]int{1, 2, 3}, []int{4, 5, 6})
//	b := matrix.MustFromRows[int, dim.D3, dim.D1]([]int{1}, []int{5}, []int{-1})
//	p := matrix.Mul(a, b)  // Matrix[int, dim.D2, dim.D1]
//	_ = matrix.Add(a, p)   // does not compile: 2×3 + 2×1
//
// The package provides:
//
//   - Construction: FromRows, FromCols, TryFromIter / TryFromSlice (fallible,
//     from a sequence of unknown length), Zero, Splat, Identity, Default.
//   - Access: At / Set (panic on out-of-range, a programmer error), Rows,
//     Cols, Shape, Clone, String, Equal.
//   - Iteration (lazy, restartable iter.Seq): RowMajor, ColMajor, Row, Col.
//     Row and Col yield nothing for an out-of-range index.
//   - Arithmetic (operands are never mutated; a fresh matrix is returned):
//     Add, Sub, Scale, Div, Mul, Transpose, Map, Zip.
//   - Vector[T, D], the alias of Matrix[T, D, dim.D1], with VectorFrom,
//     LenSquared, Dot, and for floating-point scalars Len and Normalized.
//
// Construction from a sequence:
//
//	TryFromIter pulls at most R×C values, one row at a time, through two
//	nested fixed-capacity builders (package builder): an inner one for the
//	columns of the current row and an outer one for the rows. A row that
//	cannot be completed reports ErrUnderflowed; a builder refusing a value
//	reports ErrOverflowed. Every value pulled but not delivered in a matrix
//	is released (builder.Releaser) exactly once on every failure path.
//	Surplus input is left unconsumed unless WithExactLength is given.
//
// Value semantics:
//
//	A Matrix stores its cells in a slice allocated by its constructor;
//	assigning a Matrix value shares that storage. Use Clone for an
//	independent duplicate. The zero Matrix value has no storage and is
//	not a valid matrix.
//
// Errors (match with errors.Is):
//
//	ErrOverflowed, ErrUnderflowed - TryFromIter / TryFromSlice.
//	ErrDimensionMismatch          - literal input (FromRows, FromCols, VectorFrom) of the wrong shape.
//	ErrOutOfRange                 - carried by the panic value of At / Set.
package matrix
