// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Purpose:
//   - TryFromIter: fallible construction from a sequence of unknown length
//     through two nested fixed-capacity builders (rows of columns).
//   - Literal constructors (FromRows, FromCols) with runtime shape checks.
//   - Neutral constructors (Zero, Splat, Identity, Default).
//
// Cleanup contract of TryFromIter:
//   - Every builder is discarded by a deferred call, so each failure path
//     releases exactly the values pulled so far (builder.Releaser), once.
//   - On success the builders are consumed and the deferred discards are no-ops.

package matrix

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/matriz/builder"
	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/scalar"
)

// Operation name constants for unified error wrapping.
const (
	opTryFromIter = "TryFromIter"
	opFromRows    = "FromRows"
	opFromCols    = "FromCols"
	opDefault     = "Default"
)

// FromRows builds a matrix from row-major literal input.
// MAIN DESCRIPTION:
//   - rows must hold exactly R rows of exactly C values; the cells are copied.
//
// Errors:
//   - ErrDimensionMismatch (wrapped with "FromRows") on any shape difference.
//
// Complexity:
//   - Time O(R*C), Space O(R*C).
func FromRows[T any, R, C dim.Dim](rows ...[]T) (Matrix[T, R, C], error) {
	r, c := dim.Of[R](), dim.Of[C]()
	if err := validateGrid(rows, r, c); err != nil {
		return Matrix[T, R, C]{}, matrixErrorf(opFromRows, err)
	}
	data := make([]T, 0, r*c) // single allocation
	for _, row := range rows {
		data = append(data, row...)
	}

	return Matrix[T, R, C]{data: data}, nil
}

// MustFromRows is FromRows for literals known to be well-formed; it panics on error.
func MustFromRows[T any, R, C dim.Dim](rows ...[]T) Matrix[T, R, C] {
	m, err := FromRows[T, R, C](rows...)
	if err != nil {
		panic(err)
	}

	return m
}

// FromCols builds a matrix from column-major literal input: cols holds C
// columns of R values each. It builds the C×R matrix and transposes it.
// Errors: ErrDimensionMismatch (wrapped with "FromCols").
// Complexity: O(R*C).
func FromCols[T any, R, C dim.Dim](cols ...[]T) (Matrix[T, R, C], error) {
	m, err := FromRows[T, C, R](cols...)
	if err != nil {
		return Matrix[T, R, C]{}, matrixErrorf(opFromCols, err)
	}

	return Transpose(m), nil
}

// MustFromCols is FromCols that panics on error.
func MustFromCols[T any, R, C dim.Dim](cols ...[]T) Matrix[T, R, C] {
	m, err := FromCols[T, R, C](cols...)
	if err != nil {
		panic(err)
	}

	return m
}

// TryFromIter pulls up to R×C values from seq, filling row-major.
// MAIN DESCRIPTION:
//   - For each of the R rows, pull at most C values into a column builder,
//     finalize it, and push the row into the row builder.
//
// Implementation:
//   - Stage 1: convert seq into a pull iterator; stop it on every exit.
//   - Stage 2: per row, pullRow; a short row ⇒ ErrUnderflowed.
//   - Stage 3: push the row; refusal ⇒ ErrOverflowed (the row is released).
//   - Stage 4: finalize the row builder; incomplete ⇒ ErrUnderflowed.
//   - Stage 5 (WithExactLength): one more value present ⇒ ErrOverflowed.
//
// Behavior highlights:
//   - The detection site decides the error: shortfall is reported by the
//     row that ran dry, not by a global length check.
//   - Without WithExactLength, surplus values are left in seq unconsumed.
//   - Every pulled value is either in the returned matrix or released once.
//
// Errors:
//   - *ConstructionError wrapping ErrUnderflowed or ErrOverflowed.
//
// Complexity:
//   - Time O(R*C) pulls, Space O(R*C).
func TryFromIter[T any, R, C dim.Dim](seq iter.Seq[T], opts ...Option) (Matrix[T, R, C], error) {
	cfg := gatherOptions(opts)
	rowsN, colsN := dim.Of[R](), dim.Of[C]()

	next, stop := iter.Pull(seq)
	defer stop()

	rows := builder.New[[]T, R](builder.WithRelease(releaseAll[T]))
	defer rows.Discard() // no-op once Build succeeded

	pulled := 0
	fail := func(row int, sentinel error) (Matrix[T, R, C], error) {
		err := &ConstructionError{Op: opTryFromIter, Row: row, Pulled: pulled, Err: sentinel}
		cfg.logger.Debug("matrix: construction failed",
			"rows", rowsN, "cols", colsN, "row", row, "pulled", pulled,
			"released", pulled, "err", sentinel)
		return Matrix[T, R, C]{}, err
	}

	for r := 0; r < rowsN; r++ {
		row, n, err := pullRow[T, C](next)
		pulled += n
		if err != nil {
			return fail(r, err)
		}
		if err = rows.Push(row); err != nil {
			// Unreachable with one push per row; the refused row is ours to release.
			releaseAll(row)
			return fail(r, ErrOverflowed)
		}
	}

	grid, err := rows.Build()
	if err != nil {
		return fail(rows.Len(), ErrUnderflowed)
	}

	data := make([]T, 0, rowsN*colsN)
	for _, row := range grid {
		data = append(data, row...)
	}

	if cfg.exactLength {
		if extra, ok := next(); ok {
			pulled++
			builder.Release(extra)
			releaseAll(data) // nothing is delivered
			return fail(rowsN, ErrOverflowed)
		}
	}

	return Matrix[T, R, C]{data: data}, nil
}

// pullRow pulls at most C values from next into a column builder.
// Returns the finalized row and the number of values pulled; on failure
// the column builder has already released what it held.
// Complexity: O(C).
func pullRow[T any, C dim.Dim](next func() (T, bool)) ([]T, int, error) {
	cols := builder.New[T, C]()
	defer cols.Discard()

	n := 0
	for c := 0; c < cols.Cap(); c++ {
		v, ok := next()
		if !ok {
			break // sequence exhausted; Build below reports the shortfall
		}
		n++
		if err := cols.Push(v); err != nil {
			// Unreachable under the bounded pull; v came back to us.
			builder.Release(v)
			return nil, n, ErrOverflowed
		}
	}

	row, err := cols.Build()
	if err != nil {
		return nil, n, ErrUnderflowed
	}

	return row, n, nil
}

// releaseAll runs the default release hook over every value of vs.
func releaseAll[T any](vs []T) {
	for _, v := range vs {
		builder.Release(v)
	}
}

// TryFromSlice is TryFromIter over the values of s.
// Complexity: O(R*C).
func TryFromSlice[T any, R, C dim.Dim](s []T, opts ...Option) (Matrix[T, R, C], error) {
	return TryFromIter[T, R, C](slices.Values(s), opts...)
}

// Zero returns the matrix whose every cell is the additive identity.
// Complexity: O(R*C).
func Zero[T scalar.Scalar, R, C dim.Dim]() Matrix[T, R, C] {
	return Splat[T, R, C](scalar.Zero[T]())
}

// Splat returns the matrix whose every cell is v.
// Complexity: O(R*C).
func Splat[T any, R, C dim.Dim](v T) Matrix[T, R, C] {
	data := make([]T, dim.Of[R]()*dim.Of[C]())
	for i := range data {
		data[i] = v
	}

	return Matrix[T, R, C]{data: data}
}

// Identity returns I_N: ones on the diagonal, zeros elsewhere.
// Squareness is enforced by the signature.
// Complexity: O(N^2) zeroing + O(N) diagonal writes.
func Identity[T scalar.Scalar, N dim.Dim]() Matrix[T, N, N] {
	m := Zero[T, N, N]()
	n := dim.Of[N]()
	for i := 0; i < n; i++ { // fixed i order
		m.data[i*n+i] = scalar.One[T]()
	}

	return m
}

// Default returns the matrix of zero values of T, built through TryFromIter
// over R×C repetitions of the zero value. A construction failure here is a
// defect and panics.
// Complexity: O(R*C).
func Default[T any, R, C dim.Dim]() Matrix[T, R, C] {
	var zero T
	m, err := TryFromIter[T, R, C](repeat(zero, dim.Of[R]()*dim.Of[C]()))
	if err != nil {
		panic(fmt.Sprintf("matrix: %s: %v", opDefault, err))
	}

	return m
}

// repeat yields v exactly n times.
func repeat[T any](v T, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < n; i++ {
			if !yield(v) {
				return
			}
		}
	}
}
