// Package matrix_test contains tests for the Vector specialization.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/matrix"
	"github.com/stretchr/testify/require"
)

// f32Eps is the float32 machine epsilon.
const f32Eps = 1.1920929e-07

// TestVectorFrom checks the single-column layout and length validation.
func TestVectorFrom(t *testing.T) {
	t.Parallel()

	v, err := matrix.VectorFrom[int, dim.D3](4, 5, 6)
	require.NoError(t, err)
	require.Equal(t, 3, v.Rows())
	require.Equal(t, 1, v.Cols())
	require.Equal(t, 5, v.At(1, 0))
	require.Equal(t, matrix.MustFromRows[int, dim.D3, dim.D1]([]int{4}, []int{5}, []int{6}), v)

	_, err = matrix.VectorFrom[int, dim.D3](1, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "VectorFrom")
}

// TestVectorFrom_Copies ensures the items slice is not aliased.
func TestVectorFrom_Copies(t *testing.T) {
	t.Parallel()

	items := []int{1, 2}
	v := matrix.MustVectorFrom[int, dim.D2](items...)
	items[0] = 9
	require.Equal(t, 1, v.At(0, 0))
}

// TestLenSquared checks Σ v² for integer vectors.
func TestLenSquared(t *testing.T) {
	t.Parallel()

	require.Equal(t, 2*2+3*3, matrix.LenSquared(matrix.MustVectorFrom[int, dim.D2](2, 3)))
	require.Equal(t, 4*4+5*5+6*6, matrix.LenSquared(matrix.MustVectorFrom[int, dim.D3](4, 5, 6)))
	require.Equal(t, 0, matrix.LenSquared(matrix.Zero[int, dim.D0, dim.D1]()))
}

// TestDot checks the inner product and its relation to LenSquared.
func TestDot(t *testing.T) {
	t.Parallel()

	a := matrix.MustVectorFrom[int, dim.D3](1, 2, 3)
	b := matrix.MustVectorFrom[int, dim.D3](4, -5, 6)
	require.Equal(t, 1*4-2*5+3*6, matrix.Dot(a, b))
	require.Equal(t, matrix.LenSquared(b), matrix.Dot(b, b))
}

// TestLen checks the Euclidean length for both float widths.
func TestLen(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, matrix.Len(matrix.MustVectorFrom[float64, dim.D2](3, 4)))
	require.Equal(t, float32(13), matrix.Len(matrix.MustVectorFrom[float32, dim.D2](5, 12)))
}

// TestNormalized_Float32 mirrors the float64 cases for float32.
func TestNormalized_Float32(t *testing.T) {
	t.Parallel()

	n := matrix.Normalized(matrix.MustVectorFrom[float32, dim.D2](10, 6))
	require.InDelta(t, 1.0, float64(matrix.Len(n)), 2*f32Eps)

	zero := matrix.MustVectorFrom[float32, dim.D2](0, 0)
	require.Equal(t, zero, matrix.Normalized(zero)) // unchanged, no division

	unit := matrix.MustVectorFrom[float32, dim.D2](1, 0)
	require.Equal(t, unit, matrix.Normalized(unit))

	require.Equal(t,
		matrix.MustVectorFrom[float32, dim.D2](-0.6, 0.8),
		matrix.Normalized(matrix.MustVectorFrom[float32, dim.D2](-3, 4)),
	)
}

// TestNormalized_Float64 checks unit length and the degenerate zero vector.
func TestNormalized_Float64(t *testing.T) {
	t.Parallel()

	n := matrix.Normalized(matrix.MustVectorFrom[float64, dim.D2](10, 5))
	require.InDelta(t, 1.0, matrix.Len(n), f32Eps)

	zero := matrix.MustVectorFrom[float64, dim.D2](0, 0)
	require.Equal(t, zero, matrix.Normalized(zero))

	neg := matrix.Normalized(matrix.MustVectorFrom[float64, dim.D2](-3.0, 4.0))
	require.InDelta(t, 1.0, matrix.Len(neg), f32Eps)
	require.Equal(t, matrix.MustVectorFrom[float64, dim.D2](-0.6, 0.8), neg)

	require.Equal(t,
		matrix.MustVectorFrom[float64, dim.D2](-0.6, -0.8),
		matrix.Normalized(matrix.MustVectorFrom[float64, dim.D2](-3, -4)),
	)
}

// TestVector_MatrixOps ensures vectors take part in general matrix kernels.
func TestVector_MatrixOps(t *testing.T) {
	t.Parallel()

	v := matrix.MustVectorFrom[int, dim.D3](1, 5, -1)
	require.Equal(t, matrix.MustVectorFrom[int, dim.D3](2, 10, -2), matrix.Add(v, v))
	require.Equal(t, matrix.MustVectorFrom[int, dim.D2](-13, 2), matrix.Mul(
		matrix.MustFromRows[int, dim.D2, dim.D3]([]int{1, -2, 4}, []int{5, 0, 3}), v,
	))
}
