// Package matrix_test verifies the facades delegate to the kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/matrix"
	"github.com/stretchr/testify/require"
)

// TestFacades_MatchKernels compares every alias with its kernel.
func TestFacades_MatchKernels(t *testing.T) {
	t.Parallel()

	a, b := m23(), matrix.Splat[int, dim.D2, dim.D3](1)
	require.Equal(t, matrix.Sub(a, b), matrix.Subtract(a, b))
	require.Equal(t, matrix.Div(a, 2), matrix.Divide(a, 2))
	require.Equal(t, matrix.Mul(m33(), m33()), matrix.Multiply(m33(), m33()))
	require.Equal(t, matrix.Transpose(a), matrix.T(a))
}

// TestLikeConstructors checks shape-derived constructors.
func TestLikeConstructors(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.Zero[int, dim.D2, dim.D3](), matrix.ZerosLike(m23()))
	require.Equal(t, matrix.Identity[int, dim.D3](), matrix.IdentityLike(m33()))
}

// TestRowColSums checks the Mul-based reductions.
func TestRowColSums(t *testing.T) {
	t.Parallel()

	require.Equal(t, matrix.MustVectorFrom[int, dim.D2](6, 15), matrix.RowSums(m23()))
	require.Equal(t, matrix.MustVectorFrom[int, dim.D3](5, 7, 9), matrix.ColSums(m23()))
}
