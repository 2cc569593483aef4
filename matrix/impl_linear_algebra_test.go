// Package matrix_test contains tests for Mul and Transpose.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul_Examples covers a matrix-vector and a matrix-matrix product.
func TestMul_Examples(t *testing.T) {
	t.Parallel()

	a := matrix.MustFromRows[int, dim.D2, dim.D3](
		[]int{1, -2, 4},
		[]int{5, 0, 3},
	)
	x := matrix.MustFromRows[int, dim.D3, dim.D1]([]int{1}, []int{5}, []int{-1})
	require.Equal(t, matrix.MustFromRows[int, dim.D2, dim.D1]([]int{-13}, []int{2}), matrix.Mul(a, x))

	b := matrix.MustFromRows[int, dim.D3, dim.D2](
		[]int{1, 0},
		[]int{5, 3},
		[]int{-1, 0},
	)
	want := matrix.MustFromRows[int, dim.D3, dim.D2](
		[]int{-13, -6},
		[]int{2, 0},
		[]int{1, 6},
	)
	require.Equal(t, want, matrix.Mul(m33(), b))
}

// TestMul_Identity checks I·M == M and M·I == M.
func TestMul_Identity(t *testing.T) {
	t.Parallel()

	m := m33()
	require.Equal(t, m, matrix.Mul(matrix.Identity[int, dim.D3](), m))
	require.Equal(t, m, matrix.Mul(m, matrix.Identity[int, dim.D3]()))

	r := m23() // non-square: I_2·M and M·I_3
	require.Equal(t, r, matrix.Mul(matrix.Identity[int, dim.D2](), r))
	require.Equal(t, r, matrix.Mul(r, matrix.Identity[int, dim.D3]()))
}

// TestMul_EmptyInner ensures an empty inner dimension yields the zero matrix.
func TestMul_EmptyInner(t *testing.T) {
	t.Parallel()

	a := matrix.Zero[int, dim.D2, dim.D0]()
	b := matrix.Zero[int, dim.D0, dim.D3]()
	require.Equal(t, matrix.Zero[int, dim.D2, dim.D3](), matrix.Mul(a, b))
}

// TestTranspose checks the shape swap and the cell mapping.
func TestTranspose(t *testing.T) {
	t.Parallel()

	want := matrix.MustFromRows[int, dim.D3, dim.D2](
		[]int{1, 4},
		[]int{2, 5},
		[]int{3, 6},
	)
	got := matrix.Transpose(m23())
	require.Equal(t, want, got)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			require.Equal(t, m23().At(r, c), got.At(c, r))
		}
	}
}

// TestTranspose_Involution checks (Mᵀ)ᵀ == M over several shapes.
func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	require.Equal(t, m23(), matrix.Transpose(matrix.Transpose(m23())))
	require.Equal(t, m33(), matrix.Transpose(matrix.Transpose(m33())))

	v := matrix.MustVectorFrom[int, dim.D4](1, 2, 3, 4)
	require.Equal(t, v, matrix.Transpose(matrix.Transpose(v)))

	e := matrix.Zero[int, dim.D0, dim.D2]()
	require.Equal(t, e, matrix.Transpose(matrix.Transpose(e)))
}

// TestTranspose_ProductRule checks (AB)ᵀ == BᵀAᵀ on the fixtures.
func TestTranspose_ProductRule(t *testing.T) {
	t.Parallel()

	a, b := m23(), m33()
	require.Equal(t,
		matrix.Transpose(matrix.Mul(a, b)),
		matrix.Mul(matrix.Transpose(b), matrix.Transpose(a)),
	)
}
