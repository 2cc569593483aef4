// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the kernel tests.
//   • Provide a destruction-counting element type for cleanup assertions.

package matrix_test

import (
	"iter"

	"github.com/katalvlaran/matriz/dim"
	"github.com/katalvlaran/matriz/matrix"
)

// tracked is a destruction-counting test double. Release appends the id to
// the shared ledger, so tests can assert both the count and the order.
type tracked struct {
	id     int
	ledger *[]int
}

func (v tracked) Release() { *v.ledger = append(*v.ledger, v.id) }

// trackedSeq yields n tracked values with ids 0..n-1 sharing ledger.
func trackedSeq(ledger *[]int, n int) iter.Seq[tracked] {
	return func(yield func(tracked) bool) {
		for i := 0; i < n; i++ {
			if !yield(tracked{id: i, ledger: ledger}) {
				return
			}
		}
	}
}

// counting yields 0, 1, 2, ... without end and records how many values it
// produced, so tests can assert that surplus input is never pulled.
func counting(produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

// m23 returns the 2×3 fixture [[1,2,3],[4,5,6]].
func m23() matrix.Matrix[int, dim.D2, dim.D3] {
	return matrix.MustFromRows[int, dim.D2, dim.D3](
		[]int{1, 2, 3},
		[]int{4, 5, 6},
	)
}

// m33 returns the 3×3 fixture used by the product tests.
func m33() matrix.Matrix[int, dim.D3, dim.D3] {
	return matrix.MustFromRows[int, dim.D3, dim.D3](
		[]int{1, -2, 4},
		[]int{5, 0, 3},
		[]int{0, 2, 9},
	)
}

// ids extracts the ids of tracked cells in row-major order.
func ids[R, C dim.Dim](m matrix.Matrix[tracked, R, C]) []int {
	var out []int
	for v := range m.RowMajor() {
		out = append(out, v.id)
	}

	return out
}
