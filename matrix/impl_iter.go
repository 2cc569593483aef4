// SPDX-License-Identifier: MIT

// Package matrix - lazy traversals.
//
// Every traversal is an iter.Seq over the live storage: finite, restartable
// (ranging again starts over) and non-consuming. Row and Col yield nothing
// for an out-of-range index, unlike At which panics.

package matrix

import "iter"

// RowMajor yields row 0 left to right, then row 1, and so on.
// Complexity: O(R*C) per full iteration.
func (m Matrix[T, R, C]) RowMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// ColMajor yields column 0 top to bottom, then column 1, and so on.
// Complexity: O(R*C) per full iteration.
func (m Matrix[T, R, C]) ColMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		rows, cols := m.Shape()
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				if !yield(m.data[r*cols+c]) {
					return
				}
			}
		}
	}
}

// Row yields the C cells of row i, or nothing if i is outside [0, R).
// Complexity: O(C).
func (m Matrix[T, R, C]) Row(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		rows, cols := m.Shape()
		if i < 0 || i >= rows {
			return
		}
		for _, v := range m.data[i*cols : (i+1)*cols] {
			if !yield(v) {
				return
			}
		}
	}
}

// Col yields the R cells of column i, or nothing if i is outside [0, C).
// Complexity: O(R).
func (m Matrix[T, R, C]) Col(i int) iter.Seq[T] {
	return func(yield func(T) bool) {
		rows, cols := m.Shape()
		if i < 0 || i >= cols {
			return
		}
		for r := 0; r < rows; r++ {
			if !yield(m.data[r*cols+i]) {
				return
			}
		}
	}
}
