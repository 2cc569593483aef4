// SPDX-License-Identifier: MIT
// Package dim: dimension interface and predefined sizes.

package dim

import "fmt"

// Dim is a compile-time size. Implementations are empty structs whose
// zero value reports the size.
type Dim interface {
	// Len returns the number of slots along this dimension.
	// Complexity: O(1).
	Len() int
}

// Of returns the length of N using its zero value.
// Panics if N reports a negative length (a broken Dim declaration).
// Complexity: O(1).
func Of[N Dim]() int {
	var n N
	l := n.Len()
	if l < 0 {
		panic(fmt.Sprintf("dim: %T reports negative length %d", n, l))
	}

	return l
}

// Predefined dimensions.
type (
	D0 struct{} // empty
	D1 struct{} // single row / column
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D0) Len() int { return 0 }
func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }
func (D9) Len() int { return 9 }

// Compile-time assertions for interface conformance.
var (
	_ Dim = D0{}
	_ Dim = D1{}
	_ Dim = D2{}
	_ Dim = D3{}
	_ Dim = D4{}
	_ Dim = D5{}
	_ Dim = D6{}
	_ Dim = D7{}
	_ Dim = D8{}
	_ Dim = D9{}
)
