// SPDX-License-Identifier: MIT
// Package scalar: constraints and identities.

package scalar

import "golang.org/x/exp/constraints"

// Scalar is any integer or floating-point type (named types included).
// It provides + - * / natively; values are copyable and printable.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is any floating-point type. Required by length and normalization.
type Float interface {
	constraints.Float
}

// Zero returns the additive identity of T.
// Complexity: O(1).
func Zero[T Scalar]() T { return 0 }

// One returns the multiplicative identity of T.
// Complexity: O(1).
func One[T Scalar]() T { return 1 }
