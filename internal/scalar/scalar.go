// SPDX-License-Identifier: MIT

// Package scalar holds the small generic float helpers shared by the
// interval, vector, matrix and rotation packages.
//
// Every helper is a pure function over constraints.Float, so the same code
// path serves float32 callers (tests, benchmarks) and the float64 kernel.
package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Lerp returns a + (b-a)*t. t is not clamped.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi]. The bounds must already be ascending.
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Sign returns -1, 0 or +1. NaN maps to 0.
func Sign[T constraints.Float](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// NearlyEqual reports |a-b| <= tol.
func NearlyEqual[T constraints.Float](a, b, tol T) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

// Ordered returns (min(a,b), max(a,b)).
func Ordered[T constraints.Float](a, b T) (T, T) {
	if b < a {
		return b, a
	}

	return a, b
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite[T constraints.Float](v T) bool {
	f := float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// SafeAcos is acos with its argument clamped to [-1, 1]. Dot products of
// unit vectors routinely land a few ulps outside that range.
func SafeAcos[T constraints.Float](c T) T {
	return T(math.Acos(float64(Clamp(c, -1, 1))))
}
