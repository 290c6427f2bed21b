// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
)

// slerpParallel is the dot product above which Slerp switches to Nlerp;
// sin(θ) is too small there to divide by.
const slerpParallel = 1 - 1e-9

// shortest returns b, negated when a·b < 0, and |a·b|.
func shortest(a, b UnitQuaternion) (UnitQuaternion, float64) {
	d := a.Dot(b)
	if d < 0 {
		return b.Neg(), -d
	}

	return b, d
}

// Lerp interpolates component-wise along the shorter arc. The result is not
// normalized; see Nlerp.
func Lerp(a, b UnitQuaternion, t float64) UnitQuaternion {
	b, _ = shortest(a, b)

	return UnitQuaternion{
		X: scalar.Lerp(a.X, b.X, t),
		Y: scalar.Lerp(a.Y, b.Y, t),
		Z: scalar.Lerp(a.Z, b.Z, t),
		W: scalar.Lerp(a.W, b.W, t),
	}
}

// Nlerp is Lerp followed by normalization. If the blend collapses to zero
// (only possible for non-unit input) a is returned.
func Nlerp(a, b UnitQuaternion, t float64) UnitQuaternion {
	q := Lerp(a, b, t)
	if !q.Unitize() {
		return a
	}

	return q
}

// Slerp interpolates at constant angular velocity along the shorter arc.
// t = 0 yields a and t = 1 yields b (or -b). Nearly parallel inputs fall
// back to Nlerp.
//
// Complexity: O(1), one acos and two sines.
func Slerp(a, b UnitQuaternion, t float64) UnitQuaternion {
	b, d := shortest(a, b)
	if d > slerpParallel {
		return Nlerp(a, b, t)
	}

	theta := scalar.SafeAcos(d)
	inv := 1 / math.Sin(theta)
	wa := math.Sin((1-t)*theta) * inv
	wb := math.Sin(t*theta) * inv

	return UnitQuaternion{
		X: wa*a.X + wb*b.X,
		Y: wa*a.Y + wb*b.Y,
		Z: wa*a.Z + wb*b.Z,
		W: wa*a.W + wb*b.W,
	}
}
