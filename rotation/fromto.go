// SPDX-License-Identifier: MIT

package rotation

import (
	"math"

	"github.com/katalvlaran/rigid/vector"
)

// nearAntiparallel bounds |from+to| (unit inputs) below which the
// closed-form from/to rotations lose precision and the half-turn branch
// takes over.
const nearAntiparallel = 1e-6

// unitPair normalizes from and to.
func unitPair(from, to vector.Vector3) (vector.Vector3, vector.Vector3, error) {
	if !from.Unitize() || !to.Unitize() {
		return vector.Vector3{}, vector.Vector3{}, rotationErrorf(opFromTo, ErrZeroVector)
	}

	return from, to, nil
}

// halfTurn handles from ≈ -to. The axis is the part of from×to orthogonal
// to from or, when that vanishes, from.Perpendicular(). The angle is
// atan2(|from×to|, from·to), which is π for exactly opposite vectors.
func halfTurn(f, t vector.Vector3) UnitQuaternion {
	c := f.Cross(t)
	axis, ok := c.Reject(f).Unit()
	if !ok {
		axis, _ = f.Perpendicular()
	}
	s, w := math.Sincos(0.5 * math.Atan2(c.Length(), f.Dot(t)))

	return UnitQuaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: w}
}

// QuaternionFromTo returns the shortest rotation taking the direction of
// from onto the direction of to.
//
// Implementation:
//   - Generic: q = unit(from×to, 1+from·to), the half-angle form.
//   - Parallel: the identity.
//   - Antiparallel: a half turn about an axis perpendicular to from.
//
// 1+from·to is evaluated as |from+to|²/2 so it keeps full relative
// precision near the antiparallel case.
//
// Errors:
//   - ErrZeroVector if from or to has zero length (identity returned).
func QuaternionFromTo(from, to vector.Vector3) (UnitQuaternion, error) {
	f, t, err := unitPair(from, to)
	if err != nil {
		return IdentityQuaternion, err
	}
	sum := f.Add(t)
	c := f.Cross(t)

	switch {
	case sum.Length() < nearAntiparallel:
		return halfTurn(f, t), nil
	case c == vector.Zero3:
		return IdentityQuaternion, nil
	default:
		q := UnitQuaternion{X: c.X, Y: c.Y, Z: c.Z, W: 0.5 * sum.SquareLength()}
		q.Unitize()

		return q, nil
	}
}

// BasisFromTo returns the rotation taking the direction of from onto the
// direction of to, using the Rodrigues form with v = from×to, c = from·to
// and k = 1/(1+c):
//
//	R = c·I + [v]ₓ + k·v·vᵀ
//
// Nearly antiparallel input, where k diverges, is routed through the same
// half-turn branch as QuaternionFromTo.
//
// Errors:
//   - ErrZeroVector if from or to has zero length (IdentityBasis returned).
func BasisFromTo(from, to vector.Vector3) (OrthonormalBasis3, error) {
	f, t, err := unitPair(from, to)
	if err != nil {
		return IdentityBasis, err
	}
	sum := f.Add(t)
	if sum.Length() < nearAntiparallel {
		return BasisFromQuaternion(halfTurn(f, t)), nil
	}

	v := f.Cross(t)
	c := f.Dot(t)
	k := 2 / sum.SquareLength()

	return OrthonormalBasis3{
		X: vector.Vector3{X: c + k*v.X*v.X, Y: k*v.X*v.Y + v.Z, Z: k*v.X*v.Z - v.Y},
		Y: vector.Vector3{X: k*v.X*v.Y - v.Z, Y: c + k*v.Y*v.Y, Z: k*v.Y*v.Z + v.X},
		Z: vector.Vector3{X: k*v.X*v.Z + v.Y, Y: k*v.Y*v.Z - v.X, Z: c + k*v.Z*v.Z},
	}, nil
}
