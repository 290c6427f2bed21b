// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
)

// AxisAngle3 is a rotation by Angle radians (right-hand rule) about Axis.
// Axis is expected to be unit length; IsValid gates every consumer.
type AxisAngle3 struct {
	Axis  vector.Vector3
	Angle float64
}

// IdentityAxisAngle is the zero rotation, expressed about +Z.
var IdentityAxisAngle = AxisAngle3{Axis: vector.UnitZ}

// NewAxisAngle unitizes axis and pairs it with angle.
//
// Errors:
//   - ErrZeroAxis if axis has zero length.
//   - ErrNaNInf if angle is not finite.
//
// On error the identity is returned.
func NewAxisAngle(axis vector.Vector3, angle float64) (AxisAngle3, error) {
	if !scalar.IsFinite(angle) {
		return IdentityAxisAngle, rotationErrorf(opNewAxisAngle, ErrNaNInf)
	}
	if !axis.Unitize() {
		return IdentityAxisAngle, rotationErrorf(opNewAxisAngle, ErrZeroAxis)
	}

	return AxisAngle3{Axis: axis, Angle: angle}, nil
}

// AxisAngleFromQuaternion extracts the axis and an angle in [0, π].
// q is normalized first and flipped to W >= 0; a (near) identity q yields
// IdentityAxisAngle.
func AxisAngleFromQuaternion(q UnitQuaternion) AxisAngle3 {
	if !q.Unitize() {
		return IdentityAxisAngle
	}
	if q.W < 0 {
		q = q.Neg()
	}
	axis := vector.New3(q.X, q.Y, q.Z)
	s := axis.Length()
	if s == 0 {
		return IdentityAxisAngle
	}

	return AxisAngle3{Axis: axis.Scale(1 / s), Angle: 2 * math.Atan2(s, q.W)}
}

// AxisAngleFromBasis converts b through its quaternion.
func AxisAngleFromBasis(b OrthonormalBasis3) AxisAngle3 {
	return AxisAngleFromQuaternion(QuaternionFromBasis(b))
}

// IsValid reports whether Axis is unit length within eps and Angle is finite.
func (a AxisAngle3) IsValid(opts ...Option) bool {
	o := gatherOptions(opts...)

	return scalar.IsFinite(a.Angle) && a.Axis.IsUnit(o.eps)
}

// CosAngle returns cos(Angle).
func (a AxisAngle3) CosAngle() float64 { return math.Cos(a.Angle) }

// SinAngle returns sin(Angle).
func (a AxisAngle3) SinAngle() float64 { return math.Sin(a.Angle) }

// Inverse rotates by the negated angle about the same axis.
func (a AxisAngle3) Inverse() AxisAngle3 { return AxisAngle3{Axis: a.Axis, Angle: -a.Angle} }

// Apply rotates v with Rodrigues' formula:
//
//	v·cosθ + (k×v)·sinθ + k·(k·v)(1-cosθ)
func (a AxisAngle3) Apply(v vector.Vector3) vector.Vector3 {
	s, c := math.Sincos(a.Angle)
	k := a.Axis

	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}

// Quaternion returns (axis·sin(θ/2), cos(θ/2)).
func (a AxisAngle3) Quaternion() UnitQuaternion { return QuaternionFromAxisAngle(a) }

// Basis returns the rotated axes using the closed-form rotation matrix.
func (a AxisAngle3) Basis() OrthonormalBasis3 { return BasisFromAxisAngle(a) }

// Matrix3 returns the rotation matrix.
func (a AxisAngle3) Matrix3() matrix.Matrix3 { return BasisFromAxisAngle(a).Matrix3() }

// String renders the rotation as "axis∠angle".
func (a AxisAngle3) String() string { return fmt.Sprintf("%v∠%g", a.Axis, a.Angle) }
