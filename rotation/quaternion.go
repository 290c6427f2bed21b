// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
)

// UnitQuaternion encodes a rotation by θ about unit axis n as
// X,Y,Z = n·sin(θ/2), W = cos(θ/2).
//
// Unit length is expected but not enforced: NewQuaternion and Unitize are
// the points where it is restored, and a zero quaternion is representable.
// q and -q describe the same rotation.
type UnitQuaternion struct {
	X, Y, Z, W float64
}

// Versor is the conventional name of a unit quaternion.
type Versor = UnitQuaternion

// IdentityQuaternion is the zero rotation.
var IdentityQuaternion = UnitQuaternion{W: 1}

// NewQuaternion normalizes (x, y, z, w).
//
// Errors:
//   - ErrNaNInf if any component is not finite.
//   - ErrZeroQuaternion if the length is zero.
//
// On error the identity is returned.
func NewQuaternion(x, y, z, w float64) (UnitQuaternion, error) {
	q := UnitQuaternion{X: x, Y: y, Z: z, W: w}
	if !(scalar.IsFinite(x) && scalar.IsFinite(y) && scalar.IsFinite(z) && scalar.IsFinite(w)) {
		return IdentityQuaternion, rotationErrorf(opNewQuaternion, ErrNaNInf)
	}
	if !q.Unitize() {
		return IdentityQuaternion, rotationErrorf(opNewQuaternion, ErrZeroQuaternion)
	}

	return q, nil
}

// QuaternionFromAxisAngle returns (axis·sin(θ/2), cos(θ/2)).
// The axis is assumed unit length.
func QuaternionFromAxisAngle(a AxisAngle3) UnitQuaternion {
	s, c := math.Sincos(0.5 * a.Angle)

	return UnitQuaternion{X: a.Axis.X * s, Y: a.Axis.Y * s, Z: a.Axis.Z * s, W: c}
}

// QuaternionFromBasis converts an orthonormal basis with Shepperd's method:
// the square root is taken of the largest of the four diagonal
// combinations (trace, or one of the axis terms), which keeps the division
// well conditioned for every rotation angle.
//
// The basis is assumed orthonormal and right-handed.
func QuaternionFromBasis(b OrthonormalBasis3) UnitQuaternion {
	// mij: row i, column j of the matrix whose columns are the axes.
	m00, m01, m02 := b.X.X, b.Y.X, b.Z.X
	m10, m11, m12 := b.X.Y, b.Y.Y, b.Z.Y
	m20, m21, m22 := b.X.Z, b.Y.Z, b.Z.Z

	var q UnitQuaternion
	switch tr := m00 + m11 + m22; {
	case tr > 0:
		s := 2 * math.Sqrt(tr+1) // s = 4w
		q = UnitQuaternion{
			X: (m21 - m12) / s,
			Y: (m02 - m20) / s,
			Z: (m10 - m01) / s,
			W: 0.25 * s,
		}
	case m00 > m11 && m00 > m22:
		s := 2 * math.Sqrt(1+m00-m11-m22) // s = 4x
		q = UnitQuaternion{
			X: 0.25 * s,
			Y: (m01 + m10) / s,
			Z: (m02 + m20) / s,
			W: (m21 - m12) / s,
		}
	case m11 > m22:
		s := 2 * math.Sqrt(1+m11-m00-m22) // s = 4y
		q = UnitQuaternion{
			X: (m01 + m10) / s,
			Y: 0.25 * s,
			Z: (m12 + m21) / s,
			W: (m02 - m20) / s,
		}
	default:
		s := 2 * math.Sqrt(1+m22-m00-m11) // s = 4z
		q = UnitQuaternion{
			X: (m02 + m20) / s,
			Y: (m12 + m21) / s,
			Z: 0.25 * s,
			W: (m10 - m01) / s,
		}
	}
	q.Unitize()

	return q
}

// QuaternionFromMatrix3 converts a rotation matrix.
//
// Errors:
//   - ErrNotOrthonormal unless mᵀm ≈ I within eps and det(m) > 0.
func QuaternionFromMatrix3(m matrix.Matrix3, opts ...Option) (UnitQuaternion, error) {
	o := gatherOptions(opts...)
	if !properRotation(m, o.eps) {
		return IdentityQuaternion, rotationErrorf(opFromMatrix, ErrNotOrthonormal)
	}

	return QuaternionFromBasis(basisFromColumns(m)), nil
}

// Vector returns the imaginary part (X, Y, Z).
func (q UnitQuaternion) Vector() vector.Vector3 { return vector.New3(q.X, q.Y, q.Z) }

// Vector4 returns (X, Y, Z, W).
func (q UnitQuaternion) Vector4() vector.Vector4 { return vector.New4(q.X, q.Y, q.Z, q.W) }

// Dot returns the 4D dot product.
func (q UnitQuaternion) Dot(o UnitQuaternion) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// SquareLength returns |q|².
func (q UnitQuaternion) SquareLength() float64 { return q.Dot(q) }

// Length returns |q|. Nested Hypot keeps finite input from overflowing or
// underflowing in the squared sum.
func (q UnitQuaternion) Length() float64 {
	return math.Hypot(math.Hypot(q.X, q.Y), math.Hypot(q.Z, q.W))
}

// Unitize scales q to unit length in place. It returns false and leaves q
// unchanged when |q| is zero (or not finite).
func (q *UnitQuaternion) Unitize() bool {
	l := q.Length()
	if !(l > 0) || math.IsInf(l, 0) {
		return false
	}
	q.X /= l
	q.Y /= l
	q.Z /= l
	q.W /= l

	return true
}

// IsValid reports whether |q| = 1 within eps.
func (q UnitQuaternion) IsValid(opts ...Option) bool {
	o := gatherOptions(opts...)

	return scalar.NearlyEqual(q.Length(), 1, o.eps)
}

// Conjugate returns (-X, -Y, -Z, W).
func (q UnitQuaternion) Conjugate() UnitQuaternion {
	return UnitQuaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Inverse returns the conjugate divided by |q|², or the identity for a zero q.
func (q UnitQuaternion) Inverse() UnitQuaternion {
	n := q.SquareLength()
	if n == 0 {
		return IdentityQuaternion
	}
	inv := 1 / n

	return UnitQuaternion{X: -q.X * inv, Y: -q.Y * inv, Z: -q.Z * inv, W: q.W * inv}
}

// Neg returns -q, the same rotation with the opposite sign.
func (q UnitQuaternion) Neg() UnitQuaternion {
	return UnitQuaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// Mul returns the Hamilton product q·o: the rotation that applies o first
// and then q. The product is not commutative.
func (q UnitQuaternion) Mul(o UnitQuaternion) UnitQuaternion {
	return UnitQuaternion{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Apply rotates v by q·v·q⁻¹, expanded into nine products of v with the
// precomputed quadratic terms. q is assumed unit length.
func (q UnitQuaternion) Apply(v vector.Vector3) vector.Vector3 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return vector.Vector3{
		X: (1-yy-zz)*v.X + (xy-wz)*v.Y + (xz+wy)*v.Z,
		Y: (xy+wz)*v.X + (1-xx-zz)*v.Y + (yz-wx)*v.Z,
		Z: (xz-wy)*v.X + (yz+wx)*v.Y + (1-xx-yy)*v.Z,
	}
}

// Angle returns the rotation angle in [0, π].
func (q UnitQuaternion) Angle() float64 {
	l := q.Length()
	if l == 0 {
		return 0
	}

	return 2 * scalar.SafeAcos(math.Abs(q.W)/l)
}

// AngleTo returns the angle in [0, π] of the rotation taking q to o.
func (q UnitQuaternion) AngleTo(o UnitQuaternion) float64 {
	return 2 * scalar.SafeAcos(math.Abs(q.Dot(o)))
}

// Equivalent reports whether q and o describe the same rotation within tol,
// treating q and -q as equal. Both are assumed unit length.
func (q UnitQuaternion) Equivalent(o UnitQuaternion, tol float64) bool {
	return scalar.NearlyEqual(math.Abs(q.Dot(o)), 1, tol)
}

// NearlyEqual compares components within tol without sign folding.
func (q UnitQuaternion) NearlyEqual(o UnitQuaternion, tol float64) bool {
	return scalar.NearlyEqual(q.X, o.X, tol) &&
		scalar.NearlyEqual(q.Y, o.Y, tol) &&
		scalar.NearlyEqual(q.Z, o.Z, tol) &&
		scalar.NearlyEqual(q.W, o.W, tol)
}

// AxisAngle converts q; see AxisAngleFromQuaternion.
func (q UnitQuaternion) AxisAngle() AxisAngle3 { return AxisAngleFromQuaternion(q) }

// Basis converts q; see BasisFromQuaternion.
func (q UnitQuaternion) Basis() OrthonormalBasis3 { return BasisFromQuaternion(q) }

// Matrix3 returns the rotation matrix of q.
func (q UnitQuaternion) Matrix3() matrix.Matrix3 { return BasisFromQuaternion(q).Matrix3() }

// String renders q as "(x, y, z; w)".
func (q UnitQuaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g; %g)", q.X, q.Y, q.Z, q.W)
}
