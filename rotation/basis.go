// SPDX-License-Identifier: MIT

package rotation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
)

// OrthonormalBasis3 holds the images of the unit axes under a rotation.
//
// Invariant (kept by the constructors, not by the type): X, Y and Z are
// unit length, mutually orthogonal and right-handed (Z = X×Y). Values
// assembled by hand must be checked with IsOrthonormal.
type OrthonormalBasis3 struct {
	X, Y, Z vector.Vector3
}

// IdentityBasis is the standard basis.
var IdentityBasis = OrthonormalBasis3{X: vector.UnitX, Y: vector.UnitY, Z: vector.UnitZ}

// NewBasis builds a right-handed basis whose X axis points along x and
// whose XY plane contains xy:
//
//	z = unit(x × xy), y = unit(z × x), x = unit(x)
//
// Errors:
//   - ErrParallel if x × xy is zero (x and xy parallel, or either zero).
//
// On error IdentityBasis is returned.
func NewBasis(x, xy vector.Vector3) (OrthonormalBasis3, error) {
	// unit inputs keep the cross products in range for any finite scale
	if !x.Unitize() || !xy.Unitize() {
		return IdentityBasis, rotationErrorf(opNewBasis, ErrParallel)
	}
	z := x.Cross(xy)
	if !z.Unitize() {
		return IdentityBasis, rotationErrorf(opNewBasis, ErrParallel)
	}
	y := z.Cross(x)
	y.Unitize()

	return OrthonormalBasis3{X: x, Y: y, Z: z}, nil
}

// BasisFromAxisAngle evaluates the closed-form rotation matrix
//
//	R = cosθ·I + sinθ·[k]ₓ + (1-cosθ)·k·kᵀ
//
// and returns its columns. The axis is assumed unit length.
func BasisFromAxisAngle(a AxisAngle3) OrthonormalBasis3 {
	s, c := math.Sincos(a.Angle)
	t := 1 - c
	x, y, z := a.Axis.X, a.Axis.Y, a.Axis.Z

	return OrthonormalBasis3{
		X: vector.Vector3{X: t*x*x + c, Y: t*x*y + s*z, Z: t*x*z - s*y},
		Y: vector.Vector3{X: t*x*y - s*z, Y: t*y*y + c, Z: t*y*z + s*x},
		Z: vector.Vector3{X: t*x*z + s*y, Y: t*y*z - s*x, Z: t*z*z + c},
	}
}

// BasisFromQuaternion returns the columns of the rotation matrix of q.
// q is assumed unit length.
func BasisFromQuaternion(q UnitQuaternion) OrthonormalBasis3 {
	x2, y2, z2 := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	xx, yy, zz := q.X*x2, q.Y*y2, q.Z*z2
	xy, xz, yz := q.X*y2, q.X*z2, q.Y*z2
	wx, wy, wz := q.W*x2, q.W*y2, q.W*z2

	return OrthonormalBasis3{
		X: vector.Vector3{X: 1 - yy - zz, Y: xy + wz, Z: xz - wy},
		Y: vector.Vector3{X: xy - wz, Y: 1 - xx - zz, Z: yz + wx},
		Z: vector.Vector3{X: xz + wy, Y: yz - wx, Z: 1 - xx - yy},
	}
}

// BasisFromMatrix3 reads the axes from the columns of m.
//
// Errors:
//   - ErrNotOrthonormal unless mᵀm ≈ I within eps and det(m) > 0.
func BasisFromMatrix3(m matrix.Matrix3, opts ...Option) (OrthonormalBasis3, error) {
	o := gatherOptions(opts...)
	if !properRotation(m, o.eps) {
		return IdentityBasis, rotationErrorf(opFromMatrix, ErrNotOrthonormal)
	}

	return basisFromColumns(m), nil
}

func basisFromColumns(m matrix.Matrix3) OrthonormalBasis3 {
	return OrthonormalBasis3{X: m.Column(0), Y: m.Column(1), Z: m.Column(2)}
}

// IsValid reports |X|² > 0. It is a cheap necessary condition only; use
// IsOrthonormal for the full invariant.
func (b OrthonormalBasis3) IsValid() bool { return b.X.SquareLength() > 0 }

// IsOrthonormal reports whether the axes are unit, orthogonal and
// right-handed within eps.
func (b OrthonormalBasis3) IsOrthonormal(opts ...Option) bool {
	o := gatherOptions(opts...)

	return properRotation(b.Matrix3(), o.eps)
}

// Inverse returns the transposed basis.
func (b OrthonormalBasis3) Inverse() OrthonormalBasis3 {
	return OrthonormalBasis3{
		X: vector.Vector3{X: b.X.X, Y: b.Y.X, Z: b.Z.X},
		Y: vector.Vector3{X: b.X.Y, Y: b.Y.Y, Z: b.Z.Y},
		Z: vector.Vector3{X: b.X.Z, Y: b.Y.Z, Z: b.Z.Z},
	}
}

// Apply returns X·v.X + Y·v.Y + Z·v.Z.
func (b OrthonormalBasis3) Apply(v vector.Vector3) vector.Vector3 {
	return vector.Vector3{
		X: b.X.X*v.X + b.Y.X*v.Y + b.Z.X*v.Z,
		Y: b.X.Y*v.X + b.Y.Y*v.Y + b.Z.Y*v.Z,
		Z: b.X.Z*v.X + b.Y.Z*v.Y + b.Z.Z*v.Z,
	}
}

// Compose rotates the axes of o by b: the result applies o first, then b.
func (b OrthonormalBasis3) Compose(o OrthonormalBasis3) OrthonormalBasis3 {
	return OrthonormalBasis3{X: b.Apply(o.X), Y: b.Apply(o.Y), Z: b.Apply(o.Z)}
}

// NearlyEqual compares every axis component within tol.
func (b OrthonormalBasis3) NearlyEqual(o OrthonormalBasis3, tol float64) bool {
	return b.X.NearlyEqual(o.X, tol) && b.Y.NearlyEqual(o.Y, tol) && b.Z.NearlyEqual(o.Z, tol)
}

// Quaternion converts b; see QuaternionFromBasis.
func (b OrthonormalBasis3) Quaternion() UnitQuaternion { return QuaternionFromBasis(b) }

// AxisAngle converts b; see AxisAngleFromBasis.
func (b OrthonormalBasis3) AxisAngle() AxisAngle3 { return AxisAngleFromBasis(b) }

// Matrix3 returns the matrix whose columns are X, Y and Z.
func (b OrthonormalBasis3) Matrix3() matrix.Matrix3 { return matrix.FromColumns3(b.X, b.Y, b.Z) }

// String renders the three axes.
func (b OrthonormalBasis3) String() string {
	return fmt.Sprintf("{X:%v Y:%v Z:%v}", b.X, b.Y, b.Z)
}
