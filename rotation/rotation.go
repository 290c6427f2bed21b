// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
)

// Rotation is the behaviour shared by every encoding.
type Rotation interface {
	// Apply rotates v.
	Apply(v vector.Vector3) vector.Vector3
	// Matrix3 widens the rotation to its 3×3 matrix.
	Matrix3() matrix.Matrix3
}

var (
	_ Rotation = AxisAngle3{}
	_ Rotation = UnitQuaternion{}
	_ Rotation = OrthonormalBasis3{}
)

// properRotation reports whether m is orthonormal within eps and right-handed.
func properRotation(m matrix.Matrix3, eps float64) bool {
	return m.IsOrthonormal(eps) && m.Determinant() > 0
}
