// Package rotation 🌀 provides three interchangeable encodings of a proper
// 3D rotation (an element of SO(3)):
//
//   - OrthonormalBasis3: the rotated X, Y and Z axes (right-handed, Z = X×Y).
//   - UnitQuaternion (alias Versor): X,Y,Z = axis·sin(θ/2), W = cos(θ/2).
//   - AxisAngle3: a unit axis and an angle in radians.
//
// What & Why:
//
//	Every encoding can build itself from the other two, compose, invert and
//	apply itself to a vector. Apply agrees across encodings of the same
//	rotation to numerical tolerance, and a round trip A → B → A returns A
//	(quaternions up to sign, since q and -q are the same rotation).
//
// Conversions:
//
//	rotation → rotation and rotation → matrix.Matrix3 are total functions and
//	are exposed as named methods (Quaternion, Basis, AxisAngle, Matrix3).
//	matrix.Matrix3 → rotation is partial: QuaternionFromMatrix3 and
//	BasisFromMatrix3 return ErrNotOrthonormal unless the input is a proper
//	rotation within DefaultEpsilon (see WithEpsilon).
//
// Degenerate input:
//
//	Constructors return the identity together with a sentinel error
//	(ErrZeroAxis, ErrZeroQuaternion, ErrZeroVector, ErrParallel) and never
//	panic. Unitize reports failure with a bool. Conversions FROM a value that
//	violates its own invariant (a non-unit axis, a non-unit quaternion, a
//	hand-built non-orthonormal basis) are not checked; gate them with
//	IsValid / IsOrthonormal.
//
// Composition order:
//
//	r0.Mul(r1) (quaternion) and r0.Compose(r1) (basis) apply r1 first and
//	then r0, matching the matrix product r0·r1.
//
// Interpolation:
//
//	Lerp, Nlerp and Slerp negate the target when the quaternion dot product
//	is negative, so they always follow the shorter arc.
package rotation
