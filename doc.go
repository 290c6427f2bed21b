// Package rigid is a small numeric kernel for 3D geometry: vectors,
// fixed-size matrices, rigid rotations and one-dimensional intervals.
//
// 🚀 What is rigid?
//
//	A pure-Go set of value types, allocation-free outside of the few
//	slice-returning helpers (interval.Difference, matrix.CovarianceSeq),
//	that brings together:
//		• Vectors: Vector2, Vector3, Vector4 with projection, reflection,
//		  spherical interpolation and perpendicular helpers
//		• Matrices: Matrix3, Matrix4 with cofactor determinants, adjugate
//		  inversion, affine transforms, covariance and a Jacobi eigen solver
//		• Rotations: OrthonormalBasis3, UnitQuaternion and AxisAngle3, each
//		  convertible to the others, composable and invertible
//		• Intervals: directed ranges with orientation-aware remapping,
//		  clamping, wrapping and inclusion
//
// ✨ Guarantees
//
//   - Never panics on numeric input: degenerate cases return a bool flag
//     (Unitize, Invert) or a sentinel error (constructors, Inverse).
//   - acos-based angles are clamped, so near-parallel input is never NaN.
//   - Every Apply agrees across rotation encodings to 1e-9.
//
// Under the hood, everything is organized under four subpackages:
//
//	interval/ — Interval: directed 1D range, Normalize/Evaluate, set ops
//	vector/   — Vector2, Vector3, Vector4 and centroid helpers
//	matrix/   — Matrix3, Matrix4, covariance, Jacobian, SymmetricEigen
//	rotation/ — OrthonormalBasis3, UnitQuaternion (Versor), AxisAngle3
//
// Dependency direction:
//
//	interval        (standalone)
//	vector ← matrix ← rotation
//
//	go get github.com/katalvlaran/rigid
package rigid
