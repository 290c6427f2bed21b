// Package matrix offers fixed-size 3×3 and 4×4 float64 matrices.
//
// The matrix package provides:
//
//   - Matrix3 and Matrix4 value types (row-major arrays, m[row][col]) with
//     products, transposition, minors, cofactors, adjugates, determinants
//     and classical adjugate-based inversion.
//   - Builders from rows, columns, outer products, the sample covariance
//     of a point set and a central-difference Jacobian.
//   - SymmetricEigen, a cyclic Jacobi solver for symmetric Matrix3 input
//     (principal axes of a covariance).
//   - Affine helpers on Matrix4: translation, scaling, point and direction
//     transforms, and narrowing to the linear Matrix3 block.
//
// Matrices carry no invariants; a Matrix3 may be singular. Inversion never
// panics: Inverse returns ErrSingular and Invert returns false when
// |det| <= eps, where eps defaults to 0 (see WithSingularEpsilon).
//
// See the examples in this package for usage patterns.
package matrix
