// SPDX-License-Identifier: MIT

package rotation

import (
	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
)

// PrincipalAxes fits an orientation to a point cloud: X is the direction of
// largest variance, Z of smallest, and the basis is right-handed. The
// centroid is returned alongside.
//
// Stages:
//  1. Sample covariance and centroid (matrix.Covariance).
//  2. Jacobi eigen-decomposition, eigenpairs sorted by descending value.
//  3. Eigenvector columns become the axes.
//
// Errors (wrapped, match with errors.Is):
//   - matrix.ErrTooFewPoints for fewer than two points.
//   - matrix.ErrNaNInf for non-finite coordinates.
//   - matrix.ErrEigenFailed if the solver does not converge.
//
// Notes:
//   - Axes of equal variance (isotropic clouds) are any orthonormal
//     completion; the sign of each axis is arbitrary.
func PrincipalAxes(points []vector.Vector3, opts ...matrix.Option) (OrthonormalBasis3, vector.Vector3, error) {
	cov, mean, err := matrix.Covariance(points)
	if err != nil {
		return IdentityBasis, vector.Vector3{}, rotationErrorf(opPrincipalAxes, err)
	}
	_, vecs, err := cov.SymmetricEigen(opts...)
	if err != nil {
		return IdentityBasis, mean, rotationErrorf(opPrincipalAxes, err)
	}

	return basisFromColumns(vecs), mean, nil
}
