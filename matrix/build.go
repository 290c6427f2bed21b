// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/rigid/internal/scalar"
	"github.com/katalvlaran/rigid/vector"
)

// Covariance returns the sample covariance (divided by n-1) of points and
// their centroid.
// Implementation:
//   - Stage 1: Validate n >= 2.
//   - Stage 2: Center on the centroid.
//   - Stage 3: Accumulate the upper triangle of Σ dᵢdᵢᵀ, mirror it, scale by 1/(n-1).
//
// Behavior highlights:
//   - The result is exactly symmetric (mirrored, not recomputed).
//
// Errors:
//   - ErrTooFewPoints when len(points) < 2.
//   - ErrNaNInf when a point has a non-finite component.
//
// Complexity:
//   - Time O(n), Space O(1).
func Covariance(points []vector.Vector3) (Matrix3, vector.Vector3, error) {
	if len(points) < 2 {
		return Matrix3{}, vector.Vector3{}, matrixErrorf(opCovariance, ErrTooFewPoints)
	}
	for i, p := range points {
		if !scalar.IsFinite(p.X) || !scalar.IsFinite(p.Y) || !scalar.IsFinite(p.Z) {
			return Matrix3{}, vector.Vector3{}, matrixErrorf(opCovariance, fmt.Errorf("point %d: %w", i, ErrNaNInf))
		}
	}

	mean, _ := vector.Centroid3(points)

	var c Matrix3
	for _, p := range points {
		d := p.Sub(mean)
		c[0][0] += d.X * d.X
		c[0][1] += d.X * d.Y
		c[0][2] += d.X * d.Z
		c[1][1] += d.Y * d.Y
		c[1][2] += d.Y * d.Z
		c[2][2] += d.Z * d.Z
	}
	c[1][0], c[2][0], c[2][1] = c[0][1], c[0][2], c[1][2]

	return c.Scale(1 / float64(len(points)-1)), mean, nil
}

// CovarianceSeq is Covariance over an iterator. The sequence is collected
// once.
func CovarianceSeq(points iter.Seq[vector.Vector3]) (Matrix3, vector.Vector3, error) {
	return Covariance(slices.Collect(points))
}

// Jacobian approximates the derivative of f at x by central differences
// with step h: column j is (f(x+h·eⱼ) - f(x-h·eⱼ)) / 2h.
//
// Errors:
//   - ErrBadStep when h is not finite and positive.
func Jacobian(f func(vector.Vector3) vector.Vector3, x vector.Vector3, h float64) (Matrix3, error) {
	if !scalar.IsFinite(h) || h <= 0 {
		return Matrix3{}, matrixErrorf(opJacobian, ErrBadStep)
	}

	inv := 1 / (2 * h)
	axes := [3]vector.Vector3{vector.UnitX, vector.UnitY, vector.UnitZ}

	var cols [3]vector.Vector3
	for j, e := range axes {
		step := e.Scale(h)
		cols[j] = f(x.Add(step)).Sub(f(x.Sub(step))).Scale(inv)
	}

	return FromColumns3(cols[0], cols[1], cols[2]), nil
}
