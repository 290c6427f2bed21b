// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// SymmetricEigen diagonalizes a symmetric Matrix3 with classical Jacobi
// rotations.
// Implementation:
//   - Stage 1: Validate symmetry within eps (WithEpsilon).
//   - Stage 2: Repeatedly zero the largest off-diagonal entry A[p,q] with a
//     plane rotation, accumulating the rotations into V.
//   - Stage 3: Stop when max|A[p,q]| <= tol·‖A‖_F (WithEigenTolerance) or
//     after maxIter rotations (WithMaxIterations).
//   - Stage 4: Sort eigenpairs by descending eigenvalue and flip the last
//     eigenvector if needed so that V is a proper rotation (det V = +1).
//
// Returns:
//   - [3]float64: eigenvalues, descending.
//   - Matrix3: eigenvectors as columns, right-handed.
//
// Errors:
//   - ErrAsymmetry   when m is not symmetric within eps.
//   - ErrEigenFailed when the iteration budget runs out.
//
// Determinism:
//   - Fixed pivot search order (row-major upper triangle); ties keep the first.
//
// Notes:
//   - Eigenvectors of a repeated eigenvalue are not unique; any orthonormal
//     basis of that eigenspace may be returned.
func (m Matrix3) SymmetricEigen(opts ...Option) ([3]float64, Matrix3, error) {
	o := gatherOptions(opts...)
	if !m.IsSymmetric(o.eps) {
		return [3]float64{}, Matrix3{}, matrixErrorf(opEigen, ErrAsymmetry)
	}

	var (
		a         = m
		v         = Identity3
		threshold = o.eigenTol * a.frobenius()
		converged bool
	)
	for iter := 0; iter < o.maxIter; iter++ {
		p, q, maxOff := a.largestOffDiagonal()
		if maxOff <= threshold {
			converged = true
			break
		}

		app, aqq, apq := a[p][p], a[q][q], a[p][q]
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := range 3 {
			if i == p || i == q {
				continue
			}
			aip, aiq := a[i][p], a[i][q]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			a[i][p], a[p][i] = nip, nip
			a[i][q], a[q][i] = niq, niq
		}
		a[p][p] = c*c*app - 2*c*s*apq + s*s*aqq
		a[q][q] = s*s*app + 2*c*s*apq + c*c*aqq
		a[p][q], a[q][p] = 0, 0

		for i := range 3 {
			vip, viq := v[i][p], v[i][q]
			v[i][p] = c*vip - s*viq
			v[i][q] = s*vip + c*viq
		}
	}
	if !converged {
		if _, _, maxOff := a.largestOffDiagonal(); maxOff > threshold {
			return [3]float64{}, Matrix3{}, matrixErrorf(opEigen, ErrEigenFailed)
		}
	}

	order := [3]int{0, 1, 2}
	sort.SliceStable(order[:], func(i, j int) bool {
		return a[order[i]][order[i]] > a[order[j]][order[j]]
	})

	var (
		values  [3]float64
		vectors Matrix3
	)
	for k, idx := range order {
		values[k] = a[idx][idx]
		vectors.SetColumn(k, v.Column(idx))
	}
	if vectors.Determinant() < 0 {
		vectors.SetColumn(2, vectors.Column(2).Neg())
	}

	return values, vectors, nil
}

// largestOffDiagonal returns the indices and magnitude of the largest
// |a[p][q]| with p < q.
func (m Matrix3) largestOffDiagonal() (p, q int, maxOff float64) {
	p, q = 0, 1
	for i := range 3 {
		for j := i + 1; j < 3; j++ {
			if off := math.Abs(m[i][j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return p, q, maxOff
}

func (m Matrix3) frobenius() float64 {
	var sum float64
	for i := range 3 {
		for j := range 3 {
			sum += m[i][j] * m[i][j]
		}
	}

	return math.Sqrt(sum)
}
