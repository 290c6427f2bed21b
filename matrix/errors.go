// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Functions return these sentinels (optionally wrapped with an
// operation tag via matrixErrorf) and tests check them via errors.Is.
// Numeric input never causes a panic; panics are reserved for invalid
// option parameters (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency.
var (
	// ErrSingular is returned when the determinant does not exceed the
	// configured singular tolerance in absolute value.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrEigenFailed indicates that the Jacobi routine failed to converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrTooFewPoints is returned by covariance builders given fewer than
	// two points.
	ErrTooFewPoints = errors.New("matrix: at least two points required")

	// ErrBadStep is returned when a finite-difference step is not a
	// positive finite number.
	ErrBadStep = errors.New("matrix: step must be finite and > 0")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// Operation name constants for unified error wrapping.
const (
	opInverse    = "Inverse"
	opEigen      = "SymmetricEigen"
	opCovariance = "Covariance"
	opJacobian   = "Jacobian"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call it with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
