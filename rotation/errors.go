// SPDX-License-Identifier: MIT
// Package rotation: sentinel error set.
// Constructors return these sentinels (wrapped with an operation tag via
// rotationErrorf) together with the identity rotation; callers match them
// with errors.Is. Numeric input never causes a panic.

package rotation

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroAxis is returned when an axis-angle is built from a zero-length axis.
	ErrZeroAxis = errors.New("rotation: zero-length axis")

	// ErrZeroQuaternion is returned when a quaternion with zero length is normalized.
	ErrZeroQuaternion = errors.New("rotation: zero-length quaternion")

	// ErrZeroVector is returned when a from/to rotation receives a zero-length vector.
	ErrZeroVector = errors.New("rotation: zero-length vector")

	// ErrParallel is returned when the two candidate axes of a basis are
	// parallel (or either is zero), so their cross product vanishes.
	ErrParallel = errors.New("rotation: parallel axes")

	// ErrNotOrthonormal is returned when a matrix is not a proper rotation
	// within the configured epsilon.
	ErrNotOrthonormal = errors.New("rotation: matrix is not orthonormal")

	// ErrNaNInf signals a NaN or ±Inf input.
	ErrNaNInf = errors.New("rotation: NaN or Inf encountered")
)

const (
	opNewAxisAngle  = "NewAxisAngle"
	opNewQuaternion = "NewQuaternion"
	opFromTo        = "FromTo"
	opNewBasis      = "NewBasis"
	opFromMatrix    = "FromMatrix3"
	opPrincipalAxes = "PrincipalAxes"
)

// rotationErrorf wraps a non-nil err with an operation tag.
func rotationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
