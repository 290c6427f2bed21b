// SPDX-License-Identifier: MIT

package interval

import "errors"

var (
	// ErrEmpty is returned when a bounding interval is requested for no values.
	ErrEmpty = errors.New("interval: no values")

	// ErrNonFinite is returned when a bounding value is NaN or ±Inf.
	ErrNonFinite = errors.New("interval: NaN or Inf encountered")
)
