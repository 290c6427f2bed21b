// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
)

// Interval is a directed range from A to B. A > B is legal and means the
// range is walked downwards; see Orientation.
type Interval struct {
	A float64 // start
	B float64 // end
}

// Unit is the increasing interval [0, 1].
var Unit = Interval{A: 0, B: 1}

// New returns the interval {a, b}. No reordering takes place.
func New(a, b float64) Interval {
	return Interval{A: a, B: b}
}

// FromValues returns the increasing interval bounding every value.
// A single value yields a degenerate interval.
//
// Errors:
//   - ErrEmpty when vals is empty.
//   - ErrNonFinite when any value is NaN or ±Inf.
func FromValues(vals ...float64) (Interval, error) {
	if len(vals) == 0 {
		return Interval{}, ErrEmpty
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range vals {
		if !scalar.IsFinite(v) {
			return Interval{}, fmt.Errorf("FromValues: value %d: %w", i, ErrNonFinite)
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return Interval{A: lo, B: hi}, nil
}

// Orientation returns sign(B-A): +1 increasing, -1 decreasing, 0 degenerate.
func (iv Interval) Orientation() int {
	return scalar.Sign(iv.B - iv.A)
}

// IsValid reports whether the interval has finite, distinct ends.
func (iv Interval) IsValid() bool {
	return iv.A != iv.B && scalar.IsFinite(iv.A) && scalar.IsFinite(iv.B)
}

// IsIncreasing reports A < B.
func (iv Interval) IsIncreasing() bool { return iv.A < iv.B }

// IsDecreasing reports A > B.
func (iv Interval) IsDecreasing() bool { return iv.A > iv.B }

// Min returns the smaller end.
func (iv Interval) Min() float64 { return math.Min(iv.A, iv.B) }

// Max returns the larger end.
func (iv Interval) Max() float64 { return math.Max(iv.A, iv.B) }

// Length returns B-A. It is negative for decreasing intervals.
func (iv Interval) Length() float64 { return iv.B - iv.A }

// Mid returns the midpoint.
func (iv Interval) Mid() float64 { return 0.5 * (iv.A + iv.B) }

// Evaluate maps the parameter t to A + (B-A)*t. t outside [0,1]
// extrapolates.
func (iv Interval) Evaluate(t float64) float64 {
	return scalar.Lerp(iv.A, iv.B, t)
}

// Normalize is the inverse of Evaluate: (t-A)/(B-A).
// On a degenerate interval the division yields ±Inf or NaN; callers check
// IsValid first.
func (iv Interval) Normalize(t float64) float64 {
	return (t - iv.A) / (iv.B - iv.A)
}

// Clamp limits t to the closed ascending bounds of iv.
func (iv Interval) Clamp(t float64) float64 {
	lo, hi := scalar.Ordered(iv.A, iv.B)

	return scalar.Clamp(t, lo, hi)
}

// Wrap maps t periodically into [min, max). A degenerate interval returns
// its single value.
func (iv Interval) Wrap(t float64) float64 {
	lo, hi := scalar.Ordered(iv.A, iv.B)
	span := hi - lo
	if span == 0 {
		return lo
	}

	r := math.Mod(t-lo, span)
	if r < 0 {
		r += span
	}
	// r += span and lo + r can round up onto the open end
	if w := lo + r; r < span && w < hi {
		return w
	}

	return lo
}

// Contains reports min < t < max.
func (iv Interval) Contains(t float64) bool {
	lo, hi := scalar.Ordered(iv.A, iv.B)

	return lo < t && t < hi
}

// ContainsIncl reports min <= t <= max.
func (iv Interval) ContainsIncl(t float64) bool {
	lo, hi := scalar.Ordered(iv.A, iv.B)

	return lo <= t && t <= hi
}

// ContainsInterval reports whether both ends of o lie within the closed
// bounds of iv. Orientation of either interval is irrelevant.
func (iv Interval) ContainsInterval(o Interval) bool {
	return iv.ContainsIncl(o.A) && iv.ContainsIncl(o.B)
}

// Overlaps reports whether the closed bounds of iv and o share a point.
func (iv Interval) Overlaps(o Interval) bool {
	_, ok := Intersect(iv, o)

	return ok
}

// Scale multiplies both ends by f. A negative f reverses the orientation.
func (iv Interval) Scale(f float64) Interval {
	return Interval{A: iv.A * f, B: iv.B * f}
}

// ScaleAbout scales both ends by f relative to pivot.
func (iv Interval) ScaleAbout(f, pivot float64) Interval {
	return Interval{A: pivot + (iv.A-pivot)*f, B: pivot + (iv.B-pivot)*f}
}

// Translate shifts both ends by d.
func (iv Interval) Translate(d float64) Interval {
	return Interval{A: iv.A + d, B: iv.B + d}
}

// Expand moves both ends outward by d with respect to the orientation.
// A degenerate interval expands as if increasing. A negative d shrinks;
// shrinking by more than half the length flips the interval.
func (iv Interval) Expand(d float64) Interval {
	o := float64(iv.Orientation())
	if o == 0 {
		o = 1
	}

	return Interval{A: iv.A - d*o, B: iv.B + d*o}
}

// Include grows iv minimally so that it covers t.
// The far end relative to the orientation moves; the orientation never
// flips. A degenerate interval becomes increasing.
func (iv Interval) Include(t float64) Interval {
	switch iv.Orientation() {
	case 1:
		return Interval{A: math.Min(iv.A, t), B: math.Max(iv.B, t)}
	case -1:
		return Interval{A: math.Max(iv.A, t), B: math.Min(iv.B, t)}
	default:
		lo, hi := scalar.Ordered(iv.A, t)
		return Interval{A: lo, B: hi}
	}
}

// Reverse swaps A and B.
func (iv Interval) Reverse() Interval {
	return Interval{A: iv.B, B: iv.A}
}

// String implements fmt.Stringer.
func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.A, iv.B)
}

// orient returns the ascending pair (lo, hi) laid out like ref.
func orient(ref Interval, lo, hi float64) Interval {
	if ref.IsDecreasing() {
		return Interval{A: hi, B: lo}
	}

	return Interval{A: lo, B: hi}
}
