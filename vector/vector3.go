// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
)

// Vector3 is a 3-component vector of float64.
type Vector3 struct {
	X, Y, Z float64
}

// Axis-aligned constants.
var (
	Zero3 = Vector3{}
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

// New3 returns (x, y, z).
func New3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// FromComponents3 builds a Vector3 from an array.
func FromComponents3(c [3]float64) Vector3 { return Vector3{X: c[0], Y: c[1], Z: c[2]} }

// Components returns v as an array.
func (v Vector3) Components() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns s·v.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Mul returns the component-wise product.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div returns the component-wise quotient. Zero components of o yield ±Inf/NaN.
func (v Vector3) Div(o Vector3) Vector3 { return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns v·o.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v×o (right-handed).
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// SquareLength returns v·v.
func (v Vector3) SquareLength() float64 { return v.Dot(v) }

// Length returns the Euclidean norm. Nested Hypot keeps finite input from
// overflowing or underflowing in the squared sum.
func (v Vector3) Length() float64 { return math.Hypot(math.Hypot(v.X, v.Y), v.Z) }

// ManhattanLength returns |x|+|y|+|z|.
func (v Vector3) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z)
}

// Distance returns |v-o|.
func (v Vector3) Distance(o Vector3) float64 { return v.Sub(o).Length() }

// SquareDistance returns |v-o|².
func (v Vector3) SquareDistance(o Vector3) float64 { return v.Sub(o).SquareLength() }

// IsZero reports |v|² <= tol².
func (v Vector3) IsZero(tol float64) bool { return v.SquareLength() <= tol*tol }

// IsUnit reports ||v|-1| <= tol.
func (v Vector3) IsUnit(tol float64) bool { return scalar.NearlyEqual(v.Length(), 1, tol) }

// NearlyEqual reports whether every component differs by at most tol.
func (v Vector3) NearlyEqual(o Vector3, tol float64) bool {
	return scalar.NearlyEqual(v.X, o.X, tol) &&
		scalar.NearlyEqual(v.Y, o.Y, tol) &&
		scalar.NearlyEqual(v.Z, o.Z, tol)
}

// Unitize scales v in place to unit length. It returns false and leaves v
// untouched when the length is zero or not finite.
func (v *Vector3) Unitize() bool {
	l := v.Length()
	if l == 0 || !scalar.IsFinite(l) {
		return false
	}
	*v = Vector3{v.X / l, v.Y / l, v.Z / l}

	return true
}

// Unit returns v scaled to unit length, or (v, false) on zero length.
func (v Vector3) Unit() (Vector3, bool) {
	ok := v.Unitize()

	return v, ok
}

// Project returns the projection of v onto o: (v·o / o·o)·o.
// A zero o yields NaN components.
func (v Vector3) Project(o Vector3) Vector3 {
	return o.Scale(v.Dot(o) / o.Dot(o))
}

// Reject returns v minus its projection onto o.
func (v Vector3) Reject(o Vector3) Vector3 {
	return v.Sub(v.Project(o))
}

// Reflect mirrors v about the line spanned by o: 2·proj - v.
func (v Vector3) Reflect(o Vector3) Vector3 {
	return v.Project(o).Scale(2).Sub(v)
}

// MatchProjection returns the multiple s·v whose projection onto o equals o.
// s = (o·o)/(v·o); v orthogonal to o yields Inf/NaN.
func (v Vector3) MatchProjection(o Vector3) Vector3 {
	return v.Scale(o.Dot(o) / v.Dot(o))
}

// MatchProjectionOnto returns the multiple s·v whose projection onto onto
// equals the projection of o onto onto: s = (o·onto)/(v·onto).
func (v Vector3) MatchProjectionOnto(o, onto Vector3) Vector3 {
	return v.Scale(o.Dot(onto) / v.Dot(onto))
}

// Lerp returns v + (o-v)·t.
func (v Vector3) Lerp(o Vector3, t float64) Vector3 {
	return Vector3{
		scalar.Lerp(v.X, o.X, t),
		scalar.Lerp(v.Y, o.Y, t),
		scalar.Lerp(v.Z, o.Z, t),
	}
}

// Angle returns the angle between v and o in [0, π]. It is NaN iff either
// vector has zero length.
func (v Vector3) Angle(o Vector3) float64 {
	return scalar.SafeAcos(v.Dot(o) / (v.Length() * o.Length()))
}

// Slerp interpolates spherically from v to o.
func (v Vector3) Slerp(o Vector3, t float64) Vector3 {
	return v.SlerpAngle(o, t, v.Angle(o))
}

// SlerpAngle is Slerp with a precomputed angle between v and o.
// Antiparallel input turns through v.Perpendicular(); parallel input (or a
// zero vector) falls back to Lerp.
func (v Vector3) SlerpAngle(o Vector3, t, angle float64) Vector3 {
	s := math.Sin(angle)
	if math.Abs(s) < slerpEpsilon || math.IsNaN(s) {
		if p, ok := v.Perpendicular(); ok && math.Cos(angle) < 0 {
			return v.halfTurn(o, t, p.Scale(v.Length()))
		}

		return v.Lerp(o, t)
	}
	a := math.Sin((1-t)*angle) / s
	b := math.Sin(t*angle) / s

	return v.Scale(a).Add(o.Scale(b))
}

// halfTurn sweeps v through half a turn towards p, a vector orthogonal to v
// with the same length, blending the length from |v| to |o|.
func (v Vector3) halfTurn(o Vector3, t float64, p Vector3) Vector3 {
	lv := v.Length()
	if lv == 0 {
		return v.Lerp(o, t)
	}
	sin, cos := math.Sincos(t * math.Pi)
	k := scalar.Lerp(1, o.Length()/lv, t)

	return v.Scale(cos * k).Add(p.Scale(sin * k))
}

// Min returns the component-wise minimum.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z)}
}

// Abs returns the component-wise absolute value.
func (v Vector3) Abs() Vector3 { return Vector3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// MaxComponent returns the largest component.
func (v Vector3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// MinComponent returns the smallest component.
func (v Vector3) MinComponent() float64 { return math.Min(v.X, math.Min(v.Y, v.Z)) }

// Perpendicular returns a unit vector orthogonal to v.
// v is crossed with the coordinate axis it is least aligned with, which
// keeps the cross product well away from zero. False on zero-length v.
func (v Vector3) Perpendicular() (Vector3, bool) {
	a := v.Abs()
	axis := UnitX
	switch {
	case a.Y <= a.X && a.Y <= a.Z:
		axis = UnitY
	case a.Z <= a.X && a.Z <= a.Y:
		axis = UnitZ
	}

	return v.Cross(axis).Unit()
}

// ToSpherical returns (r, theta, phi): the length, the polar angle from +Z
// in [0, π] and the azimuth atan2(y, x) in (-π, π]. The zero vector maps to
// (0, 0, 0).
func (v Vector3) ToSpherical() (r, theta, phi float64) {
	r = v.Length()
	if r == 0 {
		return 0, 0, 0
	}
	theta = scalar.SafeAcos(v.Z / r)
	phi = math.Atan2(v.Y, v.X)

	return r, theta, phi
}

// FromSpherical is the inverse of ToSpherical.
func FromSpherical(r, theta, phi float64) Vector3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return Vector3{r * st * cp, r * st * sp, r * ct}
}

// Vector4 widens v with the given W.
func (v Vector3) Vector4(w float64) Vector4 { return Vector4{v.X, v.Y, v.Z, w} }

// String implements fmt.Stringer.
func (v Vector3) String() string { return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z) }
