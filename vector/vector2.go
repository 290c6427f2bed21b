// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
)

// slerpEpsilon is the |sin(angle)| below which spherical interpolation
// degrades to linear interpolation.
const slerpEpsilon = 1e-12

// Vector2 is a 2-component vector of float64.
type Vector2 struct {
	X, Y float64
}

// Axis-aligned constants.
var (
	Zero2  = Vector2{}
	UnitX2 = Vector2{X: 1}
	UnitY2 = Vector2{Y: 1}
)

// New2 returns (x, y).
func New2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// FromComponents2 builds a Vector2 from an array.
func FromComponents2(c [2]float64) Vector2 { return Vector2{X: c[0], Y: c[1]} }

// Components returns v as an array.
func (v Vector2) Components() [2]float64 { return [2]float64{v.X, v.Y} }

// Add returns v+o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Scale returns v·s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Mul returns the component-wise product.
func (v Vector2) Mul(o Vector2) Vector2 { return Vector2{v.X * o.X, v.Y * o.Y} }

// Div returns the component-wise quotient.
func (v Vector2) Div(o Vector2) Vector2 { return Vector2{v.X / o.X, v.Y / o.Y} }

// Neg returns -v.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Dot returns v·o.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// SquareLength returns v·v.
func (v Vector2) SquareLength() float64 { return v.Dot(v) }

// Length returns the Euclidean norm without intermediate overflow.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// ManhattanLength returns |x|+|y|.
func (v Vector2) ManhattanLength() float64 { return math.Abs(v.X) + math.Abs(v.Y) }

// Distance returns |v-o|.
func (v Vector2) Distance(o Vector2) float64 { return v.Sub(o).Length() }

// SquareDistance returns |v-o|².
func (v Vector2) SquareDistance(o Vector2) float64 { return v.Sub(o).SquareLength() }

// Cross returns the z component of the 3D cross product of (v,0)×(o,0).
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

// Perp returns v rotated by +90°.
func (v Vector2) Perp() Vector2 { return Vector2{-v.Y, v.X} }

// IsZero reports |v|² <= tol².
func (v Vector2) IsZero(tol float64) bool { return v.SquareLength() <= tol*tol }

// IsUnit reports ||v|-1| <= tol.
func (v Vector2) IsUnit(tol float64) bool { return scalar.NearlyEqual(v.Length(), 1, tol) }

// NearlyEqual reports whether every component differs by at most tol.
func (v Vector2) NearlyEqual(o Vector2, tol float64) bool {
	return scalar.NearlyEqual(v.X, o.X, tol) && scalar.NearlyEqual(v.Y, o.Y, tol)
}

// Unitize scales v in place to unit length; false and untouched on zero length.
func (v *Vector2) Unitize() bool {
	l := v.Length()
	if l == 0 || !scalar.IsFinite(l) {
		return false
	}
	*v = Vector2{v.X / l, v.Y / l}

	return true
}

// Unit returns v scaled to unit length, or (v, false) on zero length.
func (v Vector2) Unit() (Vector2, bool) {
	ok := v.Unitize()

	return v, ok
}

// Project returns (v·o / o·o)·o.
func (v Vector2) Project(o Vector2) Vector2 { return o.Scale(v.Dot(o) / o.Dot(o)) }

// Reject returns v - proj(v onto o).
func (v Vector2) Reject(o Vector2) Vector2 { return v.Sub(v.Project(o)) }

// Reflect returns 2·proj(v onto o) - v.
func (v Vector2) Reflect(o Vector2) Vector2 { return v.Project(o).Scale(2).Sub(v) }

// MatchProjection returns s·v with proj(s·v onto o) == o.
func (v Vector2) MatchProjection(o Vector2) Vector2 {
	return v.Scale(o.Dot(o) / v.Dot(o))
}

// MatchProjectionOnto returns s·v with proj(s·v onto onto) == proj(o onto onto).
func (v Vector2) MatchProjectionOnto(o, onto Vector2) Vector2 {
	return v.Scale(o.Dot(onto) / v.Dot(onto))
}

// Lerp returns v + (o-v)·t.
func (v Vector2) Lerp(o Vector2, t float64) Vector2 {
	return Vector2{scalar.Lerp(v.X, o.X, t), scalar.Lerp(v.Y, o.Y, t)}
}

// Angle returns the unsigned angle between v and o in [0, π]; NaN on zero length.
func (v Vector2) Angle(o Vector2) float64 {
	return scalar.SafeAcos(v.Dot(o) / (v.Length() * o.Length()))
}

// Slerp interpolates spherically from v to o.
func (v Vector2) Slerp(o Vector2, t float64) Vector2 {
	return v.SlerpAngle(o, t, v.Angle(o))
}

// SlerpAngle is Slerp with a precomputed angle. Antiparallel input turns
// through Perp; other vanishing sin(angle) cases fall back to Lerp.
func (v Vector2) SlerpAngle(o Vector2, t, angle float64) Vector2 {
	s := math.Sin(angle)
	if math.Abs(s) < slerpEpsilon || math.IsNaN(s) {
		if math.Cos(angle) < 0 {
			return v.halfTurn(o, t, v.Perp())
		}

		return v.Lerp(o, t)
	}

	return v.Scale(math.Sin((1-t)*angle) / s).Add(o.Scale(math.Sin(t*angle) / s))
}

// halfTurn sweeps v through half a turn towards p, a vector orthogonal to v
// with the same length, blending the length from |v| to |o|.
func (v Vector2) halfTurn(o Vector2, t float64, p Vector2) Vector2 {
	lv := v.Length()
	if lv == 0 {
		return v.Lerp(o, t)
	}
	sin, cos := math.Sincos(t * math.Pi)
	k := scalar.Lerp(1, o.Length()/lv, t)

	return v.Scale(cos * k).Add(p.Scale(sin * k))
}

// Min returns the component-wise minimum.
func (v Vector2) Min(o Vector2) Vector2 { return Vector2{math.Min(v.X, o.X), math.Min(v.Y, o.Y)} }

// Max returns the component-wise maximum.
func (v Vector2) Max(o Vector2) Vector2 { return Vector2{math.Max(v.X, o.X), math.Max(v.Y, o.Y)} }

// Abs returns the component-wise absolute value.
func (v Vector2) Abs() Vector2 { return Vector2{math.Abs(v.X), math.Abs(v.Y)} }

// MaxComponent returns the largest component.
func (v Vector2) MaxComponent() float64 { return math.Max(v.X, v.Y) }

// MinComponent returns the smallest component.
func (v Vector2) MinComponent() float64 { return math.Min(v.X, v.Y) }

// Vector3 widens v with the given Z.
func (v Vector2) Vector3(z float64) Vector3 { return Vector3{v.X, v.Y, z} }

// String renders v as "(x, y)".
func (v Vector2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }
