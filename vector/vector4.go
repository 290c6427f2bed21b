// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rigid/internal/scalar"
)

// Vector4 is a 4-component vector of float64, also used for homogeneous
// coordinates.
type Vector4 struct {
	X, Y, Z, W float64
}

// Axis-aligned constants.
var (
	Zero4  = Vector4{}
	UnitX4 = Vector4{X: 1}
	UnitY4 = Vector4{Y: 1}
	UnitZ4 = Vector4{Z: 1}
	UnitW4 = Vector4{W: 1}
)

// New4 returns (x, y, z, w).
func New4(x, y, z, w float64) Vector4 { return Vector4{X: x, Y: y, Z: z, W: w} }

// FromComponents4 builds a Vector4 from an array.
func FromComponents4(c [4]float64) Vector4 { return Vector4{c[0], c[1], c[2], c[3]} }

// Components returns v as an array.
func (v Vector4) Components() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

// Add returns v+o.
func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v-o.
func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns v·s.
func (v Vector4) Scale(s float64) Vector4 {
	return Vector4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Mul returns the component-wise product.
func (v Vector4) Mul(o Vector4) Vector4 {
	return Vector4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div returns the component-wise quotient.
func (v Vector4) Div(o Vector4) Vector4 {
	return Vector4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

// Neg returns -v.
func (v Vector4) Neg() Vector4 { return Vector4{-v.X, -v.Y, -v.Z, -v.W} }

// Dot returns v·o.
func (v Vector4) Dot(o Vector4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// SquareLength returns v·v.
func (v Vector4) SquareLength() float64 { return v.Dot(v) }

// Length returns the Euclidean norm without intermediate overflow.
func (v Vector4) Length() float64 {
	return math.Hypot(math.Hypot(v.X, v.Y), math.Hypot(v.Z, v.W))
}

// ManhattanLength returns |x|+|y|+|z|+|w|.
func (v Vector4) ManhattanLength() float64 {
	return math.Abs(v.X) + math.Abs(v.Y) + math.Abs(v.Z) + math.Abs(v.W)
}

// Distance returns |v-o|.
func (v Vector4) Distance(o Vector4) float64 { return v.Sub(o).Length() }

// SquareDistance returns |v-o|².
func (v Vector4) SquareDistance(o Vector4) float64 { return v.Sub(o).SquareLength() }

// IsZero reports |v|² <= tol².
func (v Vector4) IsZero(tol float64) bool { return v.SquareLength() <= tol*tol }

// IsUnit reports ||v|-1| <= tol.
func (v Vector4) IsUnit(tol float64) bool { return scalar.NearlyEqual(v.Length(), 1, tol) }

// NearlyEqual reports whether every component differs by at most tol.
func (v Vector4) NearlyEqual(o Vector4, tol float64) bool {
	return scalar.NearlyEqual(v.X, o.X, tol) &&
		scalar.NearlyEqual(v.Y, o.Y, tol) &&
		scalar.NearlyEqual(v.Z, o.Z, tol) &&
		scalar.NearlyEqual(v.W, o.W, tol)
}

// Unitize scales v in place to unit length; false and untouched on zero length.
func (v *Vector4) Unitize() bool {
	l := v.Length()
	if l == 0 || !scalar.IsFinite(l) {
		return false
	}
	*v = Vector4{v.X / l, v.Y / l, v.Z / l, v.W / l}

	return true
}

// Unit returns v scaled to unit length, or (v, false) on zero length.
func (v Vector4) Unit() (Vector4, bool) {
	ok := v.Unitize()

	return v, ok
}

// Project returns (v·o / o·o)·o.
func (v Vector4) Project(o Vector4) Vector4 { return o.Scale(v.Dot(o) / o.Dot(o)) }

// Reject returns v - proj(v onto o).
func (v Vector4) Reject(o Vector4) Vector4 { return v.Sub(v.Project(o)) }

// Reflect returns 2·proj(v onto o) - v.
func (v Vector4) Reflect(o Vector4) Vector4 { return v.Project(o).Scale(2).Sub(v) }

// MatchProjection returns s·v with proj(s·v onto o) == o.
func (v Vector4) MatchProjection(o Vector4) Vector4 {
	return v.Scale(o.Dot(o) / v.Dot(o))
}

// MatchProjectionOnto returns s·v with proj(s·v onto onto) == proj(o onto onto).
func (v Vector4) MatchProjectionOnto(o, onto Vector4) Vector4 {
	return v.Scale(o.Dot(onto) / v.Dot(onto))
}

// Lerp returns v + (o-v)·t.
func (v Vector4) Lerp(o Vector4, t float64) Vector4 {
	return Vector4{
		scalar.Lerp(v.X, o.X, t),
		scalar.Lerp(v.Y, o.Y, t),
		scalar.Lerp(v.Z, o.Z, t),
		scalar.Lerp(v.W, o.W, t),
	}
}

// Angle returns the angle between v and o in [0, π]; NaN on zero length.
func (v Vector4) Angle(o Vector4) float64 {
	return scalar.SafeAcos(v.Dot(o) / (v.Length() * o.Length()))
}

// Slerp interpolates spherically from v to o.
func (v Vector4) Slerp(o Vector4, t float64) Vector4 {
	return v.SlerpAngle(o, t, v.Angle(o))
}

// SlerpAngle is Slerp with a precomputed angle. When sin(angle) vanishes,
// antiparallel input included, it falls back to Lerp: a 4D half turn has no
// preferred plane.
func (v Vector4) SlerpAngle(o Vector4, t, angle float64) Vector4 {
	s := math.Sin(angle)
	if math.Abs(s) < slerpEpsilon || math.IsNaN(s) {
		return v.Lerp(o, t)
	}

	return v.Scale(math.Sin((1-t)*angle) / s).Add(o.Scale(math.Sin(t*angle) / s))
}

// Min returns the component-wise minimum.
func (v Vector4) Min(o Vector4) Vector4 {
	return Vector4{math.Min(v.X, o.X), math.Min(v.Y, o.Y), math.Min(v.Z, o.Z), math.Min(v.W, o.W)}
}

// Max returns the component-wise maximum.
func (v Vector4) Max(o Vector4) Vector4 {
	return Vector4{math.Max(v.X, o.X), math.Max(v.Y, o.Y), math.Max(v.Z, o.Z), math.Max(v.W, o.W)}
}

// Abs returns the component-wise absolute value.
func (v Vector4) Abs() Vector4 {
	return Vector4{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)}
}

// MaxComponent returns the largest component.
func (v Vector4) MaxComponent() float64 {
	return math.Max(math.Max(v.X, v.Y), math.Max(v.Z, v.W))
}

// MinComponent returns the smallest component.
func (v Vector4) MinComponent() float64 {
	return math.Min(math.Min(v.X, v.Y), math.Min(v.Z, v.W))
}

// Vector3 drops W.
func (v Vector4) Vector3() Vector3 { return Vector3{v.X, v.Y, v.Z} }

// Homogenize divides XYZ by W. It returns false when W is zero (a direction,
// not a point).
func (v Vector4) Homogenize() (Vector3, bool) {
	if v.W == 0 {
		return Vector3{}, false
	}
	inv := 1 / v.W

	return Vector3{v.X * inv, v.Y * inv, v.Z * inv}, true
}

// String renders v as "(x, y, z, w)".
func (v Vector4) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", v.X, v.Y, v.Z, v.W)
}
