// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rigid/internal/scalar"
	"github.com/katalvlaran/rigid/vector"
)

// Matrix3 is a row-major 3×3 matrix: m[i][j] is row i, column j.
type Matrix3 [3][3]float64

// Identity3 is the 3×3 identity.
var Identity3 = Matrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// FromRows3 builds a Matrix3 whose rows are r0, r1, r2.
func FromRows3(r0, r1, r2 vector.Vector3) Matrix3 {
	return Matrix3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// FromColumns3 builds a Matrix3 whose columns are c0, c1, c2.
func FromColumns3(c0, c1, c2 vector.Vector3) Matrix3 {
	return Matrix3{
		{c0.X, c1.X, c2.X},
		{c0.Y, c1.Y, c2.Y},
		{c0.Z, c1.Z, c2.Z},
	}
}

// Diagonal3 returns diag(d.X, d.Y, d.Z).
func Diagonal3(d vector.Vector3) Matrix3 {
	return Matrix3{
		{d.X, 0, 0},
		{0, d.Y, 0},
		{0, 0, d.Z},
	}
}

// Outer returns the outer product a·bᵀ.
func Outer(a, b vector.Vector3) Matrix3 {
	return FromRows3(b.Scale(a.X), b.Scale(a.Y), b.Scale(a.Z))
}

// Skew returns the cross-product matrix [v]ₓ, so Skew(v).Apply(w) == v×w.
func Skew(v vector.Vector3) Matrix3 {
	return Matrix3{
		{0, -v.Z, v.Y},
		{v.Z, 0, -v.X},
		{-v.Y, v.X, 0},
	}
}

// Row returns row i (0..2).
func (m Matrix3) Row(i int) vector.Vector3 {
	return vector.Vector3{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// Column returns column j (0..2).
func (m Matrix3) Column(j int) vector.Vector3 {
	return vector.Vector3{X: m[0][j], Y: m[1][j], Z: m[2][j]}
}

// SetRow overwrites row i.
func (m *Matrix3) SetRow(i int, v vector.Vector3) {
	m[i] = [3]float64{v.X, v.Y, v.Z}
}

// SetColumn overwrites column j.
func (m *Matrix3) SetColumn(j int, v vector.Vector3) {
	m[0][j], m[1][j], m[2][j] = v.X, v.Y, v.Z
}

// Rows returns the three rows.
func (m Matrix3) Rows() (r0, r1, r2 vector.Vector3) {
	return m.Row(0), m.Row(1), m.Row(2)
}

// Columns returns the three columns.
func (m Matrix3) Columns() (c0, c1, c2 vector.Vector3) {
	return m.Column(0), m.Column(1), m.Column(2)
}

// Add returns m + o.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][j] + o[i][j]
		}
	}

	return out
}

// Sub returns m - o.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][j] - o[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m Matrix3) Scale(s float64) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][j] * s
		}
	}

	return out
}

// Mul returns the matrix product m·o. Applying the result to a vector
// applies o first, then m.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range 3 {
		for j := range 3 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}

	return out
}

// Apply returns m·v: each component is a row of m dotted with v.
func (m Matrix3) Apply(v vector.Vector3) vector.Vector3 {
	return vector.Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// ApplyMatrix composes m with o by applying m to each column of o.
// The result equals m.Mul(o).
func (m Matrix3) ApplyMatrix(o Matrix3) Matrix3 {
	c0, c1, c2 := o.Columns()

	return FromColumns3(m.Apply(c0), m.Apply(c1), m.Apply(c2))
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Trace returns the sum of the diagonal.
func (m Matrix3) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2]
}

// Minor returns the determinant of the 2×2 matrix left after deleting
// row i and column j.
func (m Matrix3) Minor(i, j int) float64 {
	r0, r1 := skip3(i)
	c0, c1 := skip3(j)

	return m[r0][c0]*m[r1][c1] - m[r0][c1]*m[r1][c0]
}

// Cofactor returns (-1)^(i+j)·Minor(i, j).
func (m Matrix3) Cofactor(i, j int) float64 {
	if (i+j)%2 == 1 {
		return -m.Minor(i, j)
	}

	return m.Minor(i, j)
}

// Adjugate returns the transposed cofactor matrix.
func (m Matrix3) Adjugate() Matrix3 {
	var adj Matrix3
	for i := range 3 {
		for j := range 3 {
			adj[j][i] = m.Cofactor(i, j)
		}
	}

	return adj
}

// Determinant expands along the first row.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m⁻¹ computed as adj(m)/det(m).
//
// Behavior highlights:
//   - The nine minors are computed first; the determinant is then taken
//     from the first row of cofactors.
//   - |det| must exceed the singular tolerance (DefaultSingularEpsilon = 0,
//     override with WithSingularEpsilon). With the default, a nearly
//     singular matrix inverts successfully into large, unstable entries.
//
// Errors:
//   - ErrSingular (wrapped with "Inverse") when |det| <= eps or det is NaN.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m Matrix3) Inverse(opts ...Option) (Matrix3, error) {
	o := gatherOptions(opts...)

	adj := m.Adjugate()
	det := m[0][0]*adj[0][0] + m[0][1]*adj[1][0] + m[0][2]*adj[2][0]
	if !(math.Abs(det) > o.singularEps) {
		return Matrix3{}, matrixErrorf(opInverse, ErrSingular)
	}

	return adj.Scale(1 / det), nil
}

// Invert replaces m with its inverse and reports success. On failure m is
// left untouched.
func (m *Matrix3) Invert(opts ...Option) bool {
	inv, err := m.Inverse(opts...)
	if err != nil {
		return false
	}
	*m = inv

	return true
}

// IsSymmetric reports |m[i][j]-m[j][i]| <= tol for all off-diagonal pairs.
func (m Matrix3) IsSymmetric(tol float64) bool {
	return scalar.NearlyEqual(m[0][1], m[1][0], tol) &&
		scalar.NearlyEqual(m[0][2], m[2][0], tol) &&
		scalar.NearlyEqual(m[1][2], m[2][1], tol)
}

// IsOrthonormal reports whether the columns are unit length and mutually
// orthogonal within tol. Handedness is not checked; see Determinant.
func (m Matrix3) IsOrthonormal(tol float64) bool {
	return m.Transpose().Mul(m).NearlyEqual(Identity3, tol)
}

// NearlyEqual reports whether every entry differs by at most tol.
func (m Matrix3) NearlyEqual(o Matrix3, tol float64) bool {
	for i := range 3 {
		for j := range 3 {
			if !scalar.NearlyEqual(m[i][j], o[i][j], tol) {
				return false
			}
		}
	}

	return true
}

// Matrix4 widens m into an affine Matrix4 with zero translation.
func (m Matrix3) Matrix4() Matrix4 {
	return Compose(m, vector.Vector3{})
}

// String formats m one row per line, e.g. "[1, 0, 0]\n".
func (m Matrix3) String() string {
	var sb strings.Builder
	for i := range 3 {
		fmt.Fprintf(&sb, "[%g, %g, %g]\n", m[i][0], m[i][1], m[i][2])
	}

	return sb.String()
}

// skip3 returns the two indices of {0,1,2} other than k.
func skip3(k int) (int, int) {
	switch k {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
