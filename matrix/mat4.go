// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/rigid/internal/scalar"
	"github.com/katalvlaran/rigid/vector"
)

// Matrix4 is a row-major 4×4 matrix. As an affine transform the linear
// part is the upper-left 3×3 block and the translation is column 3.
type Matrix4 [4][4]float64

// Identity4 is the 4×4 identity.
var Identity4 = Matrix4{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// FromRows4 builds a Matrix4 whose rows are r0..r3.
func FromRows4(r0, r1, r2, r3 vector.Vector4) Matrix4 {
	return Matrix4{r0.Components(), r1.Components(), r2.Components(), r3.Components()}
}

// FromColumns4 builds a Matrix4 whose columns are c0..c3.
func FromColumns4(c0, c1, c2, c3 vector.Vector4) Matrix4 {
	return FromRows4(c0, c1, c2, c3).Transpose()
}

// Compose returns the affine transform with linear part l and translation t.
func Compose(l Matrix3, t vector.Vector3) Matrix4 {
	return Matrix4{
		{l[0][0], l[0][1], l[0][2], t.X},
		{l[1][0], l[1][1], l[1][2], t.Y},
		{l[2][0], l[2][1], l[2][2], t.Z},
		{0, 0, 0, 1},
	}
}

// Translation returns the affine translation by t.
func Translation(t vector.Vector3) Matrix4 {
	return Compose(Identity3, t)
}

// ScaleMatrix returns the affine non-uniform scale by s.
func ScaleMatrix(s vector.Vector3) Matrix4 {
	return Diagonal3(s).Matrix4()
}

// FromMatrix4 narrows m to its linear block, dropping the translation
// column and the projective row.
func FromMatrix4(m Matrix4) Matrix3 {
	return m.Matrix3()
}

// Matrix3 returns the upper-left 3×3 block.
func (m Matrix4) Matrix3() Matrix3 {
	return Matrix3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// TranslationPart returns column 3 without the W entry.
func (m Matrix4) TranslationPart() vector.Vector3 {
	return vector.Vector3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// Row returns row i (0..3).
func (m Matrix4) Row(i int) vector.Vector4 {
	return vector.FromComponents4(m[i])
}

// Column returns column j (0..3).
func (m Matrix4) Column(j int) vector.Vector4 {
	return vector.Vector4{X: m[0][j], Y: m[1][j], Z: m[2][j], W: m[3][j]}
}

// Add returns m + o.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[i][j] + o[i][j]
		}
	}

	return out
}

// Sub returns m - o.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[i][j] - o[i][j]
		}
	}

	return out
}

// Scale returns s·m.
func (m Matrix4) Scale(s float64) Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[i][j] * s
		}
	}

	return out
}

// Mul returns m·o (o applied first).
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}

	return out
}

// Apply returns m·v.
func (m Matrix4) Apply(v vector.Vector4) vector.Vector4 {
	return vector.Vector4{
		X: m.Row(0).Dot(v),
		Y: m.Row(1).Dot(v),
		Z: m.Row(2).Dot(v),
		W: m.Row(3).Dot(v),
	}
}

// ApplyMatrix composes m with o by applying m to each column of o.
func (m Matrix4) ApplyMatrix(o Matrix4) Matrix4 {
	return FromColumns4(m.Apply(o.Column(0)), m.Apply(o.Column(1)), m.Apply(o.Column(2)), m.Apply(o.Column(3)))
}

// TransformPoint applies m to the point p (w = 1) and divides by the
// resulting w. False when that w is zero.
func (m Matrix4) TransformPoint(p vector.Vector3) (vector.Vector3, bool) {
	return m.Apply(p.Vector4(1)).Homogenize()
}

// TransformDirection applies m to the direction d (w = 0), ignoring translation.
func (m Matrix4) TransformDirection(d vector.Vector3) vector.Vector3 {
	return m.Apply(d.Vector4(0)).Vector3()
}

// Transpose returns mᵀ.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for i := range 4 {
		for j := range 4 {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Trace returns the sum of the diagonal.
func (m Matrix4) Trace() float64 {
	return m[0][0] + m[1][1] + m[2][2] + m[3][3]
}

// Submatrix returns the 3×3 matrix left after deleting row i and column j.
func (m Matrix4) Submatrix(i, j int) Matrix3 {
	var out Matrix3
	r := 0
	for si := range 4 {
		if si == i {
			continue
		}
		c := 0
		for sj := range 4 {
			if sj == j {
				continue
			}
			out[r][c] = m[si][sj]
			c++
		}
		r++
	}

	return out
}

// Minor returns the determinant of Submatrix(i, j).
func (m Matrix4) Minor(i, j int) float64 {
	return m.Submatrix(i, j).Determinant()
}

// Cofactor returns (-1)^(i+j)·Minor(i, j).
func (m Matrix4) Cofactor(i, j int) float64 {
	if (i+j)%2 == 1 {
		return -m.Minor(i, j)
	}

	return m.Minor(i, j)
}

// Adjugate returns the transposed cofactor matrix.
func (m Matrix4) Adjugate() Matrix4 {
	var adj Matrix4
	for i := range 4 {
		for j := range 4 {
			adj[j][i] = m.Cofactor(i, j)
		}
	}

	return adj
}

// Determinant is the cofactor expansion along the first row.
func (m Matrix4) Determinant() float64 {
	var det float64
	for j := range 4 {
		det += m[0][j] * m.Cofactor(0, j)
	}

	return det
}

// Inverse returns m⁻¹ = adj(m)/det(m) under the same singular policy as
// Matrix3.Inverse.
//
// Errors:
//   - ErrSingular (wrapped with "Inverse") when |det| <= eps or det is NaN.
func (m Matrix4) Inverse(opts ...Option) (Matrix4, error) {
	o := gatherOptions(opts...)

	adj := m.Adjugate()
	var det float64
	for j := range 4 {
		det += m[0][j] * adj[j][0]
	}
	if !(math.Abs(det) > o.singularEps) {
		return Matrix4{}, matrixErrorf(opInverse, ErrSingular)
	}

	return adj.Scale(1 / det), nil
}

// Invert replaces m with its inverse and reports success; m is untouched
// on failure.
func (m *Matrix4) Invert(opts ...Option) bool {
	inv, err := m.Inverse(opts...)
	if err != nil {
		return false
	}
	*m = inv

	return true
}

// NearlyEqual reports whether every entry differs by at most tol.
func (m Matrix4) NearlyEqual(o Matrix4, tol float64) bool {
	for i := range 4 {
		for j := range 4 {
			if !scalar.NearlyEqual(m[i][j], o[i][j], tol) {
				return false
			}
		}
	}

	return true
}

// String formats m one row per line.
func (m Matrix4) String() string {
	var sb strings.Builder
	for i := range 4 {
		fmt.Fprintf(&sb, "[%g, %g, %g, %g]\n", m[i][0], m[i][1], m[i][2], m[i][3])
	}

	return sb.String()
}
