// Package matrix_test contains unit tests for the fixed-size matrices.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// sample3 is a well-conditioned, non-symmetric matrix with det = 49.
var sample3 = matrix.Matrix3{
	{2, -3, 1},
	{2, 0, -1},
	{1, 4, 5},
}

// TestRowsColumnsRoundTrip ensures FromRows3/FromColumns3 agree with Row/Column/Transpose.
func TestRowsColumnsRoundTrip(t *testing.T) {
	r0, r1, r2 := sample3.Rows()
	require.Equal(t, sample3, matrix.FromRows3(r0, r1, r2))

	c0, c1, c2 := sample3.Columns()
	require.Equal(t, sample3, matrix.FromColumns3(c0, c1, c2))
	require.Equal(t, sample3.Transpose(), matrix.FromRows3(c0, c1, c2))

	m := matrix.Identity3
	m.SetRow(1, vector.New3(7, 8, 9))
	m.SetColumn(0, vector.New3(-1, -2, -3))
	require.Equal(t, matrix.Matrix3{{-1, 0, 0}, {-2, 8, 9}, {-3, 0, 1}}, m)
}

// TestDeterminantTraceMinor verifies the cofactor expansion against hand values.
func TestDeterminantTraceMinor(t *testing.T) {
	require.Equal(t, 49.0, sample3.Determinant())
	require.Equal(t, 7.0, sample3.Trace())
	require.Equal(t, 4.0, sample3.Minor(0, 0))
	require.Equal(t, -11.0, sample3.Cofactor(0, 1))
	require.Equal(t, 1.0, matrix.Identity3.Determinant())

	// det via any row of cofactors matches
	for i := range 3 {
		var det float64
		for j := range 3 {
			det += sample3[i][j] * sample3.Cofactor(i, j)
		}
		require.InDelta(t, 49.0, det, tol)
	}
}

// TestInverse checks M·M⁻¹ ≈ I and the exact-zero singular policy.
func TestInverse(t *testing.T) {
	inv, err := sample3.Inverse()
	require.NoError(t, err)
	require.True(t, sample3.Mul(inv).NearlyEqual(matrix.Identity3, tol))
	require.True(t, inv.Mul(sample3).NearlyEqual(matrix.Identity3, tol))

	singular := matrix.Matrix3{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}
	require.Equal(t, 0.0, singular.Determinant())
	_, err = singular.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)

	// nearly singular: accepted by default, rejected with a tolerance
	near := matrix.Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1e-14}}
	_, err = near.Inverse()
	require.NoError(t, err)
	_, err = near.Inverse(matrix.WithSingularEpsilon(1e-10))
	require.ErrorIs(t, err, matrix.ErrSingular)

	nan := matrix.Matrix3{{math.NaN(), 0, 0}, {0, 1, 0}, {0, 0, 1}}
	_, err = nan.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInvertInPlace ensures the receiver is only replaced on success.
func TestInvertInPlace(t *testing.T) {
	m := sample3
	require.True(t, m.Invert())
	require.True(t, m.Mul(sample3).NearlyEqual(matrix.Identity3, tol))

	z := matrix.Matrix3{}
	require.False(t, z.Invert())
	require.Equal(t, matrix.Matrix3{}, z)

	s := matrix.Diagonal3(vector.New3(1, 1, 1e-12))
	before := s
	require.False(t, s.Invert(matrix.WithSingularEpsilon(1e-9)))
	require.Equal(t, before, s)
}

func TestApplyAndCompose(t *testing.T) {
	v := vector.New3(1, -1, 2)
	require.Equal(t, vector.New3(7, 0, 7), sample3.Apply(v))

	other := matrix.Matrix3{{0, 1, 0}, {-1, 0, 0}, {0, 0, 2}}
	require.Equal(t, sample3.Mul(other), sample3.ApplyMatrix(other))

	// (A·B)v == A(Bv)
	require.True(t, sample3.Mul(other).Apply(v).NearlyEqual(sample3.Apply(other.Apply(v)), tol))
}

func TestOuterSkew(t *testing.T) {
	a, b := vector.New3(1, 2, 3), vector.New3(-1, 0.5, 4)
	require.True(t, matrix.Skew(a).Apply(b).NearlyEqual(a.Cross(b), tol))
	require.Equal(t, a.Dot(b), matrix.Outer(a, b).Trace())
	require.Equal(t, matrix.Outer(b, a), matrix.Outer(a, b).Transpose())
}

func TestPredicates(t *testing.T) {
	require.True(t, matrix.Identity3.IsOrthonormal(tol))
	require.False(t, sample3.IsOrthonormal(tol))
	require.False(t, sample3.IsSymmetric(tol))
	require.True(t, sample3.Add(sample3.Transpose()).IsSymmetric(0))
	require.Equal(t, matrix.Matrix3{}, sample3.Sub(sample3))
	require.Equal(t, sample3.Add(sample3), sample3.Scale(2))
}

func TestMatrix3String(t *testing.T) {
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", matrix.Identity3.String())
}
