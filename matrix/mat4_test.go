package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
	"github.com/stretchr/testify/require"
)

var sample4 = matrix.Matrix4{
	{4, 0, 0, 0},
	{0, 0, 2, 0},
	{0, 1, 2, 0},
	{1, 0, 0, 1},
}

// TestMatrix4Determinant checks the completed cofactor expansion.
func TestMatrix4Determinant(t *testing.T) {
	require.Equal(t, -8.0, sample4.Determinant())
	require.Equal(t, 1.0, matrix.Identity4.Determinant())

	affine := matrix.Compose(sample3, vector.New3(5, -2, 7))
	require.InDelta(t, sample3.Determinant(), affine.Determinant(), tol)

	dense := matrix.Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{2, 6, 4, 8},
		{3, 1, 1, 2},
	}
	require.InDelta(t, 72.0, dense.Determinant(), tol)
	require.InDelta(t, dense.Determinant(), dense.Transpose().Determinant(), tol)
}

// TestMatrix4Inverse checks M·M⁻¹ ≈ I and the singular sentinel.
func TestMatrix4Inverse(t *testing.T) {
	inv, err := sample4.Inverse()
	require.NoError(t, err)
	require.True(t, sample4.Mul(inv).NearlyEqual(matrix.Identity4, tol))

	tr := matrix.Translation(vector.New3(1, 2, 3))
	trInv, err := tr.Inverse()
	require.NoError(t, err)
	require.True(t, trInv.NearlyEqual(matrix.Translation(vector.New3(-1, -2, -3)), tol))

	var zero matrix.Matrix4
	_, err = zero.Inverse()
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.False(t, zero.Invert())

	m := sample4
	require.True(t, m.Invert())
	require.True(t, m.NearlyEqual(inv, 0))
}

func TestMatrix4Affine(t *testing.T) {
	rot := matrix.Matrix3{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}} // +90° about Z
	aff := matrix.Compose(rot, vector.New3(10, 0, 0))

	p, ok := aff.TransformPoint(vector.New3(1, 0, 0))
	require.True(t, ok)
	require.Equal(t, vector.New3(10, 1, 0), p)
	require.Equal(t, vector.New3(0, 1, 0), aff.TransformDirection(vector.New3(1, 0, 0)))

	require.Equal(t, rot, aff.Matrix3())
	require.Equal(t, rot, matrix.FromMatrix4(aff))
	require.Equal(t, vector.New3(10, 0, 0), aff.TranslationPart())
	require.Equal(t, matrix.Identity4, matrix.Identity3.Matrix4())

	s := matrix.ScaleMatrix(vector.New3(2, 3, 4))
	q, ok := s.TransformPoint(vector.New3(1, 1, 1))
	require.True(t, ok)
	require.Equal(t, vector.New3(2, 3, 4), q)

	proj := matrix.Identity4
	proj[3] = [4]float64{0, 0, 0, 0}
	_, ok = proj.TransformPoint(vector.New3(1, 1, 1))
	require.False(t, ok)
}

func TestMatrix4RowsColumns(t *testing.T) {
	r := [4]vector.Vector4{sample4.Row(0), sample4.Row(1), sample4.Row(2), sample4.Row(3)}
	require.Equal(t, sample4, matrix.FromRows4(r[0], r[1], r[2], r[3]))

	c := [4]vector.Vector4{sample4.Column(0), sample4.Column(1), sample4.Column(2), sample4.Column(3)}
	require.Equal(t, sample4, matrix.FromColumns4(c[0], c[1], c[2], c[3]))

	require.Equal(t, sample4.Mul(matrix.Identity4), sample4.ApplyMatrix(matrix.Identity4))
	require.Equal(t, sample4.Mul(sample4.Transpose()), sample4.ApplyMatrix(sample4.Transpose()))
	require.Equal(t, 7.0, sample4.Trace())
	require.Equal(t, sample4.Scale(2), sample4.Add(sample4))
	require.Equal(t, matrix.Matrix4{}, sample4.Sub(sample4))
}
