package matrix_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/rigid/matrix"
	"github.com/katalvlaran/rigid/vector"
	"github.com/stretchr/testify/require"
)

// TestCovariance compares against a hand-computed sample covariance.
func TestCovariance(t *testing.T) {
	pts := []vector.Vector3{
		vector.New3(1, 0, 0),
		vector.New3(-1, 0, 0),
		vector.New3(0, 2, 0),
		vector.New3(0, -2, 0),
	}
	cov, mean, err := matrix.Covariance(pts)
	require.NoError(t, err)
	require.Equal(t, vector.Vector3{}, mean)

	want := matrix.Diagonal3(vector.New3(2.0/3, 8.0/3, 0))
	require.True(t, cov.NearlyEqual(want, tol), "got\n%v", cov)
	require.True(t, cov.IsSymmetric(0))

	cov2, mean2, err := matrix.CovarianceSeq(slices.Values(pts))
	require.NoError(t, err)
	require.Equal(t, cov, cov2)
	require.Equal(t, mean, mean2)
}

func TestCovarianceErrors(t *testing.T) {
	_, _, err := matrix.Covariance([]vector.Vector3{vector.UnitX})
	require.ErrorIs(t, err, matrix.ErrTooFewPoints)

	_, _, err = matrix.Covariance([]vector.Vector3{vector.UnitX, vector.New3(math.NaN(), 0, 0)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestJacobian differentiates a linear map (exact) and a non-linear one (approximate).
func TestJacobian(t *testing.T) {
	lin := func(v vector.Vector3) vector.Vector3 { return sample3.Apply(v) }
	j, err := matrix.Jacobian(lin, vector.New3(0.3, -2, 5), 1e-3)
	require.NoError(t, err)
	require.True(t, j.NearlyEqual(sample3, 1e-9), "got\n%v", j)

	f := func(v vector.Vector3) vector.Vector3 {
		return vector.New3(v.X*v.Y, math.Sin(v.Z), v.X*v.X)
	}
	x := vector.New3(1, 2, 0.5)
	j, err = matrix.Jacobian(f, x, 1e-5)
	require.NoError(t, err)
	want := matrix.Matrix3{
		{x.Y, x.X, 0},
		{0, 0, math.Cos(x.Z)},
		{2 * x.X, 0, 0},
	}
	require.True(t, j.NearlyEqual(want, 1e-8), "got\n%v", j)

	for _, h := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err = matrix.Jacobian(f, x, h)
		require.ErrorIs(t, err, matrix.ErrBadStep)
	}
}
