package rotation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rigid/rotation"
	"github.com/katalvlaran/rigid/vector"
	"github.com/stretchr/testify/require"
)

// TestBasisFromToAxes maps X onto Y and keeps the rotation axis Z fixed.
func TestBasisFromToAxes(t *testing.T) {
	b, err := rotation.BasisFromTo(vector.New3(1, 0, 0), vector.New3(0, 1, 0))
	require.NoError(t, err)
	requireVec3(t, vector.New3(0, 1, 0), b.Apply(vector.New3(1, 0, 0)), tol)
	requireVec3(t, vector.New3(0, 0, 1), b.Apply(vector.New3(0, 0, 1)), tol)
	require.True(t, b.IsOrthonormal())

	q, err := rotation.QuaternionFromTo(vector.New3(1, 0, 0), vector.New3(0, 1, 0))
	require.NoError(t, err)
	require.True(t, q.Basis().NearlyEqual(b, tol))
	require.InDelta(t, math.Pi/2, q.Angle(), tol)
}

// TestQuaternionFromToAntiparallel needs a genuine half turn, not the
// identity and not NaN.
func TestQuaternionFromToAntiparallel(t *testing.T) {
	from := vector.New3(1, 0, 0)
	q, err := rotation.QuaternionFromTo(from, vector.New3(-1, 0, 0))
	require.NoError(t, err)

	require.True(t, q.IsValid())
	require.InDelta(t, math.Pi, q.Angle(), tol)
	require.False(t, q.Equivalent(rotation.IdentityQuaternion, tol))
	for _, c := range q.Vector4().Components() {
		require.False(t, math.IsNaN(c))
	}

	aa := q.AxisAngle()
	require.InDelta(t, 0, aa.Axis.Dot(from), tol)
	require.True(t, aa.Axis.IsUnit(tol))
	requireVec3(t, from.Neg(), q.Apply(from), tol)

	b, err := rotation.BasisFromTo(from, from.Neg())
	require.NoError(t, err)
	require.True(t, b.IsOrthonormal())
	requireVec3(t, from.Neg(), b.Apply(from), tol)
}

// TestFromToGeneric sweeps pairs from parallel through nearly antiparallel.
func TestFromToGeneric(t *testing.T) {
	pairs := [][2]vector.Vector3{
		{vector.New3(1, 2, 3), vector.New3(1, 2, 3)},
		{vector.New3(1, 2, 3), vector.New3(2, 4, 6)},
		{vector.New3(1, 2, 3), vector.New3(-3, 0.5, 2)},
		{vector.New3(0, 0, 5), vector.New3(0, 1, 0)},
		{vector.New3(1, 0, 0), vector.New3(-1, 1e-5, 0)},
		{vector.New3(1, 0, 0), vector.New3(-1, 1e-9, 0)},
		{vector.New3(0, 1, 1), vector.New3(0, -1, -1)},
		{vector.New3(2, -1, 0.5), vector.New3(-2, 1, -0.5)},
	}
	for _, p := range pairs {
		f, _ := p[0].Unit()
		want, _ := p[1].Unit()

		q, err := rotation.QuaternionFromTo(p[0], p[1])
		require.NoError(t, err)
		require.True(t, q.IsValid())
		requireVec3(t, want, q.Apply(f), tol)

		b, err := rotation.BasisFromTo(p[0], p[1])
		require.NoError(t, err)
		require.True(t, b.IsOrthonormal())
		requireVec3(t, want, b.Apply(f), tol)
	}

	q, err := rotation.QuaternionFromTo(vector.New3(0, 3, 0), vector.New3(0, 1, 0))
	require.NoError(t, err)
	require.Equal(t, rotation.IdentityQuaternion, q)
}

func TestFromToZeroVector(t *testing.T) {
	q, err := rotation.QuaternionFromTo(vector.Zero3, vector.UnitX)
	require.ErrorIs(t, err, rotation.ErrZeroVector)
	require.Equal(t, rotation.IdentityQuaternion, q)

	b, err := rotation.BasisFromTo(vector.UnitX, vector.Zero3)
	require.ErrorIs(t, err, rotation.ErrZeroVector)
	require.Equal(t, rotation.IdentityBasis, b)
}
