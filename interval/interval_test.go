package interval_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rigid/interval"
	"github.com/stretchr/testify/require"
)

// TestOrientationAndValidity covers increasing, decreasing and degenerate intervals.
func TestOrientationAndValidity(t *testing.T) {
	cases := []struct {
		name  string
		iv    interval.Interval
		ori   int
		valid bool
	}{
		{"increasing", interval.New(1, 4), 1, true},
		{"decreasing", interval.New(5, 2), -1, true},
		{"degenerate", interval.New(3, 3), 0, false},
		{"nan end", interval.New(0, math.NaN()), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.ori, tc.iv.Orientation())
			require.Equal(t, tc.valid, tc.iv.IsValid())
		})
	}
}

// TestNormalizeDecreasing pins the direction-preserving mapping of a reversed interval.
func TestNormalizeDecreasing(t *testing.T) {
	iv := interval.New(5, 2)
	require.Equal(t, 1.0, iv.Normalize(2))
	require.Equal(t, 0.0, iv.Normalize(5))
	require.Equal(t, 5.0, iv.Evaluate(0))
	require.Equal(t, 2.0, iv.Evaluate(1))
	require.InDelta(t, 3.5, iv.Evaluate(0.5), 1e-15)
}

// TestNormalizeEvaluateRoundTrip checks Normalize(Evaluate(t)) ≈ t for valid intervals.
func TestNormalizeEvaluateRoundTrip(t *testing.T) {
	ivs := []interval.Interval{
		interval.New(0, 1),
		interval.New(5, 2),
		interval.New(-1e3, 7.25),
		interval.New(10, -10),
	}
	ts := []float64{-2, -0.5, 0, 0.125, 0.5, 0.99, 1, 3.75}
	for _, iv := range ivs {
		for _, p := range ts {
			require.InDelta(t, p, iv.Normalize(iv.Evaluate(p)), 1e-12, "iv=%v t=%v", iv, p)
		}
	}
}

// TestNormalizeDegenerate documents NaN/Inf propagation instead of an error.
func TestNormalizeDegenerate(t *testing.T) {
	iv := interval.New(2, 2)
	require.True(t, math.IsInf(iv.Normalize(3), 1))
	require.True(t, math.IsNaN(iv.Normalize(2)))
}

// TestClampContainsOrientationAware verifies identical behavior for both stored orders.
func TestClampContainsOrientationAware(t *testing.T) {
	up := interval.New(2, 5)
	down := up.Reverse()

	for _, x := range []float64{0, 2, 3.3, 5, 9} {
		require.Equal(t, up.Clamp(x), down.Clamp(x))
		require.Equal(t, up.Contains(x), down.Contains(x))
		require.Equal(t, up.ContainsIncl(x), down.ContainsIncl(x))
	}

	require.Equal(t, 2.0, down.Clamp(-1))
	require.Equal(t, 5.0, down.Clamp(6))
	require.False(t, down.Contains(5))
	require.True(t, down.ContainsIncl(5))
	require.True(t, down.Contains(4.999))
}

func TestWrap(t *testing.T) {
	iv := interval.New(10, 0)
	require.InDelta(t, 3.0, iv.Wrap(13), 1e-12)
	require.InDelta(t, 7.0, iv.Wrap(-3), 1e-12)
	require.InDelta(t, 0.0, iv.Wrap(10), 1e-12)
	require.Equal(t, 4.0, interval.New(4, 4).Wrap(100))

	// a tiny negative offset must not round up onto the open end
	unit := interval.New(0, 1)
	require.Equal(t, 0.0, unit.Wrap(-1e-20))
	for _, x := range []float64{-1e-20, -1e-17, -3 - 1e-16, 0.1 - 1e-17, 1e300} {
		w := unit.Wrap(x)
		require.GreaterOrEqual(t, w, 0.0)
		require.Less(t, w, 1.0, "Wrap(%g)", x)
	}
}

// TestIncludeNeverShrinks checks growth, orientation preservation and containment afterwards.
func TestIncludeNeverShrinks(t *testing.T) {
	ivs := []interval.Interval{
		interval.New(0, 1),
		interval.New(5, 2),
		interval.New(3, 3),
	}
	xs := []float64{-4, 0, 0.5, 2, 3, 4.5, 5, 12}
	for _, iv := range ivs {
		for _, x := range xs {
			got := iv.Include(x)
			require.GreaterOrEqual(t, math.Abs(got.Length()), math.Abs(iv.Length()))
			require.True(t, got.ContainsIncl(x))
			require.True(t, got.ContainsInterval(iv))
			if iv.Orientation() != 0 {
				require.Equal(t, iv.Orientation(), got.Orientation())
			}
		}
	}

	require.Equal(t, interval.New(10, 2), interval.New(5, 2).Include(10))
	require.Equal(t, interval.New(5, -1), interval.New(5, 2).Include(-1))
	require.Equal(t, interval.New(1, 3), interval.New(3, 3).Include(1))
}

func TestExpandTranslateScale(t *testing.T) {
	require.Equal(t, interval.New(-1, 6), interval.New(0, 5).Expand(1))
	require.Equal(t, interval.New(6, -1), interval.New(5, 0).Expand(1))
	require.Equal(t, interval.New(1, 5), interval.New(3, 3).Expand(2))
	require.Equal(t, interval.New(1, 4), interval.New(0, 5).Expand(-1))

	require.Equal(t, interval.New(3, 0), interval.New(1, -2).Translate(2))
	require.Equal(t, interval.New(2, -4), interval.New(1, -2).Scale(2))
	require.Equal(t, interval.New(0, 4), interval.New(1, 3).ScaleAbout(2, 2))
}

func TestFromValues(t *testing.T) {
	iv, err := interval.FromValues(3, -1, 8, 2)
	require.NoError(t, err)
	require.Equal(t, interval.New(-1, 8), iv)

	_, err = interval.FromValues()
	require.ErrorIs(t, err, interval.ErrEmpty)

	_, err = interval.FromValues(1, math.Inf(1))
	require.ErrorIs(t, err, interval.ErrNonFinite)
}

func TestMinMaxMid(t *testing.T) {
	iv := interval.New(7, -3)
	require.Equal(t, -3.0, iv.Min())
	require.Equal(t, 7.0, iv.Max())
	require.Equal(t, 2.0, iv.Mid())
	require.Equal(t, -10.0, iv.Length())
	require.True(t, iv.IsDecreasing())
	require.False(t, iv.IsIncreasing())
	require.Equal(t, "[7, -3]", iv.String())
}
