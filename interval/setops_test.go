package interval_test

import (
	"testing"

	"github.com/katalvlaran/rigid/interval"
	"github.com/stretchr/testify/require"
)

// TestUnionTakesFirstOrientation verifies the cover and its layout.
func TestUnionTakesFirstOrientation(t *testing.T) {
	a := interval.New(5, 2)
	b := interval.New(0, 3)
	require.Equal(t, interval.New(5, 0), interval.Union(a, b))
	require.Equal(t, interval.New(0, 5), interval.Union(b, a))
	require.Equal(t, interval.New(1, 4), interval.Union(interval.New(1, 1), interval.New(4, 2)))
}

func TestIntersect(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Interval
		want interval.Interval
		ok   bool
	}{
		{"overlap", interval.New(0, 5), interval.New(3, 8), interval.New(3, 5), true},
		{"decreasing receiver", interval.New(5, 0), interval.New(8, 3), interval.New(5, 3), true},
		{"inside", interval.New(0, 10), interval.New(7, 2), interval.New(2, 7), true},
		{"touching", interval.New(0, 1), interval.New(1, 2), interval.New(1, 1), true},
		{"disjoint", interval.New(0, 1), interval.New(2, 3), interval.Interval{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := interval.Intersect(tc.a, tc.b)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.ok, tc.a.Overlaps(tc.b))
		})
	}
}

func TestDifference(t *testing.T) {
	cases := []struct {
		name string
		a, b interval.Interval
		want []interval.Interval
	}{
		{"disjoint", interval.New(0, 1), interval.New(2, 3), []interval.Interval{interval.New(0, 1)}},
		{"touching", interval.New(0, 1), interval.New(1, 3), []interval.Interval{interval.New(0, 1)}},
		{"covered", interval.New(1, 2), interval.New(0, 3), []interval.Interval{}},
		{"clip high", interval.New(0, 5), interval.New(3, 9), []interval.Interval{interval.New(0, 3)}},
		{"clip low", interval.New(0, 5), interval.New(-1, 2), []interval.Interval{interval.New(2, 5)}},
		{"split", interval.New(0, 10), interval.New(4, 6),
			[]interval.Interval{interval.New(0, 4), interval.New(6, 10)}},
		{"split decreasing", interval.New(10, 0), interval.New(4, 6),
			[]interval.Interval{interval.New(10, 6), interval.New(4, 0)}},
		{"degenerate inside", interval.New(0, 10), interval.New(5, 5), []interval.Interval{interval.New(0, 10)}},
		{"degenerate inside decreasing", interval.New(10, 0), interval.New(5, 5),
			[]interval.Interval{interval.New(10, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, interval.Difference(tc.a, tc.b))
		})
	}
}
