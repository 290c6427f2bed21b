// SPDX-License-Identifier: MIT

package interval

import "math"

// Union returns the smallest interval covering a and b, laid out with a's
// orientation (increasing when a is degenerate).
func Union(a, b Interval) Interval {
	lo := math.Min(a.Min(), b.Min())
	hi := math.Max(a.Max(), b.Max())

	return orient(a, lo, hi)
}

// Intersect returns the overlap of a and b, laid out with a's orientation.
// The boolean is false when the intervals are disjoint. Intervals that only
// touch intersect in a degenerate interval.
func Intersect(a, b Interval) (Interval, bool) {
	lo := math.Max(a.Min(), b.Min())
	hi := math.Min(a.Max(), b.Max())
	if lo > hi {
		return Interval{}, false
	}

	return orient(a, lo, hi), true
}

// Difference returns the parts of a not covered by b.
//
// Behavior highlights:
//   - 0 pieces when b covers a, 1 when b clips one end or misses a
//     entirely, 2 when b lies strictly inside a.
//   - Every piece carries a's orientation; pieces are ordered from a.A
//     towards a.B.
//   - Touching at a single point, or a degenerate b, removes nothing.
func Difference(a, b Interval) []Interval {
	alo, ahi := a.Min(), a.Max()
	blo, bhi := b.Min(), b.Max()

	// disjoint, touching or degenerate b: nothing of positive measure is removed
	if bhi <= alo || blo >= ahi || bhi == blo {
		return []Interval{a}
	}

	out := make([]Interval, 0, 2)
	if blo > alo {
		out = append(out, orient(a, alo, blo))
	}
	if bhi < ahi {
		out = append(out, orient(a, bhi, ahi))
	}
	if a.IsDecreasing() && len(out) == 2 {
		out[0], out[1] = out[1], out[0]
	}

	return out
}
