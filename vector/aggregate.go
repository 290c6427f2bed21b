// SPDX-License-Identifier: MIT

package vector

import (
	"iter"
	"slices"

	"deedles.dev/xiter"
)

// Centroid3 returns the arithmetic mean of points. False when points is empty.
func Centroid3(points []Vector3) (Vector3, bool) {
	return Centroid3Seq(slices.Values(points))
}

// Centroid3Seq is Centroid3 over an iterator. The sequence is consumed once.
func Centroid3Seq(points iter.Seq[Vector3]) (Vector3, bool) {
	var (
		sum Vector3
		n   int
	)
	for i, p := range xiter.Enumerate(points) {
		sum = sum.Add(p)
		n = i + 1
	}
	if n == 0 {
		return Vector3{}, false
	}

	return sum.Scale(1 / float64(n)), true
}
