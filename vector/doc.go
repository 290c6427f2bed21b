// Package vector provides fixed-size float64 vector value types:
// Vector2, Vector3 and Vector4.
//
// What & Why:
//
//	The types carry no invariants. "Unit" and "zero" are derived predicates
//	that take a caller tolerance (IsUnit, IsZero); nothing is enforced at
//	construction. Every method has a value receiver and returns a new value,
//	except Unitize, which normalizes in place and reports success.
//
// Degenerate input policy:
//
//   - Unitize / Unit / Perpendicular return false on zero-length input and
//     leave the value untouched. They never panic, so hot loops can skip
//     degenerate items without branching on errors.
//   - Angle clamps the cosine to [-1,1] before acos, so inputs that are
//     parallel up to rounding never produce NaN. The result is NaN only
//     when one of the vectors has zero length.
//   - Project, Reject, Reflect and MatchProjection divide by a dot product
//     without checking it; a zero target yields NaN/Inf components.
//   - Length uses math.Hypot, so a finite non-zero vector never reports a
//     zero or infinite length, whatever its scale.
//   - Slerp of antiparallel Vector2/Vector3 input turns through a
//     perpendicular; parallel input, and any Vector4 with sin(angle) ≈ 0,
//     falls back to Lerp.
//
// Complexity:
//
//	Per-vector operations are O(1) and allocation-free. Centroid3 and
//	Centroid3Seq are O(n).
package vector
