// Package interval implements a directed one-dimensional numeric range.
//
// 🚀 What is an Interval?
//
//	An Interval is a pair {A, B}. Unlike a plain [min,max] range, the order
//	of the ends is meaningful: B < A describes the same span walked in the
//	opposite direction. The direction is reported by Orientation:
//	  • +1: increasing (A < B)
//	  • -1: decreasing (A > B)
//	  •  0: degenerate (A == B), which IsValid rejects
//
// ✨ Key features:
//   - Evaluate / Normalize map between the parameter space [0,1] and the
//     interval, honoring its direction: Interval{5,2}.Normalize(2) == 1.
//   - Clamp, Wrap, Contains and ContainsIncl work on the ascending bounds,
//     so they behave identically whatever the stored order.
//   - Include, Expand and Union grow an interval without ever flipping it.
//   - Intersect and Difference return pieces oriented like the receiver.
//
// ⚙️ Usage:
//
//	iv := interval.New(5, 2)
//	t := iv.Normalize(3)      // 2/3
//	x := iv.Evaluate(t)       // 3
//	iv = iv.Include(10)       // {10, 2}: still decreasing
//
// Interval is a value type; every method returns a new value and the
// receiver is never mutated.
package interval
