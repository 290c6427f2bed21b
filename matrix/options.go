// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSingularEpsilon is the |det| threshold used by Inverse/Invert.
	// Zero means only an exactly singular matrix is rejected; a nearly
	// singular one inverts "successfully" with large entries. Pass
	// WithSingularEpsilon to reject ill-conditioned input.
	DefaultSingularEpsilon = 0.0

	// DefaultEpsilon is the tolerance used by structural checks
	// (symmetry before eigen decomposition).
	DefaultEpsilon = 1e-9

	// DefaultEigenTolerance is the relative off-diagonal magnitude (against
	// the Frobenius norm) at which Jacobi iteration stops.
	DefaultEigenTolerance = 1e-14

	// DefaultEigenMaxIterations bounds the number of Jacobi rotations.
	DefaultEigenMaxIterations = 100
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularInvalid  = "matrix: WithSingularEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithEigenTolerance: tol must be finite, non-negative"
	panicMaxIterInvalid   = "matrix: WithMaxIterations: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	singularEps float64 // >= 0; DefaultSingularEpsilon
	eps         float64 // >= 0; DefaultEpsilon
	eigenTol    float64 // >= 0; DefaultEigenTolerance
	maxIter     int     // > 0; DefaultEigenMaxIterations
}

// WithSingularEpsilon sets the |det| threshold below or at which a matrix
// is reported singular.
//
// Errors:
//   - Panics when eps is negative, NaN or Inf.
func WithSingularEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularEps = eps }
}

// WithEpsilon sets the tolerance of structural checks (symmetry).
//
// Errors:
//   - Panics when eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the relative convergence threshold of the Jacobi
// eigen solver.
func WithEigenTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxIterations bounds the number of Jacobi rotations.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions resolves opts on top of the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		singularEps: DefaultSingularEpsilon,
		eps:         DefaultEpsilon,
		eigenTol:    DefaultEigenTolerance,
		maxIter:     DefaultEigenMaxIterations,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
