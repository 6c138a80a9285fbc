// SPDX-License-Identifier: MIT

// Package ops: functional configuration for Decompose.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options fields are unexported; public entry points accept ...Option and
// resolve them through gatherOptions, last writer wins.
package ops

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDeterminantEpsilon is the smallest |det| accepted by Decompose,
	// both for the input and for the orthonormal basis it rebuilds.
	DefaultDeterminantEpsilon = 1e-10

	// DefaultGimbalEpsilon is the |cos(beta)| at or below which Euler
	// extraction switches to the two-angle gimbal-lock branch.
	DefaultGimbalEpsilon = 1e-5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDeterminantEpsilonInvalid = "ops: WithDeterminantEpsilon: eps must be finite, non-negative"
	panicGimbalEpsilonInvalid      = "ops: WithGimbalEpsilon: eps must be finite, in [0, 1)"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	detEps    float64 // >= 0; DefaultDeterminantEpsilon
	gimbalEps float64 // [0, 1); DefaultGimbalEpsilon
}

// DeterminantEpsilon reports the effective singularity tolerance.
func (o Options) DeterminantEpsilon() float64 { return o.detEps }

// GimbalEpsilon reports the effective gimbal-lock tolerance.
func (o Options) GimbalEpsilon() float64 { return o.gimbalEps }

// ---------- Constructors (WithX) ----------

// WithDeterminantEpsilon sets the |det| below which Decompose reports
// matrix.ErrSingular.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - eps = 0 only rejects an exactly singular matrix.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - Raise it for float32 input, whose LU determinant carries ~1e-7
//     relative error.
func WithDeterminantEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicDeterminantEpsilonInvalid)
	}

	return func(o *Options) { o.detEps = eps }
}

// WithGimbalEpsilon sets the |cos(beta)| threshold of the gimbal-lock
// branch. Must lie in [0, 1); panics otherwise.
func WithGimbalEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 || eps >= 1 {
		panic(panicGimbalEpsilonInvalid)
	}

	return func(o *Options) { o.gimbalEps = eps }
}

// DefaultOptions returns the configuration used when no Option is given.
func DefaultOptions() Options {
	return Options{
		detEps:    DefaultDeterminantEpsilon,
		gimbalEps: DefaultGimbalEpsilon,
	}
}

// gatherOptions applies user setters over DefaultOptions in order.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
