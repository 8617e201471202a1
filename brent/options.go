// SPDX-License-Identifier: MIT

// Package brent: functional configuration for Finder. This file defines:
//   - documented defaults (constants, single source of truth),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective setup.
//
// Notes:
//   - The three accuracies are NOT options: they are required arguments of New
//     and are validated there with ErrInvalidAccuracy.
//   - Every default reproduces the classical algorithm exactly: no
//     evaluation cap, no NaN/Inf guard, a 1-ulp zero test.

package brent

// ---------- Defaults ----------

// Accuracy defaults used by NewDefault.
const (
	// DefaultAbsoluteAccuracy is the absolute floor of the step tolerance.
	DefaultAbsoluteAccuracy = 1e-6

	// DefaultRelativeAccuracy scales the step tolerance with |b|.
	DefaultRelativeAccuracy = 1e-14

	// DefaultFunctionValueAccuracy accepts |f(x)| at or below it as a root in the pre-checks.
	DefaultFunctionValueAccuracy = 1e-15
)

// Search policy defaults.
const (
	// DefaultMaxEvaluations = 0 means unlimited.
	DefaultMaxEvaluations = 0

	// DefaultFiniteCheck leaves NaN/Inf function values unchecked.
	DefaultFiniteCheck = false
)

// ---------- Internal panic messages ----------

const (
	panicMaxEvaluationsInvalid = "brent: WithMaxEvaluations: n must be non-negative"
	panicNearlyEqualNil        = "brent: WithNearlyEqual: predicate must not be nil"
	panicToleranceInvalid      = "brent: AbsOrRel: tolerances must be finite, non-negative"
)

// ---------- Public option type ----------

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxEvaluations int             // 0 = unlimited
	finiteCheck    bool            // reject NaN/±Inf function values
	nearlyEqual    NearlyEqualFunc // zero test inside the iteration
	onIterate      func(Iteration) // observer, never nil after gatherOptions
}

// WithMaxEvaluations caps the number of calls to f per search.
// When exceeded, the search fails with ErrTooManyEvaluations.
// n == 0 restores the unlimited default; n < 0 panics.
func WithMaxEvaluations(n int) Option {
	if n < 0 {
		panic(panicMaxEvaluationsInvalid)
	}

	return func(o *Options) { o.maxEvaluations = n }
}

// WithFiniteCheck makes a search fail with ErrNaNInf as soon as f returns NaN or ±Inf.
func WithFiniteCheck() Option {
	return func(o *Options) { o.finiteCheck = true }
}

// WithNearlyEqual replaces the predicate used to test f(b) against zero.
// A nil predicate panics.
func WithNearlyEqual(fn NearlyEqualFunc) Option {
	if fn == nil {
		panic(panicNearlyEqualNil)
	}

	return func(o *Options) { o.nearlyEqual = fn }
}

// WithOnIterate registers an observer called once per Brent iteration.
// A nil fn keeps the no-op default.
func WithOnIterate(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onIterate = fn
		}
	}
}

// defaultOptions returns the zero-surprise configuration.
func defaultOptions() Options {
	return Options{
		maxEvaluations: DefaultMaxEvaluations,
		finiteCheck:    DefaultFiniteCheck,
		nearlyEqual:    NearlyEqual,
		onIterate:      func(Iteration) {},
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
