// SPDX-License-Identifier: MIT

// Package brent: sentinel error set and value-carrying error types.
// All searches return these sentinels (directly or through a typed error
// whose Unwrap yields the sentinel); tests MUST check them via errors.Is
// and read the reported values via errors.As.

package brent

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "brent: ..." so failures are easy to grep.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil func -> interval order -> initial guess range -> evaluation budget /
// non-finite value -> missing bracket.
var (
	// ErrInvalidInterval is returned unless min <= max, and by FindRoot when
	// the midpoint is NaN as on [-Inf, +Inf].
	ErrInvalidInterval = errors.New("brent: invalid interval")

	// ErrOutOfRange is returned when the initial guess lies outside [min, max].
	ErrOutOfRange = errors.New("brent: initial guess out of range")

	// ErrNoBracket is returned when neither [min, initial] nor [initial, max]
	// shows a sign change and no probe was already close enough to zero.
	ErrNoBracket = errors.New("brent: function values at end points do not bracket a root")

	// ErrInvalidAccuracy is returned by New when a tolerance is negative, NaN or ±Inf.
	ErrInvalidAccuracy = errors.New("brent: accuracy must be finite and non-negative")

	// ErrNilFunc is returned when a nil Func is passed to a search.
	ErrNilFunc = errors.New("brent: function is nil")

	// ErrTooManyEvaluations is returned when the budget set by
	// WithMaxEvaluations is exhausted before convergence.
	ErrTooManyEvaluations = errors.New("brent: maximal evaluation count exceeded")

	// ErrNaNInf is returned under WithFiniteCheck when the function yields NaN or ±Inf.
	ErrNaNInf = errors.New("brent: NaN or Inf function value")
)

// IntervalError reports bounds that do not form a searchable interval.
type IntervalError struct {
	Min, Max float64
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("%v: [%g, %g]", ErrInvalidInterval, e.Min, e.Max)
}

// Unwrap returns ErrInvalidInterval.
func (e *IntervalError) Unwrap() error { return ErrInvalidInterval }

// RangeError reports an initial guess outside the search interval.
type RangeError struct {
	Initial, Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %g not in [%g, %g]", ErrOutOfRange, e.Initial, e.Min, e.Max)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// BracketError reports the endpoint values that failed to bracket a root.
type BracketError struct {
	FMin, FMax float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%v: f(min)=%g, f(max)=%g", ErrNoBracket, e.FMin, e.FMax)
}

// Unwrap returns ErrNoBracket.
func (e *BracketError) Unwrap() error { return ErrNoBracket }

// BudgetError reports an exhausted evaluation budget together with the
// abscissa that had the smallest |f| among the points evaluated so far.
type BudgetError struct {
	Evaluations int
	Best        float64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("%v: %d evaluations (best estimate %g)", ErrTooManyEvaluations, e.Evaluations, e.Best)
}

// Unwrap returns ErrTooManyEvaluations.
func (e *BudgetError) Unwrap() error { return ErrTooManyEvaluations }

// Operation tags for uniform error wrapping.
const (
	opSearch     = "Search"
	opSearchFrom = "SearchFrom"
	opNew        = "New"
)

// brentErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func brentErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
