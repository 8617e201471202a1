// SPDX-License-Identifier: MIT

package brent

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Func is a real function of one real variable.
// It must return the same value for the same input on every call: points
// are reused across iterations without being re-evaluated.
type Func func(x float64) float64

// Shift returns x ↦ f(x) - y, turning "solve f(x) = y" into a root search.
func (f Func) Shift(y float64) Func {
	return func(x float64) float64 { return f(x) - y }
}

// Counted returns f wrapped so that every call increments *n.
// A nil n returns f unchanged.
func (f Func) Counted(n *int) Func {
	if n == nil {
		return f
	}

	return func(x float64) float64 {
		*n++
		return f(x)
	}
}

// NearlyEqualFunc reports whether x and y are equal within some tolerance.
// Implementations must be reflexive for finite values and must never
// report NaN as equal to anything.
type NearlyEqualFunc func(x, y float64) bool

// DefaultULP is the distance in units of least precision accepted by the
// default NearlyEqualFunc.
const DefaultULP = 1

// NearlyEqual is the default predicate: x and y are at most DefaultULP
// representable float64 values apart.
func NearlyEqual(x, y float64) bool {
	return scalar.EqualWithinULP(x, y, DefaultULP)
}

// WithinULP returns a predicate accepting values at most ulp float64 steps apart.
func WithinULP(ulp uint) NearlyEqualFunc {
	return func(x, y float64) bool { return scalar.EqualWithinULP(x, y, ulp) }
}

// AbsOrRel returns a predicate accepting values within abs of each other,
// or within rel relative to the larger magnitude.
//
// Panics if abs or rel is negative or not finite.
func AbsOrRel(abs, rel float64) NearlyEqualFunc {
	if !isFiniteNonNegative(abs) || !isFiniteNonNegative(rel) {
		panic(panicToleranceInvalid)
	}

	return func(x, y float64) bool { return scalar.EqualWithinAbsOrRel(x, y, abs, rel) }
}

// isFiniteNonNegative reports whether v is a usable tolerance.
func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// oppositeSign reports whether x and y are strictly of opposite sign.
// Signs are compared directly: the product of two tiny values may underflow to zero.
func oppositeSign(x, y float64) bool {
	return (x < 0 && y > 0) || (x > 0 && y < 0)
}
