// SPDX-License-Identifier: MIT

package brent

import (
	"fmt"
	"math"
)

// Finder locates a zero of a real function inside a bracketing interval
// using Brent's method. A Finder is immutable after New and safe for
// concurrent use: all search state lives in the call.
type Finder struct {
	relativeAccuracy      float64
	absoluteAccuracy      float64
	functionValueAccuracy float64
	opts                  Options
}

// New returns a Finder with the given accuracies.
//
// Inputs:
//   - relativeAccuracy: ε, tolerance as a fraction of |b|.
//   - absoluteAccuracy: t, fixed tolerance floor.
//   - functionValueAccuracy: |f(x)| at or below it ends the pre-checks with x.
//
// All three must be finite and ≥ 0 (0 means "exact"), else ErrInvalidAccuracy.
func New(relativeAccuracy, absoluteAccuracy, functionValueAccuracy float64, opts ...Option) (*Finder, error) {
	for _, v := range [...]float64{relativeAccuracy, absoluteAccuracy, functionValueAccuracy} {
		if !isFiniteNonNegative(v) {
			return nil, brentErrorf(opNew, ErrInvalidAccuracy)
		}
	}

	return &Finder{
		relativeAccuracy:      relativeAccuracy,
		absoluteAccuracy:      absoluteAccuracy,
		functionValueAccuracy: functionValueAccuracy,
		opts:                  gatherOptions(opts...),
	}, nil
}

// NewDefault returns a Finder using DefaultRelativeAccuracy,
// DefaultAbsoluteAccuracy and DefaultFunctionValueAccuracy.
func NewDefault(opts ...Option) *Finder {
	return &Finder{
		relativeAccuracy:      DefaultRelativeAccuracy,
		absoluteAccuracy:      DefaultAbsoluteAccuracy,
		functionValueAccuracy: DefaultFunctionValueAccuracy,
		opts:                  gatherOptions(opts...),
	}
}

// RelativeAccuracy returns ε.
func (fd *Finder) RelativeAccuracy() float64 { return fd.relativeAccuracy }

// AbsoluteAccuracy returns t.
func (fd *Finder) AbsoluteAccuracy() float64 { return fd.absoluteAccuracy }

// FunctionValueAccuracy returns the pre-check acceptance threshold on |f(x)|.
func (fd *Finder) FunctionValueAccuracy() float64 { return fd.functionValueAccuracy }

// FindRoot searches [min, max] for a zero of f, starting from the midpoint.
func (fd *Finder) FindRoot(f Func, min, max float64) (float64, error) {
	res, err := fd.Search(f, min, max)
	if err != nil {
		return math.NaN(), err
	}

	return res.Root, nil
}

// FindRootFrom searches [min, max] for a zero of f, starting from initial.
func (fd *Finder) FindRootFrom(f Func, min, initial, max float64) (float64, error) {
	res, err := fd.SearchFrom(f, min, initial, max)
	if err != nil {
		return math.NaN(), err
	}

	return res.Root, nil
}

// Search is FindRoot returning the full Result.
func (fd *Finder) Search(f Func, min, max float64) (Result, error) {
	if f == nil {
		return Result{}, brentErrorf(opSearch, ErrNilFunc)
	}
	// Negated comparisons reject NaN bounds, and a NaN midpoint from
	// [-Inf, +Inf].
	mid := 0.5*min + 0.5*max
	if !(min <= mid && mid <= max) {
		return Result{}, brentErrorf(opSearch, &IntervalError{Min: min, Max: max})
	}

	res, err := fd.search(f, min, mid, max)
	if err != nil {
		return Result{}, brentErrorf(opSearch, err)
	}

	return res, nil
}

// SearchFrom is FindRootFrom returning the full Result.
//
// Pre-checks run in a fixed order, and the order decides which root is
// returned when [min, max] holds several:
//  1. min <= max, else ErrInvalidInterval.
//  2. min <= initial <= max, else ErrOutOfRange.
//  3. |f(initial)| within accuracy → initial.
//  4. |f(min)| within accuracy → min.
//  5. sign change on [min, initial] → iterate there.
//  6. |f(max)| within accuracy → max.
//  7. sign change on [initial, max] → iterate there.
//  8. otherwise ErrNoBracket.
func (fd *Finder) SearchFrom(f Func, min, initial, max float64) (Result, error) {
	if f == nil {
		return Result{}, brentErrorf(opSearchFrom, ErrNilFunc)
	}
	if !(min <= max) {
		return Result{}, brentErrorf(opSearchFrom, &IntervalError{Min: min, Max: max})
	}
	if !(min <= initial && initial <= max) {
		return Result{}, brentErrorf(opSearchFrom, &RangeError{Initial: initial, Min: min, Max: max})
	}

	res, err := fd.search(f, min, initial, max)
	if err != nil {
		return Result{}, brentErrorf(opSearchFrom, err)
	}

	return res, nil
}

// search runs pre-checks 3..8 on a validated interval and initial guess.
func (fd *Finder) search(f Func, min, initial, max float64) (Result, error) {
	ev := fd.newEvaluator(f)

	yInitial, err := ev.eval(initial)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(yInitial) <= fd.functionValueAccuracy {
		return ev.shortcut(initial, yInitial, ShortcutInitial), nil
	}

	yMin, err := ev.eval(min)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(yMin) <= fd.functionValueAccuracy {
		return ev.shortcut(min, yMin, ShortcutMin), nil
	}
	if oppositeSign(yInitial, yMin) {
		return fd.iterate(ev, min, yMin, initial, yInitial)
	}

	yMax, err := ev.eval(max)
	if err != nil {
		return Result{}, err
	}
	if math.Abs(yMax) <= fd.functionValueAccuracy {
		return ev.shortcut(max, yMax, ShortcutMax), nil
	}
	if oppositeSign(yInitial, yMax) {
		return fd.iterate(ev, initial, yInitial, max, yMax)
	}

	return Result{}, &BracketError{FMin: yMin, FMax: yMax}
}

// evaluator counts calls to f and enforces the opt-in budget and finite check.
type evaluator struct {
	f       Func
	n       int
	max     int
	finite  bool
	best    float64
	bestAbs float64
}

func (fd *Finder) newEvaluator(f Func) *evaluator {
	return &evaluator{
		f:       f,
		max:     fd.opts.maxEvaluations,
		finite:  fd.opts.finiteCheck,
		best:    math.NaN(),
		bestAbs: math.Inf(1),
	}
}

// eval returns f(x), or an error when the budget is spent or the value is not finite.
func (ev *evaluator) eval(x float64) (float64, error) {
	if ev.max > 0 && ev.n >= ev.max {
		return math.NaN(), &BudgetError{Evaluations: ev.n, Best: ev.best}
	}
	ev.n++
	y := ev.f(x)
	if ev.finite && (math.IsNaN(y) || math.IsInf(y, 0)) {
		return y, fmt.Errorf("%w: f(%g) = %g", ErrNaNInf, x, y)
	}
	if a := math.Abs(y); a < ev.bestAbs {
		ev.best, ev.bestAbs = x, a
	}

	return y, nil
}

// shortcut builds the Result of a pre-check hit.
func (ev *evaluator) shortcut(x, y float64, s Status) Result {
	return Result{Root: x, Value: y, Evaluations: ev.n, Status: s}
}
