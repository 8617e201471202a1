// SPDX-License-Identifier: MIT

package invert

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"

	"github.com/katalvlaran/rootfind/brent"
)

// Sentinel errors for inversion.
var (
	// ErrProbability indicates a probability outside [0, 1].
	ErrProbability = errors.New("invert: probability must be in [0, 1]")

	// ErrShape indicates a non-positive shape, scale or degrees-of-freedom parameter.
	ErrShape = errors.New("invert: shape parameters must be positive and finite")

	// ErrUnbounded indicates the upper bracket could not be found by doubling.
	ErrUnbounded = errors.New("invert: could not bracket the target value")
)

// Accuracies of the Finder built by New(nil).
const (
	DefaultRelativeAccuracy      = 1e-14
	DefaultAbsoluteAccuracy      = 1e-13
	DefaultFunctionValueAccuracy = 1e-16
)

// defaultFinder is shared by every Inverter built with New(nil).
var defaultFinder = mustFinder(DefaultRelativeAccuracy, DefaultAbsoluteAccuracy, DefaultFunctionValueAccuracy)

// mustFinder panics when the package defaults are not valid accuracies.
func mustFinder(rel, abs, fva float64) *brent.Finder {
	fd, err := brent.New(rel, abs, fva)
	if err != nil {
		panic(fmt.Sprintf("invert: default accuracies: %v", err))
	}

	return fd
}

// maxDoublings bounds the search for an upper bracket on [0, +Inf).
const maxDoublings = 1100

// Inverter inverts monotone functions with a shared brent.Finder.
// It is safe for concurrent use.
type Inverter struct {
	fd *brent.Finder
}

// New returns an Inverter using fd, or a Finder with the Default*
// accuracies of this package when fd is nil.
func New(fd *brent.Finder) *Inverter {
	if fd == nil {
		fd = defaultFinder
	}

	return &Inverter{fd: fd}
}

// Finder returns the Finder used for every inversion.
func (inv *Inverter) Finder() *brent.Finder { return inv.fd }

// Invert returns x in [lo, hi] with f(x) = y, for f monotone on [lo, hi].
// Errors from the search (brent.ErrNoBracket when y is outside
// [f(lo), f(hi)], brent.ErrInvalidInterval, ...) are wrapped unchanged.
func (inv *Inverter) Invert(f brent.Func, y, lo, hi float64) (float64, error) {
	if f == nil {
		return math.NaN(), fmt.Errorf("invert: %w", brent.ErrNilFunc)
	}
	x, err := inv.fd.FindRoot(f.Shift(y), lo, hi)
	if err != nil {
		return math.NaN(), fmt.Errorf("invert: y=%g: %w", y, err)
	}

	return x, nil
}

// RegIncBeta returns x in [0, 1] with I_x(a, b) = p.
func (inv *Inverter) RegIncBeta(a, b, p float64) (float64, error) {
	if !positive(a) || !positive(b) {
		return math.NaN(), fmt.Errorf("RegIncBeta(a=%g, b=%g): %w", a, b, ErrShape)
	}
	if !probability(p) {
		return math.NaN(), fmt.Errorf("RegIncBeta(p=%g): %w", p, ErrProbability)
	}

	return inv.Invert(func(x float64) float64 { return mathext.RegIncBeta(a, b, x) }, p, 0, 1)
}

// GammaIncReg returns x ≥ 0 with P(a, x) = p. p = 1 yields +Inf.
func (inv *Inverter) GammaIncReg(a, p float64) (float64, error) {
	if !positive(a) {
		return math.NaN(), fmt.Errorf("GammaIncReg(a=%g): %w", a, ErrShape)
	}
	if !probability(p) {
		return math.NaN(), fmt.Errorf("GammaIncReg(p=%g): %w", p, ErrProbability)
	}
	if p == 1 {
		return math.Inf(1), nil
	}

	cdf := brent.Func(func(x float64) float64 { return mathext.GammaIncReg(a, x) })
	lo, hi, err := expandUpper(cdf, p, math.Max(1, a))
	if err != nil {
		return math.NaN(), fmt.Errorf("GammaIncReg(a=%g, p=%g): %w", a, p, err)
	}

	return inv.Invert(cdf, p, lo, hi)
}

// Chi returns the p-quantile of the chi distribution with k degrees of
// freedom and per-axis scale sigma: the radius r with
// P(k/2, r²/(2σ²)) = p.
func (inv *Inverter) Chi(k int, sigma, p float64) (float64, error) {
	if k <= 0 || !positive(sigma) {
		return math.NaN(), fmt.Errorf("Chi(k=%d, sigma=%g): %w", k, sigma, ErrShape)
	}
	x, err := inv.GammaIncReg(float64(k)/2, p)
	if err != nil {
		return math.NaN(), err
	}

	return sigma * math.Sqrt(2*x), nil
}

// expandUpper doubles hi from start until cdf(hi) >= p and returns the
// last bracket [lo, hi]. cdf must be non-decreasing on [0, +Inf).
func expandUpper(cdf brent.Func, p, start float64) (lo, hi float64, err error) {
	hi = start
	for i := 0; cdf(hi) < p; i++ {
		if i >= maxDoublings || math.IsInf(hi, 1) {
			return 0, 0, ErrUnbounded
		}
		lo, hi = hi, 2*hi
	}

	return lo, hi, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func probability(p float64) bool {
	return p >= 0 && p <= 1
}
