// SPDX-License-Identifier: MIT

package brent_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/rootfind/brent"
)

// IterateSuite exercises the Brent iteration under various functions and options.
type IterateSuite struct {
	suite.Suite
	fd *brent.Finder
}

func (s *IterateSuite) SetupTest() {
	fd, err := brent.New(1e-14, 1e-10, 0)
	s.Require().NoError(err)
	s.fd = fd
}

// tol is the step tolerance of s.fd at x.
func (s *IterateSuite) tol(x float64) float64 {
	return tolAt(s.fd, x)
}

// TestCubicRoots: x³ - r for random r in [-8, 8] over [-3, 3].
func (s *IterateSuite) TestCubicRoots() {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		r := -8 + 16*rng.Float64()
		want := math.Cbrt(r)

		root, err := s.fd.FindRoot(func(x float64) float64 { return x*x*x - r }, -3, 3)
		s.Require().NoError(err, "r=%g", r)
		s.GreaterOrEqual(root, -3.0)
		s.LessOrEqual(root, 3.0)
		s.InDelta(want, root, 2*s.tol(want), "r=%g", r)
	}
}

// TestKink: continuous but not differentiable at the root.
func (s *IterateSuite) TestKink() {
	f := func(x float64) float64 { return math.Max(x-1, 2*(x-1)) }
	root, err := s.fd.FindRoot(f, 0, 3)
	s.Require().NoError(err)
	s.InDelta(1.0, root, 2*s.tol(1))
}

// TestStepFunction: every value is ±1, so only bisection is ever taken and
// the search ends on the bracket width alone.
func (s *IterateSuite) TestStepFunction() {
	var kinds []brent.StepKind
	fd, err := brent.New(0, 1e-9, 0, brent.WithOnIterate(func(it brent.Iteration) {
		kinds = append(kinds, it.Kind)
	}))
	s.Require().NoError(err)

	f := func(x float64) float64 {
		if x < 0.3 {
			return -1
		}
		return 1
	}
	res, err := fd.Search(f, 0, 1)
	s.Require().NoError(err)
	s.Equal(brent.Converged, res.Status)
	s.InDelta(0.3, res.Root, 2e-9)
	s.NotEmpty(kinds)
	for i, k := range kinds {
		s.Equal(brent.Bisection, k, "iteration %d", i+1)
	}
}

// TestOnIterate: one hook call per iteration, in order, secant first.
func (s *IterateSuite) TestOnIterate() {
	var seen []brent.Iteration
	fd, err := brent.New(1e-14, 1e-10, 0, brent.WithOnIterate(func(it brent.Iteration) {
		seen = append(seen, it)
	}))
	s.Require().NoError(err)

	res, err := fd.Search(func(x float64) float64 { return x*x - 2 }, 0, 2)
	s.Require().NoError(err)

	s.Require().Len(seen, res.Iterations)
	s.Equal(3+res.Iterations, res.Evaluations, "three probes, then one evaluation per iteration")
	// Bracket [1, 2]: after the swap a == c, so the first step is a secant step.
	s.Equal(brent.Secant, seen[0].Kind)
	for i, it := range seen {
		s.Equal(i+1, it.Index)
		s.GreaterOrEqual(math.Abs(it.Step), it.Tol, "every step moves b by at least tol")
	}
	s.Contains(kindsOf(seen), brent.InverseQuadratic)
}

// TestMaxEvaluations: the budget is checked before each call to f.
func (s *IterateSuite) TestMaxEvaluations() {
	calls := 0
	f := brent.Func(func(x float64) float64 { return x*x - 2 }).Counted(&calls)

	fd, err := brent.New(1e-14, 1e-10, 0, brent.WithMaxEvaluations(2))
	s.Require().NoError(err)
	_, err = fd.FindRoot(f, 0, 2)
	s.Require().ErrorIs(err, brent.ErrTooManyEvaluations)
	s.Equal(2, calls)

	var be *brent.BudgetError
	s.Require().True(errors.As(err, &be))
	s.Equal(2, be.Evaluations)
	s.Equal(1.0, be.Best, "|f(1)| = 1 beats |f(0)| = 2")

	fd, err = brent.New(1e-14, 1e-10, 0, brent.WithMaxEvaluations(100))
	s.Require().NoError(err)
	root, err := fd.FindRoot(f, 0, 2)
	s.Require().NoError(err)
	s.InDelta(math.Sqrt2, root, s.tol(math.Sqrt2))
}

// TestFiniteCheck: NaN values fail fast when guarded and read as "no bracket" otherwise.
func (s *IterateSuite) TestFiniteCheck() {
	nan := func(float64) float64 { return math.NaN() }

	_, err := s.fd.FindRoot(nan, 0, 1)
	s.ErrorIs(err, brent.ErrNoBracket)

	fd, err := brent.New(1e-14, 1e-10, 0, brent.WithFiniteCheck())
	s.Require().NoError(err)
	_, err = fd.FindRoot(nan, 0, 1)
	s.ErrorIs(err, brent.ErrNaNInf)

	_, err = fd.FindRoot(func(float64) float64 { return math.Inf(1) }, 0, 1)
	s.ErrorIs(err, brent.ErrNaNInf)
}

// TestNearlyEqualOption: the zero test uses the configured predicate.
func (s *IterateSuite) TestNearlyEqualOption() {
	always := func(x, y float64) bool { return true }
	fd, err := brent.New(1e-14, 1e-10, 0, brent.WithNearlyEqual(always))
	s.Require().NoError(err)

	// [0, 2] narrows to [1, 2]; after the swap b = 1 has the smaller |f|.
	res, err := fd.Search(func(x float64) float64 { return x*x - 2 }, 0, 2)
	s.Require().NoError(err)
	s.Equal(1.0, res.Root)
	s.Equal(brent.Converged, res.Status)
	s.Zero(res.Iterations)
}

// TestExactZeroHit: the iteration stops as soon as f(b) is exactly zero.
func (s *IterateSuite) TestExactZeroHit() {
	// Bracket [0, 2] with |f(0)| == |f(2)|: the first step bisects onto x = 1.
	res, err := s.fd.Search(func(x float64) float64 { return x - 1 }, 0, 4)
	s.Require().NoError(err)
	s.Equal(1.0, res.Root)
	s.Equal(0.0, res.Value)
	s.Equal(1, res.Iterations)
}

func kindsOf(its []brent.Iteration) []brent.StepKind {
	out := make([]brent.StepKind, len(its))
	for i, it := range its {
		out[i] = it.Kind
	}

	return out
}

func TestIterateSuite(t *testing.T) {
	suite.Run(t, new(IterateSuite))
}

// TestIterate_LargeMagnitude: the relative term dominates tol far from zero.
func TestIterate_LargeMagnitude(t *testing.T) {
	t.Parallel()

	fd := brent.NewDefault()
	root, err := fd.FindRoot(func(x float64) float64 { return math.Log(x) - math.Log(1e8) }, 1, 1e9)
	require.NoError(t, err)
	require.InDelta(t, 1e8, root, 2*tolAt(fd, 1e8))
}
