// SPDX-License-Identifier: MIT

// Package brent finds a zero of a continuous real function inside an
// interval that brackets a sign change, using Brent's method.
//
// 🚀 What is Brent's method?
//
//	A bracketing root finder that mixes three strategies and always keeps
//	the root enclosed:
//	  • bisection - halve the bracket, always safe
//	  • secant - linear interpolation through two points
//	  • inverse quadratic interpolation - fit x as a quadratic in f(x)
//	Interpolated steps are accepted only when they are provably at least
//	as useful as bisection, so convergence is guaranteed for any
//	continuous f and superlinear for smooth f. No derivative is needed.
//
// ✨ Key features:
//   - three tolerances: relative (ε), absolute (t), function value
//   - optional initial guess with a documented probe order
//   - typed errors carrying the offending values (errors.As)
//   - opt-in evaluation budget and NaN/Inf guard
//   - OnIterate hook to observe every step
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/brent"
//
//	finder, err := brent.New(1e-14, 1e-10, 1e-15)
//	if err != nil {
//	  // ErrInvalidAccuracy
//	}
//	root, err := finder.FindRoot(func(x float64) float64 { return x*x - 2 }, 0, 2)
//	switch {
//	case errors.Is(err, brent.ErrInvalidInterval): // min > max, NaN bound
//	case errors.Is(err, brent.ErrNoBracket):       // no sign change found
//	}
//
// Termination:
//
//	The iteration stops when half the bracket width |c-b|/2 is at most
//	tol = 2·ε·|b| + t, or when f(b) is (nearly) zero. It has no iteration
//	cap by default; set WithMaxEvaluations to bound the work when f may be
//	noisy or return NaN.
//
// Concurrency:
//
//	A *Finder is read-only after New and can be shared between goroutines.
//	f is always called on the caller's goroutine, one call at a time.
package brent
