// SPDX-License-Identifier: MIT

// Package rootfind is your toolbox for solving f(x) = 0 on an interval,
// from the bracketing kernel up to distribution quantiles and a CLI.
//
// 🚀 What is rootfind?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Brent's method: bisection + secant + inverse quadratic interpolation
//		• Typed errors for bad intervals, bad guesses and missing brackets
//		• Inversion of monotone functions and distribution quantiles
//		• A command line front end (cmd/rootfind)
//
// ✨ Why choose rootfind?
//
//   - Guaranteed convergence for any continuous function with a sign change
//   - No derivatives needed, superlinear on smooth functions
//   - Immutable, goroutine-safe finders; all search state is per call
//   - Extensible – hooks (OnIterate) and opt-in evaluation budgets
//
// Under the hood, everything is organized under these subpackages:
//
//	brent/         Finder: FindRoot / FindRootFrom, options, errors
//	invert/        Invert, RegIncBeta, GammaIncReg and Chi quantiles (gonum mathext)
//	cmd/rootfind/  cobra CLI: solve (polynomials), quantile (beta, gamma, chi)
//
// Quick ASCII example:
//
//	f(x) = x² - 2 on [0, 2]
//
//	   f │           ╱
//	     │        ╱
//	   0 ┼─────•──────── x      • = √2
//	     │  ╱
//	     └───────────────
//
//	go get github.com/katalvlaran/rootfind/brent
package rootfind
