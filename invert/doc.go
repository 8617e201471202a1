// SPDX-License-Identifier: MIT

// Package invert solves f(x) = y for monotone f on a bracket, and builds
// quantile functions of common distributions on top of it.
//
// ✨ Key features:
//   - Invert: any monotone brent.Func, any target value
//   - RegIncBeta: inverse of the regularized incomplete beta I_x(a, b)
//   - GammaIncReg: inverse of the regularized lower incomplete gamma P(a, x)
//   - Chi: quantiles of the chi distribution with k degrees of freedom and scale σ
//
// The special functions come from gonum's mathext; every inverse is a
// Brent search, so accuracy is governed by the brent.Finder handed to New.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rootfind/invert"
//
//	inv := invert.New(nil)             // tight default accuracies
//	x, err := inv.RegIncBeta(2, 3, 0.5) // median of Beta(2, 3)
//	r, err := inv.Chi(3, 0.25, 0.95)    // 95th percentile radius of a 3-D Gaussian
package invert
