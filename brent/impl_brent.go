// SPDX-License-Identifier: MIT

package brent

import "math"

// iterate runs Brent's method on a verified bracket: fLo and fHi are of
// strictly opposite sign.
//
// Three abscissae are tracked:
//
//	b - the best estimate so far, |f(b)| <= |f(c)|
//	a - the previous value of b
//	c - the point bracketing the root together with b
//
// Each iteration picks bisection, secant interpolation (a == c) or inverse
// quadratic interpolation (a, b, c distinct). An interpolated step is kept
// only when it lands well inside [b, c] and shrinks faster than half the
// step before last; otherwise the step falls back to bisection.
//
// There is no iteration cap unless WithMaxEvaluations is set: every
// step moves b by at least tol while keeping the root bracketed.
//
// Complexity: at most about (log2((hi-lo)/tol))² evaluations; superlinear
// when f is smooth near the root.
func (fd *Finder) iterate(ev *evaluator, lo, fLo, hi, fHi float64) (Result, error) {
	var (
		a, fa = lo, fLo
		b, fb = hi, fHi
		c, fc = a, fa
		d     = b - a // most recent step
		e     = d     // step before d
	)

	for iter := 1; ; iter++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*fd.relativeAccuracy*math.Abs(b) + fd.absoluteAccuracy
		m := 0.5 * (c - b)

		if math.Abs(m) <= tol || fd.opts.nearlyEqual(fb, 0) {
			return Result{
				Root:        b,
				Value:       fb,
				Evaluations: ev.n,
				Iterations:  iter - 1,
				Status:      Converged,
			}, nil
		}

		kind := Bisection
		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			d = m
			e = d
		} else {
			var p, q float64
			s := fb / fa
			// Exact comparison: a and c are the same stored value right
			// after a swap or a re-bracket, which is when only two
			// distinct points are known.
			if a == c {
				kind = Secant
				p = 2 * m * s
				q = 1 - s
			} else {
				kind = InverseQuadratic
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}

			prev := e
			e = d
			if p >= 1.5*m*q-math.Abs(tol*q) || p >= math.Abs(0.5*prev*q) {
				kind = Bisection
				d = m
				e = d
			} else {
				d = p / q
			}
		}

		a, fa = b, fb
		step := d
		if math.Abs(d) <= tol {
			if m > 0 {
				step = tol
			} else {
				step = -tol
			}
		}
		b += step

		fd.opts.onIterate(Iteration{Index: iter, B: b, C: c, Tol: tol, Step: step, Kind: kind})

		var err error
		if fb, err = ev.eval(b); err != nil {
			return Result{}, err
		}

		if (fb > 0 && fc > 0) || (fb <= 0 && fc <= 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}
}
