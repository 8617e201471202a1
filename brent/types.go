// SPDX-License-Identifier: MIT

package brent

// Status tells which path of the search produced the returned root.
type Status int

const (
	// Converged means the Brent iteration met its tolerance test.
	Converged Status = iota

	// ShortcutInitial means |f(initial)| was already within the function value accuracy.
	ShortcutInitial

	// ShortcutMin means |f(min)| was already within the function value accuracy.
	ShortcutMin

	// ShortcutMax means |f(max)| was already within the function value accuracy.
	ShortcutMax
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case ShortcutInitial:
		return "shortcut-initial"
	case ShortcutMin:
		return "shortcut-min"
	case ShortcutMax:
		return "shortcut-max"
	default:
		return "unknown"
	}
}

// StepKind names the strategy used for one iteration step.
type StepKind int

const (
	// Bisection halves the current bracket.
	Bisection StepKind = iota

	// Secant is linear interpolation through the two bracket points (a == c).
	Secant

	// InverseQuadratic fits x as a quadratic in f through a, b and c.
	InverseQuadratic
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case Bisection:
		return "bisection"
	case Secant:
		return "secant"
	case InverseQuadratic:
		return "inverse-quadratic"
	default:
		return "unknown"
	}
}

// Iteration is the snapshot handed to an OnIterate hook once the step of
// an iteration has been chosen and before the new estimate is evaluated.
type Iteration struct {
	Index int      // 1-based iteration number
	B     float64  // estimate about to be evaluated
	C     float64  // opposite end of the bracket
	Tol   float64  // 2*relativeAccuracy*|b| + absoluteAccuracy at the previous estimate
	Step  float64  // signed step applied to the previous estimate
	Kind  StepKind // strategy behind Step
}

// Result is the outcome of a successful search.
type Result struct {
	// Root is the abscissa returned to the caller.
	Root float64

	// Value is f(Root) as last evaluated.
	Value float64

	// Evaluations counts calls to f, pre-checks included.
	Evaluations int

	// Iterations counts Brent iterations (0 for shortcuts).
	Iterations int

	// Status tells which path returned Root.
	Status Status
}
