// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rootfind/brent"
	"github.com/katalvlaran/rootfind/invert"
)

// errNoCoefficients is returned by solve without --coef.
var errNoCoefficients = errors.New("rootfind: at least one coefficient is required")

// errUnknownDist is returned by quantile for an unsupported --dist value.
var errUnknownDist = errors.New("rootfind: unknown distribution")

// accuracyFlags are the tolerances shared by every subcommand.
type accuracyFlags struct {
	rel, abs, fval float64
	maxEvals       int
	finite         bool
	digits         int
}

func (a *accuracyFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&a.rel, "rel", brent.DefaultRelativeAccuracy, "Relative accuracy ε")
	cmd.Flags().Float64Var(&a.abs, "abs", 1e-12, "Absolute accuracy t")
	cmd.Flags().Float64Var(&a.fval, "fval", brent.DefaultFunctionValueAccuracy, "Function value accuracy")
	cmd.Flags().IntVar(&a.maxEvals, "max-evals", 0, "Maximum function evaluations (0: unlimited)")
	cmd.Flags().BoolVar(&a.finite, "finite", false, "Fail on NaN or Inf function values")
	cmd.Flags().IntVar(&a.digits, "digits", 12, "Decimal digits printed")
}

// finder builds a brent.Finder from the flags plus extra options.
func (a *accuracyFlags) finder(extra ...brent.Option) (*brent.Finder, error) {
	if a.maxEvals < 0 {
		return nil, fmt.Errorf("--max-evals must be non-negative, got %d", a.maxEvals)
	}
	opts := append([]brent.Option{brent.WithMaxEvaluations(a.maxEvals)}, extra...)
	if a.finite {
		opts = append(opts, brent.WithFiniteCheck())
	}

	return brent.New(a.rel, a.abs, a.fval, opts...)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rootfind",
		Short: "rootfind - bracketing root finder (Brent's method)",
		Long: `rootfind locates a zero of a function inside an interval whose end
points bracket a sign change, mixing bisection, secant and inverse
quadratic interpolation.

Example:
  rootfind solve --coef 1,0,-2 --min 0 --max 2
  rootfind quantile --dist beta --a 2 --b 3 --p 0.5`,
		Version:      fmt.Sprintf("%s (built: %s)", Version, BuildTime),
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newSolveCmd(), newQuantileCmd())

	return rootCmd
}

func newSolveCmd() *cobra.Command {
	var (
		acc      accuracyFlags
		coef     []float64
		lo, hi   float64
		initial  float64
		trace    bool
		progress bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a root of a polynomial in [min, max]",
		Long: `Find a root of c0·x^n + c1·x^(n-1) + ... + cn in [min, max].
Coefficients are given highest degree first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(coef) == 0 {
				return errNoCoefficients
			}
			out := cmd.OutOrStdout()

			var extra []brent.Option
			if trace {
				extra = append(extra, brent.WithOnIterate(func(it brent.Iteration) {
					fmt.Fprintf(out, "iter=%d kind=%s b=%.17g step=%.3g tol=%.3g\n",
						it.Index, it.Kind, it.B, it.Step, it.Tol)
				}))
			}
			fd, err := acc.finder(extra...)
			if err != nil {
				return err
			}

			f := polynomial(coef)
			if progress {
				bar := progressbar.NewOptions(-1,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("evaluating"),
					progressbar.OptionShowCount(),
					progressbar.OptionSpinnerType(14),
					progressbar.OptionClearOnFinish(),
				)
				defer func() { _ = bar.Finish() }()
				inner := f
				f = func(x float64) float64 {
					_ = bar.Add(1)
					return inner(x)
				}
			}

			var res brent.Result
			if cmd.Flags().Changed("initial") {
				res, err = fd.SearchFrom(f, lo, initial, hi)
			} else {
				res, err = fd.Search(f, lo, hi)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "root=%.*f value=%.3g evaluations=%d iterations=%d status=%s\n",
				acc.digits, res.Root, res.Value, res.Evaluations, res.Iterations, res.Status)

			return nil
		},
	}

	acc.register(cmd)
	cmd.Flags().Float64SliceVar(&coef, "coef", nil, "Polynomial coefficients, highest degree first")
	cmd.Flags().Float64Var(&lo, "min", 0, "Lower bound of the interval")
	cmd.Flags().Float64Var(&hi, "max", 1, "Upper bound of the interval")
	cmd.Flags().Float64Var(&initial, "initial", 0, "Initial guess in [min, max] (default: midpoint)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every iteration")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show an evaluation counter on stderr")

	return cmd
}

func newQuantileCmd() *cobra.Command {
	var (
		acc   accuracyFlags
		dist  string
		a, b  float64
		k     int
		sigma float64
		p     float64
	)

	cmd := &cobra.Command{
		Use:   "quantile",
		Short: "Invert a distribution function: beta, gamma or chi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fd, err := acc.finder()
			if err != nil {
				return err
			}
			inv := invert.New(fd)

			var x float64
			switch dist {
			case "beta":
				x, err = inv.RegIncBeta(a, b, p)
			case "gamma":
				x, err = inv.GammaIncReg(a, p)
			case "chi":
				x, err = inv.Chi(k, sigma, p)
			default:
				return fmt.Errorf("%w: %q (want beta, gamma or chi)", errUnknownDist, dist)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "x=%.*f\n", acc.digits, x)

			return nil
		},
	}

	acc.register(cmd)
	cmd.Flags().StringVar(&dist, "dist", "beta", "Distribution: beta, gamma, chi")
	cmd.Flags().Float64Var(&a, "a", 1, "Shape a (beta, gamma)")
	cmd.Flags().Float64Var(&b, "b", 1, "Shape b (beta)")
	cmd.Flags().IntVar(&k, "k", 1, "Degrees of freedom (chi)")
	cmd.Flags().Float64Var(&sigma, "sigma", 1, "Per-axis scale σ (chi)")
	cmd.Flags().Float64Var(&p, "p", 0.5, "Probability in [0, 1]")

	return cmd
}

// polynomial evaluates coefficients (highest degree first) with Horner's rule.
func polynomial(coef []float64) brent.Func {
	c := append([]float64(nil), coef...)

	return func(x float64) float64 {
		y := 0.0
		for _, ci := range c {
			y = y*x + ci
		}

		return y
	}
}
