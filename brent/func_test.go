// SPDX-License-Identifier: MIT

package brent_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rootfind/brent"
)

func TestFunc_Shift(t *testing.T) {
	t.Parallel()

	sq := brent.Func(func(x float64) float64 { return x * x })
	g := sq.Shift(4)
	assert.Equal(t, 0.0, g(2))
	assert.Equal(t, -4.0, g(0))

	root, err := brent.NewDefault().FindRoot(g, 0, 3)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, root, 2e-6)
}

func TestFunc_Counted(t *testing.T) {
	t.Parallel()

	n := 0
	f := brent.Func(math.Sqrt).Counted(&n)
	f(4)
	f(9)
	assert.Equal(t, 2, n)

	plain := brent.Func(math.Sqrt).Counted(nil)
	assert.Equal(t, 3.0, plain(9), "nil counter leaves f unchanged")
}

// TestNearlyEqual_Default checks the 1-ulp default and its NaN policy.
func TestNearlyEqual_Default(t *testing.T) {
	t.Parallel()

	smallest := math.SmallestNonzeroFloat64
	assert.True(t, brent.NearlyEqual(0, 0))
	assert.True(t, brent.NearlyEqual(0, math.Copysign(0, -1)))
	assert.True(t, brent.NearlyEqual(smallest, 0), "one ulp from zero")
	assert.False(t, brent.NearlyEqual(2*smallest, 0))
	assert.False(t, brent.NearlyEqual(1e-300, 0))
	assert.True(t, brent.NearlyEqual(1, math.Nextafter(1, 2)))
	assert.False(t, brent.NearlyEqual(math.NaN(), math.NaN()), "NaN is never equal")
	assert.False(t, brent.NearlyEqual(math.NaN(), 0))
}

func TestNearlyEqual_Constructors(t *testing.T) {
	t.Parallel()

	four := brent.WithinULP(4)
	x := 1.0
	for i := 0; i < 4; i++ {
		x = math.Nextafter(x, 2)
	}
	assert.True(t, four(1, x))
	assert.False(t, four(1, math.Nextafter(x, 2)))

	loose := brent.AbsOrRel(1e-9, 1e-6)
	assert.True(t, loose(0, 5e-10), "absolute tolerance")
	assert.True(t, loose(1e6, 1e6+0.5), "relative tolerance")
	assert.False(t, loose(1, 1.1))
	assert.False(t, loose(math.NaN(), math.NaN()))

	assert.Panics(t, func() { brent.AbsOrRel(-1, 0) })
	assert.Panics(t, func() { brent.AbsOrRel(0, math.Inf(1)) })
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "converged", brent.Converged.String())
	assert.Equal(t, "shortcut-initial", brent.ShortcutInitial.String())
	assert.Equal(t, "shortcut-min", brent.ShortcutMin.String())
	assert.Equal(t, "shortcut-max", brent.ShortcutMax.String())
	assert.Equal(t, "unknown", brent.Status(42).String())

	assert.Equal(t, "bisection", brent.Bisection.String())
	assert.Equal(t, "secant", brent.Secant.String())
	assert.Equal(t, "inverse-quadratic", brent.InverseQuadratic.String())
	assert.Equal(t, "unknown", brent.StepKind(-1).String())
}
