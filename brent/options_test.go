// SPDX-License-Identifier: MIT

package brent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfind/brent"
)

// TestOptions_Panics: nonsensical option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "brent: WithMaxEvaluations: n must be non-negative", func() {
		brent.WithMaxEvaluations(-1)
	})
	assert.PanicsWithValue(t, "brent: WithNearlyEqual: predicate must not be nil", func() {
		brent.WithNearlyEqual(nil)
	})
	assert.NotPanics(t, func() { brent.WithOnIterate(nil) })
	assert.NotPanics(t, func() { brent.WithMaxEvaluations(0) })
}

// TestOptions_NilAndRepeated: nil options are skipped and the last setter wins.
func TestOptions_NilAndRepeated(t *testing.T) {
	t.Parallel()

	fd, err := brent.New(1e-14, 1e-10, 0,
		nil,
		brent.WithMaxEvaluations(1),
		brent.WithMaxEvaluations(0), // back to unlimited
		brent.WithOnIterate(nil),
	)
	require.NoError(t, err)

	root, err := fd.FindRoot(func(x float64) float64 { return x*x*x - 8 }, 0, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-9)
}
