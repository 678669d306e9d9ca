// SPDX-License-Identifier: MIT

package tabu_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/store"
	"github.com/katalvlaran/segcolor/tabu"
)

func build(t testing.TB, cons ...builder.Constructor) *instance.Instance {
	t.Helper()
	ins, err := builder.BuildInstance("tabu", nil, nil, cons...)
	require.NoError(t, err)

	return ins
}

func seeded(seed int64) tabu.Options {
	o := tabu.DefaultOptions()
	o.Rand = rand.New(rand.NewSource(seed))
	return o
}

// monochrome colours every item 0 while declaring k colours.
func monochrome(t testing.TB, ins *instance.Instance, k int) *coloring.Solution {
	t.Helper()
	sol, err := coloring.FromColors(ins, make([]int, ins.Len()))
	require.NoError(t, err)
	sol.SetNumColors(k)

	return sol
}

// TestRun_ValidInputUnchanged returns at once on a valid colouring.
func TestRun_ValidInputUnchanged(t *testing.T) {
	sol := coloring.New(build(t, builder.Grid(3, 3)))
	sol.GreedySorted()
	before := append([]int(nil), sol.Colors()...)
	k := sol.NumColors()

	res, err := tabu.Run(context.Background(), sol, seeded(1))
	require.NoError(t, err)
	assert.True(t, res.Solved)
	assert.Zero(t, res.Conflicts)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, before, sol.Colors())
	assert.Equal(t, k, sol.NumColors())
}

// TestRun_SolvesBipartite two-colours a stick grid from a monochrome start.
func TestRun_SolvesBipartite(t *testing.T) {
	ins := build(t, builder.Grid(4, 5))
	sol := monochrome(t, ins, 2)
	opts := seeded(2)
	opts.MaxIters = 10_000

	res, err := tabu.Run(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.Equal(t, 20, res.Initial)
	assert.True(t, res.Solved)
	assert.Zero(t, sol.Conflicts())
	assert.Equal(t, 2, sol.NumColors())
	assert.NoError(t, sol.Verify())
}

// TestRun_KeepsBest cannot two-colour a pencil of three; the returned
// colouring is the best seen and its count matches the report.
func TestRun_KeepsBest(t *testing.T) {
	ins := build(t, builder.Pencil(3))
	sol := monochrome(t, ins, 2)
	opts := seeded(3)
	opts.MaxIters = 300

	res, err := tabu.Run(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Initial)
	assert.False(t, res.Solved)
	assert.Equal(t, 1, res.Conflicts)
	assert.Equal(t, res.Conflicts, sol.Conflicts())
	assert.Equal(t, 300, res.Iterations)
	assert.Equal(t, 2, sol.NumColors())
}

// TestRun_SingleColourReturns stops at once when no move exists, even
// without any budget.
func TestRun_SingleColourReturns(t *testing.T) {
	sol := monochrome(t, build(t, builder.Pencil(3)), 1)
	opts := seeded(4)
	opts.MaxIters = 0
	opts.TimeLimit = 0

	res, err := tabu.Run(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, 3, res.Initial)
	assert.Equal(t, 3, res.Conflicts)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, []int{0, 0, 0}, sol.Colors())
}

// TestRun_Errors covers the input checks.
func TestRun_Errors(t *testing.T) {
	lazy, err := builder.BuildInstance("lazy", []instance.Option{instance.WithoutCrossings()}, nil, builder.CrossingPairs(1))
	require.NoError(t, err)
	_, err = tabu.Run(context.Background(), coloring.New(lazy), seeded(1))
	assert.ErrorIs(t, err, tabu.ErrNoCrossings)

	sol := coloring.New(build(t, builder.CrossingPairs(2)))
	sol.SetNumColors(3)
	_, err = tabu.Run(context.Background(), sol, seeded(1))
	assert.ErrorIs(t, err, tabu.ErrInvalidInput)
}

// TestRun_Cancelled returns the best colouring on a cancelled context.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sol := monochrome(t, build(t, builder.Grid(3, 3)), 2)
	opts := seeded(1)
	opts.CheckEvery = 1

	res, err := tabu.Run(ctx, sol, opts)
	require.NoError(t, err)
	assert.False(t, res.Solved)
	assert.Equal(t, res.Initial, res.Conflicts)
}

// TestDescent_ReachesTwoColours drops colours from the trivial colouring
// of a grid and persists the result.
func TestDescent_ReachesTwoColours(t *testing.T) {
	ins := build(t, builder.Grid(3, 4))
	sol := coloring.New(ins)
	st := store.New(t.TempDir())
	opts := seeded(4)
	opts.MaxIters = 50_000
	opts.RoundIters = 2_000

	res, err := tabu.Descent(context.Background(), sol, st, opts)
	require.NoError(t, err)
	assert.Equal(t, 7, res.From)
	assert.Equal(t, 2, res.To)
	assert.GreaterOrEqual(t, res.Rounds, res.Reductions)
	require.NoError(t, sol.Verify())
	assert.Equal(t, 2, sol.NumColors())

	saved, found, err := st.Load(ins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, saved.NumColors())
}

// TestDescent_StopsAtOneColour gives up after a failed single-colour round
// instead of repeating it until the budget ends.
func TestDescent_StopsAtOneColour(t *testing.T) {
	ins := build(t, builder.CrossingPairs(1))
	require.Equal(t, 1, ins.LowerBound())
	sol := coloring.New(ins)
	opts := seeded(6)
	opts.MaxIters = 1_000
	opts.RoundIters = 10

	res, err := tabu.Descent(context.Background(), sol, nil, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.From)
	assert.Equal(t, 2, res.To)
	assert.Equal(t, 1, res.Rounds)
	assert.Zero(t, res.Iterations)
	assert.NoError(t, sol.Verify())
}

// TestDescent_CliqueStaysValid never lowers a clique below its size.
func TestDescent_CliqueStaysValid(t *testing.T) {
	sol := coloring.New(build(t, builder.Pencil(4)))
	opts := seeded(5)
	opts.MaxIters = 3_000
	opts.RoundIters = 500

	res, err := tabu.Descent(context.Background(), sol, nil, opts)
	require.NoError(t, err)
	assert.Zero(t, res.Reductions)
	assert.Equal(t, 4, res.To)
	assert.NoError(t, sol.Verify())
}

// TestRun_Deterministic repeats a seeded search.
func TestRun_Deterministic(t *testing.T) {
	ins := build(t, builder.Grid(5, 5), builder.Pencil(3))
	run := func() []int {
		sol := monochrome(t, ins, 3)
		opts := seeded(8)
		opts.MaxIters = 2_000
		_, err := tabu.Run(context.Background(), sol, opts)
		require.NoError(t, err)
		return append([]int(nil), sol.Colors()...)
	}
	assert.Equal(t, run(), run())
}
