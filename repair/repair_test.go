package repair_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/repair"
	"github.com/katalvlaran/segcolor/store"
)

func build(t testing.TB, id string, iopts []instance.Option, cons ...builder.Constructor) *instance.Instance {
	t.Helper()
	ins, err := builder.BuildInstance(id, iopts, nil, cons...)
	require.NoError(t, err)

	return ins
}

// triangle is an abstract K3: it needs three colours.
func triangle(t testing.TB) *instance.Instance {
	t.Helper()
	ins, err := instance.NewAbstract("k3", 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	return ins
}

func seeded(o repair.Options, seed int64) repair.Options {
	o.Rand = rand.New(rand.NewSource(seed))
	return o
}

// TestEliminate_RemovesOneColour starts from the trivial colouring of a
// stick grid; any horizontal can join another horizontal's class.
func TestEliminate_RemovesOneColour(t *testing.T) {
	ins := build(t, "grid", nil, builder.Grid(4, 4))
	sol := coloring.New(ins)
	opts := seeded(repair.DefaultOptions(), 1)
	opts.MaxIters = 10_000

	res, err := repair.Eliminate(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.True(t, res.Reduced)
	assert.Equal(t, 8, res.From)
	assert.Equal(t, 7, res.To)
	assert.Equal(t, 7, sol.NumColors())
	assert.Nil(t, res.Working)
	assert.NoError(t, sol.Verify())
}

// TestEliminate_Presets checks both presets on the same input.
func TestEliminate_Presets(t *testing.T) {
	presets := map[string]repair.Options{
		"improver": repair.DefaultOptions(),
		"quick":    repair.QuickOptions(0),
	}
	for name, preset := range presets {
		t.Run(name, func(t *testing.T) {
			ins := build(t, "pairs", nil, builder.CrossingPairs(3))
			sol := coloring.New(ins)
			opts := seeded(preset, 3)
			opts.MaxIters = 10_000
			res, err := repair.Eliminate(context.Background(), sol, opts)
			require.NoError(t, err)
			assert.True(t, res.Reduced)
			assert.Equal(t, 5, sol.NumColors())
			assert.NoError(t, sol.Verify())
		})
	}
}

// TestEliminate_BudgetExhausted cannot two-colour a triangle; the partial
// state is reported and the input restored.
func TestEliminate_BudgetExhausted(t *testing.T) {
	ins := triangle(t)
	sol := coloring.New(ins)
	opts := seeded(repair.DefaultOptions(), 5)
	opts.MaxIters = 500

	res, err := repair.Eliminate(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.False(t, res.Reduced)
	assert.Equal(t, 3, res.To)
	assert.Equal(t, []int{0, 1, 2}, sol.Colors())
	assert.Equal(t, 3, sol.NumColors())

	require.NotNil(t, res.Working)
	require.NotEmpty(t, res.Bad)
	bad := make(map[int]bool)
	for _, i := range res.Bad {
		bad[i] = true
	}
	for i, c := range res.Working.Colors() {
		if !bad[i] {
			assert.Less(t, c, 2, "item %d", i)
		}
	}
}

// TestEliminate_StuckRestarts uses a tiny stuck limit in score mode.
func TestEliminate_StuckRestarts(t *testing.T) {
	ins := triangle(t)
	sol := coloring.New(ins)
	opts := seeded(repair.QuickOptions(0), 9)
	opts.StuckLimit = 10
	opts.MaxIters = 1000

	res, err := repair.Eliminate(context.Background(), sol, opts)
	require.NoError(t, err)
	assert.False(t, res.Reduced)
	assert.Positive(t, res.Restarts)
	assert.Equal(t, []int{0, 1, 2}, sol.Colors())
}

// TestEliminate_Cancelled stops on a cancelled context.
func TestEliminate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sol := coloring.New(triangle(t))
	opts := seeded(repair.DefaultOptions(), 1)
	opts.CheckEvery = 1

	res, err := repair.Eliminate(ctx, sol, opts)
	require.NoError(t, err)
	assert.False(t, res.Reduced)
	assert.NotNil(t, res.Working)
	assert.LessOrEqual(t, res.Iterations, 1)
}

// TestEliminate_Errors covers the input checks.
func TestEliminate_Errors(t *testing.T) {
	lazy := build(t, "lazy", []instance.Option{instance.WithoutCrossings()}, builder.CrossingPairs(1))
	_, err := repair.Eliminate(context.Background(), coloring.New(lazy), repair.DefaultOptions())
	assert.ErrorIs(t, err, repair.ErrNoCrossings)

	sol := coloring.New(build(t, "pairs", nil, builder.CrossingPairs(2)))
	sol.SetNumColors(2)
	_, err = repair.Eliminate(context.Background(), sol, repair.DefaultOptions())
	assert.ErrorIs(t, err, repair.ErrInvalidInput)
}

// TestEliminate_SingleColour is a no-op.
func TestEliminate_SingleColour(t *testing.T) {
	sol := coloring.New(build(t, "chain", nil, builder.Chain(3)))
	sol.GreedySorted()
	require.Equal(t, 1, sol.NumColors())

	res, err := repair.Eliminate(context.Background(), sol, repair.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Reduced)
	assert.Zero(t, res.Iterations)
}

// TestRun_ReachesOptimum drives a bipartite grid down to two colours and
// persists every step.
func TestRun_ReachesOptimum(t *testing.T) {
	ins := build(t, "grid", nil, builder.Grid(3, 3))
	sol := coloring.New(ins)
	st := store.New(t.TempDir())
	opts := seeded(repair.DefaultOptions(), 11)
	opts.MaxIters = 200_000

	res, err := repair.Run(context.Background(), sol, st, opts)
	require.NoError(t, err)
	assert.Equal(t, 6, res.From)
	assert.Equal(t, 2, res.To)
	assert.Equal(t, 4, res.Reductions)
	assert.Equal(t, 2, sol.NumColors())
	require.NoError(t, sol.Verify())

	saved, found, err := st.Load(ins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, saved.NumColors())
}

// TestRun_StopsAtLowerBound never tries below the planar lower bound.
func TestRun_StopsAtLowerBound(t *testing.T) {
	ins := build(t, "chain", nil, builder.Chain(4))
	sol := coloring.New(ins)

	res, err := repair.Run(context.Background(), sol, nil, seeded(repair.DefaultOptions(), 2))
	require.NoError(t, err)
	assert.Equal(t, 1, res.To)
	assert.Equal(t, 3, res.Reductions)
}

// TestRun_Deterministic repeats a seeded run.
func TestRun_Deterministic(t *testing.T) {
	run := func() []int {
		sol := coloring.New(build(t, "pencil", nil, builder.Pencil(4), builder.Grid(2, 3)))
		opts := seeded(repair.DefaultOptions(), 21)
		opts.MaxIters = 20_000
		_, err := repair.Run(context.Background(), sol, nil, opts)
		require.NoError(t, err)
		return append([]int(nil), sol.Colors()...)
	}
	assert.Equal(t, run(), run())
}
