package localsearch_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/localsearch"
	"github.com/katalvlaran/segcolor/store"
)

func build(t testing.TB, cons ...builder.Constructor) *instance.Instance {
	t.Helper()
	ins, err := builder.BuildInstance("localsearch", nil, nil, cons...)
	require.NoError(t, err)

	return ins
}

func seeded(seed int64, badify, iters int) localsearch.Options {
	o := localsearch.DefaultOptions()
	o.Badify = badify
	o.MaxIters = iters
	o.Rand = rand.New(rand.NewSource(seed))
	return o
}

func TestRun_ReachesTwoColours(t *testing.T) {
	ins := build(t, builder.Grid(3, 3))
	sol := coloring.New(ins)
	st := store.New(t.TempDir())

	res, err := localsearch.Run(context.Background(), sol, st, seeded(1, 2, 20_000))
	require.NoError(t, err)
	require.NoError(t, sol.Verify())
	assert.Equal(t, 6, res.From)
	assert.Equal(t, 2, res.To)
	assert.Equal(t, 2, sol.NumColors())
	assert.Positive(t, res.Reductions)

	saved, found, err := st.Load(ins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, saved.NumColors())
}

// TestRun_CliqueRestarts cannot improve a pencil; stalls trigger restarts
// and the colouring stays valid.
func TestRun_CliqueRestarts(t *testing.T) {
	sol := coloring.New(build(t, builder.Pencil(4)))
	opts := seeded(2, 1, 3_000)
	opts.StallLimit = 500

	res, err := localsearch.Run(context.Background(), sol, nil, opts)
	require.NoError(t, err)
	assert.Zero(t, res.Reductions)
	assert.Positive(t, res.Restarts)
	assert.Equal(t, 4, sol.NumColors())
	assert.NoError(t, sol.Verify())
}

// TestRun_BadifyLargerThanInstance clamps the number of uncoloured items.
func TestRun_BadifyLargerThanInstance(t *testing.T) {
	sol := coloring.New(build(t, builder.CrossingPairs(3)))
	res, err := localsearch.Run(context.Background(), sol, nil, seeded(3, 100, 5_000))
	require.NoError(t, err)
	assert.NoError(t, sol.Verify())
	assert.Equal(t, 2, res.To)
}

func TestRun_AtLowerBound(t *testing.T) {
	sol := coloring.New(build(t, builder.Chain(3)))
	sol.GreedySorted()
	res, err := localsearch.Run(context.Background(), sol, nil, seeded(4, 1, 100))
	require.NoError(t, err)
	assert.Zero(t, res.Iterations)
	assert.Equal(t, 1, res.To)
}

func TestRun_Errors(t *testing.T) {
	ins := build(t, builder.CrossingPairs(2))
	bad, err := coloring.FromColors(ins, []int{0, 0, 0, 0})
	require.NoError(t, err)
	_, err = localsearch.Run(context.Background(), bad, nil, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, localsearch.ErrInvalidInput)

	lazy, err := builder.BuildInstance("lazy", []instance.Option{instance.WithoutCrossings()}, nil, builder.CrossingPairs(1))
	require.NoError(t, err)
	_, err = localsearch.Run(context.Background(), coloring.New(lazy), nil, localsearch.DefaultOptions())
	assert.ErrorIs(t, err, localsearch.ErrNoCrossings)
}
