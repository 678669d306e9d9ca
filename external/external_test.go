package external_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/external"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/store"
)

func build(t testing.TB, cons ...builder.Constructor) *instance.Instance {
	t.Helper()
	ins, err := builder.BuildInstance("external", nil, nil, cons...)
	require.NoError(t, err)

	return ins
}

// greedySolver answers with the greedy colouring squeezed into K colours.
func greedySolver(ins *instance.Instance) external.Solver {
	return external.SolverFunc(func(_ context.Context, p external.Problem) (external.Outcome, error) {
		sol := coloring.New(ins)
		sol.GreedySorted()
		if sol.NumColors() > p.K {
			return external.Outcome{Infeasible: true}, nil
		}
		colors := append([]int(nil), sol.Colors()...)
		return external.Outcome{Colors: colors, Conflicts: p.Graph.Conflicts(colors)}, nil
	})
}

func TestGraphOf(t *testing.T) {
	g := external.GraphOf(build(t, builder.Grid(2, 2)))
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []int{2, 3}, g.Adj[0])
	assert.Equal(t, []int{0, 1}, g.Adj[3])
	assert.Equal(t, 4, g.Conflicts([]int{0, 0, 0, 0}))
	assert.Zero(t, g.Conflicts([]int{0, 0, 1, 1}))
}

func TestSeeds(t *testing.T) {
	ins := build(t, builder.Grid(2, 3))
	sol, err := coloring.FromColors(ins, []int{0, 1, 2, 3, 2})
	require.NoError(t, err)
	seeds := external.Seeds(sol, rand.New(rand.NewSource(1)))

	for _, seed := range seeds {
		require.Len(t, seed, 5)
		for _, c := range seed {
			assert.Less(t, c, 3)
		}
	}
	// smallest class is colour 0 (item 0); class 3 moves into its slot
	assert.Equal(t, 0, seeds[0][3])
	assert.Equal(t, []int{1, 2, 2}, []int{seeds[0][1], seeds[0][2], seeds[0][4]})
}

func TestRun_Improves(t *testing.T) {
	ins := build(t, builder.Grid(3, 3))
	sol := coloring.New(ins)
	st := store.New(t.TempDir())

	res, err := external.Run(context.Background(), sol, st, greedySolver(ins), external.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 6, res.From)
	assert.Equal(t, 2, res.To)
	assert.True(t, res.Optimal)
	assert.Equal(t, 1, res.Reductions)
	assert.NoError(t, sol.Verify())

	saved, found, err := st.Load(ins)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, saved.NumColors())
}

func TestRun_BadOutcome(t *testing.T) {
	ins := build(t, builder.CrossingPairs(2))
	liar := external.SolverFunc(func(_ context.Context, p external.Problem) (external.Outcome, error) {
		return external.Outcome{Colors: make([]int, p.Graph.Len())}, nil
	})
	sol := coloring.New(ins)
	_, err := external.Run(context.Background(), sol, nil, liar, external.DefaultOptions())
	assert.ErrorIs(t, err, external.ErrBadOutcome)
	assert.Equal(t, 4, sol.NumColors())
}

func TestRun_FailedRoundsStopAtMaxRounds(t *testing.T) {
	ins := build(t, builder.Pencil(3))
	calls := 0
	stubborn := external.SolverFunc(func(_ context.Context, p external.Problem) (external.Outcome, error) {
		calls++
		return external.Outcome{Colors: p.Seeds[0], Conflicts: p.Graph.Conflicts(p.Seeds[0])}, nil
	})
	opts := external.DefaultOptions()
	opts.MaxRounds = 5
	opts.Rand = rand.New(rand.NewSource(2))

	res, err := external.Run(context.Background(), coloring.New(ins), nil, stubborn, opts)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rounds)
	assert.Equal(t, 5, calls)
	assert.Zero(t, res.Reductions)
}

func TestRun_Errors(t *testing.T) {
	ins := build(t, builder.CrossingPairs(2))
	_, err := external.Run(context.Background(), coloring.New(ins), nil, nil, external.DefaultOptions())
	assert.ErrorIs(t, err, external.ErrNilSolver)

	opts := external.DefaultOptions()
	opts.MaxItems = 3
	_, err = external.Run(context.Background(), coloring.New(ins), nil, greedySolver(ins), opts)
	assert.ErrorIs(t, err, external.ErrTooLarge)
}
