package satcolor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/external"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/satcolor"
)

func graph(t *testing.T, cons ...builder.Constructor) (*instance.Instance, external.Graph) {
	t.Helper()
	ins, err := builder.BuildInstance("sat", nil, nil, cons...)
	require.NoError(t, err)

	return ins, external.GraphOf(ins)
}

func TestSolve_Bipartite(t *testing.T) {
	_, g := graph(t, builder.Grid(4, 5))
	out, err := satcolor.New(time.Second, nil).Solve(context.Background(), external.Problem{Graph: g, K: 2})
	require.NoError(t, err)
	assert.False(t, out.Infeasible)
	assert.Zero(t, out.Conflicts)
	assert.Zero(t, g.Conflicts(out.Colors))
	for _, c := range out.Colors {
		assert.Less(t, c, 2)
	}
}

func TestSolve_CliqueInfeasible(t *testing.T) {
	_, g := graph(t, builder.Pencil(5))
	out, err := satcolor.New(time.Second, nil).Solve(context.Background(), external.Problem{Graph: g, K: 4})
	require.NoError(t, err)
	assert.True(t, out.Infeasible)
	assert.Len(t, out.Colors, 5)
	assert.Positive(t, out.Conflicts)
}

func TestSolve_ValidSeedShortcut(t *testing.T) {
	_, g := graph(t, builder.CrossingPairs(2))
	seed := []int{0, 1, 0, 1}
	out, err := satcolor.New(time.Second, nil).Solve(context.Background(),
		external.Problem{Graph: g, K: 2, Seeds: [2][]int{{0, 0, 0, 0}, seed}})
	require.NoError(t, err)
	assert.Equal(t, seed, out.Colors)
	assert.Zero(t, out.Conflicts)
}

func TestSolve_Errors(t *testing.T) {
	_, g := graph(t, builder.CrossingPairs(1))
	_, err := satcolor.New(0, nil).Solve(context.Background(), external.Problem{Graph: g, K: 0})
	assert.ErrorIs(t, err, satcolor.ErrInvalidProblem)

	out, err := satcolor.New(0, nil).Solve(context.Background(), external.Problem{})
	require.NoError(t, err)
	assert.Empty(t, out.Colors)
}

// TestRun_WithExternal proves a grid-plus-pencil instance optimal.
func TestRun_WithExternal(t *testing.T) {
	ins, _ := graph(t, builder.Grid(3, 3), builder.Pencil(4))
	sol := coloring.New(ins)

	res, err := external.Run(context.Background(), sol, nil, satcolor.New(5*time.Second, nil), external.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Optimal)
	assert.Equal(t, 4, res.To)
	assert.Equal(t, 4, sol.NumColors())
	assert.NoError(t, sol.Verify())
}
