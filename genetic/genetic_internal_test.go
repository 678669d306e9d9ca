package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segcolor/builder"
	"github.com/katalvlaran/segcolor/coloring"
)

func newTestEngine(t *testing.T, cons ...builder.Constructor) *Engine {
	t.Helper()
	ins, err := builder.BuildInstance("internal", nil, nil, cons...)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(1))
	g, err := New(ins, coloring.New(ins), nil, opts)
	require.NoError(t, err)

	return g
}

// TestCrossover_InheritsValidClasses recombines two optimal colourings.
func TestCrossover_InheritsValidClasses(t *testing.T) {
	g := newTestEngine(t, builder.Grid(3, 4))
	a, err := coloring.FromColors(g.ins, []int{0, 0, 0, 1, 1, 1, 1})
	require.NoError(t, err)
	b, err := coloring.FromColors(g.ins, []int{1, 1, 1, 0, 0, 0, 0})
	require.NoError(t, err)

	child := g.crossover([]*member{newMember(a), newMember(b)}, 2)
	assert.Equal(t, 2, child.NumColors())
	assert.Zero(t, child.Conflicts())
	// the larger vertical class is taken first
	assert.Equal(t, 0, child.Color(3))
	assert.Equal(t, 1, child.Color(0))
}

// TestScore prefers large conflict-free classes.
func TestScore(t *testing.T) {
	g := newTestEngine(t, builder.CrossingPairs(2))
	free, err := coloring.FromColors(g.ins, []int{0, 1, 0, 1})
	require.NoError(t, err)
	clash, err := coloring.FromColors(g.ins, []int{0, 0, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, -2, g.score(newMember(free).classes[0]))
	assert.Equal(t, 2*4-2, g.score(newMember(clash).classes[0]))
}

// TestEvict_ShrinksByOne keeps the population size.
func TestEvict_ShrinksByOne(t *testing.T) {
	g := newTestEngine(t, builder.Grid(2, 3))
	for i := 0; i < 6; i++ {
		sol := coloring.New(g.ins)
		sol.GreedyShuffled(rand.New(rand.NewSource(int64(i))))
		g.pop = append(g.pop, newMember(sol))
	}
	sortPopulation(g.pop)
	g.evict()
	assert.Len(t, g.pop, 5)
	for i := 1; i < len(g.pop); i++ {
		assert.LessOrEqual(t, g.pop[i-1].fitness, g.pop[i].fitness)
	}
}
