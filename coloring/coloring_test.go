// SPDX-License-Identifier: MIT

package coloring_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoCrosses builds A=0, B=1, C=2, D=3 with A×C and B×D.
func twoCrosses(t testing.TB) *instance.Instance {
	t.Helper()
	pts := []geom.Point{
		geom.Pt(0, 0), geom.Pt(2, 2), geom.Pt(0, 2), geom.Pt(2, 0),
		geom.Pt(10, 0), geom.Pt(12, 2), geom.Pt(10, 2), geom.Pt(12, 0),
	}
	edges := []instance.Edge{{U: 0, V: 1}, {U: 4, V: 5}, {U: 2, V: 3}, {U: 6, V: 7}}
	ins, err := instance.New("two-crosses", len(pts), pts, edges)
	require.NoError(t, err)

	return ins
}

// grid builds a rows×cols lattice of horizontal and vertical sticks; every
// horizontal crosses every vertical.
func grid(t testing.TB, rows, cols int) *instance.Instance {
	t.Helper()
	var pts []geom.Point
	var edges []instance.Edge
	for r := 0; r < rows; r++ {
		y := int64(10*r + 5)
		pts = append(pts, geom.Pt(0, y), geom.Pt(int64(10*cols), y))
		edges = append(edges, instance.Edge{U: len(pts) - 2, V: len(pts) - 1})
	}
	for c := 0; c < cols; c++ {
		x := int64(10*c + 5)
		pts = append(pts, geom.Pt(x, 0), geom.Pt(x, int64(10*rows)))
		edges = append(edges, instance.Edge{U: len(pts) - 2, V: len(pts) - 1})
	}
	ins, err := instance.New("grid", len(pts), pts, edges)
	require.NoError(t, err)

	return ins
}

// TestNew_TrivialIsValid covers the one-colour-per-item start.
func TestNew_TrivialIsValid(t *testing.T) {
	ins := twoCrosses(t)
	s := coloring.New(ins)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Colors())
	assert.Equal(t, 4, s.NumColors())
	assert.NoError(t, s.Verify())
	assert.Zero(t, s.Conflicts())
}

// TestVerify_ReportsViolation puts A and C in one class.
func TestVerify_ReportsViolation(t *testing.T) {
	ins := twoCrosses(t)
	s, err := coloring.FromColors(ins, []int{0, 1, 0, 2})
	require.NoError(t, err)
	err = s.Verify()
	require.Error(t, err)
	assert.True(t, errors.Is(err, coloring.ErrConflict))

	var ce *coloring.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 0, ce.A)
	assert.Equal(t, 2, ce.B)
	assert.Equal(t, 0, ce.Color)
	assert.InDelta(t, 1.0, ce.X, 1e-9)
	assert.Contains(t, ce.Error(), "items 0 and 2")

	assert.Equal(t, 1, s.Conflicts())
	items := s.ConflictedItems()
	assert.True(t, items.Test(0))
	assert.True(t, items.Test(2))
	assert.Equal(t, uint(2), items.Count())
}

// TestVerify_ColorRange rejects colours beyond NumColors.
func TestVerify_ColorRange(t *testing.T) {
	s := coloring.New(twoCrosses(t))
	s.SetNumColors(3)
	assert.ErrorIs(t, s.Verify(), coloring.ErrColorRange)
	s.Recompute()
	assert.NoError(t, s.Verify())

	_, err := coloring.FromColors(s.Instance(), []int{0, -1, 0, 0})
	assert.ErrorIs(t, err, coloring.ErrColorRange)
	_, err = coloring.FromColors(s.Instance(), []int{0})
	assert.ErrorIs(t, err, coloring.ErrLength)
}

// TestVerify_Abstract uses the conflict rows.
func TestVerify_Abstract(t *testing.T) {
	ins, err := instance.NewAbstract("p3", 3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	ok, err := coloring.FromColors(ins, []int{0, 1, 0})
	require.NoError(t, err)
	assert.NoError(t, ok.Verify())

	bad, err := coloring.FromColors(ins, []int{0, 1, 1})
	require.NoError(t, err)
	var ce *coloring.ConflictError
	require.ErrorAs(t, bad.Verify(), &ce)
	assert.Equal(t, [2]int{1, 2}, [2]int{ce.A, ce.B})
	assert.False(t, ce.Geometric)
}

// TestIsBetter checks the monotonic improvement relation.
func TestIsBetter(t *testing.T) {
	ins := twoCrosses(t)
	trivial := coloring.New(ins)
	two, err := coloring.FromColors(ins, []int{0, 0, 1, 1})
	require.NoError(t, err)
	invalid, err := coloring.FromColors(ins, []int{0, 0, 0, 0})
	require.NoError(t, err)

	assert.True(t, two.IsBetter(trivial))
	assert.False(t, trivial.IsBetter(two))
	assert.False(t, two.IsBetter(two.Clone()), "equal colour counts")
	assert.True(t, trivial.IsBetter(invalid))
	assert.False(t, invalid.IsBetter(trivial))
	assert.False(t, invalid.IsBetter(nil))
	assert.True(t, two.IsBetter(nil))
}

// TestGreedy_Variants produce valid colourings of a crossing grid.
func TestGreedy_Variants(t *testing.T) {
	ins := grid(t, 4, 5)
	s := coloring.New(ins)
	s.GreedySorted()
	require.NoError(t, s.Verify())
	assert.Equal(t, 2, s.NumColors(), "bipartite grid")

	s.GreedyShuffled(rand.New(rand.NewSource(4)))
	require.NoError(t, s.Verify())
	assert.LessOrEqual(t, s.NumColors(), 5)

	s.Trivial()
	s.Greedy([]int{8, 7, 6, 5, 4, 3, 2, 1, 0})
	require.NoError(t, s.Verify())
}

// TestRelabel compacts colours by first occurrence.
func TestRelabel(t *testing.T) {
	ins := twoCrosses(t)
	s, err := coloring.FromColors(ins, []int{7, 3, 9, 3})
	require.NoError(t, err)
	assert.Equal(t, 10, s.NumColors())
	s.Relabel()
	assert.Equal(t, []int{0, 1, 2, 1}, s.Colors())
	assert.Equal(t, 3, s.NumColors())
	assert.Equal(t, []int{1, 2, 1}, s.ClassSizes())

	classes := s.Classes()
	require.Len(t, classes, 3)
	assert.True(t, classes[1].Test(1))
	assert.True(t, classes[1].Test(3))
}

// TestClone_Independent ensures copies do not alias.
func TestClone_Independent(t *testing.T) {
	s := coloring.New(twoCrosses(t))
	c := s.Clone()
	c.SetColor(0, 3)
	assert.Equal(t, 0, s.Color(0))

	s.CopyFrom(c)
	assert.Equal(t, 3, s.Color(0))
	c.SetColor(0, 1)
	assert.Equal(t, 3, s.Color(0))
	assert.Equal(t, 4, s.Len())
}

// TestCountColorIn counts colours within a conflict row.
func TestCountColorIn(t *testing.T) {
	ins := grid(t, 2, 3)
	s := coloring.New(ins)
	for i := 0; i < s.Len(); i++ {
		s.SetColor(i, i%2)
	}
	s.Recompute()
	// Row 0 is horizontal; its conflicts are verticals 2, 3, 4.
	assert.Equal(t, 2, s.CountColorIn(ins.Conflicts(0), 0))
	assert.Equal(t, 1, s.CountColorIn(ins.Conflicts(0), 1))
}
