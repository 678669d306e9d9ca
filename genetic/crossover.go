package genetic

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/segcolor/coloring"
)

// crossover builds a child with t colours from the parents' classes.
func (g *Engine) crossover(parents []*member, t int) *coloring.Solution {
	m := g.ins.Len()
	need := bitset.New(uint(m))
	for i := 0; i < m; i++ {
		need.Set(uint(i))
	}
	colors := make([]int, m)
	for i := range colors {
		colors[i] = t - 1
	}

	var best *bitset.BitSet
	for slot := 0; slot < t-1 && need.Any(); slot++ {
		found := false
		bestScore := 0
		for _, p := range parents {
			for _, class := range p.classes {
				sub := class.Intersection(need)
				if sub.None() {
					continue
				}
				s := g.score(sub)
				if !found || s < bestScore {
					found = true
					bestScore = s
					best = sub
				}
			}
		}
		if !found {
			break
		}
		for i, ok := best.NextSet(0); ok; i, ok = best.NextSet(i + 1) {
			colors[i] = slot
		}
		need.InPlaceDifference(best)
	}

	child := g.best.Clone()
	copy(child.Colors(), colors)
	child.SetNumColors(t)

	return child
}

// score is m per inner conflict (counted from both ends) minus the class
// size; lower is better.
func (g *Engine) score(sub *bitset.BitSet) int {
	m := g.ins.Len()
	s := -int(sub.Count())
	for i, ok := sub.NextSet(0); ok; i, ok = sub.NextSet(i + 1) {
		s += m * int(g.ins.Conflicts(int(i)).IntersectionCardinality(sub))
	}

	return s
}
