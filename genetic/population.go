package genetic

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/segcolor/coloring"
)

// member is one population entry.
type member struct {
	sol     *coloring.Solution
	fitness int // conflicting pairs
	classes []*bitset.BitSet
}

func newMember(sol *coloring.Solution) *member {
	return &member{
		sol:     sol,
		fitness: sol.Conflicts(),
		classes: classesOf(sol, sol.NumColors()),
	}
}

// sortPopulation orders by fitness, best first.
func sortPopulation(pop []*member) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })
}

// nearest returns the member closest to c and its distance, or -1.
func (g *Engine) nearest(c *member) (int, int) {
	at, dist := -1, 0
	for i, p := range g.pop {
		d := classDistance(c.classes, p.classes, g.ins.Len())
		if at < 0 || d < dist {
			at, dist = i, d
		}
	}

	return at, dist
}

// evict removes one member from a sorted population that just grew by one.
func (g *Engine) evict() {
	size := len(g.pop)
	half := size / 2
	c1 := g.rng.Intn(size)
	for c1 < half && g.bits.Flip() {
		c1 = g.rng.Intn(size)
	}

	c2, dist := -1, 0
	for j := range g.pop {
		if j == c1 || (j < half && g.bits.Flip()) {
			continue
		}
		d := classDistance(g.pop[c1].classes, g.pop[j].classes, g.ins.Len())
		if c2 < 0 || d < dist {
			c2, dist = j, d
		}
	}

	drop := max(c1, c2)
	g.pop = append(g.pop[:drop], g.pop[drop+1:]...)
}
