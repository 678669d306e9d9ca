// SPDX-License-Identifier: MIT

package coloring

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/segcolor/internal/randx"
)

// Greedy visits items in order and gives each the smallest colour not held
// by any conflicting item, then recomputes NumColors. Items outside order
// keep their colours and still block their neighbours.
func (s *Solution) Greedy(order []int) {
	stamp := make([]int, 0, 64)
	for v, i := range order {
		row := s.ins.Conflicts(i)
		deg := s.ins.Degree(i)
		for len(stamp) <= deg {
			stamp = append(stamp, -1)
		}
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if c := s.colors[j]; c >= 0 && c <= deg {
				stamp[c] = v
			}
		}
		c := 0
		for stamp[c] == v {
			c++
		}
		s.colors[i] = c
	}
	s.Recompute()
}

// GreedySorted runs Greedy from the trivial colouring in order of
// decreasing degree.
func (s *Solution) GreedySorted() {
	order := randx.Iota(s.Len())
	sort.SliceStable(order, func(a, b int) bool {
		return s.ins.Degree(order[a]) > s.ins.Degree(order[b])
	})
	s.Trivial()
	s.Greedy(order)
}

// GreedyShuffled runs Greedy from the trivial colouring in random order.
func (s *Solution) GreedyShuffled(rng *rand.Rand) {
	s.Trivial()
	s.Greedy(randx.Perm(s.Len(), rng))
}
