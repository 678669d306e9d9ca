package external

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
)

// Graph is the conflict graph: Adj[i] lists the items conflicting with i
// in increasing order.
type Graph struct {
	Adj [][]int
}

// GraphOf extracts the conflict graph of ins.
func GraphOf(ins *instance.Instance) Graph {
	g := Graph{Adj: make([][]int, ins.Len())}
	for i := range g.Adj {
		row := ins.Conflicts(i)
		adj := make([]int, 0, ins.Degree(i))
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			adj = append(adj, int(j))
		}
		g.Adj[i] = adj
	}

	return g
}

// Len returns the number of vertices.
func (g Graph) Len() int { return len(g.Adj) }

// Conflicts counts the edges whose ends share a colour.
func (g Graph) Conflicts(colors []int) int {
	n := 0
	for u, adj := range g.Adj {
		for _, v := range adj {
			if v > u && colors[u] == colors[v] {
				n++
			}
		}
	}

	return n
}

// Problem is one request to a Solver.
type Problem struct {
	ID    string
	Graph Graph
	K     int
	Seeds [2][]int
}

// Outcome is a Solver's answer. Infeasible means K colours were proven
// impossible; Colors and Conflicts still describe the best attempt.
type Outcome struct {
	Colors     []int
	Conflicts  int
	Infeasible bool
}

// Solver is a black-box improver. Solve must return within the context's
// deadline, give up with its best attempt rather than an error on timeout
// and must not retain p after returning.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Outcome, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(ctx context.Context, p Problem) (Outcome, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, p Problem) (Outcome, error) { return f(ctx, p) }

// Seeds derives two colourings with k-1 colours from the valid colouring
// sol (k = sol.NumColors() ≥ 2). The first empties the smallest class (the
// lowest such colour), the second a different random class; emptied items
// get random colours and class k-1 takes the emptied slot.
func Seeds(sol *coloring.Solution, rng *rand.Rand) [2][]int {
	k := sol.NumColors()
	sizes := sol.ClassSizes()
	first := 0
	for c, n := range sizes {
		if n < sizes[first] {
			first = c
		}
	}
	second := rng.Intn(k)
	for second == first {
		second = rng.Intn(k)
	}

	return [2][]int{scatter(sol.Colors(), k, first, rng), scatter(sol.Colors(), k, second, rng)}
}

func scatter(src []int, k, target int, rng *rand.Rand) []int {
	out := make([]int, len(src))
	for i, c := range src {
		switch c {
		case target:
			out[i] = rng.Intn(k - 1)
		case k - 1:
			out[i] = target
		default:
			out[i] = c
		}
	}

	return out
}
