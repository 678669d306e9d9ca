// SPDX-License-Identifier: MIT

package tabu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/store"
)

// DescentResult summarises Descent.
type DescentResult struct {
	From, To   int
	Rounds     int
	Reductions int
	Iterations int
}

// Descent repeatedly removes the last colour of sol: its items get random
// colours among the others and a tabu search of at most RoundIters
// iterations tries to clear the conflicts. Failed rounds start over from
// sol. Every success replaces sol and is offered to st (nil skips
// persistence). Descent stops at the instance's lower bound, at one colour
// or when the budget ends; sol is always valid on return when it was valid
// on entry.
func Descent(ctx context.Context, sol *coloring.Solution, st *store.Store, opts Options) (DescentResult, error) {
	work := sol.Clone()
	e, err := newEngine(work, opts)
	if err != nil {
		return DescentResult{}, err
	}
	b := budget.New(ctx, opts.TimeLimit, opts.MaxIters, opts.checkEvery())
	out := DescentResult{From: sol.NumColors(), To: sol.NumColors()}
	floor := max(sol.Instance().LowerBound(), 1)

	for sol.NumColors() > floor && !b.Exhausted() {
		k := sol.NumColors()
		work.CopyFrom(sol)
		cols := work.Colors()
		for i, c := range cols {
			if c == k-1 {
				cols[i] = e.rng.Intn(k - 1)
			}
		}
		work.SetNumColors(k - 1)

		res, err := e.search(b, opts.roundIters())
		out.Rounds++
		out.Iterations += res.Iterations
		if err != nil {
			return out, err
		}
		if !res.Solved {
			e.log.Debug("tabu round failed",
				slog.String("instance", sol.Instance().ID()),
				slog.Int("colors", k-1),
				slog.Int("conflicts", res.Conflicts))
			if k-1 < 2 {
				// A single colour leaves nothing to search.
				break
			}
			continue
		}

		sol.CopyFrom(work)
		out.Reductions++
		out.To = sol.NumColors()
		e.log.Info("successful improvement",
			slog.String("instance", sol.Instance().ID()),
			slog.Int("colors", out.To),
			slog.Int("iter", res.Iterations))
		if st != nil {
			if _, err := st.SaveIfBetter(sol); err != nil {
				return out, fmt.Errorf("tabu: persist: %w", err)
			}
		}
	}

	return out, nil
}
