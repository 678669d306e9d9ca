package repair

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/store"
)

// Run keeps eliminating colours from sol until the budget ends, the
// instance's lower bound is reached or a single colour is left. Every
// success is offered to st (nil st skips persistence). On return sol holds
// the best colouring reached.
func Run(ctx context.Context, sol *coloring.Solution, st *store.Store, opts Options) (Result, error) {
	e, err := newEngine(sol, opts)
	if err != nil {
		return Result{}, err
	}
	b := budget.New(ctx, opts.TimeLimit, opts.MaxIters, opts.checkEvery())
	total := Result{From: sol.NumColors(), To: sol.NumColors()}
	floor := max(sol.Instance().LowerBound(), 1)

	for sol.NumColors() > floor && !b.Exhausted() {
		res, err := e.eliminate(b)
		total.Iterations += res.Iterations
		total.Restarts += res.Restarts
		if err != nil {
			return total, err
		}
		if !res.Reduced {
			break
		}
		total.Reductions++
		total.Reduced = true
		total.To = res.To
		e.log.Info("successful improvement",
			slog.String("instance", sol.Instance().ID()),
			slog.Int("from", res.From),
			slog.Int("colors", res.To),
			slog.Int("iter", res.Iterations),
			slog.Int("restarts", res.Restarts))
		if st != nil {
			if _, err := st.SaveIfBetter(sol); err != nil {
				return total, fmt.Errorf("repair: persist: %w", err)
			}
		}
	}

	return total, nil
}
