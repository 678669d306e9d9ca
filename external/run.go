package external

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/store"
)

// Result summarises Run.
type Result struct {
	From, To   int
	Rounds     int
	Reductions int
	// Optimal is set when the solver proved To-1 colours impossible.
	Optimal bool
}

// Run asks solver for colourings with one colour less than sol until it
// fails to prove or find one within the budget. sol is replaced by every
// verified improvement, which is offered to st (nil skips persistence).
func Run(ctx context.Context, sol *coloring.Solution, st *store.Store, solver Solver, opts Options) (Result, error) {
	if solver == nil {
		return Result{}, ErrNilSolver
	}
	ins := sol.Instance()
	res := Result{From: sol.NumColors(), To: sol.NumColors()}
	limit := opts.MaxItems
	if limit <= 0 {
		limit = DefaultMaxItems
	}
	if ins.Len() > limit {
		return res, fmt.Errorf("%w: %d items, limit %d", ErrTooLarge, ins.Len(), limit)
	}
	if ins.Len() > 0 && !ins.HasCrossings() {
		return res, ErrNoCrossings
	}

	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}
	log := opts.logger()
	rng := randx.OrDefault(opts.Rand)
	b := budget.New(ctx, 0, opts.MaxRounds, 1)
	graph := GraphOf(ins)
	floor := max(ins.LowerBound(), 1)

	for sol.NumColors() > floor && !b.Step() {
		k := sol.NumColors()
		p := Problem{ID: ins.ID(), Graph: graph, K: k - 1, Seeds: Seeds(sol, rng)}
		out, err := solveRound(ctx, solver, p, opts)
		res.Rounds++
		if err != nil {
			return res, fmt.Errorf("external: round %d: %w", res.Rounds, err)
		}
		if out.Infeasible {
			res.Optimal = true
			log.Info("colour count proven optimal",
				slog.String("instance", ins.ID()),
				slog.Int("colors", k))
			break
		}
		if err := checkOutcome(graph, p.K, out); err != nil {
			return res, err
		}
		if out.Conflicts > 0 {
			log.Debug("external round failed",
				slog.String("instance", ins.ID()),
				slog.Int("colors", p.K),
				slog.Int("conflicts", out.Conflicts))
			continue
		}

		next, err := coloring.FromColors(ins, out.Colors)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrBadOutcome, err)
		}
		if err := next.Verify(); err != nil {
			return res, fmt.Errorf("%w: %w", ErrBadOutcome, err)
		}
		sol.CopyFrom(next)
		res.Reductions++
		res.To = sol.NumColors()
		log.Info("successful improvement",
			slog.String("instance", ins.ID()),
			slog.Int("from", k),
			slog.Int("colors", res.To))
		if st != nil {
			if _, err := st.SaveIfBetter(sol); err != nil {
				return res, fmt.Errorf("external: persist: %w", err)
			}
		}
	}

	return res, nil
}

func solveRound(ctx context.Context, solver Solver, p Problem, opts Options) (Outcome, error) {
	if opts.RoundTime > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.RoundTime)
		defer cancel()
	}
	return solver.Solve(ctx, p)
}

func checkOutcome(g Graph, k int, out Outcome) error {
	if len(out.Colors) != g.Len() {
		return fmt.Errorf("%w: %d colours for %d items", ErrBadOutcome, len(out.Colors), g.Len())
	}
	for i, c := range out.Colors {
		if c < 0 || c >= k {
			return fmt.Errorf("%w: item %d colour %d of %d", ErrBadOutcome, i, c, k)
		}
	}
	if n := g.Conflicts(out.Colors); n != out.Conflicts {
		return fmt.Errorf("%w: reported %d conflicts, found %d", ErrBadOutcome, out.Conflicts, n)
	}

	return nil
}
