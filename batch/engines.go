package batch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/config"
	"github.com/katalvlaran/segcolor/external"
	"github.com/katalvlaran/segcolor/genetic"
	"github.com/katalvlaran/segcolor/localsearch"
	"github.com/katalvlaran/segcolor/recursive"
	"github.com/katalvlaran/segcolor/repair"
	"github.com/katalvlaran/segcolor/store"
	"github.com/katalvlaran/segcolor/tabu"
)

// outcome is what an engine hands back to the runner. sol must be valid.
type outcome struct {
	sol        *coloring.Solution
	reductions int
	restarts   int
}

// engine improves j.start. It may persist intermediate results itself;
// the runner offers the final colouring to the store afterwards.
type engine func(ctx context.Context, r *Runner, j *job) (outcome, error)

var engines = map[string]engine{
	config.EngineGreedy:    runGreedy,
	config.EngineRepair:    runRepair,
	config.EngineSearch:    runSearch,
	config.EngineRecursive: runRecursive,
	config.EngineGenetic:   runGenetic,
	config.EngineHead:      runHead,
	config.EngineTabu:      runTabu,
	config.EngineSave:      runSave,
}

// runGreedy keeps the degree-sorted greedy colouring computed as a start.
func runGreedy(_ context.Context, _ *Runner, j *job) (outcome, error) {
	sol := coloring.New(j.ins)
	sol.GreedySorted()

	return outcome{sol: sol}, nil
}

func runRepair(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts, err := r.cfg.RepairOptions()
	if err != nil {
		return outcome{}, err
	}
	opts.Logger, opts.Rand = j.log, j.rng
	sol := j.start.Clone()
	res, err := repair.Run(ctx, sol, r.st, opts)
	if err != nil {
		return outcome{}, err
	}

	return outcome{sol: sol, reductions: res.Reductions, restarts: res.Restarts}, nil
}

func runSearch(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts := r.cfg.LocalSearchOptions()
	opts.Logger, opts.Rand = j.log, j.rng
	sol := j.start.Clone()
	res, err := localsearch.Run(ctx, sol, r.st, opts)
	if err != nil {
		return outcome{}, err
	}

	return outcome{sol: sol, reductions: res.Reductions, restarts: res.Restarts}, nil
}

// runRecursive colours the instance from scratch; the start is ignored and
// the store keeps whichever colouring is better.
func runRecursive(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts := r.cfg.RecursiveOptions()
	opts.Logger, opts.Rand = j.log, j.rng
	sol, err := recursive.Solve(ctx, j.ins, opts)
	if err != nil {
		return outcome{}, err
	}

	return outcome{sol: sol}, nil
}

func runGenetic(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts := r.cfg.GeneticOptions()
	opts.Logger, opts.Rand = j.log, j.rng
	g, err := genetic.New(j.ins, j.start.Clone(), r.st, opts)
	if err != nil {
		return outcome{}, err
	}
	sol, err := g.Run(ctx)
	if err != nil {
		return outcome{}, err
	}

	return outcome{sol: sol, reductions: g.Reductions()}, nil
}

func runHead(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts := r.cfg.ExternalOptions()
	opts.Logger, opts.Rand = j.log, j.rng
	sol := j.start.Clone()
	res, err := external.Run(ctx, sol, r.st, r.solver, opts)
	if err != nil {
		return outcome{}, err
	}
	if res.Optimal {
		j.log.Info("colour count proven optimal")
	}

	return outcome{sol: sol, reductions: res.Reductions}, nil
}

func runTabu(ctx context.Context, r *Runner, j *job) (outcome, error) {
	opts := r.cfg.TabuOptions()
	opts.Logger, opts.Rand = j.log, j.rng
	sol := j.start.Clone()
	res, err := tabu.Descent(ctx, sol, r.st, opts)
	if err != nil {
		return outcome{}, err
	}

	return outcome{sol: sol, reductions: res.Reductions}, nil
}

// runSave imports the colouring stored under cfg.Run.SaveFrom. A missing
// file keeps the start; an invalid one is an error.
func runSave(_ context.Context, r *Runner, j *job) (outcome, error) {
	sol, found, err := store.New(r.cfg.Run.SaveFrom).Load(j.ins)
	if err != nil {
		return outcome{}, err
	}
	if !found {
		j.log.Warn("no solution to import", "folder", r.cfg.Run.SaveFrom)
		return outcome{sol: j.start}, nil
	}
	if err := sol.Verify(); err != nil {
		return outcome{}, fmt.Errorf("%s: %w", r.cfg.Run.SaveFrom, err)
	}
	j.log.Info("verified", "folder", r.cfg.Run.SaveFrom, "colors", sol.NumColors())

	return outcome{sol: sol}, nil
}
