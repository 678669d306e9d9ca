package genetic

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/repair"
	"github.com/katalvlaran/segcolor/store"
	"github.com/katalvlaran/segcolor/tabu"
)

// Engine is the population engine for one instance. It is not safe for
// concurrent use.
type Engine struct {
	ins  *instance.Instance
	best *coloring.Solution
	st   *store.Store
	opts Options
	rng  *rand.Rand
	bits *randx.Bits
	log  *slog.Logger

	pop         []*member
	generations int
	reductions  int
}

// New prepares an engine starting from the valid colouring seed. A nil st
// disables persistence.
func New(ins *instance.Instance, seed *coloring.Solution, st *store.Store, opts Options) (*Engine, error) {
	if ins.Len() > 0 && !ins.HasCrossings() {
		return nil, ErrNoCrossings
	}
	if seed.Instance() != ins {
		return nil, ErrMismatch
	}
	if err := seed.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	opts = opts.normalize()
	rng := randx.OrDefault(opts.Rand)

	return &Engine{
		ins:  ins,
		best: seed.Clone(),
		st:   st,
		opts: opts,
		rng:  rng,
		bits: randx.NewBits(rng),
		log:  opts.Logger,
	}, nil
}

// Generations returns the number of children produced so far.
func (g *Engine) Generations() int { return g.generations }

// Reductions returns the number of colour reductions so far.
func (g *Engine) Reductions() int { return g.reductions }

// Run evolves the population until ctx ends, TimeLimit passes,
// MaxGenerations children were produced or the lower bound is reached. It
// returns a clone of the best valid colouring found.
func (g *Engine) Run(ctx context.Context) (*coloring.Solution, error) {
	if g.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.TimeLimit)
		defer cancel()
	}
	b := budget.New(ctx, 0, g.opts.MaxGenerations, 1)
	floor := max(g.ins.LowerBound(), 1)

	for g.best.NumColors() > floor {
		if len(g.pop) == 0 {
			if err := g.populate(ctx); err != nil {
				return g.best.Clone(), err
			}
			if len(g.pop) == 0 {
				break // budget ended while seeding
			}
			continue
		}
		if b.Step() {
			break
		}
		if err := g.generation(ctx); err != nil {
			return g.best.Clone(), err
		}
	}

	return g.best.Clone(), nil
}

// populate seeds PopSize members one colour below the best. A seeding
// attempt that removes the colour outright is an improvement and restarts
// seeding one level lower.
func (g *Engine) populate(ctx context.Context) error {
	g.pop = g.pop[:0]
	for len(g.pop) < g.opts.PopSize {
		if ctx.Err() != nil {
			g.pop = g.pop[:0]
			return nil
		}
		k := g.best.NumColors()
		sol := g.best.Clone()
		ropts := repair.QuickOptions(g.opts.SeedRepairTime)
		ropts.Rand = randx.Derive(g.rng, uint64(len(g.pop)))
		ropts.Logger = g.log
		res, err := repair.Eliminate(ctx, sol, ropts)
		if err != nil {
			return fmt.Errorf("genetic: seeding: %w", err)
		}
		if res.Reduced {
			if err := g.improve(sol); err != nil {
				return err
			}
			g.pop = g.pop[:0]
			if g.best.NumColors() <= max(g.ins.LowerBound(), 1) {
				return nil
			}
			continue
		}

		work := res.Working
		t := k - 1
		for _, i := range res.Bad {
			work.SetColor(i, g.rng.Intn(t))
		}
		work.SetNumColors(t)
		g.pop = append(g.pop, newMember(work))
	}
	sortPopulation(g.pop)
	g.log.Debug("population seeded",
		slog.String("instance", g.ins.ID()),
		slog.Int("colors", g.best.NumColors()-1),
		slog.Int("best_fitness", g.pop[0].fitness))

	return nil
}

// generation produces and places one child.
func (g *Engine) generation(ctx context.Context) error {
	g.generations++
	t := g.best.NumColors() - 1
	idx := g.rng.Perm(len(g.pop))[:g.opts.Parents]
	parents := make([]*member, len(idx))
	for i, j := range idx {
		parents[i] = g.pop[j]
	}

	child := g.crossover(parents, t)
	topts := tabu.DefaultOptions()
	topts.MaxIters = g.opts.TabuIters
	topts.ProgressEvery = 0
	topts.Rand = g.rng
	topts.Logger = g.log
	res, err := tabu.Run(ctx, child, topts)
	if err != nil {
		return fmt.Errorf("genetic: tabu: %w", err)
	}
	if g.opts.ProgressEvery > 0 && g.generations%g.opts.ProgressEvery == 0 {
		g.log.Info("genetic progress",
			slog.String("instance", g.ins.ID()),
			slog.Int("generation", g.generations),
			slog.Int("colors", t),
			slog.Int("conflicts", res.Conflicts),
			slog.Int("best_fitness", g.pop[0].fitness))
	}

	if res.Solved {
		if err := g.improve(child); err != nil {
			return err
		}
		g.reseed(child)
		return nil
	}

	c := newMember(child)
	at, dist := g.nearest(c)
	if dist < g.ins.Len()/g.opts.SimilarityDivisor {
		if c.fitness <= g.pop[at].fitness {
			g.pop[at] = c
			sortPopulation(g.pop)
		}
		return nil
	}
	g.pop = append(g.pop, c)
	sortPopulation(g.pop)
	g.evict()

	return nil
}

// improve records a valid colouring with fewer colours than the best.
func (g *Engine) improve(sol *coloring.Solution) error {
	sol.Recompute()
	if !sol.IsBetter(g.best) {
		return nil
	}
	from := g.best.NumColors()
	g.best.CopyFrom(sol)
	g.reductions++
	g.log.Info("successful improvement",
		slog.String("instance", g.ins.ID()),
		slog.Int("from", from),
		slog.Int("colors", g.best.NumColors()))
	if g.st != nil {
		if _, err := g.st.SaveIfBetter(g.best); err != nil {
			return fmt.Errorf("genetic: persist: %w", err)
		}
	}

	return nil
}

// reseed replaces every member with a copy of the new best whose top colour
// is scattered over the others.
func (g *Engine) reseed(best *coloring.Solution) {
	k := g.best.NumColors()
	if k <= max(g.ins.LowerBound(), 1) {
		g.pop = g.pop[:0]
		return
	}
	for i := range g.pop {
		sol := best.Clone()
		for j, c := range sol.Colors() {
			if c == k-1 {
				sol.SetColor(j, g.rng.Intn(k-1))
			}
		}
		sol.SetNumColors(k - 1)
		g.pop[i] = newMember(sol)
	}
	sortPopulation(g.pop)
}
