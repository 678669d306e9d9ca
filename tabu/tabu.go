// SPDX-License-Identifier: MIT

package tabu

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/internal/randx"
)

// Result summarises one search.
type Result struct {
	Initial    int // conflicting pairs at the start
	Conflicts  int // conflicting pairs of the returned colouring
	Iterations int
	Solved     bool
}

type move struct{ item, color int }

type engine struct {
	ins  *instance.Instance
	sol  *coloring.Solution
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	k        int
	confs    []int32 // m×k, row-major
	tabu     []int   // m×k
	best     []int
	total    int
	bestSeen int
	stale    int
	iter     int
	moves    []move
}

func newEngine(sol *coloring.Solution, opts Options) (*engine, error) {
	ins := sol.Instance()
	if ins.Len() > 0 && !ins.HasCrossings() {
		return nil, ErrNoCrossings
	}

	return &engine{
		ins:  ins,
		sol:  sol,
		opts: opts,
		rng:  randx.OrDefault(opts.Rand),
		log:  opts.logger(),
	}, nil
}

// Run searches for a conflict-free colouring of sol with sol.NumColors()
// colours. A colouring without conflicts is returned unchanged at once.
// Otherwise sol ends up holding the best colouring seen; on success its
// colour count is recomputed.
func Run(ctx context.Context, sol *coloring.Solution, opts Options) (Result, error) {
	e, err := newEngine(sol, opts)
	if err != nil {
		return Result{}, err
	}
	b := budget.New(ctx, opts.TimeLimit, opts.MaxIters, opts.checkEvery())

	return e.search(b, 0)
}

// search runs until zero conflicts, budget exhaustion or, when limit > 0,
// limit iterations.
func (e *engine) search(b *budget.Budget, limit int) (Result, error) {
	if err := e.init(); err != nil {
		return Result{}, err
	}
	res := Result{Initial: e.total, Conflicts: e.total}
	if e.total == 0 {
		res.Solved = true
		return res, nil
	}
	if e.k < 2 {
		// No other colour to move to.
		return res, nil
	}

	for e.total > 0 && (limit <= 0 || e.iter < limit) && !b.Step() {
		e.step()
	}

	if e.total > e.bestSeen {
		copy(e.sol.Colors(), e.best)
		e.total = e.bestSeen
	}
	res.Conflicts = e.total
	res.Iterations = e.iter
	res.Solved = e.total == 0
	if res.Solved {
		e.sol.Recompute()
	}

	return res, nil
}

func (e *engine) init() error {
	k := e.sol.NumColors()
	cols := e.sol.Colors()
	for i, c := range cols {
		if c < 0 || c >= k {
			return fmt.Errorf("%w: item %d colour %d of %d", ErrInvalidInput, i, c, k)
		}
	}
	m := len(cols)
	e.k = k
	e.confs = resize32(e.confs, m*k)
	e.tabu = resizeInt(e.tabu, m*k)
	e.total, e.stale, e.iter = 0, 0, 0
	for i := 0; i < m; i++ {
		row := e.ins.Conflicts(i)
		for f, ok := row.NextSet(0); ok; f, ok = row.NextSet(f + 1) {
			e.confs[i*k+cols[f]]++
		}
		e.total += int(e.confs[i*k+cols[i]])
	}
	e.total /= 2
	e.bestSeen = e.total
	e.best = append(e.best[:0], cols...)

	return nil
}

// step applies one move.
func (e *engine) step() {
	e.iter++
	k := e.k
	cols := e.sol.Colors()
	if e.opts.ProgressEvery > 0 && e.iter%e.opts.ProgressEvery == 0 {
		e.log.Info("tabu progress",
			slog.String("instance", e.ins.ID()),
			slog.Int("iter", e.iter),
			slog.Int("conflicts", e.total),
			slog.Int("best", e.bestSeen),
			slog.Int("colors", k))
	}

	conflicted := 0
	bestDelta := 0
	e.moves = e.moves[:0]
	for i, ci := range cols {
		own := e.confs[i*k+ci]
		if own == 0 {
			continue
		}
		conflicted++
		for c := 0; c < k; c++ {
			if c == ci {
				continue
			}
			delta := int(e.confs[i*k+c] - own)
			if e.iter < e.tabu[i*k+c] && e.total+delta >= e.bestSeen {
				continue
			}
			switch {
			case len(e.moves) == 0 || delta < bestDelta:
				bestDelta = delta
				e.moves = append(e.moves[:0], move{i, c})
			case delta == bestDelta:
				e.moves = append(e.moves, move{i, c})
			}
		}
	}
	if len(e.moves) == 0 {
		return
	}

	mv := e.moves[e.rng.Intn(len(e.moves))]
	old := cols[mv.item]
	cols[mv.item] = mv.color
	row := e.ins.Conflicts(mv.item)
	for f, ok := row.NextSet(0); ok; f, ok = row.NextSet(f + 1) {
		e.confs[int(f)*k+old]--
		e.confs[int(f)*k+mv.color]++
	}
	e.total += bestDelta

	tenure := int(e.opts.TenureFactor*float64(conflicted)) +
		e.rng.Intn(e.opts.jitter()) + 1 +
		e.stale/e.opts.staleDivisor()
	e.tabu[mv.item*k+old] = e.iter + tenure

	if e.total < e.bestSeen {
		e.bestSeen = e.total
		copy(e.best, cols)
		e.stale = 0
	} else {
		e.stale++
	}
}

func resize32(s []int32, n int) []int32 {
	if cap(s) < n {
		return make([]int32, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}

func resizeInt(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}
	s = s[:n]
	for i := range s {
		s[i] = 0
	}
	return s
}
