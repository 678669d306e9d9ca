package localsearch

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/budget"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/store"
)

// Result summarises Run.
type Result struct {
	From, To   int
	Reductions int
	Iterations int
	Restarts   int
}

type searcher struct {
	ins  *instance.Instance
	best *coloring.Solution // valid, returned through the caller's sol
	st   *store.Store
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	k    int   // colour count of best; working colours are < k-1
	cols []int // working assignment, bad items keep stale colours
	bad  []bool
	list []int // bad items

	// candidate state of one iteration
	ncols []int
	nbad  []bool
	queue []int
	free  []bool
	avail []int
}

// Run improves the valid colouring sol until the budget ends or the lower
// bound is reached. On return sol holds the best colouring found; every
// improvement is offered to st (nil st skips persistence and restarts from
// the best colouring of this run).
func Run(ctx context.Context, sol *coloring.Solution, st *store.Store, opts Options) (Result, error) {
	ins := sol.Instance()
	if ins.Len() > 0 && !ins.HasCrossings() {
		return Result{}, ErrNoCrossings
	}
	if err := sol.Verify(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	m := ins.Len()
	s := &searcher{
		ins:   ins,
		best:  sol,
		st:    st,
		opts:  opts,
		rng:   randx.OrDefault(opts.Rand),
		log:   opts.logger(),
		bad:   make([]bool, m),
		nbad:  make([]bool, m),
		ncols: make([]int, m),
	}
	res := Result{From: sol.NumColors(), To: sol.NumColors()}
	floor := max(ins.LowerBound(), 1)
	if sol.NumColors() <= floor {
		return res, nil
	}

	b := budget.New(ctx, opts.TimeLimit, opts.MaxIters, opts.CheckEvery)
	s.init(sol)
	iter, lastImprove := 0, 0
	for !b.Step() {
		iter++
		if opts.ProgressEvery > 0 && iter%opts.ProgressEvery == 0 {
			s.log.Info("local search progress",
				slog.String("instance", ins.ID()),
				slog.Int("iter", iter),
				slog.Int("bad", len(s.list)),
				slog.Int("colors", s.k))
		}
		if iter-lastImprove > s.opts.stallLimit() {
			if err := s.restart(); err != nil {
				return res, err
			}
			res.Restarts++
			lastImprove = iter
		}

		before := len(s.list)
		s.iterate()
		if len(s.list) < before {
			lastImprove = iter
		}
		if len(s.list) > 0 {
			continue
		}

		improved, err := s.succeed()
		if err != nil {
			return res, err
		}
		res.Reductions++
		res.To = s.best.NumColors()
		lastImprove = iter
		if s.best.NumColors() <= floor {
			break
		}
		s.init(improved)
	}
	res.Iterations = iter

	return res, nil
}

// init moves a random colour class of from to slot k-1 and marks it bad.
func (s *searcher) init(from *coloring.Solution) {
	s.k = from.NumColors()
	s.cols = append(s.cols[:0], from.Colors()...)
	s.list = s.list[:0]
	target := s.rng.Intn(s.k)
	for i, c := range s.cols {
		s.bad[i] = false
		switch c {
		case target:
			s.cols[i] = s.k - 1
			s.bad[i] = true
			s.list = append(s.list, i)
		case s.k - 1:
			s.cols[i] = target
		}
	}
	if cap(s.free) < s.k-1 {
		s.free = make([]bool, s.k-1)
	}
	s.free = s.free[:s.k-1]
}

// iterate performs one badify-and-recolour move and keeps it when the bad
// set did not grow.
func (s *searcher) iterate() {
	copy(s.ncols, s.cols)
	copy(s.nbad, s.bad)
	s.queue = append(s.queue[:0], s.list...)

	good := len(s.cols) - len(s.list)
	for n := min(s.opts.Badify, good); n > 0; n-- {
		e := s.rng.Intn(len(s.cols))
		for s.nbad[e] {
			e = s.rng.Intn(len(s.cols))
		}
		s.nbad[e] = true
		s.queue = append(s.queue, e)
	}

	size := len(s.queue)
	for i := 0; i < size; i++ {
		e := s.queue[i]
		for c := range s.free {
			s.free[c] = true
		}
		row := s.ins.Conflicts(e)
		for f, ok := row.NextSet(0); ok; f, ok = row.NextSet(f + 1) {
			if !s.nbad[f] && s.ncols[f] < len(s.free) {
				s.free[s.ncols[f]] = false
			}
		}
		s.avail = s.avail[:0]
		for c, ok := range s.free {
			if ok {
				s.avail = append(s.avail, c)
			}
		}
		if len(s.avail) == 0 {
			s.queue = append(s.queue, e)
			continue
		}
		s.nbad[e] = false
		s.ncols[e] = s.avail[s.rng.Intn(len(s.avail))]
	}
	left := s.queue[size:]

	if len(left) > len(s.list) {
		return
	}
	s.cols, s.ncols = s.ncols, s.cols
	s.bad, s.nbad = s.nbad, s.bad
	s.list = append(s.list[:0], left...)
}

// succeed verifies the empty-bad-set colouring, stores it and returns a
// copy to continue from.
func (s *searcher) succeed() (*coloring.Solution, error) {
	from := s.best.NumColors()
	next := s.best.Clone()
	copy(next.Colors(), s.cols)
	next.Recompute()
	if err := next.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerify, err)
	}
	s.best.CopyFrom(next)
	s.log.Info("successful improvement",
		slog.String("instance", s.ins.ID()),
		slog.Int("from", from),
		slog.Int("colors", next.NumColors()))
	if s.st != nil {
		if _, err := s.st.SaveIfBetter(next); err != nil {
			return nil, fmt.Errorf("localsearch: persist: %w", err)
		}
	}

	return next, nil
}

// restart reloads the persisted best, or this run's best without a store.
func (s *searcher) restart() error {
	from := s.best
	if s.st != nil {
		stored, err := s.st.Best(s.ins)
		if err != nil {
			return fmt.Errorf("localsearch: reload: %w", err)
		}
		if stored.IsBetter(s.best) {
			s.best.CopyFrom(stored)
		}
	}
	s.log.Debug("local search stalled, restarting",
		slog.String("instance", s.ins.ID()),
		slog.Int("colors", from.NumColors()))
	s.init(s.best)

	return nil
}
