package recursive

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/repair"
)

type solver struct {
	opts Options
	rng  *rand.Rand
	log  *slog.Logger
}

// Solve returns a valid colouring of ins built by recursive line splits.
// Once ctx ends the remaining parts are coloured greedily.
func Solve(ctx context.Context, ins *instance.Instance, opts Options) (*coloring.Solution, error) {
	if !ins.Geometric() {
		return nil, ErrNotGeometric
	}
	if ins.Len() > 0 && !ins.HasCrossings() {
		return nil, ErrNoCrossings
	}
	opts = opts.normalize()
	s := &solver{opts: opts, rng: randx.OrDefault(opts.Rand), log: opts.Logger}

	sol, err := s.solve(ctx, ins, 0)
	if err != nil {
		return nil, err
	}
	if err := sol.Verify(); err != nil {
		return nil, fmt.Errorf("recursive: %w", err)
	}
	s.log.Debug("recursive colouring",
		slog.String("instance", ins.ID()),
		slog.Int("colors", sol.NumColors()))

	return sol, nil
}

func (s *solver) solve(ctx context.Context, ins *instance.Instance, depth int) (*coloring.Solution, error) {
	m := ins.Len()
	if m < s.opts.LeafSize || ctx.Err() != nil {
		return s.leaf(ctx, ins)
	}
	part, ok := Split(ins, s.rng, s.opts.Trials, s.opts.CoordRange)
	if !ok {
		return s.leaf(ctx, ins)
	}
	s.log.Debug("recursive split",
		slog.String("instance", ins.ID()),
		slog.Int("depth", depth),
		slog.Int("left", len(part.Left)),
		slog.Int("right", len(part.Right)),
		slog.Int("crossing", len(part.Crossing)))

	sol := coloring.New(ins)
	cols := sol.Colors()
	off := 0
	for _, side := range [][]int{part.Left, part.Right} {
		k, err := s.colorPart(ctx, ins, side, cols, 0, depth)
		if err != nil {
			return nil, err
		}
		off = max(off, k)
	}
	if _, err := s.colorPart(ctx, ins, part.Crossing, cols, off, depth); err != nil {
		return nil, err
	}
	sol.Recompute()
	s.reinsert(sol, part.Crossing, off)
	sol.Relabel()

	greedy := coloring.New(ins)
	greedy.GreedySorted()
	if greedy.NumColors() < sol.NumColors() {
		sol = greedy
	}
	return sol, s.quickRepair(ctx, sol, s.opts.MergeRepair, s.opts.MergeRepairSmall, smallMerge)
}

// colorPart solves the sub-instance on items and writes its colours, shifted
// by off, into cols. It returns the sub-instance's colour count.
func (s *solver) colorPart(ctx context.Context, ins *instance.Instance, items []int, cols []int, off, depth int) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	sub, err := ins.Sub(items)
	if err != nil {
		return 0, fmt.Errorf("recursive: %w", err)
	}
	part, err := s.solve(ctx, sub, depth+1)
	if err != nil {
		return 0, err
	}
	for j, i := range items {
		cols[i] = off + part.Color(j)
	}

	return part.NumColors(), nil
}

// reinsert moves crossing items into the lowest colour below off that none
// of their neighbours holds. Items are visited class by class, in random
// order within a class.
func (s *solver) reinsert(sol *coloring.Solution, crossing []int, off int) {
	if off == 0 || len(crossing) == 0 {
		return
	}
	ins := sol.Instance()
	order := append([]int(nil), crossing...)
	randx.Shuffle(order, s.rng)
	byClass := make([][]int, sol.NumColors())
	for _, i := range order {
		c := sol.Color(i)
		byClass[c] = append(byClass[c], i)
	}
	for _, class := range byClass {
		for _, i := range class {
			row := ins.Conflicts(i)
			for c := 0; c < off; c++ {
				if sol.CountColorIn(row, c) == 0 {
					sol.SetColor(i, c)
					break
				}
			}
		}
	}
}

func (s *solver) leaf(ctx context.Context, ins *instance.Instance) (*coloring.Solution, error) {
	sol := coloring.New(ins)
	sol.GreedySorted()

	return sol, s.quickRepair(ctx, sol, s.opts.LeafRepair, s.opts.LeafRepairTiny, tinyLeaf)
}

// quickRepair makes one elimination attempt; small parts get the short
// limit.
func (s *solver) quickRepair(ctx context.Context, sol *coloring.Solution, limit, short time.Duration, smallBelow int) error {
	if sol.NumColors() <= 1 || ctx.Err() != nil {
		return nil
	}
	if sol.Len() < smallBelow {
		limit = short
	}
	ropts := repair.QuickOptions(limit)
	ropts.Rand = s.rng
	ropts.Logger = s.log
	if _, err := repair.Eliminate(ctx, sol, ropts); err != nil {
		return fmt.Errorf("recursive: %w", err)
	}

	return nil
}
