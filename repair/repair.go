package repair

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

// Result summarises Eliminate or Run.
type Result struct {
	From, To   int // colour counts before and after
	Reduced    bool
	Reductions int
	Iterations int
	Restarts   int
	// Working is the partial colouring when the budget ran out: every item
	// not in Bad holds a colour in [0, From-1). Nil after a success.
	Working *coloring.Solution
	Bad     []int
}

// engine holds the per-attempt state.
type engine struct {
	ins  *instance.Instance
	sol  *coloring.Solution
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	start  []int // colouring at attempt start
	k      int
	bad    []bool
	qcnt   []int64
	queue  badQueue
	weight []int64
	cand   []int
	evict  []int

	mode     Mode
	switchAt int
	iter     int
	restarts int
}

func newEngine(sol *coloring.Solution, opts Options) (*engine, error) {
	ins := sol.Instance()
	if ins.Len() > 0 && !ins.HasCrossings() {
		return nil, ErrNoCrossings
	}
	m := ins.Len()

	return &engine{
		ins:  ins,
		sol:  sol,
		opts: opts,
		rng:  randx.OrDefault(opts.Rand),
		log:  opts.logger(),
		bad:  make([]bool, m),
		qcnt: make([]int64, m),
	}, nil
}

// Eliminate makes one attempt at removing a colour from sol. On success sol
// holds a verified colouring with fewer colours. When the budget runs out
// sol is restored and the partial state is returned.
func Eliminate(ctx context.Context, sol *coloring.Solution, opts Options) (Result, error) {
	e, err := newEngine(sol, opts)
	if err != nil {
		return Result{}, err
	}
	b := budget.New(ctx, opts.TimeLimit, opts.MaxIters, opts.checkEvery())

	return e.eliminate(b)
}

func (e *engine) eliminate(b *budget.Budget) (Result, error) {
	k := e.sol.NumColors()
	res := Result{From: k, To: k}
	if k <= 1 {
		return res, nil
	}
	for i, c := range e.sol.Colors() {
		if c < 0 || c >= k {
			return res, fmt.Errorf("%w: item %d colour %d of %d", ErrInvalidInput, i, c, k)
		}
	}
	e.start = append(e.start[:0], e.sol.Colors()...)
	e.k = k
	e.iter, e.restarts = 0, 0
	e.init()

	for e.queue.len() > 0 {
		if b.Step() {
			res.Working = e.sol.Clone()
			res.Bad = e.queue.snapshot()
			e.restore()
			res.Iterations, res.Restarts = e.iter, e.restarts
			return res, nil
		}
		e.step()
	}

	e.sol.Recompute()
	res.To = e.sol.NumColors()
	res.Reduced = res.To < k
	res.Iterations, res.Restarts = e.iter, e.restarts
	if err := e.sol.Verify(); err != nil {
		e.restore()
		return res, fmt.Errorf("%w: %w", ErrVerify, err)
	}
	e.log.Debug("colour eliminated",
		slog.String("instance", e.ins.ID()),
		slog.Int("from", k),
		slog.Int("colors", res.To),
		slog.Int("iter", e.iter),
		slog.Int("restarts", e.restarts))

	return res, nil
}

// restore puts back the colouring the attempt started from.
func (e *engine) restore() {
	copy(e.sol.Colors(), e.start)
	e.sol.SetNumColors(e.k)
}

// init relabels the target class to k-1 and queues its items.
func (e *engine) init() {
	k := e.k
	for i := range e.bad {
		e.bad[i] = false
		e.qcnt[i] = 0
		if e.opts.SeedStuckWithDegree {
			e.qcnt[i] = int64(e.ins.Degree(i))
		}
	}
	e.queue.reset(e.opts.Policy)
	e.mode = e.opts.StartMode
	e.switchAt = e.opts.SwitchIters

	target := k - 1
	if e.opts.Target == SmallestClass {
		target = e.smallestClass()
	}
	cols := e.sol.Colors()
	for i, c := range cols {
		switch c {
		case target:
			cols[i] = k - 1
			e.bad[i] = true
			e.queue.push(i)
		case k - 1:
			cols[i] = target
		}
	}
	if cap(e.weight) < k-1 {
		e.weight = make([]int64, k-1)
	}
	e.weight = e.weight[:k-1]
}

// smallestClass picks uniformly among the classes of minimum size.
func (e *engine) smallestClass() int {
	sizes := e.sol.ClassSizes()
	best := -1
	e.cand = e.cand[:0]
	for c, n := range sizes {
		switch {
		case best < 0 || n < best:
			best = n
			e.cand = append(e.cand[:0], c)
		case n == best:
			e.cand = append(e.cand, c)
		}
	}

	return e.cand[e.rng.Intn(len(e.cand))]
}

// step recolours one bad item.
func (e *engine) step() {
	e.iter++
	if e.opts.ProgressEvery > 0 && e.iter%e.opts.ProgressEvery == 0 {
		e.log.Info("repair progress",
			slog.String("instance", e.ins.ID()),
			slog.Int("iter", e.iter),
			slog.Int("bad", e.queue.len()),
			slog.Int("colors", e.k),
			slog.String("mode", e.mode.String()))
	}

	item := e.queue.pop(e.rng)
	if e.mode == ScoreMode {
		e.qcnt[item]++
	}
	if e.opts.StuckLimit > 0 && e.qcnt[item] > e.opts.StuckLimit {
		e.restarts++
		e.log.Debug("repair stuck, restarting",
			slog.String("instance", e.ins.ID()),
			slog.Int("iter", e.iter))
		e.restore()
		e.init()
		return
	}

	c := e.chooseColor(item)
	cols := e.sol.Colors()
	e.bad[item] = false
	cols[item] = c

	e.evict = e.evict[:0]
	row := e.ins.Conflicts(item)
	for f, ok := row.NextSet(0); ok; f, ok = row.NextSet(f + 1) {
		if !e.bad[f] && cols[f] == c {
			e.bad[f] = true
			e.evict = append(e.evict, int(f))
		}
	}
	if e.opts.ShuffleNewBad {
		randx.Shuffle(e.evict, e.rng)
	}
	for _, f := range e.evict {
		e.queue.push(f)
	}

	if e.opts.Alternate && e.iter == e.switchAt {
		if e.mode == CountMode {
			e.mode = ScoreMode
			e.switchAt += e.opts.ScorePhase
		} else {
			e.mode = CountMode
			e.switchAt += e.opts.CountPhase
		}
	}
}

// chooseColor picks a colour in [0, k-1) for item by the current mode.
func (e *engine) chooseColor(item int) int {
	for c := range e.weight {
		e.weight[c] = 0
	}
	limit := e.k - 1
	cols := e.sol.Colors()
	row := e.ins.Conflicts(item)
	for f, ok := row.NextSet(0); ok; f, ok = row.NextSet(f + 1) {
		c := cols[f]
		if e.bad[f] || c >= limit {
			continue
		}
		if e.mode == ScoreMode {
			q := e.qcnt[f]
			e.weight[c] += e.opts.ScoreBase + q*q
		} else {
			e.weight[c]++
		}
	}

	low := e.weight[0]
	for _, w := range e.weight[1:] {
		if w < low {
			low = w
		}
	}
	e.cand = e.cand[:0]
	if e.mode == ScoreMode {
		bound := e.opts.tolerance() * float64(low)
		for c, w := range e.weight {
			if float64(w) <= bound {
				e.cand = append(e.cand, c)
			}
		}
	} else {
		for c, w := range e.weight {
			if w == low {
				e.cand = append(e.cand, c)
			}
		}
	}

	return e.cand[e.rng.Intn(len(e.cand))]
}
