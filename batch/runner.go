package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/segcolor/coloring"
	"github.com/katalvlaran/segcolor/config"
	"github.com/katalvlaran/segcolor/external"
	"github.com/katalvlaran/segcolor/instance"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/satcolor"
	"github.com/katalvlaran/segcolor/store"
)

const tracerName = "segcolor/batch"

// Report describes the outcome of one file.
type Report struct {
	File     string
	Instance string
	Engine   string
	// From is the colour count of the starting colouring, To the count of
	// the colouring the engine returned.
	From, To   int
	Reductions int
	Restarts   int
	// Saved is set when the stored solution improved while the file ran.
	Saved bool
	// Best is the colour count of the stored solution after the run, zero
	// when none is stored.
	Best     int
	Duration time.Duration
	Err      error
}

// Runner processes instance files with one engine.
type Runner struct {
	cfg    config.Config
	st     *store.Store
	log    *slog.Logger
	solver external.Solver
	runID  string
	out    io.Writer
	method instance.CrossingMethod
	run    engine
}

// New validates cfg and builds a Runner writing to cfg.Run.Solutions.
func New(cfg config.Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	method, err := cfg.CrossingMethod()
	if err != nil {
		return nil, err
	}
	run, ok := engines[cfg.Run.Engine]
	if !ok && cfg.Run.Engine != config.EngineTable {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, cfg.Run.Engine)
	}

	r := &Runner{
		cfg:    cfg,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:    io.Discard,
		method: method,
		run:    run,
	}
	for _, fn := range opts {
		fn(r)
	}
	if r.runID == "" {
		r.runID = uuid.New().String()
	}
	r.log = r.log.With(slog.String("run_id", r.runID))
	r.st = store.New(cfg.Run.Solutions, store.WithLogger(r.log))
	if r.solver == nil {
		r.solver = satcolor.New(cfg.External.RoundTime, r.log)
	}

	return r, nil
}

// RunID returns the identifier attached to every log record and span.
func (r *Runner) RunID() string { return r.runID }

// Store returns the solution store.
func (r *Runner) Store() *store.Store { return r.st }

// Run processes files with cfg.Run.Threads workers and returns one report
// per file, in input order. The error joins every per-file failure, plus
// the context error when the run was cut short. The table engine delegates
// to Tabulate and returns no reports.
func (r *Runner) Run(ctx context.Context, files []string) ([]Report, error) {
	if r.cfg.Run.Engine == config.EngineTable {
		_, err := r.Tabulate(ctx, files)
		return nil, err
	}

	reports := make([]Report, len(files))
	var (
		mu   sync.Mutex
		next int
		wg   sync.WaitGroup
	)
	threads := min(r.cfg.Run.Threads, max(len(files), 1))
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for {
				mu.Lock()
				if next >= len(files) || ctx.Err() != nil {
					mu.Unlock()
					return
				}
				i := next
				next++
				mu.Unlock()

				r.log.Info("processing file",
					slog.Int("worker", worker),
					slog.Int("index", i+1),
					slog.Int("total", len(files)),
					slog.String("file", files[i]))
				reports[i] = r.process(ctx, i, files[i])
			}
		}(t)
	}
	wg.Wait()

	var errs []error
	for i := range reports {
		if i >= next {
			reports[i] = Report{File: files[i], Engine: r.cfg.Run.Engine, Err: ctx.Err()}
			continue
		}
		if reports[i].Err != nil {
			errs = append(errs, reports[i].Err)
		}
	}
	if next < len(files) {
		errs = append(errs, ctx.Err())
	}

	return reports, errors.Join(errs...)
}

// process runs the engine on one file. Every failure lands in Report.Err,
// an engine panic included.
func (r *Runner) process(ctx context.Context, index int, path string) (rep Report) {
	name := r.cfg.Run.Engine
	rep = Report{File: path, Engine: name}
	start := time.Now()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "batch.file",
		trace.WithAttributes(
			attribute.String("run_id", r.runID),
			attribute.String("engine", name),
			attribute.String("file", path),
		),
	)
	defer func() {
		if p := recover(); p != nil {
			rep.Err = fmt.Errorf("%w: %s: %s: panic: %v", ErrEngine, name, path, p)
		}
		rep.Duration = time.Since(start)
		if rep.Err != nil {
			span.RecordError(rep.Err)
			span.SetStatus(codes.Error, "file failed")
			r.log.Error("file failed", slog.String("file", path), slog.Any("err", rep.Err))
		} else {
			span.SetAttributes(
				attribute.Int("colors.from", rep.From),
				attribute.Int("colors.to", rep.To),
				attribute.Bool("saved", rep.Saved),
			)
		}
		record(rep)
		span.End()
	}()

	ins, err := r.load(path, false)
	if err != nil {
		rep.Err = err
		return rep
	}
	rep.Instance = ins.ID()
	span.SetAttributes(attribute.String("instance", ins.ID()), attribute.Int("items", ins.Len()))

	j := &job{
		path: path,
		ins:  ins,
		rng:  randx.Derive(randx.FromSeed(r.cfg.Run.Seed), uint64(index)),
		log:  r.log.With(slog.String("instance", ins.ID())),
	}
	before, err := r.storedColors(ins)
	if err != nil {
		rep.Err = err
		return rep
	}
	if j.start, err = r.startFor(ins); err != nil {
		rep.Err = err
		return rep
	}
	rep.From = j.start.NumColors()

	ectx, espan := otel.Tracer(tracerName).Start(ctx, "batch.engine."+name)
	out, err := r.run(ectx, r, j)
	if err != nil {
		espan.RecordError(err)
		espan.SetStatus(codes.Error, "engine failed")
	}
	espan.End()
	if err != nil {
		rep.Err = fmt.Errorf("%w: %s: %s: %w", ErrEngine, name, path, err)
		return rep
	}

	rep.To = out.sol.NumColors()
	rep.Reductions = out.reductions
	rep.Restarts = out.restarts
	saved, err := r.st.SaveIfBetter(out.sol)
	if err != nil {
		rep.Err = fmt.Errorf("%w: %s: %s: %w", ErrEngine, name, path, err)
		return rep
	}
	after, err := r.storedColors(ins)
	if err != nil {
		rep.Err = fmt.Errorf("%w: %s: %s: %w", ErrEngine, name, path, err)
		return rep
	}
	if after <= ins.Len() {
		rep.Best = after
	}
	rep.Saved = saved || after < before
	j.log.Info("file done",
		slog.String("engine", name),
		slog.Int("from", rep.From),
		slog.Int("colors", rep.To),
		slog.Bool("saved", rep.Saved),
		slog.Int("best", rep.Best),
		slog.Duration("elapsed", time.Since(start)))

	return rep
}

// load reads path as DIMACS when configured or when it ends in .col, as a
// JSON instance otherwise. bare skips the crossing computation.
func (r *Runner) load(path string, bare bool) (*instance.Instance, error) {
	var (
		ins *instance.Instance
		err error
	)
	if r.cfg.Run.DIMACS || strings.EqualFold(filepath.Ext(path), ".col") {
		ins, err = instance.LoadDIMACS(path)
	} else {
		opts := []instance.Option{
			instance.WithCrossingMethod(r.method),
			instance.WithSeed(r.cfg.Run.Seed),
		}
		if bare {
			opts = append(opts, instance.WithoutCrossings())
		}
		ins, err = instance.Load(path, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return ins, nil
}

// storedColors returns the colour count on disk, or Len()+1 when nothing
// valid is stored.
func (r *Runner) storedColors(ins *instance.Instance) (int, error) {
	sol, found, err := r.st.Load(ins)
	if err != nil && !errors.Is(err, store.ErrMalformed) && !errors.Is(err, store.ErrMismatch) {
		return 0, err
	}
	if err != nil || !found || !sol.Valid() {
		return ins.Len() + 1, nil
	}

	return sol.NumColors(), nil
}

// startFor returns the degree-sorted greedy colouring with Scratch, the
// better of it and the stored best otherwise.
func (r *Runner) startFor(ins *instance.Instance) (*coloring.Solution, error) {
	greedy := coloring.New(ins)
	greedy.GreedySorted()
	if r.cfg.Run.Scratch {
		return greedy, nil
	}
	best, err := r.st.Best(ins)
	if err != nil {
		if errors.Is(err, store.ErrMalformed) || errors.Is(err, store.ErrMismatch) {
			r.log.Warn("ignoring stored solution", slog.String("instance", ins.ID()), slog.Any("err", err))
			return greedy, nil
		}
		return nil, err
	}
	if greedy.IsBetter(best) {
		return greedy, nil
	}

	return best, nil
}

// job is the per-file state handed to an engine.
type job struct {
	path  string
	ins   *instance.Instance
	start *coloring.Solution
	rng   *rand.Rand
	log   *slog.Logger
}
