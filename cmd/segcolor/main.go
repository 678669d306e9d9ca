// Command segcolor colours the segments of CG:SHOP 2022 style instances so
// that crossing segments get different colours, keeping the best colouring
// of every instance in a solutions folder.
//
// Instance paths are read from standard input, separated by white space:
//
//	ls instances/*.json | segcolor -c -t 8 -time 10m
//
// Exactly one engine flag may be given; without one the degree-sorted
// greedy colouring is computed and saved when it beats the stored one.
//
// Exit status is 0 when every file succeeded, 1 when some file failed and
// 2 on a usage or configuration error.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/segcolor/batch"
	"github.com/katalvlaran/segcolor/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// engineFlags maps each engine switch to its engine name.
var engineFlags = []struct{ flag, engine, usage string }{
	{"c", config.EngineRepair, "run the bad-item conflict improver"},
	{"o", config.EngineSearch, "run the badify local search (see -b)"},
	{"r", config.EngineRecursive, "colour by recursive line splits"},
	{"g", config.EngineGenetic, "run the population recombination engine"},
	{"head", config.EngineHead, "run external solver rounds with the SAT backend"},
	{"tabu", config.EngineTabu, "run tabu descent from the stored best"},
	{"table", config.EngineTable, "tabulate lower bound against stored colours"},
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("segcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: segcolor [flags] < file-list")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "YAML configuration file")
		threads    = fs.Int("t", 1, "number of worker threads")
		badify     = fs.Int("b", 0, "items un-coloured per local search step (default from config)")
		iters      = fs.Int("i", 0, "iteration cap per file, 0 for none")
		timeLimit  = fs.Duration("time", 0, "time limit per file, 0 for none")
		seed       = fs.Int64("seed", 0, "random seed")
		saveFrom   = fs.String("sf", "", "import solutions from `dir` when they are better")
		solutions  = fs.String("solutions", config.DefaultSolutions, "solutions `dir`")
		scratch    = fs.Bool("scratch", false, "start from greedy instead of the stored best")
		dimacs     = fs.Bool("dimacs", false, "read instances as DIMACS edge lists")
		crossing   = fs.String("crossing", "exact", "crossing method: exact, sweep or brute")
		metrics    = fs.String("metrics", "", "serve Prometheus metrics on `addr`")
		logLevel   = fs.String("log-level", "info", "log level: debug, info, warn or error")
		logFormat  = fs.String("log-format", "text", "log format: text or json")
	)
	picked := make(map[string]*bool, len(engineFlags))
	for _, e := range engineFlags {
		picked[e.flag] = fs.Bool(e.flag, false, e.usage)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "segcolor:", err)
		return 2
	}
	// explicitly set flags override the file
	var engines []string
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.Run.Threads = *threads
		case "b":
			cfg.LocalSearch.Badify = *badify
		case "i":
			cfg.Run.Iterations = *iters
		case "time":
			cfg.Run.TimeLimit = *timeLimit
		case "seed":
			cfg.Run.Seed = *seed
		case "sf":
			cfg.Run.SaveFrom = *saveFrom
			engines = append(engines, config.EngineSave)
		case "solutions":
			cfg.Run.Solutions = *solutions
		case "scratch":
			cfg.Run.Scratch = *scratch
		case "dimacs":
			cfg.Run.DIMACS = *dimacs
		case "crossing":
			cfg.Run.Crossing = *crossing
		case "metrics":
			cfg.Metrics.Addr = *metrics
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		}
	})
	for _, e := range engineFlags {
		if *picked[e.flag] {
			engines = append(engines, e.engine)
		}
	}
	switch len(engines) {
	case 0:
	case 1:
		cfg.Run.Engine = engines[0]
	default:
		fmt.Fprintf(stderr, "segcolor: conflicting engine flags: %s\n", strings.Join(engines, ", "))
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "segcolor:", err)
		return 2
	}

	logger := newLogger(cfg.Log, stderr)
	files, err := readFiles(stdin)
	if err != nil {
		fmt.Fprintln(stderr, "segcolor: reading file list:", err)
		return 2
	}

	r, err := batch.New(cfg, batch.WithLogger(logger), batch.WithTableOutput(stdout))
	if err != nil {
		fmt.Fprintln(stderr, "segcolor:", err)
		return 2
	}
	logger = logger.With(slog.String("run_id", r.RunID()))

	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, logger)
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	logger.Info("starting",
		slog.String("engine", cfg.Run.Engine),
		slog.Int("files", len(files)),
		slog.Int("threads", cfg.Run.Threads))
	reports, err := r.Run(ctx, files)
	failed := 0
	for _, rep := range reports {
		if rep.Err != nil {
			failed++
			continue
		}
		fmt.Fprintf(stdout, "%s: %s %d -> %d colors%s\n", rep.File, rep.Instance, rep.From, rep.To, savedMark(rep.Saved))
	}
	if err != nil {
		logger.Error("run finished with errors", slog.Int("failed", failed), slog.Any("err", err))
		return 1
	}

	return 0
}

func savedMark(saved bool) string {
	if saved {
		return " (saved)"
	}
	return ""
}

// readFiles splits r on white space.
func readFiles(r io.Reader) ([]string, error) {
	var files []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		files = append(files, sc.Text())
	}

	return files, sc.Err()
}

func newLogger(c config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.Level))
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func serveMetrics(addr string, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.Any("err", err))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", addr))

	return srv
}
