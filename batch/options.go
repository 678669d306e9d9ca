package batch

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/segcolor/external"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithSolver replaces the SAT backend used by the head engine.
func WithSolver(s external.Solver) Option {
	if s == nil {
		panic("batch: WithSolver(nil)")
	}
	return func(r *Runner) { r.solver = s }
}

// WithRunID fixes the run identifier instead of a random UUID.
func WithRunID(id string) Option {
	return func(r *Runner) { r.runID = id }
}

// WithTableOutput sets where the table engine writes. Default is io.Discard.
func WithTableOutput(w io.Writer) Option {
	if w == nil {
		panic("batch: WithTableOutput(nil)")
	}
	return func(r *Runner) { r.out = w }
}
