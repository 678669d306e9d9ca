package genetic

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Defaults.
const (
	DefaultPopSize           = 20
	DefaultParents           = 4
	DefaultSeedRepairTime    = time.Second
	DefaultTabuIters         = 100_000
	DefaultSimilarityDivisor = 10
)

// Options configures the engine. Zero TimeLimit and zero MaxGenerations
// leave Run bounded only by its context.
type Options struct {
	PopSize           int
	Parents           int
	SeedRepairTime    time.Duration
	TabuIters         int
	SimilarityDivisor int

	TimeLimit      time.Duration
	MaxGenerations int
	// ProgressEvery logs a progress line every that many generations
	// (0 disables).
	ProgressEvery int

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		PopSize:           DefaultPopSize,
		Parents:           DefaultParents,
		SeedRepairTime:    DefaultSeedRepairTime,
		TabuIters:         DefaultTabuIters,
		SimilarityDivisor: DefaultSimilarityDivisor,
		ProgressEvery:     100,
	}
}

// normalize fills unset fields with defaults and clamps Parents to PopSize.
func (o Options) normalize() Options {
	if o.PopSize < 2 {
		o.PopSize = DefaultPopSize
	}
	if o.Parents < 1 {
		o.Parents = DefaultParents
	}
	if o.Parents > o.PopSize {
		o.Parents = o.PopSize
	}
	if o.SeedRepairTime <= 0 {
		o.SeedRepairTime = DefaultSeedRepairTime
	}
	if o.TabuIters <= 0 {
		o.TabuIters = DefaultTabuIters
	}
	if o.SimilarityDivisor <= 0 {
		o.SimilarityDivisor = DefaultSimilarityDivisor
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
