// SPDX-License-Identifier: MIT

package tabu

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/segcolor/internal/budget"
)

// Defaults.
const (
	DefaultTenureFactor  = 0.6
	DefaultJitterMax     = 10
	DefaultStaleDivisor  = 1000
	DefaultCheckEvery    = 256
	DefaultProgressEvery = 100_000
	DefaultRoundIters    = 100_000
)

// Options configures Run and Descent. A zero MaxIters and a zero TimeLimit
// leave the search bounded only by ctx.
type Options struct {
	MaxIters     int
	TimeLimit    time.Duration
	TenureFactor float64
	JitterMax    int
	StaleDivisor int
	CheckEvery   int
	// ProgressEvery logs a progress line every that many iterations
	// (0 disables).
	ProgressEvery int

	// RoundIters caps each tabu search inside Descent.
	RoundIters int

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the reference tuning with no budget set.
func DefaultOptions() Options {
	return Options{
		TenureFactor:  DefaultTenureFactor,
		JitterMax:     DefaultJitterMax,
		StaleDivisor:  DefaultStaleDivisor,
		CheckEvery:    DefaultCheckEvery,
		ProgressEvery: DefaultProgressEvery,
		RoundIters:    DefaultRoundIters,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) checkEvery() int {
	if o.CheckEvery > 0 {
		return o.CheckEvery
	}
	return budget.DefaultCheckEvery
}

func (o Options) jitter() int {
	if o.JitterMax > 0 {
		return o.JitterMax
	}
	return 1
}

func (o Options) staleDivisor() int {
	if o.StaleDivisor > 0 {
		return o.StaleDivisor
	}
	return DefaultStaleDivisor
}

func (o Options) roundIters() int {
	if o.RoundIters > 0 {
		return o.RoundIters
	}
	return DefaultRoundIters
}
