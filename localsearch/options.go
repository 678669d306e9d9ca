package localsearch

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/segcolor/internal/budget"
)

// Defaults.
const (
	DefaultBadify        = 100
	DefaultStallLimit    = 50_000
	DefaultProgressEvery = 1000
)

// Options configures Run. Zero TimeLimit and zero MaxIters leave the search
// bounded only by ctx and the lower bound.
type Options struct {
	Badify     int
	StallLimit int

	TimeLimit     time.Duration
	MaxIters      int
	CheckEvery    int
	ProgressEvery int

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		Badify:        DefaultBadify,
		StallLimit:    DefaultStallLimit,
		CheckEvery:    budget.DefaultCheckEvery,
		ProgressEvery: DefaultProgressEvery,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) stallLimit() int {
	if o.StallLimit > 0 {
		return o.StallLimit
	}
	return DefaultStallLimit
}
