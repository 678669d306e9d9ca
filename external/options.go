package external

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// DefaultMaxItems is the largest instance handed to a solver.
const DefaultMaxItems = 25_000

// Options configures Run.
type Options struct {
	MaxItems int
	// RoundTime bounds each Solve call (0 leaves it to the overall budget).
	RoundTime time.Duration
	TimeLimit time.Duration
	MaxRounds int

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the reference settings.
func DefaultOptions() Options {
	return Options{MaxItems: DefaultMaxItems, RoundTime: 10 * time.Second}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
