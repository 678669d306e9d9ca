package repair

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/segcolor/internal/budget"
)

// Policy selects which bad item is processed next.
type Policy int

const (
	// RandomPick takes a uniformly random bad item.
	RandomPick Policy = iota
	// FIFO takes the oldest bad item.
	FIFO
)

// Target selects the colour class to eliminate.
type Target int

const (
	// SmallestClass picks a random class among the smallest ones.
	SmallestClass Target = iota
	// LastClass picks colour k-1.
	LastClass
)

// Mode selects the colour choice rule.
type Mode int

const (
	// CountMode minimises the number of evicted neighbours.
	CountMode Mode = iota
	// ScoreMode weights evictions by how often the neighbour was requeued.
	ScoreMode
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ScoreMode {
		return "score"
	}
	return "count"
}

// Defaults of the improver preset.
const (
	DefaultSwitchIters   = 10_000
	DefaultScorePhase    = 20_000
	DefaultCountPhase    = 10_000
	DefaultStuckLimit    = 100_000
	DefaultTolerance     = 1.05
	DefaultScoreBase     = 1000
	DefaultCheckEvery    = 10_000
	DefaultProgressEvery = 1_000_000
)

// Defaults of the quick preset.
const (
	QuickTolerance     = 1.1
	QuickScoreBase     = 10
	QuickCheckEvery    = 200
	QuickProgressEvery = 10_000
)

// Options configures the improver.
type Options struct {
	Policy    Policy
	Target    Target
	StartMode Mode
	// Alternate toggles the mode at SwitchIters; the next switch comes
	// ScorePhase iterations later after entering score mode, CountPhase
	// after entering count mode.
	Alternate   bool
	SwitchIters int
	ScorePhase  int
	CountPhase  int

	// StuckLimit restarts the attempt once an item was processed this many
	// times (0 disables).
	StuckLimit int64
	Tolerance  float64
	ScoreBase  int64
	// SeedStuckWithDegree starts every qcnt at the item's degree.
	SeedStuckWithDegree bool
	// ShuffleNewBad enqueues evicted neighbours in random order.
	ShuffleNewBad bool

	TimeLimit     time.Duration
	MaxIters      int
	CheckEvery    int
	ProgressEvery int

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the long-running improver preset.
func DefaultOptions() Options {
	return Options{
		Policy:              RandomPick,
		Target:              SmallestClass,
		StartMode:           CountMode,
		Alternate:           true,
		SwitchIters:         DefaultSwitchIters,
		ScorePhase:          DefaultScorePhase,
		CountPhase:          DefaultCountPhase,
		StuckLimit:          DefaultStuckLimit,
		Tolerance:           DefaultTolerance,
		ScoreBase:           DefaultScoreBase,
		SeedStuckWithDegree: true,
		CheckEvery:          DefaultCheckEvery,
		ProgressEvery:       DefaultProgressEvery,
	}
}

// QuickOptions returns the short inner-step preset bounded by timeLimit.
func QuickOptions(timeLimit time.Duration) Options {
	return Options{
		Policy:        FIFO,
		Target:        LastClass,
		StartMode:     ScoreMode,
		Tolerance:     QuickTolerance,
		ScoreBase:     QuickScoreBase,
		ShuffleNewBad: true,
		TimeLimit:     timeLimit,
		CheckEvery:    QuickCheckEvery,
		ProgressEvery: QuickProgressEvery,
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

func (o Options) tolerance() float64 {
	if o.Tolerance < 1 {
		return 1
	}
	return o.Tolerance
}
