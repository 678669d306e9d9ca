package instance

import "github.com/katalvlaran/segcolor/internal/randx"

// CrossingMethod selects how conflict rows of a geometric instance are built.
type CrossingMethod int

const (
	// Exact tests every pair of segments with overlapping x-ranges. The
	// cost is O(m log m) plus one test per such pair, so it degrades to
	// O(m²) when most x-ranges overlap, as with long near-horizontal
	// segments.
	Exact CrossingMethod = iota
	// SweepAdjacent records the pairs reported by the sweep-line
	// all-intersections mode.
	SweepAdjacent
	// BruteForce tests all pairs.
	BruteForce
)

// String returns the method name.
func (c CrossingMethod) String() string {
	switch c {
	case Exact:
		return "exact"
	case SweepAdjacent:
		return "sweep"
	case BruteForce:
		return "brute"
	}
	return "unknown"
}

// Option configures construction.
type Option func(*options)

type options struct {
	method  CrossingMethod
	compute bool
	seed    int64
}

func defaultOptions() options {
	return options{method: Exact, compute: true, seed: randx.DefaultSeed}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// WithCrossingMethod selects the crossing computation. Panics on an unknown
// method.
func WithCrossingMethod(m CrossingMethod) Option {
	if m < Exact || m > BruteForce {
		panic("instance: WithCrossingMethod: unknown method")
	}
	return func(o *options) { o.method = m }
}

// WithoutCrossings skips the crossing computation (lower bounds and
// tabulation only). ComputeCrossings can be called later.
func WithoutCrossings() Option {
	return func(o *options) { o.compute = false }
}

// WithSeed seeds the sweep-line skip list used by SweepAdjacent.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
