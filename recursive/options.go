package recursive

import (
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Defaults.
const (
	DefaultLeafSize         = 50
	DefaultTrials           = 2000
	DefaultCoordRange int64 = 100_000_000

	DefaultLeafRepair       = 5 * time.Millisecond
	DefaultLeafRepairTiny   = time.Millisecond
	DefaultMergeRepair      = 10 * time.Millisecond
	DefaultMergeRepairSmall = time.Millisecond

	tinyLeaf   = 5
	smallMerge = 100
)

// Options configures Solve.
type Options struct {
	LeafSize   int
	Trials     int
	CoordRange int64

	// LeafRepair bounds the repair of a leaf; leaves under five items use
	// LeafRepairTiny.
	LeafRepair     time.Duration
	LeafRepairTiny time.Duration
	// MergeRepair bounds the repair after a merge; parts under a hundred
	// items use MergeRepairSmall.
	MergeRepair      time.Duration
	MergeRepairSmall time.Duration

	Logger *slog.Logger
	Rand   *rand.Rand
}

// DefaultOptions returns the reference tuning.
func DefaultOptions() Options {
	return Options{
		LeafSize:         DefaultLeafSize,
		Trials:           DefaultTrials,
		CoordRange:       DefaultCoordRange,
		LeafRepair:       DefaultLeafRepair,
		LeafRepairTiny:   DefaultLeafRepairTiny,
		MergeRepair:      DefaultMergeRepair,
		MergeRepairSmall: DefaultMergeRepairSmall,
	}
}

func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.LeafSize < 1 {
		o.LeafSize = d.LeafSize
	}
	if o.Trials < 1 {
		o.Trials = d.Trials
	}
	if o.CoordRange < 2 {
		o.CoordRange = d.CoordRange
	}
	if o.LeafRepair <= 0 {
		o.LeafRepair = d.LeafRepair
	}
	if o.LeafRepairTiny <= 0 {
		o.LeafRepairTiny = d.LeafRepairTiny
	}
	if o.MergeRepair <= 0 {
		o.MergeRepair = d.MergeRepair
	}
	if o.MergeRepairSmall <= 0 {
		o.MergeRepairSmall = d.MergeRepairSmall
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}
