// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScale sets the unit length of the deterministic shapes. Panics on
// non-positive values.
func WithScale(unit int64) BuilderOption {
	if unit <= 0 {
		panic("builder: WithScale: unit must be positive")
	}
	return func(c *builderConfig) { c.scale = unit }
}

// WithGap sets the horizontal gap between composed shapes. Panics on
// non-positive values.
func WithGap(gap int64) BuilderOption {
	if gap <= 0 {
		panic("builder: WithGap: gap must be positive")
	}
	return func(c *builderConfig) { c.gap = gap }
}

// WithSpan sets the side of the square RandomSegments samples from. Panics
// below 2.
func WithSpan(span int64) BuilderOption {
	if span < 2 {
		panic("builder: WithSpan: span must be at least 2")
	}
	return func(c *builderConfig) { c.span = span }
}
