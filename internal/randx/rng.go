// Package randx - RNG utilities shared by every search engine.
//
// This file centralizes deterministic random generation for the optimisers.
// A single *rand.Rand is created at the top level (CLI or test) and threaded
// explicitly through each engine; nothing in the module reads a global source.
//
// Goals:
//   - Determinism: same seed ⇒ identical search trajectories.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Performance: O(1) helpers, O(n) shuffles, no allocations in hot paths.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for batch workers.
package randx

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// OrDefault returns r, or a deterministic default stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return FromSeed(0)
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic stream from a base RNG and a
// stream identifier. If base==nil, DefaultSeed is used as the parent.
// Otherwise base.Int63() is consumed once so that repeated derivations with
// the same stream id still differ.
//
// Call during setup (per worker, per file), not in hot loops.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using rng.
// If rng==nil, a deterministic default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}
	r := OrDefault(rng)

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 generated from rng.
// For n<=0 it returns an empty slice.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := Iota(n)
	Shuffle(p, rng)

	return p
}

// Iota returns the identity permutation 0..n-1.
func Iota(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
