// SPDX-License-Identifier: MIT

// Package builder provides reusable functional-options building blocks for
// synthetic segment instances: deterministic geometric fixtures for tests,
// examples and benchmarks, and seeded random soups for stress runs.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildInstance(id, iopts, bopts, cons...): resolves options, runs the
//     constructors in order on a fresh Sketch and hands the result to
//     instance.New.
//   - Configuration primitives:
//     – BuilderOption: mutates builderConfig before construction.
//     – WithSeed / WithRand: RNG for stochastic constructors.
//     – WithScale / WithGap / WithSpan: coordinate spacing.
//   - Constructors (one per impl_*.go):
//     – Grid(rows, cols):      horizontal sticks crossing vertical sticks
//     (bipartite conflict graph, χ = 2).
//     – CrossingPairs(k):      k separated X shapes (k disjoint conflicts).
//     – Pencil(n):             n segments through one interior point
//     (clique, χ = n).
//     – ConvexComplete(n):     complete graph on n points in convex
//     position; conflicts are the C(n,4) interleaved pairs.
//     – Chain(n):              zig-zag polyline, no conflicts.
//     – RandomSegments(n, m):  m random edges over n random points.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     instances.
//   - Composition: each constructor draws to the right of everything drawn
//     before it, separated by the configured gap, so composed shapes never
//     conflict with each other.
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors return sentinel errors.
package builder
