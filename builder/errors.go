// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooSmall indicates that a size parameter (rows, cols, n, k, m) is below
// the minimum accepted by the constructor.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not produce its
// shape (degenerate segment, exhausted sampling attempts, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
