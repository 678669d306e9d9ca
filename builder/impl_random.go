// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// impl_random.go - RandomSegments(n, m): m distinct random edges over n
// distinct random points.
//
// Contract:
//   - n ≥ MinRandomPoints and 1 ≤ m ≤ n(n-1)/2, else ErrTooSmall.
//   - Requires cfg.rng (WithSeed/WithRand), else ErrNeedRandSource.
//   - Points are sampled uniformly from [0, span)² shifted to the current
//     origin; sampling gives up with ErrConstructFailed when the square is
//     too small to hold n distinct points.
//
// Determinism: same seed ⇒ same instance.
// Complexity: expected O(n + m) draws while m ≪ n².

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// RandomSegments returns a Constructor that draws a seeded random soup.
func RandomSegments(n, m int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinRandomPoints || m < 1 || int64(m) > int64(n)*int64(n-1)/2 {
			return fmt.Errorf("%s: n=%d m=%d: %w", MethodRandomSegments, n, m, ErrTooSmall)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSegments, ErrNeedRandSource)
		}
		if int64(n) > cfg.span*cfg.span {
			return fmt.Errorf("%s: %d points do not fit a %d² square: %w",
				MethodRandomSegments, n, cfg.span, ErrConstructFailed)
		}

		pts := make([]geom.Point, 0, n)
		seen := make(map[geom.Point]struct{}, n)
		for attempts := 0; len(pts) < n; attempts++ {
			if attempts >= maxSampleAttempts {
				return fmt.Errorf("%s: sampling points: %w", MethodRandomSegments, ErrConstructFailed)
			}
			p := geom.Pt(s.Origin()+cfg.rng.Int63n(cfg.span), cfg.rng.Int63n(cfg.span))
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			pts = append(pts, p)
		}

		used := make(map[[2]int]struct{}, m)
		for attempts := 0; len(used) < m; attempts++ {
			if attempts >= maxSampleAttempts {
				return fmt.Errorf("%s: sampling edges: %w", MethodRandomSegments, ErrConstructFailed)
			}
			a, b := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if a == b {
				continue
			}
			if a > b {
				a, b = b, a
			}
			if _, dup := used[[2]int{a, b}]; dup {
				continue
			}
			used[[2]int{a, b}] = struct{}{}
			if err := s.Segment(pts[a], pts[b]); err != nil {
				return fmt.Errorf("%s: %w", MethodRandomSegments, err)
			}
		}

		return nil
	}
}
