// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// impl_complete.go - ConvexComplete(n): the complete graph K_n drawn on n
// points in convex position.
//
// Contract:
//   - n ≥ MinConvexPoints, else ErrTooSmall.
//   - Point i sits at (i·u, i²·u) on a parabola, so no three points are
//     collinear.
//   - Edges are emitted in lexicographic (i, j), i < j order.
//   - Edges (a,b) and (c,d) conflict iff their endpoints interleave along
//     the hull; the instance therefore has exactly C(n,4) conflicts.
//
// Complexity: O(n²) segments.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// ConvexComplete returns a Constructor that draws K_n in convex position.
func ConvexComplete(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinConvexPoints {
			return fmt.Errorf("%s: n=%d: %w", MethodConvexComplete, n, ErrTooSmall)
		}
		u := cfg.scale
		pts := make([]geom.Point, n)
		for i := range pts {
			pts[i] = geom.Pt(s.Origin()+int64(i)*u, int64(i*i)*u)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := s.Segment(pts[i], pts[j]); err != nil {
					return fmt.Errorf("%s: %w", MethodConvexComplete, err)
				}
			}
		}

		return nil
	}
}
