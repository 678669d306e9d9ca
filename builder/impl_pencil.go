// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// impl_pencil.go - Pencil(n): n segments through one common interior point.
//
// Contract:
//   - n ≥ MinPencil, else ErrTooSmall.
//   - Segment i runs from c-(u, i·u) to c+(u, i·u) around the centre c, so
//     all slopes are distinct and every pair crosses at c. The conflict
//     graph is K_n.
//
// Complexity: O(n) segments, coordinates grow as O(n·u).

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// Pencil returns a Constructor that draws a pencil of n segments.
func Pencil(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinPencil {
			return fmt.Errorf("%s: n=%d: %w", MethodPencil, n, ErrTooSmall)
		}
		u := cfg.scale
		c := geom.Pt(s.Origin()+u, int64(n-1)*u)
		for i := 0; i < n; i++ {
			d := geom.Pt(u, int64(i)*u)
			if err := s.Segment(c.Sub(d), c.Add(d)); err != nil {
				return fmt.Errorf("%s: %w", MethodPencil, err)
			}
		}

		return nil
	}
}
