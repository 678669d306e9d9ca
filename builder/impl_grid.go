// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// impl_grid.go - Grid(rows, cols): rows horizontal sticks crossed by cols
// vertical sticks.
//
// Contract:
//   - rows, cols ≥ MinGridDim, else ErrTooSmall.
//   - Horizontal sticks come first (row-major), then vertical sticks.
//   - Every horizontal stick crosses every vertical one in its interior;
//     sticks of the same direction are parallel and disjoint. The conflict
//     graph is K_{rows,cols}, so two colours suffice.
//
// Complexity: O(rows + cols) segments.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// Grid returns a Constructor that draws a rows×cols stick grid.
func Grid(rows, cols int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", MethodGrid, rows, cols, ErrTooSmall)
		}
		x0, u := s.Origin(), cfg.scale
		width := int64(cols+1) * u
		height := int64(rows+1) * u
		for r := 1; r <= rows; r++ {
			y := int64(r) * u
			if err := s.Segment(geom.Pt(x0, y), geom.Pt(x0+width, y)); err != nil {
				return fmt.Errorf("%s: %w", MethodGrid, err)
			}
		}
		for c := 1; c <= cols; c++ {
			x := x0 + int64(c)*u
			if err := s.Segment(geom.Pt(x, 0), geom.Pt(x, height)); err != nil {
				return fmt.Errorf("%s: %w", MethodGrid, err)
			}
		}

		return nil
	}
}
