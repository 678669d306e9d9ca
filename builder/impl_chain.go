// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// Chain returns a Constructor that draws a zig-zag polyline of n segments.
// Consecutive segments share an endpoint; nothing conflicts, so one colour
// suffices.
func Chain(n int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if n < MinChain {
			return fmt.Errorf("%s: n=%d: %w", MethodChain, n, ErrTooSmall)
		}
		u := cfg.scale
		at := func(i int) geom.Point {
			return geom.Pt(s.Origin()+int64(i)*u, int64(i%2)*u)
		}
		for i := 0; i < n; i++ {
			if err := s.Segment(at(i), at(i+1)); err != nil {
				return fmt.Errorf("%s: %w", MethodChain, err)
			}
		}

		return nil
	}
}
