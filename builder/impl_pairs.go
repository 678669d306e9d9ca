// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
)

// CrossingPairs returns a Constructor that draws k separated X shapes. Shape
// p contributes segments 2p ("/") and 2p+1 ("\"), which cross each other and
// nothing else.
func CrossingPairs(k int) Constructor {
	return func(s *Sketch, cfg builderConfig) error {
		if k < MinPairs {
			return fmt.Errorf("%s: k=%d: %w", MethodCrossingPairs, k, ErrTooSmall)
		}
		u := cfg.scale
		for p := 0; p < k; p++ {
			x := s.Origin() + int64(p)*3*u
			if err := s.Segment(geom.Pt(x, 0), geom.Pt(x+2*u, 2*u)); err != nil {
				return fmt.Errorf("%s: %w", MethodCrossingPairs, err)
			}
			if err := s.Segment(geom.Pt(x, 2*u), geom.Pt(x+2*u, 0)); err != nil {
				return fmt.Errorf("%s: %w", MethodCrossingPairs, err)
			}
		}

		return nil
	}
}
