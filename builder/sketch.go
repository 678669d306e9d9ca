// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/instance"
)

// Sketch accumulates points and edges. Points are deduplicated so shapes
// may share endpoints by coordinates.
type Sketch struct {
	points []geom.Point
	edges  []instance.Edge
	index  map[geom.Point]int

	left  int64 // x where the current shape starts
	right int64 // largest x drawn so far
	drawn bool
}

func newSketch() *Sketch {
	return &Sketch{index: make(map[geom.Point]int)}
}

// Point returns the index of p, adding it when new.
func (s *Sketch) Point(p geom.Point) int {
	if i, ok := s.index[p]; ok {
		return i
	}
	s.points = append(s.points, p)
	s.index[p] = len(s.points) - 1
	if !s.drawn || p.X > s.right {
		s.right = p.X
		s.drawn = true
	}

	return len(s.points) - 1
}

// Segment adds the edge a–b. Zero-length segments are rejected.
func (s *Sketch) Segment(a, b geom.Point) error {
	if a == b {
		return fmt.Errorf("degenerate segment at %v: %w", a, ErrConstructFailed)
	}
	s.edges = append(s.edges, instance.Edge{U: s.Point(a), V: s.Point(b)})

	return nil
}

// Origin returns the x where the next shape starts.
func (s *Sketch) Origin() int64 { return s.left }

// Len returns the number of edges so far.
func (s *Sketch) Len() int { return len(s.edges) }

// advance moves the origin past everything drawn.
func (s *Sketch) advance(gap int64) {
	if s.drawn {
		s.left = s.right + gap
	}
}
