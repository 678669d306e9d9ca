// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/sweep"
)

// Verify returns nil when every colour lies in [0, NumColors) and no two
// conflicting items share a colour. Geometric instances are checked from
// the geometry, one sweep per colour class.
func (s *Solution) Verify() error {
	for i, c := range s.colors {
		if c < 0 || c >= s.k {
			return fmt.Errorf("%w: item %d has colour %d of %d", ErrColorRange, i, c, s.k)
		}
	}
	if s.ins.Geometric() {
		return s.verifyGeometric()
	}

	return s.verifyRows()
}

// Valid is Verify() == nil.
func (s *Solution) Valid() bool { return s.Verify() == nil }

func (s *Solution) verifyGeometric() error {
	members := make([][]int, s.k)
	for i, c := range s.colors {
		members[c] = append(members[c], i)
	}
	rng := randx.FromSeed(randx.DefaultSeed)
	var segs []geom.Segment
	for c, items := range members {
		if len(items) < 2 {
			continue
		}
		segs = segs[:0]
		for _, i := range items {
			segs = append(segs, s.ins.Segment(i))
		}
		in, found := sweep.New(segs, rng).FindAny()
		if !found {
			continue
		}
		a, b := items[in.A], items[in.B]
		if a > b {
			a, b = b, a
		}
		return &ConflictError{A: a, B: b, Color: c, X: in.X, Y: in.Y, Geometric: true}
	}

	return nil
}

func (s *Solution) verifyRows() error {
	for i, c := range s.colors {
		row := s.ins.Conflicts(i)
		for j, ok := row.NextSet(uint(i) + 1); ok; j, ok = row.NextSet(j + 1) {
			if s.colors[j] == c {
				return &ConflictError{A: i, B: int(j), Color: c}
			}
		}
	}

	return nil
}

// IsBetter reports whether s is valid and other is nil, invalid, or uses
// more colours.
func (s *Solution) IsBetter(other *Solution) bool {
	if !s.Valid() {
		return false
	}

	return other == nil || !other.Valid() || s.k < other.k
}
