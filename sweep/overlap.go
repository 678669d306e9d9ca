// SPDX-License-Identifier: MIT

package sweep

import (
	"sort"

	"github.com/katalvlaran/segcolor/geom"
)

// Overlapping calls fn(i, j), i < j, for every pair of segments that
// intersect (geom.Segment.Intersects). Candidates are the pairs whose
// closed x-ranges overlap, found with an x-interval sweep; each candidate is
// tested exactly. The order of calls is unspecified.
func Overlapping(segments []geom.Segment, fn func(i, j int)) {
	m := len(segments)
	if m < 2 {
		return
	}
	segs := make([]geom.Segment, m)
	order := make([]int, m)
	for i, s := range segments {
		segs[i] = s.Canonical()
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		sa, sb := segs[order[a]], segs[order[b]]
		if sa.S.X != sb.S.X {
			return sa.S.X < sb.S.X
		}
		return order[a] < order[b]
	})

	active := make([]int, 0, 64)
	for _, i := range order {
		x := segs[i].S.X
		// Drop segments that ended strictly left of x.
		kept := active[:0]
		for _, j := range active {
			if segs[j].T.X >= x {
				kept = append(kept, j)
			}
		}
		active = kept

		for _, j := range active {
			if !segs[i].Intersects(segs[j]) {
				continue
			}
			if i < j {
				fn(i, j)
			} else {
				fn(j, i)
			}
		}
		active = append(active, i)
	}
}

// BruteForce calls fn(i, j), i < j, for every intersecting pair by testing
// all m(m-1)/2 pairs.
func BruteForce(segments []geom.Segment, fn func(i, j int)) {
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			if segments[i].Intersects(segments[j]) {
				fn(i, j)
			}
		}
	}
}
