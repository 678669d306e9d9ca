// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/segcolor/instance"
)

// Solution is a colour assignment for one instance.
type Solution struct {
	ins    *instance.Instance
	colors []int
	k      int
}

// New returns the trivial colouring: item i gets colour i.
func New(ins *instance.Instance) *Solution {
	s := &Solution{ins: ins, colors: make([]int, ins.Len())}
	s.Trivial()

	return s
}

// FromColors wraps a copy of colors. NumColors is max+1.
func FromColors(ins *instance.Instance, colors []int) (*Solution, error) {
	if len(colors) != ins.Len() {
		return nil, fmt.Errorf("%w: %d colours for %d items", ErrLength, len(colors), ins.Len())
	}
	for i, c := range colors {
		if c < 0 {
			return nil, fmt.Errorf("%w: item %d has colour %d", ErrColorRange, i, c)
		}
	}
	s := &Solution{ins: ins, colors: append([]int(nil), colors...)}
	s.Recompute()

	return s, nil
}

// Trivial resets s to one colour per item.
func (s *Solution) Trivial() {
	for i := range s.colors {
		s.colors[i] = i
	}
	s.k = len(s.colors)
}

// Instance returns the instance being coloured.
func (s *Solution) Instance() *instance.Instance { return s.ins }

// Len returns the number of items.
func (s *Solution) Len() int { return len(s.colors) }

// Colors returns the assignment. Callers may modify it in place and must
// then keep NumColors consistent (Recompute or SetNumColors).
func (s *Solution) Colors() []int { return s.colors }

// Color returns the colour of item i.
func (s *Solution) Color(i int) int { return s.colors[i] }

// SetColor assigns colour c to item i without touching NumColors.
func (s *Solution) SetColor(i, c int) { s.colors[i] = c }

// NumColors returns the declared number of colours.
func (s *Solution) NumColors() int { return s.k }

// SetNumColors declares k colours without scanning the assignment.
func (s *Solution) SetNumColors(k int) { s.k = k }

// Clone returns an independent copy sharing the instance.
func (s *Solution) Clone() *Solution {
	return &Solution{ins: s.ins, colors: append([]int(nil), s.colors...), k: s.k}
}

// CopyFrom overwrites s with o. Both must colour the same instance.
func (s *Solution) CopyFrom(o *Solution) {
	s.ins = o.ins
	s.colors = append(s.colors[:0], o.colors...)
	s.k = o.k
}

// Recompute sets NumColors to the largest colour plus one (0 when empty).
func (s *Solution) Recompute() {
	k := 0
	for _, c := range s.colors {
		if c+1 > k {
			k = c + 1
		}
	}
	s.k = k
}

// Relabel renumbers colours densely in order of first occurrence and
// updates NumColors.
func (s *Solution) Relabel() {
	remap := make(map[int]int, s.k)
	for i, c := range s.colors {
		nc, ok := remap[c]
		if !ok {
			nc = len(remap)
			remap[c] = nc
		}
		s.colors[i] = nc
	}
	s.k = len(remap)
}

// ClassSizes returns the number of items per colour in [0, NumColors).
// Out-of-range colours are ignored.
func (s *Solution) ClassSizes() []int {
	sizes := make([]int, s.k)
	for _, c := range s.colors {
		if c >= 0 && c < s.k {
			sizes[c]++
		}
	}

	return sizes
}

// Classes returns one bitset per colour in [0, NumColors).
func (s *Solution) Classes() []*bitset.BitSet {
	m := uint(len(s.colors))
	out := make([]*bitset.BitSet, s.k)
	for c := range out {
		out[c] = bitset.New(m)
	}
	for i, c := range s.colors {
		if c >= 0 && c < s.k {
			out[c].Set(uint(i))
		}
	}

	return out
}

// Conflicts counts the conflicting pairs that share a colour, using the
// instance's conflict rows.
func (s *Solution) Conflicts() int {
	total := 0
	for i := range s.colors {
		row := s.ins.Conflicts(i)
		for j, ok := row.NextSet(uint(i) + 1); ok; j, ok = row.NextSet(j + 1) {
			if s.colors[j] == s.colors[i] {
				total++
			}
		}
	}

	return total
}

// ConflictedItems returns the items with at least one same-coloured
// conflicting item.
func (s *Solution) ConflictedItems() *bitset.BitSet {
	out := bitset.New(uint(len(s.colors)))
	for i := range s.colors {
		row := s.ins.Conflicts(i)
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if s.colors[j] == s.colors[i] {
				out.Set(uint(i))
				break
			}
		}
	}

	return out
}

// CountColorIn returns how many items in row have colour c.
func (s *Solution) CountColorIn(row *bitset.BitSet, c int) int {
	n := 0
	for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
		if s.colors[j] == c {
			n++
		}
	}

	return n
}
