package genetic

import (
	"github.com/bits-and-blooms/bitset"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/segcolor/coloring"
)

// Distance returns the number of items that stay outside the best matching
// between the colour classes [0, k) of a and b: 0 for colourings equal up
// to relabelling. Items with colours outside [0, k) always count.
func Distance(a, b *coloring.Solution, k int) int {
	return classDistance(classesOf(a, k), classesOf(b, k), a.Len())
}

// classesOf returns one bitset per colour in [0, k).
func classesOf(s *coloring.Solution, k int) []*bitset.BitSet {
	m := uint(s.Len())
	out := make([]*bitset.BitSet, k)
	for c := range out {
		out[c] = bitset.New(m)
	}
	for i, c := range s.Colors() {
		if c >= 0 && c < k {
			out[c].Set(uint(i))
		}
	}

	return out
}

// classDistance pads the shorter class list with empty classes.
func classDistance(ca, cb []*bitset.BitSet, m int) int {
	k := max(len(ca), len(cb))
	if k == 0 {
		return m
	}
	cost := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			inter := 0
			if i < len(ca) && j < len(cb) {
				inter = int(ca[i].IntersectionCardinality(cb[j]))
			}
			cost.Set(i, j, float64(m-inter))
		}
	}
	total, _ := Hungarian(cost)
	overlap := k*m - int(total+0.5)

	return m - overlap
}
