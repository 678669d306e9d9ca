package recursive

import (
	"math/rand"

	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/instance"
)

// Partition is the three-way split of an instance by a line.
type Partition struct {
	Line     geom.Segment
	Left     []int
	Right    []int
	Crossing []int
}

// Score is max(|Left|, |Right|) + |Crossing|.
func (p Partition) Score() int {
	return max(len(p.Left), len(p.Right)) + len(p.Crossing)
}

// Classify splits the items of ins by the line through a and b. Segments
// that touch the line count as crossing.
func Classify(ins *instance.Instance, a, b geom.Point) Partition {
	p := Partition{Line: geom.Segment{S: a, T: b}}
	for i := 0; i < ins.Len(); i++ {
		s := ins.Segment(i)
		ws, wt := geom.Winding(a, b, s.S), geom.Winding(a, b, s.T)
		switch {
		case ws < 0 && wt < 0:
			p.Left = append(p.Left, i)
		case ws > 0 && wt > 0:
			p.Right = append(p.Right, i)
		default:
			p.Crossing = append(p.Crossing, i)
		}
	}

	return p
}

// Split samples trials random lines with endpoints in [0, coordRange)² and
// returns the partition with the lowest score among those whose parts are
// all smaller than the instance. It reports false when no line qualified.
func Split(ins *instance.Instance, rng *rand.Rand, trials int, coordRange int64) (Partition, bool) {
	m := ins.Len()
	var best Partition
	found := false
	for t := 0; t < trials; t++ {
		a := geom.Pt(rng.Int63n(coordRange), rng.Int63n(coordRange))
		b := geom.Pt(rng.Int63n(coordRange), rng.Int63n(coordRange))
		if a == b {
			continue
		}
		p := Classify(ins, a, b)
		if len(p.Left) >= m || len(p.Right) >= m || len(p.Crossing) >= m {
			continue
		}
		if !found || p.Score() < best.Score() {
			best, found = p, true
		}
	}

	return best, found
}
