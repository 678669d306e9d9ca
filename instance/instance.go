package instance

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/segcolor/geom"
	"github.com/katalvlaran/segcolor/internal/randx"
	"github.com/katalvlaran/segcolor/sweep"
)

// MaxCoord bounds the absolute value of point coordinates. Within it the
// int64 cross products in geom cannot overflow.
const MaxCoord = 1 << 30

// Edge joins two points of a geometric instance by their indices.
type Edge struct {
	U, V int
}

// Instance is an immutable colouring problem. All accessors are safe for
// concurrent readers once construction has returned.
type Instance struct {
	id        string
	geometric bool

	points []geom.Point
	edges  []Edge
	segs   []geom.Segment
	adj    [][]int // point graph

	m         int
	conflicts []*bitset.BitSet
	degree    []int

	opts options
}

// New builds a geometric instance from n points and the edges between them.
func New(id string, n int, points []geom.Point, edges []Edge, opts ...Option) (*Instance, error) {
	if n != len(points) {
		return nil, fmt.Errorf("%w: n=%d but %d points", ErrMalformed, n, len(points))
	}
	for i, p := range points {
		if p.X <= -MaxCoord || p.X >= MaxCoord || p.Y <= -MaxCoord || p.Y >= MaxCoord {
			return nil, fmt.Errorf("%w: point %d %v outside (-%d, %d)", ErrMalformed, i, p, MaxCoord, MaxCoord)
		}
	}
	ins := &Instance{
		id:        id,
		geometric: true,
		points:    points,
		edges:     edges,
		segs:      make([]geom.Segment, len(edges)),
		adj:       make([][]int, n),
		m:         len(edges),
		opts:      gatherOptions(opts),
	}
	for i, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return nil, fmt.Errorf("%w: edge %d (%d,%d) with n=%d", ErrMalformed, i, e.U, e.V, n)
		}
		ins.segs[i] = geom.NewSegment(points[e.U], points[e.V])
		ins.adj[e.U] = append(ins.adj[e.U], e.V)
		ins.adj[e.V] = append(ins.adj[e.V], e.U)
	}
	if ins.opts.compute {
		ins.ComputeCrossings()
	}

	return ins, nil
}

// NewAbstract builds an instance of m items with explicit conflict pairs.
// Repeated pairs are accepted; self-conflicts are not.
func NewAbstract(id string, m int, pairs [][2]int) (*Instance, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: m=%d", ErrMalformed, m)
	}
	ins := &Instance{id: id, m: m, opts: defaultOptions()}
	ins.conflicts = newRows(m)
	for k, p := range pairs {
		u, v := p[0], p[1]
		if u < 0 || u >= m || v < 0 || v >= m || u == v {
			return nil, fmt.Errorf("%w: pair %d (%d,%d) with m=%d", ErrMalformed, k, u, v, m)
		}
		ins.conflicts[u].Set(uint(v))
		ins.conflicts[v].Set(uint(u))
	}
	ins.countDegrees()

	return ins, nil
}

func newRows(m int) []*bitset.BitSet {
	rows := make([]*bitset.BitSet, m)
	for i := range rows {
		rows[i] = bitset.New(uint(m))
	}

	return rows
}

// ComputeCrossings (re)builds the conflict rows of a geometric instance with
// the configured crossing method. It is a no-op for abstract instances.
func (ins *Instance) ComputeCrossings() {
	if !ins.geometric {
		return
	}
	rows := newRows(ins.m)
	mark := func(i, j int) {
		rows[i].Set(uint(j))
		rows[j].Set(uint(i))
	}
	switch ins.opts.method {
	case SweepAdjacent:
		for _, in := range sweep.New(ins.segs, randx.FromSeed(ins.opts.seed)).FindAll() {
			mark(in.A, in.B)
		}
	case BruteForce:
		sweep.BruteForce(ins.segs, mark)
	default:
		sweep.Overlapping(ins.segs, mark)
	}
	ins.conflicts = rows
	ins.countDegrees()
}

func (ins *Instance) countDegrees() {
	ins.degree = make([]int, ins.m)
	for i, row := range ins.conflicts {
		ins.degree[i] = int(row.Count())
	}
}

// ID returns the instance identifier.
func (ins *Instance) ID() string { return ins.id }

// Len returns m, the number of items to colour.
func (ins *Instance) Len() int { return ins.m }

// NumPoints returns n (0 for abstract instances).
func (ins *Instance) NumPoints() int { return len(ins.points) }

// Geometric reports whether items are segments.
func (ins *Instance) Geometric() bool { return ins.geometric }

// HasCrossings reports whether conflict rows are available.
func (ins *Instance) HasCrossings() bool { return ins.conflicts != nil }

// Method returns the configured crossing method.
func (ins *Instance) Method() CrossingMethod { return ins.opts.method }

// Segment returns item i as a segment. Abstract instances have none.
func (ins *Instance) Segment(i int) geom.Segment { return ins.segs[i] }

// Segments returns a copy of all segments (nil for abstract instances).
func (ins *Instance) Segments() []geom.Segment {
	if !ins.geometric {
		return nil
	}
	return append([]geom.Segment(nil), ins.segs...)
}

// Points returns the point set. The slice must not be modified.
func (ins *Instance) Points() []geom.Point { return ins.points }

// Edges returns the point pairs of every item. The slice must not be modified.
func (ins *Instance) Edges() []Edge { return ins.edges }

// Adjacency returns the points joined to point v by an edge.
func (ins *Instance) Adjacency(v int) []int { return ins.adj[v] }

// Conflicts returns the conflict row of item i. The row must not be modified.
func (ins *Instance) Conflicts(i int) *bitset.BitSet { return ins.conflicts[i] }

// Crosses reports whether items i and j conflict.
func (ins *Instance) Crosses(i, j int) bool {
	if ins.conflicts == nil {
		return false
	}
	return ins.conflicts[i].Test(uint(j))
}

// Degree returns the number of items conflicting with i.
func (ins *Instance) Degree(i int) int { return ins.degree[i] }

// NumConflicts returns the number of conflicting pairs.
func (ins *Instance) NumConflicts() int {
	total := 0
	for _, d := range ins.degree {
		total += d
	}

	return total / 2
}

// CheckSymmetry verifies that conflicts[i][j] == conflicts[j][i] for all pairs.
func (ins *Instance) CheckSymmetry() error {
	for i, row := range ins.conflicts {
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if int(j) >= ins.m || !ins.conflicts[j].Test(uint(i)) {
				return fmt.Errorf("%w: (%d,%d)", ErrAsymmetric, i, j)
			}
		}
	}

	return nil
}

// LowerBound returns ⌈m / (3n − 6)⌉: every colour class of a geometric
// instance is a plane graph on the n points. Abstract instances and
// instances with fewer than three points return 1 when m > 0.
func (ins *Instance) LowerBound() int {
	if ins.m == 0 {
		return 0
	}
	n := len(ins.points)
	if !ins.geometric || n < 3 {
		return 1
	}
	per := 3*n - 6

	return (ins.m + per - 1) / per
}

// Sub returns the instance restricted to the given items, renumbered in the
// order given. Conflict rows are projected from the receiver when available,
// otherwise computed with the receiver's crossing method.
func (ins *Instance) Sub(indices []int) (*Instance, error) {
	pos := make([]int, ins.m)
	for i := range pos {
		pos[i] = -1
	}
	for k, idx := range indices {
		if idx < 0 || idx >= ins.m || pos[idx] >= 0 {
			return nil, fmt.Errorf("%w: Sub index %d", ErrIndex, idx)
		}
		pos[idx] = k
	}

	k := len(indices)
	sub := &Instance{
		id:        ins.id,
		geometric: ins.geometric,
		points:    ins.points,
		adj:       ins.adj,
		m:         k,
		opts:      ins.opts,
	}
	if ins.geometric {
		sub.edges = make([]Edge, k)
		sub.segs = make([]geom.Segment, k)
		for a, idx := range indices {
			sub.edges[a] = ins.edges[idx]
			sub.segs[a] = ins.segs[idx]
		}
	}
	if ins.conflicts == nil {
		if sub.opts.compute {
			sub.ComputeCrossings()
		}
		return sub, nil
	}

	sub.conflicts = newRows(k)
	for a, idx := range indices {
		row := ins.conflicts[idx]
		for j, ok := row.NextSet(0); ok; j, ok = row.NextSet(j + 1) {
			if b := pos[j]; b >= 0 {
				sub.conflicts[a].Set(uint(b))
			}
		}
	}
	sub.countDegrees()

	return sub, nil
}
