package geom

import "fmt"

// Segment is a closed line segment with S <= T lexicographically
// (S is left of T, or below it when vertical).
type Segment struct {
	S, T Point
}

// NewSegment returns the canonical segment between a and b.
func NewSegment(a, b Point) Segment {
	if b.Less(a) {
		a, b = b, a
	}

	return Segment{S: a, T: b}
}

// Canonical returns s with its endpoints ordered.
func (s Segment) Canonical() Segment { return NewSegment(s.S, s.T) }

// IsVertical reports whether both endpoints share the same X.
func (s Segment) IsVertical() bool { return s.S.X == s.T.X }

// Winding returns the orientation of p relative to the line through s.
func (s Segment) Winding(p Point) int { return Winding(s.S, s.T, p) }

// CrossLine treats s as an infinite line and reports whether the endpoints
// of o lie strictly on opposite sides of it. Touching or collinear endpoints
// yield false.
func (s Segment) CrossLine(o Segment) bool {
	return s.Winding(o.S)*s.Winding(o.T) == -1
}

// Cross reports a proper crossing: each segment strictly separates the
// endpoints of the other.
func (s Segment) Cross(o Segment) bool {
	return s.CrossLine(o) && o.CrossLine(s)
}

// HasEndpoint reports whether p is one of the endpoints of s.
func (s Segment) HasEndpoint(p Point) bool { return p == s.S || p == s.T }

// contains reports whether p lies on the closed segment s.
func (s Segment) contains(p Point) bool {
	if s.Winding(p) != 0 {
		return false
	}
	lo, hi := s.S, s.T

	return minI(lo.X, hi.X) <= p.X && p.X <= maxI(lo.X, hi.X) &&
		minI(lo.Y, hi.Y) <= p.Y && p.Y <= maxI(lo.Y, hi.Y)
}

// Intersects reports whether s and o conflict: they share at least one point
// that is not an endpoint of both segments. Proper crossings, T-junctions
// (an endpoint of one in the interior of the other) and collinear overlaps
// of positive length all intersect; sharing a single endpoint does not.
func (s Segment) Intersects(o Segment) bool {
	// A zero-length segment conflicts only with an interior point of the
	// other one.
	if s.S == s.T {
		return o.contains(s.S) && !o.HasEndpoint(s.S)
	}
	if o.S == o.T {
		return s.contains(o.S) && !s.HasEndpoint(o.S)
	}

	d1, d2 := s.Winding(o.S), s.Winding(o.T)
	d3, d4 := o.Winding(s.S), o.Winding(s.T)

	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}

	if d1 == 0 && d2 == 0 {
		return collinearOverlap(s, o)
	}

	// T-junctions: an endpoint of one lies on the other but is not an
	// endpoint of it.
	if d1 == 0 && s.contains(o.S) && !s.HasEndpoint(o.S) {
		return true
	}
	if d2 == 0 && s.contains(o.T) && !s.HasEndpoint(o.T) {
		return true
	}
	if d3 == 0 && o.contains(s.S) && !o.HasEndpoint(s.S) {
		return true
	}
	if d4 == 0 && o.contains(s.T) && !o.HasEndpoint(s.T) {
		return true
	}

	return false
}

// collinearOverlap decides overlap of two collinear segments of positive
// length: they intersect iff their common part has positive length.
func collinearOverlap(s, o Segment) bool {
	s, o = s.Canonical(), o.Canonical()
	lo, hi := s.S, s.T
	if lo.Less(o.S) {
		lo = o.S
	}
	if o.T.Less(hi) {
		hi = o.T
	}
	if hi.Less(lo) {
		return false
	}
	if lo != hi {
		return true
	}
	// single shared point: conflict only if it is interior to one of them
	return !(s.HasEndpoint(lo) && o.HasEndpoint(lo))
}

// ApproxIntersection returns an approximate intersection location of the
// supporting lines of s and o, for diagnostics only. Parallel segments yield
// the midpoint of the closest endpoints pair.
func (s Segment) ApproxIntersection(o Segment) (x, y float64) {
	r := s.T.Sub(s.S)
	q := o.T.Sub(o.S)
	den := Cross(r, q)
	if den == 0 {
		a, b := s.S, o.S
		if o.T.Sub(s.S).Length2() < o.S.Sub(s.S).Length2() {
			b = o.T
		}
		return (float64(a.X) + float64(b.X)) / 2, (float64(a.Y) + float64(b.Y)) / 2
	}
	t := float64(Cross(o.S.Sub(s.S), q)) / float64(den)

	return float64(s.S.X) + t*float64(r.X), float64(s.S.Y) + t*float64(r.Y)
}

// String implements fmt.Stringer.
func (s Segment) String() string { return fmt.Sprintf("[%v-%v]", s.S, s.T) }

func minI(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
