package geom

import "fmt"

// Point is an integer coordinate in the plane. It is an immutable value type.
type Point struct {
	X, Y int64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int64) Point { return Point{X: x, Y: y} }

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns k·p.
func (p Point) Scale(k int64) Point { return Point{p.X * k, p.Y * k} }

// Length2 returns the squared Euclidean length of p.
func (p Point) Length2() int64 { return p.X*p.X + p.Y*p.Y }

// Less orders points lexicographically by (X, Y).
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}

	return p.Y < q.Y
}

// String implements fmt.Stringer.
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Dot returns the dot product a·b.
func Dot(a, b Point) int64 { return a.X*b.X + a.Y*b.Y }

// Cross returns the 2D cross product a×b.
func Cross(a, b Point) int64 { return a.X*b.Y - a.Y*b.X }

// Winding returns the orientation of c relative to the directed line a→b as
// the sign of (c-a)×(b-a): +1, -1, or 0 when the three points are collinear.
func Winding(a, b, c Point) int {
	res := Cross(c.Sub(a), b.Sub(a))
	switch {
	case res > 0:
		return 1
	case res < 0:
		return -1
	default:
		return 0
	}
}
