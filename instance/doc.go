// Package instance holds a colouring problem: a set of m items (line
// segments, or abstract vertices) and the symmetric conflict relation
// between them.
//
// Geometric instances come from the CG:SHOP 2022 JSON description: n points
// and m edges, each edge a straight segment between two points. Two
// segments conflict when they share a point that is not an endpoint of both
// (see geom.Segment.Intersects). Abstract instances come from DIMACS edge
// lists, where every "e u v" line is a direct conflict between items u-1 and
// v-1; they carry no geometry.
//
// Conflicts are stored as one bitset row per item (bits-and-blooms/bitset),
// computed once at construction and never mutated afterwards. Rows are
// shared with callers read-only.
//
// Crossing methods:
//   - Exact (default): x-interval sweep, every candidate tested exactly.
//   - SweepAdjacent: Bentley–Ottmann all-intersections mode; only pairs that
//     meet on the sweep line are found.
//   - BruteForce: all m(m-1)/2 pairs, for validation.
//
// Sub projects an instance onto a subset of items, remapping indices to
// 0..k-1 and reusing the parent's conflict rows.
package instance
