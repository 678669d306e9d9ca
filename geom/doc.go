// Package geom is the exact integer geometry kernel used by every other
// package: points, segments and the orientation predicates that decide
// whether two segments conflict.
//
// All predicates work on int64 coordinates and int64 cross products; nothing
// on the decision path touches floating point, so orientation answers are
// consistent across the sweep-line engine, the recursive splitter and the
// verifier. Coordinates are expected to stay below 2³⁰ in magnitude so
// that cross products cannot overflow.
//
// Edge-case policy:
//   - CrossLine and Cross are strict: a zero orientation (touching or
//     collinear) is never a crossing.
//   - Intersects is the conflict relation: two segments conflict when they
//     share a point that is not an endpoint of both of them (proper
//     crossings, T-junctions and collinear overlaps). Sharing only an
//     endpoint is not a conflict.
//
// A proper crossing:
//
//	(0,2)       (2,2)
//	    \       /
//	     \     /        Cross == true, Intersects == true
//	      \   /
//	       \ /
//	        X
//	       / \
//	(0,0)       (2,0)
package geom
