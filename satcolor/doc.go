// Package satcolor decides k-colourability of a conflict graph with the
// gini SAT solver and plugs into external.Run as a Solver.
//
// Encoding: one variable x(v,c) per vertex and colour; every vertex takes
// at least one colour; for every edge (u,v) and colour c, ¬x(u,c) ∨ ¬x(v,c).
// A vertex of maximum degree is fixed to colour 0 to cut symmetric search.
// A vertex with several true colours takes the lowest one.
//
// Seeds that are already conflict-free are returned without solving. When
// the solver runs out of time the better seed is returned with its conflict
// count; an UNSAT answer is reported as Infeasible.
package satcolor
