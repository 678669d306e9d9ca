// Package recursive builds initial colourings by divide and conquer.
//
// A random line splits the segments into three parts: strictly left (both
// endpoints left of the line), strictly right, and the rest, which touch or
// cross the line. Left and right segments can never conflict with each
// other, so their colourings may share colours; the crossing part is
// coloured separately on top of them:
//
//	solve(S):
//	    |S| < LeafSize        → greedy + quick repair
//	    best of Trials lines  → minimise max(|L|,|R|) + |C|
//	    colour L, R, C recursively
//	    C gets colours off+c, off = max(k(L), k(R))
//	    reinsert C items into lower colours where free
//	    relabel, keep the better of this and greedy, quick repair
//
// Quick repair is a single repair.Eliminate attempt with the FIFO preset
// and a short time limit, so results depend on timing.
package recursive
