// SPDX-License-Identifier: MIT

// Package tabu implements TabuCol: a tabu search that looks for a
// conflict-free colouring with a fixed number of colours, starting from a
// colouring that still has conflicts.
//
// State kept incrementally:
//   - confs[e][c]: how many neighbours of e currently hold colour c;
//   - the total number of conflicting pairs;
//   - tabu[e][c]: the first iteration at which e may take colour c again.
//
// Each iteration considers every conflicted item and every other colour,
// skips moves that are tabu unless they beat the best total seen so far
// (aspiration), and applies a uniformly random move among those with the
// smallest resulting total. The vacated (item, colour) pair becomes tabu for
//
//	TenureFactor·conflicted + U[1, JitterMax] + stale/StaleDivisor
//
// iterations, where stale counts iterations without a new best. When the
// search stops without reaching zero, the best colouring seen is restored.
//
// Run performs one search. Descent drives repeated searches: it drops the
// last colour of the best solution, scatters its items at random and runs
// tabu until the conflicts vanish, persisting each success.
//
// Complexity: O(conflicted·k) per iteration plus O(deg) per applied move;
// memory O(m·k).
package tabu
