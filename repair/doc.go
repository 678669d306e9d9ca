// Package repair implements the bad-item conflict improver: it removes one
// colour class at a time by pushing the items of that class onto a queue of
// "bad" items and repeatedly recolouring them inside the remaining k-1
// colours, evicting whichever same-coloured neighbours the new colour
// collides with.
//
// One attempt (Eliminate) for a colouring with k colours:
//  1. Pick the target class (the smallest one, ties at random, or the last
//     one) and swap its label with k-1. Its items become bad.
//  2. Take a bad item e (random pick or FIFO). For every colour c < k-1,
//     count the good neighbours of e holding c. In count mode the weight is
//     1; in score mode it is ScoreBase + qcnt[f]², where qcnt counts how
//     often f has been taken from the queue. Pick uniformly among colours
//     whose weight is at most Tolerance × minimum (exact minimum in count
//     mode).
//  3. Give e that colour; every good neighbour already holding it turns bad.
//  4. Stop when the queue is empty: the colouring now uses k-1 colours (or
//     fewer) and is verified.
//
// Stuck detection: when an item has been processed more than StuckLimit
// times the attempt restarts from its starting colouring with a new target.
// On budget exhaustion the caller's colouring is restored and the partial
// state is returned in Result.Working and Result.Bad.
//
// Run chains attempts: after each success the colouring is verified and
// offered to the store, then the next colour is attacked, until the budget
// ends.
//
// Two presets mirror the tuned variants: DefaultOptions (random pick,
// smallest class, alternating count/score phases, stuck restarts) and
// QuickOptions (FIFO, last class, score mode only, shuffled evictions),
// used as a short inner step by the genetic and recursive engines.
package repair
