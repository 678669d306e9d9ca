// Package external runs black-box colouring solvers against an instance.
//
// A Solver receives the conflict graph, a target colour count K (one below
// the best valid colouring) and two seed colourings with K colours derived
// from the best one: the smallest class scattered at random into the
// others, and a random other class scattered the same way. It answers with
// a colouring and its number of conflicting pairs, or proves that K colours
// are impossible. Run keeps asking for one colour less while the solver
// succeeds, verifies and persists every success, and stops when the
// solver proves infeasibility, the lower bound is reached or the budget
// ends. Instances above MaxItems are refused.
package external
