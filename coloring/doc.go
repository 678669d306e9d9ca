// SPDX-License-Identifier: MIT

// Package coloring holds a colour assignment for an instance and the checks
// every engine relies on before it declares success.
//
// A Solution maps each item to a colour in [0, NumColors). It is a plain
// value owned by one engine at a time: engines borrow a *Solution for the
// duration of a call and mutate it in place; Clone and CopyFrom give
// independent copies for snapshots.
//
// Validity:
//   - Verify is the single source of truth. On geometric instances it
//     sweeps every colour class with sweep.FindAny, independently of the
//     precomputed conflict rows; on abstract instances it checks the rows.
//   - A failure is a *ConflictError naming the two items and their colour;
//     it matches ErrConflict with errors.Is.
//
// Ordering between solutions (IsBetter): a is better than b when a is valid
// and b is either invalid, missing, or uses more colours.
//
// Constructions:
//   - New: the trivial colouring, item i gets colour i.
//   - Greedy(order): each item in turn takes the smallest colour unused by
//     its conflicting items, then colours are compacted.
//   - GreedySorted (degree descending) and GreedyShuffled (random order).
package coloring
