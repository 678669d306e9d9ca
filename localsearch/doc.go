// Package localsearch implements the "badify" randomised local search.
//
// The search works one colour below the current valid colouring: the items
// of a random colour class become bad (uncoloured). Each iteration also
// uncolours Badify random good items, then visits every bad item once and
// gives it a random colour among the k-1 remaining ones that no good
// neighbour holds; items without such a colour stay bad. The move is kept
// when the bad set did not grow and rolled back otherwise. An empty bad set
// is a colouring with fewer colours: it is verified, persisted and the
// search continues one level lower. StallLimit iterations without a smaller
// bad set restart the level from the persisted best colouring.
package localsearch
