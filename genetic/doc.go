// Package genetic implements the population engine: a steady-state
// evolutionary search over colourings that are one colour short of the
// best known valid colouring.
//
// Every member of the population uses t = k-1 colours, where k is the
// colour count of the best valid colouring, and is ranked by its number of
// conflicting pairs. One generation:
//
//  1. Pick Parents distinct members at random.
//  2. Build a child class by class. For slot s in [0, t-1) choose, among all
//     classes of all parents restricted to the still unassigned items, the
//     one minimising m·(inner conflicts) − size, and give its items colour
//     s. Unassigned items keep the filler colour t-1.
//  3. Run tabu search on the child. Zero conflicts is a new best: it is
//     persisted, the whole population becomes copies of it with one more
//     colour dropped, and the search continues one level lower.
//  4. Otherwise compare the child with every member by Distance, the number
//     of items outside the best matching of their colour classes (solved
//     with Hungarian). If a member is closer than m/SimilarityDivisor the
//     child replaces it when it is no worse; otherwise the child joins the
//     population and one member is evicted: a random member biased towards
//     the worse half, its nearest neighbour among a biased sample, and the
//     worse of the two goes.
//
// Members are seeded from the best colouring by a quick repair attempt
// whose leftover bad items are scattered at random.
package genetic
