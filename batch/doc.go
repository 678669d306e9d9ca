// Package batch runs one engine over a list of instance files.
//
// A Runner owns the solution store, the logger and the engine settings.
// Run hands files to Threads workers through a shared cursor; each worker
// loads the instance (JSON, or DIMACS when configured or when the file ends
// in .col), picks the starting colouring (stored best, or greedy with
// Scratch), runs the engine and offers the result to the store.
//
// Engines:
//
//	greedy     degree-sorted greedy, saved when better
//	repair     bad-item conflict improver (repair.Run)
//	search     badify local search (localsearch.Run)
//	recursive  divide-and-conquer seeding (recursive.Solve)
//	genetic    population recombination (genetic.Engine)
//	head       external improver rounds with the SAT backend (external.Run)
//	tabu       tabu descent (tabu.Descent)
//	save       import a solution from another folder when better
//	table      lower bound against stored colours, see Tabulate
//
// A failing file never stops the pool: its error is logged, counted and
// joined into the error Run returns. Every file gets an OpenTelemetry span
// and feeds the Prometheus collectors in metrics.go. Random streams are
// derived per file index, so a run is reproducible for a fixed seed
// regardless of the thread count.
package batch
