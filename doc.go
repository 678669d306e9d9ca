// Package segcolor colours straight-line segments so that no two crossing
// segments share a colour, using as few colours as possible.
//
// What is in the box?
//
//	Exact integer geometry and a sweep-line crossing engine, conflict
//	bitsets per segment, a family of heuristic improvers that each try to
//	drop one colour at a time, and a batch runner that keeps the best
//	colouring of every instance on disk.
//
//		• Geometry: orientation predicates, strict crossings, T-junctions
//		• Sweep: Bentley–Ottmann any/all intersections, x-overlap sweep
//		• Improvers: conflict repair, badify local search, tabu search,
//		  population recombination, recursive splitting, SAT rounds
//		• Persistence: best-known solutions, verified before every write
//		• Batch: worker pool, YAML config, slog, Prometheus, OpenTelemetry
//
// Packages:
//
//	geom/          points, segments, Winding, Cross, Intersects
//	sweep/         skip-list sweep line: FindAny, FindAll, Overlapping
//	instance/      Instance, conflict rows, Sub, JSON and DIMACS loaders
//	coloring/      Solution, greedy variants, Verify, IsBetter
//	store/         per-instance best solution files
//	repair/        bad-item conflict improver (Eliminate, Run)
//	localsearch/   badify local search
//	tabu/          TabuCol search and tabu descent
//	genetic/       population engine, Hungarian matching, Distance
//	recursive/     divide-and-conquer seeding by random lines
//	external/      black-box improver contract and round runner
//	satcolor/      gini-backed k-colourability solver for external
//	builder/       seeded generators of synthetic segment instances
//	config/        YAML settings with per-engine sections
//	batch/         runs one engine over many files
//	cmd/segcolor   the command-line front end
//
// Quick ASCII example:
//
//	a       d
//	  \   /
//	    X          a–b crosses c–d; e–f touches neither, so two
//	  /   \        colours suffice: {a–b, e–f} and {c–d}.
//	c       b
//
//	e ─────── f
//
// Every engine takes an explicit *rand.Rand and a context; the same seed
// and budget give the same colouring.
package segcolor
