// Package hyperpack is a combinatorial search core for 2D rectangular
// bin-packing and strip-packing.
//
// It layers three heuristics:
//
//	construct/   — point-generation constructor: greedily places items at
//	               candidate "potential points" derived from prior placements
//	dispatch/    — multi-container sequencing and the packing objective
//	localsearch/ — 2-opt hill-climbing over item permutations
//	hyper/       — hyper-heuristic search over all 10! potential-point
//	               strategies, parallelized across goroutine workers
//	strip/       — strip-packing adapter (fixed width, shrinking height)
//
// model/, grid/, and points/ hold the shared data types, the dense
// occupancy bitmap, and the potential-points pool respectively.
//
// The package root exposes a small stateful façade, Solver, over this
// stack:
//
//	items := hyperpack.Items{"a": {ID: "a", W: 2, L: 3}}
//	containers := hyperpack.Containers{"bin": {ID: "bin", W: 10, L: 10}}
//	solver, err := hyperpack.NewSolver(items, containers)
//	if err != nil {
//		// handle
//	}
//	sol, err := solver.Solve(context.Background())
//
// Guillotine cuts, non-rectangular items, guaranteed optimality,
// continuous coordinates, and figure rendering are out of scope; see
// SPEC_FULL.md.
package hyperpack
