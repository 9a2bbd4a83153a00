// Package salesman approximates the Euclidean Traveling Salesman Problem:
// given a set of named points in a plane, find a short closed tour that
// visits each exactly once and returns to the start.
//
// 🚀 What is salesman?
//
//	A small, deterministic toolkit that brings together:
//		• Core data model: City (with a precomputed distance cache), Route, Population
//		• Genetic algorithm: tournament selection, ordered crossover, swap mutation, elitism
//		• Matrix reduction: assignment-relaxation lower bounds + nearest-neighbor tours
//		• Tour I/O: JSON tour definitions, solution files, dataset preprocessing
//		• Visualization: route maps and convergence charts rendered to PNG
//
// ✨ Why choose salesman?
//
//   - Reproducible – explicit seeds everywhere, no time-based randomness
//   - Strict contracts – sentinel errors, validated options, no panics on user input
//   - Practical – heuristics tuned for small-to-medium instances, not proofs of optimality
//
// Everything is organized under focused subpackages:
//
//	core/         — City, Route and Population primitives shared by all solvers
//	genetic/      — the genetic-algorithm solver and its operators
//	reduction/    — the matrix-reduction ("branch and bound") solver
//	tourio/       — tour-definition loading, solution saving, dataset conversion
//	viz/          — plotting of routes and GA convergence
//	cmd/salesman/ — the command-line launcher
//
// Quick start:
//
//	cities, err := tourio.LoadCities("cities.json")
//	if err != nil { ... }
//
//	ga, err := genetic.New(genetic.DefaultOptions())
//	if err != nil { ... }
//	best, err := ga.Run(cities, 500)
//	fmt.Printf("tour length: %.2f\n", best.Length)
//
// See each subpackage's doc.go for contracts, invariants and complexity notes.
package salesman
