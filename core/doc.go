// Package core provides the data model shared by all TSP solvers.
//
// It includes three entities:
//
//   - City — a named point with two planar coordinates and a precomputed
//     distance cache keyed by city name. The cache is populated once per
//     working set via CalculateDistances and treated as read-only for the
//     duration of any solver run.
//
//   - Route — an ordered permutation of a city set plus its cached cyclic
//     tour length (the last city connects back to the first). Any operation
//     that reorders the sequence re-derives the length before returning.
//
//   - Population — a fixed-size collection of Routes with a sort-based
//     fittest query. Fittest is a derived query, not an eagerly maintained
//     field: it is resolved on demand to avoid consistency bugs from partial
//     slot updates.
//
// Contract: distances for the complete working set must be computed before
// any Route is constructed or mutated. Violations surface as
// ErrMissingDistance at the point of discovery; there is no reactive repair.
//
// All lengths are stabilized to 1e-9 absolute precision to keep results
// identical across platforms.
package core
