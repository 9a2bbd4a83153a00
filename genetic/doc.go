// Package genetic evolves Populations of Routes toward short tours.
//
// The solver runs a classic generational GA:
//
//   - Tournament selection — T independent uniform draws with replacement;
//     the shortest of the sample wins. Larger T increases selection pressure.
//   - Ordered crossover (OX) — a contiguous segment is copied verbatim from
//     parent 1; the remaining positions are filled from parent 2's order,
//     wrapping circularly after the segment and skipping duplicates. The
//     child is always a valid permutation regardless of parent content.
//   - Swap mutation — with probability MutationProb, two random positions
//     (possibly equal — a no-op) exchange their occupants.
//   - Elitism — when enabled, slot 0 of every new generation receives the
//     outgoing population's fittest route copied verbatim, so the best length
//     never regresses across generations.
//
// Determinism: all randomness flows from Options.Seed through per-slot
// SplitMix64-derived streams, so results are identical for any Workers value
// and across platforms. No time-based randomness anywhere.
//
// Concurrency: with Workers > 1 the per-generation slot fill is fanned out
// over disjoint slot ranges. Each worker owns its child slots exclusively;
// the distance caches on City are shared read-only.
//
// Use this package when you need a good tour quickly on instances where
// exact search is out of reach; see package reduction for the lower-bound
// companion solver.
package genetic
