// Package genetic: solver configuration.
// This file defines the Options struct, documented defaults (constants), and
// standalone validation. Defaults mirror the launcher's defaults so a
// zero-configuration run behaves like the CLI's.

package genetic

// DEFAULTS - single source of truth for zero-configuration behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultPopulationSize is the number of routes evolved per generation.
	DefaultPopulationSize = 100

	// DefaultMutationProb is the per-child probability of a single swap mutation.
	DefaultMutationProb = 0.02

	// DefaultTournamentSize is the number of draws per parent selection.
	DefaultTournamentSize = 5

	// DefaultElitism carries the fittest route into the next generation unchanged.
	DefaultElitism = true

	// DefaultWorkers runs the slot fill serially; values above 1 fan out
	// child construction over disjoint slot ranges.
	DefaultWorkers = 1
)

// Options configures a genetic Solver.
//
// Fields:
//   - PopulationSize — fixed population capacity P (≥ 2).
//   - MutationProb   — per-child swap-mutation probability m ∈ [0, 1].
//   - TournamentSize — selection sample size T (1 ≤ T ≤ P).
//   - Elitism        — unconditionally keep the best route each generation.
//   - Workers        — parallel slot-fill fanout; 0 or 1 means serial.
//     Results are identical for any value (per-slot RNG streams).
//   - Seed           — RNG seed; 0 selects a fixed default stream.
//   - Progress       — optional per-generation hook (generation index starting
//     at 1, best length so far). Called synchronously from the evolution loop.
type Options struct {
	PopulationSize int
	MutationProb   float64
	TournamentSize int
	Elitism        bool
	Workers        int
	Seed           int64
	Progress       func(generation int, bestLength float64)
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		MutationProb:   DefaultMutationProb,
		TournamentSize: DefaultTournamentSize,
		Elitism:        DefaultElitism,
		Workers:        DefaultWorkers,
	}
}

// Validate checks internal consistency of the Options without referencing
// cities or populations. All violations are configuration errors: fatal,
// reported before any computation starts, never retried.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PopulationSize < 2 {
		return ErrPopulationSize
	}
	if o.MutationProb < 0 || o.MutationProb > 1 {
		return ErrMutationProb
	}
	if o.TournamentSize < 1 || o.TournamentSize > o.PopulationSize {
		return ErrTournamentSize
	}
	if o.Workers < 0 {
		return ErrWorkers
	}

	return nil
}
