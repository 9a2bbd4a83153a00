// Package genetic: sentinel error set (unified, consistent).
// Configuration errors are rejected before any evolution starts; tests match
// them via errors.Is. No retry anywhere: all failures surface synchronously.

package genetic

import "errors"

var (
	// ErrPopulationSize is returned for a population size below 2.
	ErrPopulationSize = errors.New("genetic: population size must be at least 2")

	// ErrMutationProb is returned for a mutation probability outside [0, 1].
	ErrMutationProb = errors.New("genetic: mutation probability must be in [0, 1]")

	// ErrTournamentSize is returned when the tournament size is below 1 or
	// exceeds the population size.
	ErrTournamentSize = errors.New("genetic: tournament size must be in [1, population size]")

	// ErrWorkers is returned for a negative worker count.
	ErrWorkers = errors.New("genetic: workers must be non-negative")

	// ErrGenerations is returned when Run is asked for fewer than 1 generation.
	ErrGenerations = errors.New("genetic: generations must be at least 1")

	// ErrTooFewCities is returned when Run receives fewer than 2 cities.
	ErrTooFewCities = errors.New("genetic: at least two cities required")
)
