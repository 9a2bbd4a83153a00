// Package genetic — the generational evolution engine.
//
// Rationale (succinct):
//  1. Configuration is validated once in New; Run assumes a sound Solver and
//     only checks per-call inputs (city count, generation count).
//  2. Distances are computed once up front over the complete working set,
//     eliminating the missing-distance error class by contract.
//  3. Each generation builds a fresh Population: elitism (optional) copies
//     the outgoing fittest into slot 0, every other slot receives the child
//     of two tournament-selected parents via ordered crossover, mutated with
//     probability m.
//  4. Randomness is sliced per (generation, slot), so the Workers fanout is
//     an implementation detail: any worker count yields the same tours.
//
// Complexity per generation: O(P·(T + n)) serial work for population size P,
// tournament size T and n cities, divided across Workers when parallel.

package genetic

import (
	"math/rand"
	"sync"

	"github.com/katalvlaran/salesman/core"
)

// Solver evolves a Population toward short tours. Construct via New; the
// zero value is not usable.
type Solver struct {
	opts Options
}

// New validates opts and returns a ready Solver.
//
// Errors: ErrPopulationSize, ErrMutationProb, ErrTournamentSize, ErrWorkers.
func New(opts Options) (*Solver, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Solver{opts: opts}, nil
}

// Run evolves a random size-P population over the given cities for the given
// number of generations and returns the final population's fittest Route.
//
// Side effects: populates every city's distance cache against the full set.
//
// Errors: ErrTooFewCities, ErrGenerations; core sentinels are forwarded
// unchanged (they indicate contract violations, not runtime hazards).
func (s *Solver) Run(cities []*core.City, generations int) (*core.Route, error) {
	if len(cities) < 2 {
		return nil, ErrTooFewCities
	}
	if generations < 1 {
		return nil, ErrGenerations
	}

	// Distances first: every Route constructed below depends on the cache.
	core.CalculateAllDistances(cities)

	var (
		pop *core.Population
		err error
	)
	pop, err = core.NewRandomPopulation(s.opts.PopulationSize, cities, rngFromSeed(s.opts.Seed))
	if err != nil {
		return nil, err
	}

	var (
		gen  int
		best *core.Route
	)
	for gen = 0; gen < generations; gen++ {
		pop, err = s.evolve(pop, gen)
		if err != nil {
			return nil, err
		}
		if s.opts.Progress != nil {
			best, err = pop.Fittest()
			if err != nil {
				return nil, err
			}
			s.opts.Progress(gen+1, best.Length)
		}
	}

	return pop.Fittest()
}

// evolve produces the next generation from pop.
//
// Slot 0 receives the outgoing fittest verbatim when elitism is enabled;
// every remaining slot receives a freshly bred child. The returned Population
// replaces the working one; pop is not reused afterwards.
func (s *Solver) evolve(pop *core.Population, generation int) (*core.Population, error) {
	var (
		size      = s.opts.PopulationSize
		next, err = core.NewEmptyPopulation(size)
	)
	if err != nil {
		return nil, err
	}

	var offset = 0
	if s.opts.Elitism {
		var fittest *core.Route
		fittest, err = pop.Fittest()
		if err != nil {
			return nil, err
		}
		next.SaveRoute(0, fittest.Copy()) // length already valid, copied verbatim
		offset = 1
	}

	if s.opts.Workers > 1 {
		err = s.fillParallel(pop, next, generation, offset)
	} else {
		err = s.fillSerial(pop, next, generation, offset)
	}
	if err != nil {
		return nil, err
	}

	return next, nil
}

// fillSerial breeds children for slots [offset, size) on the calling goroutine.
func (s *Solver) fillSerial(pop, next *core.Population, generation, offset int) error {
	var (
		slot  int
		child *core.Route
		err   error
	)
	for slot = offset; slot < next.Size(); slot++ {
		child, err = s.breed(pop, slotRNG(s.opts.Seed, generation, slot))
		if err != nil {
			return err
		}
		next.SaveRoute(slot, child)
	}

	return nil
}

// fillParallel fans the slot fill out over disjoint contiguous ranges.
// Each worker owns its child slots exclusively; pop is only read (tournament
// draws index into it without mutation), and the City distance caches are
// shared read-only, so no locking is required.
func (s *Solver) fillParallel(pop, next *core.Population, generation, offset int) error {
	var (
		total   = next.Size() - offset
		workers = s.opts.Workers
	)
	if workers > total {
		workers = total
	}
	if workers <= 1 {
		return s.fillSerial(pop, next, generation, offset)
	}

	var (
		wg    sync.WaitGroup
		errs  = make([]error, workers)
		chunk = (total + workers - 1) / workers
		w     int
	)
	for w = 0; w < workers; w++ {
		var lo = offset + w*chunk
		var hi = lo + chunk
		if hi > offset+total {
			hi = offset + total
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			var (
				slot  int
				child *core.Route
				err   error
			)
			for slot = lo; slot < hi; slot++ {
				child, err = s.breed(pop, slotRNG(s.opts.Seed, generation, slot))
				if err != nil {
					errs[w] = err
					return
				}
				next.SaveRoute(slot, child)
			}
		}(w, lo, hi)
	}
	wg.Wait()

	var err error
	for _, err = range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// breed selects two parents independently via tournament selection, crosses
// them, and mutates the child with probability MutationProb.
func (s *Solver) breed(pop *core.Population, rng *rand.Rand) (*core.Route, error) {
	var (
		p1 = s.tournament(pop, rng)
		p2 = s.tournament(pop, rng)
	)

	var child, err = orderedCrossover(p1, p2, rng)
	if err != nil {
		return nil, err
	}

	if rng.Float64() < s.opts.MutationProb {
		if err = swapMutate(child, rng); err != nil {
			return nil, err
		}
	}

	return child, nil
}

// tournament draws TournamentSize routes independently and uniformly at
// random with replacement (by index) and returns the one with minimum
// length. Ties break toward the earliest draw.
//
// Complexity: O(T).
func (s *Solver) tournament(pop *core.Population, rng *rand.Rand) *core.Route {
	var (
		best *core.Route
		cand *core.Route
		i    int
	)
	for i = 0; i < s.opts.TournamentSize; i++ {
		cand = pop.Route(rng.Intn(pop.Size()))
		if best == nil || cand.Length < best.Length {
			best = cand
		}
	}

	return best
}
