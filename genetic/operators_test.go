// Package genetic (internal) verifies the evolution operators directly.
// Focus:
//  1. OX: the child is always a valid permutation and the copied segment
//     matches parent 1 exactly, order preserved, for arbitrary cut points.
//  2. Swap mutation preserves validity and re-derives the length.
//  3. Tournament selection returns only sampled members; with T=1 the result
//     is a uniform draw.
package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

// testCities builds n deterministic scattered cities with distances computed.
func testCities(t *testing.T, n int) []*core.City {
	t.Helper()
	var (
		rng    = rand.New(rand.NewSource(42))
		cities = make([]*core.City, n)
		i      int
	)
	for i = 0; i < n; i++ {
		cities[i] = core.NewCity(string(rune('A'+i)), rng.Float64()*50, rng.Float64()*50)
	}
	core.CalculateAllDistances(cities)

	return cities
}

func TestOrderedCrossover_SegmentFidelityAndValidity(t *testing.T) {
	var (
		cities = testCities(t, 10)
		n      = len(cities)
		seed   int64
	)
	for seed = 1; seed <= 40; seed++ {
		var (
			p1, err1 = core.NewRandomRoute(cities, rand.New(rand.NewSource(seed)))
			p2, err2 = core.NewRandomRoute(cities, rand.New(rand.NewSource(seed+1000)))
		)
		require.NoError(t, err1)
		require.NoError(t, err2)

		// Replay the operator's first two draws to learn the cut points.
		var probe = rand.New(rand.NewSource(seed * 31))
		var start, end = probe.Intn(n), probe.Intn(n)
		if start > end {
			start, end = end, start
		}

		var child, err = orderedCrossover(p1, p2, rand.New(rand.NewSource(seed*31)))
		require.NoError(t, err)
		require.True(t, child.IsValid(cities), "seed %d: child not a permutation", seed)

		var i int
		for i = start; i <= end; i++ {
			require.Same(t, p1.Cities[i], child.Cities[i],
				"seed %d: segment position %d diverges from parent 1", seed, i)
		}

		// Length invariant: cached value equals a fresh recomputation.
		var cached = child.Length
		require.NoError(t, child.RecalcLength())
		require.Equal(t, cached, child.Length)
	}
}

func TestOXAssemble_HandExample(t *testing.T) {
	// Classic OX walkthrough over six cities A..F.
	//   p1 = [A B C D E F], p2 = [F E D C B A], segment [2,4] = C D E.
	// Fill order starts after the segment and wraps: position 5 gets F (the
	// first p2 city not in the segment), then positions 0 and 1 get B and A.
	var cities = testCities(t, 6)

	var p1, err = core.NewOrderedRoute(cities)
	require.NoError(t, err)

	var reversed = make([]*core.City, len(cities))
	var i int
	for i = range cities {
		reversed[len(cities)-1-i] = cities[i]
	}
	var p2 *core.Route
	p2, err = core.NewOrderedRoute(reversed)
	require.NoError(t, err)

	var child *core.Route
	child, err = oxAssemble(p1, p2, 2, 4)
	require.NoError(t, err)

	var want = []string{"B", "A", "C", "D", "E", "F"}
	for i = range want {
		require.Equal(t, want[i], child.Cities[i].Name, "position %d", i)
	}
	require.True(t, child.IsValid(cities))
}

func TestSwapMutate_ValidityAndLength(t *testing.T) {
	var (
		cities = testCities(t, 8)
		seed   int64
	)
	for seed = 1; seed <= 30; seed++ {
		var r, err = core.NewRandomRoute(cities, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		require.NoError(t, swapMutate(r, rand.New(rand.NewSource(seed*17))))
		require.True(t, r.IsValid(cities), "seed %d: mutant not a permutation", seed)

		var cached = r.Length
		require.NoError(t, r.RecalcLength())
		require.Equal(t, cached, r.Length)
	}
}

func TestTournament_NeverReturnsOutsider(t *testing.T) {
	var (
		cities   = testCities(t, 6)
		pop, err = core.NewRandomPopulation(12, cities, rand.New(rand.NewSource(5)))
	)
	require.NoError(t, err)

	var (
		members = make(map[*core.Route]struct{}, pop.Size())
		i       int
	)
	for i = 0; i < pop.Size(); i++ {
		members[pop.Route(i)] = struct{}{}
	}

	var s = &Solver{opts: Options{PopulationSize: 12, TournamentSize: 4}}
	var rng = rand.New(rand.NewSource(9))
	for i = 0; i < 100; i++ {
		var picked = s.tournament(pop, rng)
		_, ok := members[picked]
		require.True(t, ok, "draw %d returned a route not present in the population", i)
	}
}

func TestTournament_SizeOneIsUniform(t *testing.T) {
	var (
		cities   = testCities(t, 5)
		pop, err = core.NewRandomPopulation(8, cities, rand.New(rand.NewSource(5)))
	)
	require.NoError(t, err)

	var (
		s      = &Solver{opts: Options{PopulationSize: 8, TournamentSize: 1}}
		rng    = rand.New(rand.NewSource(11))
		counts = make(map[*core.Route]int, pop.Size())
		i      int
	)
	const draws = 8000
	for i = 0; i < draws; i++ {
		counts[s.tournament(pop, rng)]++
	}

	// Every member must be drawn, each within a loose band around draws/size.
	require.Len(t, counts, pop.Size())
	var c int
	for _, c = range counts {
		require.InDelta(t, draws/pop.Size(), c, float64(draws)*0.05)
	}
}

func TestSlotRNG_IndependentStreams(t *testing.T) {
	// Neighboring (generation, slot) pairs must not share a stream.
	var a = slotRNG(1, 0, 0).Int63()
	var b = slotRNG(1, 0, 1).Int63()
	var c = slotRNG(1, 1, 0).Int63()
	require.NotEqual(t, a, b)
	require.NotEqual(t, a, c)

	// Same coordinates ⇒ same stream (reproducibility).
	require.Equal(t, a, slotRNG(1, 0, 0).Int63())
}
