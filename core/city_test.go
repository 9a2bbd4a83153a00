// Package core_test verifies the City distance cache.
// Focus:
//  1. Euclidean values and the mandatory 0.0 self-distance entry.
//  2. Idempotent recomputation (overwrite, no drift).
//  3. Stale entries from a previous working set persist by contract.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
)

func TestCalculateDistances_Euclidean(t *testing.T) {
	var (
		a = core.NewCity("a", 0, 0)
		b = core.NewCity("b", 3, 4)
		s = []*core.City{a, b}
	)
	a.CalculateDistances(s)
	b.CalculateDistances(s)

	// 3-4-5 triangle, both directions.
	require.InDelta(t, 5.0, a.DistanceTo["b"], 1e-12)
	require.InDelta(t, 5.0, b.DistanceTo["a"], 1e-12)

	// Self-distance entries are seeded at construction.
	require.Equal(t, 0.0, a.DistanceTo["a"])
	require.Equal(t, 0.0, b.DistanceTo["b"])
}

func TestCalculateDistances_Idempotent(t *testing.T) {
	var cities = squareCities()

	// Re-running against the same set must not change any entry.
	var want = make(map[string]float64, len(cities[0].DistanceTo))
	for k, v := range cities[0].DistanceTo {
		want[k] = v
	}
	cities[0].CalculateDistances(cities)
	require.Equal(t, want, cities[0].DistanceTo)
}

func TestCalculateDistances_StaleEntriesPersist(t *testing.T) {
	var (
		a = core.NewCity("a", 0, 0)
		b = core.NewCity("b", 1, 0)
		c = core.NewCity("c", 2, 0)
	)
	a.CalculateDistances([]*core.City{a, b, c})
	require.Contains(t, a.DistanceTo, "c")

	// Recomputing against a smaller set overwrites b but keeps the stale c
	// entry: callers must pass the full working set each time.
	a.CalculateDistances([]*core.City{a, b})
	require.Contains(t, a.DistanceTo, "c")
	require.InDelta(t, 2.0, a.DistanceTo["c"], 1e-12)
}

func TestDistance_MissingEntry(t *testing.T) {
	var (
		a = core.NewCity("a", 0, 0)
		b = core.NewCity("b", 1, 1)
	)

	var _, err = a.Distance(b)
	require.ErrorIs(t, err, core.ErrMissingDistance)

	a.CalculateDistances([]*core.City{a, b})
	d, err := a.Distance(b)
	require.NoError(t, err)
	require.Greater(t, d, 0.0)
}
