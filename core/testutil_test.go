// Package core_test provides lightweight testing helpers shared across
// *_test.go files in this package.
package core_test

import (
	"math/rand"

	"github.com/katalvlaran/salesman/core"
)

// seedDet is the deterministic seed used across tests.
const seedDet = int64(7)

// squareCities returns the canonical 4-city square with all pairwise
// distances precomputed. Optimal tour length: 40 (the perimeter).
func squareCities() []*core.City {
	var cities = []*core.City{
		core.NewCity("A", 0, 0),
		core.NewCity("B", 0, 10),
		core.NewCity("C", 10, 10),
		core.NewCity("D", 10, 0),
	}
	core.CalculateAllDistances(cities)

	return cities
}

// randomCities returns n cities on a deterministic pseudo-random scatter
// with all pairwise distances precomputed.
func randomCities(n int) []*core.City {
	var (
		rng    = rand.New(rand.NewSource(seedDet))
		cities = make([]*core.City, n)
		i      int
	)
	for i = 0; i < n; i++ {
		cities[i] = core.NewCity(cityName(i), rng.Float64()*100, rng.Float64()*100)
	}
	core.CalculateAllDistances(cities)

	return cities
}

// cityName renders a short unique name for index i.
func cityName(i int) string {
	return string(rune('a'+i%26)) + string(rune('0'+i/26))
}
