// Package core — City: a named planar point with a distance cache.
//
// The cache maps city name → Euclidean distance and always contains a 0.0
// self-distance entry. CalculateDistances overwrites entries for names
// present in the given set but does not remove entries for names absent from
// it; callers must pass the full working set each time to avoid staleness.

package core

import "math"

// City is a point in the plane, identified by a unique name within its
// working set. Coordinates are trusted numeric inputs (planar units or
// latitude/longitude, by caller convention).
type City struct {
	// Name is the identity of the city; it is used as the distance-map key
	// and must be unique within a working set.
	Name string

	// X and Y are the two scalar coordinates.
	X float64
	Y float64

	// DistanceTo caches the Euclidean distance to every other city in the
	// last set this city was asked to compute against, keyed by name.
	// Read-only during any solver run.
	DistanceTo map[string]float64
}

// NewCity constructs a City with a fresh distance cache seeded with the
// mandatory 0.0 self-distance entry.
func NewCity(name string, x, y float64) *City {
	return &City{
		Name:       name,
		X:          x,
		Y:          y,
		DistanceTo: map[string]float64{name: 0},
	}
}

// CalculateDistances computes and stores the Euclidean distance from c to
// every other city in the given set. Idempotent: re-running with the same set
// overwrites the same entries.
//
// Complexity: O(n) for a set of n cities.
func (c *City) CalculateDistances(cities []*City) {
	var other *City
	for _, other = range cities {
		if other.Name == c.Name {
			continue
		}
		c.DistanceTo[other.Name] = pointDist(c.X, c.Y, other.X, other.Y)
	}
}

// Distance returns the cached distance from c to other.
// ErrMissingDistance signals that the pair was never computed against.
//
// Complexity: O(1).
func (c *City) Distance(other *City) (float64, error) {
	d, ok := c.DistanceTo[other.Name]
	if !ok {
		return 0, ErrMissingDistance
	}

	return d, nil
}

// CalculateAllDistances populates the pairwise distance caches of every city
// in the set. Solvers and loaders call this once up front so that the
// missing-distance error class is eliminated by contract.
//
// Complexity: O(n²).
func CalculateAllDistances(cities []*City) {
	var c *City
	for _, c = range cities {
		c.CalculateDistances(cities)
	}
}

// pointDist is the Euclidean distance √((x1−x2)²+(y1−y2)²).
func pointDist(x1, y1, x2, y2 float64) float64 {
	var dx, dy float64
	dx = x1 - x2
	dy = y1 - y2

	return math.Sqrt(dx*dx + dy*dy)
}
