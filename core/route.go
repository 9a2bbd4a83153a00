// Package core — Route: a permutation of a city set plus its cached cyclic
// tour length.
//
// Two distinct constructors replace the ambiguous single-path construction:
//   - NewRandomRoute — uniformly random permutation (Fisher–Yates).
//   - NewOrderedRoute — explicit ordered sequence used as-is.
//
// Invariant: Length equals the recomputation of the cyclic sum at all times a
// caller reads it; every mutating operator re-derives Length before returning.

package core

import (
	"math"
	"math/rand"
	"strings"
)

// roundScale controls final length stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting tour ordering.
const roundScale = 1e9

// fallbackSeed is the fixed seed used when a constructor receives a nil RNG.
// The value is arbitrary but stable to keep reproducible defaults.
const fallbackSeed int64 = 1

// Route is an ordered sequence of City references — a permutation of some
// city set — plus a cached scalar tour length. The tour is cyclic: the last
// city connects back to the first.
type Route struct {
	// Cities is the visiting order. Mutated in place by genetic operators;
	// never partially valid outside an operator's internal scope.
	Cities []*City

	// Length is the cached cyclic tour length, stabilized to 1e-9.
	Length float64
}

// NewRandomRoute builds a Route over a uniformly random permutation of the
// given city list (each permutation equally likely) and computes its length.
// A nil rng falls back to a deterministic default stream.
//
// Errors: ErrNoCities for an empty set; ErrMissingDistance if the distance
// contract was violated.
//
// Complexity: O(n) shuffle + O(n) length.
func NewRandomRoute(cities []*City, rng *rand.Rand) (*Route, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	var perm = make([]*City, len(cities))
	copy(perm, cities)

	var r = rng
	if r == nil {
		r = rand.New(rand.NewSource(fallbackSeed))
	}

	// Fisher–Yates, identical element distribution for every permutation.
	var i, j int
	for i = len(perm) - 1; i > 0; i-- {
		j = r.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}

	var rt = &Route{Cities: perm}
	if err := rt.RecalcLength(); err != nil {
		return nil, err
	}

	return rt, nil
}

// NewOrderedRoute builds a Route visiting the given cities exactly in the
// given order and computes its length. The input slice is copied; the caller
// keeps ownership of its slice header.
//
// Errors: ErrNoCities, ErrMissingDistance.
//
// Complexity: O(n).
func NewOrderedRoute(cities []*City) (*Route, error) {
	if len(cities) == 0 {
		return nil, ErrNoCities
	}

	var seq = make([]*City, len(cities))
	copy(seq, cities)

	var rt = &Route{Cities: seq}
	if err := rt.RecalcLength(); err != nil {
		return nil, err
	}

	return rt, nil
}

// RecalcLength re-derives Length from the current sequence and the cities'
// distance caches: Σ distance(route[i], route[(i+1) mod n]).
//
// Errors: ErrMissingDistance when a pair has no cache entry (the sequence is
// left untouched; Length keeps its previous value in that case).
//
// Complexity: O(n).
func (r *Route) RecalcLength() error {
	var (
		n    = len(r.Cities)
		sum  float64
		i    int
		next *City
		d    float64
		ok   bool
	)
	for i = 0; i < n; i++ {
		next = r.Cities[(i+1)%n]
		d, ok = r.Cities[i].DistanceTo[next.Name]
		if !ok {
			return ErrMissingDistance
		}
		sum += d
	}
	r.Length = round1e9(sum)

	return nil
}

// IsValid reports whether the route is a permutation of exactly the given
// reference city set: no duplicates, no omissions, no extras.
//
// Complexity: O(n) time, O(n) space.
func (r *Route) IsValid(reference []*City) bool {
	if len(r.Cities) != len(reference) {
		return false
	}

	var (
		want = make(map[string]struct{}, len(reference))
		c    *City
		ok   bool
	)
	for _, c = range reference {
		want[c.Name] = struct{}{}
	}
	for _, c = range r.Cities {
		if _, ok = want[c.Name]; !ok {
			return false
		}
		delete(want, c.Name) // a second occurrence now fails the lookup
	}

	return len(want) == 0
}

// Copy returns an independent Route sharing the same City references.
// The sequence slice is fresh; Length is carried over verbatim.
//
// Complexity: O(n).
func (r *Route) Copy() *Route {
	var seq = make([]*City, len(r.Cities))
	copy(seq, r.Cities)

	return &Route{Cities: seq, Length: r.Length}
}

// String renders the visiting order as a comma-separated name list.
func (r *Route) String() string {
	var names = make([]string, len(r.Cities))
	var i int
	for i = range r.Cities {
		names[i] = r.Cities[i].Name
	}

	return strings.Join(names, ", ")
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
