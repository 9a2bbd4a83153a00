// Package genetic — swap mutation.

package genetic

import (
	"math/rand"

	"github.com/katalvlaran/salesman/core"
)

// swapMutate exchanges the occupants of two random positions in place and
// re-derives the route length. The two positions may coincide (a no-op);
// validity of the permutation is preserved either way, and only the edges
// adjacent to the two positions change.
//
// Errors: core.ErrMissingDistance from the length derivation.
//
// Complexity: O(n) (length recomputation dominates the O(1) swap).
func swapMutate(r *core.Route, rng *rand.Rand) error {
	var n = len(r.Cities)

	var i, j int
	i = rng.Intn(n)
	j = rng.Intn(n)
	r.Cities[i], r.Cities[j] = r.Cities[j], r.Cities[i]

	return r.RecalcLength()
}
