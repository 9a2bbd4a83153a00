// Package genetic — ordered crossover (OX).

package genetic

import (
	"math/rand"

	"github.com/katalvlaran/salesman/core"
)

// orderedCrossover produces one child from two parents over the same city set.
//
// Procedure:
//  1. Draw two cut points over the index range; swap them if drawn reversed,
//     so start ≤ end.
//  2. Copy child[start..end] verbatim from parent 1.
//  3. Fill the remaining positions, starting immediately after end and
//     wrapping circularly, by walking parent 2's sequence from its start and
//     inserting each city not already present in the copied segment.
//
// The child is a valid permutation regardless of parent content: step 3
// inserts exactly the cities missing from the segment, each once.
//
// Errors: core.ErrMissingDistance from the final length derivation.
//
// Complexity: O(n) time, O(n) space.
func orderedCrossover(p1, p2 *core.Route, rng *rand.Rand) (*core.Route, error) {
	var n = len(p1.Cities)

	var start, end int
	start = rng.Intn(n)
	end = rng.Intn(n)
	if start > end {
		start, end = end, start
	}

	return oxAssemble(p1, p2, start, end)
}

// oxAssemble performs the deterministic part of OX for fixed cut points
// start ≤ end. Split out so the assembly can be exercised directly.
func oxAssemble(p1, p2 *core.Route, start, end int) (*core.Route, error) {
	var n = len(p1.Cities)

	var (
		child = make([]*core.City, n)
		used  = make(map[string]struct{}, end-start+1)
		i     int
	)
	for i = start; i <= end; i++ {
		child[i] = p1.Cities[i]
		used[p1.Cities[i].Name] = struct{}{}
	}

	// Walk parent 2 in order; wrap the write cursor past the segment.
	var (
		pos = (end + 1) % n
		c   *core.City
		ok  bool
	)
	for _, c = range p2.Cities {
		if _, ok = used[c.Name]; ok {
			continue
		}
		child[pos] = c
		used[c.Name] = struct{}{}
		pos = (pos + 1) % n
	}

	var rt = &core.Route{Cities: child}
	if err := rt.RecalcLength(); err != nil {
		return nil, err
	}

	return rt, nil
}
