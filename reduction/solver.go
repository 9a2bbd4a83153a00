// Package reduction — the public solver entrypoint.
//
// Solve prepares the dense cost matrix, builds the nearest-neighbor tour
// first (so a consumed time budget still returns a complete tour), then runs
// the reduction descent under a cooperatively polled deadline.

package reduction

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/salesman/core"
)

// roundScale controls lower-bound stabilization precision (1e-9).
const roundScale = 1e9

// Result holds the outcome of one reduction run.
type Result struct {
	// Route is the nearest-neighbor tour over the original distance matrix,
	// starting at city 0. Its Length is the tour's actual cyclic length.
	Route *core.Route

	// LowerBound is the accumulated assignment-relaxation estimate. It is an
	// independent value and may disagree with Route.Length; see the package
	// documentation.
	LowerBound float64

	// Elapsed is the wall-clock time spent in Solve.
	Elapsed time.Duration

	// TimedOut reports that the descent was stopped by the time budget; the
	// bound then covers only the iterations completed before expiry.
	TimedOut bool
}

// Solve runs the matrix-reduction descent over the given cities.
//
// Steps:
//  1. Populate all pairwise distance caches and build the n×n cost matrix
//     with +Inf on the diagonal.
//  2. Build the nearest-neighbor tour from city 0 over the original matrix.
//  3. Reduce the matrix (initial lower bound), then repeatedly pick the
//     zero cell with the maximum exclusion penalty, keep the cheaper branch
//     candidate, and accumulate its estimate — shrinking the effective
//     problem size by one per iteration until size 1.
//
// A non-positive timeLimit means unlimited; otherwise the deadline is polled
// once per descent iteration.
//
// Errors: ErrTooFewCities; core sentinels are forwarded unchanged.
func Solve(cities []*core.City, timeLimit time.Duration) (Result, error) {
	var start = time.Now()

	var n = len(cities)
	if n < 2 {
		return Result{}, ErrTooFewCities
	}

	// Distance contract: computed here once, over the complete set.
	core.CalculateAllDistances(cities)

	var cost, err = costMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	// Tour construction is independent of the reduction bookkeeping and uses
	// the original, unreduced matrix.
	var route *core.Route
	route, err = core.NewOrderedRoute(nearestNeighbor(cities, cost))
	if err != nil {
		return Result{}, err
	}

	var (
		nd          = newNode(cost)
		bound       = nd.value
		useDeadline = timeLimit > 0
		deadline    = start.Add(timeLimit)
		size        = n
		timedOut    bool
		pi, pj      int
	)
	for size > 1 {
		if useDeadline && time.Now().After(deadline) {
			timedOut = true
			break
		}
		pi, pj = nd.selectPivot()
		bound += nd.branch(pi, pj)
		size--
	}

	return Result{
		Route:      route,
		LowerBound: round1e9(bound),
		Elapsed:    time.Since(start),
		TimedOut:   timedOut,
	}, nil
}

// costMatrix builds the dense pairwise cost matrix from the cities' distance
// caches, with +Inf on the diagonal (self-loops forbidden).
//
// Complexity: O(n²).
func costMatrix(cities []*core.City) (*mat.Dense, error) {
	var (
		n    = len(cities)
		m    = mat.NewDense(n, n, nil)
		i, j int
		d    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				m.Set(i, j, math.Inf(1))
				continue
			}
			d, err = cities[i].Distance(cities[j])
			if err != nil {
				return nil, err
			}
			m.Set(i, j, d)
		}
	}

	return m, nil
}

// nearestNeighbor walks the original cost matrix greedily: start at city 0,
// repeatedly move to the nearest unvisited city (ties toward the lowest
// index) until all are visited.
//
// Complexity: O(n²).
func nearestNeighbor(cities []*core.City, cost *mat.Dense) []*core.City {
	var (
		n       = len(cities)
		order   = make([]*core.City, 0, n)
		visited = make([]bool, n)
		current = 0
		step    int
		j       int
		best    int
		bestD   float64
	)
	order = append(order, cities[current])
	visited[current] = true

	for step = 1; step < n; step++ {
		best, bestD = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if !visited[j] && cost.At(current, j) < bestD {
				bestD = cost.At(current, j)
				best = j
			}
		}
		order = append(order, cities[best])
		visited[best] = true
		current = best
	}

	return order
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
