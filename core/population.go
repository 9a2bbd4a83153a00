// Package core — Population: a fixed-capacity collection of Routes.
//
// Fittest is resolved on demand by a stable ascending sort over route
// lengths; slot writes do not keep any cached champion current. This mirrors
// the derived-query policy used across the module to avoid consistency bugs
// from partial population updates.

package core

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Population is a fixed-size ordered collection of Routes over one city set.
// A fresh Population is created for every GA generation.
type Population struct {
	routes []*Route
}

// NewRandomPopulation builds a Population with size independently
// constructed random Routes over cities and resolves the fittest ordering.
//
// Errors: ErrBadSize, ErrNoCities, ErrMissingDistance.
//
// Complexity: O(size·n) construction + O(size·log size) fittest sort.
func NewRandomPopulation(size int, cities []*City, rng *rand.Rand) (*Population, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}

	var (
		p   = &Population{routes: make([]*Route, size)}
		i   int
		err error
	)
	for i = 0; i < size; i++ {
		p.routes[i], err = NewRandomRoute(cities, rng)
		if err != nil {
			return nil, err
		}
	}
	if _, err = p.Fittest(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewEmptyPopulation builds a Population of size unset slots, to be filled
// by the caller via SaveRoute before any Fittest query.
func NewEmptyPopulation(size int) (*Population, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}

	return &Population{routes: make([]*Route, size)}, nil
}

// Size returns the fixed capacity of the population.
func (p *Population) Size() int { return len(p.routes) }

// Route returns the route stored at index i.
// Out-of-range access is a programmer error and panics (not recoverable).
func (p *Population) Route(i int) *Route { return p.routes[i] }

// SaveRoute stores r at index i, overwriting any previous occupant.
// Out-of-range access is a programmer error and panics (not recoverable).
func (p *Population) SaveRoute(i int, r *Route) { p.routes[i] = r }

// Fittest sorts all slots by ascending length (stable for ties) and returns
// the first. The sort is observable: after a successful call, Route(0) is the
// fittest member.
//
// Errors: ErrEmptySlot if any slot has not been filled.
//
// Complexity: O(size·log size).
func (p *Population) Fittest() (*Route, error) {
	var r *Route
	for _, r = range p.routes {
		if r == nil {
			return nil, ErrEmptySlot
		}
	}
	sort.SliceStable(p.routes, func(i, j int) bool {
		return p.routes[i].Length < p.routes[j].Length
	})

	return p.routes[0], nil
}

// LengthStats returns the mean and sample standard deviation of the slot
// lengths. Used for progress reporting; not part of the evolution loop.
//
// Errors: ErrEmptySlot if any slot has not been filled.
//
// Complexity: O(size).
func (p *Population) LengthStats() (mean, stddev float64, err error) {
	var lengths = make([]float64, len(p.routes))
	var i int
	for i = range p.routes {
		if p.routes[i] == nil {
			return 0, 0, ErrEmptySlot
		}
		lengths[i] = p.routes[i].Length
	}

	return stat.Mean(lengths, nil), stat.StdDev(lengths, nil), nil
}
