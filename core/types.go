// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the core
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (out-of-range Population access).

package core

import "errors"

var (
	// ErrNoCities is returned when a Route or Population is constructed over
	// an empty city set.
	ErrNoCities = errors.New("core: empty city set")

	// ErrMissingDistance is returned when a route length derivation hits a
	// city pair with no precomputed distance entry. By contract callers run
	// CalculateDistances over the complete working set before constructing
	// or mutating any Route; this sentinel marks a contract violation, not a
	// recoverable condition.
	ErrMissingDistance = errors.New("core: distance entry missing for city pair")

	// ErrBadSize signals a non-positive Population capacity.
	ErrBadSize = errors.New("core: population size must be positive")

	// ErrEmptySlot is returned by Fittest when at least one Population slot
	// has not been filled yet.
	ErrEmptySlot = errors.New("core: population slot is empty")
)
