// Package tourio: sentinel error set.
// Sentinels are wrapped with positional context at the boundary
// (fmt.Errorf("…: %w", ErrX)); callers match with errors.Is.

package tourio

import "errors"

var (
	// ErrEmptyInput is returned when a tour-definition file contains no cities.
	ErrEmptyInput = errors.New("tourio: no cities in input")

	// ErrMissingField marks a tour-definition record lacking name, x or y.
	ErrMissingField = errors.New("tourio: record missing required field")

	// ErrDuplicateCity marks two tour-definition records sharing one name.
	ErrDuplicateCity = errors.New("tourio: duplicate city name")

	// ErrNilRoute is returned when SaveSolution receives a nil route.
	ErrNilRoute = errors.New("tourio: nil route")
)
