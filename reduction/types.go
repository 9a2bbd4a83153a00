// Package reduction: sentinel error set.

package reduction

import "errors"

// ErrTooFewCities is returned when Solve receives fewer than 2 cities.
var ErrTooFewCities = errors.New("reduction: at least two cities required")
