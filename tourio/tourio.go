// Package tourio — tour-definition loading and solution saving.

package tourio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/salesman/core"
)

// outFileMode is the permission set for written solution/definition files.
const outFileMode = 0o644

// cityRecord is one entry of the tour-definition "cities" list. Pointer
// fields distinguish absent keys from zero values so that missing fields are
// rejected rather than silently defaulted.
type cityRecord struct {
	Name *string  `json:"name"`
	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
}

// tourFile is the tour-definition document shape.
type tourFile struct {
	Cities []cityRecord `json:"cities"`
}

// solutionCity is one entry of a written solution route.
type solutionCity struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// solutionFile is the solution document shape.
type solutionFile struct {
	TotalDistance float64        `json:"total_distance"`
	Route         []solutionCity `json:"route"`
}

// LoadCities reads a tour-definition JSON file and returns its cities with
// all pairwise distances precomputed.
//
// Every record must carry name, x and y; names must be unique. Any violation
// is a configuration error and aborts the load (fatal, no per-record skips —
// a tour over a partial city set would be silently wrong).
//
// Errors: I/O and parse errors verbatim; ErrEmptyInput, ErrMissingField and
// ErrDuplicateCity wrapped with the offending position.
func LoadCities(path string) ([]*core.City, error) {
	var data, err = os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc tourFile
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tourio: parse %s: %w", path, err)
	}
	if len(doc.Cities) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	var (
		cities = make([]*core.City, 0, len(doc.Cities))
		seen   = make(map[string]struct{}, len(doc.Cities))
		rec    cityRecord
		i      int
		ok     bool
	)
	for i, rec = range doc.Cities {
		if rec.Name == nil || *rec.Name == "" || rec.X == nil || rec.Y == nil {
			return nil, fmt.Errorf("cities[%d]: %w", i, ErrMissingField)
		}
		if _, ok = seen[*rec.Name]; ok {
			return nil, fmt.Errorf("cities[%d] %q: %w", i, *rec.Name, ErrDuplicateCity)
		}
		seen[*rec.Name] = struct{}{}
		cities = append(cities, core.NewCity(*rec.Name, *rec.X, *rec.Y))
	}

	// Distance contract: solvers receive the set ready to use.
	core.CalculateAllDistances(cities)

	return cities, nil
}

// SaveSolution writes the solved route as an indented JSON solution file:
// total distance plus the final city order.
func SaveSolution(path string, route *core.Route) error {
	if route == nil {
		return ErrNilRoute
	}

	var out = solutionFile{
		TotalDistance: route.Length,
		Route:         make([]solutionCity, len(route.Cities)),
	}
	var i int
	for i = range route.Cities {
		out.Route[i] = solutionCity{
			Name: route.Cities[i].Name,
			X:    route.Cities[i].X,
			Y:    route.Cities[i].Y,
		}
	}

	var data, err = json.MarshalIndent(out, "", "    ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, outFileMode)
}
