// Package tourio_test verifies tour-definition loading and solution saving.
package tourio_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/tourio"
)

// writeFile drops content into a fresh temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	var path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const validTour = `{
    "cities": [
        {"name": "A", "x": 0, "y": 0},
        {"name": "B", "x": 0, "y": 10},
        {"name": "C", "x": 10, "y": 10},
        {"name": "D", "x": 10, "y": 0}
    ]
}`

func TestLoadCities_ValidFile(t *testing.T) {
	var cities, err = tourio.LoadCities(writeFile(t, "cities.json", validTour))
	require.NoError(t, err)
	require.Len(t, cities, 4)

	// Input order is preserved.
	require.Equal(t, "A", cities[0].Name)
	require.Equal(t, "D", cities[3].Name)

	// Distances arrive precomputed over the complete set.
	var d float64
	d, err = cities[0].Distance(cities[2])
	require.NoError(t, err)
	require.InDelta(t, 14.142135623, d, 1e-6)
}

func TestLoadCities_MissingFieldIsFatal(t *testing.T) {
	var path = writeFile(t, "bad.json", `{"cities": [{"name": "A", "x": 1}]}`)

	var _, err = tourio.LoadCities(path)
	require.ErrorIs(t, err, tourio.ErrMissingField)
}

func TestLoadCities_DuplicateNameIsFatal(t *testing.T) {
	var path = writeFile(t, "dup.json", `{
        "cities": [
            {"name": "A", "x": 0, "y": 0},
            {"name": "A", "x": 1, "y": 1}
        ]
    }`)

	var _, err = tourio.LoadCities(path)
	require.ErrorIs(t, err, tourio.ErrDuplicateCity)
}

func TestLoadCities_EmptyAndUnparsable(t *testing.T) {
	var _, err = tourio.LoadCities(writeFile(t, "empty.json", `{"cities": []}`))
	require.ErrorIs(t, err, tourio.ErrEmptyInput)

	_, err = tourio.LoadCities(writeFile(t, "garbage.json", `{not json`))
	require.Error(t, err)

	_, err = tourio.LoadCities(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestSaveSolution_RoundTrip(t *testing.T) {
	var cities, err = tourio.LoadCities(writeFile(t, "cities.json", validTour))
	require.NoError(t, err)

	var route *core.Route
	route, err = core.NewOrderedRoute(cities)
	require.NoError(t, err)

	var out = filepath.Join(t.TempDir(), "solution.json")
	require.NoError(t, tourio.SaveSolution(out, route))

	var data []byte
	data, err = os.ReadFile(out)
	require.NoError(t, err)

	var doc struct {
		TotalDistance float64 `json:"total_distance"`
		Route         []struct {
			Name string  `json:"name"`
			X    float64 `json:"x"`
			Y    float64 `json:"y"`
		} `json:"route"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.InDelta(t, 40.0, doc.TotalDistance, 1e-9)
	require.Len(t, doc.Route, 4)
	require.Equal(t, "A", doc.Route[0].Name)
	require.Equal(t, 10.0, doc.Route[2].X)
}

func TestSaveSolution_NilRoute(t *testing.T) {
	var err = tourio.SaveSolution(filepath.Join(t.TempDir(), "x.json"), nil)
	require.ErrorIs(t, err, tourio.ErrNilRoute)
}
