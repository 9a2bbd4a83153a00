// Package tourio — city-population dataset preprocessing.
//
// The input is a differently-shaped JSON array of records carrying a
// population count and nested coordinates. Numbers in the wild datasets show
// up both as JSON numbers and as quoted strings, so field parsing coerces
// either form. A record failing any field is skipped with a warning; the
// file as a whole only fails on I/O or top-level parse errors.

package tourio

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// DefaultMinPopulation is the population threshold applied when
// ConvertOptions leaves MinPopulation at zero.
const DefaultMinPopulation = 500_000

// ConvertOptions configures a dataset conversion.
//
// Fields:
//   - MinPopulation — records below this population are excluded;
//     0 selects DefaultMinPopulation.
//   - MaxCities — cap on the number of converted records, applied in input
//     order during the scan (before sorting); 0 means no cap.
type ConvertOptions struct {
	MinPopulation int
	MaxCities     int
}

// popRecord is one raw input record. RawMessage fields tolerate both numeric
// and quoted-string encodings; nil marks an absent key.
type popRecord struct {
	Name       *string         `json:"name"`
	Population json.RawMessage `json:"population"`
	Coords     *struct {
		Lat json.RawMessage `json:"lat"`
		Lon json.RawMessage `json:"lon"`
	} `json:"coords"`
}

// convertedCity is one output record: tour-definition triple plus the
// retained population used for sorting.
type convertedCity struct {
	Name       string  `json:"name"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Population int     `json:"population"`
}

// convertedFile is the output document shape (tour-definition compatible).
type convertedFile struct {
	Cities []convertedCity `json:"cities"`
}

// Convert reshapes a city-population dataset into the tour-definition
// format: latitude becomes x, longitude becomes y, below-threshold records
// are filtered, the result is sorted by descending population and written
// indented. Returns the number of cities written.
//
// Per-record failures are skipped with a warning; I/O or top-level parse
// failures abort the whole operation.
func Convert(inputPath, outputPath string, opts ConvertOptions) (int, error) {
	var minPop = opts.MinPopulation
	if minPop == 0 {
		minPop = DefaultMinPopulation
	}

	var data, err = os.ReadFile(inputPath)
	if err != nil {
		return 0, err
	}

	var records []popRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("tourio: parse %s: %w", inputPath, err)
	}

	var (
		out = convertedFile{Cities: make([]convertedCity, 0, len(records))}
		rec popRecord
		c   convertedCity
	)
	for _, rec = range records {
		c, err = convertRecord(rec)
		if err != nil {
			log.Warnf("could not convert city %s: %v", recordName(rec), err)
			continue
		}
		if c.Population < minPop {
			continue
		}
		out.Cities = append(out.Cities, c)
		if opts.MaxCities > 0 && len(out.Cities) >= opts.MaxCities {
			break
		}
	}

	sort.SliceStable(out.Cities, func(i, j int) bool {
		return out.Cities[i].Population > out.Cities[j].Population
	})

	var encoded []byte
	encoded, err = json.MarshalIndent(out, "", "    ")
	if err != nil {
		return 0, err
	}
	if err = os.WriteFile(outputPath, encoded, outFileMode); err != nil {
		return 0, err
	}

	return len(out.Cities), nil
}

// convertRecord maps one raw record to the output shape, failing on any
// missing or unparsable field.
func convertRecord(rec popRecord) (convertedCity, error) {
	if rec.Name == nil || *rec.Name == "" {
		return convertedCity{}, ErrMissingField
	}
	if rec.Coords == nil {
		return convertedCity{}, fmt.Errorf("%q coords: %w", *rec.Name, ErrMissingField)
	}

	var pop, err = rawInt(rec.Population)
	if err != nil {
		return convertedCity{}, fmt.Errorf("%q population: %w", *rec.Name, err)
	}

	var lat, lon float64
	lat, err = rawFloat(rec.Coords.Lat)
	if err != nil {
		return convertedCity{}, fmt.Errorf("%q coords.lat: %w", *rec.Name, err)
	}
	lon, err = rawFloat(rec.Coords.Lon)
	if err != nil {
		return convertedCity{}, fmt.Errorf("%q coords.lon: %w", *rec.Name, err)
	}

	return convertedCity{Name: *rec.Name, X: lat, Y: lon, Population: pop}, nil
}

// recordName renders a best-effort identity for warnings on broken records.
func recordName(rec popRecord) string {
	if rec.Name == nil || *rec.Name == "" {
		return "unknown"
	}

	return *rec.Name
}

// rawFloat coerces a raw JSON value — number or quoted string — to float64.
func rawFloat(raw json.RawMessage) (float64, error) {
	if raw == nil {
		return 0, ErrMissingField
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, fmt.Errorf("tourio: value %v is not numeric", v)
	}
}

// rawInt coerces a raw JSON value to int, truncating numeric forms the way
// the dataset semantics expect (populations are whole counts).
func rawInt(raw json.RawMessage) (int, error) {
	var f, err = rawFloat(raw)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}
