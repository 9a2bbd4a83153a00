// Package viz — route and convergence charts on gonum/plot.

package viz

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/salesman/core"
)

// Canvas dimensions for saved charts.
const (
	plotWidth  = 10 * vg.Inch
	plotHeight = 6 * vg.Inch
)

var (
	// ErrEmptyRoute is returned when Route receives a nil or empty route.
	ErrEmptyRoute = errors.New("viz: empty route")

	// ErrEmptyHistory is returned when Convergence receives no data points.
	ErrEmptyHistory = errors.New("viz: empty history")
)

// Route renders the closed tour to a PNG file at path: scatter of cities,
// name labels, and the tour polyline closed back to the first city.
func Route(r *core.Route, title, path string) error {
	if r == nil || len(r.Cities) == 0 {
		return ErrEmptyRoute
	}

	var (
		n      = len(r.Cities)
		ring   = make(plotter.XYs, n+1)
		labels = plotter.XYLabels{
			XYs:    make(plotter.XYs, n),
			Labels: make([]string, n),
		}
		i int
	)
	for i = 0; i < n; i++ {
		ring[i].X = r.Cities[i].X
		ring[i].Y = r.Cities[i].Y
		labels.XYs[i] = ring[i]
		labels.Labels[i] = r.Cities[i].Name
	}
	ring[n] = ring[0] // close the cycle

	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X Coordinate"
	p.Y.Label.Text = "Y Coordinate"
	p.Add(plotter.NewGrid())

	var line, err = plotter.NewLine(ring)
	if err != nil {
		return err
	}
	p.Add(line)

	var scatter *plotter.Scatter
	scatter, err = plotter.NewScatter(ring[:n])
	if err != nil {
		return err
	}
	p.Add(scatter)

	var names *plotter.Labels
	names, err = plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(names)

	return p.Save(plotWidth, plotHeight, path)
}

// Convergence renders the best-length-per-generation series to a PNG file at
// path. history[i] is the best length after generation i+1.
func Convergence(history []float64, title, path string) error {
	if len(history) == 0 {
		return ErrEmptyHistory
	}

	var (
		pts = make(plotter.XYs, len(history))
		i   int
	)
	for i = range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = history[i]
	}

	var p = plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Route Length"
	p.Add(plotter.NewGrid())

	var line, err = plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)

	return p.Save(plotWidth, plotHeight, path)
}
