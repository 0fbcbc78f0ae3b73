// Package render draws the 2D airfoil outline with gonum/plot: the
// chord-scaled contour with point markers plus a dashed chord reference
// line. Rendering is an optional, fail-soft collaborator — a plot that
// cannot be produced must never cost the caller its already-written
// geometry, so errors here are reported, not fatal.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyLoop indicates there is no outline to draw.
var ErrEmptyLoop = errors.New("render: outline has no points")

// Outline builds a plot of the chord-scaled loop. The caller owns the
// returned plot and decides how (or whether) to save it.
func Outline(loop []r2.Vec, chord float64, code string) (*plot.Plot, error) {
	if len(loop) == 0 {
		return nil, ErrEmptyLoop
	}

	xys := make(plotter.XYs, len(loop))
	for i, p := range loop {
		xys[i].X = chord * p.X
		xys[i].Y = chord * p.Y
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("render: outline series: %w", err)
	}
	line.Width = vg.Points(1)
	points.Radius = vg.Points(1.5)

	chordLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: chord, Y: 0}})
	if err != nil {
		return nil, fmt.Errorf("render: chord series: %w", err)
	}
	chordLine.Width = vg.Points(0.7)
	chordLine.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("NACA %s (chord=%g)", code, chord)
	p.X.Label.Text = "x (chord)"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid(), line, points, chordLine)
	p.Legend.Add(fmt.Sprintf("NACA %s", code), line, points)
	p.Legend.Add("chord line", chordLine)

	return p, nil
}

// SavePNG renders the outline straight to a PNG file at path.
func SavePNG(loop []r2.Vec, chord float64, code, path string) error {
	p, err := Outline(loop, chord, code)
	if err != nil {
		return err
	}
	if err = p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("render: save %q: %w", path, err)
	}

	return nil
}
