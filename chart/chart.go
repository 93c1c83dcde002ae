// SPDX-License-Identifier: MIT

// Package chart renders spin trajectories and Lyapunov spectra with gonum/plot.
//
// The functions build a *plot.Plot and leave the output format to Save, which
// picks PNG, SVG, PDF, ... from the file extension.
package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/fluctuation"
	"github.com/katalvlaran/mfaoa/spin"
)

// Default output size of Save.
const (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

var axisNames = [...]string{spin.AxisX: "x", spin.AxisY: "y", spin.AxisZ: "z"}

// Trajectories plots component axis of every qubit against the layer index,
// one line per qubit.
// Errors: mfaoa.ErrShape for an empty history, mfaoa.ErrValue for an unknown axis.
func Trajectories(h spin.History, axis int, title string) (*plot.Plot, error) {
	if len(h) == 0 || len(h[0]) == 0 {
		return nil, fmt.Errorf("chart: Trajectories: empty history: %w", mfaoa.ErrShape)
	}
	if axis < spin.AxisX || axis > spin.AxisZ {
		return nil, fmt.Errorf("chart: Trajectories: axis %d: %w", axis, mfaoa.ErrValue)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "layer"
	p.Y.Label.Text = "n^" + axisNames[axis]
	p.Y.Min, p.Y.Max = -1, 1
	p.Add(plotter.NewGrid())

	for q := range h[0] {
		series := h.Component(q, axis)
		if series == nil {
			return nil, fmt.Errorf("chart: Trajectories: ragged history at qubit %d: %w", q, mfaoa.ErrShape)
		}
		pts := make(plotter.XYs, 0, len(series))
		for k, v := range series {
			if finite(v) {
				pts = append(pts, plotter.XY{X: float64(k), Y: v})
			}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("chart: Trajectories: qubit %d: %w", q, err)
		}
		line.Color = plotutil.Color(q)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("q%d", q), line)
	}

	return p, nil
}

// Spectrum plots the exponents against their rank. Non-finite exponents
// (a collapsed direction gives −Inf) are left out.
// Errors: mfaoa.ErrShape for a nil or empty spectrum.
func Spectrum(s *fluctuation.Spectrum, title string) (*plot.Plot, error) {
	if s == nil || s.Len() == 0 {
		return nil, fmt.Errorf("chart: Spectrum: empty spectrum: %w", mfaoa.ErrShape)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "index"
	p.Y.Label.Text = "Lyapunov exponent"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, s.Len())
	for i, e := range s.Exponents {
		if finite(e) {
			pts = append(pts, plotter.XY{X: float64(i), Y: e})
		}
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("chart: Spectrum: %w", err)
	}
	sc.Color = plotutil.Color(0)
	p.Add(sc)

	return p, nil
}

// Save writes p to path at Width×Height; the extension selects the format.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("chart: Save(%s): %w", path, err)
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
