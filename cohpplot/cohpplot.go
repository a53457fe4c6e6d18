/*
 * cohpplot.go, part of golobster
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package cohpplot draws COHP/COOP curves read with golobster, using gonum/plot.
// Following the usual LOBSTER convention, energies go in the Y axis and populations
// in the X axis.
package cohpplot

import (
	"fmt"
	"image/color"
	"math"

	lobster "github.com/rmera/golobster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Options for the plots.
type Options struct {
	Title      string
	Integrated bool //plot the integrated curves instead of the COHPs.
	//Negate the populations, so bonding COHPs go to the right.
	Negate bool
	//Energy range (Y axis). If EMin >= EMax, the whole range is drawn.
	EMin, EMax float64
	Width      vg.Length //default 5 inches
	Height     vg.Length //default 5 inches
}

// DefaultOptions returns the default options for C. COHPs are negated,
// COOPs are not.
func DefaultOptions(C lobster.Populations) *Options {
	o := &Options{Width: 5 * vg.Inch, Height: 5 * vg.Inch}
	o.Negate = !C.AreCoops()
	if C.AreCoops() {
		o.Title = "COOP"
	} else {
		o.Title = "-COHP"
	}
	return o
}

// XYs returns the points for a curve, with the values in the X axis and the energies
// in the Y axis. If negate is true the values are multiplied by -1.
func XYs(energies, values []float64, negate bool) (plotter.XYs, error) {
	if len(energies) != len(values) {
		return nil, fmt.Errorf("cohpplot.XYs: %d energies but %d values", len(energies), len(values))
	}
	sign := 1.0
	if negate {
		sign = -1.0
	}
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = sign * v
		pts[i].Y = energies[i]
	}
	return pts, nil
}

// Plot returns a plot with one line per bond in labels (which can include
// lobster.AverageLabel) and spin. Spin down lines are dashed.
func Plot(C lobster.Populations, labels []string, o *Options) (*plot.Plot, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("cohpplot.Plot: no bonds given")
	}
	if o == nil {
		o = DefaultOptions(C)
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = o.Title
	p.X.Label.Text = xLabel(C.AreCoops(), o)
	p.Y.Label.Text = "E - Ef (eV)"
	p.Add(plotter.NewGrid())
	energies := C.Energies()
	polarized := len(C.Spins()) > 1
	for i, label := range labels {
		for _, spin := range C.Spins() {
			values, err := C.Curve(label, spin, o.Integrated)
			if err != nil {
				return nil, fmt.Errorf("cohpplot.Plot: %w", err)
			}
			pts, err := XYs(energies, values, o.Negate)
			if err != nil {
				return nil, err
			}
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, fmt.Errorf("cohpplot.Plot: %w", err)
			}
			l.LineStyle.Color = plotutil.Color(i)
			l.LineStyle.Width = vg.Points(1)
			name := label
			if spin == lobster.SpinDown {
				l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			}
			if polarized {
				name = fmt.Sprintf("%s (%s)", label, spin)
			}
			p.Add(l)
			p.Legend.Add(name, l)
		}
	}
	//The Fermi level.
	if ef, err := fermiLine(C.Efermi(), p); err == nil {
		p.Add(ef)
	}
	//Adding plotters changes the axes ranges, so this goes last.
	if o.EMin < o.EMax {
		p.Y.Min = o.EMin
		p.Y.Max = o.EMax
	}
	return p, nil
}

// Save plots the bonds in labels (see Plot) and saves the plot to filename. The
// format is taken from the extension (png, svg, pdf, etc.).
func Save(C lobster.Populations, labels []string, o *Options, filename string) error {
	if o == nil {
		o = DefaultOptions(C)
	}
	p, err := Plot(C, labels, o)
	if err != nil {
		return err
	}
	w, h := o.Width, o.Height
	if w <= 0 {
		w = 5 * vg.Inch
	}
	if h <= 0 {
		h = 5 * vg.Inch
	}
	//here I  intentionally shadow err.
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("cohpplot.Save: %w", err)
	}
	return nil
}

func xLabel(coops bool, o *Options) string {
	name := "COHP"
	if coops {
		name = "COOP"
	}
	if o.Integrated {
		name = "I" + name
	}
	if o.Negate {
		name = "-" + name
	}
	return name
}

// fermiLine returns a horizontal gray line at the Fermi energy, spanning the
// current X range of p.
func fermiLine(ef float64, p *plot.Plot) (*plotter.Line, error) {
	xmin, xmax := p.X.Min, p.X.Max
	if math.IsInf(xmin, 0) || math.IsInf(xmax, 0) || xmin >= xmax {
		return nil, fmt.Errorf("no X range")
	}
	l, err := plotter.NewLine(plotter.XYs{{X: xmin, Y: ef}, {X: xmax, Y: ef}})
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = color.Gray{Y: 128}
	return l, nil
}
