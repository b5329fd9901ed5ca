/*
 * plot.go, part of goxc.
 *
 * Copyright 2016 The goxc developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package xcplot draws quick comparison plots of the correlation variants:
the energy per particle along a density sweep, and the gradient correction
along a gradient sweep at fixed density. Meant for eyeballing
parameterizations, not for publication graphics.*/
package xcplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	xc "github.com/qcgo/goxc"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// one line color per variant, cycling if there are ever more variants
// than palette entries.
func lineColor(key int) color.RGBA {
	palette := []color.RGBA{
		{R: 200, A: 255},
		{B: 200, A: 255},
		{G: 150, A: 255},
		{R: 150, B: 150, A: 255},
	}
	return palette[key%len(palette)]
}

// addLine evaluates f over pts points in [min,max] and adds the curve to p
// under the given legend name.
func addLine(p *plot.Plot, f func(x float64) (float64, error), min, max float64, pts, key int, name string) error {
	if pts < 2 {
		return fmt.Errorf("xcplot: need at least 2 points per curve, got %d", pts)
	}
	xys := make(plotter.XYs, pts)
	step := (max - min) / float64(pts-1)
	for i := 0; i < pts; i++ {
		x := min + float64(i)*step
		y, err := f(x)
		if err != nil {
			return err
		}
		xys[i].X = x
		xys[i].Y = y
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	l.LineStyle.Color = lineColor(key)
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

/*RsPlot plots the correlation energy per particle of each variant against the
Wigner-Seitz radius rs, at fixed spin polarization zeta and fixed reduced
gradient invariant sigma. The plot is saved in png format; the extension is
appended to plotname. Returns an error or nil.*/
func RsPlot(variants []xc.Variant, zeta, sigma, rsMin, rsMax float64, pts int, title, plotname string) error {
	if len(variants) == 0 {
		return fmt.Errorf("xcplot: no variants given")
	}
	if rsMin <= 0 || rsMax <= rsMin {
		return fmt.Errorf("xcplot: need 0 < rsMin < rsMax, got %v, %v", rsMin, rsMax)
	}
	p := basicPlot(title, "rs (bohr)", "ec (hartree)")
	for key, v := range variants {
		F := xc.New(v)
		f := func(rs float64) (float64, error) {
			n := 3.0 / (4.0 * math.Pi * rs * rs * rs)
			na := 0.5 * n * (1.0 + zeta)
			nb := 0.5 * n * (1.0 - zeta)
			//split the invariant evenly among the spin blocks
			return F.Energy(na, nb, sigma/4.0, sigma/4.0, sigma/4.0)
		}
		if err := addLine(p, f, rsMin, rsMax, pts, key, v.String()); err != nil {
			return err
		}
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

/*GradientPlot plots the gradient correction of each variant, that is
ec(sigma) - ec(0), against sigma, for a closed-shell density of the given
total value. The plot is saved in png format; the extension is appended to
plotname. Returns an error or nil.*/
func GradientPlot(variants []xc.Variant, rho, sigmaMax float64, pts int, title, plotname string) error {
	if len(variants) == 0 {
		return fmt.Errorf("xcplot: no variants given")
	}
	if rho <= 0 || sigmaMax <= 0 {
		return fmt.Errorf("xcplot: need positive density and gradient range")
	}
	p := basicPlot(title, "sigma (a.u.)", "H (hartree)")
	for key, v := range variants {
		F := xc.New(v)
		base, err := F.Energy(rho/2.0, rho/2.0, 0, 0, 0)
		if err != nil {
			return err
		}
		f := func(sigma float64) (float64, error) {
			e, err := F.Energy(rho/2.0, rho/2.0, sigma/4.0, sigma/4.0, sigma/4.0)
			return e - base, err
		}
		if err := addLine(p, f, 0, sigmaMax, pts, key, v.String()); err != nil {
			return err
		}
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
