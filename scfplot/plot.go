/*
 * plot.go, part of goscf.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * goSCF is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package scfplot draws convergence diagnostics for SCF runs.
package scfplot

import (
	"fmt"
	"math"

	scf "github.com/rmera/goscf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//values below this are flattened so a converged-to-machine-precision run
//doesn't blow the axis up with -Inf.
const logFloor = 1e-16

func log10Floor(v float64) float64 {
	v = math.Abs(v)
	if v < logFloor {
		v = logFloor
	}
	return math.Log10(v)
}

//ConvergencePlot plots log10 of the energy change and of the density RMS
//change against the iteration number, and saves it as plotname.png. The
//trace of a failed run plots just as well as a converged one, which is when
//one actually wants to look at it.
func ConvergencePlot(trace []scf.IterationRecord, title, plotname string) error {
	if trace == nil {
		panic("Given nil trace")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "log10 change"
	p.Add(plotter.NewGrid())

	ptsE := make(plotter.XYs, len(trace))
	ptsD := make(plotter.XYs, len(trace))
	for i, rec := range trace {
		ptsE[i].X = float64(rec.Iter)
		ptsE[i].Y = log10Floor(rec.EnergyDiff)
		ptsD[i].X = float64(rec.Iter)
		ptsD[i].Y = log10Floor(rec.DensityRMS)
	}
	lineE, scatE, err := plotter.NewLinePoints(ptsE)
	if err != nil {
		return err
	}
	lineD, scatD, err := plotter.NewLinePoints(ptsD)
	if err != nil {
		return err
	}
	lineD.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(lineE, scatE, lineD, scatD)
	p.Legend.Add("|dE|", lineE, scatE)
	p.Legend.Add("Drms", lineD, scatD)
	p.Legend.Top = true

	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
