/*
 * convergence.go, part of goscf.
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

package scf

import "math"

//Monitor tracks the change in energy and total density between consecutive
//iterations against the two convergence thresholds. Both criteria are
//required: the SCF is converged only when |dE| < eThreshold AND the RMS of
//the density change < dThreshold.
type Monitor struct {
	eThreshold float64
	dThreshold float64
	ediff      float64
	drms       float64
	scratch    *Matrix
}

//NewMonitor returns a Monitor with the given (positive) thresholds.
func NewMonitor(eThreshold, dThreshold float64) *Monitor {
	return &Monitor{eThreshold: eThreshold, dThreshold: dThreshold}
}

//Update records the energy difference and density RMS change of the current
//iteration. It has no side effects beyond storing the two scalars.
func (M *Monitor) Update(energy, oldEnergy float64, density, oldDensity *Matrix) {
	M.ediff = energy - oldEnergy
	if M.scratch == nil {
		M.scratch = NewMatrix(density.Dims())
	}
	M.scratch.Copy(density)
	M.scratch.Sub(oldDensity)
	M.drms = M.scratch.RMS()
}

//Converged reports whether both convergence criteria held at the last
//Update.
func (M *Monitor) Converged() bool {
	return math.Abs(M.ediff) < M.eThreshold && M.drms < M.dThreshold
}

//EnergyDiff returns the energy change recorded by the last Update.
func (M *Monitor) EnergyDiff() float64 { return M.ediff }

//DensityRMS returns the density RMS change recorded by the last Update.
func (M *Monitor) DensityRMS() float64 { return M.drms }
