/*
 * convergence_test.go, part of goscf.
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
 *
 */

package scf

import "testing"

//TestConvergenceBoundaries walks the four quadrants of the two convergence
//criteria, plus both thresholds at exact equality (strict comparison, so
//equality is NOT converged) and just inside.
func TestConvergenceBoundaries(Te *testing.T) {
	const eThr, dThr = 1e-8, 1e-6
	dims := []int{1}
	density := func(v float64) *Matrix {
		D := NewMatrix(dims)
		D.Set(0, 0, 0, v)
		return D
	}
	zero := density(0)
	cases := []struct {
		name string
		dE   float64
		drms float64
		want bool
	}{
		{"both well inside", eThr / 10, dThr / 10, true},
		{"energy fails", eThr * 10, dThr / 10, false},
		{"density fails", eThr / 10, dThr * 10, false},
		{"both fail", eThr * 10, dThr * 10, false},
		{"energy at threshold", eThr, dThr / 10, false},
		{"density at threshold", eThr / 10, dThr, false},
		{"both just inside", eThr * (1 - 1e-12), dThr * (1 - 1e-12), true},
		{"negative energy diff inside", -eThr / 10, dThr / 10, true},
		{"negative energy diff outside", -eThr * 10, dThr / 10, false},
	}
	for _, c := range cases {
		M := NewMonitor(eThr, dThr)
		M.Update(c.dE, 0, density(c.drms), zero)
		if M.Converged() != c.want {
			Te.Errorf("%s: converged()==%v, want %v", c.name, M.Converged(), c.want)
		}
	}
}

//TestMonitorScalars checks that Update just stores the two scalars.
func TestMonitorScalars(Te *testing.T) {
	dims := []int{2}
	Dold := NewMatrix(dims)
	D := NewMatrix(dims)
	D.Set(0, 0, 0, 2)
	M := NewMonitor(1e-8, 1e-6)
	M.Update(-75.5, -75.0, D, Dold)
	if M.EnergyDiff() != -0.5 {
		Te.Errorf("wrong energy diff %v", M.EnergyDiff())
	}
	//RMS of (2,0,0,0)
	if M.DensityRMS() != 1.0 {
		Te.Errorf("wrong density RMS %v", M.DensityRMS())
	}
}
