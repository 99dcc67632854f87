/*
 * density_test.go, part of goscf.
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

import (
	"math"
	"testing"
)

//orthonormalTestOrbitals builds an orthonormal coefficient matrix over two
//irreps, one of them rotated so the densities exercise off-diagonal
//elements.
func orthonormalTestOrbitals() *Matrix {
	C := NewMatrix([]int{2, 3})
	s, c := math.Sin(0.3), math.Cos(0.3)
	C.Set(0, 0, 0, c)
	C.Set(0, 1, 0, s)
	C.Set(0, 0, 1, -s)
	C.Set(0, 1, 1, c)
	for i := 0; i < 3; i++ {
		C.Set(1, i, i, 1)
	}
	return C
}

//TestDensitySymmetry: the density matrices are symmetric in the exchanged
//basis indices for any valid occupation.
func TestDensitySymmetry(Te *testing.T) {
	s := newState(&System{Dims: []int{2, 3}, H: NewMatrix([]int{2, 3}), Shalf: NewMatrix([]int{2, 3})}, false)
	s.Ca.Copy(orthonormalTestOrbitals())
	s.setRestrictedOccupations([]int{1, 1}, []int{1, 1})
	formDensity(s)
	for _, D := range []*Matrix{s.Da, s.Db, s.Dt} {
		for h := 0; h < D.Nirreps(); h++ {
			for i := 0; i < D.BlockDim(h); i++ {
				for j := 0; j < i; j++ {
					if math.Abs(D.At(h, i, j)-D.At(h, j, i)) > 1e-14 {
						Te.Errorf("density block %d not symmetric at %d,%d", h, i, j)
					}
				}
			}
		}
	}
}

//TestDensityTrace: with orthonormal orbitals the trace of Db per block is
//docc[h] and that of Da is docc[h]+socc[h].
func TestDensityTrace(Te *testing.T) {
	s := newState(&System{Dims: []int{2, 3}, H: NewMatrix([]int{2, 3}), Shalf: NewMatrix([]int{2, 3})}, false)
	s.Ca.Copy(orthonormalTestOrbitals())
	docc := []int{1, 2}
	socc := []int{1, 0}
	s.setRestrictedOccupations(docc, socc)
	formDensity(s)
	for h := 0; h < 2; h++ {
		if math.Abs(s.Db.Trace(h)-float64(docc[h])) > 1e-12 {
			Te.Errorf("trace of Db block %d is %v, want %d", h, s.Db.Trace(h), docc[h])
		}
		if math.Abs(s.Da.Trace(h)-float64(docc[h]+socc[h])) > 1e-12 {
			Te.Errorf("trace of Da block %d is %v, want %d", h, s.Da.Trace(h), docc[h]+socc[h])
		}
	}
	//Dt = Da + Db
	diff := s.Dt.Clone()
	diff.Sub(s.Da)
	diff.Sub(s.Db)
	if diff.RMS() > 1e-15 {
		Te.Error("Dt is not Da+Db")
	}
}
