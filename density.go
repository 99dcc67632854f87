/*
 * density.go, part of goscf.
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

//formSpinDensity overwrites D, block-wise, with the density of the nocc[h]
//lowest orbitals of C:
//  D[h][i][j] = sum over m<nocc[h] of C[h][i][m]*C[h][j][m]
//It is a pure function of valid inputs; nocc exceeding a block dimension is
//a programming error and panics.
func formSpinDensity(D, C *Matrix, nocc []int) {
	sameShape(D, C)
	for h := 0; h < D.Nirreps(); h++ {
		d := D.BlockDim(h)
		if d == 0 {
			continue
		}
		if nocc[h] > d {
			panic(ErrShape)
		}
		db := D.Block(h)
		cb := C.Block(h)
		for i := 0; i < d; i++ {
			for j := 0; j < d; j++ {
				val := 0.0
				for m := 0; m < nocc[h]; m++ {
					val += cb.At(i, m) * cb.At(j, m)
				}
				db.Set(i, j, val)
			}
		}
	}
}

//formDensity rebuilds the alpha, beta and total densities of s from the
//current orbitals and per-spin occupied counts. It covers all three
//reference types: for the restricted ones Ca and Cb are the same matrix and
//Nalphapi[h] = Docc[h]+Socc[h], Nbetapi[h] = Docc[h], which reduces to the
//ROHF expressions
//  Db[h][i][j] = sum over m<docc[h] of C[h][i][m]*C[h][j][m]
//  Da[h][i][j] = Db[h][i][j] + sum over docc[h]<=m<docc[h]+socc[h] of the same
func formDensity(s *State) {
	formSpinDensity(s.Da, s.Ca, s.Nalphapi)
	formSpinDensity(s.Db, s.Cb, s.Nbetapi)
	s.Dt.Copy(s.Da)
	s.Dt.Add(s.Db)
}
