/*
 * tei.go, part of goscf.
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

import "fmt"

//TensorJK is a reference two-electron collaborator: it contracts an explicit
//four-index integral tensor (ij|kl), in chemists' notation, into Coulomb and
//exchange matrices. The quartic-scaling contraction and the quartic-scaling
//memory make it only sensible for small systems and tests; real calculations
//plug an integral engine implementing JKBuilder instead. It only handles a
//single symmetry block (C1), since the plain tensor carries no irrep
//structure.
type TensorJK struct {
	eri [][][][]float64
}

//NewTensorJK returns a TensorJK over the given integral tensor, which must
//be an nbasis^4 hypercube.
func NewTensorJK(eri [][][][]float64) (*TensorJK, error) {
	n := len(eri)
	for _, a := range eri {
		if len(a) != n {
			return nil, CError{"Integral tensor is not a hypercube", []string{"NewTensorJK"}, true}
		}
		for _, b := range a {
			if len(b) != n {
				return nil, CError{"Integral tensor is not a hypercube", []string{"NewTensorJK"}, true}
			}
			for _, c := range b {
				if len(c) != n {
					return nil, CError{"Integral tensor is not a hypercube", []string{"NewTensorJK"}, true}
				}
			}
		}
	}
	return &TensorJK{eri: eri}, nil
}

//BuildJK contracts the tensor with the current densities:
//  J[i][j]  = sum over kl of (Da+Db)[k][l]*(ij|kl)
//  Ks[i][j] = sum over kl of Ds[k][l]*(il|kj)   for each spin s
//The orbital coefficients and occupation counts of the JKBuilder interface
//are not needed by a tensor contraction.
func (T *TensorJK) BuildJK(Da, Db, Ca, Cb *Matrix, nalphapi, nbetapi []int) (*Matrix, *Matrix, *Matrix, error) {
	if Da.Nirreps() != 1 {
		return nil, nil, nil, CError{fmt.Sprintf("TensorJK handles a single irrep, got %d", Da.Nirreps()), []string{"BuildJK"}, true}
	}
	n := len(T.eri)
	if Da.BlockDim(0) != n {
		return nil, nil, nil, CError{fmt.Sprintf("Density has %d basis functions, tensor has %d", Da.BlockDim(0), n), []string{"BuildJK"}, true}
	}
	dims := Da.Dims()
	J := NewMatrix(dims)
	Ka := NewMatrix(dims)
	Kb := NewMatrix(dims)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var vj, vka, vkb float64
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					vj += (Da.At(0, k, l) + Db.At(0, k, l)) * T.eri[i][j][k][l]
					vka += Da.At(0, k, l) * T.eri[i][l][k][j]
					vkb += Db.At(0, k, l) * T.eri[i][l][k][j]
				}
			}
			J.Set(0, i, j, vj)
			Ka.Set(0, i, j, vka)
			Kb.Set(0, i, j, vkb)
		}
	}
	return J, Ka, Kb, nil
}
