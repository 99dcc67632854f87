/*
 * fock.go, part of goscf.
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

//fock.go assembles the working and effective Fock operators.

package scf

//formG turns the Coulomb and exchange matrices from the JK collaborator into
//the two-electron contributions of each spin channel:
//  Ga = J - Ka,  Gb = J - Kb
//The same matrices a UHF build uses; the ROHF coupling happens later, in the
//effective operator.
func formG(s *State, J, Ka, Kb *Matrix) {
	s.Ga.Copy(J)
	s.Gb.Copy(J)
	s.Ga.Sub(Ka)
	s.Gb.Sub(Kb)
}

//formFock builds the standard (UHF-like) working Fock matrices:
//  Fa = H + Ga,  Fb = H + Gb
func formFock(s *State) {
	s.Fa.Copy(s.H)
	s.Fa.Add(s.Ga)
	s.Fb.Copy(s.H)
	s.Fb.Add(s.Gb)
}

//formEffectiveROHF stitches the single diagonalizable ROHF operator together
//from the MO-basis alpha and beta Fock matrices of s, which it also
//recomputes from the current orbitals. With
//  Fo = open-shell Fock = 0.5*Fa,  Fc = closed-shell Fock = 0.5*(Fa+Fb)
//so that 2(Fc-Fo) = Fb and 2Fo = Fa, the effective operator is
//           |  closed     open    virtual
//   ---------------------------------------
//   closed  |    Fc     2(Fc-Fo)    Fc
//   open    | 2(Fc-Fo)     Fc      2Fo
//   virtual |    Fc       2Fo       Fc
//Its eigenvectors satisfy Roothaan's open-shell coupling conditions, and
//with no singly occupied orbitals no off-block value is overridden, so the
//closed-shell case degenerates to plain Fc.
func formEffectiveROHF(s *State) {
	s.MoFa.Transform(s.Fa, s.Ca)
	s.MoFb.Transform(s.Fb, s.Ca)
	s.Feff.Copy(s.MoFa)
	s.Feff.Add(s.MoFb)
	s.Feff.Scale(0.5)
	for h := 0; h < s.Feff.Nirreps(); h++ {
		d := s.Feff.BlockDim(h)
		if d == 0 {
			continue
		}
		docc, socc := s.Docc[h], s.Socc[h]
		if docc+socc > d {
			panic(ErrShape)
		}
		for i := docc; i < docc+socc; i++ {
			//the open/closed portion
			for j := 0; j < docc; j++ {
				val := s.MoFb.At(h, i, j)
				s.Feff.Set(h, i, j, val)
				s.Feff.Set(h, j, i, val)
			}
			//the open/virtual portion
			for j := docc + socc; j < d; j++ {
				val := s.MoFa.At(h, i, j)
				s.Feff.Set(h, i, j, val)
				s.Feff.Set(h, j, i, val)
			}
		}
	}
}
