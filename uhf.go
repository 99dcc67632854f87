/*
 * uhf.go, part of goscf.
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

//UHF is the unrestricted reference: independent alpha and beta orbital sets,
//each relaxed against its own Fock operator. There is no open-shell
//stitching; the "effective" operators are simply Fa and Fb in their own MO
//bases.
type UHF struct{}

//NewUHF returns the unrestricted reference.
func NewUHF() *UHF { return new(UHF) }

func (u *UHF) Name() string { return "UHF" }

func (u *UHF) Unrestricted() bool { return true }

func (u *UHF) FormFock(s *State) { formFock(s) }

func (u *UHF) FormEffective(s *State) {
	s.MoFa.Transform(s.Fa, s.Ca)
	s.MoFb.Transform(s.Fb, s.Cb)
	s.Feff.Copy(s.MoFa)
	s.FeffB.Copy(s.MoFb)
}

func (u *UHF) FormDensity(s *State) { formDensity(s) }
