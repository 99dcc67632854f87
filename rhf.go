/*
 * rhf.go, part of goscf.
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

//RHF is the closed-shell restricted reference. It is the empty-open-shell
//case of ROHF: with every Socc at zero the effective operator is just the
//spin-averaged MO-basis Fock matrix, with no override blocks.
type RHF struct{}

//NewRHF returns the restricted closed-shell reference.
func NewRHF() *RHF { return new(RHF) }

func (r *RHF) Name() string { return "RHF" }

func (r *RHF) Unrestricted() bool { return false }

func (r *RHF) FormFock(s *State) { formFock(s) }

func (r *RHF) FormEffective(s *State) {
	s.MoFa.Transform(s.Fa, s.Ca)
	s.MoFb.Transform(s.Fb, s.Ca)
	s.Feff.Copy(s.MoFa)
	s.Feff.Add(s.MoFb)
	s.Feff.Scale(0.5)
}

func (r *RHF) FormDensity(s *State) { formDensity(s) }
