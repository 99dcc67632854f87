/*
 * rohf.go, part of goscf.
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

//ROHF is the restricted-open-shell reference: one orbital set shared by both
//spin channels, with the open-shell coupling folded into a single effective
//operator.
type ROHF struct{}

//NewROHF returns the restricted-open-shell reference.
func NewROHF() *ROHF { return new(ROHF) }

func (r *ROHF) Name() string { return "ROHF" }

func (r *ROHF) Unrestricted() bool { return false }

func (r *ROHF) FormFock(s *State) { formFock(s) }

func (r *ROHF) FormEffective(s *State) { formEffectiveROHF(s) }

func (r *ROHF) FormDensity(s *State) { formDensity(s) }
