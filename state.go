/*
 * state.go, part of goscf.
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

//State is the complete mutable state of one SCF run. Everything is allocated
//once, at INIT, for the irrep structure of the system, and overwritten in
//place each iteration. Reference implementations receive it through the
//three strategy hooks; it is destroyed when the driver finishes and the
//results are copied out into a Wavefunction.
type State struct {
	//Immutable per run.
	H     *Matrix
	Shalf *Matrix

	//Working and MO-basis Fock matrices.
	Fa, Fb     *Matrix
	MoFa, MoFb *Matrix
	//Effective Fock operator(s), in the current MO basis. FeffB is only
	//distinct from nil for an unrestricted reference.
	Feff, FeffB *Matrix

	//Orbitals and orbital energies. For restricted references Cb and
	//EpsilonB alias Ca and EpsilonA: one owned orbital set, two accessors;
	//writes through either are seen by both.
	Ca, Cb             *Matrix
	EpsilonA, EpsilonB *Vector

	//Densities. Dt = Da + Db; DtOld holds last iteration's Dt for the
	//convergence test.
	Da, Db, Dt, DtOld *Matrix

	//Two-electron matrices from the JK collaborator.
	Ga, Gb *Matrix

	//Occupations. Docc/Socc are the closed/open counts per irrep; Nalphapi
	//and Nbetapi the per-irrep, per-spin occupied counts derived from them
	//(and independent for an unrestricted reference).
	Docc, Socc        []int
	Nalphapi, Nbetapi []int

	//Energies.
	E, Eold    float64
	NuclearRep float64
}

//newState allocates a State for the given system and reference type.
func newState(sys *System, unrestricted bool) *State {
	s := new(State)
	dims := sys.Dims
	s.H = sys.H.Clone()
	s.Shalf = sys.Shalf.Clone()
	s.Fa = NewMatrix(dims)
	s.Fb = NewMatrix(dims)
	s.MoFa = NewMatrix(dims)
	s.MoFb = NewMatrix(dims)
	s.Feff = NewMatrix(dims)
	s.Ca = NewMatrix(dims)
	s.EpsilonA = NewVector(dims)
	if unrestricted {
		s.FeffB = NewMatrix(dims)
		s.Cb = NewMatrix(dims)
		s.EpsilonB = NewVector(dims)
	} else {
		s.Cb = s.Ca
		s.EpsilonB = s.EpsilonA
	}
	s.Da = NewMatrix(dims)
	s.Db = NewMatrix(dims)
	s.Dt = NewMatrix(dims)
	s.DtOld = NewMatrix(dims)
	s.Ga = NewMatrix(dims)
	s.Gb = NewMatrix(dims)
	s.Docc = make([]int, len(dims))
	s.Socc = make([]int, len(dims))
	s.Nalphapi = make([]int, len(dims))
	s.Nbetapi = make([]int, len(dims))
	s.NuclearRep = sys.NuclearRep
	return s
}

//setRestrictedOccupations derives the per-spin occupied counts from
//docc/socc for references sharing one orbital set.
func (s *State) setRestrictedOccupations(docc, socc []int) {
	copy(s.Docc, docc)
	copy(s.Socc, socc)
	for h := range docc {
		s.Nbetapi[h] = docc[h]
		s.Nalphapi[h] = docc[h] + socc[h]
	}
}

//setUnrestrictedOccupations derives docc/socc bookkeeping from independent
//per-spin counts.
func (s *State) setUnrestrictedOccupations(napi, nbpi []int) {
	copy(s.Nalphapi, napi)
	copy(s.Nbetapi, nbpi)
	for h := range napi {
		d := napi[h]
		if nbpi[h] < d {
			d = nbpi[h]
		}
		s.Docc[h] = d
		s.Socc[h] = napi[h] + nbpi[h] - 2*d
	}
}

//saveDensityAndEnergy stores the current total density and energy for the
//convergence test of the upcoming iteration.
func (s *State) saveDensityAndEnergy() {
	s.DtOld.Copy(s.Dt)
	s.Eold = s.E
}

//computeEnergy returns the total SCF energy for the current densities and
//working Fock matrices:
//  E = Enuc + 0.5*(Da.H + Db.H + Da.Fa + Db.Fb)
func (s *State) computeEnergy() float64 {
	dh := s.Da.Dot(s.H) + s.Db.Dot(s.H)
	dfa := s.Da.Dot(s.Fa)
	dfb := s.Db.Dot(s.Fb)
	return s.NuclearRep + 0.5*(dh+dfa+dfb)
}
