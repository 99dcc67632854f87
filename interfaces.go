/*
 * interfaces.go, part of goscf.
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

//interfaces.go defines the boundaries of the library: what the integral and
//symmetry machinery must hand in, what a reference type must implement, and
//how diagnostics get out.

package scf

//System is everything the SCF engine consumes from the integral/basis-set
//and symmetry setup. All of it is computed once and immutable for the run.
type System struct {
	Dims       []int    //basis functions per irrep
	Labels     []string //irrep labels, e.g. Ag, B1u. Optional, only used for reporting.
	H          *Matrix  //core Hamiltonian
	Shalf      *Matrix  //overlap-derived symmetric orthogonalizer S^-1/2
	NuclearRep float64
	Nalpha     int //number of alpha electrons. Nalpha >= Nbeta.
	Nbeta      int
}

//Nbasis returns the total number of basis functions over all irreps.
func (S *System) Nbasis() int {
	n := 0
	for _, d := range S.Dims {
		n += d
	}
	return n
}

//JKBuilder is the two-electron contraction collaborator: anything able to
//turn the current densities into Coulomb and per-spin exchange matrices.
//Real calculations plug an integral engine here; TensorJK in this package
//contracts an explicit integral tensor for small systems and tests.
//Errors from a JKBuilder are propagated unchanged to the caller of the
//driver.
type JKBuilder interface {
	BuildJK(Da, Db, Ca, Cb *Matrix, nalphapi, nbetapi []int) (J, Ka, Kb *Matrix, err error)
}

//Reference is the strategy boundary between the iteration driver, written
//once, and the RHF/UHF/ROHF formulations. It has exactly three hooks: the
//Fock build, the effective-Fock assembly and the density assembly.
type Reference interface {
	//Name returns a short identifier for reporting, e.g. "ROHF".
	Name() string

	//Unrestricted reports whether the beta orbitals are optimized
	//independently from the alpha ones. When false, Cb and EpsilonB of the
	//state alias Ca and EpsilonA: a single owned orbital set referenced by
	//both spin accessors, so writes through either affect both.
	Unrestricted() bool

	//FormFock builds the working Fock matrices Fa, Fb of s from the core
	//Hamiltonian and the current two-electron matrices Ga, Gb.
	FormFock(s *State)

	//FormEffective builds the operator(s) whose diagonalization yields the
	//next orbitals: s.Feff, in the current MO basis, and also s.FeffB for an
	//unrestricted reference.
	FormEffective(s *State)

	//FormDensity rebuilds Da, Db and Dt of s from the current orbitals and
	//occupations.
	FormDensity(s *State)
}

//Observer receives diagnostics at well-defined points of the SCF lifecycle.
//It replaces ad hoc printing from inside the loop; the numerical state never
//depends on it. LogObserver is the ready-made implementation.
type Observer interface {
	GuessFormed(energy float64)
	IterationDone(rec IterationRecord)
	Finished(status Status, energy float64, iterations int)
}

//IterationRecord is one line of the convergence trace.
type IterationRecord struct {
	Iter       int
	Energy     float64
	EnergyDiff float64
	DensityRMS float64
	DIIS       bool //whether the Fock operator of this iteration was DIIS-extrapolated
}

//Status labels the stages of the driver's state machine.
type Status int

const (
	Init Status = iota
	Guess
	Iterating
	Converged
	Failed //iteration budget exhausted without convergence
)

func (s Status) String() string {
	switch s {
	case Init:
		return "INIT"
	case Guess:
		return "GUESS"
	case Iterating:
		return "ITERATING"
	case Converged:
		return "CONVERGED"
	case Failed:
		return "FAILED"
	}
	return "UNKNOWN"
}
