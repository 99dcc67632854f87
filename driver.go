/*
 * driver.go, part of goscf.
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

//driver.go runs the SCF state machine: INIT -> GUESS -> ITERATING ->
//CONVERGED or FAILED. The loop body is the textbook sequence: two-electron
//build, Fock and effective Fock, energy, DIIS, diagonalization, new
//orbitals, occupations, densities, convergence test.

package scf

import (
	"fmt"
	"sync/atomic"

	"github.com/rmera/goscf/diis"
)

//Driver owns one SCF run: a system, a reference type, a two-electron
//collaborator and the options. A single logical thread drives the iteration;
//the only thing another goroutine may do with a running Driver is call Stop.
type Driver struct {
	sys       *System
	ref       Reference
	jk        JKBuilder
	opts      *Options
	obs       Observer
	diisStore diis.Store
	stop      atomic.Bool
	status    Status
}

//NewDriver validates the configuration against the system and returns a
//Driver ready to Run. All configuration problems surface here, before any
//iteration. Nil collaborators are a programming error and panic.
func NewDriver(sys *System, ref Reference, jk JKBuilder, opts *Options) (*Driver, error) {
	if sys == nil || ref == nil || jk == nil {
		panic(ErrNilCollaborator)
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(sys); err != nil {
		return nil, errDecorate(err, "NewDriver")
	}
	D := &Driver{sys: sys, ref: ref, jk: jk, opts: opts, status: Init}
	D.obs = NewLogObserver(nil, opts.Print, ref.Name())
	return D, nil
}

//SetObserver replaces the default logging observer. A nil observer silences
//the run completely.
func (D *Driver) SetObserver(o Observer) {
	if o == nil {
		o = silentObserver{}
	}
	D.obs = o
}

//SetDIISStore injects a history store for the DIIS accelerator, e.g. a
//diis.DiskStore for problems too large to keep the history in memory. Only
//effective before Run.
func (D *Driver) SetDIISStore(s diis.Store) { D.diisStore = s }

//Stop asks a running driver to give up. The flag is checked once per
//iteration, at the loop header: the current loop body always completes, and
//the run then finishes as FAILED with the best available state. Run clears
//the flag on entry, so a stopped driver can be Run again, restarting from
//the guess.
func (D *Driver) Stop() { D.stop.Store(true) }

//Status returns the stage the driver is in.
func (D *Driver) Status() Status { return D.status }

//assignOccupations fills the occupation counters of s from the current
//orbital energies; or from the explicit override, which bypasses the
//energy-based selection entirely.
func (D *Driver) assignOccupations(s *State) error {
	if D.opts.Docc != nil {
		s.setRestrictedOccupations(D.opts.Docc, D.opts.Socc)
		return nil
	}
	if D.ref.Unrestricted() {
		napi, err := findOccupation(s.EpsilonA, D.sys.Nalpha)
		if err != nil {
			return errDecorate(err, "assignOccupations")
		}
		nbpi, err := findOccupation(s.EpsilonB, D.sys.Nbeta)
		if err != nil {
			return errDecorate(err, "assignOccupations")
		}
		s.setUnrestrictedOccupations(napi, nbpi)
		return nil
	}
	docc, socc, err := findOccupations(s.EpsilonA, D.sys.Nbeta, D.sys.Nalpha-D.sys.Nbeta)
	if err != nil {
		return errDecorate(err, "assignOccupations")
	}
	s.setRestrictedOccupations(docc, socc)
	return nil
}

//formInitialOrbitals diagonalizes the orthogonalized core Hamiltonian and
//composes the first coefficient matrix, C = Shalf * evecs. Both spin
//channels start from the same core guess.
func (D *Driver) formInitialOrbitals(s *State, evecs, temp *Matrix) error {
	temp.Transform(s.H, s.Shalf)
	if err := temp.Diagonalize(evecs, s.EpsilonA); err != nil {
		return errDecorate(err, "formInitialOrbitals")
	}
	s.Ca.Compose(s.Shalf, evecs)
	if D.ref.Unrestricted() {
		s.EpsilonB.Copy(s.EpsilonA)
		s.Cb.Copy(s.Ca)
	}
	return nil
}

//Run executes the SCF procedure to convergence or failure. The returned
//Wavefunction is valid in both cases; on failure the accompanying error is
//non-critical and the wavefunction carries the best (non-converged) state.
//Collaborator failures are returned unchanged, with no wavefunction.
func (D *Driver) Run() (*Wavefunction, error) {
	D.stop.Store(false)
	D.status = Init
	dims := D.sys.Dims
	s := newState(D.sys, D.ref.Unrestricted())
	monitor := NewMonitor(D.opts.EConvergence, D.opts.DConvergence)
	var accel *diis.Accelerator
	if D.opts.DIIS {
		accel = diis.New(D.opts.DIISVectors, D.diisStore)
		if D.opts.DIISEviction == "largest-error" {
			accel.SetPolicy(diis.LargestError)
		}
	}
	evecs := NewMatrix(dims)
	temp := NewMatrix(dims)
	resid := NewMatrix(dims)
	vecsize := s.Feff.Size()
	if D.ref.Unrestricted() {
		vecsize *= 2
	}
	trial := make([]float64, 0, vecsize)
	errv := make([]float64, 0, vecsize)

	//GUESS
	D.status = Guess
	if err := D.formInitialOrbitals(s, evecs, temp); err != nil {
		return nil, err
	}
	if err := D.assignOccupations(s); err != nil {
		return nil, err
	}
	D.ref.FormDensity(s)
	s.Fa.Copy(s.H)
	s.Fb.Copy(s.H)
	s.E = s.computeEnergy()
	D.obs.GuessFormed(s.E)

	//ITERATING
	D.status = Iterating
	var trace []IterationRecord
	stopped := false
	for iter := 1; iter <= D.opts.MaxIterations; iter++ {
		if D.stop.Load() {
			stopped = true
			break
		}
		s.saveDensityAndEnergy()
		J, Ka, Kb, err := D.jk.BuildJK(s.Da, s.Db, s.Ca, s.Cb, s.Nalphapi, s.Nbetapi)
		if err != nil {
			return nil, err //collaborator failures propagate unchanged
		}
		formG(s, J, Ka, Kb)
		D.ref.FormFock(s)
		D.ref.FormEffective(s)
		s.E = s.computeEnergy()

		extrapolated := false
		if accel != nil {
			trial = s.Feff.Flatten(trial[:0])
			resid.Copy(s.Feff)
			resid.ZeroDiag()
			errv = resid.Flatten(errv[:0])
			if D.ref.Unrestricted() {
				trial = s.FeffB.Flatten(trial)
				resid.Copy(s.FeffB)
				resid.ZeroDiag()
				errv = resid.Flatten(errv)
			}
			if err := accel.Record(trial, errv); err != nil {
				return nil, errDecorate(err, "Run")
			}
			if iter >= D.opts.DIISStart {
				ok, err := accel.Extrapolate(trial)
				if err != nil {
					return nil, errDecorate(err, "Run")
				}
				if ok {
					n := s.Feff.Size()
					s.Feff.SetFlat(trial[:n])
					if D.ref.Unrestricted() {
						s.FeffB.SetFlat(trial[n:])
					}
					extrapolated = true
				}
			}
		}

		if err := s.Feff.Diagonalize(evecs, s.EpsilonA); err != nil {
			return nil, err
		}
		s.Ca.Compose(s.Ca, evecs)
		if D.ref.Unrestricted() {
			if err := s.FeffB.Diagonalize(evecs, s.EpsilonB); err != nil {
				return nil, err
			}
			s.Cb.Compose(s.Cb, evecs)
		}
		if err := D.assignOccupations(s); err != nil {
			return nil, err
		}
		D.ref.FormDensity(s)
		monitor.Update(s.E, s.Eold, s.Dt, s.DtOld)
		rec := IterationRecord{
			Iter:       iter,
			Energy:     s.E,
			EnergyDiff: monitor.EnergyDiff(),
			DensityRMS: monitor.DensityRMS(),
			DIIS:       extrapolated,
		}
		trace = append(trace, rec)
		D.obs.IterationDone(rec)
		if monitor.Converged() {
			D.status = Converged
			break
		}
	}
	if D.status != Converged {
		D.status = Failed
	}
	wf := newWavefunction(D, s, trace)
	D.obs.Finished(D.status, s.E, len(trace))
	if D.status == Failed {
		msg := fmt.Sprintf("SCF did not converge in %d iterations", len(trace))
		if stopped {
			msg = fmt.Sprintf("SCF stopped by the caller after %d iterations", len(trace))
		}
		return wf, CError{msg, []string{"Run"}, false}
	}
	return wf, nil
}

//Wavefunction is what an SCF run leaves behind for its consumers (gradients,
//properties, reports): converged orbitals and energies plus the final
//operator and densities. Everything in it is copied out of the run's state;
//for restricted references Cb and EpsilonB still alias Ca and EpsilonA.
type Wavefunction struct {
	Reference  string
	Status     Status
	Energy     float64
	Iterations int
	Ca, Cb     *Matrix
	EpsilonA   *Vector
	EpsilonB   *Vector
	Docc, Socc []int
	Feff       *Matrix
	Da, Db, Dt *Matrix
	Trace      []IterationRecord
	Labels     []string
	Dims       []int
}

func newWavefunction(D *Driver, s *State, trace []IterationRecord) *Wavefunction {
	wf := new(Wavefunction)
	wf.Reference = D.ref.Name()
	wf.Status = D.status
	wf.Energy = s.E
	wf.Iterations = len(trace)
	wf.Ca = s.Ca.Clone()
	wf.EpsilonA = s.EpsilonA.Clone()
	if D.ref.Unrestricted() {
		wf.Cb = s.Cb.Clone()
		wf.EpsilonB = s.EpsilonB.Clone()
	} else {
		wf.Cb = wf.Ca
		wf.EpsilonB = wf.EpsilonA
	}
	wf.Docc = append([]int{}, s.Docc...)
	wf.Socc = append([]int{}, s.Socc...)
	wf.Feff = s.Feff.Clone()
	wf.Da = s.Da.Clone()
	wf.Db = s.Db.Clone()
	wf.Dt = s.Dt.Clone()
	wf.Trace = trace
	wf.Labels = append([]string{}, D.sys.Labels...)
	wf.Dims = append([]int{}, D.sys.Dims...)
	return wf
}
