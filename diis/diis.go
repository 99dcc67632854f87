/*
 * diis.go, part of goscf.
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

/*Package diis accelerates fixed-point iterations by direct inversion of the
iterative subspace (Pulay's method): it keeps a bounded history of
(trial vector, error vector) pairs and replaces the current trial vector by
the linear combination of recorded ones whose combined error vector has
minimal norm, subject to the coefficients summing to one.

The package is deliberately ignorant of what the vectors mean; the SCF
driver hands it flattened effective Fock matrices in an orthonormal basis
with their orbital-rotation residuals as errors, but any fixed-point
iteration can use it. The history lives behind the Store interface, in
memory by default, compressed on disk for problems too large to keep six to
ten Fock matrices around.*/
package diis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Policy selects which history entry to evict once the capacity is exceeded.
type Policy int

const (
	//FIFO evicts the oldest entry. The default.
	FIFO Policy = iota
	//LargestError evicts the entry with the largest error norm.
	LargestError
)

//Entry is one recorded (trial, error) pair.
type Entry struct {
	Trial []float64
	Error []float64
}

//Accelerator maintains the DIIS history and produces extrapolated trial
//vectors. Not safe for concurrent use; the SCF loop is single-threaded.
type Accelerator struct {
	store    Store
	capacity int
	policy   Policy
	size     int //vector length, fixed by the first Record
}

//New returns an Accelerator holding at most capacity pairs in store. A nil
//store means an in-memory history.
func New(capacity int, store Store) *Accelerator {
	if capacity < 1 {
		capacity = 1
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &Accelerator{store: store, capacity: capacity}
}

//SetPolicy sets the eviction policy. It only affects future Record calls.
func (A *Accelerator) SetPolicy(p Policy) { A.policy = p }

//Len returns the number of recorded pairs.
func (A *Accelerator) Len() int { return A.store.Len() }

//Record appends a (trial, error) pair to the history, evicting one entry
//according to the policy if the capacity would be exceeded. The slices are
//copied; the caller may reuse them.
func (A *Accelerator) Record(trial, errv []float64) error {
	if len(trial) != len(errv) {
		return Error{fmt.Sprintf("trial and error vectors differ in length: %d vs %d", len(trial), len(errv)), []string{"Record"}, true}
	}
	if A.size == 0 {
		A.size = len(trial)
	} else if len(trial) != A.size {
		return Error{fmt.Sprintf("vector length changed mid-history: %d vs %d", len(trial), A.size), []string{"Record"}, true}
	}
	if A.store.Len() >= A.capacity {
		victim := 0
		if A.policy == LargestError {
			worst := -1.0
			for i := 0; i < A.store.Len(); i++ {
				e, err := A.store.Get(i)
				if err != nil {
					return errDecorate(err, "Record")
				}
				if norm := floats.Norm(e.Error, 2); norm > worst {
					worst = norm
					victim = i
				}
			}
		}
		if err := A.store.Remove(victim); err != nil {
			return errDecorate(err, "Record")
		}
	}
	e := Entry{Trial: make([]float64, len(trial)), Error: make([]float64, len(errv))}
	copy(e.Trial, trial)
	copy(e.Error, errv)
	if err := A.store.Append(e); err != nil {
		return errDecorate(err, "Record")
	}
	return nil
}

//Extrapolate overwrites target with the error-minimizing linear combination
//of the recorded trial vectors. It reports ok=false, leaving target
//untouched, when there is nothing recorded or the DIIS linear system is
//numerically singular; both are recoverable, the caller just proceeds with
//its unextrapolated vector. A non-nil error means the history itself could
//not be read.
func (A *Accelerator) Extrapolate(target []float64) (bool, error) {
	n := A.store.Len()
	if n == 0 {
		return false, nil
	}
	if len(target) != A.size {
		return false, Error{fmt.Sprintf("target length %d doesn't match history vectors of length %d", len(target), A.size), []string{"Extrapolate"}, true}
	}
	entries := make([]Entry, n)
	for i := 0; i < n; i++ {
		e, err := A.store.Get(i)
		if err != nil {
			return false, errDecorate(err, "Extrapolate")
		}
		entries[i] = e
	}
	//The Pulay B matrix, bordered with the Lagrange row and column that
	//constrains the coefficients to sum to one.
	B := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := floats.Dot(entries[i].Error, entries[j].Error)
			B.Set(i, j, v)
			B.Set(j, i, v)
		}
		B.Set(i, n, -1)
		B.Set(n, i, -1)
	}
	rhs := mat.NewVecDense(n+1, nil)
	rhs.SetVec(n, -1)
	var coef mat.VecDense
	if err := coef.SolveVec(B, rhs); err != nil {
		//singular subspace: skip the extrapolation this iteration
		return false, nil
	}
	for i := range target {
		target[i] = 0
	}
	for i := 0; i < n; i++ {
		floats.AddScaled(target, coef.AtVec(i), entries[i].Trial)
	}
	return true, nil
}

//Reset drops the whole history. The vector length is forgotten with it.
func (A *Accelerator) Reset() error {
	for A.store.Len() > 0 {
		if err := A.store.Remove(A.store.Len() - 1); err != nil {
			return errDecorate(err, "Reset")
		}
	}
	A.size = 0
	return nil
}

//Error is the error type of the diis package. It fulfills goscf's Error
//interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("goscf/diis: %s", err.message) }

//Decorate adds new information to the error and returns the decoration trail.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(errorInt)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
