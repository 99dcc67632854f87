/*
 * json.go, part of goscf.
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

//Package scfjson (de)serializes converged wavefunctions as JSON, so results
//can be kept next to the inputs that produced them, or shipped to plotting
//and analysis programs written in other languages.
package scfjson

import (
	"encoding/json"
	"io"

	scf "github.com/rmera/goscf"
)

//Wavefunction is a ready-to-serialize container for an SCF result. Matrices
//go as flat slices, block after block in row-major order, together with the
//per-irrep dimensions needed to rebuild them.
type Wavefunction struct {
	Reference    string
	Status       string
	Energy       float64
	Iterations   int
	Dims         []int
	Labels       []string
	Docc         []int
	Socc         []int
	Unrestricted bool
	Ca           []float64
	Cb           []float64 `json:",omitempty"` //empty when restricted: Cb aliases Ca
	EpsilonA     [][]float64
	EpsilonB     [][]float64 `json:",omitempty"`
	Trace        []scf.IterationRecord
}

//FromWavefunction packs an scf.Wavefunction into its serializable form.
func FromWavefunction(wf *scf.Wavefunction) *Wavefunction {
	J := new(Wavefunction)
	J.Reference = wf.Reference
	J.Status = wf.Status.String()
	J.Energy = wf.Energy
	J.Iterations = wf.Iterations
	J.Dims = wf.Dims
	J.Labels = wf.Labels
	J.Docc = wf.Docc
	J.Socc = wf.Socc
	J.Unrestricted = wf.Cb != wf.Ca
	J.Ca = wf.Ca.Flatten(nil)
	J.EpsilonA = vecBlocks(wf.EpsilonA)
	if J.Unrestricted {
		J.Cb = wf.Cb.Flatten(nil)
		J.EpsilonB = vecBlocks(wf.EpsilonB)
	}
	J.Trace = wf.Trace
	return J
}

//ToWavefunction rebuilds an scf.Wavefunction. Only the orbital data travels
//through JSON; the final Fock and density matrices, which any consumer can
//rebuild from the orbitals and occupations, are left nil.
func (J *Wavefunction) ToWavefunction() (*scf.Wavefunction, error) {
	//decoded data is untrusted: everything that would panic the matrix
	//layer downstream has to be rejected here, as content errors.
	size := 0
	for _, d := range J.Dims {
		if d < 0 {
			return nil, Error{Message: "Negative irrep dimension", InContent: true}
		}
		size += d * d
	}
	if len(J.Ca) != size {
		return nil, Error{Message: "Coefficient block doesn't match the irrep structure", InContent: true}
	}
	if J.Unrestricted && len(J.Cb) != size {
		return nil, Error{Message: "Beta coefficient block doesn't match the irrep structure", InContent: true}
	}
	wf := new(scf.Wavefunction)
	wf.Reference = J.Reference
	status, err := parseStatus(J.Status)
	if err != nil {
		return nil, err
	}
	wf.Status = status
	wf.Energy = J.Energy
	wf.Iterations = J.Iterations
	wf.Dims = J.Dims
	wf.Labels = J.Labels
	wf.Docc = J.Docc
	wf.Socc = J.Socc
	wf.Ca = scf.NewMatrix(J.Dims)
	wf.Ca.SetFlat(J.Ca)
	wf.EpsilonA = scf.NewVector(J.Dims)
	if err := fillVec(wf.EpsilonA, J.EpsilonA); err != nil {
		return nil, err
	}
	if J.Unrestricted {
		wf.Cb = scf.NewMatrix(J.Dims)
		wf.Cb.SetFlat(J.Cb)
		wf.EpsilonB = scf.NewVector(J.Dims)
		if err := fillVec(wf.EpsilonB, J.EpsilonB); err != nil {
			return nil, err
		}
	} else {
		wf.Cb = wf.Ca
		wf.EpsilonB = wf.EpsilonA
	}
	wf.Trace = J.Trace
	return wf, nil
}

//Write JSON-encodes a wavefunction into w.
func Write(w io.Writer, wf *scf.Wavefunction) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(FromWavefunction(wf)); err != nil {
		return Error{Message: "Couldn't encode wavefunction: " + err.Error(), InEncoding: true}
	}
	return nil
}

//Read decodes a wavefunction previously written by Write.
func Read(r io.Reader) (*scf.Wavefunction, error) {
	J := new(Wavefunction)
	dec := json.NewDecoder(r)
	if err := dec.Decode(J); err != nil {
		return nil, Error{Message: "Couldn't decode wavefunction: " + err.Error(), InEncoding: true}
	}
	return J.ToWavefunction()
}

func vecBlocks(v *scf.Vector) [][]float64 {
	res := make([][]float64, v.Nirreps())
	for h := range res {
		res[h] = make([]float64, v.Dim(h))
		copy(res[h], v.Block(h))
	}
	return res
}

func fillVec(dst *scf.Vector, src [][]float64) error {
	if len(src) != dst.Nirreps() {
		return Error{Message: "Orbital energy blocks don't match the irrep structure", InContent: true}
	}
	for h := range src {
		if len(src[h]) != dst.Dim(h) {
			return Error{Message: "Orbital energy blocks don't match the irrep structure", InContent: true}
		}
		copy(dst.Block(h), src[h])
	}
	return nil
}

func parseStatus(s string) (scf.Status, error) {
	for _, st := range []scf.Status{scf.Init, scf.Guess, scf.Iterating, scf.Converged, scf.Failed} {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, Error{Message: "Unknown SCF status: " + s, InContent: true}
}

//An easily JSON-serializable error type.
type Error struct {
	deco       []string
	InEncoding bool //was it in the JSON (de)serialization itself?
	InContent  bool //or in the decoded data being inconsistent?
	Message    string
}

//Error implements the error interface.
func (err Error) Error() string { return err.Message }

//Decorate will add the dec string to the decoration slice of strings of the
//error, and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical is always true for serialization errors.
func (err Error) Critical() bool { return true }
