/*
 * errors.go, part of goscf.
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

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error as it crosses
//function boundaries, without wrapping it into a different type.
type Error interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//CError is the concrete error type of the scf package. A critical CError means
//the run cannot produce a usable wavefunction (bad configuration, collaborator
//failure). A non-critical one carries a usable, if imperfect, result; the only
//non-critical error currently produced is SCF non-convergence.
type CError struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err CError) Error() string {
	return fmt.Sprintf("goscf: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err CError) Critical() bool { return err.critical }

//errDecorate asserts that the error implements scf.Error and decorates it with
//the caller's name before returning it. Errors from other packages pass
//through untouched.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics. It is reserved for programmer errors
//(dimension mismatches and the like), which in this library are not returned
//as error values; even though it does satisfy the error interface.
//For errors use CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrShape           = PanicMsg("goscf: Dimension mismatch between symmetry-blocked operands")
	ErrNirreps         = PanicMsg("goscf: Operands have different numbers of irreps")
	ErrBlockIndex      = PanicMsg("goscf: Irrep index out of range")
	ErrNotSquare       = PanicMsg("goscf: Operation requires square blocks")
	ErrEigen           = PanicMsg("goscf: Can't obtain eigenvectors/eigenvalues of given block")
	ErrNilCollaborator = PanicMsg("goscf: Driver given a nil collaborator")
)
