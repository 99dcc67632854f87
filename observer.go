/*
 * observer.go, part of goscf.
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

import (
	"fmt"
	"io"
	"os"
)

//LogObserver prints the run the way quantum chemistry programs do: one line
//per iteration, a closing line with the fate of the run. Verbosity 0 is
//silent, 1 prints the iteration lines, higher values add nothing here (the
//detailed orbital listing is Wavefunction.Report, which needs the final
//state).
type LogObserver struct {
	w     io.Writer
	print int
	name  string
}

//NewLogObserver returns a LogObserver writing to w (os.Stdout when nil) at
//the given verbosity, labeling lines with the reference name.
func NewLogObserver(w io.Writer, print int, name string) *LogObserver {
	if w == nil {
		w = os.Stdout
	}
	return &LogObserver{w: w, print: print, name: name}
}

func (L *LogObserver) GuessFormed(energy float64) {
	if L.print < 1 {
		return
	}
	fmt.Fprintf(L.w, "  @%s initial energy: %20.14f\n", L.name, energy)
}

func (L *LogObserver) IterationDone(rec IterationRecord) {
	if L.print < 1 {
		return
	}
	mark := ""
	if rec.DIIS {
		mark = " DIIS"
	}
	fmt.Fprintf(L.w, "  @%s iter %3d: %20.14f   dE %12.5e   Drms %12.5e%s\n",
		L.name, rec.Iter, rec.Energy, rec.EnergyDiff, rec.DensityRMS, mark)
}

func (L *LogObserver) Finished(status Status, energy float64, iterations int) {
	if L.print < 1 {
		return
	}
	if status == Converged {
		fmt.Fprintf(L.w, "  @%s converged after %d iterations. Final energy: %20.14f\n", L.name, iterations, energy)
	} else {
		fmt.Fprintf(L.w, "  @%s NOT converged after %d iterations\n", L.name, iterations)
	}
}

//silentObserver swallows everything.
type silentObserver struct{}

func (silentObserver) GuessFormed(float64)           {}
func (silentObserver) IterationDone(IterationRecord) {}
func (silentObserver) Finished(Status, float64, int) {}

//label returns the label of irrep h, or its index when no labels were given.
func (wf *Wavefunction) label(h int) string {
	if h < len(wf.Labels) && wf.Labels[h] != "" {
		return wf.Labels[h]
	}
	return fmt.Sprintf("%d", h)
}

//Report writes the final occupations and the orbital energies, partitioned
//into doubly occupied, singly occupied and unoccupied, to w.
func (wf *Wavefunction) Report(w io.Writer) {
	fmt.Fprintf(w, "\n  Final DOCC vector = (")
	for h := range wf.Docc {
		fmt.Fprintf(w, "%2d %3s ", wf.Docc[h], wf.label(h))
	}
	fmt.Fprintf(w, ")\n")
	fmt.Fprintf(w, "  Final SOCC vector = (")
	for h := range wf.Socc {
		fmt.Fprintf(w, "%2d %3s ", wf.Socc[h], wf.label(h))
	}
	fmt.Fprintf(w, ")\n")

	//the occupied orbitals are the lowest columns of each irrep, which is
	//how the densities are built. Partitioning per irrep rather than by
	//global energy order keeps the listing right under an explicit
	//occupation override, where the occupied set need not be the
	//energetically lowest one.
	var doubly, singly, virt []orbital
	for h := 0; h < wf.EpsilonA.Nirreps(); h++ {
		for i := 0; i < wf.EpsilonA.Dim(h); i++ {
			o := orbital{wf.EpsilonA.At(h, i), h}
			switch {
			case i < wf.Docc[h]:
				doubly = append(doubly, o)
			case i < wf.Docc[h]+wf.Socc[h]:
				singly = append(singly, o)
			default:
				virt = append(virt, o)
			}
		}
	}
	sortOrbitals(doubly)
	sortOrbitals(singly)
	sortOrbitals(virt)
	fmt.Fprintf(w, "\n  Orbital energies (a.u.):\n    Doubly occupied orbitals\n      ")
	wf.printOrbitals(w, doubly)
	fmt.Fprintf(w, "\n\n    Singly occupied orbitals\n      ")
	wf.printOrbitals(w, singly)
	fmt.Fprintf(w, "\n\n    Unoccupied orbitals\n      ")
	wf.printOrbitals(w, virt)
	fmt.Fprintf(w, "\n")
}

func (wf *Wavefunction) printOrbitals(w io.Writer, pairs []orbital) {
	for i, p := range pairs {
		fmt.Fprintf(w, "%12.6f %3s  ", p.energy, wf.label(p.h))
		if (i+1)%4 == 0 {
			fmt.Fprintf(w, "\n      ")
		}
	}
}
