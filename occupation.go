/*
 * occupation.go, part of goscf.
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

	"golang.org/x/exp/slices"
)

//orbital tags an orbital energy with its irrep, for the global aufbau sort.
type orbital struct {
	energy float64
	h      int
}

//sortOrbitals sorts pairs ascending by energy, ties broken by irrep index.
//The sort is stable, so the ordering is deterministic given the same
//energies.
func sortOrbitals(pairs []orbital) {
	slices.SortStableFunc(pairs, func(a, b orbital) int {
		if a.energy < b.energy {
			return -1
		}
		if a.energy > b.energy {
			return 1
		}
		return a.h - b.h
	})
}

//sortedOrbitals returns every (energy, irrep) pair of eps, sorted for the
//global aufbau selection.
func sortedOrbitals(eps *Vector) []orbital {
	var pairs []orbital
	for h := 0; h < eps.Nirreps(); h++ {
		for i := 0; i < eps.Dim(h); i++ {
			pairs = append(pairs, orbital{eps.At(h, i), h})
		}
	}
	sortOrbitals(pairs)
	return pairs
}

//findOccupation fills the n energetically lowest orbitals of eps, counting
//per irrep, irrespective of which irrep they fall in. It errors out if there
//aren't n orbitals to fill, rather than truncating.
func findOccupation(eps *Vector, n int) ([]int, error) {
	pairs := sortedOrbitals(eps)
	if n > len(pairs) {
		return nil, CError{fmt.Sprintf("Can't occupy %d orbitals: only %d available", n, len(pairs)), []string{"findOccupation"}, true}
	}
	counts := make([]int, eps.Nirreps())
	for _, p := range pairs[:n] {
		counts[p.h]++
	}
	return counts, nil
}

//findOccupations determines per-irrep docc and socc from a single orbital
//energy set: the lowest ndocc orbitals overall are doubly occupied and the
//next nsocc singly occupied. This is the restricted (shared-orbital)
//occupation rule; the unrestricted case calls findOccupation once per spin
//channel instead.
func findOccupations(eps *Vector, ndocc, nsocc int) (docc, socc []int, err error) {
	docc, err = findOccupation(eps, ndocc)
	if err != nil {
		return nil, nil, errDecorate(err, "findOccupations")
	}
	all, err := findOccupation(eps, ndocc+nsocc)
	if err != nil {
		return nil, nil, errDecorate(err, "findOccupations")
	}
	socc = make([]int, len(all))
	for h := range all {
		socc[h] = all[h] - docc[h]
	}
	return docc, socc, nil
}
