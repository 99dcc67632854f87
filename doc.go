/*
 * doc.go, part of goscf.
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

/*Package scf implements the self-consistent-field iteration at the heart of a
Hartree-Fock calculation: restricted (RHF), unrestricted (UHF) and
restricted-open-shell (ROHF) references sharing one iteration driver.



	**goSCF Capabilities**

    Symmetry-blocked matrices and vectors (one dense block per irreducible
	representation) built on gonum, with the block-wise operations the SCF
	procedure needs: similarity transforms, diagonalization, traces and
	element-wise dot products.

    Density matrices from orbital coefficients and per-irrep occupations,
	for the three reference types.

    Working and effective Fock operators. The ROHF effective Fock is
	assembled from the alpha and beta Fock matrices in the molecular-orbital
	basis following Roothaan's coupling conditions, so a single
	diagonalization advances the open-shell iteration.

    DIIS convergence acceleration with a bounded history that can live in
	memory or, for large problems, compressed on disk. A singular DIIS
	system is recoverable: the iteration simply proceeds unextrapolated.

    Automatic (aufbau) or user-fixed orbital occupations per irrep.

    Convergence monitoring on both the total energy and the RMS change of
	the total density.

    Per-iteration diagnostics through an injectable Observer, plus JSON
	serialization (goscf/scfjson) and convergence-trace plots
	(goscf/scfplot) of the results.

The two-electron integral machinery is deliberately not part of this
library: the driver takes any JKBuilder, i.e. anything able to contract
densities into Coulomb and exchange matrices. A reference contraction from
an explicit integral tensor is provided for small, symmetry-less systems
and for tests.

goSCF stores orbital coefficients with basis functions as rows and
molecular orbitals as columns, ordered by increasing orbital energy within
each symmetry block.*/
package scf
