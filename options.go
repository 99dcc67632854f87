/*
 * options.go, part of goscf.
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
	"os"

	"gopkg.in/yaml.v3"
)

//Options collects every knob of the SCF procedure. The zero value is not
//usable; start from DefaultOptions or ReadOptions and adjust.
type Options struct {
	//Convergence thresholds, both required (logical AND).
	EConvergence float64 `yaml:"e_convergence"`
	DConvergence float64 `yaml:"d_convergence"`
	//Iteration budget.
	MaxIterations int `yaml:"max_iterations"`
	//DIIS extrapolation.
	DIIS         bool   `yaml:"diis"`
	DIISVectors  int    `yaml:"diis_vectors"`  //history capacity
	DIISStart    int    `yaml:"diis_start"`    //first iteration allowed to extrapolate
	DIISEviction string `yaml:"diis_eviction"` //"fifo" or "largest-error"
	//Optional explicit per-irrep occupations. When both are non-nil the
	//orbital-energy-based selection is bypassed entirely.
	Docc []int `yaml:"docc,omitempty"`
	Socc []int `yaml:"socc,omitempty"`
	//Verbosity of the default observer. 0 is silent, 1 prints iteration
	//lines, 2 and higher also the final orbital energy listing.
	Print int `yaml:"print"`
}

//DefaultOptions returns the options a plain energy calculation wants.
func DefaultOptions() *Options {
	O := new(Options)
	O.EConvergence = 1e-11
	O.DConvergence = 1e-8
	O.MaxIterations = 100
	O.DIIS = true
	O.DIISVectors = 8
	O.DIISStart = 2
	O.DIISEviction = "fifo"
	O.Print = 1
	return O
}

//ReadOptions reads options from a YAML file, with defaults for everything
//the file does not mention.
func ReadOptions(filename string) (*Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, CError{"Couldn't open options file: " + err.Error(), []string{"ReadOptions"}, true}
	}
	O := DefaultOptions()
	if err := yaml.Unmarshal(data, O); err != nil {
		return nil, CError{"Couldn't parse options file: " + err.Error(), []string{"ReadOptions"}, true}
	}
	return O, nil
}

//WriteOptions writes the options as YAML, so a converged setup can be kept
//next to its results.
func (O *Options) WriteOptions(filename string) error {
	data, err := yaml.Marshal(O)
	if err != nil {
		return CError{"Couldn't encode options: " + err.Error(), []string{"WriteOptions"}, true}
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return CError{"Couldn't write options file: " + err.Error(), []string{"WriteOptions"}, true}
	}
	return nil
}

//Validate checks the options against the system they will drive. All
//problems found here are configuration errors: critical, surfaced before
//the first iteration, never silently clamped.
func (O *Options) Validate(sys *System) error {
	if O.EConvergence <= 0 || O.DConvergence <= 0 {
		return CError{"Convergence thresholds must be positive", []string{"Validate"}, true}
	}
	if O.MaxIterations <= 0 {
		return CError{"Iteration budget must be positive", []string{"Validate"}, true}
	}
	if O.DIIS && O.DIISVectors <= 0 {
		return CError{"DIIS enabled with a non-positive history capacity", []string{"Validate"}, true}
	}
	if O.DIISEviction != "" && O.DIISEviction != "fifo" && O.DIISEviction != "largest-error" {
		return CError{"Unknown DIIS eviction policy: " + O.DIISEviction, []string{"Validate"}, true}
	}
	if (O.Docc == nil) != (O.Socc == nil) {
		return CError{"Occupation override requires both docc and socc", []string{"Validate"}, true}
	}
	if O.Docc != nil {
		if len(O.Docc) != len(sys.Dims) || len(O.Socc) != len(sys.Dims) {
			return CError{"Occupation override doesn't match the number of irreps", []string{"Validate"}, true}
		}
		ndocc, nsocc := 0, 0
		for h, d := range O.Docc {
			if d < 0 || O.Socc[h] < 0 {
				return CError{"Negative occupation override", []string{"Validate"}, true}
			}
			if d+O.Socc[h] > sys.Dims[h] {
				return CError{fmt.Sprintf("Occupation override exceeds the %d basis functions of irrep %d", sys.Dims[h], h), []string{"Validate"}, true}
			}
			ndocc += d
			nsocc += O.Socc[h]
		}
		if ndocc != sys.Nbeta || ndocc+nsocc != sys.Nalpha {
			return CError{fmt.Sprintf("Occupation override (%d doubly, %d singly) doesn't hold %d alpha and %d beta electrons", ndocc, nsocc, sys.Nalpha, sys.Nbeta), []string{"Validate"}, true}
		}
	}
	if sys.Nalpha < sys.Nbeta {
		return CError{"Nalpha must be at least Nbeta", []string{"Validate"}, true}
	}
	if sys.Nalpha > sys.Nbasis() {
		return CError{"More alpha electrons than basis functions", []string{"Validate"}, true}
	}
	return nil
}
