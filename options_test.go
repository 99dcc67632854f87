/*
 * options_test.go, part of goscf.
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
 *
 */

package scf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsRoundTrip(Te *testing.T) {
	O := DefaultOptions()
	O.EConvergence = 1e-9
	O.DIISEviction = "largest-error"
	O.Docc = []int{2, 1}
	O.Socc = []int{1, 0}
	O.Print = 2
	name := filepath.Join(Te.TempDir(), "options.yaml")
	if err := O.WriteOptions(name); err != nil {
		Te.Fatal(err)
	}
	O2, err := ReadOptions(name)
	if err != nil {
		Te.Fatal(err)
	}
	if O2.EConvergence != O.EConvergence || O2.DIISEviction != O.DIISEviction || O2.Print != O.Print {
		Te.Errorf("read back %+v, wrote %+v", O2, O)
	}
	if len(O2.Docc) != 2 || O2.Docc[0] != 2 || O2.Socc[0] != 1 {
		Te.Errorf("occupation override lost: docc=%v socc=%v", O2.Docc, O2.Socc)
	}
}

//TestOptionsPartialFile: fields the file doesn't mention keep their
//defaults.
func TestOptionsPartialFile(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "partial.yaml")
	if err := os.WriteFile(name, []byte("e_convergence: 1.0e-7\ndiis: false\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	O, err := ReadOptions(name)
	if err != nil {
		Te.Fatal(err)
	}
	if O.EConvergence != 1e-7 || O.DIIS {
		Te.Errorf("file values not taken: %+v", O)
	}
	def := DefaultOptions()
	if O.MaxIterations != def.MaxIterations || O.DIISVectors != def.DIISVectors || O.DIISEviction != def.DIISEviction {
		Te.Errorf("defaults not kept for unmentioned fields: %+v", O)
	}
}

func TestOptionsMissingFile(Te *testing.T) {
	_, err := ReadOptions(filepath.Join(Te.TempDir(), "nope.yaml"))
	if err == nil {
		Te.Fatal("missing file accepted")
	}
	if !err.(Error).Critical() {
		Te.Error("missing options file should be critical")
	}
}
