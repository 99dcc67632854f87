/*
 * observer_test.go, part of goscf.
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
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestLogObserver(Te *testing.T) {
	var buf bytes.Buffer
	sys := diagonalSystem([]int{4}, [][]float64{{-5, -3, -1, 2}}, 3, 2, 0)
	D, err := NewDriver(sys, NewROHF(), zeroJK{}, DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	D.SetObserver(NewLogObserver(&buf, 1, "ROHF"))
	if _, err := D.Run(); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	fmt.Println(out)
	for _, want := range []string{"@ROHF initial energy", "@ROHF iter   1", "converged after"} {
		if !strings.Contains(out, want) {
			Te.Errorf("log output missing %q", want)
		}
	}
	//verbosity 0 must be completely silent
	buf.Reset()
	D2, err := NewDriver(sys, NewROHF(), zeroJK{}, DefaultOptions())
	if err != nil {
		Te.Fatal(err)
	}
	D2.SetObserver(NewLogObserver(&buf, 0, "ROHF"))
	if _, err := D2.Run(); err != nil {
		Te.Fatal(err)
	}
	if buf.Len() != 0 {
		Te.Errorf("verbosity 0 printed: %q", buf.String())
	}
}

func TestReport(Te *testing.T) {
	sys := diagonalSystem([]int{2, 2}, [][]float64{{-5, -1}, {-3, 0.5}}, 3, 2, 0)
	sys.Labels = []string{"A1", "B1"}
	D, err := NewDriver(sys, NewROHF(), zeroJK{}, quietOptions())
	if err != nil {
		Te.Fatal(err)
	}
	wf, err := D.Run()
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	wf.Report(&buf)
	out := buf.String()
	fmt.Println(out)
	for _, want := range []string{"Final DOCC vector", "Final SOCC vector", "Doubly occupied", "Singly occupied", "Unoccupied", "A1", "B1"} {
		if !strings.Contains(out, want) {
			Te.Errorf("report missing %q", want)
		}
	}
}

//TestReportOverride: with an explicit non-aufbau occupation the report must
//partition by the actual occupations, not by global energy order. Here the
//-1 orbital is forced closed and the lower-lying -3 one is singly occupied.
func TestReportOverride(Te *testing.T) {
	sys := diagonalSystem([]int{2, 2}, [][]float64{{-5, -1}, {-3, 0.5}}, 3, 2, 0)
	sys.Labels = []string{"A1", "B1"}
	opts := quietOptions()
	opts.Docc = []int{2, 0}
	opts.Socc = []int{0, 1}
	D, err := NewDriver(sys, NewROHF(), zeroJK{}, opts)
	if err != nil {
		Te.Fatal(err)
	}
	wf, err := D.Run()
	if err != nil {
		Te.Fatal(err)
	}
	var buf bytes.Buffer
	wf.Report(&buf)
	out := buf.String()
	fmt.Println(out)
	doubly := strings.Index(out, "Doubly occupied")
	singly := strings.Index(out, "Singly occupied")
	unocc := strings.Index(out, "Unoccupied")
	section := func(e string) int { return strings.Index(out, e) }
	if i := section("-1.000000"); i < doubly || i > singly {
		Te.Error("the closed -1 orbital is not listed as doubly occupied")
	}
	if i := section("-3.000000"); i < singly || i > unocc {
		Te.Error("the open -3 orbital is not listed as singly occupied")
	}
	if i := section("0.500000"); i < unocc {
		Te.Error("the 0.5 orbital is not listed as unoccupied")
	}
}
