/*
 * diis_test.go, part of goscf.
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

package diis

import (
	"math"
	"testing"
)

//TestSingleEntry: with one recorded pair the constraint forces c1=1, so the
//extrapolation returns the recorded trial vector unchanged.
func TestSingleEntry(Te *testing.T) {
	A := New(5, nil)
	trial := []float64{1, 2, 3}
	errv := []float64{0.1, -0.2, 0.05}
	if err := A.Record(trial, errv); err != nil {
		Te.Fatal(err)
	}
	target := []float64{9, 9, 9}
	ok, err := A.Extrapolate(target)
	if err != nil {
		Te.Fatal(err)
	}
	if !ok {
		Te.Fatal("single-entry extrapolation refused")
	}
	for i := range trial {
		if math.Abs(target[i]-trial[i]) > 1e-12 {
			Te.Errorf("target[%d]=%v, want %v", i, target[i], trial[i])
		}
	}
}

//TestEmptyHistory: nothing recorded means no extrapolation, no error, and an
//untouched target.
func TestEmptyHistory(Te *testing.T) {
	A := New(5, nil)
	target := []float64{1, 2}
	ok, err := A.Extrapolate(target)
	if err != nil {
		Te.Fatal(err)
	}
	if ok {
		Te.Error("extrapolated from an empty history")
	}
	if target[0] != 1 || target[1] != 2 {
		Te.Error("empty-history extrapolation modified the target")
	}
}

//TestOppositeErrors: two pairs with exactly opposite error vectors cancel at
//c1=c2=0.5, so the extrapolation is the average of the trials.
func TestOppositeErrors(Te *testing.T) {
	A := New(5, nil)
	if err := A.Record([]float64{2, 0}, []float64{1, -1}); err != nil {
		Te.Fatal(err)
	}
	if err := A.Record([]float64{0, 4}, []float64{-1, 1}); err != nil {
		Te.Fatal(err)
	}
	target := make([]float64, 2)
	ok, err := A.Extrapolate(target)
	if err != nil {
		Te.Fatal(err)
	}
	if !ok {
		Te.Fatal("extrapolation refused")
	}
	if math.Abs(target[0]-1) > 1e-10 || math.Abs(target[1]-2) > 1e-10 {
		Te.Errorf("got %v, want [1 2]", target)
	}
}

//TestFIFOEviction: at capacity the oldest pair goes.
func TestFIFOEviction(Te *testing.T) {
	store := NewMemoryStore()
	A := New(2, store)
	vecs := [][]float64{{1, 0}, {2, 0}, {3, 0}}
	errs := [][]float64{{0.3, 0}, {0.2, 0}, {0.1, 0}}
	for i := range vecs {
		if err := A.Record(vecs[i], errs[i]); err != nil {
			Te.Fatal(err)
		}
	}
	if A.Len() != 2 {
		Te.Fatalf("history holds %d entries, capacity is 2", A.Len())
	}
	e, err := store.Get(0)
	if err != nil {
		Te.Fatal(err)
	}
	if e.Trial[0] != 2 {
		Te.Errorf("oldest surviving trial is %v, want the second recorded", e.Trial)
	}
}

//TestLargestErrorEviction: the pair with the largest error norm goes, even
//when it is not the oldest.
func TestLargestErrorEviction(Te *testing.T) {
	store := NewMemoryStore()
	A := New(2, store)
	A.SetPolicy(LargestError)
	if err := A.Record([]float64{1, 0}, []float64{0.1, 0}); err != nil {
		Te.Fatal(err)
	}
	if err := A.Record([]float64{2, 0}, []float64{0.9, 0}); err != nil { //the worst
		Te.Fatal(err)
	}
	if err := A.Record([]float64{3, 0}, []float64{0.2, 0}); err != nil {
		Te.Fatal(err)
	}
	if A.Len() != 2 {
		Te.Fatalf("history holds %d entries, capacity is 2", A.Len())
	}
	for i := 0; i < store.Len(); i++ {
		e, err := store.Get(i)
		if err != nil {
			Te.Fatal(err)
		}
		if e.Trial[0] == 2 {
			Te.Error("the largest-error pair survived the eviction")
		}
	}
}

//TestSingularSubspace: duplicated error vectors make the B matrix singular;
//the accelerator must decline rather than fail or return garbage.
func TestSingularSubspace(Te *testing.T) {
	A := New(5, nil)
	errv := []float64{1, 1}
	if err := A.Record([]float64{1, 0}, errv); err != nil {
		Te.Fatal(err)
	}
	if err := A.Record([]float64{0, 1}, errv); err != nil {
		Te.Fatal(err)
	}
	target := []float64{7, 7}
	ok, err := A.Extrapolate(target)
	if err != nil {
		Te.Fatal(err)
	}
	if ok {
		Te.Error("extrapolated from a singular subspace")
	}
	if target[0] != 7 || target[1] != 7 {
		Te.Error("declined extrapolation modified the target")
	}
}

//TestMismatchedLengths: Record and Extrapolate both reject wrong-sized
//vectors with critical errors.
func TestMismatchedLengths(Te *testing.T) {
	A := New(5, nil)
	if err := A.Record([]float64{1, 2}, []float64{1}); err == nil {
		Te.Error("mismatched trial/error lengths accepted")
	}
	if err := A.Record([]float64{1, 2}, []float64{0, 0}); err != nil {
		Te.Fatal(err)
	}
	if err := A.Record([]float64{1, 2, 3}, []float64{0, 0, 0}); err == nil {
		Te.Error("vector length change mid-history accepted")
	} else if !err.(Error).Critical() {
		Te.Error("length error not critical")
	}
	if _, err := A.Extrapolate([]float64{1}); err == nil {
		Te.Error("wrong-sized extrapolation target accepted")
	}
}

//TestReset: after a Reset the history is empty and a different vector length
//is accepted.
func TestReset(Te *testing.T) {
	A := New(5, nil)
	if err := A.Record([]float64{1, 2}, []float64{0, 0}); err != nil {
		Te.Fatal(err)
	}
	if err := A.Reset(); err != nil {
		Te.Fatal(err)
	}
	if A.Len() != 0 {
		Te.Errorf("history holds %d entries after Reset", A.Len())
	}
	if err := A.Record([]float64{1, 2, 3}, []float64{0, 0, 0}); err != nil {
		Te.Errorf("new vector length rejected after Reset: %v", err)
	}
}

//TestDiskStore: the compressed on-disk history behaves exactly like the
//in-memory one, both standalone and backing an Accelerator.
func TestDiskStore(Te *testing.T) {
	store, err := NewDiskStore(Te.TempDir())
	if err != nil {
		Te.Fatal(err)
	}
	e1 := Entry{Trial: []float64{1, -2, 3.5}, Error: []float64{0.25, 0, -0.125}}
	e2 := Entry{Trial: []float64{4, 5, 6}, Error: []float64{1, 1, 1}}
	if err := store.Append(e1); err != nil {
		Te.Fatal(err)
	}
	if err := store.Append(e2); err != nil {
		Te.Fatal(err)
	}
	if store.Len() != 2 {
		Te.Fatalf("disk store holds %d entries", store.Len())
	}
	got, err := store.Get(0)
	if err != nil {
		Te.Fatal(err)
	}
	for i := range e1.Trial {
		if got.Trial[i] != e1.Trial[i] || got.Error[i] != e1.Error[i] {
			Te.Fatalf("round trip lost data: %+v vs %+v", got, e1)
		}
	}
	if err := store.Remove(0); err != nil {
		Te.Fatal(err)
	}
	got, err = store.Get(0)
	if err != nil {
		Te.Fatal(err)
	}
	if got.Trial[0] != 4 {
		Te.Errorf("wrong entry survived removal: %+v", got)
	}
	if _, err := store.Get(5); err == nil {
		Te.Error("out-of-range read accepted")
	}
}

func TestDiskBackedAccelerator(Te *testing.T) {
	store, err := NewDiskStore(Te.TempDir())
	if err != nil {
		Te.Fatal(err)
	}
	A := New(2, store)
	if err := A.Record([]float64{2, 0}, []float64{1, -1}); err != nil {
		Te.Fatal(err)
	}
	if err := A.Record([]float64{0, 4}, []float64{-1, 1}); err != nil {
		Te.Fatal(err)
	}
	target := make([]float64, 2)
	ok, err := A.Extrapolate(target)
	if err != nil {
		Te.Fatal(err)
	}
	if !ok {
		Te.Fatal("disk-backed extrapolation refused")
	}
	if math.Abs(target[0]-1) > 1e-10 || math.Abs(target[1]-2) > 1e-10 {
		Te.Errorf("got %v, want [1 2]", target)
	}
}
