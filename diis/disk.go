/*
 * disk.go, part of goscf.
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

//disk.go implements the durable DIIS history: one zstd-compressed file per
//entry. The format is internal, undocumented on purpose, and makes no
//attempt at partial-write recovery: a run that dies mid-write is restarted
//from the guess anyway.

package diis

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

//DiskStore keeps each history entry in its own compressed file under a
//directory. Only one SCF run may write to a given directory at a time.
type DiskStore struct {
	dir   string
	files []string
	seq   int
}

//NewDiskStore returns a disk-backed history rooted at dir, creating the
//directory if needed. Leftover files from previous runs are ignored, not
//reused.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, Error{"Couldn't create history directory: " + err.Error(), []string{"NewDiskStore"}, true}
	}
	return &DiskStore{dir: dir}, nil
}

func (S *DiskStore) Append(e Entry) error {
	name := filepath.Join(S.dir, fmt.Sprintf("diis_%06d.zst", S.seq))
	S.seq++
	f, err := os.Create(name)
	if err != nil {
		return Error{"Couldn't create history file: " + err.Error(), []string{"DiskStore.Append"}, true}
	}
	w, err := zstd.NewWriter(f)
	if err != nil {
		f.Close()
		return Error{"Couldn't start compressor: " + err.Error(), []string{"DiskStore.Append"}, true}
	}
	werr := binary.Write(w, binary.LittleEndian, uint64(len(e.Trial)))
	if werr == nil {
		werr = binary.Write(w, binary.LittleEndian, e.Trial)
	}
	if werr == nil {
		werr = binary.Write(w, binary.LittleEndian, e.Error)
	}
	if cerr := w.Close(); werr == nil {
		werr = cerr
	}
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(name)
		return Error{"Couldn't write history entry: " + werr.Error(), []string{"DiskStore.Append"}, true}
	}
	S.files = append(S.files, name)
	return nil
}

func (S *DiskStore) Get(i int) (Entry, error) {
	if i < 0 || i >= len(S.files) {
		return Entry{}, Error{"history index out of range", []string{"DiskStore.Get"}, true}
	}
	f, err := os.Open(S.files[i])
	if err != nil {
		return Entry{}, Error{"Couldn't open history file: " + err.Error(), []string{"DiskStore.Get"}, true}
	}
	defer f.Close()
	r, err := zstd.NewReader(f)
	if err != nil {
		return Entry{}, Error{"Couldn't start decompressor: " + err.Error(), []string{"DiskStore.Get"}, true}
	}
	defer r.Close()
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return Entry{}, Error{"Couldn't read history entry: " + err.Error(), []string{"DiskStore.Get"}, true}
	}
	e := Entry{Trial: make([]float64, n), Error: make([]float64, n)}
	if err := binary.Read(r, binary.LittleEndian, e.Trial); err != nil {
		return Entry{}, Error{"Couldn't read history entry: " + err.Error(), []string{"DiskStore.Get"}, true}
	}
	if err := binary.Read(r, binary.LittleEndian, e.Error); err != nil {
		return Entry{}, Error{"Couldn't read history entry: " + err.Error(), []string{"DiskStore.Get"}, true}
	}
	return e, nil
}

func (S *DiskStore) Remove(i int) error {
	if i < 0 || i >= len(S.files) {
		return Error{"history index out of range", []string{"DiskStore.Remove"}, true}
	}
	if err := os.Remove(S.files[i]); err != nil {
		return Error{"Couldn't remove history file: " + err.Error(), []string{"DiskStore.Remove"}, true}
	}
	S.files = append(S.files[:i], S.files[i+1:]...)
	return nil
}

func (S *DiskStore) Len() int { return len(S.files) }
