/*
 * store.go, part of goscf.
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

package diis

//Store is where the DIIS history lives. Indexes run from 0 (oldest) to
//Len()-1 (newest); removing an entry shifts the ones after it down. A Store
//has at most one writer and must be read-after-write consistent; nothing
//more is asked of it, since a failed SCF run is simply restarted.
type Store interface {
	Append(e Entry) error
	Get(i int) (Entry, error)
	Remove(i int) error
	Len() int
}

//MemoryStore keeps the history in memory. This is the default and the right
//choice unless holding several Fock-sized matrices is a problem.
type MemoryStore struct {
	entries []Entry
}

//NewMemoryStore returns an empty in-memory history.
func NewMemoryStore() *MemoryStore { return new(MemoryStore) }

func (S *MemoryStore) Append(e Entry) error {
	S.entries = append(S.entries, e)
	return nil
}

func (S *MemoryStore) Get(i int) (Entry, error) {
	if i < 0 || i >= len(S.entries) {
		return Entry{}, Error{"history index out of range", []string{"MemoryStore.Get"}, true}
	}
	return S.entries[i], nil
}

func (S *MemoryStore) Remove(i int) error {
	if i < 0 || i >= len(S.entries) {
		return Error{"history index out of range", []string{"MemoryStore.Remove"}, true}
	}
	S.entries = append(S.entries[:i], S.entries[i+1:]...)
	return nil
}

func (S *MemoryStore) Len() int { return len(S.entries) }
