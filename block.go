/*
 * block.go, part of goscf.
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

//block.go contains the symmetry-blocked matrix and vector types on which the
//whole SCF procedure operates, and the block-wise operations it needs. Each
//block corresponds to one irreducible representation of the molecular point
//group; no operation ever mixes blocks. The per-block storage is gonum's,
//so anything not covered here can be done by operating on the blocks
//directly.

package scf

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Matrix is a symmetry-blocked square matrix: one dense block per irrep.
//Blocks for irreps with zero basis functions are kept as nil and skipped by
//every operation.
type Matrix struct {
	blocks []*mat.Dense
	dims   []int
}

//NewMatrix returns a zeroed symmetry-blocked matrix with the given per-irrep
//dimensions.
func NewMatrix(dims []int) *Matrix {
	M := &Matrix{blocks: make([]*mat.Dense, len(dims)), dims: make([]int, len(dims))}
	copy(M.dims, dims)
	for h, d := range dims {
		if d > 0 {
			M.blocks[h] = mat.NewDense(d, d, nil)
		}
	}
	return M
}

//Nirreps returns the number of symmetry blocks.
func (M *Matrix) Nirreps() int { return len(M.blocks) }

//Dims returns a copy of the per-irrep block dimensions.
func (M *Matrix) Dims() []int {
	d := make([]int, len(M.dims))
	copy(d, M.dims)
	return d
}

//BlockDim returns the dimension of the h-th block.
func (M *Matrix) BlockDim(h int) int {
	if h < 0 || h >= len(M.dims) {
		panic(ErrBlockIndex)
	}
	return M.dims[h]
}

//Block returns the h-th block itself, not a copy. It is nil for
//zero-dimensional irreps.
func (M *Matrix) Block(h int) *mat.Dense {
	if h < 0 || h >= len(M.blocks) {
		panic(ErrBlockIndex)
	}
	return M.blocks[h]
}

//At returns the i,j element of the h-th block.
func (M *Matrix) At(h, i, j int) float64 { return M.Block(h).At(i, j) }

//Set sets the i,j element of the h-th block to v.
func (M *Matrix) Set(h, i, j int, v float64) { M.Block(h).Set(i, j, v) }

func sameShape(a, b *Matrix) {
	if len(a.dims) != len(b.dims) {
		panic(ErrNirreps)
	}
	for h := range a.dims {
		if a.dims[h] != b.dims[h] {
			panic(ErrShape)
		}
	}
}

//Copy overwrites the receiver with the contents of A.
func (M *Matrix) Copy(A *Matrix) {
	sameShape(M, A)
	for h, b := range M.blocks {
		if b != nil {
			b.Copy(A.blocks[h])
		}
	}
}

//Clone returns a newly allocated copy of M.
func (M *Matrix) Clone() *Matrix {
	R := NewMatrix(M.dims)
	R.Copy(M)
	return R
}

//Zero sets every element of every block to zero.
func (M *Matrix) Zero() {
	for _, b := range M.blocks {
		if b != nil {
			b.Zero()
		}
	}
}

//Add adds A, element-wise, to the receiver.
func (M *Matrix) Add(A *Matrix) {
	sameShape(M, A)
	for h, b := range M.blocks {
		if b != nil {
			b.Add(b, A.blocks[h])
		}
	}
}

//Sub subtracts A, element-wise, from the receiver.
func (M *Matrix) Sub(A *Matrix) {
	sameShape(M, A)
	for h, b := range M.blocks {
		if b != nil {
			b.Sub(b, A.blocks[h])
		}
	}
}

//Scale multiplies every element of the receiver by f.
func (M *Matrix) Scale(f float64) {
	for _, b := range M.blocks {
		if b != nil {
			b.Scale(f, b)
		}
	}
}

//ZeroDiag zeroes the diagonal of every block. Used to extract the
//off-diagonal residual of an operator in the basis of its approximate
//eigenvectors.
func (M *Matrix) ZeroDiag() {
	for h, b := range M.blocks {
		if b == nil {
			continue
		}
		for i := 0; i < M.dims[h]; i++ {
			b.Set(i, i, 0)
		}
	}
}

//Transform overwrites the receiver with C^T A C, block-wise. The receiver may
//not alias A nor C.
func (M *Matrix) Transform(A, C *Matrix) {
	sameShape(M, A)
	sameShape(M, C)
	for h, b := range M.blocks {
		if b == nil {
			continue
		}
		var tmp mat.Dense
		tmp.Mul(A.blocks[h], C.blocks[h])
		b.Mul(C.blocks[h].T(), &tmp)
	}
}

//Compose overwrites the receiver with the block-wise product A*B. The
//receiver may alias A or B.
func (M *Matrix) Compose(A, B *Matrix) {
	sameShape(M, A)
	sameShape(M, B)
	for h, b := range M.blocks {
		if b == nil {
			continue
		}
		var tmp mat.Dense
		tmp.Mul(A.blocks[h], B.blocks[h])
		b.Copy(&tmp)
	}
}

//Dot returns the element-wise dot product of M and A summed over all blocks,
//i.e. tr(M^T A). This is the contraction the SCF energy expression uses.
func (M *Matrix) Dot(A *Matrix) float64 {
	sameShape(M, A)
	res := 0.0
	for h, b := range M.blocks {
		if b != nil {
			res += floats.Dot(b.RawMatrix().Data, A.blocks[h].RawMatrix().Data)
		}
	}
	return res
}

//Trace returns the trace of the h-th block.
func (M *Matrix) Trace(h int) float64 {
	b := M.Block(h)
	if b == nil {
		return 0
	}
	return mat.Trace(b)
}

//RMS returns the root-mean-square of all elements over all blocks. An
//all-empty matrix has RMS zero.
func (M *Matrix) RMS() float64 {
	sum := 0.0
	n := 0
	for _, b := range M.blocks {
		if b == nil {
			continue
		}
		data := b.RawMatrix().Data
		sum += floats.Dot(data, data)
		n += len(data)
	}
	if n == 0 {
		return 0
	}
	return math.Sqrt(sum / float64(n))
}

//Size returns the total number of stored elements over all blocks.
func (M *Matrix) Size() int {
	n := 0
	for _, d := range M.dims {
		n += d * d
	}
	return n
}

//Flatten appends all elements, block after block in row-major order, to dst
//and returns the result. With a nil dst it allocates.
func (M *Matrix) Flatten(dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, 0, M.Size())
	}
	for _, b := range M.blocks {
		if b != nil {
			dst = append(dst, b.RawMatrix().Data...)
		}
	}
	return dst
}

//SetFlat overwrites the receiver from a flat slice with the layout produced
//by Flatten.
func (M *Matrix) SetFlat(src []float64) {
	if len(src) != M.Size() {
		panic(ErrShape)
	}
	at := 0
	for _, b := range M.blocks {
		if b == nil {
			continue
		}
		data := b.RawMatrix().Data
		copy(data, src[at:at+len(data)])
		at += len(data)
	}
}

//Diagonalize computes, block by block, the eigendecomposition of the
//receiver, which must be symmetric. Eigenvectors go as the columns of evecs,
//eigenvalues into evals, in ascending order within each block (gonum's
//EigenSym already hands them over sorted). The receiver is not modified.
func (M *Matrix) Diagonalize(evecs *Matrix, evals *Vector) error {
	sameShape(M, evecs)
	for h, b := range M.blocks {
		if b == nil {
			continue
		}
		d := M.dims[h]
		sym := mat.NewSymDense(d, nil)
		for i := 0; i < d; i++ {
			for j := i; j < d; j++ {
				sym.SetSym(i, j, b.At(i, j))
			}
		}
		var eig mat.EigenSym
		if ok := eig.Factorize(sym, true); !ok {
			return CError{string(ErrEigen), []string{"Diagonalize"}, true}
		}
		eig.VectorsTo(evecs.blocks[h])
		eig.Values(evals.blocks[h])
	}
	return nil
}

//Vector is a symmetry-blocked vector: one float64 slice per irrep.
type Vector struct {
	blocks [][]float64
}

//NewVector returns a zeroed symmetry-blocked vector with the given per-irrep
//dimensions.
func NewVector(dims []int) *Vector {
	V := &Vector{blocks: make([][]float64, len(dims))}
	for h, d := range dims {
		V.blocks[h] = make([]float64, d)
	}
	return V
}

//Nirreps returns the number of symmetry blocks.
func (V *Vector) Nirreps() int { return len(V.blocks) }

//Dim returns the length of the h-th block.
func (V *Vector) Dim(h int) int {
	if h < 0 || h >= len(V.blocks) {
		panic(ErrBlockIndex)
	}
	return len(V.blocks[h])
}

//At returns the i-th element of the h-th block.
func (V *Vector) At(h, i int) float64 { return V.blocks[h][i] }

//Set sets the i-th element of the h-th block.
func (V *Vector) Set(h, i int, v float64) { V.blocks[h][i] = v }

//Block returns the h-th block itself, not a copy.
func (V *Vector) Block(h int) []float64 {
	if h < 0 || h >= len(V.blocks) {
		panic(ErrBlockIndex)
	}
	return V.blocks[h]
}

//Copy overwrites the receiver with the contents of A.
func (V *Vector) Copy(A *Vector) {
	if len(V.blocks) != len(A.blocks) {
		panic(ErrNirreps)
	}
	for h := range V.blocks {
		if len(V.blocks[h]) != len(A.blocks[h]) {
			panic(ErrShape)
		}
		copy(V.blocks[h], A.blocks[h])
	}
}

//Clone returns a newly allocated copy of V.
func (V *Vector) Clone() *Vector {
	dims := make([]int, len(V.blocks))
	for h := range V.blocks {
		dims[h] = len(V.blocks[h])
	}
	R := NewVector(dims)
	R.Copy(V)
	return R
}
