// Copyright 2025 go-coremark Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package matrix

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-coremark/coremark"
)

// ErrBlockTooSmall is returned when the region cannot hold the matrices.
var ErrBlockTooSmall = errors.New("matrix: block too small")

// Params holds the three matrix views and their dimension.
type Params struct {
	N int
	A []int16
	B []int16
	C []int32
}

// Dim returns the matrix dimension for a region of blockSize bytes: one less
// than the smallest i with i*i*8 >= blockSize.
func Dim(blockSize int) int {
	i, j := 0, 0
	for j < blockSize {
		i++
		j = i * i * 2 * 4
	}
	return i - 1
}

// alignOffset returns the offset of the first 4-byte aligned address at or
// after p.
func alignOffset(p unsafe.Pointer) int {
	return int((4 - uintptr(p)&3) & 3)
}

// Init carves A, B and C out of region and fills A and B from seed. A zero
// seed is treated as 1.
//
// Each cell advances seed = order*seed mod 65536 with order counting cells
// from 1; B takes seed+order as a full 16-bit value and A takes B+order
// clipped to 8 bits.
func Init(region []byte, seed int32) (*Params, error) {
	n := Dim(len(region))
	if n < 1 {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooSmall, len(region))
	}
	off := alignOffset(unsafe.Pointer(unsafe.SliceData(region)))
	cells := n * n
	// A and B are int16 and fill 4*cells bytes, so C stays 4-byte aligned.
	cOff := off + cells*2*2
	need := cOff + cells*4
	if need > len(region) {
		return nil, fmt.Errorf("%w: %d bytes, need %d for N=%d", ErrBlockTooSmall, len(region), need, n)
	}

	a := unsafe.Slice((*int16)(unsafe.Pointer(&region[off])), cells)
	b := unsafe.Slice((*int16)(unsafe.Pointer(&region[off+cells*2])), cells)
	c := unsafe.Slice((*int32)(unsafe.Pointer(&region[cOff])), cells)

	if seed == 0 {
		seed = 1
	}
	var order int32 = 1
	for i := range n {
		for j := range n {
			seed = (order * seed) % 65536
			val := int16(seed + order)
			b[i*n+j] = val
			val = int16(int32(val)+order) & 0xff
			a[i*n+j] = val
			order++
		}
	}

	return &Params{N: n, A: a, B: b, C: c}, nil
}

// Bench runs Test with seed as the perturbation value and folds its score
// into crc.
func (p *Params) Bench(seed int16, crc uint16) uint16 {
	return coremark.FoldI16(Test(p.N, p.C, p.A, p.B, seed), crc)
}

// Test perturbs A by val, runs every operation, folds each Sum into a fresh
// CRC and restores A. The clip threshold is 0xf000|val truncated to 16 bits.
func Test(n int, c []int32, a, b []int16, val int16) int16 {
	var crc uint16
	clip := int16(uint16(0xf000) | uint16(val))

	AddConst(n, a, val)
	MulConst(n, c, a, val)
	crc = coremark.FoldI16(Sum(n, c, clip), crc)
	MulVect(n, c, a, b)
	crc = coremark.FoldI16(Sum(n, c, clip), crc)
	MulMatrix(n, c, a, b)
	crc = coremark.FoldI16(Sum(n, c, clip), crc)
	MulMatrixBitExtract(n, c, a, b)
	crc = coremark.FoldI16(Sum(n, c, clip), crc)
	AddConst(n, a, -val)

	return int16(crc)
}

// Sum walks C row-major keeping a running total. When the total exceeds clip
// the score gains 10 and the total restarts at zero; otherwise the score
// gains 1 whenever an element is strictly greater than the one before it.
func Sum(n int, c []int32, clip int16) int16 {
	var tmp, prev int32
	var ret int16
	limit := int32(clip)
	for _, cur := range c[:n*n] {
		tmp += cur
		if tmp > limit {
			ret += 10
			tmp = 0
		} else if cur > prev {
			ret++
		}
		prev = cur
	}
	return ret
}

// AddConst adds val to every element of A.
func AddConst(n int, a []int16, val int16) {
	a = a[:n*n]
	for i := range a {
		a[i] += val
	}
}

// MulConst sets C = A * val with 32-bit products.
func MulConst(n int, c []int32, a []int16, val int16) {
	c = c[:n*n]
	a = a[:n*n]
	v := int32(val)
	for i := range c {
		c[i] = int32(a[i]) * v
	}
}

// MulVect multiplies A by the first N elements of B, writing C[0:N].
func MulVect(n int, c []int32, a, b []int16) {
	for i := range n {
		row := a[i*n : (i+1)*n]
		var acc int32
		for j, aij := range row {
			acc += int32(aij) * int32(b[j])
		}
		c[i] = acc
	}
}

// MulMatrix sets C = A × B.
func MulMatrix(n int, c []int32, a, b []int16) {
	for i := range n {
		for j := range n {
			var acc int32
			for k := range n {
				acc += int32(a[i*n+k]) * int32(b[k*n+j])
			}
			c[i*n+j] = acc
		}
	}
}

// bitExtract returns to bits of x starting at bit from, using an
// arithmetic shift.
func bitExtract(x int32, from, to uint) int32 {
	return (x >> from) & int32(^(uint32(0xffffffff) << to))
}

// MulMatrixBitExtract has the loop nest of MulMatrix but accumulates
// bits[2:6) * bits[5:12) of every partial product instead of the product.
func MulMatrixBitExtract(n int, c []int32, a, b []int16) {
	for i := range n {
		for j := range n {
			var acc int32
			for k := range n {
				tmp := int32(a[i*n+k]) * int32(b[k*n+j])
				acc += bitExtract(tmp, 2, 4) * bitExtract(tmp, 5, 7)
			}
			c[i*n+j] = acc
		}
	}
}
