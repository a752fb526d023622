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

package suite

import (
	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/contrib/list"
)

// BenchList runs one pass of the list kernel and returns its checksum.
//
// The pass performs Seed3 rounds of search-then-reverse. The query starts at
// Idx finderIdx and counts upward when finderIdx is non-negative; a negative
// finderIdx searches by the low byte of Data16 instead, using the round
// number. A hit moves the found node's successor to the front of the
// reversed list; a miss adds one bit of the second node's payload. Hits and
// misses are then tallied into the result. A positive finderIdx sorts by
// CompareByScore, which is where the matrix and state kernels run. The pass
// finishes by removing and restoring one node, sorting back by index and
// folding the head payload once per node walked.
//
// The worker's stored head is not advanced; the final sort by index brings
// the head node back to the front.
func (w *Worker) BenchList(finderIdx int16) uint16 {
	a := w.list
	l := w.head
	var retval, found, missed uint16

	info := list.Payload{Idx: finderIdx}
	for i := int16(0); i < w.seeds.Seed3; i++ {
		info.Data16 = i & 0xff
		hit := a.Find(l, info)
		l = a.Reverse(l)
		if hit == list.Nil {
			missed++
			retval += uint16(a.Info(a.Next(l)).Data16>>8) & 1
		} else {
			found++
			if d := a.Info(hit).Data16; d&0x1 != 0 {
				retval += uint16(d>>9) & 1
			}
			a.MoveSuccessor(hit, l)
		}
		if info.Idx >= 0 {
			info.Idx++
		}
	}
	retval += found*4 - missed

	if finderIdx > 0 {
		l = a.MergeSort(l, w.CompareByScore)
	}
	remover := a.Remove(a.Next(l))
	finder := a.Find(l, info)
	if finder == list.Nil {
		finder = a.Next(l)
	}
	for ; finder != list.Nil; finder = a.Next(finder) {
		retval = coremark.FoldI16(a.Info(l).Data16, retval)
	}

	a.UndoRemove(remover, a.Next(l))
	l = a.MergeSort(l, list.ByIndex)
	for finder = a.Next(l); finder != list.Nil; finder = a.Next(finder) {
		retval = coremark.FoldI16(a.Info(l).Data16, retval)
	}
	return retval
}

// Iterate resets the checksums and runs iterations rounds, each an
// ascending pass followed by a descending pass, folding both pass results
// into the final checksum. The list checksum is the final checksum after
// the first round.
func (w *Worker) Iterate(iterations uint32) (Checksums, error) {
	if w.list == nil {
		return Checksums{}, ErrNotInitialized
	}
	w.crc, w.crcList, w.crcMatrix, w.crcState = 0, 0, 0, 0

	for i := range iterations {
		crc := w.BenchList(1)
		w.crc = coremark.FoldU16(crc, w.crc)
		crc = w.BenchList(-1)
		w.crc = coremark.FoldU16(crc, w.crc)
		if i == 0 {
			w.crcList = w.crc
		}
	}
	return w.Checksums(), nil
}
