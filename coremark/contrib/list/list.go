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

package list

import (
	"errors"
	"fmt"
)

// NodeID addresses a node slot in an Arena.
type NodeID int32

// Nil terminates a chain.
const Nil NodeID = -1

// Payload is the data carried by a node.
type Payload struct {
	Data16 int16
	Idx    int16
}

// Compare orders two payloads: negative, zero or positive. It may modify
// either payload.
type Compare func(a, b *Payload) int32

// BytesPerItem is the block budget charged per node and payload pair.
const BytesPerItem = 16 + 4

// minItems is the smallest pool that leaves three linked nodes, which the
// benchmark pass needs for its remove/undo step.
const minItems = 4

// ErrBlockTooSmall is returned when the block cannot hold a usable list.
var ErrBlockTooSmall = errors.New("list: block too small")

// Arena holds the node and payload pools.
type Arena struct {
	next []NodeID
	info []int32
	data []Payload

	nodes    int // next free node slot
	payloads int // next free payload slot
}

// NewArena returns an arena with room for size nodes and size payloads.
func NewArena(size int) *Arena {
	return &Arena{
		next: make([]NodeID, size),
		info: make([]int32, size),
		data: make([]Payload, size),
	}
}

// Capacity returns the pool size.
func (a *Arena) Capacity() int {
	return len(a.next)
}

// Next returns the successor of n.
func (a *Arena) Next(n NodeID) NodeID {
	return a.next[n]
}

// Info returns the payload currently attached to n.
func (a *Arena) Info(n NodeID) *Payload {
	return &a.data[a.info[n]]
}

// NewHead takes the next free node and payload slots for a list head
// carrying info. It returns Nil when either pool is exhausted.
func (a *Arena) NewHead(info Payload) NodeID {
	if a.nodes >= len(a.next) || a.payloads >= len(a.data) {
		return Nil
	}
	n := NodeID(a.nodes)
	a.nodes++
	a.next[n] = Nil
	a.info[n] = int32(a.payloads)
	a.data[a.payloads] = info
	a.payloads++
	return n
}

// InsertNew links a fresh node carrying a copy of info right after at.
//
// It returns Nil without modifying the list when taking a slot would leave
// either pool with no spare entry; callers treat a short list as valid.
func (a *Arena) InsertNew(at NodeID, info Payload) NodeID {
	if a.nodes+1 >= len(a.next) {
		return Nil
	}
	if a.payloads+1 >= len(a.data) {
		return Nil
	}

	n := NodeID(a.nodes)
	a.nodes++
	a.next[n] = a.next[at]
	a.next[at] = n

	a.info[n] = int32(a.payloads)
	a.payloads++
	CopyPayload(&a.data[a.info[n]], &info)

	return n
}

// CopyPayload copies both fields of src into dst.
func CopyPayload(dst, src *Payload) {
	dst.Data16 = src.Data16
	dst.Idx = src.Idx
}

// Find returns the first node from list whose payload matches query, or Nil.
//
// A non-negative query.Idx matches on Idx; a negative one matches the low
// byte of Data16 against query.Data16.
func (a *Arena) Find(list NodeID, query Payload) NodeID {
	if query.Idx >= 0 {
		for list != Nil && a.Info(list).Idx != query.Idx {
			list = a.next[list]
		}
		return list
	}
	for list != Nil && a.Info(list).Data16&0xff != query.Data16 {
		list = a.next[list]
	}
	return list
}

// Reverse reverses the chain in place and returns the new head.
func (a *Arena) Reverse(list NodeID) NodeID {
	prev := Nil
	for list != Nil {
		tmp := a.next[list]
		a.next[list] = prev
		prev = list
		list = tmp
	}
	return prev
}

// Remove unlinks the successor of item and returns it.
//
// The payloads of item and its successor are swapped first, so the list
// keeps item's original payload and loses the successor's; the returned
// node is detached and carries item's former payload.
func (a *Arena) Remove(item NodeID) NodeID {
	ret := a.next[item]
	a.info[item], a.info[ret] = a.info[ret], a.info[item]
	a.next[item] = a.next[ret]
	a.next[ret] = Nil
	return ret
}

// UndoRemove reverses Remove: it swaps payloads back between removed and
// modified and relinks removed after modified.
func (a *Arena) UndoRemove(removed, modified NodeID) NodeID {
	a.info[removed], a.info[modified] = a.info[modified], a.info[removed]
	a.next[removed] = a.next[modified]
	a.next[modified] = removed
	return removed
}

// MoveSuccessor unlinks the successor of item and relinks it right after
// dst. It is a no-op when item has no successor.
func (a *Arena) MoveSuccessor(item, dst NodeID) {
	moved := a.next[item]
	if moved == Nil {
		return
	}
	a.next[item] = a.next[moved]
	a.next[moved] = a.next[dst]
	a.next[dst] = moved
}

// Len counts the nodes reachable from list.
func (a *Arena) Len(list NodeID) int {
	n := 0
	for ; list != Nil; list = a.next[list] {
		n++
	}
	return n
}

// Payloads returns a copy of the payloads along the chain from list.
func (a *Arena) Payloads(list NodeID) []Payload {
	var out []Payload
	for ; list != Nil; list = a.next[list] {
		out = append(out, *a.Info(list))
	}
	return out
}

// ByIndex orders payloads by Idx.
//
// It also copies each payload's high byte into its low byte, which erases any
// score the computed-value comparator latched there.
func ByIndex(a, b *Payload) int32 {
	a.Data16 = int16(uint16(a.Data16)&0xff00 | 0x00ff&(uint16(a.Data16)>>8))
	b.Data16 = int16(uint16(b.Data16)&0xff00 | 0x00ff&(uint16(b.Data16)>>8))
	return int32(a.Idx) - int32(b.Idx)
}

// New builds the benchmark list for a block of blockSize bytes.
//
// The pools hold blockSize/BytesPerItem-2 entries. The list starts with a
// head sentinel and a tail sentinel (Idx 0x7fff) followed by as many
// generated payloads as fit, each Data16 packing a nibble of seed^i and the
// low three bits of i into both bytes. The first fifth receive sequential
// indexes and the rest a seed-scrambled 14-bit index, so the list is
// unsorted until the final sort by ByIndex.
func New(blockSize int, seed int16) (*Arena, NodeID, error) {
	size := blockSize/BytesPerItem - 2
	if size < minItems {
		return nil, Nil, fmt.Errorf("%w: %d bytes", ErrBlockTooSmall, blockSize)
	}

	a := NewArena(size)
	list := a.NewHead(Payload{Data16: -32640, Idx: 0x0000})
	a.InsertNew(list, Payload{Data16: -1, Idx: 0x7fff})

	for i := range uint32(size) {
		datpat := (uint16(seed) ^ uint16(i)) & 0xf
		dat := datpat<<3 | uint16(i&0x7)
		a.InsertNew(list, Payload{Data16: int16(dat<<8 | dat)})
	}

	finder := a.next[list]
	i := uint32(1)
	for a.next[finder] != Nil {
		if i < uint32(size)/5 {
			a.Info(finder).Idx = int16(i)
			i++
		} else {
			pat := uint16(i) ^ uint16(seed)
			i++
			a.Info(finder).Idx = int16(0x3fff & (uint16(i&0x07)<<8 | pat))
		}
		finder = a.next[finder]
	}

	return a, a.MergeSort(list, ByIndex), nil
}
