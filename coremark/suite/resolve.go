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
	"github.com/ajroetker/go-coremark/coremark/contrib/state"
)

// Opcodes selected by the low three bits of an unresolved Data16.
const (
	opState  = 0
	opMatrix = 1
)

// resolvedBit marks a Data16 whose low seven bits hold a latched score.
const resolvedBit = 0x0080

// Resolve returns the sort key encoded in p.Data16.
//
// If bit 7 is set the low seven bits are returned as they are. Otherwise
// bits 0-2 select an operation and bits 3-6, copied into both nibbles, give
// its operand: op 0 runs the state kernel with the operand as corruption
// stride (at least state.MinStep), op 1 runs the matrix kernel with the
// operand as seed, anything else yields Data16 itself. The result is folded
// into the worker's running CRC and its low seven bits are latched into
// p.Data16 with bit 7 set, so later calls return them without running a
// kernel. A kernel that is not enabled behaves like an unknown op.
func (w *Worker) Resolve(p *list.Payload) int16 {
	data := p.Data16
	if (data>>7)&1 != 0 {
		return data & 0x007f
	}

	op := data & 0x7
	dtype := (data >> 3) & 0xf
	dtype |= dtype << 4

	var ret int16
	switch {
	case op == opState && w.buf != nil:
		if dtype < state.MinStep {
			dtype = state.MinStep
		}
		ret = int16(state.Bench(w.buf, w.seeds.Seed1, w.seeds.Seed2, dtype, w.crc))
		if w.crcState == 0 {
			w.crcState = uint16(ret)
		}
		w.dispatches++
	case op == opMatrix && w.mat != nil:
		ret = int16(w.mat.Bench(dtype, w.crc))
		if w.crcMatrix == 0 {
			w.crcMatrix = uint16(ret)
		}
		w.dispatches++
	default:
		ret = data
	}

	w.crc = coremark.FoldI16(ret, w.crc)
	ret &= 0x007f
	p.Data16 = int16(uint16(data)&0xff00 | resolvedBit | uint16(ret))
	return ret
}

// CompareByScore orders payloads by their resolved scores. It has side
// effects: both payloads may be resolved and the running CRC updated.
func (w *Worker) CompareByScore(a, b *list.Payload) int32 {
	va := w.Resolve(a)
	vb := w.Resolve(b)
	return int32(va) - int32(vb)
}
