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

package coremark

// crcFeedback is XORed into the register before the shift whenever the
// incoming bit differs from the register's low bit.
const crcFeedback = 0x4002

// FoldU8 folds one byte into crc, least significant bit first.
func FoldU8(data uint8, crc uint16) uint16 {
	for range 8 {
		x16 := (data & 1) ^ uint8(crc&1)
		data >>= 1

		if x16 == 1 {
			crc ^= crcFeedback
			crc >>= 1
			crc |= 0x8000
		} else {
			crc >>= 1
			crc &= 0x7fff
		}
	}
	return crc
}

// FoldU16 folds the low byte of v, then the high byte.
func FoldU16(v uint16, crc uint16) uint16 {
	crc = FoldU8(uint8(v), crc)
	crc = FoldU8(uint8(v>>8), crc)
	return crc
}

// FoldI16 folds the two's-complement bit pattern of v.
func FoldI16(v int16, crc uint16) uint16 {
	return FoldU16(uint16(v), crc)
}

// FoldU32 folds the low half of v, then the high half.
func FoldU32(v uint32, crc uint16) uint16 {
	crc = FoldI16(int16(v), crc)
	crc = FoldI16(int16(v>>16), crc)
	return crc
}

// FoldBytes folds every byte of data in order. It is a convenience for
// tests and reports; the kernels fold fixed-width values directly.
func FoldBytes(data []byte, crc uint16) uint16 {
	for _, b := range data {
		crc = FoldU8(b, crc)
	}
	return crc
}
