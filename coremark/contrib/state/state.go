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

package state

import (
	"errors"

	"github.com/ajroetker/go-coremark/coremark"
)

// State is a scanner state.
type State uint8

const (
	Start State = iota
	Invalid
	Sign1
	Sign2
	Int
	Float
	Exponent
	Scientific

	// NumStates is the size of the count tables.
	NumStates
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Start:
		return "start"
	case Invalid:
		return "invalid"
	case Sign1:
		return "sign1"
	case Sign2:
		return "sign2"
	case Int:
		return "int"
	case Float:
		return "float"
	case Exponent:
		return "exponent"
	case Scientific:
		return "scientific"
	default:
		return "unknown"
	}
}

// Counts is a per-state counter table.
type Counts [NumStates]uint32

// MinStep is the smallest corruption stride the benchmark driver uses.
const MinStep = 0x22

// ErrBlockTooSmall is returned when a buffer cannot hold a single token.
var ErrBlockTooSmall = errors.New("state: block too small")

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Transition classifies the token starting at buf[pos] and returns its final
// state together with the position where the next token starts.
//
// Scanning ends at a comma (which is consumed), at a zero byte, at the end of
// buf, or immediately after the first character that moves the machine into
// Invalid; in the last case the remainder of the malformed token is picked up
// by the next call. Every counted transition increments transitions at the
// state it leaves (Start also counts the Invalid it falls into, and
// Scientific counts its exit under Invalid).
func Transition(buf []byte, pos int, transitions *Counts) (State, int) {
	state := Start
	for pos < len(buf) && buf[pos] != 0 && state != Invalid {
		c := buf[pos]
		pos++
		if c == ',' {
			break
		}
		switch state {
		case Start:
			switch {
			case isDigit(c):
				state = Int
			case c == '+' || c == '-':
				state = Sign1
			case c == '.':
				state = Float
			default:
				state = Invalid
				transitions[Invalid]++
			}
			transitions[Start]++
		case Sign1:
			switch {
			case isDigit(c):
				state = Int
			case c == '.':
				state = Float
			default:
				state = Invalid
			}
			transitions[Sign1]++
		case Int:
			if c == '.' {
				state = Float
				transitions[Int]++
			} else if !isDigit(c) {
				state = Invalid
				transitions[Int]++
			}
		case Float:
			if c == 'E' || c == 'e' {
				state = Sign2
				transitions[Float]++
			} else if !isDigit(c) {
				state = Invalid
				transitions[Float]++
			}
		case Sign2:
			if c == '+' || c == '-' {
				state = Exponent
			} else {
				state = Invalid
			}
			transitions[Sign2]++
		case Exponent:
			if isDigit(c) {
				state = Scientific
			} else {
				state = Invalid
			}
			transitions[Exponent]++
		case Scientific:
			if !isDigit(c) {
				state = Invalid
				transitions[Invalid]++
			}
		}
	}
	return state, pos
}

// scan runs Transition over buf until the terminator, accumulating into
// both tables.
func scan(buf []byte, finals, transitions *Counts) {
	pos := 0
	for pos < len(buf) && buf[pos] != 0 {
		var s State
		s, pos = Transition(buf, pos, transitions)
		finals[s]++
	}
}

// corrupt XORs every step-th byte of buf that is not a comma with mask.
func corrupt(buf []byte, mask byte, step int) {
	for i := 0; i < len(buf); i += step {
		if buf[i] != ',' {
			buf[i] ^= mask
		}
	}
}

// Bench runs the two-pass scan described in the package documentation and
// folds the final and transition count tables into crc, pairwise per state.
// step must be positive.
func Bench(buf []byte, seed1, seed2, step int16, crc uint16) uint16 {
	var finals, transitions Counts

	scan(buf, &finals, &transitions)
	corrupt(buf, byte(seed1), int(step))
	scan(buf, &finals, &transitions)
	corrupt(buf, byte(seed2), int(step))

	for i := range NumStates {
		crc = coremark.FoldU32(finals[i], crc)
		crc = coremark.FoldU32(transitions[i], crc)
	}
	return crc
}
