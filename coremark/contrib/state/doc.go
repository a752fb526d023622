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

// Package state implements the token-classifying finite-state machine
// workload.
//
// # Input
//
// Init fills a byte buffer with comma-separated synthetic numbers drawn from
// four fixed pattern sets (integers, floats, scientific notation and
// deliberately malformed tokens), followed by zero padding:
//
//	5012,1234,-874,35.54400,5.500e+3,T0.3e-1F,...\x00\x00
//
// # Algorithm
//
// Bench scans the buffer token by token with Transition, counting both the
// final state of each token and every transition taken. It then XORs every
// step-th byte (commas excepted) with seed1, scans again with the counters
// still accumulating, XORs the same bytes with seed2 and folds both count
// tables into the running CRC. The buffer only returns to its original
// contents when seed1 == seed2.
//
// # Example Usage
//
//	buf := make([]byte, 666)
//	state.Init(buf, seed1)
//	crc = state.Bench(buf, seed1, seed2, 0x22, crc)
package state
