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

// Package coremark provides the shared building blocks of a deterministic,
// checksum-verified CPU benchmark.
//
// The benchmark runs three small integer workloads (a linked-list engine, a
// fixed-size matrix kernel and a token-classifying state machine) over a
// fixed amount of working memory and folds every result into a 16-bit
// fingerprint. Identical seeds always produce identical fingerprints, so the
// fingerprint doubles as a correctness check for the processor under test.
//
// # Subpackages
//
//   - contrib/list: index-addressed linked list with bottom-up mergesort
//   - contrib/matrix: N×N int16/int32 matrix operations and clipped reduction
//   - contrib/state: comma-separated token generator and number-format FSM
//   - contrib/workerpool: persistent pool running one benchmark worker per slot
//   - suite: per-worker state, opcode interpreter and iteration driver
//   - harness: memory partitioning, calibration, timing and validation
//
// # Checksums
//
// All kernels fold their output with the same bit-serial CRC16:
//
//	crc := coremark.FoldU16(0x1234, 0)
//	crc = coremark.FoldU32(0xdeadbeef, crc)
//
// Values are folded low byte first. The polynomial and bit order are fixed;
// changing either breaks every published reference checksum.
package coremark
