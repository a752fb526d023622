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

// Package matrix implements the fixed-size integer matrix workload.
//
// # Layout
//
// Two N×N int16 input matrices (A and B) and one N×N int32 accumulator (C)
// are laid out as views into a single caller-owned byte region, row-major,
// with A starting at the first 4-byte aligned offset. N is the largest size
// for which N*N*8 stays below the region size.
//
// # Operations
//
//   - AddConst: A += val (int16 wraparound)
//   - MulConst: C = A * val
//   - MulVect: C[0:N] = A * B[0:N] (the rest of C keeps its previous contents)
//   - MulMatrix: C = A × B
//   - MulMatrixBitExtract: C = Σ f(A[i][k]*B[k][j]) with a masked non-linear f
//   - Sum: clipped, reset-on-overflow reduction of C to an int16 score
//
// Test runs all of them against a perturbed A and restores A afterwards, so
// repeated calls see identical inputs.
//
// # Example Usage
//
//	p, err := matrix.Init(region, seeds.MatrixSeed())
//	crc = p.Bench(seed, crc)
package matrix
