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

// Package suite drives the benchmark workloads for one worker.
//
// A Worker owns its seeds, its kernel data and four running checksums. The
// list kernel drives every iteration: each pass searches, reverses and
// re-sorts the list, and the sort comparator reaches the matrix and state
// kernels through a small opcode interpreter (Worker.Resolve) keyed by each
// payload's Data16 field. Every kernel result is folded into the worker's
// running CRC, so one 16-bit value fingerprints the whole run.
//
// Workers share nothing. Running several at once is safe as long as each
// has its own memory region.
//
// # Example Usage
//
//	w, err := suite.NewWorker(seeds, coremark.AllKernels, 666)
//	for j, k := range coremark.AllKernels.Each() {
//	    err = w.Init(k, region[j*666:(j+1)*666])
//	}
//	sums := w.Iterate(1)
package suite
