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

import "strings"

// Kernels is a bitmask selecting which workloads a run executes.
type Kernels uint32

const (
	// KernelList selects the linked-list engine. It drives every iteration
	// and reaches the other kernels through its comparator.
	KernelList Kernels = 1 << iota

	// KernelMatrix selects the matrix kernel.
	KernelMatrix

	// KernelState selects the state-machine kernel.
	KernelState

	// AllKernels selects every workload.
	AllKernels = KernelList | KernelMatrix | KernelState
)

// NumKernels is the number of distinct workloads.
const NumKernels = 3

// Has reports whether every kernel in k2 is enabled in k.
func (k Kernels) Has(k2 Kernels) bool {
	return k&k2 == k2
}

// Count returns the number of enabled kernels.
func (k Kernels) Count() int {
	n := 0
	for i := range NumKernels {
		if k&(1<<i) != 0 {
			n++
		}
	}
	return n
}

// Each returns the enabled kernels in initialisation order.
func (k Kernels) Each() []Kernels {
	var out []Kernels
	for i := range NumKernels {
		if bit := Kernels(1 << i); k&bit != 0 {
			out = append(out, bit)
		}
	}
	return out
}

// Valid reports whether k names at least one kernel and no unknown bits.
func (k Kernels) Valid() bool {
	return k != 0 && k&^AllKernels == 0
}

// String returns a human-readable list such as "list|matrix".
func (k Kernels) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for _, bit := range k.Each() {
		switch bit {
		case KernelList:
			parts = append(parts, "list")
		case KernelMatrix:
			parts = append(parts, "matrix")
		case KernelState:
			parts = append(parts, "state")
		}
	}
	if k&^AllKernels != 0 {
		parts = append(parts, "unknown")
	}
	return strings.Join(parts, "|")
}

// Seeds are the three 16-bit inputs that make a run reproducible.
//
// Seed1 and Seed2 initialise the workloads and drive the state-machine
// corruption; Seed3 sets the number of list searches per pass.
type Seeds struct {
	Seed1 int16
	Seed2 int16
	Seed3 int16
}

// MatrixSeed packs Seed1 and Seed2 into the 32-bit matrix initialiser.
// Seed1 is sign-extended before the OR, as in the reference runs.
func (s Seeds) MatrixSeed() int32 {
	return int32(s.Seed1) | int32(s.Seed2)<<16
}
