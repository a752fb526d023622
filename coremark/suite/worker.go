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
	"errors"
	"fmt"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/contrib/list"
	"github.com/ajroetker/go-coremark/coremark/contrib/matrix"
	"github.com/ajroetker/go-coremark/coremark/contrib/state"
)

var (
	// ErrUnknownKernel is returned for masks with unknown or no kernel bits.
	ErrUnknownKernel = errors.New("suite: unknown kernel")

	// ErrListRequired is returned when the list kernel is not enabled; it
	// drives every iteration.
	ErrListRequired = errors.New("suite: list kernel is required")

	// ErrNotInitialized is returned by Iterate before the list is built.
	ErrNotInitialized = errors.New("suite: list kernel not initialized")
)

// Checksums are a worker's results.
type Checksums struct {
	// Final folds every pass of every iteration.
	Final uint16
	// List is Final after the first iteration.
	List uint16
	// Matrix is the first non-zero matrix kernel result.
	Matrix uint16
	// State is the first non-zero state kernel result.
	State uint16
}

// Worker is one independent benchmark context.
type Worker struct {
	seeds     coremark.Seeds
	kernels   coremark.Kernels
	blockSize int

	list *list.Arena
	head list.NodeID
	mat  *matrix.Params
	buf  []byte

	crc       uint16
	crcList   uint16
	crcMatrix uint16
	crcState  uint16

	// dispatches counts kernel invocations made by Resolve.
	dispatches int
}

// NewWorker returns a worker for the given seeds and kernels. blockSize is
// the number of bytes each kernel receives.
func NewWorker(seeds coremark.Seeds, kernels coremark.Kernels, blockSize int) (*Worker, error) {
	if !kernels.Valid() {
		return nil, fmt.Errorf("%w: mask %#x", ErrUnknownKernel, uint32(kernels))
	}
	if !kernels.Has(coremark.KernelList) {
		return nil, ErrListRequired
	}
	return &Worker{
		seeds:     seeds,
		kernels:   kernels,
		blockSize: blockSize,
		head:      list.Nil,
	}, nil
}

// Seeds returns the worker's seeds.
func (w *Worker) Seeds() coremark.Seeds {
	return w.seeds
}

// Kernels returns the enabled kernels.
func (w *Worker) Kernels() coremark.Kernels {
	return w.kernels
}

// BlockSize returns the per-kernel block size.
func (w *Worker) BlockSize() int {
	return w.blockSize
}

// RegionKernels returns the kernels of k that keep their workload in a
// caller-supplied region. The list kernel is not among them: its pools live
// in an arena sized from the block size.
func RegionKernels(k coremark.Kernels) coremark.Kernels {
	return k &^ coremark.KernelList
}

// Init builds one kernel's workload.
//
// The list kernel ignores region and may be given nil. The matrix kernel
// places its matrices inside region and the state kernel uses region as its
// token buffer; for them region must hold at least BlockSize bytes, only the
// first BlockSize are used, and region must stay untouched by anyone else
// while the worker is in use.
func (w *Worker) Init(kernel coremark.Kernels, region []byte) error {
	if kernel == coremark.KernelList {
		a, head, err := list.New(w.blockSize, w.seeds.Seed1)
		if err != nil {
			return fmt.Errorf("init list: %w", err)
		}
		w.list, w.head = a, head
		return nil
	}

	if len(region) < w.blockSize {
		return fmt.Errorf("suite: %v region is %d bytes, want %d", kernel, len(region), w.blockSize)
	}
	region = region[:w.blockSize]

	switch kernel {
	case coremark.KernelMatrix:
		p, err := matrix.Init(region, w.seeds.MatrixSeed())
		if err != nil {
			return fmt.Errorf("init matrix: %w", err)
		}
		w.mat = p
	case coremark.KernelState:
		if err := state.Init(region, w.seeds.Seed1); err != nil {
			return fmt.Errorf("init state: %w", err)
		}
		w.buf = region
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKernel, kernel)
	}
	return nil
}

// InitAll initialises every enabled kernel. The region-backed kernels (see
// RegionKernels) receive consecutive stride-sized slices of region in kernel
// order, so region needs stride bytes per region-backed kernel.
func (w *Worker) InitAll(region []byte, stride int) error {
	if stride < w.blockSize {
		return fmt.Errorf("suite: stride %d below block size %d", stride, w.blockSize)
	}
	j := 0
	for _, k := range w.kernels.Each() {
		if RegionKernels(k) == 0 {
			if err := w.Init(k, nil); err != nil {
				return err
			}
			continue
		}
		lo := j * stride
		j++
		if lo+w.blockSize > len(region) {
			return fmt.Errorf("suite: region of %d bytes too small for %v", len(region), w.kernels)
		}
		if err := w.Init(k, region[lo:lo+w.blockSize]); err != nil {
			return err
		}
	}
	return nil
}

// Checksums returns the current checksums.
func (w *Worker) Checksums() Checksums {
	return Checksums{
		Final:  w.crc,
		List:   w.crcList,
		Matrix: w.crcMatrix,
		State:  w.crcState,
	}
}
