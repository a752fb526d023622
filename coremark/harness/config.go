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

package harness

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/suite"
)

const (
	// DefaultSize is the memory given to each worker when Config.Size is 0.
	DefaultSize = 2000

	// DefaultMinDuration is the shortest timed run that counts as valid.
	DefaultMinDuration = 10 * time.Second

	// regionAlign is the alignment of each kernel slice inside a worker's
	// region.
	regionAlign = 8
)

var (
	// ErrNoKernels is returned when the kernel mask selects no known kernel.
	ErrNoKernels = errors.New("harness: no kernels selected")

	// ErrInsufficientMemory is returned when the requested regions exceed
	// the physical memory of the machine.
	ErrInsufficientMemory = errors.New("harness: insufficient memory")
)

// Config describes one benchmark run.
type Config struct {
	Seeds coremark.Seeds

	// Iterations per worker; 0 calibrates.
	Iterations uint32

	// Kernels selects the kernels to run; 0 selects all of them.
	Kernels coremark.Kernels

	// Size is the total memory per worker in bytes, shared evenly among
	// the enabled kernels; 0 uses DefaultSize.
	Size int

	// Workers is the number of parallel workers; 0 uses GOMAXPROCS.
	Workers int

	// MinDuration is the shortest valid timed run; 0 uses
	// DefaultMinDuration.
	MinDuration time.Duration
}

// Normalize returns c with every zero field replaced by its default and the
// two well-known seed shorthands expanded.
func (c Config) Normalize() Config {
	switch c.Seeds {
	case coremark.Seeds{}:
		c.Seeds = coremark.Seeds{Seed1: 0, Seed2: 0, Seed3: 0x66}
	case coremark.Seeds{Seed1: 1}:
		c.Seeds = coremark.Seeds{Seed1: 0x3415, Seed2: 0x3415, Seed3: 0x66}
	}
	if c.Kernels == 0 {
		c.Kernels = coremark.AllKernels
	}
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.MinDuration <= 0 {
		c.MinDuration = DefaultMinDuration
	}
	return c
}

// Validate reports configurations Run cannot execute.
func (c Config) Validate() error {
	if c.Kernels&coremark.AllKernels == 0 {
		return fmt.Errorf("%w: mask %#x", ErrNoKernels, uint32(c.Kernels))
	}
	if !c.Kernels.Valid() {
		return fmt.Errorf("harness: kernel mask %#x has unknown bits", uint32(c.Kernels))
	}
	if c.BlockSize() <= 0 {
		return fmt.Errorf("harness: size %d too small for %d kernels", c.Size, c.Kernels.Count())
	}
	if c.Workers <= 0 {
		return fmt.Errorf("harness: invalid worker count %d", c.Workers)
	}
	return nil
}

// BlockSize returns the bytes given to each enabled kernel.
func (c Config) BlockSize() int {
	n := c.Kernels.Count()
	if n == 0 {
		return 0
	}
	return c.Size / n
}

// Stride returns the distance between consecutive kernel slices of a
// worker's region.
func (c Config) Stride() int {
	return (c.BlockSize() + regionAlign - 1) &^ (regionAlign - 1)
}

// RegionSize returns the bytes allocated per worker: one stride for each
// kernel that works inside the region.
func (c Config) RegionSize() int {
	return c.Stride() * suite.RegionKernels(c.Kernels).Count()
}
