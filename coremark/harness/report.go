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
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/suite"
)

// Report is the outcome of Run.
type Report struct {
	// Config is the normalized configuration that ran.
	Config Config

	// Iterations is the per-worker iteration count of the timed run.
	Iterations uint32
	Elapsed    time.Duration

	SeedCRC uint16
	// Profile is the known profile matching the run, or nil.
	Profile *suite.Profile

	// Results holds one entry per worker.
	Results    []suite.Checksums
	Mismatches []suite.Mismatch

	// TooShort is set when Elapsed is below Config.MinDuration.
	TooShort bool

	// Platform names the OS, architecture, CPU level and feature flags.
	Platform string
	// TotalMemory is the physical memory in bytes, or 0 when unknown.
	TotalMemory uint64
}

func (r *Report) validate() {
	r.TooShort = r.Elapsed < r.Config.MinDuration
	if r.Profile == nil {
		return
	}
	r.Mismatches = lo.Flatten(lo.Map(r.Results, func(c suite.Checksums, i int) []suite.Mismatch {
		return r.Profile.Validate(i, r.Config.Kernels, c)
	}))
}

// TotalIterations is the iteration count summed over all workers.
func (r *Report) TotalIterations() uint64 {
	return uint64(len(r.Results)) * uint64(r.Iterations)
}

// IterationsPerSecond returns the aggregate throughput, or 0 when no time
// was measured.
func (r *Report) IterationsPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.TotalIterations()) / secs
}

// Errors counts checksum mismatches plus one for a run that was too short.
func (r *Report) Errors() int {
	n := len(r.Mismatches)
	if r.TooShort {
		n++
	}
	return n
}

// Validated reports whether the run matched a known profile without errors.
func (r *Report) Validated() bool {
	return r.Profile != nil && r.Errors() == 0
}

// Score returns the headline score, which exists only for validated runs of
// the scored profile.
func (r *Report) Score() (float64, bool) {
	if !r.Validated() || !r.Profile.Scored {
		return 0, false
	}
	return r.IterationsPerSecond(), true
}

// Consistent reports whether every worker produced the same checksums.
func (r *Report) Consistent() bool {
	return len(lo.Uniq(r.Results)) <= 1
}

// KernelChecksums returns the per-worker checksum of kernel k, or nil when k
// did not run.
func (r *Report) KernelChecksums(k coremark.Kernels) []uint16 {
	if !r.Config.Kernels.Has(k) {
		return nil
	}
	return lo.Map(r.Results, func(c suite.Checksums, _ int) uint16 {
		switch k {
		case coremark.KernelList:
			return c.List
		case coremark.KernelMatrix:
			return c.Matrix
		case coremark.KernelState:
			return c.State
		}
		return c.Final
	})
}
