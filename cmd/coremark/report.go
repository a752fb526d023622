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

package main

import (
	"fmt"
	"io"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/harness"
)

// printReport writes r in the classic CoreMark console layout.
func printReport(w io.Writer, r *harness.Report) {
	if r.Profile != nil {
		fmt.Fprintf(w, "%s run parameters for coremark.\n", r.Profile.Name)
	}
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "[%d]ERROR! %v crc 0x%04x - should be 0x%04x\n", m.Worker, m.Kernel, m.Got, m.Want)
	}

	secs := r.Elapsed.Seconds()
	fmt.Fprintf(w, "CoreMark Size    : %d\n", r.Config.BlockSize())
	fmt.Fprintf(w, "Total time (secs): %f\n", secs)
	if secs > 0 {
		fmt.Fprintf(w, "Iterations/Sec   : %f\n", r.IterationsPerSecond())
	}
	if r.TooShort {
		fmt.Fprintf(w, "ERROR! Must execute for at least %v for a valid result!\n", r.Config.MinDuration)
	}
	fmt.Fprintf(w, "Iterations       : %d\n", r.TotalIterations())
	fmt.Fprintf(w, "Parallel threads : %d\n", len(r.Results))
	fmt.Fprintf(w, "Platform         : %s\n", r.Platform)
	if r.TotalMemory > 0 {
		fmt.Fprintf(w, "Total memory     : %d MiB\n", r.TotalMemory>>20)
	}
	fmt.Fprintf(w, "seedcrc          : 0x%04x\n", r.SeedCRC)

	kernels := r.Config.Kernels
	for i, c := range r.Results {
		if kernels.Has(coremark.KernelList) {
			fmt.Fprintf(w, "[%d]crclist       : 0x%04x\n", i, c.List)
		}
		if kernels.Has(coremark.KernelMatrix) {
			fmt.Fprintf(w, "[%d]crcmatrix     : 0x%04x\n", i, c.Matrix)
		}
		if kernels.Has(coremark.KernelState) {
			fmt.Fprintf(w, "[%d]crcstate      : 0x%04x\n", i, c.State)
		}
		fmt.Fprintf(w, "[%d]crcfinal      : 0x%04x\n", i, c.Final)
	}

	switch {
	case r.Validated():
		fmt.Fprintln(w, "Correct operation validated.")
		if score, ok := r.Score(); ok {
			fmt.Fprintf(w, "CoreMark 1.0 : %f\n", score)
		}
	case r.Errors() > 0:
		fmt.Fprintln(w, "Errors detected")
	}
	if r.Profile == nil {
		fmt.Fprintln(w, "Cannot validate operation for these seed values, please compare with results on a known platform.")
	}
}
