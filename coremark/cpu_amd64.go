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

//go:build amd64

package coremark

import "golang.org/x/sys/cpu"

func init() {
	flags := []struct {
		name string
		ok   bool
	}{
		{"sse2", cpu.X86.HasSSE2},
		{"sse41", cpu.X86.HasSSE41},
		{"popcnt", cpu.X86.HasPOPCNT},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"bmi2", cpu.X86.HasBMI2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
	}
	for _, f := range flags {
		if f.ok {
			cpuFeatures = append(cpuFeatures, f.name)
		}
	}

	switch {
	case cpu.X86.HasAVX512F:
		cpuName = "avx512"
	case cpu.X86.HasAVX2:
		cpuName = "avx2"
	default:
		// SSE2 is part of the amd64 baseline.
		cpuName = "sse2"
	}
}
