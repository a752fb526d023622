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

import (
	"runtime"
	"strings"
)

// cpuName is the widest instruction-set level reported by the CPU.
// Set by init() in cpu_*.go files.
var cpuName string

// cpuFeatures lists the feature flags worth printing next to a score.
// Set by init() in cpu_*.go files.
var cpuFeatures []string

// CPUName returns a short name for the widest instruction set detected,
// for example "avx2", "neon" or "generic". Kernels are scalar integer code
// and do not depend on it; it is reported so scores can be compared.
func CPUName() string {
	return cpuName
}

// CPUFeatures returns the detected feature flags.
func CPUFeatures() []string {
	out := make([]string, len(cpuFeatures))
	copy(out, cpuFeatures)
	return out
}

// Platform returns "GOOS/GOARCH cpuName [features]" for report headers.
func Platform() string {
	var b strings.Builder
	b.WriteString(runtime.GOOS)
	b.WriteByte('/')
	b.WriteString(runtime.GOARCH)
	b.WriteByte(' ')
	b.WriteString(cpuName)
	if len(cpuFeatures) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(cpuFeatures, ","))
		b.WriteByte(']')
	}
	return b.String()
}
