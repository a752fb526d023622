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

// Package harness runs the benchmark suite across a set of workers.
//
// Run partitions memory per worker and kernel, initialises every worker
// concurrently, calibrates the iteration count when none is given, times
// the parallel run on a persistent worker pool and validates the resulting
// checksums against the known profiles.
package harness
