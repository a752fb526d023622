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
	"fmt"

	"github.com/ajroetker/go-coremark/coremark"
)

// Profile is a seed and block-size combination with published checksums.
type Profile struct {
	Name    string
	SeedCRC uint16
	Seeds   coremark.Seeds
	// BlockSize is the per-kernel block size.
	BlockSize int
	// Known holds the reference List, Matrix and State checksums; Final
	// depends on the iteration count and is not compared.
	Known Checksums
	// Scored marks the profile whose iterations per second is the headline
	// score.
	Scored bool
}

// Profiles lists every known-answer combination.
var Profiles = []Profile{
	{
		Name:      "6k performance",
		SeedCRC:   0x8a02,
		Seeds:     coremark.Seeds{Seed1: 0, Seed2: 0, Seed3: 0x66},
		BlockSize: 2000,
		Known:     Checksums{List: 0xd4b0, Matrix: 0xbe52, State: 0x5e47},
	},
	{
		Name:      "6k validation",
		SeedCRC:   0x7b05,
		Seeds:     coremark.Seeds{Seed1: 0x3415, Seed2: 0x3415, Seed3: 0x66},
		BlockSize: 2000,
		Known:     Checksums{List: 0x3340, Matrix: 0x1199, State: 0x39bf},
	},
	{
		Name:      "profile generation",
		SeedCRC:   0x4eaf,
		Seeds:     coremark.Seeds{Seed1: 0x8, Seed2: 0x8, Seed3: 0x8},
		BlockSize: 400,
		Known:     Checksums{List: 0x6a79, Matrix: 0x5608, State: 0xe5a4},
	},
	{
		Name:      "2K performance",
		SeedCRC:   0xe9f5,
		Seeds:     coremark.Seeds{Seed1: 0, Seed2: 0, Seed3: 0x66},
		BlockSize: 666,
		Known:     Checksums{List: 0xe714, Matrix: 0x1fd7, State: 0x8e3a},
		Scored:    true,
	},
	{
		Name:      "2K validation",
		SeedCRC:   0x18f2,
		Seeds:     coremark.Seeds{Seed1: 0x3415, Seed2: 0x3415, Seed3: 0x66},
		BlockSize: 666,
		Known:     Checksums{List: 0xe3c1, Matrix: 0x0747, State: 0x8d84},
	},
}

// SeedCRC fingerprints a run's inputs: the three seeds and the per-kernel
// block size truncated to 16 bits.
func SeedCRC(seeds coremark.Seeds, blockSize int) uint16 {
	var crc uint16
	crc = coremark.FoldI16(seeds.Seed1, crc)
	crc = coremark.FoldI16(seeds.Seed2, crc)
	crc = coremark.FoldI16(seeds.Seed3, crc)
	crc = coremark.FoldI16(int16(blockSize), crc)
	return crc
}

// LookupProfile returns the profile matching the inputs' fingerprint.
func LookupProfile(seeds coremark.Seeds, blockSize int) (*Profile, bool) {
	crc := SeedCRC(seeds, blockSize)
	for i := range Profiles {
		if Profiles[i].SeedCRC == crc {
			return &Profiles[i], true
		}
	}
	return nil, false
}

// Mismatch is a checksum that differs from its reference value.
type Mismatch struct {
	Worker int
	Kernel coremark.Kernels
	Got    uint16
	Want   uint16
}

// Error implements error.
func (m Mismatch) Error() string {
	return fmt.Sprintf("[%d] %v crc 0x%04x - should be 0x%04x", m.Worker, m.Kernel, m.Got, m.Want)
}

// Validate compares the checksums of the enabled kernels with the reference
// values.
func (p *Profile) Validate(worker int, kernels coremark.Kernels, got Checksums) []Mismatch {
	var out []Mismatch
	check := func(k coremark.Kernels, got, want uint16) {
		if kernels.Has(k) && got != want {
			out = append(out, Mismatch{Worker: worker, Kernel: k, Got: got, Want: want})
		}
	}
	check(coremark.KernelList, got.List, p.Known.List)
	check(coremark.KernelMatrix, got.Matrix, p.Known.Matrix)
	check(coremark.KernelState, got.State, p.Known.State)
	return out
}
