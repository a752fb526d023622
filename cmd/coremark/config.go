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
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/ajroetker/go-coremark/coremark/harness"
)

type fileConfig struct {
	Seed1       int64  `toml:"seed1"`
	Seed2       int64  `toml:"seed2"`
	Seed3       int64  `toml:"seed3"`
	Iterations  int64  `toml:"iterations"`
	Kernels     string `toml:"kernels"`
	Size        int64  `toml:"size"`
	Workers     int    `toml:"workers"`
	MinDuration string `toml:"min_duration"`
	LogLevel    string `toml:"log_level"`
}

// settings is everything the command resolves before running.
type settings struct {
	run      harness.Config
	logLevel string
}

// loadConfigFile applies the keys defined in the TOML file at path to s.
func loadConfigFile(path string, s *settings) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("seed1") {
		s.run.Seeds.Seed1 = int16(raw.Seed1)
	}
	if meta.IsDefined("seed2") {
		s.run.Seeds.Seed2 = int16(raw.Seed2)
	}
	if meta.IsDefined("seed3") {
		s.run.Seeds.Seed3 = int16(raw.Seed3)
	}
	if meta.IsDefined("iterations") {
		if raw.Iterations < 0 {
			return fmt.Errorf("parse iterations: negative value %d", raw.Iterations)
		}
		s.run.Iterations = uint32(raw.Iterations)
	}
	if meta.IsDefined("kernels") {
		k, err := parseKernels(strings.TrimSpace(raw.Kernels))
		if err != nil {
			return fmt.Errorf("parse kernels: %w", err)
		}
		s.run.Kernels = k
	}
	if meta.IsDefined("size") {
		s.run.Size = int(raw.Size)
	}
	if meta.IsDefined("workers") {
		s.run.Workers = raw.Workers
	}
	if meta.IsDefined("min_duration") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.MinDuration))
		if err != nil {
			return fmt.Errorf("parse min_duration: %w", err)
		}
		s.run.MinDuration = d
	}
	if meta.IsDefined("log_level") {
		s.logLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}
