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
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-coremark/coremark"
	"github.com/ajroetker/go-coremark/coremark/harness"
)

var errBadValue = errors.New("invalid numeric value")

// ParseValue parses a numeric argument: an optional '-', an optional "0x"
// prefix selecting hex digits, the digits themselves and an optional K
// (x1024) or M (x1024*1024) suffix. Arithmetic wraps at 32 bits.
func ParseValue(s string) (int32, error) {
	rest := s
	neg := false
	if strings.HasPrefix(rest, "-") {
		neg = true
		rest = rest[1:]
	}
	base := uint32(10)
	if strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X") {
		base = 16
		rest = rest[2:]
	}

	var v uint32
	digits := 0
	for ; digits < len(rest); digits++ {
		d, ok := digitValue(rest[digits], base)
		if !ok {
			break
		}
		v = v*base + d
	}
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", errBadValue, s)
	}

	switch rest[digits:] {
	case "":
	case "K":
		v *= 1024
	case "M":
		v *= 1024 * 1024
	default:
		return 0, fmt.Errorf("%w: %q", errBadValue, s)
	}
	if neg {
		v = -v
	}
	return int32(v), nil
}

func digitValue(c byte, base uint32) (uint32, bool) {
	var d uint32
	switch {
	case c >= '0' && c <= '9':
		d = uint32(c - '0')
	case c >= 'a' && c <= 'f':
		d = uint32(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = uint32(c-'A') + 10
	default:
		return 0, false
	}
	return d, d < base
}

// parseKernels accepts either a numeric mask or a list of kernel names
// separated by ',' or '|'.
func parseKernels(s string) (coremark.Kernels, error) {
	if v, err := ParseValue(s); err == nil {
		return coremark.Kernels(uint32(v)), nil
	}
	var k coremark.Kernels
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "list":
			k |= coremark.KernelList
		case "matrix":
			k |= coremark.KernelMatrix
		case "state":
			k |= coremark.KernelState
		case "all":
			k |= coremark.AllKernels
		default:
			return 0, fmt.Errorf("unknown kernel %q", name)
		}
	}
	if k == 0 {
		return 0, fmt.Errorf("no kernels in %q", s)
	}
	return k, nil
}

// applyPositional reads the classic positional arguments
// [seed1 [seed2 [seed3 [iterations [kernels [_ [size]]]]]]] into cfg. The
// sixth argument is accepted and ignored.
func applyPositional(args []string, cfg *harness.Config) error {
	if len(args) > 7 {
		return fmt.Errorf("too many arguments: %d", len(args))
	}
	for i, arg := range args {
		v, err := ParseValue(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		switch i {
		case 0:
			cfg.Seeds.Seed1 = int16(v)
		case 1:
			cfg.Seeds.Seed2 = int16(v)
		case 2:
			cfg.Seeds.Seed3 = int16(v)
		case 3:
			cfg.Iterations = uint32(v)
		case 4:
			cfg.Kernels = coremark.Kernels(uint32(v))
		case 6:
			// Non-positive sizes keep the default, as with an absent argument.
			if v > 0 {
				cfg.Size = int(v)
			}
		}
	}
	return nil
}
