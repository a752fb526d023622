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

package state

import "fmt"

// Token tables. Every float, scientific and invalid pattern is eight bytes
// wide and every integer four, so the generated layout depends only on the
// seed and the buffer size.
var (
	intPatterns   = [4]string{"5012", "1234", "-874", "+122"}
	floatPatterns = [4]string{"35.54400", ".1234500", "-110.700", "+0.64400"}
	sciPatterns   = [4]string{"5.500e+3", "-.123e-2", "-87e+832", "+0.6e-12"}
	errPatterns   = [4]string{"T0.3e-1F", "-T.T++Tq", "1T3.4e4z", "34.0e-T^"}
)

// pattern picks the token for a given seed value.
func pattern(seed int16) string {
	sel := (seed >> 3) & 0x3
	switch seed & 0x7 {
	case 0, 1, 2:
		return intPatterns[sel]
	case 3, 4:
		return floatPatterns[sel]
	case 5, 6:
		return sciPatterns[sel]
	default:
		return errPatterns[sel]
	}
}

// Init fills buf with comma-terminated tokens chosen by successive seed
// values and zeroes the remainder. The last byte of buf is always zero.
//
// A token is only written once the following one has been chosen and the
// pair still fits, so the tail of buf may hold fewer bytes than the next
// token would need.
func Init(buf []byte, seed int16) error {
	if len(buf) < 1 {
		return fmt.Errorf("%w: %d bytes", ErrBlockTooSmall, len(buf))
	}
	limit := len(buf) - 1
	total := 0
	next := ""
	for total+len(next)+1 < limit {
		if len(next) > 0 {
			total += copy(buf[total:], next)
			buf[total] = ','
			total++
		}
		seed++
		next = pattern(seed)
	}
	clear(buf[total:])
	return nil
}
