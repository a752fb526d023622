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

package list

// MergeSort sorts the chain starting at list with cmp and returns the new
// head. Passes double the run length until a pass performs at most one
// merge. Ties keep the left run first.
func (a *Arena) MergeSort(list NodeID, cmp Compare) NodeID {
	insize := 1

	for {
		p := list
		list = Nil
		tail := Nil
		nmerges := 0

		for p != Nil {
			nmerges++
			q := p
			psize := 0
			for range insize {
				psize++
				q = a.next[q]
				if q == Nil {
					break
				}
			}

			qsize := insize
			for psize > 0 || (qsize > 0 && q != Nil) {
				var e NodeID
				switch {
				case psize == 0:
					e = q
					q = a.next[q]
					qsize--
				case qsize == 0 || q == Nil:
					e = p
					p = a.next[p]
					psize--
				case cmp(a.Info(p), a.Info(q)) <= 0:
					e = p
					p = a.next[p]
					psize--
				default:
					e = q
					q = a.next[q]
					qsize--
				}

				if tail != Nil {
					a.next[tail] = e
				} else {
					list = e
				}
				tail = e
			}

			p = q
		}

		if tail != Nil {
			a.next[tail] = Nil
		}

		if nmerges <= 1 {
			return list
		}

		insize *= 2
	}
}
