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

import "time"

// Timer measures wall-clock time around the timed region.
type Timer struct {
	start, stop time.Time
}

// Start records the start of the timed region.
func (t *Timer) Start() {
	t.start = time.Now()
	t.stop = time.Time{}
}

// Stop records the end of the timed region.
func (t *Timer) Stop() {
	t.stop = time.Now()
}

// Elapsed returns the time between Start and Stop, or since Start when the
// timer is still running.
func (t *Timer) Elapsed() time.Duration {
	if t.start.IsZero() {
		return 0
	}
	if t.stop.IsZero() {
		return time.Since(t.start)
	}
	return t.stop.Sub(t.start)
}

// Seconds is Elapsed in seconds.
func (t *Timer) Seconds() float64 {
	return t.Elapsed().Seconds()
}
