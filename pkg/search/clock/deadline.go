// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clock turns a search budget into a monotonic deadline. It is
// the fixed-duration half of the teacher's search/time.Manager: this
// engine's Budget has no increment or moves-to-go concept to extend a
// deadline with, so there is nothing here to mirror beyond
// GetDeadline/Expired.
package clock

import "time"

// Deadline is a monotonic point in time a search must stop by.
type Deadline struct {
	at time.Time
}

// NewDeadline captures a deadline budget in the future, from now.
func NewDeadline(budget time.Duration) Deadline {
	return Deadline{at: time.Now().Add(budget)}
}

// Expired reports whether the deadline has passed.
func (d Deadline) Expired() bool {
	return time.Now().After(d.at)
}
