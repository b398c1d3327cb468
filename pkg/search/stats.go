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

package search

import "time"

// Stats reports the numbers a caller might want to log or display about
// one Select call. It deliberately carries no formatting or printing
// logic of its own: spec.md places logging and presentation outside the
// CORE's scope, so this is data only, mirroring the split between the
// teacher's Stats (numbers) and Report (an info-string formatter) with
// the formatter half left out.
type Stats struct {
	// Nodes is the number of tree nodes evaluate visited across every
	// completed and aborted iteration.
	Nodes int

	// Depth is the deepest iteration that completed.
	Depth int

	// ArmsRetested and ArmsCarried count, across every iteration that
	// started (including one aborted by the deadline), how many root arms
	// were selected for re-search versus skipped because their upper
	// bound could no longer beat the running best.
	ArmsRetested int
	ArmsCarried  int

	// Time is the wall-clock duration Select spent searching.
	Time time.Duration
}
