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

// Package arm implements the terminated-arm store: the structure that
// carries a root child's search status across iterative-deepening
// iterations, driving move ordering and letting a sufficiently-bounded
// child be skipped instead of re-searched. It is the root-ply analogue
// of the teacher's position-hash-keyed transposition table, scoped down
// to root children because this engine does not keep a persistent,
// hash-keyed table across a whole tree.
package arm

import "github.com/halfbrain/strategist/pkg/path"
import "github.com/halfbrain/strategist/pkg/fitness"

// Status represents how thoroughly an Arm's subtree has been explored.
type Status uint8

// The two statuses an Arm can have, mirroring the teacher's
// tt.EntryType enum but scoped to what the root-child store needs.
const (
	// Partial means the subtree was truncated, by a depth limit or an
	// alpha-beta cutoff, leaving only a proven upper bound on its value.
	Partial Status = iota

	// Complete means the subtree was fully evaluated at some earlier
	// (or the current) depth and its exact minimax value is known; it
	// never needs to be searched again.
	Complete
)

// Arm is a top-level child of the search root.
type Arm[A any, F fitness.Fitness[F]] struct {
	Index  int    // index into the root's action list
	Action A      // the root action this arm represents
	Status Status // Partial or Complete

	// Value holds the exact minimax value when Status == Complete.
	Value F

	// Upper holds the proven upper bound on the true value when
	// Status == Partial. It is non-increasing across iterations.
	Upper F

	// Path is the principal variation recorded the last time this arm
	// was searched, valid for either status.
	Path path.Path
}
