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

package fitness

import "math"

// Int is a ready-made Fitness lattice for games that just want a plain
// centipawn-or-similar integer score. Games with mate-style terminal
// values can still embed Int and special-case String/comparisons; the
// search packages only ever use the Fitness method set below.
type Int int

// Inf is the largest finite-feeling Int value; it is kept well short of
// math.MaxInt to prevent overflow when two Infs are combined by a game's
// own evaluation function, mirroring the teacher's eval.Eval.Inf.
const (
	Inf    Int = math.MaxInt32 / 2
	minInt Int = -Inf
)

var _ Fitness[Int] = Int(0)

// Less reports whether i is strictly worse than o.
func (i Int) Less(o Int) bool { return i < o }

// Worst returns the lattice's minimum element.
func (i Int) Worst() Int { return minInt }

// Best returns the lattice's maximum element.
func (i Int) Best() Int { return Inf }

// IsUpperBound reports whether i already is the lattice maximum.
func (i Int) IsUpperBound() bool { return i >= Inf }

// IsLowerBound reports whether i already is the lattice minimum.
func (i Int) IsLowerBound() bool { return i <= minInt }
