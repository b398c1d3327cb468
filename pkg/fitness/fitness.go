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

// Package fitness defines the totally-ordered score lattice that the
// search packages evaluate game states against. A game picks or defines
// its own concrete F satisfying Fitness[F]; the engine never assumes F
// is numeric, only that it is cheap to copy and admits the operations
// below.
package fitness

// Fitness is implemented by a game's score type. F is always evaluated
// from a single fixed player's perspective (the bot's, see package
// search) rather than negated per ply, so a greater Fitness is always
// better for that player regardless of whose turn it is.
type Fitness[F any] interface {
	// Less reports whether the receiver is strictly worse than other.
	Less(other F) bool

	// Worst and Best return this lattice's minimum and maximum elements
	// (spec's MIN/MAX), used to seed search bounds before anything is
	// known about a subtree.
	Worst() F
	Best() F

	// IsUpperBound reports whether no value strictly greater than the
	// receiver can ever occur, letting a maximizing node short-circuit
	// as soon as a child reaches it.
	IsUpperBound() bool

	// IsLowerBound is the minimizing counterpart of IsUpperBound.
	IsLowerBound() bool
}

// Max returns the larger of a and b according to Less.
func Max[F Fitness[F]](a, b F) F {
	if a.Less(b) {
		return b
	}

	return a
}

// Min returns the smaller of a and b according to Less.
func Min[F Fitness[F]](a, b F) F {
	if b.Less(a) {
		return b
	}

	return a
}
