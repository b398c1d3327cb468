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

// Package game declares the contract a deterministic, perfect-information
// game must satisfy to be searched by package search. It deliberately
// says nothing about any particular game: chess, tic-tac-toe and every
// other concrete board live outside this module, as external
// collaborators reached only through this interface.
package game

import "github.com/halfbrain/strategist/pkg/fitness"

// Game is implemented by a game's position type. S is the state, P the
// (comparable, cheap to copy) player identity, A the (cheap to clone)
// action, and F the Fitness lattice state is evaluated against.
//
// Cloning state is the game's responsibility; Game requires it to be
// available and reasonably cheap, since the search stack clones once per
// ply to keep child exploration from corrupting a parent's state.
type Game[S any, P comparable, A any, F fitness.Fitness[F]] interface {
	// Turn reports the player to move in state.
	Turn(state S) P

	// Actions reports player's fitness for state from player's
	// perspective, together with player's legal actions in state. A nil
	// or empty action slice marks state as terminal for player.
	Actions(state S, player P) (F, []A)

	// Execute applies action to state in place on behalf of player and
	// returns the resulting fitness for player. Its precondition is that
	// action was produced by a prior Actions(state, player) call on an
	// equivalent state; violating it is a programming error the engine
	// does not attempt to detect or recover from.
	Execute(state *S, action A, player P) F

	// Clone returns an independent copy of state that Execute can
	// safely mutate without affecting state itself.
	Clone(state S) S
}

// LookAhead is implemented optionally by games that can cheaply estimate
// an action's fitness without mutating state or recursing. When a Game
// also implements LookAhead, the search packages use it purely to order
// a node's children before exploring them, which never changes the
// result of a search that runs to completion, only how quickly cutoffs
// are found. When absent, the engine synthesizes the same estimate via
// Clone followed by Execute.
type LookAhead[S any, P comparable, A any, F any] interface {
	LookAhead(state S, action A, player P) F
}
