// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

import (
	"sort"

	"github.com/halfbrain/strategist/pkg/fitness"
	"github.com/halfbrain/strategist/pkg/game"
	"github.com/halfbrain/strategist/pkg/path"
	"github.com/halfbrain/strategist/pkg/search/clock"
)

// evaluator carries the state one call to evaluate needs to thread
// through its recursion: the game being searched, the designated bot
// player, the node counter, and the shared deadline. It plays the role
// the teacher's search.Context plays for negamax, minus everything
// (transposition table, stats, limits) that belongs to the driver
// instead of the recursive evaluator itself.
type evaluator[S any, P comparable, A any, F fitness.Fitness[F]] struct {
	game     game.Game[S, P, A, F]
	bot      P
	deadline clock.Deadline
	nodes    int
}

// evaluate is the alpha-beta minimax evaluator (component C3). Unlike
// the teacher's negamax, it does not negate fitness per ply: whether a
// node maximizes or minimizes is read directly off whether active is
// the bot, and fitness values are always compared from the bot's fixed
// perspective, per spec.
func (e *evaluator[S, P, A, F]) evaluate(state S, active P, depth int, alpha, beta F) Outcome[F] {
	e.nodes++

	activeFitness, actions := e.game.Actions(state, active)

	if len(actions) == 0 {
		// Game-terminal: no deadline check here. Leaves vastly
		// outnumber interior nodes, so timing every one of them would
		// make the clock check itself the dominant cost near the
		// bottom of the tree; the deadline is instead checked before
		// every recursive call below, which is the only place it can
		// matter.
		value := activeFitness
		if active != e.bot {
			value, _ = e.game.Actions(state, e.bot)
		}

		return exact[F](value, path.Path{})
	}

	if depth <= 0 {
		// Depth-limited, but not game-terminal: this is only a static
		// estimate of the node's value, never a proven one, so it must
		// not be recorded as Complete by the arm store. Reporting it as
		// an upper bound (rather than inventing a third Outcome kind)
		// keeps it eligible for re-evaluation at a deeper iteration.
		value := activeFitness
		if active != e.bot {
			value, _ = e.game.Actions(state, e.bot)
		}

		return upperBound[F](value, path.Path{})
	}

	maximizing := active == e.bot

	var zero F
	best := zero.Worst()
	if !maximizing {
		best = zero.Best()
	}

	var bestPath path.Path
	allExact := true

	for _, idx := range e.order(state, active, actions) {
		if e.deadline.Expired() {
			return cancelled[F]()
		}

		child := e.game.Clone(state)
		e.game.Execute(&child, actions[idx], active) // immediate fitness is not decisive
		childActive := e.game.Turn(child)

		var childAlpha, childBeta F
		if maximizing {
			childAlpha, childBeta = fitness.Max(alpha, best), beta
		} else {
			childAlpha, childBeta = alpha, fitness.Min(beta, best)
		}

		outcome := e.evaluate(child, childActive, depth-1, childAlpha, childBeta)
		if outcome.IsCancelled() {
			return cancelled[F]()
		}
		if !outcome.IsExact() {
			allExact = false
		}

		if maximizing {
			if best.Less(outcome.Value) {
				best, bestPath = outcome.Value, path.Prepend(idx, outcome.Path)

				if !best.Less(beta) || best.IsUpperBound() {
					return upperBound(best, bestPath) // beta cutoff
				}
			}
		} else {
			if outcome.Value.Less(best) {
				best, bestPath = outcome.Value, path.Prepend(idx, outcome.Path)

				if !alpha.Less(best) || best.IsLowerBound() {
					return upperBound(best, bestPath) // alpha cutoff
				}
			}
		}
	}

	if allExact {
		return exact[F](best, bestPath)
	}

	// No cutoff fired at this node, but at least one child was itself
	// only bounded, so this subtree's value is bounded too.
	return upperBound(best, bestPath)
}

// order returns actions' indices in the sequence children should be
// explored in. Games that implement game.LookAhead get their children
// sorted by that estimate (descending at a maximizing node, ascending
// at a minimizing one) to find cutoffs sooner; this never changes the
// result of a search that runs to completion. Games without LookAhead
// keep their declared order untouched.
func (e *evaluator[S, P, A, F]) order(state S, active P, actions []A) []int {
	idx := make([]int, len(actions))
	for i := range idx {
		idx[i] = i
	}

	la, ok := e.game.(game.LookAhead[S, P, A, F])
	if !ok {
		return idx
	}

	scores := make([]F, len(actions))
	for i, a := range actions {
		scores[i] = la.LookAhead(state, a, active)
	}

	maximizing := active == e.bot
	sort.SliceStable(idx, func(x, y int) bool {
		if maximizing {
			return scores[idx[y]].Less(scores[idx[x]])
		}

		return scores[idx[x]].Less(scores[idx[y]])
	})

	return idx
}

// LookAhead returns a cheap, non-mutating fitness estimate for playing
// action as player in state. It uses g's own LookAhead method when g
// implements game.LookAhead, and otherwise synthesizes the estimate by
// cloning state and executing action on the clone, per the optional
// collaborator described in the game package.
func LookAhead[S any, P comparable, A any, F fitness.Fitness[F]](g game.Game[S, P, A, F], state S, action A, player P) F {
	if la, ok := g.(game.LookAhead[S, P, A, F]); ok {
		return la.LookAhead(state, action, player)
	}

	child := g.Clone(state)
	return g.Execute(&child, action, player)
}
