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

// Package search implements the iterative-deepening alpha-beta decision
// engine: components C2 (the terminated-arm store, package arm), C3 (the
// evaluate.go alpha-beta evaluator) and C4 (Bot, below) from spec.md.
package search

import (
	"time"

	"github.com/halfbrain/strategist/pkg/arm"
	"github.com/halfbrain/strategist/pkg/fitness"
	"github.com/halfbrain/strategist/pkg/game"
	"github.com/halfbrain/strategist/pkg/path"
	"github.com/halfbrain/strategist/pkg/search/clock"
)

// MaxDepth is a safety cap on the iterative deepening loop, mirroring
// the teacher's search.MaxDepth. The loop stops early only once every
// root arm is Complete; while some arm stays Partial (for example one
// cut off by a sibling's value, which is never retested), the loop runs
// on to the cap, and iterations that carry every arm forward do no
// evaluator work.
const MaxDepth = 256

// Bot is the driver surface (component C4): it holds only the game and
// the designated bot player and allocates a fresh arm.Store per Select
// call, per spec.md §9 ("no global mutable state").
type Bot[S any, P comparable, A any, F fitness.Fitness[F]] struct {
	game game.Game[S, P, A, F]
	bot  P
}

// New creates a Bot that plays as bot using g to explore states.
func New[S any, P comparable, A any, F fitness.Fitness[F]](g game.Game[S, P, A, F], bot P) *Bot[S, P, A, F] {
	return &Bot[S, P, A, F]{game: g, bot: bot}
}

// Select returns the bot's chosen action for state, or false if the
// root has no legal actions.
func (b *Bot[S, P, A, F]) Select(state S, budget time.Duration) (A, bool) {
	action, _, _, ok := b.DetailedSelect(state, budget)
	return action, ok
}

// DetailedSelect is Select, additionally returning the expected fitness
// and principal variation under the deepest analysis completed.
func (b *Bot[S, P, A, F]) DetailedSelect(state S, budget time.Duration) (A, F, path.Path, bool) {
	action, value, pv, _, ok := b.selectWithStats(state, budget)
	return action, value, pv, ok
}

// SelectWithStats is DetailedSelect, additionally returning search
// statistics for a caller that wants to log or display them. It exists
// because spec.md's driver surface defines no introspection of its own;
// see SPEC_FULL.md §4.
func (b *Bot[S, P, A, F]) SelectWithStats(state S, budget time.Duration) (A, F, path.Path, Stats, bool) {
	return b.selectWithStats(state, budget)
}

func (b *Bot[S, P, A, F]) selectWithStats(state S, budget time.Duration) (A, F, path.Path, Stats, bool) {
	start := time.Now()

	var zeroA A
	var zeroF F

	root := b.game.Turn(state)
	_, actions := b.game.Actions(state, root)
	if len(actions) == 0 {
		return zeroA, zeroF, path.Path{}, Stats{Time: time.Since(start)}, false
	}

	eval := &evaluator[S, P, A, F]{game: b.game, bot: b.bot, deadline: clock.NewDeadline(budget)}

	store := arm.New[A, F](actions)

	// Fallback per spec.md §7: if no iteration ever completes, report
	// the first root action.
	bestAction := actions[0]
	var bestValue F
	var bestPath path.Path

	var stats Stats

	for depth := 1; depth <= MaxDepth; depth++ {
		next := store.Clone()
		order := store.IterOrder()

		cancelledIteration := false
		for _, idx := range order {
			if !store.ShouldRetest(idx) {
				stats.ArmsCarried++
				continue
			}
			stats.ArmsRetested++

			a := store.Arm(idx)

			if eval.deadline.Expired() {
				cancelledIteration = true
				break
			}

			child := b.game.Clone(state)
			b.game.Execute(&child, a.Action, root) // immediate fitness is not decisive
			childActive := b.game.Turn(child)

			alpha := fitness.Max(store.InitialAlpha(), next.InitialAlpha())
			beta := zeroF.Best()

			outcome := eval.evaluate(child, childActive, depth-1, alpha, beta)
			if outcome.IsCancelled() {
				cancelledIteration = true
				break
			}

			pv := path.Prepend(idx, outcome.Path)
			if outcome.IsExact() {
				next.AddComplete(idx, outcome.Value, pv)
			} else {
				next.AddPartial(idx, outcome.Value, pv)
			}
		}

		stats.Nodes = eval.nodes

		if cancelledIteration {
			// Discard this iteration's partial results entirely; the
			// previously recorded best (possibly still just the
			// fallback first action) stands.
			break
		}

		store = next
		stats.Depth = depth

		best, ok := store.Best()
		if ok {
			bestAction = best.Action
			bestPath = best.Path
			if best.Status == arm.Complete {
				bestValue = best.Value
			} else {
				bestValue = best.Upper
			}
		}

		if store.AllComplete() {
			break
		}
	}

	stats.Time = time.Since(start)
	return bestAction, bestValue, bestPath, stats, true
}
