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

package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/halfbrain/strategist/pkg/fitness"
	"github.com/halfbrain/strategist/pkg/search"
)

// S1/Property 1: given enough budget, the chosen action is the one a
// naive full-width minimax would pick.
func TestOptimalAction(t *testing.T) {
	g, visits := newPrunableTree()
	bot := search.New[int, player, int, fitness.Int](g, maxPlayer)

	action, value, _, stats, ok := bot.SelectWithStats(0, 50*time.Millisecond)
	require.True(t, ok)
	require.Equal(t, 0, action) // the left child, min(9, 5) = 5
	require.Equal(t, fitness.Int(5), value)
	require.GreaterOrEqual(t, stats.Depth, 2)

	// S4: the right child's second leaf must never be visited once the
	// left child proves the right child cannot beat it.
	require.Zero(t, visits[6])
}

// Property 5: alpha-beta cutoffs never change the reported root value
// relative to an uncut, full-width minimax of the same tree.
func TestCutoffSoundnessMatchesFullWidthMinimax(t *testing.T) {
	g, _ := newPrunableTree()
	bot := search.New[int, player, int, fitness.Int](g, maxPlayer)

	_, value, _, _, ok := bot.SelectWithStats(0, 50*time.Millisecond)
	require.True(t, ok)

	reference := naiveMinimax(g, 0, maxPlayer)
	require.Equal(t, reference, value)
}

// Property 6: repeated Select calls against an unchanged, deterministic
// game return the same action.
func TestDeterminism(t *testing.T) {
	g1, _ := newPrunableTree()
	g2, _ := newPrunableTree()

	bot1 := search.New[int, player, int, fitness.Int](g1, maxPlayer)
	bot2 := search.New[int, player, int, fitness.Int](g2, maxPlayer)

	a1, ok1 := bot1.Select(0, 50*time.Millisecond)
	a2, ok2 := bot2.Select(0, 50*time.Millisecond)

	require.True(t, ok1)
	require.True(t, ok2)
	require.Equal(t, a1, a2)
}

// A root with no legal actions has nothing to select.
func TestNoLegalActionsReturnsFalse(t *testing.T) {
	g := newTerminalTree()
	bot := search.New[int, player, int, fitness.Int](g, maxPlayer)

	_, ok := bot.Select(0, 10*time.Millisecond)
	require.False(t, ok)
}

// S6: a deadline that has already elapsed before the first arm is
// evaluated yields the fallback first root action, not a zero value.
func TestAlreadyExpiredDeadlineFallsBackToFirstAction(t *testing.T) {
	g, _ := newPrunableTree()
	bot := search.New[int, player, int, fitness.Int](g, maxPlayer)

	action, ok := bot.Select(0, -1*time.Second)
	require.True(t, ok)
	require.Equal(t, 0, action)
}

// Property 4 (anytime guarantee): a deadline that survives the heuristic
// first iteration but expires mid-second-iteration still reports that
// first iteration's best-known action rather than losing it.
func TestCancelledIterationKeepsPreviousBest(t *testing.T) {
	g, visits := newPrunableTree()
	g.leafDelay = 40 * time.Millisecond

	bot := search.New[int, player, int, fitness.Int](g, maxPlayer)

	action, _, _, stats, ok := bot.SelectWithStats(0, 25*time.Millisecond)
	require.True(t, ok)
	require.Equal(t, 1, stats.Depth) // only the heuristic iteration completed

	// Iteration 1's heuristic ordering favors the left child (static
	// value 8 over 2), so it must still be the reported action even
	// though iteration 2 was cut short before finishing its first arm.
	require.Equal(t, 0, action)
	require.Zero(t, visits[6])
}

// naiveMinimax is a reference implementation with no pruning, used to
// check alpha-beta's answer against ground truth.
func naiveMinimax(g *treeGame, state int, bot player) fitness.Int {
	active := g.Turn(state)
	_, actions := g.Actions(state, active)
	if len(actions) == 0 {
		v, _ := g.Actions(state, bot)
		return v
	}

	maximizing := active == bot
	var best fitness.Int
	if maximizing {
		best = fitness.Int(0).Worst()
	} else {
		best = fitness.Int(0).Best()
	}

	for _, a := range actions {
		child := g.Clone(state)
		g.Execute(&child, a, active)
		value := naiveMinimax(g, child, bot)

		if maximizing {
			best = fitness.Max(best, value)
		} else {
			best = fitness.Min(best, value)
		}
	}

	return best
}
