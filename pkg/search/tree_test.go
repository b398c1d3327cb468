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
	"time"

	"github.com/halfbrain/strategist/pkg/fitness"
)

// player identifies one of the two sides of a treeGame. Max is always the
// bot under test.
type player uint8

const (
	maxPlayer player = iota
	minPlayer
)

// treeNode is one position in a hand-built, fixed game tree. Leaves have
// no children and carry their fitness in leafValue; interior nodes carry
// a heuristic estimate in staticValue, used only when the search
// truncates before reaching a leaf.
type treeNode struct {
	turn        player
	children    []int // indices into treeGame.nodes, empty for a leaf
	leafValue   int
	staticValue int
}

// treeGame implements game.Game[int, player, int, fitness.Int] over a
// fixed, static tree: states are node indices, actions are child
// indices. visits counts, per node index, how many times Actions was
// called on that node, letting a test assert a particular subtree was
// never explored.
type treeGame struct {
	nodes  []treeNode
	visits map[int]int

	// leafDelay, when nonzero, is slept once per leaf Actions call,
	// simulating an expensive terminal evaluation so a test can force
	// a deadline to expire mid-iteration.
	leafDelay time.Duration
}

func (g *treeGame) Turn(state int) player {
	return g.nodes[state].turn
}

func (g *treeGame) Actions(state int, _ player) (fitness.Int, []int) {
	if g.visits != nil {
		g.visits[state]++
	}

	n := g.nodes[state]
	if len(n.children) == 0 {
		if g.leafDelay > 0 {
			time.Sleep(g.leafDelay)
		}

		return fitness.Int(n.leafValue), nil
	}

	actions := make([]int, len(n.children))
	for i := range n.children {
		actions[i] = i
	}

	return fitness.Int(n.staticValue), actions
}

func (g *treeGame) Execute(state *int, action int, _ player) fitness.Int {
	n := g.nodes[*state]
	child := n.children[action]
	*state = child

	return fitness.Int(g.nodes[child].staticValue)
}

func (g *treeGame) Clone(state int) int {
	return state
}

// newPrunableTree builds a two-ply tree where the bot (max) picks
// between two minimizing children: the left child resolves to an exact
// value of 5, and the right child's second leaf (value -1) must never be
// visited once the left child's value proves the right child cannot win.
//
//	root (max)
//	├─ left  (min, static 8)  ├─ leaf 9
//	│                         └─ leaf 5   => min = 5
//	└─ right (min, static 2)  ├─ leaf 1
//	                          └─ leaf -1  => pruned, never visited
func newPrunableTree() (*treeGame, map[int]int) {
	visits := map[int]int{}
	g := &treeGame{
		visits: visits,
		nodes: []treeNode{
			0: {turn: maxPlayer, children: []int{1, 2}},
			1: {turn: minPlayer, children: []int{3, 4}, staticValue: 8},
			2: {turn: minPlayer, children: []int{5, 6}, staticValue: 2},
			3: {leafValue: 9},
			4: {leafValue: 5},
			5: {leafValue: 1},
			6: {leafValue: -1},
		},
	}
	return g, visits
}

// newTerminalTree builds a single-node tree where the bot to move has no
// legal actions.
func newTerminalTree() *treeGame {
	return &treeGame{
		nodes: []treeNode{
			0: {turn: maxPlayer, leafValue: 0},
		},
	}
}
