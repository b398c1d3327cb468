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

package arm

import (
	"sort"

	"github.com/halfbrain/strategist/pkg/fitness"
	"github.com/halfbrain/strategist/pkg/path"
)

// Store holds one Arm per root action plus the distinguished "best
// completed" value used as the next iteration's starting alpha.
type Store[A any, F fitness.Fitness[F]] struct {
	arms          []Arm[A, F]
	bestCompleted F
	hasCompleted  bool
}

// New seeds a fresh Store with one Partial arm per root action, as
// required at the start of every Select call: Upper starts at the
// lattice maximum and the path is empty, since nothing has been
// searched yet.
func New[A any, F fitness.Fitness[F]](actions []A) *Store[A, F] {
	var zero F

	arms := make([]Arm[A, F], len(actions))
	for i, a := range actions {
		arms[i] = Arm[A, F]{
			Index:  i,
			Action: a,
			Status: Partial,
			Upper:  zero.Best(),
		}
	}

	return &Store[A, F]{
		arms:          arms,
		bestCompleted: zero.Worst(),
	}
}

// Len returns the number of arms (root actions) in the store.
func (s *Store[A, F]) Len() int {
	return len(s.arms)
}

// Arm returns a copy of the ith arm (root-index order, not iteration
// order).
func (s *Store[A, F]) Arm(i int) Arm[A, F] {
	return s.arms[i]
}

// Clone returns an independent copy of the store, used by the driver to
// seed the next deepening iteration's store from the current one so
// that arms which don't need retesting can be carried forward unchanged
// without re-running the evaluator on them.
func (s *Store[A, F]) Clone() *Store[A, F] {
	arms := make([]Arm[A, F], len(s.arms))
	copy(arms, s.arms)

	return &Store[A, F]{
		arms:          arms,
		bestCompleted: s.bestCompleted,
		hasCompleted:  s.hasCompleted,
	}
}

// InitialAlpha returns the distinguished best-completed value: the
// maximum Value among Complete arms, or the lattice minimum if none
// exist yet. The driver passes this as the starting alpha for the next
// deepening iteration.
func (s *Store[A, F]) InitialAlpha() F {
	return s.bestCompleted
}

// ShouldRetest reports whether the ith arm needs to be searched again
// this iteration. Complete arms never need retesting: their exact value
// cannot improve. A Partial arm needs retesting only if its proven upper
// bound could still beat the current best-completed value.
func (s *Store[A, F]) ShouldRetest(i int) bool {
	a := s.arms[i]
	if a.Status == Complete {
		return false
	}

	return s.bestCompleted.Less(a.Upper)
}

// AddComplete records the ith arm as fully evaluated with the given
// exact value and principal variation, raising the distinguished
// best-completed value if value improves on it. A Complete arm stays
// Complete because ShouldRetest reports false for it, so the driver
// never searches it again; AddPartial itself does not check an arm's
// current status.
func (s *Store[A, F]) AddComplete(i int, value F, pv path.Path) {
	s.arms[i].Status = Complete
	s.arms[i].Value = value
	s.arms[i].Path = pv

	if !s.hasCompleted || s.bestCompleted.Less(value) {
		s.bestCompleted = value
		s.hasCompleted = true
	}
}

// AddPartial records the ith arm as truncated with the given upper
// bound and best-so-far principal variation. Callers must only pass a
// bound that is no greater than any bound previously recorded for this
// arm, preserving the store's monotonicity invariant.
func (s *Store[A, F]) AddPartial(i int, upper F, pv path.Path) {
	s.arms[i].Status = Partial
	s.arms[i].Upper = upper
	s.arms[i].Path = pv
}

// IterOrder returns the root-action indices in the order the next
// iteration should try them: Partial arms first, ordered by descending
// Upper (the most promising bound is most likely to raise alpha early
// and trigger later cutoffs), then Complete arms by descending Value.
// Ties keep their original root order (sort.SliceStable), matching the
// spec's tie-breaking-by-earlier-index rule and keeping results
// deterministic for a deterministic game.
func (s *Store[A, F]) IterOrder() []int {
	order := make([]int, len(s.arms))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(x, y int) bool {
		ax, ay := s.arms[order[x]], s.arms[order[y]]

		switch {
		case ax.Status != ay.Status:
			// Partial before Complete.
			return ax.Status == Partial

		case ax.Status == Partial:
			return ay.Upper.Less(ax.Upper)

		default:
			return ay.Value.Less(ax.Value)
		}
	})

	return order
}

// Best returns the arm this store currently considers strongest,
// comparing Complete arms by Value and Partial arms by Upper. A Complete
// arm wins a tie against a Partial one, since an exact value is never
// worse information than a bound; other ties go to the earlier root
// index.
func (s *Store[A, F]) Best() (Arm[A, F], bool) {
	if len(s.arms) == 0 {
		return Arm[A, F]{}, false
	}

	score := func(a Arm[A, F]) F {
		if a.Status == Complete {
			return a.Value
		}
		return a.Upper
	}

	best := s.arms[0]
	for _, a := range s.arms[1:] {
		av, bv := score(a), score(best)
		switch {
		case bv.Less(av):
			best = a
		case !av.Less(bv) && a.Status == Complete && best.Status != Complete:
			best = a
		}
	}

	return best, true
}

// AllComplete reports whether every arm in the store is Complete, i.e.
// the game tree rooted here has been fully resolved.
func (s *Store[A, F]) AllComplete() bool {
	for _, a := range s.arms {
		if a.Status != Complete {
			return false
		}
	}

	return true
}
