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

import (
	"github.com/halfbrain/strategist/pkg/fitness"
	"github.com/halfbrain/strategist/pkg/path"
)

type outcomeKind uint8

const (
	exactKind outcomeKind = iota
	upperBoundKind
	cancelledKind
)

// Outcome is the result of evaluating one subtree: a fully resolved
// value (Exact), a value left unresolved by a cutoff, the depth limit or
// a bounded child (UpperBound), or a sign that the
// deadline elapsed mid-search (Cancelled), in which case Value and Path
// carry no meaning and must be discarded by the caller.
type Outcome[F fitness.Fitness[F]] struct {
	kind  outcomeKind
	Value F
	Path  path.Path
}

func exact[F fitness.Fitness[F]](value F, pv path.Path) Outcome[F] {
	return Outcome[F]{kind: exactKind, Value: value, Path: pv}
}

func upperBound[F fitness.Fitness[F]](value F, pv path.Path) Outcome[F] {
	return Outcome[F]{kind: upperBoundKind, Value: value, Path: pv}
}

func cancelled[F fitness.Fitness[F]]() Outcome[F] {
	return Outcome[F]{kind: cancelledKind}
}

// IsExact reports whether the subtree was fully explored with no cutoff.
func (o Outcome[F]) IsExact() bool {
	return o.kind == exactKind
}

// IsCancelled reports whether the deadline elapsed mid-search.
func (o Outcome[F]) IsCancelled() bool {
	return o.kind == cancelledKind
}
