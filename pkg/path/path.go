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

// Package path represents the principal variation that the search finds:
// a root-relative sequence of child-action indices, one per ply visited.
package path

import "fmt"

// Path is an ordered sequence of action indices into the children of
// each visited node, root-relative. Its length is at most the depth
// the search reached when it was recorded.
type Path struct {
	indices []int
}

// Len returns the number of plys in the path.
func (p Path) Len() int {
	return len(p.indices)
}

// At returns the ith action index, the action index chosen at ply i.
func (p Path) At(i int) int {
	return p.indices[i]
}

// Prepend returns a new Path consisting of index followed by rest, i.e.
// the path a parent node records when a child returns rest as its own
// best continuation.
func Prepend(index int, rest Path) Path {
	indices := make([]int, 0, 1+len(rest.indices))
	indices = append(indices, index)
	indices = append(indices, rest.indices...)
	return Path{indices: indices}
}

// String converts the path into a human readable, space separated list
// of action indices in brackets, such as "[0 2]".
func (p Path) String() string {
	return fmt.Sprint(p.indices)
}
