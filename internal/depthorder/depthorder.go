// Copyright 2026 The domdiff Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package depthorder extracts the non-leaf nodes of a tree in depth order.
//
// The resulting list is the backbone the diff algorithm walks: position i of
// the old list is compared against position i of the new list. This is a
// heuristic alignment that holds when structural edits are depth-preserving
// and positionally stable for unaffected subtrees.
package depthorder

import "veldt.io/domdiff/dom"

// Parent is a non-leaf node together with its distance from the root.
type Parent struct {
	Depth int
	ID    dom.NodeID
}

// NonLeaf returns every node of t that has at least one child, ordered by
// ascending depth (root = 0) and by traversal order within a depth level.
func NonLeaf(t *dom.Tree) []Parent {
	root := t.Root()
	if root == dom.None {
		return nil
	}
	type entry struct {
		id    dom.NodeID
		depth int
	}
	var out []Parent
	queue := []entry{{root, 0}}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		n := t.Node(e.id)
		if n.FirstChild == dom.None {
			continue
		}
		out = append(out, Parent{Depth: e.depth, ID: e.id})
		for c := n.FirstChild; c != dom.None; c = t.Node(c).NextSibling {
			queue = append(queue, entry{c, e.depth + 1})
		}
	}
	return out
}
