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

package domdiff

import "veldt.io/domdiff/dom"

// ShiftFocus determines where the focus should move after a re-render: given
// the diff between the old and the new snapshot and the node that held focus
// in the old snapshot, it returns the node that should hold focus in the new
// snapshot.
//
// The second return value is false when no relocation applies: either the
// focused node is unaffected by the diff and keeps its id, or its subtree
// was removed without a surviving counterpart and the caller must pick a new
// default focus target.
func ShiftFocus(r Result, oldFocus dom.NodeID) (dom.NodeID, bool) {
	// Focus inside a shifted subtree keeps its relative offset within it.
	for _, s := range r.Shifted {
		if s.Old.containsID(oldFocus) {
			return s.New.Start.ID + (oldFocus - s.Old.Start.ID), true
		}
	}

	for _, rem := range r.Removed {
		if !rem.containsID(oldFocus) {
			continue
		}
		// A conservative remove+add pair keeps the content alive at a new
		// position; follow it when one exists.
		for _, a := range r.Added {
			if a.Start.Hash == rem.Start.Hash && a.End.Hash == rem.End.Hash && a.span() == rem.span() {
				return a.Start.ID + (oldFocus - rem.Start.ID), true
			}
		}
		return dom.None, false
	}

	// The focused node itself didn't move, but subtrees removed before it or
	// shifted across it renumber the id space. Stable nodes keep their
	// relative order in both snapshots, so the focus maps to the new id with
	// the same rank among stable ids.
	oldCovered := make([]Range, 0, len(r.Removed)+len(r.Shifted))
	oldCovered = append(oldCovered, r.Removed...)
	newCovered := make([]Range, 0, len(r.Added)+len(r.Shifted))
	newCovered = append(newCovered, r.Added...)
	for _, s := range r.Shifted {
		oldCovered = append(oldCovered, s.Old)
		newCovered = append(newCovered, s.New)
	}

	rank := int(oldFocus) - coveredUpTo(oldCovered, oldFocus)
	id := dom.NodeID(rank)
	for {
		if next := dom.NodeID(rank + coveredUpTo(newCovered, id)); next != id {
			id = next
			continue
		}
		if !covered(newCovered, id) {
			break
		}
		id++
	}
	if id == oldFocus {
		return dom.None, false
	}
	return id, true
}

// coveredUpTo counts the ids in [0, id] that lie inside any of the ranges.
// The ranges are disjoint by construction.
func coveredUpTo(ranges []Range, id dom.NodeID) int {
	n := 0
	for _, r := range ranges {
		if r.Start.ID > id {
			continue
		}
		n += int(min(r.End.ID, id)-r.Start.ID) + 1
	}
	return n
}

func covered(ranges []Range, id dom.NodeID) bool {
	for _, r := range ranges {
		if r.containsID(id) {
			return true
		}
	}
	return false
}
