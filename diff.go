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

import (
	"slices"

	"veldt.io/domdiff/dom"
	"veldt.io/domdiff/internal/depthorder"
	"veldt.io/domdiff/internal/seqalign"
)

// Shift is a subtree whose content is unchanged between two snapshots but
// whose structural position differs.
type Shift struct {
	Old, New Range
}

// Result classifies the structural differences between two snapshots:
// subtrees only present in the new snapshot, subtrees only present in the
// old snapshot, and subtrees present in both at different positions.
//
// The order within each sequence follows traversal order and is
// deterministic. In-place content changes (same position, same id, different
// hash) are not structural and produce no entry.
type Result struct {
	Added   []Range
	Removed []Range
	Shifted []Shift
}

// Diff compares two snapshots and classifies all structural differences.
//
// Both snapshots are read-only for the duration of the call and the returned
// result holds no references into either snapshot beyond NodeID values.
// Diffing a snapshot against itself yields an empty result.
//
// The alignment between the two trees is a heuristic: the depth-ordered
// non-leaf nodes of both trees are walked in lockstep and matched by
// position. Divergence that cannot be confidently classified as a shift
// degrades to a conservative remove+add pair; Diff never fails.
func Diff(old, new *dom.Tree) Result {
	d := differ{
		old:     old,
		new:     new,
		partner: make(map[dom.NodeID]dom.NodeID),
		oldDone: make([]bool, old.Len()),
		newDone: make([]bool, new.Len()),
	}

	switch {
	case old.Len() == 0 && new.Len() == 0:
		return Result{}
	case old.Len() == 0:
		d.addNew(new.Root())
		return d.result
	case new.Len() == 0:
		d.remove(old.Root())
		return d.result
	}

	oldParents := depthorder.NonLeaf(old)
	newParents := depthorder.NonLeaf(new)

	// Walk the two depth-ordered parent lists in lockstep by position. A pair
	// occupying the same slot at the same depth is pinned as an alignment
	// anchor when it kept its id or carries an identical subtree; the anchors
	// steer the sibling alignment below. Depth divergence is a structural
	// branch point that ends the lockstep walk.
	i := 0
	for ; i < len(oldParents) && i < len(newParents); i++ {
		op, np := oldParents[i], newParents[i]
		if op.Depth != np.Depth {
			break
		}
		if op.ID == np.ID || d.subtreeEqual(op.ID, np.ID) {
			d.partner[op.ID] = np.ID
		}
	}

	// The roots always correspond; classify everything below them.
	d.alignChildren(old.Root(), new.Root())

	// Parents beyond the lockstep prefix that no alignment accounted for
	// denote subtrees without a counterpart.
	for j := i; j < len(oldParents); j++ {
		if id := oldParents[j].ID; !d.oldDone[id] {
			d.remove(id)
		}
	}
	for j := i; j < len(newParents); j++ {
		if id := newParents[j].ID; !d.newDone[id] {
			d.addNew(id)
		}
	}

	d.reconcile()
	return d.result
}

// differ accumulates the classification state of one Diff call.
type differ struct {
	old, new *dom.Tree

	// partner pins old non-leaf nodes to their positional counterpart in the
	// new tree.
	partner map[dom.NodeID]dom.NodeID

	// oldDone/newDone mark ids whose classification is settled, either as
	// matched content or as part of a removed/added candidate.
	oldDone, newDone []bool

	result Result
}

func (d *differ) subtreeEqual(o, n dom.NodeID) bool {
	return slices.Equal(d.old.SubtreeHashes(o), d.new.SubtreeHashes(n))
}

func rangeOf(t *dom.Tree, id dom.NodeID) Range {
	end := t.SubtreeEnd(id)
	return Range{
		Start: NodeInfo{Hash: t.Hash(id), ID: id},
		End:   NodeInfo{Hash: t.Hash(end), ID: end},
	}
}

func (d *differ) markOldDone(id dom.NodeID) {
	for i := id; i <= d.old.SubtreeEnd(id); i++ {
		d.oldDone[i] = true
	}
}

func (d *differ) markNewDone(id dom.NodeID) {
	for i := id; i <= d.new.SubtreeEnd(id); i++ {
		d.newDone[i] = true
	}
}

// remove records the subtree rooted at id as a removed candidate.
func (d *differ) remove(id dom.NodeID) {
	r := rangeOf(d.old, id)
	for _, have := range d.result.Removed {
		if have.Contains(r) {
			return
		}
	}
	d.result.Removed = append(d.result.Removed, r)
	d.markOldDone(id)
}

// addNew records the subtree rooted at id as an added candidate.
func (d *differ) addNew(id dom.NodeID) {
	r := rangeOf(d.new, id)
	for _, have := range d.result.Added {
		if have.Contains(r) {
			return
		}
	}
	d.result.Added = append(d.result.Added, r)
	d.markNewDone(id)
}

// alignChildren classifies the subtree differences below a corresponding
// pair of nodes. The sibling lists are cut into segments around the
// lockstep anchors and each segment is aligned independently.
func (d *differ) alignChildren(o, n dom.NodeID) {
	if d.subtreeEqual(o, n) {
		d.markOldDone(o)
		d.markNewDone(n)
		return
	}
	// The pair itself occupies the same slot; a differing own hash is an
	// in-place content change and not reported.
	d.oldDone[o] = true
	d.newDone[n] = true

	ox := d.old.Children(o)
	nx := d.new.Children(n)

	ps, qs := 0, 0
	qmin := 0
	for p, c := range ox {
		partner, ok := d.partner[c]
		if !ok {
			continue
		}
		q := -1
		for j := qmin; j < len(nx); j++ {
			if nx[j] == partner {
				q = j
				break
			}
		}
		if q < 0 {
			// The partner sits under a different parent or out of order;
			// leave c to the segment alignment.
			continue
		}
		d.alignSegment(ox[ps:p], nx[qs:q])
		d.alignChildren(c, partner)
		ps, qs = p+1, q+1
		qmin = q + 1
	}
	d.alignSegment(ox[ps:], nx[qs:])
}

// alignSegment aligns two runs of siblings by subtree content and classifies
// every element: content-equal pairs match silently, same-id replacements
// are in-place changes inspected recursively, and everything else becomes a
// removed or added candidate covering the whole subtree.
func (d *differ) alignSegment(ox, nx []dom.NodeID) {
	if len(ox) == 0 && len(nx) == 0 {
		return
	}
	eq := func(a, b dom.NodeID) bool {
		return slices.Equal(d.old.SubtreeHashes(a), d.new.SubtreeHashes(b))
	}
	rx, ry := seqalign.Diff(ox, nx, eq)

	s, t := 0, 0
	for s < len(ox) || t < len(nx) {
		s0, t0 := s, t
		for s < len(ox) && rx[s] {
			s++
		}
		for t < len(nx) && ry[t] {
			t++
		}
		// A run of deletions followed by a run of insertions replaces a block
		// of slots; pair them positionally.
		k := 0
		for ; k < s-s0 && k < t-t0; k++ {
			oc, nc := ox[s0+k], nx[t0+k]
			if oc == nc {
				// Same slot, same id: the content changed in place. Descend
				// for structural changes further down.
				d.alignChildren(oc, nc)
				continue
			}
			d.remove(oc)
			d.addNew(nc)
		}
		for kk := k; kk < s-s0; kk++ {
			d.remove(ox[s0+kk])
		}
		for kk := k; kk < t-t0; kk++ {
			d.addNew(nx[t0+kk])
		}
		for s < len(ox) && t < len(nx) && !rx[s] && !ry[t] {
			d.markOldDone(ox[s])
			d.markNewDone(nx[t])
			s++
			t++
		}
	}
}

// reconcile pairs removed and added candidates whose content-hash sequences
// match exactly into shifts: the same content relocated to a different
// structural slot. With duplicate content the pairing is positional, the
// first unmatched removed candidate in traversal order takes the first
// unmatched added candidate.
func (d *differ) reconcile() {
	if len(d.result.Removed) == 0 || len(d.result.Added) == 0 {
		return
	}
	used := make([]bool, len(d.result.Added))
	var removed []Range
	for _, r := range d.result.Removed {
		matched := false
		hashes := d.old.SubtreeHashes(r.Start.ID)
		for j, a := range d.result.Added {
			if used[j] || !slices.Equal(hashes, d.new.SubtreeHashes(a.Start.ID)) {
				continue
			}
			d.result.Shifted = append(d.result.Shifted, Shift{Old: r, New: a})
			used[j] = true
			matched = true
			break
		}
		if !matched {
			removed = append(removed, r)
		}
	}
	d.result.Removed = removed
	var added []Range
	for j, a := range d.result.Added {
		if !used[j] {
			added = append(added, a)
		}
	}
	d.result.Added = added
}
