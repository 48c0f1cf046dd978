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

// NodeInfo identifies a single node's identity and content at a point in
// time.
type NodeInfo struct {
	Hash dom.Hash
	ID   dom.NodeID
}

// Range describes a contiguous subtree span in a linearized tree by its
// boundary nodes. Ranges from different snapshots must never be compared by
// id; only [Range.Equal] (boundary equality) and content-hash comparisons
// are meaningful across snapshots.
type Range struct {
	Start, End NodeInfo
}

// Contains reports whether other is a subtree of r. This assumes both ranges
// come from the same tree, built in linear parent-before-children order so
// that a subtree occupies a contiguous id interval within its parent's
// bounds.
func (r Range) Contains(other Range) bool {
	return other.Start.ID >= r.Start.ID && other.End.ID <= r.End.ID
}

// Equal reports whether both ranges have the same boundary (hash, id) pairs,
// regardless of which tree they were extracted from.
func (r Range) Equal(other Range) bool {
	return r.Start == other.Start && r.End == other.End
}

// containsID reports whether id lies within r's bounds, inclusive.
func (r Range) containsID(id dom.NodeID) bool {
	return id >= r.Start.ID && id <= r.End.ID
}

// span returns the number of ids covered by r.
func (r Range) span() int {
	return int(r.End.ID-r.Start.ID) + 1
}
