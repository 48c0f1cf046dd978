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

// Package dom provides an immutable, index-addressed tree of content-hashed
// nodes.
//
// A [Tree] is an arena: nodes are stored in construction order and addressed
// by dense, zero-based [NodeID] indices. Trees are built with a [Builder] and
// frozen by [Builder.Build]; a frozen tree is never mutated, edits produce a
// new tree. Because nodes are added in depth-first order, every subtree
// occupies a contiguous interval of the id space, a property the diff engine
// in the parent package relies on.
package dom

// NodeID addresses a node within a single [Tree]. IDs are dense, zero-based
// and ordered by construction order. A NodeID is only meaningful relative to
// the tree it was issued for.
type NodeID int

// None marks the absence of a node, e.g. the parent of the root or the next
// sibling of a last child.
const None NodeID = -1

// Hash is an opaque fingerprint of a node's rendering-relevant content. Two
// nodes with equal hashes are assumed to render identically; the hash is
// computed by the caller, this package only stores it.
type Hash uint64

// Node holds the hierarchy links of a single node. All links are [None] when
// the related node does not exist.
type Node struct {
	Parent      NodeID
	PrevSibling NodeID
	NextSibling NodeID
	FirstChild  NodeID
	LastChild   NodeID
}

// Tree is an immutable snapshot of a node hierarchy together with a content
// hash per node.
//
// Accessors panic on out-of-range ids: a dangling id is a caller-side
// contract violation, not a runtime condition.
type Tree struct {
	nodes  []Node
	hashes []Hash
	extent []NodeID // last id of each node's subtree
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the id of the root node, or [None] for an empty tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return None
	}
	return 0
}

// Node returns the hierarchy links of id.
func (t *Tree) Node(id NodeID) Node { return t.nodes[id] }

// Hash returns the content hash of id.
func (t *Tree) Hash(id NodeID) Hash { return t.hashes[id] }

// SubtreeEnd returns the largest id in the subtree rooted at id. The subtree
// spans the contiguous interval [id, SubtreeEnd(id)].
func (t *Tree) SubtreeEnd(id NodeID) NodeID { return t.extent[id] }

// SubtreeHashes returns the content hashes of the subtree rooted at id in
// traversal order. The returned slice is a view into the tree and must not
// be modified.
func (t *Tree) SubtreeHashes(id NodeID) []Hash {
	return t.hashes[id : t.extent[id]+1]
}

// Children returns the ids of the immediate children of id in sibling order.
func (t *Tree) Children(id NodeID) []NodeID {
	var out []NodeID
	for c := t.nodes[id].FirstChild; c != None; c = t.nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// Builder constructs a [Tree] by appending nodes in linear,
// parent-before-children order.
type Builder struct {
	nodes  []Node
	hashes []Hash
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

// Add appends a node with the given content hash as the last child of parent
// and returns its id. The root is added with parent == [None].
//
// Nodes must be added in depth-first order: parent must be the most recently
// added node or one of its ancestors. This keeps every subtree contiguous in
// the id space. Add panics on a second root, a parent that doesn't exist, or
// a parent that would break contiguity.
func (b *Builder) Add(parent NodeID, hash Hash) NodeID {
	id := NodeID(len(b.nodes))
	if parent == None {
		if id != 0 {
			panic("dom: tree already has a root")
		}
		b.nodes = append(b.nodes, Node{Parent: None, PrevSibling: None, NextSibling: None, FirstChild: None, LastChild: None})
		b.hashes = append(b.hashes, hash)
		return id
	}
	if parent < 0 || int(parent) >= len(b.nodes) {
		panic("dom: parent does not exist")
	}
	for p := id - 1; ; p = b.nodes[p].Parent {
		if p == parent {
			break
		}
		if p == None {
			panic("dom: parent is not an ancestor of the last added node")
		}
	}
	n := Node{Parent: parent, PrevSibling: None, NextSibling: None, FirstChild: None, LastChild: None}
	p := &b.nodes[parent]
	if p.LastChild != None {
		n.PrevSibling = p.LastChild
		b.nodes[p.LastChild].NextSibling = id
	} else {
		p.FirstChild = id
	}
	p.LastChild = id
	b.nodes = append(b.nodes, n)
	b.hashes = append(b.hashes, hash)
	return id
}

// Build freezes the current contents into an immutable [Tree]. The builder
// remains usable; the returned tree does not alias its storage.
func (b *Builder) Build() *Tree {
	t := &Tree{
		nodes:  append([]Node(nil), b.nodes...),
		hashes: append([]Hash(nil), b.hashes...),
		extent: make([]NodeID, len(b.nodes)),
	}
	// Children are appended after their parent, so the last node of a subtree
	// is the extent of the last child, which is computed first when iterating
	// in reverse.
	for i := len(t.nodes) - 1; i >= 0; i-- {
		if lc := t.nodes[i].LastChild; lc != None {
			t.extent[i] = t.extent[lc]
		} else {
			t.extent[i] = NodeID(i)
		}
	}
	return t
}
