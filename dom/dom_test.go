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

package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilderLinks(t *testing.T) {
	// 0
	// |- 1
	// |- 2
	//    |- 3
	//    |- 4
	b := NewBuilder()
	b.Add(None, 0)
	b.Add(0, 1)
	b.Add(0, 2)
	b.Add(2, 3)
	b.Add(2, 4)
	tree := b.Build()

	want := []Node{
		{Parent: None, PrevSibling: None, NextSibling: None, FirstChild: 1, LastChild: 2},
		{Parent: 0, PrevSibling: None, NextSibling: 2, FirstChild: None, LastChild: None},
		{Parent: 0, PrevSibling: 1, NextSibling: None, FirstChild: 3, LastChild: 4},
		{Parent: 2, PrevSibling: None, NextSibling: 4, FirstChild: None, LastChild: None},
		{Parent: 2, PrevSibling: 3, NextSibling: None, FirstChild: None, LastChild: None},
	}
	var got []Node
	for i := range tree.Len() {
		got = append(got, tree.Node(NodeID(i)))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("node links differ [-want,+got]:\n%s", diff)
	}

	if got, want := tree.Root(), NodeID(0); got != want {
		t.Errorf("Root() = %v, want %v", got, want)
	}
	if got, want := tree.Children(0), []NodeID{1, 2}; !cmp.Equal(want, got) {
		t.Errorf("Children(0) = %v, want %v", got, want)
	}
	if got, want := tree.Children(2), []NodeID{3, 4}; !cmp.Equal(want, got) {
		t.Errorf("Children(2) = %v, want %v", got, want)
	}
	if got := tree.Children(1); got != nil {
		t.Errorf("Children(1) = %v, want nil", got)
	}
}

func TestSubtreeBounds(t *testing.T) {
	b := NewBuilder()
	b.Add(None, 10) // 0
	b.Add(0, 11)    // 1
	b.Add(0, 12)    // 2
	b.Add(2, 13)    // 3
	b.Add(3, 14)    // 4
	tree := b.Build()

	wantEnds := []NodeID{4, 1, 4, 4, 4}
	for i, want := range wantEnds {
		if got := tree.SubtreeEnd(NodeID(i)); got != want {
			t.Errorf("SubtreeEnd(%d) = %v, want %v", i, got, want)
		}
	}

	if got, want := tree.SubtreeHashes(2), []Hash{12, 13, 14}; !cmp.Equal(want, got) {
		t.Errorf("SubtreeHashes(2) = %v, want %v", got, want)
	}
	if got, want := tree.SubtreeHashes(1), []Hash{11}; !cmp.Equal(want, got) {
		t.Errorf("SubtreeHashes(1) = %v, want %v", got, want)
	}
}

func TestBuildFreezes(t *testing.T) {
	b := NewBuilder()
	b.Add(None, 1)
	tree := b.Build()

	// Appending to the builder afterwards must not leak into the snapshot.
	b.Add(0, 2)
	if got, want := tree.Len(), 1; got != want {
		t.Errorf("Len() = %v, want %v", got, want)
	}
	next := b.Build()
	if got, want := next.Len(), 2; got != want {
		t.Errorf("Len() = %v, want %v", got, want)
	}
	if got, want := tree.Node(0).FirstChild, None; got != want {
		t.Errorf("frozen tree gained a child: FirstChild = %v, want %v", got, want)
	}
}

func TestBuilderMisusePanics(t *testing.T) {
	t.Run("second-root", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		b := NewBuilder()
		b.Add(None, 0)
		b.Add(None, 1)
	})
	t.Run("missing-parent", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		b := NewBuilder()
		b.Add(None, 0)
		b.Add(7, 1)
	})
	t.Run("out-of-depth-first-order", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		b := NewBuilder()
		b.Add(None, 0)
		first := b.Add(0, 1)
		b.Add(first, 2)
		b.Add(0, 3)
		// Attaching another child to first would split its subtree.
		b.Add(first, 4)
	})
}

func TestEmptyTree(t *testing.T) {
	tree := NewBuilder().Build()
	if got, want := tree.Len(), 0; got != want {
		t.Errorf("Len() = %v, want %v", got, want)
	}
	if got, want := tree.Root(), None; got != want {
		t.Errorf("Root() = %v, want %v", got, want)
	}
}
