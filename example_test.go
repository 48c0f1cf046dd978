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

package domdiff_test

import (
	"fmt"

	"veldt.io/domdiff"
	"veldt.io/domdiff/dom"
)

// A re-render moves a leaf behind its sibling subtree: the content is
// unchanged, but every id below the root is renumbered. Diff recognizes the
// leaf as shifted, and ShiftFocus relocates the focus accordingly.
func Example() {
	ob := dom.NewBuilder()
	root := ob.Add(dom.None, 100)
	ob.Add(root, 101) // the leaf that will move
	sub := ob.Add(root, 102)
	ob.Add(sub, 103)
	ob.Add(sub, 104)
	old := ob.Build()

	nb := dom.NewBuilder()
	root = nb.Add(dom.None, 100)
	sub = nb.Add(root, 102)
	nb.Add(sub, 103)
	nb.Add(sub, 104)
	nb.Add(root, 101)
	new := nb.Build()

	r := domdiff.Diff(old, new)
	for _, s := range r.Shifted {
		fmt.Printf("shifted: old %d..%d -> new %d..%d\n",
			s.Old.Start.ID, s.Old.End.ID, s.New.Start.ID, s.New.End.ID)
	}

	for _, focus := range []dom.NodeID{1, 3} {
		if id, ok := domdiff.ShiftFocus(r, focus); ok {
			fmt.Printf("focus %d -> %d\n", focus, id)
		} else {
			fmt.Printf("focus %d -> unchanged\n", focus)
		}
	}

	// Output:
	// shifted: old 1..1 -> new 4..4
	// focus 1 -> 4
	// focus 3 -> 2
}
