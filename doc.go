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

// Package domdiff compares two snapshots of a retained-mode UI tree and
// classifies the structural differences as added, removed and shifted
// subtrees. This is the information needed to carry stateful references such
// as keyboard focus and scroll offsets across a re-render.
//
// Snapshots are immutable [veldt.io/domdiff/dom.Tree] arenas built by the
// host. [Diff] produces a [Result]; [ShiftFocus] consumes it together with
// the previously focused node to find the focus target in the new snapshot.
// Both are pure, synchronous functions: no input is mutated, there is no
// I/O, and independent snapshot pairs may be diffed concurrently without
// coordination.
package domdiff
