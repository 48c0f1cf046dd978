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

// Package seqalign aligns two sequences under a caller-supplied equality
// function.
//
// The result is expressed as two boolean vectors rx and ry: rx[s] marks x[s]
// as deleted, ry[t] marks y[t] as inserted, and the unmarked elements of x
// and y pair up in order. The vectors carry one extra trailing element so
// that callers can iterate both in lockstep without bounds juggling.
//
// The alignment is a minimal edit script computed with Myers' divide and
// conquer ("An O(ND) Difference Algorithm and Its Variations", 1986) using
// the middle snake refinement. No large-input heuristics are applied: the
// inputs here are sibling lists of a UI tree, which are short.
package seqalign

// Diff compares x and y using eq and returns the deletion and insertion
// vectors described in the package documentation.
func Diff[T any](x, y []T, eq func(a, b T) bool) (rx, ry []bool) {
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]

	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && eq(x[smin], y[tmin]) {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && eq(x[smax-1], y[tmax-1]) {
		smax--
		tmax--
	}

	switch {
	case smin == smax && tmin == tmax:
		return rx, ry
	case smin == smax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	case tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	}

	var m aligner[T]
	m.init(x, y, rx, ry)
	m.compare(smin, smax, tmin, tmax, eq)
	return rx, ry
}
