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

package seqalign

type aligner[T any] struct {
	// Inputs to compare.
	x, y []T

	// v-arrays for the forwards and backwards searches. A v-array stores the
	// furthest reaching endpoint of a d-path on diagonal k in v[v0+k], where
	// v0 translates k in [-d, d] to an index in [0, 2*d]. Only the
	// s-coordinate is stored since t = s - k.
	vf, vb []int
	v0     int

	// Result vectors, see package documentation.
	rx, ry []bool
}

func (m *aligner[T]) init(x, y []T, rx, ry []bool) {
	diagonals := len(x) + len(y)
	vlen := 2*diagonals + 3 // +1 for the middle point, +2 for the borders
	buf := make([]int, 2*vlen)

	m.x = x
	m.y = y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1
	m.rx = rx
	m.ry = ry
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax) and
// records the resulting deletions and insertions.
//
// x[smin:smax] and y[tmin:tmax] must not have a common prefix or suffix.
func (m *aligner[T]) compare(smin, smax, tmin, tmax int, eq func(a, b T) bool) {
	if smin == smax {
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	} else if tmin == tmax {
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	} else {
		// Split the search space at a middle snake: a possibly empty run of
		// matches (s0, t0)..(s1, t1) on an optimal path. The two remaining
		// rects have no common prefix or suffix by construction, so they can
		// be recursed into directly.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax, eq)
		m.compare(smin, s0, tmin, t0, eq)
		m.compare(s1, smax, t1, tmax, eq)
	}
}

// split finds the endpoints of a middle snake on an optimal path from
// (smin, tmin) to (smax, tmax) by searching forwards and backwards
// simultaneously until the two searches overlap.
func (m *aligner[T]) split(smin, smax, tmin, tmax int, eq func(a, b T) bool) (s0, s1, t0, t1 int) {
	const intMin = -1 << 62
	const intMax = 1 << 62

	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k, using k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// Number all diagonals consistently by centering the forwards and
	// backwards searches around different midpoints, so overlap checks need
	// no k conversion.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// Per Corollary 1 of Myers' paper, the optimal diff length is odd or even
	// as N-M is odd or even; this decides which direction checks for overlap.
	odd := (N-M)%2 != 0

	// There is no 0-path because split is never called with a common prefix
	// or suffix, so the d=0 iteration reduces to this trivial seed and the
	// search starts at d=1.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forwards iteration. Keep k within the edit grid: when a border is
		// reached, shrink the range instead of growing it and seed the slot
		// outside the border so the k-loop needs no special cases.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = intMin
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = intMin
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Per Lemma 2, the furthest reaching d-path on diagonal k extends
			// the furthest reaching (d-1)-path on diagonal k-1 or k+1 with a
			// horizontal or vertical edge. Ties prefer deletions.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the diagonal as far as possible.
			sd, td := s, t
			for s < smax && t < tmax && eq(x[s], y[t]) {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return sd, s, td, t
			}
		}

		// Backwards iteration, analogous to the forwards iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = intMax
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = intMax
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			sd, td := s, t
			for s > smin && t > tmin && eq(x[s-1], y[t-1]) {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, sd, t, td
			}
		}
	}
}
