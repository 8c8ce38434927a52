// Copyright 2025 go-highway Authors
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

package argmm

import (
	"math"

	"github.com/ajroetker/go-argmm/hwy"
)

// maxLanes bounds the lane count of any kernel (uint8 under AVX2).
const maxLanes = 32

// sentinel replaces the index of lanes that do not hold the winning value.
// It is larger than any block-relative index.
const sentinel = math.MaxUint32

// reduceLanes folds per-lane (value, index) registers into one pair. The
// value comes from a pairwise tree fold; the index is the smallest one among
// the lanes holding that value. len(vals) must be a power of two no larger
// than maxLanes.
func reduceLanes[T hwy.Lanes](vals []T, idxs []uint32, better func(a, b T) bool) (T, uint32) {
	var fold [maxLanes]T
	n := copy(fold[:], vals)
	for n > 1 {
		n /= 2
		for i := range n {
			if better(fold[i+n], fold[i]) {
				fold[i] = fold[i+n]
			}
		}
	}
	best := fold[0]

	var masked [maxLanes]uint32
	for i, v := range vals {
		if sameValue(v, best) {
			masked[i] = idxs[i]
		} else {
			masked[i] = sentinel
		}
	}
	return best, masked[SimpleArgmin(masked[:len(vals)])]
}
