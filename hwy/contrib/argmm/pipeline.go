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

import "github.com/ajroetker/go-argmm/hwy"

// run computes the extremum index of s with kernel k. scan is k.scanMin or
// k.scanMax and better the matching scalar comparison.
func run[T hwy.Lanes](k kernel[T], scan laneScan[T], better func(a, b T) bool, s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	remainder, body := splitArray(s, k.lanes)

	var head result[T]
	if remainder != nil {
		i := scanScalar(remainder, better)
		head = result[T]{value: remainder[i], index: i, ok: true}
	}
	tail := scanBody(k, scan, better, body, len(remainder))

	r := mergeResults(head, tail, better)
	return r.index, r.ok
}

// scanBody scans body in blocks of at most k.maxBlock elements and returns
// the best pair with its index shifted by offset. Blocks are merged in order
// so an earlier block keeps ties.
func scanBody[T hwy.Lanes](k kernel[T], scan laneScan[T], better func(a, b T) bool, body []T, offset int) result[T] {
	var (
		best result[T]
		vals [maxLanes]T
		idxs [maxLanes]uint32
	)
	for start := 0; start < len(body); {
		end := len(body)
		if end-start > k.maxBlock {
			end = start + k.maxBlock
		}

		scan(body[start:end], vals[:k.lanes], idxs[:k.lanes])
		v, i := reduceLanes(vals[:k.lanes], idxs[:k.lanes], better)
		best = mergeResults(best, result[T]{value: v, index: offset + start + int(i), ok: true}, better)

		start = end
	}
	return best
}
