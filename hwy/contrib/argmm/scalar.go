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

// SimpleArgmin returns the index of the first minimum of s with a plain
// linear scan. NaN values are skipped; an all-NaN slice yields 0.
// Panics if s is empty.
func SimpleArgmin[T hwy.Lanes](s []T) int {
	if len(s) == 0 {
		panic("argmm: SimpleArgmin called on empty slice")
	}
	return scanScalar(s, lessMin[T])
}

// SimpleArgmax returns the index of the first maximum of s with a plain
// linear scan. NaN values are skipped; an all-NaN slice yields 0.
// Panics if s is empty.
func SimpleArgmax[T hwy.Lanes](s []T) int {
	if len(s) == 0 {
		panic("argmm: SimpleArgmax called on empty slice")
	}
	return scanScalar(s, greaterMax[T])
}

// scanScalar replaces the running best only when better reports a strict
// improvement, so equal values never displace an earlier index.
func scanScalar[T hwy.Lanes](s []T, better func(a, b T) bool) int {
	best := 0
	for i := 1; i < len(s); i++ {
		if better(s[i], s[best]) {
			best = i
		}
	}
	return best
}

// lessMin reports whether a should replace b as the running minimum.
// A number always beats NaN; NaN never beats anything.
func lessMin[T hwy.Lanes](a, b T) bool {
	return a < b || (b != b && a == a)
}

// greaterMax reports whether a should replace b as the running maximum.
func greaterMax[T hwy.Lanes](a, b T) bool {
	return a > b || (b != b && a == a)
}

// sameValue is equality with NaN equal to NaN.
func sameValue[T hwy.Lanes](a, b T) bool {
	return a == b || (a != a && b != b)
}
