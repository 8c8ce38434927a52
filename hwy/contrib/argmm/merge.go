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

// result is a (value, index) candidate. ok is false for an absent part.
type result[T hwy.Lanes] struct {
	value T
	index int
	ok    bool
}

// mergeResults combines two candidates, first covering the lower indices.
// second wins only on a strict improvement, so ties go to first.
func mergeResults[T hwy.Lanes](first, second result[T], better func(a, b T) bool) result[T] {
	switch {
	case !first.ok:
		return second
	case !second.ok:
		return first
	case better(second.value, first.value):
		return second
	default:
		return first
	}
}
