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
	"testing"
)

func TestReduceLanes(t *testing.T) {
	nan := float32(math.NaN())
	tests := []struct {
		name      string
		vals      []float32
		idxs      []uint32
		wantValue float32
		wantIndex uint32
	}{
		{"one lane", []float32{3}, []uint32{7}, 3, 7},
		{"distinct", []float32{3, 1, 4, 2}, []uint32{0, 1, 2, 3}, 1, 1},
		// Lane order is not index order: the smallest index wins, not the first lane.
		{"tie picks smallest index", []float32{1, 5, 1, 1}, []uint32{8, 1, 4, 9}, 1, 4},
		{"NaN lanes lose", []float32{nan, 2, nan, 2}, []uint32{0, 5, 2, 3}, 2, 3},
		{"all NaN", []float32{nan, nan, nan, nan}, []uint32{4, 1, 6, 3}, nan, 1},
		{"infinities", []float32{float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.Inf(-1)), 0}, []uint32{0, 9, 2, 3}, float32(math.Inf(-1)), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, index := reduceLanes(tt.vals, tt.idxs, lessMin[float32])
			if !sameValue(value, tt.wantValue) || index != tt.wantIndex {
				t.Errorf("reduceLanes(%v, %v) = (%v, %d), want (%v, %d)",
					tt.vals, tt.idxs, value, index, tt.wantValue, tt.wantIndex)
			}
		})
	}
}

func TestReduceLanesMax32(t *testing.T) {
	vals := make([]uint8, maxLanes)
	idxs := make([]uint32, maxLanes)
	for i := range vals {
		vals[i] = uint8(i % 7)
		idxs[i] = uint32(100 - i)
	}
	// Value 6 sits in lanes 6, 13, 20, 27; lane 27 has the smallest index.
	value, index := reduceLanes(vals, idxs, greaterMax[uint8])
	if value != 6 || index != 73 {
		t.Errorf("reduceLanes over 32 lanes = (%d, %d), want (6, 73)", value, index)
	}
}
