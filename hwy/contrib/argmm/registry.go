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
	"fmt"
	"math"
	"sync"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// laneScan runs the lane-parallel scan over one block. body is non-empty, a
// multiple of the kernel's lane count long and at most maxBlock elements.
// On return vals holds each lane's best value and idxs the block-relative
// index where the lane first saw it.
type laneScan[T hwy.Lanes] func(body []T, vals []T, idxs []uint32)

// kernel is one registered implementation of the lane scan for T.
type kernel[T hwy.Lanes] struct {
	name     string
	level    hwy.DispatchLevel
	priority int
	lanes    int
	// maxBlock is the longest body the index lanes can count through.
	maxBlock int
	scanMin  laneScan[T]
	scanMax  laneScan[T]
}

// registry holds the kernels of one element type, highest priority first.
type registry[T hwy.Lanes] struct {
	mu      sync.RWMutex
	entries []kernel[T]
	sorted  bool
}

var (
	float32Kernels = &registry[float32]{}
	int32Kernels   = &registry[int32]{}
	int16Kernels   = &registry[int16]{}
	uint16Kernels  = &registry[uint16]{}
	uint8Kernels   = &registry[uint8]{}
)

// registryFor returns the table for T, or nil when T has no kernels. Named
// types are not matched: their ordering may differ from the underlying type's.
func registryFor[T hwy.Lanes]() *registry[T] {
	var r any
	switch any(*new(T)).(type) {
	case float32:
		r = float32Kernels
	case int32:
		r = int32Kernels
	case int16:
		r = int16Kernels
	case uint16:
		r = uint16Kernels
	case uint8:
		r = uint8Kernels
	default:
		return nil
	}
	return r.(*registry[T])
}

// blockLimit returns the longest block whose indices fit in index lanes of
// indexBits bits, rounded down to a multiple of lanes.
func blockLimit(indexBits, lanes int) int {
	if indexBits >= 32 {
		return math.MaxInt32 &^ (lanes - 1)
	}
	return 1 << indexBits
}

// register adds k to the table. It panics on a malformed kernel, which can
// only come from a broken init.
func (r *registry[T]) register(k kernel[T]) {
	if k.lanes < 1 || k.lanes > maxLanes || k.lanes&(k.lanes-1) != 0 {
		panic(fmt.Sprintf("argmm: kernel %q has invalid lane count %d", k.name, k.lanes))
	}
	if want := hwy.LanesFor[T](k.level); k.lanes != want {
		panic(fmt.Sprintf("argmm: kernel %q has %d lanes, %s registers hold %d", k.name, k.lanes, k.level, want))
	}
	if k.maxBlock < k.lanes || k.maxBlock%k.lanes != 0 {
		panic(fmt.Sprintf("argmm: kernel %q has invalid block size %d", k.name, k.maxBlock))
	}
	if k.scanMin == nil || k.scanMax == nil {
		panic(fmt.Sprintf("argmm: kernel %q is missing a scan", k.name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, k)
	r.sorted = false
}

// lookup returns the highest-priority kernel whose tier is supported with
// features.
func (r *registry[T]) lookup(features cpu.Features) (kernel[T], bool) {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, k := range r.entries {
		if hwy.Supports(features, k.level) {
			return k, true
		}
	}
	return kernel[T]{}, false
}

// sortByPriority is a stable insertion sort, descending by priority.
func (r *registry[T]) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].priority < key.priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// list returns a copy of the kernels in lookup order.
func (r *registry[T]) list() []kernel[T] {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	entries := make([]kernel[T], len(r.entries))
	copy(entries, r.entries)
	r.mu.Unlock()
	return entries
}
