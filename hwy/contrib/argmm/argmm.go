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

// Argmin returns the index of the first minimum of s, and false if s is
// empty.
//
// The lane pipeline runs when T has a hardware kernel usable on this CPU and
// s fills at least one register; otherwise s is scanned linearly. Both give
// the same index.
func Argmin[T hwy.Lanes](s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	if k, ok := dispatch[T](len(s)); ok {
		return run(k, k.scanMin, lessMin[T], s)
	}
	return SimpleArgmin(s), true
}

// Argmax returns the index of the first maximum of s, and false if s is
// empty. See Argmin for how the implementation is chosen.
func Argmax[T hwy.Lanes](s []T) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	if k, ok := dispatch[T](len(s)); ok {
		return run(k, k.scanMax, greaterMax[T], s)
	}
	return SimpleArgmax(s), true
}

// dispatch picks the hardware kernel for an input of n elements of T, if
// one should run.
func dispatch[T hwy.Lanes](n int) (kernel[T], bool) {
	r := registryFor[T]()
	if r == nil {
		return kernel[T]{}, false
	}
	k, ok := r.lookup(hwy.DetectFeatures())
	if !ok || k.level == hwy.DispatchScalar || n < k.lanes {
		return kernel[T]{}, false
	}
	return k, true
}

// vectorArgmin runs the lane pipeline of the best kernel for T, the
// portable one included.
func vectorArgmin[T hwy.Lanes](r *registry[T], s []T) (int, bool) {
	k, ok := r.lookup(hwy.DetectFeatures())
	if !ok {
		panic("argmm: no kernel registered")
	}
	return run(k, k.scanMin, lessMin[T], s)
}

func vectorArgmax[T hwy.Lanes](r *registry[T], s []T) (int, bool) {
	k, ok := r.lookup(hwy.DetectFeatures())
	if !ok {
		panic("argmm: no kernel registered")
	}
	return run(k, k.scanMax, greaterMax[T], s)
}

// ArgminFloat32 returns the index of the first minimum of s through the lane
// pipeline, and false if s is empty.
func ArgminFloat32(s []float32) (int, bool) { return vectorArgmin(float32Kernels, s) }

// ArgmaxFloat32 returns the index of the first maximum of s through the lane
// pipeline, and false if s is empty.
func ArgmaxFloat32(s []float32) (int, bool) { return vectorArgmax(float32Kernels, s) }

// ArgminInt32 is ArgminFloat32 for int32.
func ArgminInt32(s []int32) (int, bool) { return vectorArgmin(int32Kernels, s) }

// ArgmaxInt32 is ArgmaxFloat32 for int32.
func ArgmaxInt32(s []int32) (int, bool) { return vectorArgmax(int32Kernels, s) }

// ArgminInt16 is ArgminFloat32 for int16.
func ArgminInt16(s []int16) (int, bool) { return vectorArgmin(int16Kernels, s) }

// ArgmaxInt16 is ArgmaxFloat32 for int16.
func ArgmaxInt16(s []int16) (int, bool) { return vectorArgmax(int16Kernels, s) }

// ArgminUint16 is ArgminFloat32 for uint16.
func ArgminUint16(s []uint16) (int, bool) { return vectorArgmin(uint16Kernels, s) }

// ArgmaxUint16 is ArgmaxFloat32 for uint16.
func ArgmaxUint16(s []uint16) (int, bool) { return vectorArgmax(uint16Kernels, s) }

// ArgminUint8 is ArgminFloat32 for uint8.
func ArgminUint8(s []uint8) (int, bool) { return vectorArgmin(uint8Kernels, s) }

// ArgmaxUint8 is ArgmaxFloat32 for uint8.
func ArgmaxUint8(s []uint8) (int, bool) { return vectorArgmax(uint8Kernels, s) }

// Strategy describes one registered lane-scan implementation.
type Strategy struct {
	Name     string
	Level    hwy.DispatchLevel
	Priority int
	// Lanes is the number of elements compared per instruction.
	Lanes int
	// MaxBlock is the number of elements scanned before the index lanes are
	// reset.
	MaxBlock int
}

// Strategies returns the strategies registered for T in lookup order, or nil
// if T has no lane pipeline.
func Strategies[T hwy.Lanes]() []Strategy {
	r := registryFor[T]()
	if r == nil {
		return nil
	}
	var out []Strategy
	for _, k := range r.list() {
		out = append(out, strategyOf(k))
	}
	return out
}

// Selected returns the strategy the per-type functions for T use on this
// machine right now. Argmin and Argmax use it too unless it is the portable
// one or the input is shorter than Lanes.
func Selected[T hwy.Lanes]() (Strategy, bool) {
	r := registryFor[T]()
	if r == nil {
		return Strategy{}, false
	}
	k, ok := r.lookup(hwy.DetectFeatures())
	if !ok {
		return Strategy{}, false
	}
	return strategyOf(k), true
}

func strategyOf[T hwy.Lanes](k kernel[T]) Strategy {
	return Strategy{
		Name:     k.name,
		Level:    k.level,
		Priority: k.priority,
		Lanes:    k.lanes,
		MaxBlock: k.maxBlock,
	}
}
