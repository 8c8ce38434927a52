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

//go:generate go run ../../../cmd/argmmgen -output . -targets all

import (
	"unsafe"

	"github.com/ajroetker/go-argmm/hwy"
)

func init() {
	float32Kernels.register(fallbackKernel[float32, uint32]())
	int32Kernels.register(fallbackKernel[int32, uint32]())
	int16Kernels.register(fallbackKernel[int16, uint16]())
	uint16Kernels.register(fallbackKernel[uint16, uint16]())
	uint8Kernels.register(fallbackKernel[uint8, uint8]())
}

// fallbackKernel describes the portable kernel for T with index lanes of
// type I, which must be as wide as T.
func fallbackKernel[T hwy.Lanes, I hwy.UnsignedInts]() kernel[T] {
	lanes := hwy.MaxLanes[T]()
	return kernel[T]{
		name:     "fallback",
		level:    hwy.DispatchScalar,
		priority: 0,
		lanes:    lanes,
		maxBlock: blockLimit(8*int(unsafe.Sizeof(*new(I))), lanes),
		scanMin:  BaseScanMin[T, I],
		scanMax:  BaseScanMax[T, I],
	}
}

// BaseScanMin is the lane-parallel minimum scan on hwy.Vec.
//
// body must be a non-empty multiple of hwy.MaxLanes[T]() long, and short
// enough that its indices fit in I. On return vals[j] is the smallest value
// lane j saw and idxs[j] the index in body where it first saw it. A number
// replaces a NaN; nothing replaces a number it does not strictly beat.
func BaseScanMin[T hwy.Lanes, I hwy.UnsignedInts](body []T, vals []T, idxs []uint32) {
	baseScan[T, I](body, vals, idxs, hwy.LessThan[T])
}

// BaseScanMax is BaseScanMin for the maximum.
func BaseScanMax[T hwy.Lanes, I hwy.UnsignedInts](body []T, vals []T, idxs []uint32) {
	baseScan[T, I](body, vals, idxs, hwy.GreaterThan[T])
}

func baseScan[T hwy.Lanes, I hwy.UnsignedInts](body []T, vals []T, idxs []uint32, beats func(a, b hwy.Vec[T]) hwy.Mask[T]) {
	lanes := hwy.MaxLanes[T]()

	best := hwy.Load(body)
	bestIdx := hwy.Iota[I]()
	curIdx := bestIdx
	step := hwy.Set(I(lanes))

	for i := lanes; i < len(body); i += lanes {
		v := hwy.Load(body[i:])
		curIdx = hwy.Add(curIdx, step)

		// v beats best, or best is NaN and v is not.
		mask := hwy.MaskOr(beats(v, best), hwy.MaskAndNot(hwy.IsNaN(v), hwy.IsNaN(best)))

		best = hwy.IfThenElse(mask, v, best)
		bestIdx = hwy.IfThenElse(hwy.RebindMask[I](mask), curIdx, bestIdx)
	}

	best.Store(vals)
	for j, idx := range bestIdx.Data() {
		idxs[j] = uint32(idx)
	}
}
