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

// Package argmm finds the index of the minimum or maximum element of a slice
// using SIMD lanes when the CPU has them.
//
// Every call splits the input into a scalar remainder taken from the front
// and a vector-aligned body. The body is scanned lane-parallel, keeping a
// running value and index per lane, and the lanes are then folded into one
// (value, index) pair that is merged with the remainder's result. The result
// is always the one the plain linear scan gives: the first occurrence of the
// extremum.
//
// # Element types
//
// Hardware kernels exist for float32, int32, int16, uint16 and uint8. Each type
// has its own strategy table, looked up on every call against the detected CPU
// features:
//
//   - "avx2": 256-bit archsimd kernels (amd64, GOEXPERIMENT=simd)
//   - "sse2": 128-bit archsimd kernels (amd64, GOEXPERIMENT=simd, AVX encoding)
//   - "fallback": the portable hwy.Vec emulation of a 128-bit register
//
// Argmin and Argmax accept any hwy.Lanes type and use the plain scan when no
// hardware kernel applies. The per-type functions (ArgminFloat32, ...) always
// run the lane pipeline, on the fallback kernel if need be.
//
// Setting HWY_NO_SIMD disables the hardware kernels.
//
// # NaN
//
// NaN never wins a comparison: the result points at a non-NaN element whenever
// one exists, and an all-NaN slice yields index 0. All strategies agree on this.
//
// Example:
//
//	data := []float32{3, 1, 4, 1, 5}
//	i, ok := argmm.Argmin(data) // 1, true
//	j, _ := argmm.Argmax(data)  // 4
package argmm
