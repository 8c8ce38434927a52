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

//go:build amd64 && goexperiment.simd

package hwy

import "simd/archsimd"

// SIMDKernels reports whether hardware kernels are compiled into this binary.
const SIMDKernels = true

// hardwareHas asks archsimd rather than CPUID flags directly: it is the
// package that will execute the instructions, and it also accounts for
// OS support of the wider register state.
func hardwareHas(level DispatchLevel) bool {
	switch level {
	case DispatchSSE2:
		return archsimd.X86.AVX()
	case DispatchAVX2:
		return archsimd.X86.AVX2()
	case DispatchAVX512:
		return archsimd.X86.AVX512()
	default:
		return false
	}
}
