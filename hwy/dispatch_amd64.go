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

//go:build amd64 && !goexperiment.simd

package hwy

import xcpu "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd no archsimd kernels are compiled, but the tiers
// are still reported from CPUID so tools can show what a simd build would use.

// SIMDKernels reports whether hardware kernels are compiled into this binary.
const SIMDKernels = false

func hardwareHas(level DispatchLevel) bool {
	switch level {
	case DispatchSSE2:
		return xcpu.X86.HasSSE2 && xcpu.X86.HasAVX
	case DispatchAVX2:
		return xcpu.X86.HasAVX2
	case DispatchAVX512:
		return xcpu.X86.HasAVX512F
	default:
		return false
	}
}
