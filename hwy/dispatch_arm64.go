//go:build arm64

package hwy

import xcpu "golang.org/x/sys/cpu"

// SIMDKernels reports whether hardware kernels are compiled into this binary.
// NEON is detected and reported, but argmm has no NEON kernels yet.
const SIMDKernels = false

func hardwareHas(level DispatchLevel) bool {
	// ASIMD is part of the ARMv8-A base architecture.
	return level == DispatchNEON && xcpu.ARM64.HasASIMD
}
