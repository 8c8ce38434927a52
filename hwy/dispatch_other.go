//go:build !amd64 && !arm64

package hwy

// SIMDKernels reports whether hardware kernels are compiled into this binary.
const SIMDKernels = false

func hardwareHas(DispatchLevel) bool {
	return false
}
