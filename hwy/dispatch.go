package hwy

import (
	"os"
	"strconv"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// DispatchLevel represents a SIMD instruction-set tier.
type DispatchLevel int

const (
	// DispatchScalar indicates no hardware SIMD: pure Go, including the
	// Vec emulation of a 128-bit register.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates 128-bit x86 vectors. The archsimd kernels for this
	// tier are VEX encoded, so it is only usable when AVX is present.
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// DispatchScalar reports 16 because the Vec emulation models a 128-bit register.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// vecWidth is the width in bytes of the emulated Vec register.
const vecWidth = 16

// noSimd caches HWY_NO_SIMD, read once at startup.
var noSimd = NoSimdEnv()

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, only DispatchScalar is reported as supported, regardless of CPU
// capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// DetectFeatures returns the CPU features of the running machine with
// HWY_NO_SIMD applied as ForceGeneric. It is cheap enough to call on every
// operation; the underlying CPUID probe runs once per process.
func DetectFeatures() cpu.Features {
	f := cpu.DetectFeatures()
	if noSimd {
		f.ForceGeneric = true
	}
	return f
}

// Supports reports whether level can run on a machine with features f.
// DispatchScalar is always supported. Hardware levels additionally require
// that the running CPU really has them, so forcing features in tests can
// never select instructions that would fault.
func Supports(f cpu.Features, level DispatchLevel) bool {
	if level == DispatchScalar {
		return true
	}
	if f.ForceGeneric {
		return false
	}
	switch level {
	case DispatchSSE2:
		return f.HasSSE2 && f.HasAVX && hardwareHas(level)
	case DispatchAVX2:
		return f.HasAVX2 && hardwareHas(level)
	case DispatchAVX512:
		return f.HasAVX512 && hardwareHas(level)
	case DispatchNEON:
		return f.HasNEON && hardwareHas(level)
	default:
		return false
	}
}

// BestLevel returns the widest level supported with features f.
func BestLevel(f cpu.Features) DispatchLevel {
	for _, level := range []DispatchLevel{DispatchAVX512, DispatchAVX2, DispatchSSE2, DispatchNEON} {
		if Supports(f, level) {
			return level
		}
	}
	return DispatchScalar
}

// CurrentLevel returns the widest SIMD level usable right now.
func CurrentLevel() DispatchLevel {
	return BestLevel(DetectFeatures())
}

// MaxLanes returns the number of lanes of type T in a Vec.
//
// The emulated register is 128 bits wide:
//   - float32, int32: 4 lanes
//   - int16, uint16: 8 lanes
//   - uint8: 16 lanes
func MaxLanes[T Lanes]() int {
	return lanesIn[T](vecWidth)
}

// LanesFor returns the lane width of T at the given level, for example
// 8 for float32 and 32 for uint8 under DispatchAVX2.
func LanesFor[T Lanes](level DispatchLevel) int {
	return lanesIn[T](level.Width())
}

func lanesIn[T Lanes](width int) int {
	return width / int(unsafe.Sizeof(*new(T)))
}
