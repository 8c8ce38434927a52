// Package hwy is the lane substrate shared by the argmm kernels.
//
// It describes which element types may live in SIMD lanes, which instruction-set
// tiers exist and how wide their registers are, and how to detect the tiers
// usable on the running CPU. It also provides Vec and Mask, a portable emulation
// of one 128-bit register, used by the fallback kernels on targets without a
// hardware implementation.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-argmm/hwy"
//
//	v := hwy.Load(data)
//	m := hwy.LessThan(v, hwy.Set[float32](0))
//	neg := hwy.IfThenElse(m, v, hwy.Set[float32](0))
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Every Lanes type has a native total order, except for NaN floats.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding MaxLanes[T]() elements.
//
// Vec instances should not be created directly; use Load, Set or Iota.
type Vec[T Lanes] struct {
	data []T
}

// Data returns the lanes of v. The slice aliases the vector.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask represents the result of a comparison operation.
// It can be used with IfThenElse to perform conditional selection.
//
// Mask instances should not be created directly; use comparison operations
// like LessThan or GreaterThan instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits []bool
}
