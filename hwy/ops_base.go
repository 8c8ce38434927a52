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

package hwy

// This file provides pure Go implementations of the Highway operations the
// fallback kernels are written in. Every Vec holds MaxLanes[T]() lanes.

// Load creates a vector by loading data from a slice.
// src must hold at least MaxLanes[T]() elements.
func Load[T Lanes](src []T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes]() Vec[T] {
	data := make([]T, MaxLanes[T]())
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition. Integer lanes wrap around.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IsNaN returns a mask indicating which lanes contain NaN values.
// For integer types, this always returns all false.
func IsNaN[T Lanes](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, val := range v.data {
		bits[i] = val != val
	}
	return Mask[T]{bits: bits}
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// MaskOr performs bitwise OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskAndNot performs (~a) & b on masks.
func MaskAndNot[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = !a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: result}
}

// RebindMask reinterprets a mask over T lanes as a mask over U lanes.
// T and U must have the same lane count, as for a value register and the
// index register it is paired with.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	if MaxLanes[U]() != len(m.bits) {
		panic("hwy: RebindMask lane count mismatch")
	}
	return Mask[U]{bits: m.bits}
}
