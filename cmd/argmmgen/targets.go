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

package main

import (
	"fmt"
	"slices"
)

// Target represents an instruction-set tier to generate kernels for.
type Target struct {
	Name     string // "sse2", "avx2"; also the kernel name and file suffix
	Title    string // "SSE2", "AVX2"; used in function names
	Level    string // hwy.DispatchLevel constant
	Priority int
	BuildTag string
	VecWidth int // register width in bytes
}

// ElemType describes one element type and its index lanes.
type ElemType struct {
	Go       string // "float32"
	Vec      string // archsimd element prefix, "Float32"
	IndexGo  string // index lane type, as wide as Go
	IndexVec string // archsimd prefix of the index lanes
	Bits     int
	// NaN is set for floating-point types, whose compare mask must let a
	// number replace NaN.
	NaN bool
}

// Lanes returns the lane count of e in t's registers.
func (e ElemType) Lanes(t Target) int {
	return t.VecWidth * 8 / e.Bits
}

// ElemTypes lists the element types with kernels, in registration order.
var ElemTypes = []ElemType{
	{Go: "float32", Vec: "Float32", IndexGo: "int32", IndexVec: "Int32", Bits: 32, NaN: true},
	{Go: "int32", Vec: "Int32", IndexGo: "int32", IndexVec: "Int32", Bits: 32},
	{Go: "int16", Vec: "Int16", IndexGo: "uint16", IndexVec: "Uint16", Bits: 16},
	{Go: "uint16", Vec: "Uint16", IndexGo: "uint16", IndexVec: "Uint16", Bits: 16},
	{Go: "uint8", Vec: "Uint8", IndexGo: "uint8", IndexVec: "Uint8", Bits: 8},
}

// SSE2Target returns the 128-bit target. archsimd emits VEX encodings, so
// the kernels need AVX at run time; hwy.Supports checks that.
func SSE2Target() Target {
	return Target{
		Name:     "sse2",
		Title:    "SSE2",
		Level:    "DispatchSSE2",
		Priority: 10,
		BuildTag: "amd64 && goexperiment.simd",
		VecWidth: 16,
	}
}

// AVX2Target returns the 256-bit target.
func AVX2Target() Target {
	return Target{
		Name:     "avx2",
		Title:    "AVX2",
		Level:    "DispatchAVX2",
		Priority: 20,
		BuildTag: "amd64 && goexperiment.simd",
		VecWidth: 32,
	}
}

var allTargets = map[string]func() Target{
	"sse2": SSE2Target,
	"avx2": AVX2Target,
}

// AvailableTargets returns the target names in sorted order.
func AvailableTargets() []string {
	names := make([]string, 0, len(allTargets))
	for name := range allTargets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetTarget returns the target with the given name.
func GetTarget(name string) (Target, error) {
	fn, ok := allTargets[name]
	if !ok {
		return Target{}, fmt.Errorf("unknown target %q", name)
	}
	return fn(), nil
}
