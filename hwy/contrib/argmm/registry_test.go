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

import (
	"testing"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func fakeKernel(name string, level hwy.DispatchLevel, priority int) kernel[int32] {
	k := fallbackKernel[int32, uint32]()
	k.name, k.level, k.priority = name, level, priority
	k.lanes = hwy.LanesFor[int32](level)
	k.maxBlock = blockLimit(32, k.lanes)
	return k
}

func TestRegistryLookupPrefersHigherPriority(t *testing.T) {
	reg := &registry[int32]{}
	reg.register(fakeKernel("fallback", hwy.DispatchScalar, 0))
	reg.register(fakeKernel("avx2", hwy.DispatchAVX2, 20))
	reg.register(fakeKernel("sse2", hwy.DispatchSSE2, 10))

	all := cpu.Features{HasSSE2: true, HasAVX: true, HasAVX2: true}
	k, ok := reg.lookup(all)
	if !ok {
		t.Fatal("lookup found nothing")
	}
	want := "fallback"
	switch {
	case hwy.Supports(all, hwy.DispatchAVX2):
		want = "avx2"
	case hwy.Supports(all, hwy.DispatchSSE2):
		want = "sse2"
	}
	if k.name != want {
		t.Errorf("lookup(all features) = %q, want %q", k.name, want)
	}

	if k, _ := reg.lookup(cpu.Features{}); k.name != "fallback" {
		t.Errorf("lookup(no features) = %q, want fallback", k.name)
	}

	names := []string{}
	for _, k := range reg.list() {
		names = append(names, k.name)
	}
	if len(names) != 3 || names[0] != "avx2" || names[1] != "sse2" || names[2] != "fallback" {
		t.Errorf("list() order = %v, want [avx2 sse2 fallback]", names)
	}
}

func TestRegistryLookupForceGeneric(t *testing.T) {
	reg := &registry[int32]{}
	reg.register(fakeKernel("fallback", hwy.DispatchScalar, 0))
	reg.register(fakeKernel("avx2", hwy.DispatchAVX2, 20))

	k, ok := reg.lookup(cpu.Features{HasAVX2: true, ForceGeneric: true})
	if !ok || k.name != "fallback" {
		t.Errorf("lookup with ForceGeneric = %q, want fallback", k.name)
	}
}

func TestRegistryLookupEmpty(t *testing.T) {
	reg := &registry[int32]{}
	if _, ok := reg.lookup(cpu.Features{}); ok {
		t.Error("lookup on empty registry reported a kernel")
	}
}

func TestRegistryRejectsMalformedKernels(t *testing.T) {
	tests := []struct {
		name   string
		modify func(k *kernel[int32])
	}{
		{"zero lanes", func(k *kernel[int32]) { k.lanes = 0 }},
		{"lanes not a power of two", func(k *kernel[int32]) { k.lanes = 6; k.maxBlock = 60 }},
		{"too many lanes", func(k *kernel[int32]) { k.lanes = 64; k.maxBlock = 64 }},
		{"block not a multiple", func(k *kernel[int32]) { k.maxBlock = 10 }},
		{"lanes wider than the tier", func(k *kernel[int32]) { k.lanes = 8; k.maxBlock = 64 }},
		{"missing scan", func(k *kernel[int32]) { k.scanMax = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := fakeKernel("bad", hwy.DispatchScalar, 0)
			tt.modify(&k)
			defer func() {
				if recover() == nil {
					t.Errorf("register(%s) did not panic", tt.name)
				}
			}()
			(&registry[int32]{}).register(k)
		})
	}
}

func TestRegistryFor(t *testing.T) {
	if registryFor[float32]() != float32Kernels {
		t.Error("registryFor[float32] is not the float32 table")
	}
	if registryFor[uint8]() != uint8Kernels {
		t.Error("registryFor[uint8] is not the uint8 table")
	}
	if registryFor[float64]() != nil {
		t.Error("registryFor[float64] should be nil")
	}
	if registryFor[celsius]() != nil {
		t.Error("registryFor of a named float32 should be nil")
	}
}

func TestStrategies(t *testing.T) {
	checkStrategies[float32](t, 4)
	checkStrategies[int32](t, 4)
	checkStrategies[int16](t, 8)
	checkStrategies[uint16](t, 8)
	checkStrategies[uint8](t, 16)

	if got := Strategies[float64](); got != nil {
		t.Errorf("Strategies[float64]() = %v, want nil", got)
	}
	if _, ok := Selected[int64](); ok {
		t.Error("Selected[int64]() reported a strategy")
	}
}

func checkStrategies[T hwy.Lanes](t *testing.T, fallbackLanes int) {
	t.Helper()
	list := Strategies[T]()
	if len(list) == 0 {
		t.Fatalf("Strategies[%T]() is empty", *new(T))
	}
	last := list[len(list)-1]
	if last.Name != "fallback" || last.Level != hwy.DispatchScalar || last.Lanes != fallbackLanes {
		t.Errorf("Strategies[%T]() last = %+v, want the %d-lane fallback", *new(T), last, fallbackLanes)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Priority < list[i].Priority {
			t.Errorf("Strategies[%T]() not in priority order: %+v", *new(T), list)
		}
	}
	for _, s := range list {
		if s.Lanes != hwy.LanesFor[T](s.Level) {
			t.Errorf("%T %s: %d lanes, want %d", *new(T), s.Name, s.Lanes, hwy.LanesFor[T](s.Level))
		}
	}

	sel, ok := Selected[T]()
	if !ok {
		t.Fatalf("Selected[%T]() found nothing", *new(T))
	}
	features := hwy.DetectFeatures()
	if !hwy.Supports(features, sel.Level) {
		t.Errorf("Selected[%T]() = %s, which this CPU does not support", *new(T), sel.Level)
	}
	for _, s := range list {
		if s.Priority > sel.Priority && hwy.Supports(features, s.Level) {
			t.Errorf("Selected[%T]() = %s, but %s is supported and preferred", *new(T), sel.Name, s.Name)
		}
	}
}

func TestSelectedForceGeneric(t *testing.T) {
	defer cpu.ResetDetection()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})

	sel, ok := Selected[float32]()
	if !ok || sel.Name != "fallback" {
		t.Errorf("Selected[float32]() with ForceGeneric = %+v, want fallback", sel)
	}
	if _, ok := dispatch[float32](1000); ok {
		t.Error("dispatch with ForceGeneric chose a hardware kernel")
	}
}

func TestDispatchShortInput(t *testing.T) {
	for n := 1; n <= 40; n++ {
		if k, ok := dispatch[uint8](n); ok && k.lanes > n {
			t.Errorf("dispatch(%d) chose %q with %d lanes", n, k.name, k.lanes)
		}
	}
	if _, ok := dispatch[float64](1 << 20); ok {
		t.Error("dispatch chose a kernel for float64")
	}
}
