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
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// testLengths covers empty, one element, every lane width +-1 and
// lengths with a remainder in front of several chunks.
var testLengths = []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 257, 1000, 1027, 4099}

type entryPoints[T hwy.Lanes] struct {
	min, max func([]T) (int, bool)
}

// checkEntryPoints compares Argmin/Argmax, the per-type functions and every
// strategy usable here against the plain scan on s.
func checkEntryPoints[T hwy.Lanes](t *testing.T, s []T, typed entryPoints[T]) {
	t.Helper()

	wantMin, wantMax, wantOK := 0, 0, len(s) > 0
	if wantOK {
		wantMin, wantMax = SimpleArgmin(s), SimpleArgmax(s)
	}

	check := func(name string, fn func([]T) (int, bool), want int) {
		t.Helper()
		got, ok := fn(s)
		if ok != wantOK || (ok && got != want) {
			t.Errorf("%s(len %d) = (%d, %v), want (%d, %v)", name, len(s), got, ok, want, wantOK)
		}
	}
	check("Argmin", Argmin[T], wantMin)
	check("Argmax", Argmax[T], wantMax)
	check("typed min", typed.min, wantMin)
	check("typed max", typed.max, wantMax)

	features := hwy.DetectFeatures()
	for _, k := range registryFor[T]().list() {
		if !hwy.Supports(features, k.level) {
			continue
		}
		check(k.name+" min", func(s []T) (int, bool) { return run(k, k.scanMin, lessMin[T], s) }, wantMin)
		check(k.name+" max", func(s []T) (int, bool) { return run(k, k.scanMax, greaterMax[T], s) }, wantMax)
	}
}

func checkRandom[T hwy.Lanes](t *testing.T, typed entryPoints[T], gen func(r *rand.Rand) T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, n := range testLengths {
		for trial := range 3 {
			s := make([]T, n)
			for i := range s {
				s[i] = gen(r)
			}
			t.Run(fmt.Sprintf("len=%d/trial=%d", n, trial), func(t *testing.T) {
				checkEntryPoints(t, s, typed)
			})
		}
	}
}

func TestMatchesScalarFloat32(t *testing.T) {
	typed := entryPoints[float32]{ArgminFloat32, ArgmaxFloat32}
	t.Run("wide", func(t *testing.T) {
		checkRandom(t, typed, func(r *rand.Rand) float32 { return float32(r.NormFloat64() * 1e6) })
	})
	t.Run("ties", func(t *testing.T) {
		checkRandom(t, typed, func(r *rand.Rand) float32 { return float32(r.IntN(5)) - 2 })
	})
}

func TestMatchesScalarInt32(t *testing.T) {
	typed := entryPoints[int32]{ArgminInt32, ArgmaxInt32}
	t.Run("wide", func(t *testing.T) {
		checkRandom(t, typed, func(r *rand.Rand) int32 { return int32(r.Uint32()) })
	})
	t.Run("ties", func(t *testing.T) {
		checkRandom(t, typed, func(r *rand.Rand) int32 { return int32(r.IntN(200001)) - 100000 })
	})
}

func TestMatchesScalarInt16(t *testing.T) {
	typed := entryPoints[int16]{ArgminInt16, ArgmaxInt16}
	checkRandom(t, typed, func(r *rand.Rand) int16 { return int16(r.Uint32()) })
}

func TestMatchesScalarUint16(t *testing.T) {
	typed := entryPoints[uint16]{ArgminUint16, ArgmaxUint16}
	checkRandom(t, typed, func(r *rand.Rand) uint16 { return uint16(r.Uint32()) })
}

func TestMatchesScalarUint8(t *testing.T) {
	typed := entryPoints[uint8]{ArgminUint8, ArgmaxUint8}
	checkRandom(t, typed, func(r *rand.Rand) uint8 { return uint8(r.Uint32()) })
}

func TestTieBreak(t *testing.T) {
	inf := float32(math.Inf(1))
	f32 := []float32{10, math.MaxFloat32, 6, -inf, -inf, math.MaxFloat32, 10000}
	i32 := []int32{10, math.MaxInt32, 6, math.MinInt32, math.MinInt32, math.MaxInt32, 10000}
	i16 := []int16{10, math.MaxInt16, 6, math.MinInt16, math.MinInt16, math.MaxInt16, 10000}
	u16 := []uint16{10, math.MaxUint16, 6, 0, 0, math.MaxUint16, 10000}
	u8 := []uint8{10, math.MaxUint8, 6, 0, 0, math.MaxUint8, 100}

	tests := []struct {
		name     string
		min, max func() (int, bool)
	}{
		{"float32", func() (int, bool) { return Argmin(f32) }, func() (int, bool) { return Argmax(f32) }},
		{"ArgminFloat32", func() (int, bool) { return ArgminFloat32(f32) }, func() (int, bool) { return ArgmaxFloat32(f32) }},
		{"int32", func() (int, bool) { return Argmin(i32) }, func() (int, bool) { return Argmax(i32) }},
		{"ArgminInt32", func() (int, bool) { return ArgminInt32(i32) }, func() (int, bool) { return ArgmaxInt32(i32) }},
		{"ArgminInt16", func() (int, bool) { return ArgminInt16(i16) }, func() (int, bool) { return ArgmaxInt16(i16) }},
		{"ArgminUint16", func() (int, bool) { return ArgminUint16(u16) }, func() (int, bool) { return ArgmaxUint16(u16) }},
		{"ArgminUint8", func() (int, bool) { return ArgminUint8(u8) }, func() (int, bool) { return ArgmaxUint8(u8) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := tt.min(); !ok || got != 3 {
				t.Errorf("argmin = (%d, %v), want (3, true)", got, ok)
			}
			if got, ok := tt.max(); !ok || got != 1 {
				t.Errorf("argmax = (%d, %v), want (1, true)", got, ok)
			}
		})
	}
}

// The extremum sits in the body and ties with values in the remainder and
// in later chunks of other lanes.
func TestTieAcrossRemainderAndLanes(t *testing.T) {
	s := make([]int32, 3+4*8)
	for i := range s {
		s[i] = 50
	}
	s[2] = 1
	s[3+5] = 1  // body lane 1
	s[3+12] = 1 // body lane 0, later chunk
	s[20] = 99
	s[30] = 99

	if got, _ := Argmin(s); got != 2 {
		t.Errorf("Argmin = %d, want 2", got)
	}
	if got, _ := ArgminInt32(s); got != 2 {
		t.Errorf("ArgminInt32 = %d, want 2", got)
	}
	if got, _ := ArgmaxInt32(s); got != 20 {
		t.Errorf("ArgmaxInt32 = %d, want 20", got)
	}

	s[2] = 50
	if got, _ := ArgminInt32(s); got != 8 {
		t.Errorf("ArgminInt32 without remainder tie = %d, want 8", got)
	}
}

func TestEmpty(t *testing.T) {
	if _, ok := Argmin([]float32{}); ok {
		t.Error("Argmin(empty) reported a result")
	}
	if _, ok := Argmax[int16](nil); ok {
		t.Error("Argmax(nil) reported a result")
	}
	if _, ok := ArgminUint8(nil); ok {
		t.Error("ArgminUint8(nil) reported a result")
	}
	if _, ok := ArgmaxFloat32([]float32{}); ok {
		t.Error("ArgmaxFloat32(empty) reported a result")
	}
	if _, ok := Argmin([]float64{}); ok {
		t.Error("Argmin(empty float64) reported a result")
	}
}

func TestSingleElement(t *testing.T) {
	for _, x := range []float32{0, -1, float32(math.Inf(1)), float32(math.NaN()), math.MaxFloat32} {
		s := []float32{x}
		for name, fn := range map[string]func([]float32) (int, bool){
			"Argmin": Argmin[float32], "Argmax": Argmax[float32],
			"ArgminFloat32": ArgminFloat32, "ArgmaxFloat32": ArgmaxFloat32,
		} {
			if got, ok := fn(s); !ok || got != 0 {
				t.Errorf("%s([%v]) = (%d, %v), want (0, true)", name, x, got, ok)
			}
		}
	}
}

func TestRemainderOnly(t *testing.T) {
	s := []float32{4, -2, 9}
	if got, _ := ArgminFloat32(s); got != SimpleArgmin(s) {
		t.Errorf("ArgminFloat32(%v) = %d, want %d", s, got, SimpleArgmin(s))
	}
	if got, _ := ArgmaxFloat32(s); got != SimpleArgmax(s) {
		t.Errorf("ArgmaxFloat32(%v) = %d, want %d", s, got, SimpleArgmax(s))
	}
}

func TestIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	s := make([]uint16, 1001)
	for i := range s {
		s[i] = uint16(r.IntN(300))
	}
	saved := append([]uint16(nil), s...)

	first, _ := ArgminUint16(s)
	second, _ := ArgminUint16(s)
	if first != second {
		t.Errorf("ArgminUint16 not idempotent: %d then %d", first, second)
	}
	first, _ = Argmax(s)
	second, _ = Argmax(s)
	if first != second {
		t.Errorf("Argmax not idempotent: %d then %d", first, second)
	}
	for i := range s {
		if s[i] != saved[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}

// NaN never wins, identically on every strategy.
func TestNaNPolicy(t *testing.T) {
	nan := float32(math.NaN())
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range testLengths[1:] {
		for _, density := range []float64{0.1, 0.5, 0.9, 1} {
			s := make([]float32, n)
			for i := range s {
				if r.Float64() < density {
					s[i] = nan
				} else {
					s[i] = float32(r.IntN(10))
				}
			}
			t.Run(fmt.Sprintf("len=%d/nan=%v", n, density), func(t *testing.T) {
				checkEntryPoints(t, s, entryPoints[float32]{ArgminFloat32, ArgmaxFloat32})

				got, _ := ArgminFloat32(s)
				if s[got] != s[got] {
					for _, v := range s {
						if v == v {
							t.Fatalf("ArgminFloat32 picked NaN at %d although numbers exist", got)
						}
					}
					if got != 0 {
						t.Errorf("ArgminFloat32(all NaN) = %d, want 0", got)
					}
				}
			})
		}
	}
}

// A NaN in the first chunk must not stick in its lane.
func TestNaNFirstChunk(t *testing.T) {
	nan := float32(math.NaN())
	s := []float32{nan, nan, nan, nan, nan, nan, nan, nan, 5, 3, 5, 3, 5, 3, 5, 3}
	if got, _ := ArgminFloat32(s); got != 9 {
		t.Errorf("ArgminFloat32 = %d, want 9", got)
	}
	if got, _ := ArgmaxFloat32(s); got != 8 {
		t.Errorf("ArgmaxFloat32 = %d, want 8", got)
	}
}

type celsius float32

func TestTypesWithoutKernels(t *testing.T) {
	f64 := []float64{3, -1, 7, -1, 7}
	if got, _ := Argmin(f64); got != 1 {
		t.Errorf("Argmin(float64) = %d, want 1", got)
	}
	if got, _ := Argmax(f64); got != 2 {
		t.Errorf("Argmax(float64) = %d, want 2", got)
	}

	temps := []celsius{21.5, 19, 25, 19, 25, 18, 30, 30, 17}
	if got, _ := Argmin(temps); got != 8 {
		t.Errorf("Argmin(celsius) = %d, want 8", got)
	}
	if got, _ := Argmax(temps); got != 6 {
		t.Errorf("Argmax(celsius) = %d, want 6", got)
	}

	i8 := []int8{-128, 127, -128}
	if got, _ := Argmin(i8); got != 0 {
		t.Errorf("Argmin(int8) = %d, want 0", got)
	}
}

func TestForceGenericAgrees(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	s := make([]int16, 4099)
	for i := range s {
		s[i] = int16(r.IntN(1000))
	}

	wantMin, _ := ArgminInt16(s)
	wantMax, _ := ArgmaxInt16(s)

	defer cpu.ResetDetection()
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})

	if got, _ := ArgminInt16(s); got != wantMin {
		t.Errorf("ArgminInt16 forced generic = %d, want %d", got, wantMin)
	}
	if got, _ := ArgmaxInt16(s); got != wantMax {
		t.Errorf("ArgmaxInt16 forced generic = %d, want %d", got, wantMax)
	}
	if got, _ := Argmin(s); got != wantMin {
		t.Errorf("Argmin forced generic = %d, want %d", got, wantMin)
	}
}
