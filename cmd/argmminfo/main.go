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

// Command argmminfo prints the CPU features seen by Go and the argmm
// strategy table of every element type.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/ajroetker/go-argmm/hwy/contrib/argmm"
)

func main() {
	printInfo(os.Stdout)
}

func printInfo(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}
	fmt.Fprintln(w)

	f := hwy.DetectFeatures()
	fmt.Fprintf(w, "Detected: SSE2=%v AVX=%v AVX2=%v AVX512=%v NEON=%v ForceGeneric=%v\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric)
	fmt.Fprintf(w, "HWY_NO_SIMD: %v\n", hwy.NoSimdEnv())
	fmt.Fprintf(w, "SIMD kernels compiled: %v\n", hwy.SIMDKernels)
	fmt.Fprintf(w, "Best level: %s (%d bytes)\n", hwy.CurrentLevel(), hwy.CurrentLevel().Width())
	fmt.Fprintln(w)

	printStrategies[float32](w, "float32")
	printStrategies[int32](w, "int32")
	printStrategies[int16](w, "int16")
	printStrategies[uint16](w, "uint16")
	printStrategies[uint8](w, "uint8")
}

// printStrategies lists the strategies of T in lookup order, marking the
// one selected on this machine.
func printStrategies[T hwy.Lanes](w io.Writer, name string) {
	title := cases.Title(language.English).String(name + " strategies")
	fmt.Fprintf(w, "=== %s ===\n", title)

	selected, _ := argmm.Selected[T]()
	for _, s := range argmm.Strategies[T]() {
		mark := " "
		if s.Name == selected.Name {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-9s level=%-7s priority=%-3d lanes=%-3d block=%d\n",
			mark, s.Name, s.Level, s.Priority, s.Lanes, s.MaxBlock)
	}
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:     %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:    %v\n", cpu.X86.HasSSE41)
	fmt.Fprintf(w, "  HasSSE42:    %v\n", cpu.X86.HasSSE42)
	fmt.Fprintf(w, "  HasAVX:      %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:     %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasAVX512F:  %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512BW: %v\n", cpu.X86.HasAVX512BW)
}
