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

// Command argmmgen generates the archsimd lane-scan kernels of the argmm
// package, one file per target.
//
// Usage:
//
//	argmmgen -output . -targets sse2,avx2
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/argmmgen -output . -targets all
//
// Each target file registers, for every element type with a kernel, a min and
// a max scan written against the target's archsimd vector types.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	targets    = flag.String("targets", "all", "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	packageOut = flag.String("pkg", "argmm", "Output package name")
)

func main() {
	flag.Parse()

	targetList := parseTargets(*targets)
	if len(targetList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid targets specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir:  *outputDir,
		Targets:    targetList,
		PackageOut: *packageOut,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated code for targets: %s\n", strings.Join(targetList, ", "))
}

func parseTargets(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableTargets()
	}
	return result
}
