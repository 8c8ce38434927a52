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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

// Generator writes one kernel file per target.
type Generator struct {
	OutputDir  string
	Targets    []string
	PackageOut string
}

// Run generates every requested target.
func (g *Generator) Run() error {
	for _, name := range g.Targets {
		target, err := GetTarget(name)
		if err != nil {
			return err
		}
		src, err := EmitTarget(target, g.PackageOut)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		filename := filepath.Join(g.OutputDir, fmt.Sprintf("argmm_%s.gen.go", target.Name))
		if err := os.WriteFile(filename, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
	}
	return nil
}

// formatOptions sorts and groups imports and gofmts the file, without
// resolving packages.
var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

type kernelData struct {
	Target Target
	Elem   ElemType
	Lanes  int
}

type fileData struct {
	Package string
	Target  Target
	Kernels []kernelData
}

// EmitTarget renders the kernel file of target and formats it.
func EmitTarget(target Target, pkgName string) ([]byte, error) {
	data := fileData{Package: pkgName, Target: target}
	for _, e := range ElemTypes {
		data.Kernels = append(data.Kernels, kernelData{Target: target, Elem: e, Lanes: e.Lanes(target)})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	formatted, err := imports.Process(fmt.Sprintf("argmm_%s.gen.go", target.Name), buf.Bytes(), formatOptions)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return formatted, nil
}

var fileTemplate = template.Must(template.New("file").Funcs(template.FuncMap{"op": newOp}).Parse(fileText))

func init() {
	template.Must(fileTemplate.New("scan").Parse(scanText))
}

type opData struct {
	K    kernelData
	Op   string
	Cmp  string
	Word string
	Bits int
}

// newOp pairs a kernel with the "Min"/"Less" or "Max"/"Greater" operation.
func newOp(k kernelData, op, cmp string) opData {
	word := "minimum"
	if op == "Max" {
		word = "maximum"
	}
	return opData{K: k, Op: op, Cmp: cmp, Word: word, Bits: k.Target.VecWidth * 8}
}

const fileText = `// Code generated by argmmgen. DO NOT EDIT.

//go:build {{.Target.BuildTag}}

package {{.Package}}

import (
	"simd/archsimd"

	"github.com/ajroetker/go-argmm/hwy"
)

func init() {
{{- range .Kernels}}
	{{.Elem.Go}}Kernels.register(kernel[{{.Elem.Go}}]{
		name:     "{{.Target.Name}}",
		level:    hwy.{{.Target.Level}},
		priority: {{.Target.Priority}},
		lanes:    {{.Lanes}},
		maxBlock: blockLimit({{.Elem.Bits}}, {{.Lanes}}),
		scanMin:  scanMin{{.Target.Title}}{{.Elem.Vec}},
		scanMax:  scanMax{{.Target.Title}}{{.Elem.Vec}},
	})
{{- end}}
}
{{range .Kernels}}{{template "scan" (op . "Min" "Less")}}{{template "scan" (op . "Max" "Greater")}}{{end}}`

const scanText = `
// scan{{.Op}}{{.K.Target.Title}}{{.K.Elem.Vec}} is the {{.Bits}}-bit lane scan of {{.K.Elem.Go}} for the {{.Word}}.
func scan{{.Op}}{{.K.Target.Title}}{{.K.Elem.Vec}}(body []{{.K.Elem.Go}}, vals []{{.K.Elem.Go}}, idxs []uint32) {
	var iota, step [{{.K.Lanes}}]{{.K.Elem.IndexGo}}
	for j := range iota {
		iota[j] = {{.K.Elem.IndexGo}}(j)
		step[j] = {{.K.Lanes}}
	}
	bestIdx := archsimd.Load{{.K.Elem.IndexVec}}x{{.K.Lanes}}Slice(iota[:])
	inc := archsimd.Load{{.K.Elem.IndexVec}}x{{.K.Lanes}}Slice(step[:])
	curIdx := bestIdx
	best := archsimd.Load{{.K.Elem.Vec}}x{{.K.Lanes}}Slice(body)

	for i := {{.K.Lanes}}; i < len(body); i += {{.K.Lanes}} {
		v := archsimd.Load{{.K.Elem.Vec}}x{{.K.Lanes}}Slice(body[i:])
		curIdx = curIdx.Add(inc)
{{- if .K.Elem.NaN}}
		mask := v.{{.Cmp}}(best).Or(best.NotEqual(best).And(v.Equal(v)))
{{- else}}
		mask := v.{{.Cmp}}(best)
{{- end}}
		best = v.Merge(best, mask)
		bestIdx = curIdx.Merge(bestIdx, mask)
	}

	best.StoreSlice(vals)
	var lanes [{{.K.Lanes}}]{{.K.Elem.IndexGo}}
	bestIdx.StoreSlice(lanes[:])
	for j, idx := range lanes {
		idxs[j] = uint32(idx)
	}
}
`
