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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/ajroetker/go-argmm/hwy/contrib/argmm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var typeNames = []string{"f32", "i32", "i16", "u16", "u8"}

// elem describes how to read and generate one element type.
type elem[T hwy.Lanes] struct {
	name   string
	size   int
	parse  func(string) (T, error)
	decode func([]byte) T
	random func(*rand.Rand) T
}

var (
	float32Elem = elem[float32]{
		name: "float32",
		size: 4,
		parse: func(s string) (float32, error) {
			v, err := strconv.ParseFloat(s, 32)
			return float32(v), err
		},
		decode: func(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) },
		random: func(r *rand.Rand) float32 { return float32(r.NormFloat64()) },
	}
	int32Elem = elem[int32]{
		name: "int32",
		size: 4,
		parse: func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 10, 32)
			return int32(v), err
		},
		decode: func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) },
		random: func(r *rand.Rand) int32 { return int32(r.IntN(200001)) - 100000 },
	}
	int16Elem = elem[int16]{
		name: "int16",
		size: 2,
		parse: func(s string) (int16, error) {
			v, err := strconv.ParseInt(s, 10, 16)
			return int16(v), err
		},
		decode: func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) },
		random: func(r *rand.Rand) int16 { return int16(r.Uint32()) },
	}
	uint16Elem = elem[uint16]{
		name: "uint16",
		size: 2,
		parse: func(s string) (uint16, error) {
			v, err := strconv.ParseUint(s, 10, 16)
			return uint16(v), err
		},
		decode: binary.LittleEndian.Uint16,
		random: func(r *rand.Rand) uint16 { return uint16(r.Uint32()) },
	}
	uint8Elem = elem[uint8]{
		name: "uint8",
		size: 1,
		parse: func(s string) (uint8, error) {
			v, err := strconv.ParseUint(s, 10, 8)
			return uint8(v), err
		},
		decode: func(b []byte) uint8 { return b[0] },
		random: func(r *rand.Rand) uint8 { return uint8(r.Uint32()) },
	}
)

// readText parses whitespace separated numbers.
func readText[T hwy.Lanes](r io.Reader, e elem[T]) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	var out []T
	for sc.Scan() {
		v, err := e.parse(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// readBinary decodes packed little-endian elements.
func readBinary[T hwy.Lanes](r io.Reader, e elem[T]) ([]T, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data)%e.size != 0 {
		return nil, fmt.Errorf("%d bytes is not a whole number of %s values", len(data), e.name)
	}
	out := make([]T, len(data)/e.size)
	for i := range out {
		out[i] = e.decode(data[i*e.size:])
	}
	return out, nil
}

// report reads a column of opts.typ from r and writes the requested results.
func report(w io.Writer, r io.Reader, opts options) error {
	switch opts.typ {
	case "f32":
		return reportAs(w, r, opts, float32Elem)
	case "i32":
		return reportAs(w, r, opts, int32Elem)
	case "i16":
		return reportAs(w, r, opts, int16Elem)
	case "u16":
		return reportAs(w, r, opts, uint16Elem)
	case "u8":
		return reportAs(w, r, opts, uint8Elem)
	default:
		return fmt.Errorf("unknown type %q", opts.typ)
	}
}

func reportAs[T hwy.Lanes](w io.Writer, r io.Reader, opts options, e elem[T]) error {
	var (
		s   []T
		err error
	)
	if opts.format == "bin" {
		s, err = readBinary(r, e)
	} else {
		s, err = readText(r, e)
	}
	if err != nil {
		return err
	}

	if opts.verbose {
		p := message.NewPrinter(language.English)
		p.Fprintf(w, "%d %s values, strategy %s\n", len(s), e.name, strategyFor[T](len(s), opts.scalar))
	}

	argmin, argmax := argmm.Argmin[T], argmm.Argmax[T]
	if opts.scalar {
		argmin, argmax = simple(argmm.SimpleArgmin[T]), simple(argmm.SimpleArgmax[T])
	}
	if opts.op != "max" {
		writeResult(w, "argmin", s, argmin)
	}
	if opts.op != "min" {
		writeResult(w, "argmax", s, argmax)
	}
	return nil
}

// simple adapts a scan that panics on empty input to the (index, ok) form.
func simple[T hwy.Lanes](scan func([]T) int) func([]T) (int, bool) {
	return func(s []T) (int, bool) {
		if len(s) == 0 {
			return 0, false
		}
		return scan(s), true
	}
}

func writeResult[T hwy.Lanes](w io.Writer, label string, s []T, fn func([]T) (int, bool)) {
	i, ok := fn(s)
	if !ok {
		fmt.Fprintf(w, "%s -\n", label)
		return
	}
	fmt.Fprintf(w, "%s %d %v\n", label, i, s[i])
}

// strategyFor names what argmm.Argmin runs for n elements of T.
func strategyFor[T hwy.Lanes](n int, scalar bool) string {
	if scalar {
		return "scalar"
	}
	st, ok := argmm.Selected[T]()
	if !ok || st.Level == hwy.DispatchScalar || n < st.Lanes {
		return "scalar"
	}
	return fmt.Sprintf("%s (%d lanes)", st.Name, st.Lanes)
}
