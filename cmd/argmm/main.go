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

// Command argmm prints the index of the minimum and maximum of a numeric
// column.
//
// Usage:
//
//	argmm -type i32 -format bin data.bin
//	argmm -type f32 -op min values.txt.zst
//	zcat data.gz | argmm -type u8 -
//	argmm -type i16 -bench 1000000        # scalar vs dispatched timing
//
// Input is either whitespace separated numbers (-format text) or packed
// little-endian elements (-format bin). zstd, gzip, zlib and framed snappy
// text input is detected from its magic bytes. Packed values can start with
// any bytes, so compressed binary input needs an explicit -codec:
//
//	argmm -type u16 -format bin -codec zstd data.bin.zst
//
// Output is one line per operation:
//
//	argmin 17 -3.5
//	argmax 2 99
//
// An empty column prints "argmin -".
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var (
	elemType   = flag.String("type", "f32", "Element type ("+strings.Join(typeNames, ",")+")")
	format     = flag.String("format", "text", "Input format (text, bin)")
	op         = flag.String("op", "both", "Operation (min, max, both)")
	codec      = flag.String("codec", "auto", "Input compression ("+strings.Join(codecNames, ",")+"); auto means none for -format bin")
	scalarOnly = flag.Bool("scalar", false, "Use the plain linear scan only")
	verbose    = flag.Bool("v", false, "Print the element count and the strategy used")
	benchN     = flag.Int("bench", 0, "Time scalar and dispatched scans over n random values instead of reading input")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: argmm [flags] file|-\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	opts := options{
		typ:     *elemType,
		format:  *format,
		op:      *op,
		codec:   *codec,
		scalar:  *scalarOnly,
		verbose: *verbose,
		bench:   *benchN,
	}
	if err := opts.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	if opts.bench > 0 {
		if err := runBench(os.Stdout, opts.typ, opts.bench); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: exactly one input file (or -) is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(os.Stdout, flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the validated command-line settings.
type options struct {
	typ     string
	format  string
	op      string
	codec   string
	scalar  bool
	verbose bool
	bench   int
}

func (o options) validate() error {
	if !slices.Contains(typeNames, o.typ) {
		return fmt.Errorf("unknown -type %q", o.typ)
	}
	if o.format != "text" && o.format != "bin" {
		return fmt.Errorf("unknown -format %q", o.format)
	}
	if o.op != "min" && o.op != "max" && o.op != "both" {
		return fmt.Errorf("unknown -op %q", o.op)
	}
	if !slices.Contains(codecNames, o.codec) {
		return fmt.Errorf("unknown -codec %q", o.codec)
	}
	if o.bench > 0 && o.scalar {
		return fmt.Errorf("-scalar cannot be combined with -bench, which always times both scans")
	}
	return nil
}

// run reads the column at path ("-" for stdin) and writes the results to w.
func run(w io.Writer, path string, opts options) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	r, err := decompress(in, opts.inputCodec())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer r.Close()

	if err := report(w, r, opts); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// inputCodec resolves -codec auto. Only text input is sniffed: a packed
// column may begin with bytes that look like a gzip or zlib header.
func (o options) inputCodec() string {
	if o.codec == "auto" && o.format == "bin" {
		return "none"
	}
	return o.codec
}
