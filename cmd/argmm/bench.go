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
	"io"
	"math/rand/v2"
	"time"

	"github.com/ajroetker/go-argmm/hwy"
	"github.com/ajroetker/go-argmm/hwy/contrib/argmm"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// benchTime is how long each variant is repeated for.
var benchTime = 200 * time.Millisecond

// runBench times the plain scan against the dispatched one over n random
// values of typ.
func runBench(w io.Writer, typ string, n int) error {
	switch typ {
	case "f32":
		benchAs(w, n, float32Elem)
	case "i32":
		benchAs(w, n, int32Elem)
	case "i16":
		benchAs(w, n, int16Elem)
	case "u16":
		benchAs(w, n, uint16Elem)
	case "u8":
		benchAs(w, n, uint8Elem)
	default:
		return fmt.Errorf("unknown type %q", typ)
	}
	return nil
}

func benchAs[T hwy.Lanes](w io.Writer, n int, e elem[T]) {
	r := rand.New(rand.NewPCG(uint64(n), 42))
	s := make([]T, n)
	for i := range s {
		s[i] = e.random(r)
	}

	scalar := timeIt(func() int { return argmm.SimpleArgmax(s) })
	dispatched := timeIt(func() int { i, _ := argmm.Argmax(s); return i })

	p := message.NewPrinter(language.English)
	p.Fprintf(w, "%s x %d\n", e.name, n)
	p.Fprintf(w, "  scalar      %12d ns/op\n", scalar.Nanoseconds())
	p.Fprintf(w, "  %-11s %12d ns/op\n", strategyFor[T](n, false), dispatched.Nanoseconds())
	if dispatched > 0 {
		p.Fprintf(w, "  speedup     %12.2fx\n", float64(scalar)/float64(dispatched))
	}
}

var benchSink int

// timeIt returns the mean duration of fn over at least benchTime.
func timeIt(fn func() int) time.Duration {
	var (
		iters   int
		elapsed time.Duration
	)
	start := time.Now()
	for elapsed < benchTime || iters == 0 {
		benchSink = fn()
		iters++
		elapsed = time.Since(start)
	}
	return elapsed / time.Duration(iters)
}
