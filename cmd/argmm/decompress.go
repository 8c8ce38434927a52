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
	"bytes"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

var codecNames = []string{"auto", "none", "zstd", "gzip", "zlib", "snappy"}

var (
	zstdMagic   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic   = []byte{0x1f, 0x8b}
	snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")
	// Second zlib header byte for a 32K window at each compression level.
	zlibLevels = []byte{0x01, 0x5e, 0x9c, 0xda}
)

// sniffCodec names the compression of a stream starting with head.
func sniffCodec(head []byte) string {
	switch {
	case bytes.HasPrefix(head, zstdMagic):
		return "zstd"
	case bytes.HasPrefix(head, gzipMagic):
		return "gzip"
	case bytes.HasPrefix(head, snappyMagic):
		return "snappy"
	case len(head) >= 2 && head[0] == 0x78 && bytes.IndexByte(zlibLevels, head[1]) >= 0:
		return "zlib"
	default:
		return "none"
	}
}

// decompress wraps r in the decoder for codec, sniffing it for "auto".
func decompress(r io.Reader, codec string) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if codec == "auto" {
		head, err := br.Peek(len(snappyMagic))
		if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
			return nil, err
		}
		codec = sniffCodec(head)
	}

	switch codec {
	case "none":
		return io.NopCloser(br), nil
	case "zstd":
		dec, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return dec.IOReadCloser(), nil
	case "gzip":
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case "zlib":
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return zr, nil
	case "snappy":
		return io.NopCloser(snappy.NewReader(br)), nil
	default:
		return nil, fmt.Errorf("unknown codec %q", codec)
	}
}
