// SPDX-License-Identifier: MIT

// Package textio opens the text inputs of a verification run (matrix files and
// timing logs) and writes fixtures, transparently handling zstd compression
// selected by the ".zst" file extension. Large operand and result matrices are
// commonly archived compressed next to their benchmark output.
package textio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ZstdExt is the file extension that selects zstd (de)compression.
const ZstdExt = ".zst"

// IsCompressed reports whether path is handled as a zstd stream.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, ZstdExt)
}

type decodingReader struct {
	*zstd.Decoder
	f *os.File
}

func (r *decodingReader) Close() error {
	r.Decoder.Close()
	return r.f.Close()
}

// Open opens path for reading. The returned error keeps the *fs.PathError of
// os.Open, so errors.Is(err, fs.ErrNotExist) works for missing inputs.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}
	// Single-goroutine decoder: one file per cell, no point in spawning workers.
	dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("textio: zstd reader for %s: %w", path, err)
	}

	return &decodingReader{Decoder: dec, f: f}, nil
}

type encodingWriter struct {
	*zstd.Encoder
	f *os.File
}

func (w *encodingWriter) Close() error {
	return errors.Join(w.Encoder.Close(), w.f.Close())
}

// Create creates (or truncates) path for writing, making parent directories
// as needed. Close must be called to flush compressed output.
func Create(path string) (io.WriteCloser, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if !IsCompressed(path) {
		return f, nil
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("textio: zstd writer for %s: %w", path, err)
	}

	return &encodingWriter{Encoder: enc, f: f}, nil
}
