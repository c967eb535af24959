package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// inputNames returns the files that may hold the input for day, in the
// order they are tried.
func inputNames(dir string, day int) []string {
	base := filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
	return []string{base, base + ".gz", base + ".zst", base + ".br"}
}

// loadInput reads the puzzle input for day from dir.
func loadInput(dir string, day int) (string, error) {
	names := inputNames(dir, day)
	for _, name := range names {
		f, err := os.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", err
		}
		defer f.Close()

		s, err := readInput(f, filepath.Ext(name))
		if err != nil {
			return "", fmt.Errorf("error reading %s: %w", name, err)
		}
		return s, nil
	}
	return "", fmt.Errorf("no input found (tried %s)", strings.Join(names, ", "))
}

// readInput decompresses r according to the file extension ext, and
// normalizes the text: a byte-order mark is removed (UTF-16 is converted to
// UTF-8), and line endings are converted to "\n".
func readInput(r io.Reader, ext string) (string, error) {
	switch ext {
	case ".gz":
		gr, err := gzip.NewReader(r)
		if err != nil {
			return "", err
		}
		defer gr.Close()
		r = gr
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return "", err
		}
		defer zr.Close()
		r = zr
	case ".br":
		r = brotli.NewReader(r)
	}

	t := transform.Chain(unicode.BOMOverride(transform.Nop), newlineNormalizer{})
	b, err := io.ReadAll(transform.NewReader(r, t))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// A newlineNormalizer is a Transformer that converts "\r\n" and lone "\r"
// to "\n".
type newlineNormalizer struct{}

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		n := 1
		if c == '\r' {
			if nSrc+1 == len(src) && !atEOF {
				// The next byte might be '\n'.
				err = transform.ErrShortSrc
				return
			}
			c = '\n'
			if nSrc+1 < len(src) && src[nSrc+1] == '\n' {
				n = 2
			}
		}
		if nDst == len(dst) {
			err = transform.ErrShortDst
			return
		}
		dst[nDst] = c
		nDst++
		nSrc += n
	}
	return
}

func (newlineNormalizer) Reset() {
}
