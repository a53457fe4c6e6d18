/*
 * files.go, part of golobster.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package lobster

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// CompressedExtensions are the file extensions for which Decompress will
// use a decompressor, in the order FindFile tries them.
var CompressedExtensions = []string{".gz", ".bz2", ".zst", ".br", ".lz4", ".sz", ".zlib"}

// Decompress returns a reader that decompresses r according to the extension
// of name. If the extension is not one of the known compressed formats, r is
// returned as it is. The caller should close the returned reader (which does not
// close r).
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	nopreader := func(f func(io.Reader) io.Reader) func(io.Reader) (io.ReadCloser, error) {
		return func(a io.Reader) (io.ReadCloser, error) { return io.NopCloser(f(a)), nil }
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".gzip":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := gzip.NewReader(a)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	case ".zst", ".zstd":
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := zstd.NewReader(a)
			if err != nil {
				return nil, err
			}
			return r.IOReadCloser(), nil
		}
	case ".z", ".zlib":
		AnyNewReader = zlib.NewReader
	case ".bz2":
		AnyNewReader = nopreader(bzip2.NewReader)
	case ".br":
		AnyNewReader = nopreader(func(a io.Reader) io.Reader { return brotli.NewReader(a) })
	case ".lz4":
		AnyNewReader = nopreader(func(a io.Reader) io.Reader { return lz4.NewReader(a) })
	case ".sz", ".snappy":
		AnyNewReader = nopreader(func(a io.Reader) io.Reader { return snappy.NewReader(a) })
	default:
		return io.NopCloser(r), nil
	}
	rc, err := AnyNewReader(r)
	if err != nil {
		return nil, fmt.Errorf("Decompress %s: %w", name, err)
	}
	return rc, nil
}

// ReadText reads the whole file name and returns its contents as a string.
// Compressed files are transparently decompressed (see Decompress).
func ReadText(name string) (string, error) {
	f, err := os.Open(name)
	if err != nil {
		return "", fmt.Errorf("ReadText: %w", err)
	}
	defer f.Close()
	r, err := Decompress(name, f)
	if err != nil {
		return "", fmt.Errorf("ReadText: %w", err)
	}
	defer r.Close()
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("ReadText %s: %w", name, err)
	}
	return string(b), nil
}

// FindFile looks in dir for the file base, or for base with one of the
// CompressedExtensions. It returns the path to the first one found.
func FindFile(dir, base string) (string, error) {
	candidates := make([]string, 0, len(CompressedExtensions)+1)
	candidates = append(candidates, base)
	for _, v := range CompressedExtensions {
		candidates = append(candidates, base+v)
	}
	for _, v := range candidates {
		p := filepath.Join(dir, v)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("FindFile: no %s (plain or compressed) in %s", base, dir)
}
