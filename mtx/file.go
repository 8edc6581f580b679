// SPDX-License-Identifier: MIT

package mtx

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/katalvlaran/matfixture/matrix"
)

// DefaultFileMode is the permission used for newly created fixture files.
const DefaultFileMode fs.FileMode = 0o644

// Option configures WriteFile.
type Option func(*fileOptions)

type fileOptions struct {
	compression Compression
	mode        fs.FileMode
}

// WithCompression wraps the text in the given codec and appends its extension
// to the file name. Panics on an unknown codec (programmer error).
func WithCompression(c Compression) Option {
	if !c.Valid() {
		panic(fmt.Sprintf("mtx: WithCompression: unknown codec %d", uint8(c)))
	}
	return func(o *fileOptions) { o.compression = c }
}

// WithFileMode sets the permission bits for created files.
func WithFileMode(mode fs.FileMode) Option {
	return func(o *fileOptions) { o.mode = mode }
}

func gatherOptions(opts ...Option) fileOptions {
	o := fileOptions{compression: None, mode: DefaultFileMode}
	for _, set := range opts {
		set(&o)
	}
	return o
}

// WriteFile serializes m into path (plus the codec extension, if any) and
// returns the path actually written.
//
// The parent directory must already exist; WriteFile never creates it, and a
// missing directory surfaces as an error matching fs.ErrNotExist. An existing
// file is truncated. A failure part-way leaves whatever was written in place.
func WriteFile(path string, m matrix.Matrix, opts ...Option) (written string, err error) {
	o := gatherOptions(opts...)
	written = path + o.compression.Extension()

	f, err := os.OpenFile(written, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, o.mode)
	if err != nil {
		return "", opErrorf("WriteFile", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = opErrorf("WriteFile", cerr)
		}
	}()

	cw, err := compressWriter(f, o.compression)
	if err != nil {
		return "", opErrorf("WriteFile", err)
	}
	if err = Write(cw, m); err != nil {
		_ = cw.Close()
		return "", fmt.Errorf("%s: %w", written, err)
	}
	if err = cw.Close(); err != nil {
		return "", opErrorf("WriteFile", err)
	}

	return written, nil
}

// ReadFile parses a rows×cols matrix from path, decoding it first when the
// extension names a codec (".zst", ".lz4").
func ReadFile(path string, rows, cols int) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, opErrorf("ReadFile", err)
	}
	defer f.Close()

	r, release, err := decompressReader(f, CompressionFromPath(path))
	if err != nil {
		return nil, opErrorf("ReadFile", err)
	}
	defer release()

	m, err := Read(r, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ScanFile is ReadFile with the shape inferred from the content.
func ScanFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, opErrorf("ScanFile", err)
	}
	defer f.Close()

	r, release, err := decompressReader(f, CompressionFromPath(path))
	if err != nil {
		return nil, opErrorf("ScanFile", err)
	}
	defer release()

	m, err := Scan(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}
