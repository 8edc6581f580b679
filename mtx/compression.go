// SPDX-License-Identifier: MIT

package mtx

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects an optional stream codec wrapped around the text format.
type Compression uint8

const (
	// None writes the plain text format (the default fixture contract).
	None Compression = iota
	// Zstd streams the text through a zstd frame (".zst").
	Zstd
	// LZ4 streams the text through an LZ4 frame (".lz4").
	LZ4
)

const (
	extZstd = ".zst"
	extLZ4  = ".lz4"
)

// ErrUnknownCompression is returned for an out-of-range Compression value.
var ErrUnknownCompression = errors.New("mtx: unknown compression")

// String returns the codec name.
func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Extension returns the file-name suffix appended for c ("" for None).
func (c Compression) Extension() string {
	switch c {
	case Zstd:
		return extZstd
	case LZ4:
		return extLZ4
	default:
		return ""
	}
}

// Valid reports whether c is a known codec.
func (c Compression) Valid() bool { return c <= LZ4 }

// CompressionFromPath infers the codec from a file extension.
func CompressionFromPath(path string) Compression {
	switch filepath.Ext(path) {
	case extZstd:
		return Zstd
	case extLZ4:
		return LZ4
	default:
		return None
	}
}

// nopWriteCloser lets the plain path share the codec Close sequence.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// compressWriter wraps w with the codec. Close flushes the codec frame but
// does not close w.
func compressWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case None:
		return nopWriteCloser{w}, nil
	case Zstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, err
		}
		return enc, nil
	case LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, ErrUnknownCompression
	}
}

// decompressReader wraps r with the codec; the returned release func frees
// decoder resources.
func decompressReader(r io.Reader, c Compression) (io.Reader, func(), error) {
	switch c {
	case None:
		return r, func() {}, nil
	case Zstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, dec.Close, nil
	case LZ4:
		return lz4.NewReader(r), func() {}, nil
	default:
		return nil, nil, ErrUnknownCompression
	}
}
