// SPDX-License-Identifier: MIT

// Package mtx reads and writes matrices in the plain-text fixture format.
//
// Format:
//
//	One line per row, '\n'-terminated; values separated by a single space;
//	each value fixed-point with exactly Precision digits after the decimal
//	point, correctly rounded (printf "%.4f" semantics, e.g. -0.1234).
//	No header: the shape is recoverable only from line and token counts.
//
// Files are written with WriteFile and read back with ReadFile; names follow
// the role/shape convention in names.go.
package mtx

import (
	"bufio"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matfixture/matrix"
)

// Precision is the number of digits written after the decimal point.
const Precision = 4

const (
	fieldSep = ' '
	lineEnd  = '\n'

	// writeBufSize sizes the buffered writer between rows and the sink.
	writeBufSize = 64 << 10
)

// AppendValue appends v in fixed-point notation with Precision decimals.
func AppendValue(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'f', Precision, 64)
}

// AppendRow appends one serialized row, including the trailing newline.
//
// Errors:
//   - ErrNonFinite if row holds NaN or ±Inf; dst is returned unchanged.
func AppendRow(dst []byte, row []float64) ([]byte, error) {
	start := len(dst)
	for j, v := range row {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return dst[:start], ErrNonFinite
		}
		if j > 0 {
			dst = append(dst, fieldSep)
		}
		dst = AppendValue(dst, v)
	}

	return append(dst, lineEnd), nil
}

// rowSource exposes *matrix.Dense rows without per-element bounds checks.
type rowSource interface {
	RawRow(i int) ([]float64, error)
}

// Write serializes m to w, one line per row in row-major order.
// Output is buffered; the buffer is flushed before Write returns.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil matrix.
//   - ErrNonFinite (with row index) for NaN/±Inf values.
//   - any error from w.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return opErrorf("Write", err)
	}
	rows, cols := m.Rows(), m.Cols()
	bw := bufio.NewWriterSize(w, writeBufSize)

	var (
		line    = make([]byte, 0, cols*(Precision+4))
		scratch []float64
		row     []float64
		err     error
	)
	src, fast := m.(rowSource)
	if !fast {
		scratch = make([]float64, cols)
	}
	for i := 0; i < rows; i++ {
		if fast {
			if row, err = src.RawRow(i); err != nil {
				return opErrorf("Write", err)
			}
		} else {
			for j := 0; j < cols; j++ {
				if scratch[j], err = m.At(i, j); err != nil {
					return opErrorf("Write", err)
				}
			}
			row = scratch
		}
		if line, err = AppendRow(line[:0], row); err != nil {
			return opErrorf("Write", lineErrorf(i+1, "row %d", err, i))
		}
		if _, err = bw.Write(line); err != nil {
			return opErrorf("Write", err)
		}
	}
	if err = bw.Flush(); err != nil {
		return opErrorf("Write", err)
	}

	return nil
}
