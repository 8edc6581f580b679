// SPDX-License-Identifier: MIT

package mtx

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/matfixture/matrix"
)

// maxLineBytes bounds a single row; 64 MiB fits rows of several million values.
const maxLineBytes = 64 << 20

// Read parses a rows×cols matrix from r.
// Every line must carry exactly cols whitespace-separated values and the input
// must hold exactly rows lines.
//
// Errors:
//   - matrix.ErrInvalidDimensions for a non-positive expected shape.
//   - ErrShape for a wrong row or token count (with line number).
//   - ErrMalformed for a token that is not a finite number (with line number).
func Read(r io.Reader, rows, cols int) (*matrix.Dense, error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, opErrorf("Read", err)
	}
	data := make([]float64, 0, rows*cols)
	n, err := scanRows(r, cols, rows, func(vals []float64) { data = append(data, vals...) })
	if err != nil {
		return nil, opErrorf("Read", err)
	}
	if n != rows {
		return nil, opErrorf("Read", lineErrorf(n+1, "got %d rows, want %d", ErrShape, n, rows))
	}

	return matrix.NewDenseFrom(rows, cols, data)
}

// Scan parses a matrix whose shape is inferred: the first line fixes the
// column count and every following line must match it.
//
// Errors:
//   - ErrEmpty when r holds no rows; ErrShape / ErrMalformed as in Read.
func Scan(r io.Reader) (*matrix.Dense, error) {
	var data []float64
	cols := 0
	n, err := scanRows(r, 0, 0, func(vals []float64) {
		if cols == 0 {
			cols = len(vals)
		}
		data = append(data, vals...)
	})
	if err != nil {
		return nil, opErrorf("Scan", err)
	}
	if n == 0 {
		return nil, opErrorf("Scan", ErrEmpty)
	}

	return matrix.NewDenseFrom(n, cols, data)
}

// scanRows tokenizes r line by line and hands each parsed row to emit.
// wantCols == 0 infers the width from the first line; maxRows > 0 rejects
// surplus lines. Returns the number of rows emitted.
func scanRows(r io.Reader, wantCols, maxRows int, emit func([]float64)) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var (
		vals []float64
		n    int
	)
	for sc.Scan() {
		line := n + 1
		if maxRows > 0 && n == maxRows {
			return n, lineErrorf(line, "more than %d rows", ErrShape, maxRows)
		}
		fields := bytes.Fields(sc.Bytes())
		if wantCols == 0 {
			if len(fields) == 0 {
				return n, lineErrorf(line, "empty row", ErrShape)
			}
			wantCols = len(fields)
		}
		if len(fields) != wantCols {
			return n, lineErrorf(line, "got %d values, want %d", ErrShape, len(fields), wantCols)
		}

		vals = vals[:0]
		for j, tok := range fields {
			v, err := strconv.ParseFloat(string(tok), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return n, lineErrorf(line, "column %d %q", ErrMalformed, j+1, tok)
			}
			vals = append(vals, v)
		}
		emit(vals)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}

	return n, nil
}
