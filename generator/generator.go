// SPDX-License-Identifier: MIT

// Package generator synthesizes seeded uniform matrices.
//
// What & Why:
//
//	Every call owns its stream: Pair and Single create a fresh rng.Stream from
//	their seed, so a result depends only on (shape, seed) and never on what
//	other calls ran before. Pair draws all of A's entries, then all of B's,
//	from one stream; Single draws R from its own stream.
//
// Complexity:
//
//	Uniform is O(rows*cols) time and memory.
package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matfixture/matrix"
	"github.com/katalvlaran/matfixture/rng"
)

// Sampling interval for generated entries.
const (
	Low  = -1.0
	High = 1.0
)

// ErrNilStream is returned when Uniform is handed a nil stream.
var ErrNilStream = errors.New("generator: nil stream")

// Uniform draws a rows×cols matrix from s in row-major order, each entry
// uniform over [Low, High].
// The shape is validated before any draw, so a rejected call leaves s untouched.
//
// Errors:
//   - matrix.ErrInvalidDimensions for non-positive shapes.
//   - ErrNilStream when s is nil.
func Uniform(rows, cols int, s *rng.Stream) (*matrix.Dense, error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("generator: Uniform: %w", err)
	}
	if s == nil {
		return nil, ErrNilStream
	}

	data := make([]float64, rows*cols)
	s.Fill(data, Low, High)

	return matrix.NewDenseFrom(rows, cols, data)
}

// Pair generates the operand pair A (k×m) and B (m×n) from a single stream
// seeded with seed: A's k*m entries first, then B's m*n entries.
//
// Errors:
//   - matrix.ErrInvalidDimensions if any of k, m, n is non-positive; no draws
//     happen in that case.
func Pair(k, m, n int, seed uint32) (a, b *matrix.Dense, err error) {
	if err = matrix.ValidateDims(k, m); err != nil {
		return nil, nil, fmt.Errorf("generator: Pair: A: %w", err)
	}
	if err = matrix.ValidateDims(m, n); err != nil {
		return nil, nil, fmt.Errorf("generator: Pair: B: %w", err)
	}

	s := rng.New(seed)
	if a, err = Uniform(k, m, s); err != nil {
		return nil, nil, err
	}
	if b, err = Uniform(m, n, s); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Single generates one rows×cols matrix from its own stream seeded with seed.
func Single(rows, cols int, seed uint32) (*matrix.Dense, error) {
	if err := matrix.ValidateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("generator: Single: %w", err)
	}

	return Uniform(rows, cols, rng.New(seed))
}
