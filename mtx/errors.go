// SPDX-License-Identifier: MIT

package mtx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a token that is not a finite decimal number.
	ErrMalformed = errors.New("mtx: malformed value")

	// ErrShape marks a file whose row count or per-line token count does not
	// match the expected (or first-line inferred) shape.
	ErrShape = errors.New("mtx: shape mismatch")

	// ErrNonFinite is returned when asked to serialize NaN or ±Inf.
	ErrNonFinite = errors.New("mtx: non-finite value")

	// ErrEmpty is returned by Scan when the input holds no rows.
	ErrEmpty = errors.New("mtx: empty input")
)

// opErrorf tags err with the mtx operation that produced it.
func opErrorf(op string, err error) error {
	return fmt.Errorf("mtx: %s: %w", op, err)
}

// lineErrorf attaches a 1-based line number to a sentinel.
func lineErrorf(line int, format string, err error, args ...any) error {
	return fmt.Errorf("line %d: "+format+": %w", append(append([]any{line}, args...), err)...)
}
