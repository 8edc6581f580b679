// SPDX-License-Identifier: MIT
// Package matrix: public comparison API.
//
// Purpose:
//   - Tolerance checks used by conformance tests of external multipliers.
//   - Each entry point delegates to the canonical implementation in ops_elementwise.go.

package matrix

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Shapes must match (ErrDimensionMismatch otherwise).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// MaxAbsDiff returns the largest absolute element-wise difference.
// Handy for reporting how far two products drifted apart.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	return ewMaxAbsDiff(a, b)
}
