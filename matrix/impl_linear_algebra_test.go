// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear algebra kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matfixture/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul_Known verifies the 2×2 product used throughout the docs.
func TestMul_Known(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{19, 22}, {43, 50}}, c)

	// operands untouched
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
	CompareExact(t, [][]float64{{5, 6}, {7, 8}}, b)
}

// TestMul_Rectangular checks a (2×3)·(3×2) product by hand.
func TestMul_Rectangular(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 0, 2, -1, 3, 1})
	b := NewFilledDense(t, 3, 2, []float64{3, 1, 2, 1, 1, 0})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{5, 1}, {4, 2}}, c)
}

// TestMul_ShapeInvariant checks that C is always (k×n) for (k×m)·(m×n).
func TestMul_ShapeInvariant(t *testing.T) {
	t.Parallel()

	shapes := [][3]int{{1, 1, 1}, {4, 3, 2}, {1, 7, 5}, {6, 1, 9}, {16, 8, 4}}
	for idx, s := range shapes {
		a := RandFilledDense(t, s[0], s[1], uint32(idx))
		b := RandFilledDense(t, s[1], s[2], uint32(idx+100))
		c, err := matrix.Mul(a, b)
		require.NoError(t, err)
		require.Equal(t, s[0], c.Rows())
		require.Equal(t, s[2], c.Cols())
	}
}

// TestMul_InnerMismatch ensures incompatible operands fail without output.
func TestMul_InnerMismatch(t *testing.T) {
	t.Parallel()

	c, err := matrix.Mul(MustDense(t, 4, 3), MustDense(t, 2, 5))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, c)

	_, err = matrix.Mul(nil, MustDense(t, 2, 5))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_FallbackMatchesFast compares the *Dense fast path with the
// interface fallback on seeded random operands.
func TestMul_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 12, 9, 7)
	b := RandFilledDense(t, 9, 5, 8)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	CompareClose(t, fast, slow, 0, 1e-12)
}

// TestMul_Deterministic runs the same product twice and expects identical bits.
func TestMul_Deterministic(t *testing.T) {
	t.Parallel()

	a := RandFilledDense(t, 8, 6, 1)
	b := RandFilledDense(t, 6, 3, 2)

	c1, err := matrix.Mul(a, b)
	require.NoError(t, err)
	c2, err := matrix.Mul(a.Clone(), b.Clone())
	require.NoError(t, err)

	d, err := matrix.MaxAbsDiff(c1, c2)
	require.NoError(t, err)
	require.Equal(t, 0.0, d)
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{0.5, -1, 2, 8})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.5, 1}, {5, 12}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, 3}, {1, -4}}, diff)

	// fallback path yields the same values
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1.5, 1}, {5, 12}}, slow)

	_, err = matrix.Sub(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, want, tr)

	tr, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, tr)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_TransposeIdentity checks (A·B)ᵀ == Bᵀ·Aᵀ on small integer data.
func TestMul_TransposeIdentity(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 0, -1, 4, 2})
	b := NewFilledDense(t, 3, 2, []float64{2, 1, 0, 3, 5, -2})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	left, err := matrix.Transpose(ab)
	require.NoError(t, err)

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	bt, err := matrix.Transpose(b)
	require.NoError(t, err)
	right, err := matrix.Mul(bt, at)
	require.NoError(t, err)

	CompareClose(t, left, right, 0, 0)
}

// TestMul_ZeroSkipIsExact compares Mul against an unskipped i→k→j
// accumulation on operands with exact zeros and negative values. Both the
// values and the sign of zero results must match.
func TestMul_ZeroSkipIsExact(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 3, 3, []float64{
		0, 0, 0,
		0, -0.5, 0,
		1.25, 0, -3,
	})
	b := NewFilledDense(t, 3, 2, []float64{
		-1, -2,
		0.75, -0.125,
		4, -8,
	})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	var i, j, k int
	var av, bv float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 2; j++ {
			sum := matrix.ZeroSum
			for k = 0; k < 3; k++ {
				av = MustAt(t, a, i, k)
				bv = MustAt(t, b, k, j)
				sum += av * bv
			}
			v := MustAt(t, got, i, j)
			require.Equal(t, sum, v, "C[%d,%d]", i, j)
			require.Equal(t, math.Signbit(sum), math.Signbit(v), "sign of C[%d,%d]", i, j)
		}
	}
}

// TestMul_ResultTooLarge ensures an unallocatable k×n product is an error.
func TestMul_ResultTooLarge(t *testing.T) {
	t.Parallel()

	a := hugeShape{rows: math.MaxInt / 2, cols: 1}
	b := hugeShape{rows: 1, cols: 4}

	c, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
	require.Nil(t, c)
}

// hugeShape reports a shape without backing storage; only Rows/Cols are
// consulted before Mul allocates its result.
type hugeShape struct{ rows, cols int }

func (h hugeShape) Rows() int { return h.rows }
func (h hugeShape) Cols() int { return h.cols }
func (h hugeShape) At(int, int) (float64, error) { return 0, matrix.ErrOutOfRange }
func (h hugeShape) Set(int, int, float64) error { return matrix.ErrOutOfRange }
func (h hugeShape) Clone() matrix.Matrix { return h }
