// SPDX-License-Identifier: MIT

// Package matrix: gonum interop.
// ToGonum / FromGonum bridge *Dense and gonum's mat.Dense so the reference
// product can be cross-checked against (or computed by) gonum's BLAS-backed
// kernels.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
	opMulGonum  = "MulGonum"
)

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrNilMatrix for nil input; At errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return mat.NewDense(r, c, buf), nil
	}

	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if buf[i*c+j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies any gonum matrix into a new *Dense.
// Stride-aware for *mat.Dense; generic mat.Matrix goes through At.
//
// Errors:
//   - ErrNilMatrix for nil input; ErrInvalidDimensions for empty shapes;
//     ErrNaNInf if g holds non-finite values.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	if gd, ok := g.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i := 0; i < r; i++ {
			copy(res.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				res.data[i*c+j] = g.At(i, j)
			}
		}
	}
	if err = ValidateFinite(res.data); err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return res, nil
}

// MulGonum computes C = A × B through gonum's mat.Dense.Mul.
// Same contract as Mul (validation first, ErrDimensionMismatch on inner
// mismatch, never a gonum panic); accumulation order is BLAS-defined, so
// results agree with Mul within floating-point tolerance only.
//
// Complexity:
//   - Time O(k*m*n), Space O(k*m + m*n + k*n) for the gonum copies.
func MulGonum(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	ga, err := ToGonum(a)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}
	gb, err := ToGonum(b)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, err)
	}

	var gc mat.Dense
	gc.Mul(ga, gb)

	res, err := FromGonum(&gc)
	if err != nil {
		return nil, matrixErrorf(opMulGonum, fmt.Errorf("result: %w", err))
	}

	return res, nil
}
