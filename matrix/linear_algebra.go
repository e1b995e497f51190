// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels.
//
// Purpose:
//   - Multiplication, transpose and matrix-vector products for design matrices.
//   - Doolittle LU factorization and the Solve/Inverse facades built on it.
//
// Notes:
//   - Kernels validate through validators.go and wrap failures via matrixErrorf.
//   - Operands are never mutated; results are freshly allocated *Dense values.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for substitution loops and dot products.
const ZeroSum = 0.0

// PivotTolerance is the relative threshold below which an LU pivot is treated
// as zero: |pivot| ≤ PivotTolerance·max|a_ij| reports ErrSingular.
// Normal matrices of datum-deficient networks produce pivots around 1e-16
// times the largest entry rather than an exact zero, so an absolute test
// would let them through.
const PivotTolerance = 1e-12

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
	opInverse   = "Inverse"
	opNormal    = "NormalEquations"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a materialized copy.
// Kernels that need random access to every element (LU) call it once up front
// instead of carrying a second interface-based loop nest.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k through the interface.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Design matrices are sparse per row, so the
//     zero skip on A[i,k] removes most multiplies.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c) time and space.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// LU computes the Doolittle factorization m = L·U without pivoting, where L
// is unit lower triangular and U upper triangular.
// Implementation:
//   - Stage 1: Validate square input; materialize as *Dense; find max|a_ij|.
//   - Stage 2: For each i compute row i of U, guard the pivot, then column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
//   - ErrSingular when |U[i,i]| ≤ PivotTolerance·max|a_ij| (or m is all zeros).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - No row exchanges: the symmetric positive-definite normal matrices this
//     package factors never need them, and a non-positive-definite one is
//     reported as singular.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := a.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	scale := 0.0
	for _, v := range a.data {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	if scale == 0 {
		return nil, nil, matrixErrorf(opLU, ErrSingular)
	}
	threshold := PivotTolerance * scale

	var i, j, k, baseI, baseJ int
	var sum, pivot float64
	for i = 0; i < n; i++ {
		baseI = i * n
		// Row i of U.
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = a.data[baseI+j] - sum
		}

		pivot = u.data[baseI+i]
		if math.Abs(pivot) <= threshold {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d: %w", i, ErrSingular))
		}

		// Column i of L.
		for j = i + 1; j < n; j++ {
			baseJ = j * n
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (a.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// substitute solves L·U·x = b given Doolittle factors, writing into x and
// using y as forward-substitution workspace.
func substitute(l, u *Dense, b, y, x []float64) {
	n := l.r
	var i, k, base int
	var sum float64
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += l.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += u.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / u.data[base+i]
	}
}

// Solve returns x such that m·x = b, via LU factorization.
// Errors: those of LU, plus ErrNilMatrix/ErrDimensionMismatch for b, and
// ErrNaNInf when b holds non-finite values.
// Complexity: O(n³).
func Solve(m Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()
	x := make([]float64, n)
	substitute(l, u, b, make([]float64, n), x)

	return x, nil
}

// Inverse computes m⁻¹ by solving L·U·x = e_col for every unit column.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	l, u, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	e := make([]float64, n)
	y := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		substitute(l, u, e, y, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
