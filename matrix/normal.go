// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// NormalEquations forms the normal system of a weighted least-squares problem
// with diagonal weights:
//
//	N = AᵀPA   (u×u, symmetric)
//	U = AᵀPL   (u)
//
// where A is the n×u design matrix, P = diag(w) and L the n-vector of
// misclosures (observed − computed).
//
// Implementation:
//   - Stage 1: Validate A non-nil, len(w) == len(l) == n, all values finite.
//   - Stage 2: Accumulate row by row: for each observation i, add
//     w_i·a_i·a_iᵀ to N (upper triangle) and w_i·l_i·a_i to U.
//   - Stage 3: Mirror the upper triangle into the lower one.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(n·u²), Space O(u²). P is never materialized.
func NormalEquations(a Matrix, w, l []float64) (*Dense, []float64, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, nil, matrixErrorf(opNormal, err)
	}
	n, u := a.Rows(), a.Cols()
	if err := ValidateVecLen(w, n); err != nil {
		return nil, nil, matrixErrorf(opNormal, fmt.Errorf("weights: %w", err))
	}
	if err := ValidateVecLen(l, n); err != nil {
		return nil, nil, matrixErrorf(opNormal, fmt.Errorf("misclosures: %w", err))
	}
	if err := ValidateFinite(w); err != nil {
		return nil, nil, matrixErrorf(opNormal, fmt.Errorf("weights: %w", err))
	}
	if err := ValidateFinite(l); err != nil {
		return nil, nil, matrixErrorf(opNormal, fmt.Errorf("misclosures: %w", err))
	}
	da, err := asDense(a)
	if err != nil {
		return nil, nil, matrixErrorf(opNormal, err)
	}

	nm, err := NewDense(u, u)
	if err != nil {
		return nil, nil, matrixErrorf(opNormal, err)
	}
	rhs := make([]float64, u)

	var i, j, k, base int
	var aj, wa float64
	for i = 0; i < n; i++ {
		base = i * u
		for j = 0; j < u; j++ {
			aj = da.data[base+j]
			if aj == 0 {
				continue
			}
			wa = w[i] * aj
			rhs[j] += wa * l[i]
			for k = j; k < u; k++ {
				nm.data[j*u+k] += wa * da.data[base+k]
			}
		}
	}
	for j = 0; j < u; j++ {
		for k = j + 1; k < u; k++ {
			nm.data[k*u+j] = nm.data[j*u+k]
		}
	}

	return nm, rhs, nil
}
