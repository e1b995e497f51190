// Package matrix offers the small dense linear-algebra toolkit behind the
// least-squares network adjustment.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf guard.
//   - Kernels: Mul, Transpose, MatVec, LU (Doolittle), Solve and Inverse.
//   - NormalEquations, which forms N = AᵀPA and U = AᵀPL for a diagonal weight
//     matrix P without ever materializing P.
//
// Every kernel validates its inputs, never mutates operands, and reports
// failures through the sentinel errors in errors.go. Kernels take a fast path
// on *Dense operands and fall back to the Matrix interface otherwise.
//
// Matrices here are small: a network with k free stations yields a 2k×2k
// normal matrix, so dense O(n³) factorization is the right tool.
package matrix
