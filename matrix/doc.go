// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear algebra behind the mean-field engine.
//
// The matrix package provides:
//
//   - Matrix, a bounds-checked interface over 2-D float64 arrays, and Dense,
//     its row-major implementation with aliasing row access for hot loops.
//   - Mul, MulRowsInto, MatVec and Transpose with *Dense fast paths.
//   - QR, a Householder factorization with a non-negative R diagonal, used to
//     re-orthonormalize tangent vectors in the Lyapunov analysis.
//   - Validators (nil, shape, vector length, symmetry) shared by callers that
//     accept coupling matrices.
//
// Errors are package sentinels wrapped with an operation tag; test them with
// errors.Is. No kernel panics on bad input except MulRowsInto, which skips
// validation by contract.
package matrix
