// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector product, transpose and a Householder QR
// factorization. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Purpose:
//   - Supply the kernels the fluctuation analysis needs (propagate a basis, re-orthonormalize it).
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast path on the flat buffer and a fallback that
//     materializes the operand through At (one pass, then the fast path).

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opQR        = "QR"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AsDense returns m itself when it is a *Dense, otherwise a Dense copy read via At.
// The copy keeps kernels single-path without mutating the caller's matrix.
// Errors: ErrNilMatrix.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul computes the matrix product a·b.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order over flat buffers (streams rows of b, cache friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c) for the result.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	MulRowsInto(out, ad, bd, 0, ad.r)

	return out, nil
}

// MulRowsInto writes rows [lo,hi) of a·b into dst without validation.
// It lets callers split one product into disjoint row blocks and run them
// concurrently; blocks never share a destination row.
// Preconditions: dst is a.Rows()×b.Cols(), a.Cols()==b.Rows(), 0≤lo≤hi≤a.Rows().
func MulRowsInto(dst, a, b *Dense, lo, hi int) {
	var (
		i, k, j int
		aik     float64
	)
	n, c := a.c, b.c
	for i = lo; i < hi; i++ {
		row := dst.data[i*c : (i+1)*c]
		for j = range row {
			row[j] = ZeroSum
		}
		for k = 0; k < n; k++ {
			aik = a.data[i*n+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*c : (k+1)*c]
			for j = 0; j < c; j++ {
				row[j] += aik * bk[j]
			}
		}
	}
}

// MatVec computes y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, d.r)
	var (
		i, j int
		sum  float64
	)
	for i = 0; i < d.r; i++ {
		sum = ZeroSum
		for j = 0; j < d.c; j++ {
			sum += d.data[i*d.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns mᵀ as a new Dense. Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// QR computes a Householder factorization A = Q·R with diag(R) ≥ 0.
// MAIN DESCRIPTION:
//   - Orthonormalize the columns of a square matrix and expose their stretch factors.
//     For the Benettin method, R[k,k] is the growth of the k-th direction after
//     removing its components along directions 0..k-1.
//
// Implementation:
//   - Stage 1: validate (non-nil, square); clone A into the working R; Q = I.
//   - Stage 2: for k=0..n-1 build the reflector v from R[k:,k]; apply it to R from the
//     left (R ← H R) and to Q from the right (Q ← Q H), so A = Q·R holds throughout.
//   - Stage 3: canonicalize signs: for every R[k,k] < 0 negate row k of R and column k of Q.
//
// Behavior highlights:
//   - A zero sub-column is skipped, leaving R[k,k] = 0 (its log is -Inf; callers surface it).
//   - Input is never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "QR").
//
// Determinism:
//   - Fixed k→{i,j} visitation; identical inputs give bit-identical factors.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// AI-Hints:
//   - Read the stretch factors with R.At(k,k) or R.Data()[k*n+k].
func QR(m Matrix) (q, r *Dense, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	src, err := AsDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	n := src.r
	r = src.clone()
	if q, err = NewIdentity(n); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	v := make([]float64, n)
	var (
		i, j, k    int
		norm, beta float64
		alpha, tau float64
		sum, rkk   float64
		rd, qd     = r.data, q.data
	)
	for k = 0; k < n; k++ {
		// norm of R[k:n, k]
		norm = NormZero
		for i = k; i < n; i++ {
			norm += rd[i*n+k] * rd[i*n+k]
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue
		}

		// alpha = -sign(R[k,k])·norm avoids cancellation in v[k].
		rkk = rd[k*n+k]
		alpha = -math.Copysign(norm, rkk)
		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = rd[i*n+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// R ← (I - τ v vᵀ) R on rows k..n-1.
		for j = k; j < n; j++ {
			sum = ZeroSum
			for i = k; i < n; i++ {
				sum += v[i] * rd[i*n+j]
			}
			sum *= tau
			for i = k; i < n; i++ {
				rd[i*n+j] -= v[i] * sum
			}
		}
		// Q ← Q (I - τ v vᵀ) on columns k..n-1.
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for j = k; j < n; j++ {
				sum += qd[i*n+j] * v[j]
			}
			sum *= tau
			for j = k; j < n; j++ {
				qd[i*n+j] -= sum * v[j]
			}
		}
		// Exact zeros below the diagonal.
		for i = k + 1; i < n; i++ {
			rd[i*n+k] = 0
		}
	}

	// Sign canonicalization: diag(R) ≥ 0.
	for k = 0; k < n; k++ {
		if rd[k*n+k] >= 0 {
			continue
		}
		for j = k; j < n; j++ {
			rd[k*n+j] = -rd[k*n+j]
		}
		for i = 0; i < n; i++ {
			qd[i*n+k] = -qd[i*n+k]
		}
	}

	return q, r, nil
}
