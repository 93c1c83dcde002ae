// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateSymmetric before trusting couplings as an Ising J (J_ij = J_ji).
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil (including typed-nil *Dense).
// Returns ErrNilMatrix otherwise. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrDimensionMismatch if not square. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// A nil vector is reported as ErrNilMatrix (the "nil argument" sentinel).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] - m[j,i]| <= eps for all i<j.
//
// Inputs: square Matrix (checked), eps >= 0.
// Errors: ErrDimensionMismatch if not square, ErrAsymmetry with the first offending pair.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	n := m.Rows()
	var (
		i, j   int
		aij    float64
		aji    float64
		errAt  error
		d, isD = m.(*Dense)
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if isD {
				aij, aji = d.data[i*n+j], d.data[j*n+i]
			} else {
				if aij, errAt = m.At(i, j); errAt != nil {
					return validatorErrorf("ValidateSymmetric", errAt)
				}
				if aji, errAt = m.At(j, i); errAt != nil {
					return validatorErrorf("ValidateSymmetric", errAt)
				}
			}
			if math.Abs(aij-aji) > eps {
				return fmt.Errorf("ValidateSymmetric: (%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry)
			}
		}
	}

	return nil
}
