// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_sk.go — SherringtonKirkpatrick(n, variance), the SK spin glass.
//
// Model:
//   • J_ij ~ N(0, variance)/√n for i<j, J_ji = J_ij, zero diagonal, h = 0.
//   • Draws are taken row by row (i asc, j>i asc) from gonum's distuv.Normal
//     on the configured source, so a fixed seed fixes the instance.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • variance > 0 and finite (else mfaoa.ErrValue).
//   • RNG required (else ErrNeedRandSource).
//
// Complexity:
//   • Time O(n²), Space O(n²).

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/problem"
)

const (
	methodSK   = "SherringtonKirkpatrick"
	minSKNodes = 2
)

// SherringtonKirkpatrick samples an SK instance with n spins.
func SherringtonKirkpatrick(n int, variance float64, opts ...BuilderOption) (*problem.Problem, error) {
	cfg := newBuilderConfig(opts...)
	if n < minSKNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSK, n, minSKNodes, ErrTooFewVertices)
	}
	if !(variance > 0) || math.IsInf(variance, 0) {
		return nil, fmt.Errorf("%s: variance=%g: %w", methodSK, variance, mfaoa.ErrValue)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodSK, ErrNeedRandSource)
	}

	dist := distuv.Normal{Mu: 0, Sigma: math.Sqrt(variance), Src: cfg.rng}
	scale := 1 / math.Sqrt(float64(n))
	J := zeroCouplings(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := dist.Rand() * scale
			J[i][j], J[j][i] = w, w
		}
	}

	return assemble(methodSK, nil, J, cfg)
}
