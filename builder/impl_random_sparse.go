// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparseEdges(n, p), an Erdős–Rényi G(n,p) edge list.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//
// Determinism:
//   • One Bernoulli trial per pair in lexicographic (i,j) order, i<j, so a fixed
//     seed always yields the same edge set.
//
// Complexity:
//   • Time O(n²) trials, Space O(|E|).

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparseEdges"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparseEdges samples each pair {i,j} independently with probability p.
func RandomSparseEdges(n int, p float64, opts ...BuilderOption) ([][2]int, error) {
	cfg := newBuilderConfig(opts...)

	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	// !(in range) also rejects NaN.
	if !(p >= probMin && p <= probMax) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMin:
				continue
			case p == probMax:
				edges = append(edges, [2]int{i, j})
			case cfg.rng.Float64() < p:
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return edges, nil
}
