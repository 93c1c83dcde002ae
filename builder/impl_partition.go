// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_partition.go — Partition(a), the number partitioning problem.
//
// Encoding:
//   • (Σ a_iσ_i)² = Σ a_i² + 2·Σ_{i<j} a_ia_jσ_iσ_j, so J_ij = −2·a_i·a_j (i ≠ j), h = 0.
//     The sign follows the −Σ(h+Jn)n energy convention of the evolution.
//
// Contract:
//   • len(a) ≥ 2 (else ErrTooFewVertices); entries finite (else mfaoa.ErrValue).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/problem"
)

const (
	methodPartition   = "Partition"
	minPartitionItems = 2
)

// Partition returns the Ising problem of splitting the numbers a into two
// subsets of equal sum.
func Partition(a []float64, opts ...BuilderOption) (*problem.Problem, error) {
	cfg := newBuilderConfig(opts...)
	n := len(a)
	if n < minPartitionItems {
		return nil, fmt.Errorf("%s: len(a)=%d < min=%d: %w", methodPartition, n, minPartitionItems, ErrTooFewVertices)
	}
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: a[%d]=%g: %w", methodPartition, i, v, mfaoa.ErrValue)
		}
	}
	J := zeroCouplings(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := -2 * a[i] * a[j]
			J[i][j], J[j][i] = w, w
		}
	}

	return assemble(methodPartition, nil, J, cfg)
}
