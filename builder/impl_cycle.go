// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go — CycleEdges(n), the ring C_n as an edge list.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i–(i+1)%n for i=0..n-1, each pair normalized to (min,max).
//
// Complexity:
//   • Time O(n), Space O(n).

package builder

import "fmt"

const (
	methodCycle   = "CycleEdges"
	minCycleNodes = 3
)

// CycleEdges returns the n edges of the cycle graph C_n.
func CycleEdges(n int) ([][2]int, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edges = append(edges, [2]int{min(i, j), max(i, j)})
	}

	return edges, nil
}
