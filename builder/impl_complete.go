// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go — CompleteEdges(n), every unordered pair of K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   • Pairs in lexicographic (i,j) order, i<j.
//
// Complexity:
//   • Time O(n²), Space O(n²).

package builder

import "fmt"

const (
	methodComplete   = "CompleteEdges"
	minCompleteNodes = 1
)

// CompleteEdges returns the n(n−1)/2 edges of the complete graph K_n.
func CompleteEdges(n int) ([][2]int, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges, nil
}
