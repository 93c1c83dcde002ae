// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_vertex_cover.go — MinVertexCover(n, edges).
//
// Encoding (x_i = (1+σ_i)/2 ∈ {0,1} marks cover membership):
//   • h_i = 1 − ¾·deg(i),  J_ij = J_ji = −¾ per edge.
//   • Minimizing the mean-field energy −Σ(h+Jn)n favours small covers that
//     leave no edge with both endpoints outside.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); edges valid (else ErrBadEdge).
//   • WithPinned is rejected with ErrPinnedFields (the fields are non-zero).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mfaoa/problem"
)

const (
	methodMinVertexCover   = "MinVertexCover"
	minVertexCoverNodes    = 1
	vertexCoverFieldOffset = 1.0
	vertexCoverPenalty     = 0.75
)

// MinVertexCover returns the Ising problem of the minimum vertex cover of a graph.
func MinVertexCover(n int, edges [][2]int, opts ...BuilderOption) (*problem.Problem, error) {
	cfg := newBuilderConfig(opts...)
	if n < minVertexCoverNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodMinVertexCover, n, minVertexCoverNodes, ErrTooFewVertices)
	}
	if err := checkEdges(methodMinVertexCover, n, edges); err != nil {
		return nil, err
	}

	deg := make([]int, n)
	J := zeroCouplings(n)
	for _, e := range edges {
		deg[e[0]]++
		deg[e[1]]++
		J[e[0]][e[1]] = -vertexCoverPenalty
		J[e[1]][e[0]] = -vertexCoverPenalty
	}
	h := make([]float64, n)
	for i, d := range deg {
		h[i] = vertexCoverFieldOffset - vertexCoverPenalty*float64(d)
	}

	return assemble(methodMinVertexCover, h, J, cfg)
}
