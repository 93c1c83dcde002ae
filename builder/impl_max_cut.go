// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_max_cut.go — MaxCut(n, edges).
//
// Encoding:
//   • J_ij = J_ji = −½ per edge, h = 0, so that H(σ) = −½·Σ_edges σ_iσ_j.
//   • Every cut edge contributes +½ and every uncut edge −½.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); edges valid per checkEdges (else ErrBadEdge).
//
// Complexity:
//   • Time O(n² + |E|), Space O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/mfaoa/problem"
)

const (
	methodMaxCut   = "MaxCut"
	minMaxCutNodes = 2
	maxCutWeight   = -0.5
)

// MaxCut returns the Ising problem of the maximum cut of an unweighted graph.
func MaxCut(n int, edges [][2]int, opts ...BuilderOption) (*problem.Problem, error) {
	cfg := newBuilderConfig(opts...)
	if n < minMaxCutNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodMaxCut, n, minMaxCutNodes, ErrTooFewVertices)
	}
	if err := checkEdges(methodMaxCut, n, edges); err != nil {
		return nil, err
	}
	J := zeroCouplings(n)
	for _, e := range edges {
		J[e[0]][e[1]] = maxCutWeight
		J[e[1]][e[0]] = maxCutWeight
	}

	return assemble(methodMaxCut, nil, J, cfg)
}
