// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go — shared plumbing of the problem generators.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mfaoa/problem"
)

// zeroCouplings allocates an n×n zero matrix as rows.
func zeroCouplings(n int) [][]float64 {
	flat := make([]float64, n*n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = flat[i*n : (i+1)*n : (i+1)*n]
	}

	return rows
}

// checkEdges verifies 0 ≤ u,v < n, u ≠ v and that no unordered pair repeats.
func checkEdges(method string, n int, edges [][2]int) error {
	seen := make(map[[2]int]struct{}, len(edges))
	for idx, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || v < 0 || u >= n || v >= n {
			return fmt.Errorf("%s: edge #%d (%d,%d) outside [0,%d): %w", method, idx, u, v, n, ErrBadEdge)
		}
		if u == v {
			return fmt.Errorf("%s: edge #%d is a self-loop on %d: %w", method, idx, u, ErrBadEdge)
		}
		key := [2]int{min(u, v), max(u, v)}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%s: edge #%d (%d,%d) repeated: %w", method, idx, u, v, ErrBadEdge)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// assemble turns (h, J) into a problem according to cfg.
// h == nil marks a zero-field model, which is the only kind that can be pinned.
func assemble(method string, h []float64, J [][]float64, cfg builderConfig) (*problem.Problem, error) {
	var (
		pr  *problem.Problem
		err error
	)
	switch {
	case cfg.pinned && h != nil:
		return nil, fmt.Errorf("%s: %w", method, ErrPinnedFields)
	case cfg.pinned:
		pr, err = problem.NewPinned(cfg.layers, J, cfg.problemOptions()...)
	default:
		pr, err = problem.New(cfg.layers, h, J, cfg.problemOptions()...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return pr, nil
}
