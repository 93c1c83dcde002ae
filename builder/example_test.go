// SPDX-License-Identifier: MIT
package builder_test

import (
	"fmt"

	"github.com/katalvlaran/mfaoa/builder"
	"github.com/katalvlaran/mfaoa/problem"
)

// ExampleMaxCut builds MaxCut on a 4-cycle and scores the alternating cut.
func ExampleMaxCut() {
	edges, err := builder.CycleEdges(4)
	if err != nil {
		fmt.Println(err)
		return
	}
	pr, err := builder.MaxCut(4, edges,
		builder.WithLayers(8),
		builder.WithProblemOptions(problem.WithoutSymmetryBreaking()),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	cut, _ := pr.Hamiltonian([]int{1, -1, 1, -1})
	fmt.Println(len(pr.Edges()), pr.NumLayers(), cut)
	// Output: 4 8 2
}
