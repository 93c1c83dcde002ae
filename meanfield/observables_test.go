// SPDX-License-Identifier: MIT
package meanfield_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

// TestExpectation_UnchangedPair: with n^z = 0 everywhere the problem rotation
// angle is zero, nothing moves and the energy is zero.
func TestExpectation_UnchangedPair(t *testing.T) {
	t.Parallel()

	h := []float64{0, 0}
	J, err := matrix.NewFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	hist, err := meanfield.EvolveFields(spin.NewState(2), h, J, []float64{1, 1},
		[]float64{0}, []float64{math.Pi / 4}, nil)
	require.NoError(t, err)
	assert.True(t, hist.Final().Equal(spin.NewState(2)))

	e, err := meanfield.Expectation(hist.Final(), h, J)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)

	// Same case through a Problem with symmetry breaking disabled.
	pr, err := problem.New(1, h, [][]float64{{0, 1}, {1, 0}}, problem.WithoutSymmetryBreaking())
	require.NoError(t, err)
	sched, err := schedule.New([]float64{0}, []float64{math.Pi / 4})
	require.NoError(t, err)
	sol, e, err := meanfield.Solve(pr, sched)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e)
	assert.Equal(t, []int{1, 1}, sol) // zero z-components read as +1
}

// TestExpectation_HandComputed checks the sign convention and the j≠i rule.
func TestExpectation_HandComputed(t *testing.T) {
	t.Parallel()

	s := spin.State{{0, 0, 1}, {0, 0, -1}, {0.6, 0, 0.8}}
	h := []float64{0.5, -1, 0}
	J, err := matrix.NewFromRows([][]float64{
		{7, 1, 2}, // diagonal entries are ignored
		{1, 0, 0},
		{2, 0, 0},
	})
	require.NoError(t, err)

	// i=0: (0.5 + 1·(−1) + 2·0.8)·1    = 1.1
	// i=1: (−1 + 1·1)·(−1)             = 0
	// i=2: (0 + 2·1)·0.8               = 1.6
	e, err := meanfield.Expectation(s, h, J)
	require.NoError(t, err)
	assert.InDelta(t, -2.7, e, 1e-12)

	m, err := meanfield.Magnetization(s, h, J)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5 + 7 - 1 + 1.6, -1 + 1, 2}, m, 1e-12) // Σ_j includes j=i

	_, err = meanfield.Expectation(s[:2], h, J)
	require.ErrorIs(t, err, mfaoa.ErrShape)
}

// TestSolution covers the sign readout and the zero boundary policy.
func TestSolution(t *testing.T) {
	t.Parallel()

	s := spin.State{{0, 0, 0.3}, {0, 0, -0.1}, {1, 0, 0}, {0, 0, -0.0}}
	assert.Equal(t, []int{1, -1, 1, 1}, meanfield.Solution(s))
	assert.InDeltaSlice(t, []float64{0.65, 0.45, 0.5, 0.5}, meanfield.UpProbabilities(s), 1e-15)
}

// TestSolve_Annealing finds the ground state of a small ferromagnet.
func TestSolve_Annealing(t *testing.T) {
	t.Parallel()

	// H = −Σ σ_iσ_j on a triangle with a positive field: the ground state of
	// the mean-field energy −Σ(h+Jn)n with J>0 aligns all spins with the field.
	J := [][]float64{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}}
	pr, err := problem.New(200, []float64{0.3, 0.3, 0.3}, J)
	require.NoError(t, err)
	sched, err := schedule.Annealing(200, 0.5)
	require.NoError(t, err)

	sol, e, err := meanfield.Solve(pr, sched)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, sol)
	assert.Less(t, e, 0.0)
}
