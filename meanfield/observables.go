// SPDX-License-Identifier: MIT

package meanfield

import (
	"fmt"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

const (
	opMagnetization = "Magnetization"
	opExpectation   = "Expectation"
	opEnergy        = "Energy"
	opSolve         = "Solve"
)

// Magnetization returns m_i = h_i + Σ_j J_ij n_j^z for every qubit of s.
// Errors: mfaoa.ErrShape / mfaoa.ErrValue as EvolveFields.
func Magnetization(s spin.State, h []float64, J matrix.Matrix) ([]float64, error) {
	n := len(h)
	if len(s) != n {
		return nil, meanfieldErrorf(opMagnetization, fmt.Errorf("len(s)=%d != len(h)=%d: %w", len(s), n, mfaoa.ErrShape))
	}
	if _, err := flatCouplings(J, n); err != nil {
		return nil, meanfieldErrorf(opMagnetization, err)
	}
	m, err := matrix.MatVec(J, s.Z())
	if err != nil {
		return nil, meanfieldErrorf(opMagnetization, err)
	}
	for i := range m {
		m[i] += h[i]
	}

	return m, nil
}

// Expectation returns the mean-field energy of a snapshot:
//
//	E = −Σ_i (h_i + Σ_{j≠i} J_ij n_j^z) n_i^z
//
// The diagonal of J never contributes.
// Complexity: O(N²).
func Expectation(s spin.State, h []float64, J matrix.Matrix) (float64, error) {
	n := len(h)
	if len(s) != n {
		return 0, meanfieldErrorf(opExpectation, fmt.Errorf("len(s)=%d != len(h)=%d: %w", len(s), n, mfaoa.ErrShape))
	}
	j, err := flatCouplings(J, n)
	if err != nil {
		return 0, meanfieldErrorf(opExpectation, err)
	}

	return expectation(s.Z(), h, j), nil
}

func expectation(z, h, j []float64) float64 {
	n := len(z)
	var e float64
	for i := 0; i < n; i++ {
		m := h[i]
		row := j[i*n : (i+1)*n]
		for k, zk := range z {
			if k != i {
				m += row[k] * zk
			}
		}
		e -= m * z[i]
	}

	return e
}

// Energy is Expectation with the fields and couplings of pr.
func Energy(pr *problem.Problem, s spin.State) (float64, error) {
	if pr == nil {
		return 0, meanfieldErrorf(opEnergy, fmt.Errorf("nil problem: %w", mfaoa.ErrValue))
	}
	if len(s) != pr.NumQubits() {
		return 0, meanfieldErrorf(opEnergy, fmt.Errorf("len(s)=%d != N=%d: %w", len(s), pr.NumQubits(), mfaoa.ErrShape))
	}

	return expectation(s.Z(), pr.LocalFields(), pr.Couplings().Data()), nil
}

// Solution returns sign(n_i^z) per qubit; a zero (or NaN) z-component maps to +1.
func Solution(s spin.State) []int {
	out := make([]int, len(s))
	for i, v := range s {
		if v[spin.AxisZ] < 0 {
			out[i] = -1
		} else {
			out[i] = 1
		}
	}

	return out
}

// UpProbabilities returns (1 + n_i^z)/2, the probability of reading σ_i = +1
// from the product distribution defined by the snapshot.
func UpProbabilities(s spin.State) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = (1 + v[spin.AxisZ]) / 2
	}

	return out
}

// Solve evolves a fresh state (all spins along +x) under sched and returns the
// readout bitstring with the mean-field energy of the final state.
func Solve(pr *problem.Problem, sched schedule.Schedule) ([]int, float64, error) {
	if pr == nil {
		return nil, 0, meanfieldErrorf(opSolve, fmt.Errorf("nil problem: %w", mfaoa.ErrValue))
	}
	hist, err := Evolve(pr, spin.NewState(pr.NumQubits()), sched, nil)
	if err != nil {
		return nil, 0, meanfieldErrorf(opSolve, err)
	}
	final := hist.Final()
	e, err := Energy(pr, final)
	if err != nil {
		return nil, 0, meanfieldErrorf(opSolve, err)
	}

	return Solution(final), e, nil
}
