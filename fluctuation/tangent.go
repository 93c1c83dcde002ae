// SPDX-License-Identifier: MIT
// Package: fluctuation
//
// tangent.go — assembly of the 3N×3N Jacobian of one mean-field layer.
//
// Layout:
//   • Row/column 3i+a is component a ∈ {x,y,z} of qubit i.
//   • Only diagonal blocks and the z-columns of coupled blocks are non-zero,
//     so the matrix holds at most 9N + 3·(2|E|+N) non-zeros.

package fluctuation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/spin"
)

const opTangent = "TangentMatrix"

// fluctuationErrorf prefixes err with the package and operation name.
func fluctuationErrorf(op string, err error) error {
	return fmt.Errorf("fluctuation: %s: %w", op, err)
}

// TangentMatrix returns ∂F/∂n for the layer map F with angles (beta, gamma),
// evaluated at the layer-start state s.
// MAIN DESCRIPTION:
//   - m_i = h_i + Σ_j J_ij n_j^z is the only channel through which qubit i
//     depends on other qubits, hence only z-columns couple blocks.
//
// Implementation:
//   - Stage 1: validate lengths (s, h, delta all N; J N×N).
//   - Stage 2: per qubit compute θ_i, φ_i and the rotated (x'_i, y'_i).
//   - Stage 3: write R_x(φ_i)R_z(θ_i) into block (i,i).
//   - Stage 4: for every J_ij ≠ 0 (j = i included) add 2γJ_ij·(−y'_i, cosφ_i·x'_i, sinφ_i·x'_i) to column 3j+2.
//
// Errors:
//   - mfaoa.ErrShape: inconsistent lengths, empty state.
//   - mfaoa.ErrValue: non-finite inputs.
//
// Complexity:
//   - Time O(N²), Space O(9N²).
func TangentMatrix(s spin.State, h []float64, J matrix.Matrix, delta []float64, beta, gamma float64) (*matrix.Dense, error) {
	j, err := checkLayerInputs(s, h, J, delta)
	if err != nil {
		return nil, fluctuationErrorf(opTangent, err)
	}
	if !finite(beta) || !finite(gamma) {
		return nil, fluctuationErrorf(opTangent, fmt.Errorf("beta=%g gamma=%g: %w", beta, gamma, mfaoa.ErrValue))
	}
	m, err := matrix.NewDense(3*len(s), 3*len(s))
	if err != nil {
		return nil, fluctuationErrorf(opTangent, err)
	}
	fillTangent(m, s, h, j, delta, beta, gamma)

	return m, nil
}

// fillTangent writes the Jacobian into a zeroed 3N×3N matrix.
func fillTangent(m *matrix.Dense, s spin.State, h, j, delta []float64, beta, gamma float64) {
	n := len(s)
	cols := 3 * n
	data := m.Data()
	z := s.Z()

	for i := 0; i < n; i++ {
		row := j[i*n : (i+1)*n]
		mi := h[i]
		for k, zk := range z {
			mi += row[k] * zk
		}
		st, ct := math.Sincos(2 * mi * gamma)
		sp, cp := math.Sincos(2 * delta[i] * beta)
		x, y := s[i][spin.AxisX], s[i][spin.AxisY]
		xp := ct*x - st*y
		yp := st*x + ct*y

		r0, r1, r2 := (3*i)*cols, (3*i+1)*cols, (3*i+2)*cols
		c0 := 3 * i
		// R_x(φ)·R_z(θ)
		data[r0+c0], data[r0+c0+1], data[r0+c0+2] = ct, -st, 0
		data[r1+c0], data[r1+c0+1], data[r1+c0+2] = cp*st, cp*ct, -sp
		data[r2+c0], data[r2+c0+1], data[r2+c0+2] = sp*st, sp*ct, cp

		g0, g1, g2 := -yp, cp*xp, sp*xp
		for k, jik := range row {
			if jik == 0 {
				continue
			}
			w := 2 * gamma * jik
			col := 3*k + 2
			data[r0+col] += w * g0
			data[r1+col] += w * g1
			data[r2+col] += w * g2
		}
	}
}

// checkLayerInputs validates one layer's inputs and returns J flattened.
func checkLayerInputs(s spin.State, h []float64, J matrix.Matrix, delta []float64) ([]float64, error) {
	n := len(s)
	if n == 0 {
		return nil, fmt.Errorf("empty state: %w", mfaoa.ErrShape)
	}
	if len(h) != n || len(delta) != n {
		return nil, fmt.Errorf("len(s)=%d len(h)=%d len(delta)=%d: %w", n, len(h), len(delta), mfaoa.ErrShape)
	}
	d, err := matrix.AsDense(J)
	if err != nil {
		return nil, fmt.Errorf("couplings: %v: %w", err, mfaoa.ErrShape)
	}
	if d.Rows() != n || d.Cols() != n {
		return nil, fmt.Errorf("couplings %dx%d, want %dx%d: %w", d.Rows(), d.Cols(), n, n, mfaoa.ErrShape)
	}
	for _, xs := range [][]float64{h, delta, d.Data()} {
		for _, x := range xs {
			if !finite(x) {
				return nil, fmt.Errorf("non-finite input %g: %w", x, mfaoa.ErrValue)
			}
		}
	}
	for i, v := range s {
		if !finite(v[0]) || !finite(v[1]) || !finite(v[2]) {
			return nil, fmt.Errorf("spin %d is not finite: %w", i, mfaoa.ErrValue)
		}
	}

	return d.Data(), nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
