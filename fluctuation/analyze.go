// SPDX-License-Identifier: MIT
// Package: fluctuation
//
// analyze.go — Benettin propagation of an orthonormal tangent basis.

package fluctuation

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

const opAnalyze = "Analyze"

// Analyze computes the Lyapunov spectrum of the mean-field trajectory of pr
// under sched, started from the fresh state (all spins along +x).
// MAIN DESCRIPTION:
//   - tau only normalizes the accumulated logarithms (exponents = Σ log R_ii / (p·τ));
//     the trajectory itself is fully determined by sched.
//
// Implementation:
//   - Stage 1: validate τ > 0 finite and the schedule length; evolve with full history.
//   - Stage 2: Q = I(3N); for each layer k assemble M_k at snapshot k−1, Y = M_k·Q,
//     (Q, R) = QR(Y), sums_i += log R_ii.
//   - Stage 3: exponents = sums/(p·τ), sorted descending.
//
// Errors:
//   - mfaoa.ErrValue: nil problem, τ ≤ 0 or non-finite.
//   - mfaoa.ErrShape: schedule length ≠ p.
//   - mfaoa.ErrUnsupportedDriver: driver without a per-qubit Δ.
//
// Complexity:
//   - Time O(p·N³), Space O(N² + p·N).
func Analyze(pr *problem.Problem, tau float64, sched schedule.Schedule, opts *Options) (*Spectrum, error) {
	if pr == nil {
		return nil, fluctuationErrorf(opAnalyze, fmt.Errorf("nil problem: %w", mfaoa.ErrValue))
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return nil, fluctuationErrorf(opAnalyze, fmt.Errorf("tau=%g must be positive and finite: %w", tau, mfaoa.ErrValue))
	}
	if err := sched.Validate(pr.NumLayers()); err != nil {
		return nil, fluctuationErrorf(opAnalyze, err)
	}
	o := resolve(opts)

	n := pr.NumQubits()
	hist, err := meanfield.Evolve(pr, spin.NewState(n), sched,
		&meanfield.Options{KeepHistory: true, Workers: o.Workers})
	if err != nil {
		return nil, fluctuationErrorf(opAnalyze, err)
	}
	delta, err := pr.Delta()
	if err != nil {
		return nil, fluctuationErrorf(opAnalyze, err)
	}
	h := pr.LocalFields()
	j := pr.Couplings().Data()

	dim := 3 * n
	q, err := matrix.NewIdentity(dim)
	if err != nil {
		return nil, fluctuationErrorf(opAnalyze, err)
	}
	m, _ := matrix.NewDense(dim, dim)
	y, _ := matrix.NewDense(dim, dim)
	sums := make([]float64, dim)

	var r *matrix.Dense
	for k := 0; k < sched.Layers(); k++ {
		clear(m.Data())
		fillTangent(m, hist[k], h, j, delta, sched.Beta[k], sched.Gamma[k])
		propagate(y, m, q, o.Workers)
		if q, r, err = matrix.QR(y); err != nil {
			return nil, fluctuationErrorf(opAnalyze, err)
		}
		rd := r.Data()
		for i := 0; i < dim; i++ {
			sums[i] += math.Log(rd[i*dim+i])
		}
	}

	norm := float64(sched.Layers()) * tau
	exps := make([]float64, dim)
	for i, s := range sums {
		exps[i] = s / norm
	}
	slices.SortFunc(exps, func(a, b float64) int { return cmp.Compare(b, a) }) // NaN last

	return &Spectrum{Exponents: exps, Tau: tau, Layers: sched.Layers()}, nil
}

// propagate writes m·q into dst, splitting rows across workers.
func propagate(dst, m, q *matrix.Dense, workers int) {
	rows := m.Rows()
	if workers <= 1 {
		matrix.MulRowsInto(dst, m, q, 0, rows)
		return
	}
	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)
		g.Go(func() error {
			matrix.MulRowsInto(dst, m, q, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
