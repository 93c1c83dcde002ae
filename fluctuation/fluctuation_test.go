// SPDX-License-Identifier: MIT
// Package fluctuation_test contains tests for the tangent map and the Lyapunov spectrum.
package fluctuation_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/fluctuation"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

// sk draws a dense symmetric zero-diagonal coupling matrix.
func sk(rng *rand.Rand, n int) [][]float64 {
	J := make([][]float64, n)
	for i := range J {
		J[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			J[i][j] = rng.NormFloat64() / math.Sqrt(float64(n))
			J[j][i] = J[i][j]
		}
	}

	return J
}

func annealed(t *testing.T, n, p int, seed uint64) (*problem.Problem, schedule.Schedule) {
	t.Helper()

	pr, err := problem.New(p, nil, sk(rand.New(rand.NewPCG(seed, seed+1)), n))
	require.NoError(t, err)
	sched, err := schedule.Annealing(p, 0.5)
	require.NoError(t, err)

	return pr, sched
}

// TestTangentMatrix_FiniteDifference compares the analytic Jacobian of one layer
// with a central finite-difference Jacobian of the layer map.
func TestTangentMatrix_FiniteDifference(t *testing.T) {
	t.Parallel()

	const n = 4
	rng := rand.New(rand.NewPCG(21, 22))
	h := []float64{0.3, -0.7, 0.1, 0.5}
	rows := sk(rng, n)
	rows[2][2] = 0.4 // self-coupling enters through the (i,i) z-column
	J, err := matrix.NewFromRows(rows)
	require.NoError(t, err)
	delta := []float64{1, 0.5, 1, 2}
	beta, gamma := 0.37, 0.81

	// a generic point on the sphere
	s0 := make(spin.State, n)
	for i := range s0 {
		v := spin.Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		nv := v.Norm()
		s0[i] = spin.Vec3{v[0] / nv, v[1] / nv, v[2] / nv}
	}

	got, err := fluctuation.TangentMatrix(s0, h, J, delta, beta, gamma)
	require.NoError(t, err)

	layer := func(y, x []float64) {
		s := make(spin.State, n)
		for i := range s {
			s[i] = spin.Vec3{x[3*i], x[3*i+1], x[3*i+2]}
		}
		out, err := meanfield.EvolveFields(s, h, J, delta, []float64{beta}, []float64{gamma}, nil)
		if err != nil {
			panic(err)
		}
		for i, v := range out.Final() {
			copy(y[3*i:3*i+3], v[:])
		}
	}
	x0 := make([]float64, 3*n)
	for i, v := range s0 {
		copy(x0[3*i:3*i+3], v[:])
	}
	want := mat.NewDense(3*n, 3*n, nil)
	fd.Jacobian(want, layer, x0, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})

	for r := 0; r < 3*n; r++ {
		for c := 0; c < 3*n; c++ {
			v, err := got.At(r, c)
			require.NoError(t, err)
			require.InDeltaf(t, want.At(r, c), v, 1e-6, "entry (%d,%d)", r, c)
		}
	}
}

// TestTangentMatrix_UncoupledIsOrthogonal: without couplings each block is a rotation.
func TestTangentMatrix_UncoupledIsOrthogonal(t *testing.T) {
	t.Parallel()

	J, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	s := spin.State{{1, 0, 0}, {0, 0.6, 0.8}, {0, 0, -1}}
	m, err := fluctuation.TangentMatrix(s, []float64{1, -2, 0.5}, J, []float64{1, 1, 1}, 0.4, 1.3)
	require.NoError(t, err)

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	prod, err := matrix.Mul(mt, m)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			v, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, v, 1e-12)
		}
	}
}

// TestTangentMatrix_Errors covers input validation.
func TestTangentMatrix_Errors(t *testing.T) {
	t.Parallel()

	J, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = fluctuation.TangentMatrix(spin.NewState(3), []float64{0, 0}, J, []float64{1, 1}, 0, 0)
	require.ErrorIs(t, err, mfaoa.ErrShape)
	_, err = fluctuation.TangentMatrix(spin.State{}, nil, J, nil, 0, 0)
	require.ErrorIs(t, err, mfaoa.ErrShape)
	_, err = fluctuation.TangentMatrix(spin.NewState(2), []float64{0, 0}, nil, []float64{1, 1}, 0, 0)
	require.ErrorIs(t, err, mfaoa.ErrShape)
	_, err = fluctuation.TangentMatrix(spin.NewState(2), []float64{0, 0}, J, []float64{1, 1}, math.NaN(), 0)
	require.ErrorIs(t, err, mfaoa.ErrValue)
}

// TestAnalyze_SizeAndOrder returns 3N exponents in descending order.
func TestAnalyze_SizeAndOrder(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 6} {
		pr, sched := annealed(t, n, 25, uint64(n))
		sp, err := fluctuation.Analyze(pr, 0.5, sched, nil)
		require.NoError(t, err)

		require.Equal(t, 3*n, sp.Len())
		assert.Equal(t, 25, sp.Layers)
		assert.Equal(t, 0.5, sp.Tau)
		for i := 1; i < sp.Len(); i++ {
			require.GreaterOrEqual(t, sp.Exponents[i-1], sp.Exponents[i])
		}
		assert.Equal(t, sp.Exponents[0], sp.Max())
	}
}

// TestAnalyze_ZeroSchedule: the identity map has an all-zero spectrum.
func TestAnalyze_ZeroSchedule(t *testing.T) {
	t.Parallel()

	pr, _ := annealed(t, 4, 10, 3)
	sched, err := schedule.Zero(10)
	require.NoError(t, err)

	sp, err := fluctuation.Analyze(pr, 0.5, sched, nil)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 12), sp.Exponents)
	assert.Equal(t, 0.0, sp.Sum())
}

// TestAnalyze_UncoupledIsNeutral: independent rotations neither stretch nor shrink.
func TestAnalyze_UncoupledIsNeutral(t *testing.T) {
	t.Parallel()

	pr, err := problem.New(30, []float64{0.2, -1, 0.7}, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	require.NoError(t, err)
	sched, err := schedule.Annealing(30, 0.5)
	require.NoError(t, err)

	sp, err := fluctuation.Analyze(pr, 0.5, sched, nil)
	require.NoError(t, err)
	for _, e := range sp.Exponents {
		assert.InDelta(t, 0, e, 1e-10)
	}
}

// TestAnalyze_TauNormalization: τ rescales the exponents and nothing else.
func TestAnalyze_TauNormalization(t *testing.T) {
	t.Parallel()

	pr, sched := annealed(t, 4, 20, 9)
	a, err := fluctuation.Analyze(pr, 0.5, sched, nil)
	require.NoError(t, err)
	b, err := fluctuation.Analyze(pr, 1.0, sched, nil)
	require.NoError(t, err)
	for i := range a.Exponents {
		assert.InDelta(t, a.Exponents[i], 2*b.Exponents[i], 1e-12)
	}
}

// TestAnalyze_ParallelMatchesSequential requires identical spectra for any worker count.
func TestAnalyze_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()

	pr, sched := annealed(t, 7, 15, 4)
	seq, err := fluctuation.Analyze(pr, 0.5, sched, nil)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 32} {
		par, err := fluctuation.Analyze(pr, 0.5, sched, &fluctuation.Options{Workers: w})
		require.NoError(t, err)
		require.Equal(t, seq.Exponents, par.Exponents, "workers=%d", w)
	}
}

// TestAnalyze_Errors covers τ, schedule and driver validation.
func TestAnalyze_Errors(t *testing.T) {
	t.Parallel()

	pr, sched := annealed(t, 3, 5, 1)

	for _, tau := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := fluctuation.Analyze(pr, tau, sched, nil)
		require.ErrorIs(t, err, mfaoa.ErrValue, "tau=%g", tau)
	}

	short, err := schedule.Annealing(4, 0.5)
	require.NoError(t, err)
	_, err = fluctuation.Analyze(pr, 0.5, short, nil)
	require.ErrorIs(t, err, mfaoa.ErrShape)

	_, err = fluctuation.Analyze(nil, 0.5, sched, nil)
	require.ErrorIs(t, err, mfaoa.ErrValue)

	xx, err := problem.New(5, nil, sk(rand.New(rand.NewPCG(1, 1)), 3),
		problem.WithDriver(problem.PairwiseXXYY([][2]int{{0, 2}}, nil)))
	require.NoError(t, err)
	_, err = fluctuation.Analyze(xx, 0.5, sched, nil)
	require.ErrorIs(t, err, mfaoa.ErrUnsupportedDriver)
}

// TestSpectrum_Empty covers the degenerate accessors.
func TestSpectrum_Empty(t *testing.T) {
	t.Parallel()

	var s fluctuation.Spectrum
	assert.True(t, math.IsNaN(s.Max()))
	assert.Equal(t, 0.0, s.Sum())
	assert.Equal(t, 0, s.Len())
}

// TestAnalyze_SumMatchesLogDet: Σλ·p·τ is the log of the phase-space volume
// change, Σ_k log|det M_k|, for a coupled instance.
func TestAnalyze_SumMatchesLogDet(t *testing.T) {
	t.Parallel()

	const (
		n   = 5
		p   = 12
		tau = 0.5
	)
	pr, sched := annealed(t, n, p, 17)
	sp, err := fluctuation.Analyze(pr, tau, sched, nil)
	require.NoError(t, err)

	hist, err := meanfield.Evolve(pr, spin.NewState(n), sched, &meanfield.Options{KeepHistory: true})
	require.NoError(t, err)
	delta, err := pr.Delta()
	require.NoError(t, err)

	var want float64
	for k := 0; k < p; k++ {
		m, err := fluctuation.TangentMatrix(hist[k], pr.LocalFields(), pr.Couplings(), delta, sched.Beta[k], sched.Gamma[k])
		require.NoError(t, err)
		logDet, sign := mat.LogDet(mat.NewDense(3*n, 3*n, m.Data()))
		require.NotZero(t, sign)
		want += logDet
	}

	require.False(t, math.IsInf(sp.Sum(), 0))
	assert.InDelta(t, want, sp.Sum()*p*tau, 1e-9)
}
