// SPDX-License-Identifier: MIT
// Package: meanfield
//
// evolve.go — the layer kernel and its two entry points (Evolve, EvolveFields).
//
// Contract:
//   • Inputs are validated once at entry; the kernel itself never fails.
//   • s0 is never mutated; every returned snapshot owns its memory.
//   • NaN/Inf produced by the dynamics propagate into the result unchanged.

package meanfield

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

const (
	opEvolve       = "Evolve"
	opEvolveFields = "EvolveFields"
)

// meanfieldErrorf prefixes err with the package and operation name.
func meanfieldErrorf(op string, err error) error {
	return fmt.Errorf("meanfield: %s: %w", op, err)
}

// stageOrder selects the order of the two rotations inside a layer.
type stageOrder int

const (
	problemFirst stageOrder = iota // problem rotation, then driver rotation
	driverFirst                    // swapped; only used to check that the order matters
)

// kernel holds the validated, flattened inputs of one evolution.
type kernel struct {
	n     int
	h     []float64
	j     []float64 // row-major N×N, read-only
	delta []float64
	order stageOrder
}

// Evolve advances s0 through the p layers of sched under the fields, couplings
// and driver of pr.
// MAIN DESCRIPTION:
//   - With opts.KeepHistory the result has p+1 snapshots (index 0 = s0);
//     otherwise it holds exactly one snapshot, the final state.
//
// Errors:
//   - mfaoa.ErrValue: nil problem, non-finite spin components.
//   - mfaoa.ErrShape: len(s0) ≠ N, schedule length ≠ p.
//   - mfaoa.ErrUnsupportedDriver: driver without a per-qubit Δ.
//
// Complexity:
//   - Time O(p·N²), Space O(N) final-only or O(p·N) with history.
func Evolve(pr *problem.Problem, s0 spin.State, sched schedule.Schedule, opts *Options) (spin.History, error) {
	k, err := problemKernel(pr, len(s0), sched)
	if err != nil {
		return nil, meanfieldErrorf(opEvolve, err)
	}
	if err = checkState(s0); err != nil {
		return nil, meanfieldErrorf(opEvolve, err)
	}

	return run(k, s0, sched.Beta, sched.Gamma, resolve(opts)), nil
}

// EvolveFields is Evolve on raw inputs: fields h, couplings J (N×N, any
// diagonal), per-qubit driver scales delta, and equal-length angle vectors.
// It performs no symmetry breaking and no symmetry check on J.
//
// Errors:
//   - mfaoa.ErrShape: empty h, len(s0)/len(delta) ≠ N, J not N×N, len(beta) ≠ len(gamma) or zero.
//   - mfaoa.ErrValue: any NaN/±Inf input.
func EvolveFields(s0 spin.State, h []float64, J matrix.Matrix, delta, beta, gamma []float64, opts *Options) (spin.History, error) {
	k, err := rawKernel(len(s0), h, J, delta)
	if err != nil {
		return nil, meanfieldErrorf(opEvolveFields, err)
	}
	if err = checkState(s0); err != nil {
		return nil, meanfieldErrorf(opEvolveFields, err)
	}
	if err = checkAngles(beta, gamma); err != nil {
		return nil, meanfieldErrorf(opEvolveFields, err)
	}

	return run(k, s0, beta, gamma, resolve(opts)), nil
}

// problemKernel extracts a kernel from a validated problem.
func problemKernel(pr *problem.Problem, stateLen int, sched schedule.Schedule) (kernel, error) {
	if pr == nil {
		return kernel{}, fmt.Errorf("nil problem: %w", mfaoa.ErrValue)
	}
	n := pr.NumQubits()
	if stateLen != n {
		return kernel{}, fmt.Errorf("len(s0)=%d != N=%d: %w", stateLen, n, mfaoa.ErrShape)
	}
	if err := sched.Validate(pr.NumLayers()); err != nil {
		return kernel{}, err
	}
	delta, err := pr.Delta()
	if err != nil {
		return kernel{}, err
	}

	return kernel{n: n, h: pr.LocalFields(), j: pr.Couplings().Data(), delta: delta}, nil
}

// rawKernel validates loose inputs and flattens J.
func rawKernel(stateLen int, h []float64, J matrix.Matrix, delta []float64) (kernel, error) {
	n := len(h)
	if n == 0 {
		return kernel{}, fmt.Errorf("empty fields: %w", mfaoa.ErrShape)
	}
	if stateLen != n {
		return kernel{}, fmt.Errorf("len(s0)=%d != N=%d: %w", stateLen, n, mfaoa.ErrShape)
	}
	if len(delta) != n {
		return kernel{}, fmt.Errorf("len(delta)=%d != N=%d: %w", len(delta), n, mfaoa.ErrShape)
	}
	if err := checkFinite("h", h); err != nil {
		return kernel{}, err
	}
	if err := checkFinite("delta", delta); err != nil {
		return kernel{}, err
	}
	j, err := flatCouplings(J, n)
	if err != nil {
		return kernel{}, err
	}

	return kernel{n: n, h: h, j: j, delta: delta}, nil
}

// flatCouplings returns J as a row-major slice after shape and finiteness checks.
// A *matrix.Dense is read in place, never written.
func flatCouplings(J matrix.Matrix, n int) ([]float64, error) {
	if err := matrix.ValidateNotNil(J); err != nil {
		return nil, fmt.Errorf("couplings: %v: %w", err, mfaoa.ErrShape)
	}
	if J.Rows() != n || J.Cols() != n {
		return nil, fmt.Errorf("couplings %dx%d, want %dx%d: %w", J.Rows(), J.Cols(), n, n, mfaoa.ErrShape)
	}
	d, err := matrix.AsDense(J)
	if err != nil {
		return nil, fmt.Errorf("couplings: %v: %w", err, mfaoa.ErrShape)
	}
	flat := d.Data()
	if err := checkFinite("couplings", flat); err != nil {
		return nil, err
	}

	return flat, nil
}

func checkFinite(name string, xs []float64) error {
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s[%d]=%g: %w", name, i, x, mfaoa.ErrValue)
		}
	}

	return nil
}

func checkState(s spin.State) error {
	for i, v := range s {
		if err := checkFinite(fmt.Sprintf("s0[%d]", i), v[:]); err != nil {
			return err
		}
	}

	return nil
}

func checkAngles(beta, gamma []float64) error {
	if len(beta) == 0 || len(beta) != len(gamma) {
		return fmt.Errorf("len(beta)=%d len(gamma)=%d: %w", len(beta), len(gamma), mfaoa.ErrShape)
	}
	if err := checkFinite("beta", beta); err != nil {
		return err
	}

	return checkFinite("gamma", gamma)
}

// run executes all layers. It cannot fail: inputs are already validated.
func run(k kernel, s0 spin.State, beta, gamma []float64, opts Options) spin.History {
	p := len(beta)
	z := make([]float64, k.n)

	if opts.KeepHistory {
		hist := make(spin.History, p+1)
		hist[0] = s0.Clone()
		for l := 0; l < p; l++ {
			hist[l+1] = make(spin.State, k.n)
			k.layer(hist[l], hist[l+1], z, beta[l], gamma[l], opts.Workers)
		}

		return hist
	}

	cur, next := s0.Clone(), make(spin.State, k.n)
	for l := 0; l < p; l++ {
		k.layer(cur, next, z, beta[l], gamma[l], opts.Workers)
		cur, next = next, cur
	}

	return spin.History{cur}
}

// layer writes the state after one layer into next, reading only cur.
// z is scratch space of length N for the layer-start z-components.
func (k kernel) layer(cur, next spin.State, z []float64, beta, gamma float64, workers int) {
	for i, v := range cur {
		z[i] = v[spin.AxisZ]
	}
	if workers <= 1 || k.n < 2 {
		k.updateRange(cur, next, z, beta, gamma, 0, k.n)
		return
	}
	if workers > k.n {
		workers = k.n
	}
	chunk := (k.n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < k.n; lo += chunk {
		hi := min(lo+chunk, k.n)
		g.Go(func() error {
			k.updateRange(cur, next, z, beta, gamma, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
}

// updateRange updates qubits [lo,hi).
func (k kernel) updateRange(cur, next spin.State, z []float64, beta, gamma float64, lo, hi int) {
	n := k.n
	for i := lo; i < hi; i++ {
		m := k.h[i]
		row := k.j[i*n : (i+1)*n]
		for j, zj := range z {
			m += row[j] * zj
		}
		theta := 2 * m * gamma
		phi := 2 * k.delta[i] * beta
		if k.order == driverFirst {
			next[i] = rotateZ(rotateX(cur[i], phi), theta)
		} else {
			next[i] = rotateX(rotateZ(cur[i], theta), phi)
		}
	}
}

// rotateZ rotates (x,y) by theta; z is unchanged.
func rotateZ(v spin.Vec3, theta float64) spin.Vec3 {
	s, c := math.Sincos(theta)
	return spin.Vec3{c*v[0] - s*v[1], s*v[0] + c*v[1], v[2]}
}

// rotateX rotates (y,z) by phi; x is unchanged.
func rotateX(v spin.Vec3, phi float64) spin.Vec3 {
	s, c := math.Sincos(phi)
	return spin.Vec3{v[0], c*v[1] - s*v[2], s*v[1] + c*v[2]}
}
