// SPDX-License-Identifier: MIT

package spin

import (
	"errors"
	"fmt"
	"math"
)

// NormTolerance is the documented drift bound on ‖n_i‖ - 1 after a layer.
const NormTolerance = 1e-9

// Axis indices into a Vec3.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// ErrNotUnit indicates that a spin vector left the unit sphere beyond tolerance.
var ErrNotUnit = errors.New("spin: vector is not unit-norm")

// Vec3 is a single spin vector (n^x, n^y, n^z).
type Vec3 [3]float64

// X returns n^x.
func (v Vec3) X() float64 { return v[AxisX] }

// Y returns n^y.
func (v Vec3) Y() float64 { return v[AxisY] }

// Z returns n^z.
func (v Vec3) Z() float64 { return v[AxisZ] }

// Norm returns the Euclidean length.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// State is one snapshot: one Vec3 per qubit.
type State []Vec3

// NewState returns n spins pointing along +x, the initial state of a fresh run.
// n <= 0 yields an empty state.
func NewState(n int) State {
	if n <= 0 {
		return State{}
	}
	s := make(State, n)
	for i := range s {
		s[i] = Vec3{1, 0, 0}
	}

	return s
}

// Clone returns an independent copy.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Z returns the z-components of all spins, the quantities the problem
// Hamiltonian couples to.
func (s State) Z() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = v[AxisZ]
	}

	return out
}

// MaxNormDeviation returns max_i |‖n_i‖ - 1| (NaN if any component is NaN).
func (s State) MaxNormDeviation() float64 {
	worst := 0.0
	for _, v := range s {
		d := math.Abs(v.Norm() - 1)
		if math.IsNaN(d) {
			return d
		}
		if d > worst {
			worst = d
		}
	}

	return worst
}

// CheckNorms returns ErrNotUnit (wrapped with the first offending qubit) when
// some ‖n_i‖ differs from 1 by more than tol.
func (s State) CheckNorms(tol float64) error {
	for i, v := range s {
		d := math.Abs(v.Norm() - 1)
		if !(d <= tol) {
			return fmt.Errorf("spin: qubit %d has norm %.12g: %w", i, v.Norm(), ErrNotUnit)
		}
	}

	return nil
}

// Equal reports exact component-wise equality.
func (s State) Equal(o State) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}

	return true
}
