// SPDX-License-Identifier: MIT

// Package schedule holds the variational angles of a p-layer run: the driver
// angles β and the problem angles γ, index-aligned with layers 1..p.
//
// Besides explicit schedules it provides the linear annealing ramp used to
// mimic quantum annealing with the mean-field AOA, and the flat β‖γ parameter
// vector exchanged with optimizers.
package schedule

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfaoa"
)

// Schedule pairs the driver angles Beta with the problem angles Gamma.
// Both have one entry per layer.
type Schedule struct {
	Beta  []float64 `json:"beta" yaml:"beta"`
	Gamma []float64 `json:"gamma" yaml:"gamma"`
}

// New copies beta and gamma into a Schedule after validation.
// Errors: ErrShape when lengths differ or are zero, ErrValue on NaN/±Inf.
func New(beta, gamma []float64) (Schedule, error) {
	s := Schedule{Beta: append([]float64(nil), beta...), Gamma: append([]float64(nil), gamma...)}
	if err := s.check(); err != nil {
		return Schedule{}, fmt.Errorf("schedule: New: %w", err)
	}

	return s, nil
}

// Zero returns a p-layer schedule of zero angles (identity evolution).
func Zero(p int) (Schedule, error) {
	if p < 1 {
		return Schedule{}, fmt.Errorf("schedule: Zero: p=%d < 1: %w", p, mfaoa.ErrValue)
	}

	return Schedule{Beta: make([]float64, p), Gamma: make([]float64, p)}, nil
}

// Annealing returns the linear ramp that discretizes an annealing protocol with
// time step tau:
//
//	γ_k = τ·(k − ½)/p,   β_k = τ·(1 − k/p),   β_p = τ/(4p),   k = 1..p.
//
// Errors: ErrValue if p < 1 or tau is not a positive finite number.
func Annealing(p int, tau float64) (Schedule, error) {
	if p < 1 {
		return Schedule{}, fmt.Errorf("schedule: Annealing: p=%d < 1: %w", p, mfaoa.ErrValue)
	}
	if !(tau > 0) || math.IsInf(tau, 0) {
		return Schedule{}, fmt.Errorf("schedule: Annealing: tau=%g: %w", tau, mfaoa.ErrValue)
	}
	s := Schedule{Beta: make([]float64, p), Gamma: make([]float64, p)}
	fp := float64(p)
	for k := 1; k <= p; k++ {
		s.Gamma[k-1] = tau * (float64(k) - 0.5) / fp
		s.Beta[k-1] = tau * (1 - float64(k)/fp)
	}
	s.Beta[p-1] = tau / (4 * fp)

	return s, nil
}

// FromParams splits a flat β‖γ vector of even length 2p into a Schedule.
func FromParams(params []float64) (Schedule, error) {
	if len(params) == 0 || len(params)%2 != 0 {
		return Schedule{}, fmt.Errorf("schedule: FromParams: len=%d not a positive even number: %w",
			len(params), mfaoa.ErrShape)
	}
	p := len(params) / 2

	return New(params[:p], params[p:])
}

// Params flattens the schedule into β‖γ (a fresh slice of length 2p).
func (s Schedule) Params() []float64 {
	out := make([]float64, 0, len(s.Beta)+len(s.Gamma))
	out = append(out, s.Beta...)

	return append(out, s.Gamma...)
}

// Layers returns p (the length of Beta).
func (s Schedule) Layers() int { return len(s.Beta) }

// Clone returns a deep copy.
func (s Schedule) Clone() Schedule {
	return Schedule{Beta: append([]float64(nil), s.Beta...), Gamma: append([]float64(nil), s.Gamma...)}
}

// Validate checks that both angle vectors have exactly p entries.
// Finiteness is not re-checked here: non-finite angles propagate as NaN.
func (s Schedule) Validate(p int) error {
	if len(s.Beta) != p {
		return fmt.Errorf("schedule: len(beta)=%d != layers=%d: %w", len(s.Beta), p, mfaoa.ErrShape)
	}
	if len(s.Gamma) != p {
		return fmt.Errorf("schedule: len(gamma)=%d != layers=%d: %w", len(s.Gamma), p, mfaoa.ErrShape)
	}

	return nil
}

func (s Schedule) check() error {
	if len(s.Beta) == 0 {
		return fmt.Errorf("empty schedule: %w", mfaoa.ErrShape)
	}
	if len(s.Beta) != len(s.Gamma) {
		return fmt.Errorf("len(beta)=%d != len(gamma)=%d: %w", len(s.Beta), len(s.Gamma), mfaoa.ErrShape)
	}
	for k := range s.Beta {
		if !finite(s.Beta[k]) || !finite(s.Gamma[k]) {
			return fmt.Errorf("layer %d has a non-finite angle: %w", k+1, mfaoa.ErrValue)
		}
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
