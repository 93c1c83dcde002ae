// SPDX-License-Identifier: MIT
// Package: problem
//
// options.go — functional options for New / NewPinned.
//
// Contract:
//   • Options mutate a private config before validation starts.
//   • Option constructors PANIC on meaningless inputs (programmer error);
//     constructors themselves never panic and return sentinel errors.

package problem

import "math"

// SymmetryBreakingField is the field placed on the last qubit when the fields
// are absent or all zero.
const SymmetryBreakingField = 0.1

// SymmetryTolerance bounds |J_ij − J_ji| for couplings to count as symmetric.
const SymmetryTolerance = 1e-12

// Option customizes problem construction.
type Option func(*config)

type config struct {
	driver        Driver
	breakSymmetry bool
	breakingField float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		driver:        SingleAxis(),
		breakSymmetry: true,
		breakingField: SymmetryBreakingField,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDriver selects the driver variant (default SingleAxis).
func WithDriver(d Driver) Option {
	return func(c *config) { c.driver = d }
}

// WithSymmetryBreakingField overrides the pinning field of the last qubit.
// Panics on zero or non-finite values.
func WithSymmetryBreakingField(h float64) Option {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		panic("problem: WithSymmetryBreakingField(0 or non-finite)")
	}
	return func(c *config) {
		c.breakSymmetry = true
		c.breakingField = h
	}
}

// WithoutSymmetryBreaking keeps all-zero fields as given. The mean-field
// dynamics of such a problem are trivial (nothing rotates).
func WithoutSymmetryBreaking() Option {
	return func(c *config) { c.breakSymmetry = false }
}
