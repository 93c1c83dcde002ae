// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • layers      = DefaultLayers (1)
//   • driver      = problem.SingleAxis()
//   • rng         = nil (stochastic generators fail with ErrNeedRandSource)
//   • pinned      = false
//   • problemOpts = none

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/mfaoa/problem"
)

// DefaultLayers is the number of layers p of generated problems unless WithLayers is given.
const DefaultLayers = 1

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type builderConfig struct {
	layers      int
	driver      problem.Driver
	rng         *rand.Rand
	pinned      bool
	problemOpts []problem.Option
}

// newBuilderConfig starts from the defaults and applies opts in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		layers: DefaultLayers,
		driver: problem.SingleAxis(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// problemOptions returns the options forwarded to problem.New / problem.NewPinned.
func (c builderConfig) problemOptions() []problem.Option {
	out := make([]problem.Option, 0, len(c.problemOpts)+1)
	out = append(out, problem.WithDriver(c.driver))

	return append(out, c.problemOpts...)
}
