// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//
// AI-Hints:
//   • Prefer WithSeed in tests and configs; WithRand shares one stream across calls.
//   • WithProblemOptions forwards problem.Option values (symmetry breaking etc.).

package builder

import (
	"math/rand/v2"

	"github.com/katalvlaran/mfaoa/problem"
)

// BuilderOption customizes a generator by mutating a builderConfig before use.
type BuilderOption func(*builderConfig)

// WithLayers sets the number of layers p of the generated problem.
// Panics if p < 1.
func WithLayers(p int) BuilderOption {
	if p < 1 {
		panic("builder: WithLayers(p<1)")
	}
	return func(c *builderConfig) { c.layers = p }
}

// WithDriver selects the driver variant of the generated problem.
func WithDriver(d problem.Driver) BuilderOption {
	return func(c *builderConfig) { c.driver = d }
}

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new PCG-backed *rand.Rand seeded with seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithPinned builds the reduced problem with the last spin held at +1
// (see problem.NewPinned). Only zero-field generators support it.
func WithPinned() BuilderOption {
	return func(c *builderConfig) { c.pinned = true }
}

// WithProblemOptions appends options forwarded to problem construction.
func WithProblemOptions(opts ...problem.Option) BuilderOption {
	return func(c *builderConfig) {
		c.problemOpts = append(c.problemOpts, opts...)
	}
}
