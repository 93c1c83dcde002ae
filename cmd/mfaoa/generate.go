// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/mfaoa/config"
)

// partitionMax bounds the integers drawn for a generated partition instance.
const partitionMax = 20

// skeleton returns a complete, validated run description for a generator kind.
func skeleton(kind string, n, layers int, seed uint64) (*config.Config, error) {
	gen := &config.GeneratorConfig{Kind: kind, N: n, Seed: seed}
	pinned := false
	switch kind {
	case "sk":
		gen.Variance = config.DefaultVariance
		pinned = true
	case "maxcut":
		gen.Graph = "random"
		gen.Probability = 0.5
	case "vertexcover":
		gen.Graph = "cycle"
	case "partition":
		if n < 1 {
			return nil, fmt.Errorf("%w: partition needs n >= 1", config.ErrInvalidConfig)
		}
		rng := rand.New(rand.NewPCG(seed, seed))
		gen.Values = make([]float64, n)
		for i := range gen.Values {
			gen.Values[i] = float64(1 + rng.IntN(partitionMax))
		}
		gen.N, gen.Seed = 0, 0
	default:
		return nil, fmt.Errorf("%w: unknown generator kind %q", config.ErrInvalidConfig, kind)
	}

	cfg := &config.Config{
		Problem: config.ProblemConfig{Layers: layers, Generator: gen, Pinned: pinned},
		Schedule: config.ScheduleConfig{
			Annealing: &config.AnnealingConfig{Tau: config.DefaultTau},
		},
		Analysis: config.AnalysisConfig{Tau: config.DefaultTau, Workers: config.DefaultWorkers},
		Optimize: config.OptimizeConfig{
			Method:       config.DefaultMethod,
			Iterations:   config.DefaultIterations,
			LearningRate: config.DefaultLearningRate,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
