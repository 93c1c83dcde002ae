// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mfaoa/builder"
	"github.com/katalvlaran/mfaoa/fluctuation"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/tuning"
)

// Build constructs the problem and the schedule described by c.
// Errors from problem construction keep their mfaoa sentinels.
func (c *Config) Build() (*problem.Problem, schedule.Schedule, error) {
	pr, err := c.Problem.build()
	if err != nil {
		return nil, schedule.Schedule{}, err
	}
	sched, err := c.Schedule.build(pr.NumLayers())
	if err != nil {
		return nil, schedule.Schedule{}, err
	}

	return pr, sched, nil
}

// AnalysisOptions returns τ and the fluctuation options.
func (c *Config) AnalysisOptions() (float64, fluctuation.Options) {
	return c.Analysis.Tau, fluctuation.Options{Workers: c.Analysis.Workers}
}

// TuningOptions converts the optimize section; the logger is left for the caller.
func (c *Config) TuningOptions() (tuning.Options, error) {
	m, err := tuning.ParseMethod(c.Optimize.Method)
	if err != nil {
		return tuning.Options{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	opts := tuning.DefaultOptions()
	opts.Method = m
	opts.MaxIterations = c.Optimize.Iterations
	opts.LearningRate = c.Optimize.LearningRate
	opts.Workers = c.Analysis.Workers

	return opts, nil
}

func (s ScheduleConfig) build(p int) (schedule.Schedule, error) {
	if s.Annealing != nil {
		return schedule.Annealing(p, s.Annealing.Tau)
	}
	sched, err := schedule.New(s.Beta, s.Gamma)
	if err != nil {
		return schedule.Schedule{}, err
	}
	if err = sched.Validate(p); err != nil {
		return schedule.Schedule{}, err
	}

	return sched, nil
}

func (pc ProblemConfig) problemOptions() ([]problem.Option, error) {
	var opts []problem.Option
	if pc.Driver != nil {
		d, err := pc.Driver.driver()
		if err != nil {
			return nil, err
		}
		opts = append(opts, problem.WithDriver(d))
	}
	if f := pc.SymmetryBreakingField; math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: problem: symmetry_breaking_field=%g is not finite", ErrInvalidConfig, f)
	}
	switch {
	case pc.SymmetryBreaking != nil && !*pc.SymmetryBreaking:
		opts = append(opts, problem.WithoutSymmetryBreaking())
	case pc.SymmetryBreakingField != 0:
		opts = append(opts, problem.WithSymmetryBreakingField(pc.SymmetryBreakingField))
	}

	return opts, nil
}

func (pc ProblemConfig) build() (*problem.Problem, error) {
	popts, err := pc.problemOptions()
	if err != nil {
		return nil, err
	}
	if pc.Generator == nil {
		if pc.Pinned {
			return problem.NewPinned(pc.Layers, pc.Couplings, popts...)
		}
		fields := pc.Fields
		if fields == nil {
			fields = make([]float64, len(pc.Couplings))
		}

		return problem.New(pc.Layers, fields, pc.Couplings, popts...)
	}

	g := pc.Generator
	bopts := []builder.BuilderOption{
		builder.WithLayers(pc.Layers),
		builder.WithSeed(g.Seed),
		builder.WithProblemOptions(popts...),
	}
	if pc.Pinned {
		bopts = append(bopts, builder.WithPinned())
	}
	switch g.Kind {
	case "sk":
		return builder.SherringtonKirkpatrick(g.N, g.Variance, bopts...)
	case "partition":
		return builder.Partition(g.Values, bopts...)
	}
	edges, err := g.edges()
	if err != nil {
		return nil, err
	}
	if g.Kind == "maxcut" {
		return builder.MaxCut(g.N, edges, bopts...)
	}

	return builder.MinVertexCover(g.N, edges, bopts...)
}

func (g *GeneratorConfig) edges() ([][2]int, error) {
	if len(g.Edges) > 0 {
		return pairs(g.Edges), nil
	}
	switch g.Graph {
	case "cycle":
		return builder.CycleEdges(g.N)
	case "complete":
		return builder.CompleteEdges(g.N)
	default:
		return builder.RandomSparseEdges(g.N, g.Probability, builder.WithSeed(g.Seed))
	}
}

func (d *DriverConfig) driver() (problem.Driver, error) {
	if d.Kind == problem.SingleAxisDriver.String() {
		return problem.SingleAxis(), nil
	}
	if len(d.Pairs) == 0 {
		return problem.Driver{}, fmt.Errorf("%w: driver %s needs pairs", ErrInvalidConfig, d.Kind)
	}

	return problem.PairwiseXXYY(pairs(d.Pairs), d.Scales), nil
}

// pairs converts validated two-element rows.
func pairs(rows [][]int) [][2]int {
	out := make([][2]int, len(rows))
	for i, r := range rows {
		out[i] = [2]int{r[0], r[1]}
	}

	return out
}
