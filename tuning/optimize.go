// SPDX-License-Identifier: MIT
// Package: tuning
//
// optimize.go — objective bookkeeping and the two search loops.

package tuning

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/spin"
)

const opOptimize = "Optimize"

// Nelder–Mead stops early once the best value moved less than this for
// nelderMeadStall consecutive major iterations.
const (
	nelderMeadTolerance = 1e-10
	nelderMeadStall     = 100
)

// Result is the best schedule found and its readout.
type Result struct {
	Energy          float64
	Schedule        schedule.Schedule
	Solution        []int
	UpProbabilities []float64
	InitialEnergy   float64
	Iterations      int
	Evaluations     int
	Method          Method
}

// objective evaluates E(β‖γ) and remembers the best point seen.
// Not safe for concurrent use; both search loops evaluate sequentially.
type objective struct {
	pr      *problem.Problem
	workers int

	best  []float64
	bestE float64
	evals int
}

func (o *objective) eval(x []float64) float64 {
	o.evals++
	e, err := energyAt(o.pr, x, o.workers)
	if err != nil {
		return math.Inf(1)
	}
	if e < o.bestE {
		o.bestE = e
		o.best = append(o.best[:0], x...)
	}

	return e
}

// energyAt evolves a fresh state under the schedule encoded by x.
func energyAt(pr *problem.Problem, x []float64, workers int) (float64, error) {
	sched, err := schedule.FromParams(x)
	if err != nil {
		return 0, err
	}
	hist, err := meanfield.Evolve(pr, spin.NewState(pr.NumQubits()), sched, &meanfield.Options{Workers: workers})
	if err != nil {
		return 0, err
	}

	return meanfield.Energy(pr, hist.Final())
}

// Optimize minimizes the mean-field energy of pr over schedules, starting at initial.
// MAIN DESCRIPTION:
//   - The returned Result.Energy never exceeds the energy of initial.
//
// Errors:
//   - mfaoa.ErrValue: nil problem, invalid options.
//   - mfaoa.ErrShape: initial does not have p layers.
//   - ctx.Err() (wrapped) on cancellation; the best Result so far is returned with it.
//
// Complexity:
//   - Gradient: MaxIterations·(4p+1) evolutions of O(p·N²) each.
func Optimize(ctx context.Context, pr *problem.Problem, initial schedule.Schedule, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if pr == nil {
		return nil, fmt.Errorf("tuning: %s: nil problem: %w", opOptimize, mfaoa.ErrValue)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", opOptimize, err)
	}
	if err := initial.Validate(pr.NumLayers()); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", opOptimize, err)
	}
	// The problem's driver must admit a Δ before any search starts.
	if _, err := pr.Delta(); err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", opOptimize, err)
	}

	log := o.logger().With("method", o.Method.String(), "qubits", pr.NumQubits(), "layers", pr.NumLayers())
	obj := &objective{pr: pr, workers: o.Workers, bestE: math.Inf(1)}
	x0 := initial.Params()
	e0 := obj.eval(x0)
	log.Debug("initial schedule", "energy", e0)

	var (
		iterations int
		runErr     error
	)
	switch o.Method {
	case Gradient:
		iterations, runErr = descend(ctx, obj, x0, o, log)
	case GradientFree:
		iterations, runErr = nelderMead(ctx, obj, x0, o, log)
	}

	res, err := obj.result(o.Method, e0, iterations)
	if err != nil {
		return nil, fmt.Errorf("tuning: %s: %w", opOptimize, err)
	}
	log.Info("optimization finished", "energy", res.Energy, "initial", e0,
		"iterations", res.Iterations, "evaluations", res.Evaluations)
	if runErr != nil {
		return res, fmt.Errorf("tuning: %s: %w", opOptimize, runErr)
	}

	return res, nil
}

// result re-evolves the best point to read out the solution.
func (o *objective) result(m Method, e0 float64, iterations int) (*Result, error) {
	sched, err := schedule.FromParams(o.best)
	if err != nil {
		return nil, err
	}
	hist, err := meanfield.Evolve(o.pr, spin.NewState(o.pr.NumQubits()), sched, &meanfield.Options{Workers: o.workers})
	if err != nil {
		return nil, err
	}
	final := hist.Final()

	return &Result{
		Energy:          o.bestE,
		Schedule:        sched,
		Solution:        meanfield.Solution(final),
		UpProbabilities: meanfield.UpProbabilities(final),
		InitialEnergy:   e0,
		Iterations:      iterations,
		Evaluations:     o.evals,
		Method:          m,
	}, nil
}

// descend runs fixed-rate gradient descent.
func descend(ctx context.Context, obj *objective, x0 []float64, o Options, log *slog.Logger) (int, error) {
	x := append([]float64(nil), x0...)
	grad := make([]float64, len(x))
	settings := &fd.Settings{Formula: fd.Central, Step: o.Step}

	it := 0
	for ; it < o.MaxIterations; it++ {
		if err := ctx.Err(); err != nil {
			return it, err
		}
		fd.Gradient(grad, obj.eval, x, settings)
		for i := range x {
			x[i] -= o.LearningRate * grad[i]
		}
		e := obj.eval(x)
		log.Debug("gradient step", "iteration", it+1, "energy", e)
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return it + 1, nil // left the finite region; keep the best point
		}
	}

	return it, nil
}

// nelderMead runs the gonum simplex search.
func nelderMead(ctx context.Context, obj *objective, x0 []float64, o Options, log *slog.Logger) (int, error) {
	settings := &optimize.Settings{
		MajorIterations: o.MaxIterations,
		Converger: &ctxConverger{
			ctx:   ctx,
			inner: &optimize.FunctionConverge{Absolute: nelderMeadTolerance, Iterations: nelderMeadStall},
		},
	}
	res, err := optimize.Minimize(optimize.Problem{Func: obj.eval}, x0, settings, &optimize.NelderMead{})
	iterations := 0
	if res != nil {
		iterations = res.Stats.MajorIterations
		log.Debug("nelder-mead finished", "status", res.Status.String(), "energy", res.F)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return iterations, ctxErr
	}
	if err != nil {
		// Limits and stalls are reported as errors by gonum; the tracked best point stands.
		log.Debug("nelder-mead stopped", "err", err)
	}

	return iterations, nil
}

// ctxConverger stops a gonum search once ctx is done.
type ctxConverger struct {
	ctx   context.Context
	inner optimize.Converger
}

func (c *ctxConverger) Init(dim int) { c.inner.Init(dim) }

func (c *ctxConverger) Converged(loc *optimize.Location) optimize.Status {
	if c.ctx.Err() != nil {
		return optimize.RuntimeLimit
	}

	return c.inner.Converged(loc)
}
