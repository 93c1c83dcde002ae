// SPDX-License-Identifier: MIT
// Package tuning_test contains tests for schedule optimization.
package tuning_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/builder"
	"github.com/katalvlaran/mfaoa/meanfield"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
	"github.com/katalvlaran/mfaoa/tuning"
)

func instance(t *testing.T) (*problem.Problem, schedule.Schedule) {
	t.Helper()

	pr, err := builder.SherringtonKirkpatrick(5, 1, builder.WithSeed(17), builder.WithLayers(4))
	require.NoError(t, err)
	sched, err := schedule.Annealing(4, 0.5)
	require.NoError(t, err)

	return pr, sched
}

// TestOptimize_NeverWorse runs both methods and compares against the initial energy.
func TestOptimize_NeverWorse(t *testing.T) {
	t.Parallel()

	pr, sched := instance(t)
	_, e0, err := meanfield.Solve(pr, sched)
	require.NoError(t, err)

	for _, m := range []tuning.Method{tuning.Gradient, tuning.GradientFree} {
		m := m
		t.Run(m.String(), func(t *testing.T) {
			opts := tuning.DefaultOptions()
			opts.Method = m
			opts.MaxIterations = 40

			res, err := tuning.Optimize(context.Background(), pr, sched, &opts)
			require.NoError(t, err)
			assert.Equal(t, e0, res.InitialEnergy)
			assert.LessOrEqual(t, res.Energy, e0)
			assert.Equal(t, m, res.Method)
			assert.Len(t, res.Solution, 5)
			assert.Len(t, res.UpProbabilities, 5)
			require.Equal(t, 4, res.Schedule.Layers())

			// the reported energy belongs to the reported schedule
			sol, e, err := meanfield.Solve(pr, res.Schedule)
			require.NoError(t, err)
			assert.Equal(t, res.Energy, e)
			assert.Equal(t, res.Solution, sol)
		})
	}
}

// TestOptimize_Deterministic: identical inputs give identical results.
func TestOptimize_Deterministic(t *testing.T) {
	t.Parallel()

	pr, sched := instance(t)
	opts := tuning.DefaultOptions()
	opts.MaxIterations = 10

	a, err := tuning.Optimize(context.Background(), pr, sched, &opts)
	require.NoError(t, err)
	b, err := tuning.Optimize(context.Background(), pr, sched, &opts)
	require.NoError(t, err)
	assert.Equal(t, a.Schedule, b.Schedule)
	assert.Equal(t, a.Energy, b.Energy)
	assert.Equal(t, 10, a.Iterations)
}

// TestOptimize_Cancelled returns the initial point with the context error.
func TestOptimize_Cancelled(t *testing.T) {
	t.Parallel()

	pr, sched := instance(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := tuning.Optimize(ctx, pr, sched, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, res)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, res.InitialEnergy, res.Energy)
	assert.Equal(t, sched, res.Schedule)
}

// TestOptimize_Logging writes a summary record to the configured logger.
func TestOptimize_Logging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	pr, sched := instance(t)
	opts := tuning.DefaultOptions()
	opts.MaxIterations = 2
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := tuning.Optimize(context.Background(), pr, sched, &opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "optimization finished")
	assert.Contains(t, buf.String(), "gradient step")
}

// TestOptimize_Errors covers argument validation.
func TestOptimize_Errors(t *testing.T) {
	t.Parallel()

	pr, sched := instance(t)
	ctx := context.Background()

	_, err := tuning.Optimize(ctx, nil, sched, nil)
	require.ErrorIs(t, err, mfaoa.ErrValue)

	short, err := schedule.Annealing(2, 0.5)
	require.NoError(t, err)
	_, err = tuning.Optimize(ctx, pr, short, nil)
	require.ErrorIs(t, err, mfaoa.ErrShape)

	bad := []func(*tuning.Options){
		func(o *tuning.Options) { o.MaxIterations = 0 },
		func(o *tuning.Options) { o.LearningRate = 0 },
		func(o *tuning.Options) { o.Step = -1 },
		func(o *tuning.Options) { o.Method = tuning.Method(9) },
	}
	for i, mutate := range bad {
		opts := tuning.DefaultOptions()
		mutate(&opts)
		_, err = tuning.Optimize(ctx, pr, sched, &opts)
		require.ErrorIs(t, err, mfaoa.ErrValue, "case %d", i)
	}
}

// TestParseMethod maps names to methods.
func TestParseMethod(t *testing.T) {
	t.Parallel()

	m, err := tuning.ParseMethod("gradient")
	require.NoError(t, err)
	assert.Equal(t, tuning.Gradient, m)
	m, err = tuning.ParseMethod("gradient-free")
	require.NoError(t, err)
	assert.Equal(t, tuning.GradientFree, m)
	_, err = tuning.ParseMethod("adam")
	require.ErrorIs(t, err, mfaoa.ErrValue)
}
