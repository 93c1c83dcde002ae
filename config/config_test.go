// SPDX-License-Identifier: MIT
// Package config_test contains tests for YAML loading, validation and Build.
package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/config"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/tuning"
)

const explicitYAML = `
problem:
  layers: 3
  fields: [0.5, -0.5, 0]
  couplings:
    - [0, 1, 0]
    - [1, 0, -1]
    - [0, -1, 0]
`

// TestParse_ExplicitDefaults checks defaults and an explicit problem.
func TestParse_ExplicitDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(explicitYAML))
	require.NoError(t, err)
	require.NotNil(t, cfg.Schedule.Annealing)
	assert.Equal(t, config.DefaultTau, cfg.Schedule.Annealing.Tau)
	assert.Equal(t, config.DefaultTau, cfg.Analysis.Tau)
	assert.Equal(t, config.DefaultWorkers, cfg.Analysis.Workers)
	assert.Equal(t, config.DefaultMethod, cfg.Optimize.Method)
	assert.Equal(t, config.DefaultIterations, cfg.Optimize.Iterations)

	pr, sched, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, pr.NumQubits())
	assert.Equal(t, 3, pr.NumLayers())
	assert.Equal(t, []float64{0.5, -0.5, 0}, pr.LocalFields())
	assert.Equal(t, 3, sched.Layers())
	assert.False(t, pr.SymmetryBroken())
}

// TestBuild_SymmetryBreaking checks the symmetry_breaking switch on zero fields.
func TestBuild_SymmetryBreaking(t *testing.T) {
	t.Parallel()

	base := `
problem:
  layers: 1
  couplings: [[0, 1], [1, 0]]
`
	cfg, err := config.Parse([]byte(base))
	require.NoError(t, err)
	pr, _, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, pr.SymmetryBroken())

	cfg, err = config.Parse([]byte(base + "  symmetry_breaking: false\n"))
	require.NoError(t, err)
	pr, _, err = cfg.Build()
	require.NoError(t, err)
	assert.False(t, pr.SymmetryBroken())
	assert.Equal(t, []float64{0, 0}, pr.LocalFields())
}

// TestBuild_Generators runs every generator kind through Build.
func TestBuild_Generators(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		yaml   string
		qubits int
	}{
		{"sk pinned", `
problem:
  layers: 2
  pinned: true
  generator: {kind: sk, n: 5, seed: 7}
`, 4},
		{"maxcut cycle", `
problem:
  layers: 2
  generator: {kind: maxcut, n: 4, graph: cycle}
`, 4},
		{"maxcut complete", `
problem:
  layers: 2
  generator: {kind: maxcut, n: 3, graph: complete}
`, 3},
		{"vertex cover edges", `
problem:
  layers: 2
  generator:
    kind: vertexcover
    n: 3
    edges: [[0, 1], [1, 2]]
`, 3},
		{"partition", `
problem:
  layers: 2
  generator: {kind: partition, values: [3, 1, 1, 2, 2, 1]}
`, 6},
		{"maxcut random", `
problem:
  layers: 2
  generator: {kind: maxcut, n: 6, graph: random, probability: 0.5, seed: 3}
`, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.Parse([]byte(tc.yaml))
			require.NoError(t, err)
			pr, sched, err := cfg.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.qubits, pr.NumQubits())
			assert.Equal(t, 2, sched.Layers())
		})
	}
}

// TestBuild_SKReproducible checks that a seed fixes the instance.
func TestBuild_SKReproducible(t *testing.T) {
	t.Parallel()

	doc := []byte("problem:\n  layers: 1\n  generator: {kind: sk, n: 6, variance: 2, seed: 11}\n")
	a, err := config.Parse(doc)
	require.NoError(t, err)
	b, err := config.Parse(doc)
	require.NoError(t, err)
	pa, _, err := a.Build()
	require.NoError(t, err)
	pb, _, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, pa.Couplings().Data(), pb.Couplings().Data())
}

// TestBuild_ExplicitSchedule checks beta/gamma and the layer-count check.
func TestBuild_ExplicitSchedule(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
problem:
  layers: 2
  couplings: [[0, 1], [1, 0]]
schedule:
  beta: [0.1, 0.2]
  gamma: [0.3, 0.4]
`))
	require.NoError(t, err)
	_, sched, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, sched.Beta)
	assert.Equal(t, []float64{0.3, 0.4}, sched.Gamma)

	cfg.Problem.Layers = 3
	_, _, err = cfg.Build()
	require.ErrorIs(t, err, mfaoa.ErrShape)
}

// TestBuild_Driver checks the pairwise driver section.
func TestBuild_Driver(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
problem:
  layers: 1
  fields: [1, 0]
  couplings: [[0, 1], [1, 0]]
  driver:
    kind: pairwise-xxyy
    pairs: [[0, 1]]
    scales: [0.5, 0.5]
`))
	require.NoError(t, err)
	pr, _, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, problem.PairwiseXXYYDriver, pr.Driver().Kind())
	delta, err := pr.Delta()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, delta)
}

// TestBuild_ProblemErrors checks that problem sentinels survive Build.
func TestBuild_ProblemErrors(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte("problem:\n  layers: 1\n  couplings: [[0, 1], [2, 0]]\n"))
	require.NoError(t, err)
	_, _, err = cfg.Build()
	require.ErrorIs(t, err, mfaoa.ErrValue)
}

// TestBuild_NonFiniteSymmetryField rejects a NaN or infinite pinning field
// set in code, past Parse.
func TestBuild_NonFiniteSymmetryField(t *testing.T) {
	t.Parallel()

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		cfg, err := config.Parse([]byte("problem:\n  layers: 3\n  couplings: [[0, 1], [1, 0]]\n"))
		require.NoError(t, err)
		cfg.Problem.SymmetryBreakingField = f

		require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		require.NotPanics(t, func() {
			_, _, err = cfg.Build()
		})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	}
}

// TestParse_Invalid covers structural and cross-field rejections.
func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{"empty", ``},
		{"missing layers", "problem:\n  couplings: [[0]]\n"},
		{"zero layers", "problem:\n  layers: 0\n  couplings: [[0]]\n"},
		{"no problem source", "problem:\n  layers: 1\n"},
		{"both sources", "problem:\n  layers: 1\n  couplings: [[0]]\n  generator: {kind: sk, n: 3}\n"},
		{"unknown key", "problem:\n  layers: 1\n  couplings: [[0]]\n  layer_count: 3\n"},
		{"bad kind", "problem:\n  layers: 1\n  generator: {kind: tsp, n: 3}\n"},
		{"sk without n", "problem:\n  layers: 1\n  generator: {kind: sk}\n"},
		{"partition without values", "problem:\n  layers: 1\n  generator: {kind: partition}\n"},
		{"maxcut without edges", "problem:\n  layers: 1\n  generator: {kind: maxcut, n: 3}\n"},
		{"ragged edge", "problem:\n  layers: 1\n  generator: {kind: maxcut, n: 3, edges: [[0, 1, 2]]}\n"},
		{"probability above one", "problem:\n  layers: 1\n  generator: {kind: maxcut, n: 3, graph: random, probability: 2}\n"},
		{"pinned with fields", "problem:\n  layers: 1\n  pinned: true\n  fields: [1]\n  couplings: [[0, 1], [1, 0]]\n"},
		{"angle mismatch", "problem:\n  layers: 1\n  couplings: [[0]]\nschedule:\n  beta: [1, 2]\n  gamma: [1]\n"},
		{"gamma alone", "problem:\n  layers: 1\n  couplings: [[0]]\nschedule:\n  gamma: [1]\n"},
		{"annealing with angles", "problem:\n  layers: 1\n  couplings: [[0]]\nschedule:\n  annealing: {tau: 1}\n  beta: [1]\n  gamma: [1]\n"},
		{"negative workers", "problem:\n  layers: 1\n  couplings: [[0]]\nanalysis:\n  workers: -2\n"},
		{"bad method", "problem:\n  layers: 1\n  couplings: [[0]]\noptimize:\n  method: annealing\n"},
		{"bad driver", "problem:\n  layers: 1\n  couplings: [[0]]\n  driver: {kind: triangle}\n"},
		{"nan symmetry field", "problem:\n  layers: 3\n  couplings: [[0, 1], [1, 0]]\n  symmetry_breaking_field: .nan\n"},
		{"inf symmetry field", "problem:\n  layers: 3\n  couplings: [[0, 1], [1, 0]]\n  symmetry_breaking_field: -.inf\n"},
		{"not yaml", "problem: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad_FileAndEnv checks file reading and MFAOA_* overrides.
func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(explicitYAML), 0o600))

	t.Setenv(config.EnvWorkers, "3")
	t.Setenv(config.EnvTau, "0.25")
	t.Setenv(config.EnvMethod, "gradient-free")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	tau, fopts := cfg.AnalysisOptions()
	assert.Equal(t, 0.25, tau)
	assert.Equal(t, 3, fopts.Workers)

	topts, err := cfg.TuningOptions()
	require.NoError(t, err)
	assert.Equal(t, tuning.GradientFree, topts.Method)
	assert.Equal(t, 3, topts.Workers)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load(path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

// TestMarshal_Reparses checks that rendered YAML parses back to the same run.
func TestMarshal_Reparses(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(explicitYAML))
	require.NoError(t, err)
	out, err := config.Marshal(cfg)
	require.NoError(t, err)

	again, err := config.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
