// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mfaoa/config"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeConfig stores a generated description for kind in a temp file.
func writeConfig(t *testing.T, kind string, n, layers int) string {
	t.Helper()
	cfg, err := skeleton(kind, n, layers, 5)
	require.NoError(t, err)
	data, err := config.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// TestSkeleton_AllKinds checks that every generated description builds.
func TestSkeleton_AllKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"sk", "maxcut", "vertexcover", "partition"} {
		t.Run(kind, func(t *testing.T) {
			t.Parallel()
			cfg, err := skeleton(kind, 6, 4, 9)
			require.NoError(t, err)
			pr, sched, err := cfg.Build()
			require.NoError(t, err)
			assert.Equal(t, 4, sched.Layers())
			assert.Positive(t, pr.NumQubits())
		})
	}

	_, err := skeleton("tsp", 6, 4, 9)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestGenerate_Parses checks that generate output is a valid description.
func TestGenerate_Parses(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "generate", "--kind", "maxcut", "--n", "5", "--layers", "3")
	require.NoError(t, err)
	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Problem.Layers)
	assert.Equal(t, "maxcut", cfg.Problem.Generator.Kind)
}

// TestEvolve_Report checks the JSON report and the plot file.
func TestEvolve_Report(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "sk", 5, 10)
	plot := filepath.Join(t.TempDir(), "z.svg")
	out, _, err := execute(t, "evolve", "--config", path, "--plot", plot, "--log-level", "error")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "evolve", got["command"])
	assert.EqualValues(t, 4, got["num_qubits"])
	assert.Len(t, got["solution"], 4)
	assert.Contains(t, got, "energy")
	assert.FileExists(t, plot)
}

// TestLyapunov_YAMLToFile checks --format and --out.
func TestLyapunov_YAMLToFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "vertexcover", 3, 4)
	dst := filepath.Join(t.TempDir(), "spectrum.yaml")
	out, _, err := execute(t, "lyapunov", "--config", path, "--format", "yaml", "--out", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "lyapunov:")
	assert.Contains(t, string(data), "command: lyapunov")
}

// TestOptimize_Report checks the optimize section of the report.
func TestOptimize_Report(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "partition", 4, 2)
	out, _, err := execute(t, "optimize", "--config", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "gradient", got["method"])
	assert.Contains(t, got, "schedule")
}

// TestCommand_Errors covers flag and input failures.
func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "evolve")
	require.ErrorIs(t, err, errNoConfig)

	_, _, err = execute(t, "evolve", "--config", writeConfig(t, "sk", 4, 2), "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "evolve", "--config", writeConfig(t, "sk", 4, 2), "--format", "toml")
	require.Error(t, err)

	_, _, err = execute(t, "evolve", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
