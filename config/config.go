// SPDX-License-Identifier: MIT

// Package config reads a run description from YAML and turns it into a
// validated problem, a schedule and the knobs of analysis and optimization.
//
// Sources are layered: built-in defaults, then the file, then MFAOA_*
// environment variables (Load only). The merged result is checked with
// go-playground/validator tags plus a few cross-field rules; every failure
// wraps ErrInvalidConfig.
//
//	problem:
//	  layers: 100
//	  generator: {kind: sk, n: 8, variance: 1, seed: 7}
//	  pinned: true
//	schedule:
//	  annealing: {tau: 0.5}
//	analysis:
//	  tau: 0.5
//	  workers: 4
//	optimize:
//	  method: gradient
//	  iterations: 128
//	  learning_rate: 0.05
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding and validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied to zero-valued optional settings.
const (
	DefaultTau          = 0.5
	DefaultVariance     = 1.0
	DefaultWorkers      = 1
	DefaultMethod       = "gradient"
	DefaultIterations   = 128
	DefaultLearningRate = 0.05
)

// Config is the root of a run description.
type Config struct {
	Problem  ProblemConfig  `json:"problem" yaml:"problem"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Optimize OptimizeConfig `json:"optimize" yaml:"optimize"`
}

// ProblemConfig describes the Ising problem, either explicitly (fields and
// couplings) or through a generator.
type ProblemConfig struct {
	Layers                int              `json:"layers" yaml:"layers" validate:"required,gte=1"`
	Fields                []float64        `json:"fields,omitempty" yaml:"fields,omitempty"`
	Couplings             [][]float64      `json:"couplings,omitempty" yaml:"couplings,omitempty" validate:"required_without=Generator,excluded_with=Generator"`
	Generator             *GeneratorConfig `json:"generator,omitempty" yaml:"generator,omitempty"`
	Pinned                bool             `json:"pinned,omitempty" yaml:"pinned,omitempty"`
	SymmetryBreaking      *bool            `json:"symmetry_breaking,omitempty" yaml:"symmetry_breaking,omitempty"`
	SymmetryBreakingField float64          `json:"symmetry_breaking_field,omitempty" yaml:"symmetry_breaking_field,omitempty"`
	Driver                *DriverConfig    `json:"driver,omitempty" yaml:"driver,omitempty"`
}

// GeneratorConfig selects one of the builder generators.
type GeneratorConfig struct {
	Kind        string    `json:"kind" yaml:"kind" validate:"required,oneof=sk maxcut vertexcover partition"`
	N           int       `json:"n,omitempty" yaml:"n,omitempty" validate:"required_unless=Kind partition,gte=0"`
	Variance    float64   `json:"variance,omitempty" yaml:"variance,omitempty" validate:"gte=0"`
	Seed        uint64    `json:"seed,omitempty" yaml:"seed,omitempty"`
	Edges       [][]int   `json:"edges,omitempty" yaml:"edges,omitempty" validate:"omitempty,dive,len=2"`
	Graph       string    `json:"graph,omitempty" yaml:"graph,omitempty" validate:"omitempty,oneof=cycle complete random"`
	Probability float64   `json:"probability,omitempty" yaml:"probability,omitempty" validate:"gte=0,lte=1"`
	Values      []float64 `json:"values,omitempty" yaml:"values,omitempty" validate:"required_if=Kind partition"`
}

// DriverConfig selects the driver variant.
type DriverConfig struct {
	Kind   string    `json:"kind" yaml:"kind" validate:"required,oneof=single-axis pairwise-xxyy"`
	Pairs  [][]int   `json:"pairs,omitempty" yaml:"pairs,omitempty" validate:"omitempty,dive,len=2"`
	Scales []float64 `json:"scales,omitempty" yaml:"scales,omitempty"`
}

// ScheduleConfig gives explicit angles or an annealing ramp (the default).
type ScheduleConfig struct {
	Annealing *AnnealingConfig `json:"annealing,omitempty" yaml:"annealing,omitempty"`
	Beta      []float64        `json:"beta,omitempty" yaml:"beta,omitempty" validate:"required_with=Gamma"`
	Gamma     []float64        `json:"gamma,omitempty" yaml:"gamma,omitempty" validate:"required_with=Beta"`
}

// AnnealingConfig is the time step of the linear ramp.
type AnnealingConfig struct {
	Tau float64 `json:"tau" yaml:"tau" validate:"gt=0"`
}

// AnalysisConfig configures the Lyapunov analysis.
type AnalysisConfig struct {
	Tau     float64 `json:"tau" yaml:"tau" validate:"gt=0"`
	Workers int     `json:"workers" yaml:"workers" validate:"gte=1"`
}

// OptimizeConfig configures schedule optimization.
type OptimizeConfig struct {
	Method       string  `json:"method" yaml:"method" validate:"oneof=gradient gradient-free"`
	Iterations   int     `json:"iterations" yaml:"iterations" validate:"gte=1"`
	LearningRate float64 `json:"learning_rate" yaml:"learning_rate" validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path, applies MFAOA_* environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err = cfg.finalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes and validates YAML without consulting the environment.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err = cfg.finalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// decode rejects unknown keys so that typos do not silently fall back to defaults.
func decode(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

// finalize fills defaults and validates.
func (c *Config) finalize() error {
	if c.Schedule.Annealing == nil && c.Schedule.Beta == nil && c.Schedule.Gamma == nil {
		c.Schedule.Annealing = &AnnealingConfig{Tau: DefaultTau}
	}
	if g := c.Problem.Generator; g != nil && g.Kind == "sk" && g.Variance == 0 {
		g.Variance = DefaultVariance
	}
	if c.Analysis.Tau == 0 {
		c.Analysis.Tau = DefaultTau
	}
	if c.Analysis.Workers == 0 {
		c.Analysis.Workers = DefaultWorkers
	}
	if c.Optimize.Method == "" {
		c.Optimize.Method = DefaultMethod
	}
	if c.Optimize.Iterations == 0 {
		c.Optimize.Iterations = DefaultIterations
	}
	if c.Optimize.LearningRate == 0 {
		c.Optimize.LearningRate = DefaultLearningRate
	}

	return c.Validate()
}

// Validate checks struct tags and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Schedule.Annealing != nil && len(c.Schedule.Beta) > 0 {
		return fmt.Errorf("%w: schedule: annealing excludes explicit angles", ErrInvalidConfig)
	}
	if len(c.Schedule.Beta) != len(c.Schedule.Gamma) {
		return fmt.Errorf("%w: schedule: len(beta)=%d != len(gamma)=%d",
			ErrInvalidConfig, len(c.Schedule.Beta), len(c.Schedule.Gamma))
	}
	if f := c.Problem.SymmetryBreakingField; math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: problem: symmetry_breaking_field=%g is not finite", ErrInvalidConfig, f)
	}
	if c.Problem.Pinned && len(c.Problem.Fields) > 0 {
		return fmt.Errorf("%w: problem: pinned excludes explicit fields", ErrInvalidConfig)
	}
	if g := c.Problem.Generator; g != nil && (g.Kind == "maxcut" || g.Kind == "vertexcover") {
		if len(g.Edges) == 0 && g.Graph == "" {
			return fmt.Errorf("%w: generator %s needs edges or graph", ErrInvalidConfig, g.Kind)
		}
	}

	return nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return buf.Bytes(), nil
}
