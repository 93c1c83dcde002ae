// SPDX-License-Identifier: MIT

package tuning

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mfaoa"
)

// Method selects the optimization algorithm.
type Method int

const (
	// Gradient is fixed-learning-rate descent on finite-difference gradients.
	Gradient Method = iota
	// GradientFree is the Nelder–Mead simplex method.
	GradientFree
)

// String implements fmt.Stringer with the names accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case Gradient:
		return "gradient"
	case GradientFree:
		return "gradient-free"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "gradient" / "gradient-free" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "gradient":
		return Gradient, nil
	case "gradient-free", "nelder-mead":
		return GradientFree, nil
	default:
		return 0, fmt.Errorf("tuning: unknown method %q: %w", s, mfaoa.ErrValue)
	}
}

// Defaults of Options.
const (
	DefaultMaxIterations = 128
	DefaultLearningRate  = 0.05
	DefaultStep          = 1e-6
)

// Options configures Optimize.
//
// Fields:
//   - Method        — Gradient (default) or GradientFree.
//   - MaxIterations — descent steps, or Nelder–Mead major iterations.
//   - LearningRate  — step size η of Gradient.
//   - Step          — finite-difference step of Gradient.
//   - Workers       — forwarded to each evolution (see meanfield.Options).
//   - Logger        — progress at Debug level; nil discards.
type Options struct {
	Method        Method
	MaxIterations int
	LearningRate  float64
	Step          float64
	Workers       int
	Logger        *slog.Logger
}

// DefaultOptions returns gradient descent with 128 steps of size 0.05.
func DefaultOptions() Options {
	return Options{
		Method:        Gradient,
		MaxIterations: DefaultMaxIterations,
		LearningRate:  DefaultLearningRate,
		Step:          DefaultStep,
		Workers:       1,
	}
}

func (o Options) validate() error {
	if o.Method != Gradient && o.Method != GradientFree {
		return fmt.Errorf("method %s: %w", o.Method, mfaoa.ErrValue)
	}
	if o.MaxIterations < 1 {
		return fmt.Errorf("MaxIterations=%d < 1: %w", o.MaxIterations, mfaoa.ErrValue)
	}
	if !positive(o.LearningRate) || !positive(o.Step) {
		return fmt.Errorf("LearningRate=%g Step=%g must be positive: %w", o.LearningRate, o.Step, mfaoa.ErrValue)
	}

	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

func positive(x float64) bool { return x > 0 && !math.IsInf(x, 0) }
