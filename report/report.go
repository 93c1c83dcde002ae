// SPDX-License-Identifier: MIT

// Package report assembles the outcome of one CLI run (evolution, Lyapunov
// analysis or schedule optimization) into a self-describing record and encodes
// it as JSON or YAML.
//
// Every report carries a random run id and a content fingerprint of the
// problem, so runs over the same instance can be grouped without shipping the
// couplings along.
package report

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mfaoa/fluctuation"
	"github.com/katalvlaran/mfaoa/problem"
	"github.com/katalvlaran/mfaoa/schedule"
)

// Output formats accepted by Encode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by Encode for formats other than json and yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Exponent is a Lyapunov exponent. Non-finite values encode as JSON strings
// ("NaN", "+Inf", "-Inf") since JSON numbers cannot carry them.
type Exponent float64

// MarshalJSON implements json.Marshaler.
func (e Exponent) MarshalJSON() ([]byte, error) {
	f := float64(e)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Report is the record of a single run. Sections that a command does not
// produce stay empty and are omitted from the output.
type Report struct {
	RunID       string    `json:"run_id" yaml:"run_id"`
	Fingerprint string    `json:"fingerprint" yaml:"fingerprint"`
	Command     string    `json:"command" yaml:"command"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
	NumQubits   int       `json:"num_qubits" yaml:"num_qubits"`
	NumLayers   int       `json:"num_layers" yaml:"num_layers"`

	Energy          *float64  `json:"energy,omitempty" yaml:"energy,omitempty"`
	Solution        []int     `json:"solution,omitempty" yaml:"solution,omitempty"`
	Cost            *float64  `json:"cost,omitempty" yaml:"cost,omitempty"`
	UpProbabilities []float64 `json:"up_probabilities,omitempty" yaml:"up_probabilities,omitempty"`

	Lyapunov []Exponent `json:"lyapunov,omitempty" yaml:"lyapunov,omitempty"`
	Tau      float64    `json:"tau,omitempty" yaml:"tau,omitempty"`

	Schedule   *schedule.Schedule `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Method     string             `json:"method,omitempty" yaml:"method,omitempty"`
	Iterations int                `json:"iterations,omitempty" yaml:"iterations,omitempty"`
}

// New starts a report for command on pr with a fresh run id.
func New(command string, pr *problem.Problem) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		Fingerprint: Fingerprint(pr),
		Command:     command,
		CreatedAt:   time.Now().UTC(),
		NumQubits:   pr.NumQubits(),
		NumLayers:   pr.NumLayers(),
	}
}

// SetEvolution records the final energy, the rounded solution with its
// classical cost, and the up-probabilities.
func (r *Report) SetEvolution(energy float64, solution []int, cost float64, up []float64) {
	r.Energy = &energy
	r.Solution = append([]int(nil), solution...)
	r.Cost = &cost
	r.UpProbabilities = append([]float64(nil), up...)
}

// SetSpectrum records a Lyapunov spectrum.
func (r *Report) SetSpectrum(s fluctuation.Spectrum) {
	r.Lyapunov = make([]Exponent, len(s.Exponents))
	for i, v := range s.Exponents {
		r.Lyapunov[i] = Exponent(v)
	}
	r.Tau = s.Tau
}

// SetSchedule records the schedule a run used or produced.
func (r *Report) SetSchedule(s schedule.Schedule) {
	c := s.Clone()
	r.Schedule = &c
}

// Fingerprint returns the hex SHA3-256 of a canonical little-endian encoding
// of (N, p, driver kind, fields, couplings). Problems with equal data, equal
// layer count and equal driver kind share a fingerprint.
func Fingerprint(pr *problem.Problem) string {
	n := pr.NumQubits()
	buf := make([]byte, 0, 8*(3+n+n*n))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(n))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(pr.NumLayers()))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(pr.Driver().Kind()))
	for _, h := range pr.LocalFields() {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(h))
	}
	for _, j := range pr.Couplings().Data() {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(j))
	}
	sum := sha3.Sum256(buf)

	return hex.EncodeToString(sum[:])
}

// Encode writes r to w as indented JSON or YAML.
func Encode(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode json: %w", err)
		}

		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
