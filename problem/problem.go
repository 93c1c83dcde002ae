// SPDX-License-Identifier: MIT
// Package: problem
//
// problem.go — construction, validation and read-only access of an Ising problem.
//
// Contract:
//   • Couplings are stored as a matrix.Dense (row-major, symmetric, zero diagonal).
//   • A *Problem never changes after New/NewPinned returns; accessors hand out copies.
//   • All validation errors wrap mfaoa.ErrShape / mfaoa.ErrValue.

package problem

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mfaoa"
	"github.com/katalvlaran/mfaoa/matrix"
)

const (
	opNew       = "New"
	opNewPinned = "NewPinned"
)

// problemErrorf prefixes err with the package and operation name.
func problemErrorf(op string, err error) error {
	return fmt.Errorf("problem: %s: %w", op, err)
}

// Edge is a coupled pair I<J with its weight J_IJ.
type Edge struct {
	I, J   int
	Weight float64
}

// Problem is the immutable descriptor of an N-qubit, p-layer mean-field AOA run.
type Problem struct {
	numLayers int
	fields    []float64
	couplings *matrix.Dense
	edges     []Edge
	driver    Driver
	pinned    bool
	broken    bool // last field replaced by the symmetry-breaking field
}

// New validates and stores an Ising problem.
// MAIN DESCRIPTION:
//   - N is taken from the coupling matrix; localFields may be nil (treated as all zero).
//
// Implementation:
//   - Stage 1: numLayers ≥ 1.
//   - Stage 2: couplings → matrix.Dense (rectangular, finite, square, zero diagonal, symmetric within SymmetryTolerance).
//   - Stage 3: fields length N and finite; driver consistent with N.
//   - Stage 4: Z2 symmetry breaking on all-zero fields (unless disabled), edge derivation.
//
// Errors:
//   - mfaoa.ErrValue: numLayers < 1, NaN/±Inf entries, non-zero diagonal, bad driver pair.
//   - mfaoa.ErrShape: empty, ragged or non-square couplings, len(localFields) ≠ N.
//   - Asymmetric couplings wrap both mfaoa.ErrShape and mfaoa.ErrValue.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func New(numLayers int, localFields []float64, couplings [][]float64, opts ...Option) (*Problem, error) {
	cfg := newConfig(opts...)
	pr, err := build(numLayers, localFields, couplings, cfg)
	if err != nil {
		return nil, problemErrorf(opNew, err)
	}

	return pr, nil
}

// NewPinned builds the (N−1)-qubit problem obtained by holding the last spin
// of the zero-field Ising model J at σ_N = +1:
//
//	h_i = J_{i,N},   J'_{ij} = J_{ij}   for i, j < N.
//
// The full matrix is validated exactly like in New before the reduction.
// Errors: as New, plus mfaoa.ErrShape if J has fewer than 2 rows.
func NewPinned(numLayers int, couplings [][]float64, opts ...Option) (*Problem, error) {
	full, err := couplingMatrix(couplings)
	if err != nil {
		return nil, problemErrorf(opNewPinned, err)
	}
	n := full.Rows()
	if n < 2 {
		return nil, problemErrorf(opNewPinned, fmt.Errorf("need at least 2 spins, got %d: %w", n, mfaoa.ErrShape))
	}

	m := n - 1
	fields := make([]float64, m)
	reduced := make([][]float64, m)
	for i := 0; i < m; i++ {
		row, _ := full.Row(i)
		fields[i] = row[m]
		reduced[i] = append([]float64(nil), row[:m]...)
	}

	cfg := newConfig(opts...)
	pr, err := build(numLayers, fields, reduced, cfg)
	if err != nil {
		return nil, problemErrorf(opNewPinned, err)
	}
	pr.pinned = true

	return pr, nil
}

func build(numLayers int, localFields []float64, couplings [][]float64, cfg config) (*Problem, error) {
	if numLayers < 1 {
		return nil, fmt.Errorf("numLayers=%d < 1: %w", numLayers, mfaoa.ErrValue)
	}
	j, err := couplingMatrix(couplings)
	if err != nil {
		return nil, err
	}
	n := j.Rows()

	fields := make([]float64, n)
	if localFields != nil {
		if len(localFields) != n {
			return nil, fmt.Errorf("len(localFields)=%d != N=%d: %w", len(localFields), n, mfaoa.ErrShape)
		}
		for i, v := range localFields {
			if !finite(v) {
				return nil, fmt.Errorf("localFields[%d]=%g: %w", i, v, mfaoa.ErrValue)
			}
		}
		copy(fields, localFields)
	}
	if err = cfg.driver.validate(n); err != nil {
		return nil, err
	}

	pr := &Problem{numLayers: numLayers, fields: fields, couplings: j, driver: cfg.driver}
	if cfg.breakSymmetry && allZero(fields) {
		fields[n-1] = cfg.breakingField
		pr.broken = true
	}
	pr.edges = deriveEdges(j)

	return pr, nil
}

// couplingMatrix ingests and validates an Ising coupling matrix.
func couplingMatrix(rows [][]float64) (*matrix.Dense, error) {
	j, err := matrix.NewFromRows(rows)
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("couplings: %v: %w", err, mfaoa.ErrValue)
	case err != nil:
		return nil, fmt.Errorf("couplings: %v: %w", err, mfaoa.ErrShape)
	}
	if err = matrix.ValidateSquare(j); err != nil {
		return nil, fmt.Errorf("couplings %dx%d: %w", j.Rows(), j.Cols(), mfaoa.ErrShape)
	}
	n := j.Rows()
	for i := 0; i < n; i++ {
		if v, _ := j.At(i, i); v != 0 {
			return nil, fmt.Errorf("couplings[%d][%d]=%g (self-coupling): %w", i, i, v, mfaoa.ErrValue)
		}
	}
	if err = matrix.ValidateSymmetric(j, SymmetryTolerance); err != nil {
		return nil, fmt.Errorf("couplings: %v: %w: %w", err, mfaoa.ErrShape, mfaoa.ErrValue)
	}

	return j, nil
}

// deriveEdges lists i<j with J_ij ≠ 0 in ascending (i,j) order.
func deriveEdges(j *matrix.Dense) []Edge {
	n := j.Rows()
	data := j.Data()
	var edges []Edge
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if w := data[a*n+b]; w != 0 {
				edges = append(edges, Edge{I: a, J: b, Weight: w})
			}
		}
	}

	return edges
}

func allZero(xs []float64) bool {
	for _, x := range xs {
		if x != 0 {
			return false
		}
	}

	return true
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// NumQubits returns N.
func (pr *Problem) NumQubits() int { return len(pr.fields) }

// NumLayers returns p.
func (pr *Problem) NumLayers() int { return pr.numLayers }

// LocalFields returns a copy of h (after symmetry breaking).
func (pr *Problem) LocalFields() []float64 { return append([]float64(nil), pr.fields...) }

// Field returns h_i; it panics on an out-of-range index like a slice would.
func (pr *Problem) Field(i int) float64 { return pr.fields[i] }

// Couplings returns a deep copy of J.
func (pr *Problem) Couplings() *matrix.Dense {
	return pr.couplings.Clone().(*matrix.Dense)
}

// Coupling returns J_ij, or 0 when (i,j) is out of range.
func (pr *Problem) Coupling(i, j int) float64 {
	v, err := pr.couplings.At(i, j)
	if err != nil {
		return 0
	}

	return v
}

// Edges returns a copy of the derived edge list.
func (pr *Problem) Edges() []Edge { return append([]Edge(nil), pr.edges...) }

// Driver returns the driver variant.
func (pr *Problem) Driver() Driver { return pr.driver }

// Delta returns the per-qubit driver scale Δ_i (see Driver.Delta).
func (pr *Problem) Delta() ([]float64, error) {
	d, err := pr.driver.Delta(pr.NumQubits())
	if err != nil {
		return nil, fmt.Errorf("problem: Delta: %w", err)
	}

	return d, nil
}

// Pinned reports whether the problem came from NewPinned.
func (pr *Problem) Pinned() bool { return pr.pinned }

// SymmetryBroken reports whether New replaced the last field with the
// symmetry-breaking field.
func (pr *Problem) SymmetryBroken() bool { return pr.broken }

// Hamiltonian returns the classical Ising energy of a ±1 configuration:
//
//	H(σ) = Σ_i h_i σ_i + Σ_{i<j} J_ij σ_i σ_j.
//
// Errors: mfaoa.ErrShape if len(sigma) ≠ N, mfaoa.ErrValue for entries other than ±1.
func (pr *Problem) Hamiltonian(sigma []int) (float64, error) {
	n := pr.NumQubits()
	if len(sigma) != n {
		return 0, fmt.Errorf("problem: Hamiltonian: len(sigma)=%d != N=%d: %w", len(sigma), n, mfaoa.ErrShape)
	}
	for i, s := range sigma {
		if s != 1 && s != -1 {
			return 0, fmt.Errorf("problem: Hamiltonian: sigma[%d]=%d not ±1: %w", i, s, mfaoa.ErrValue)
		}
	}
	var e float64
	for i, h := range pr.fields {
		e += h * float64(sigma[i])
	}
	for _, ed := range pr.edges {
		e += ed.Weight * float64(sigma[ed.I]*sigma[ed.J])
	}

	return e, nil
}
