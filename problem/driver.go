// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"

	"github.com/katalvlaran/mfaoa"
)

// DriverKind enumerates the closed set of driver variants.
type DriverKind int

const (
	// SingleAxisDriver is the transverse-field mixer Σ X_i (Δ_i = 1). Default.
	SingleAxisDriver DriverKind = iota

	// PairwiseXXYYDriver is the mixer Σ_{(i,j)} (X_i X_j + Y_i Y_j) over a set of pairs.
	PairwiseXXYYDriver
)

// String implements fmt.Stringer.
func (k DriverKind) String() string {
	switch k {
	case SingleAxisDriver:
		return "single-axis"
	case PairwiseXXYYDriver:
		return "pairwise-xxyy"
	default:
		return fmt.Sprintf("DriverKind(%d)", int(k))
	}
}

// Driver is a tagged variant over {SingleAxis, PairwiseXXYY(pairs)}.
// The zero value is the single-axis driver.
type Driver struct {
	kind   DriverKind
	pairs  [][2]int
	scales []float64
}

// SingleAxis returns the default transverse-field driver.
func SingleAxis() Driver { return Driver{kind: SingleAxisDriver} }

// PairwiseXXYY returns the XX+YY driver acting on every listed pair.
//
// The mean-field scale Δ_i of this driver is not derived from the pairs: the
// caller supplies it per qubit in scales. With nil scales the driver is still a
// valid problem descriptor, but Delta reports ErrUnsupportedDriver.
func PairwiseXXYY(pairs [][2]int, scales []float64) Driver {
	d := Driver{kind: PairwiseXXYYDriver}
	if pairs != nil {
		d.pairs = append([][2]int(nil), pairs...)
	}
	if scales != nil {
		d.scales = append([]float64(nil), scales...)
	}

	return d
}

// Kind returns the variant tag.
func (d Driver) Kind() DriverKind { return d.kind }

// Pairs returns a copy of the connectivity of a pairwise driver (nil otherwise).
func (d Driver) Pairs() [][2]int {
	if d.pairs == nil {
		return nil
	}

	return append([][2]int(nil), d.pairs...)
}

// Delta returns the per-qubit driver scale Δ_i for n qubits.
//
//	SingleAxis   → Δ_i = 1 for every qubit.
//	PairwiseXXYY → the explicit scales given at construction; ErrUnsupportedDriver without them.
func (d Driver) Delta(n int) ([]float64, error) {
	switch d.kind {
	case SingleAxisDriver:
		out := make([]float64, n)
		for i := range out {
			out[i] = 1
		}

		return out, nil
	case PairwiseXXYYDriver:
		if d.scales == nil {
			return nil, fmt.Errorf("problem: Delta: %s without explicit scales: %w", d.kind, mfaoa.ErrUnsupportedDriver)
		}
		if len(d.scales) != n {
			return nil, fmt.Errorf("problem: Delta: len(scales)=%d != %d: %w", len(d.scales), n, mfaoa.ErrShape)
		}

		return append([]float64(nil), d.scales...), nil
	default:
		return nil, fmt.Errorf("problem: Delta: %s: %w", d.kind, mfaoa.ErrUnsupportedDriver)
	}
}

// validate checks the driver against n qubits.
func (d Driver) validate(n int) error {
	switch d.kind {
	case SingleAxisDriver:
		return nil
	case PairwiseXXYYDriver:
		for idx, pr := range d.pairs {
			if pr[0] < 0 || pr[1] >= n || pr[0] >= pr[1] {
				return fmt.Errorf("driver pair #%d (%d,%d) not 0<=i<j<%d: %w", idx, pr[0], pr[1], n, mfaoa.ErrValue)
			}
		}
		if d.scales != nil && len(d.scales) != n {
			return fmt.Errorf("driver len(scales)=%d != %d: %w", len(d.scales), n, mfaoa.ErrShape)
		}
		for i, v := range d.scales {
			if !finite(v) {
				return fmt.Errorf("driver scale %d is not finite: %w", i, mfaoa.ErrValue)
			}
		}

		return nil
	default:
		return fmt.Errorf("unknown %s: %w", d.kind, mfaoa.ErrValue)
	}
}
