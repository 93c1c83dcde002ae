// SPDX-License-Identifier: MIT

package spin

// History is the sequence of snapshots of an evolution. Index 0 is the
// initial state and index k the state after layer k, so a complete history of
// a p-layer run has p+1 entries. A final-only run records a single entry.
type History []State

// Final returns the last snapshot (nil for an empty history).
func (h History) Final() State {
	if len(h) == 0 {
		return nil
	}

	return h[len(h)-1]
}

// Layers returns the number of layer transitions recorded (len-1, never negative).
func (h History) Layers() int {
	if len(h) == 0 {
		return 0
	}

	return len(h) - 1
}

// Component extracts the time series of one axis of one qubit across all
// snapshots. Out-of-range qubit or axis yields nil.
func (h History) Component(qubit, axis int) []float64 {
	if axis < AxisX || axis > AxisZ || len(h) == 0 || qubit < 0 || qubit >= len(h[0]) {
		return nil
	}
	out := make([]float64, len(h))
	for k, s := range h {
		if qubit >= len(s) {
			return nil
		}
		out[k] = s[qubit][axis]
	}

	return out
}

// CheckNorms verifies the unit-norm invariant on every snapshot.
func (h History) CheckNorms(tol float64) error {
	for _, s := range h {
		if err := s.CheckNorms(tol); err != nil {
			return err
		}
	}

	return nil
}
