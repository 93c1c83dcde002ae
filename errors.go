// SPDX-License-Identifier: MIT
// Package: mfaoa
//
// errors.go — the error taxonomy shared by every subpackage.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Subpackages wrap them with operation context via %w, never by string.
//   • Validation happens at call entry; a failing call leaves its inputs untouched.
//   • Non-finite numbers produced by the dynamics are returned, not reported as errors.

package mfaoa

import "errors"

var (
	// ErrShape indicates a dimension or length mismatch between fields, couplings,
	// schedules, spin states and the declared number of qubits or layers.
	ErrShape = errors.New("mfaoa: shape mismatch")

	// ErrValue indicates an invalid parameter value (non-positive layer count,
	// non-positive time step, NaN/Inf input, non-zero self-coupling, ...).
	ErrValue = errors.New("mfaoa: invalid value")

	// ErrUnsupportedDriver indicates that the per-qubit driver scale Δ_i cannot be
	// derived for the selected driver variant.
	ErrUnsupportedDriver = errors.New("mfaoa: unsupported driver")
)
