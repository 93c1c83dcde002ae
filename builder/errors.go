// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Generators attach context via %w as "<Method>: <detail>: <sentinel>".
//   • Problem validation failures surface the mfaoa sentinels unchanged.
//
// Priority when several validations fail:
//   • ErrTooFewVertices → ErrBadEdge / ErrInvalidProbability → ErrNeedRandSource → ErrPinnedFields.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, len(a)) is below the
// minimum of the requested generator.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadEdge indicates an edge with an endpoint outside [0,n), a self-loop or
// a repeated pair.
var ErrBadEdge = errors.New("builder: invalid edge")

// ErrPinnedFields indicates that WithPinned was requested for a generator whose
// problem carries local fields; pinning is defined for zero-field models only.
var ErrPinnedFields = errors.New("builder: pinning requires zero local fields")
