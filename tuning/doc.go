// Package tuning optimizes the angles of a mean-field schedule.
//
// The objective is the mean-field energy of the final state,
//
//	E(β, γ) = −Σ_i (h_i + Σ_{j≠i} J_ij n_j^z) n_i^z,   n = evolve(fresh state; β, γ),
//
// evaluated over the flat parameter vector β‖γ of length 2p and minimized by
// one of two methods:
//
//   - Gradient:     fixed-rate descent x ← x − η·∇E with central finite
//     differences (gonum diff/fd), one step per iteration.
//   - GradientFree: Nelder–Mead simplex search (gonum optimize).
//
// Every objective evaluation is tracked and the best point seen is returned,
// so the result is never worse than the initial schedule. Cancelling the
// context stops the search at the next step and returns the best point so far
// together with the context error.
package tuning
