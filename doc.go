// Package mfaoa simulates the mean-field Approximate Optimization Algorithm
// (mean-field AOA), the classical spin-vector approximation of QAOA on Ising
// Hamiltonians, and analyzes the stability of its dynamics.
//
// 🚀 What is inside?
//
//	A small, dependency-light numeric kernel that brings together:
//		• Problem model: local fields, couplings, layer count and driver
//		• Spin states: unit 3-vectors per qubit, single snapshot or full history
//		• Evolution: alternating problem (z) and driver (x) rotations per layer
//		• Observables: mean-field energy, sign readout, up-probabilities
//		• Fluctuations: Lyapunov spectrum of the linearized layer map
//		• Generators: MaxCut, vertex cover, partition, Sherrington–Kirkpatrick
//		• Tuning: schedule optimization of the mean-field energy
//
// ✨ Guarantees
//
//   - Pure functions of their inputs; no hidden or global state
//   - Eager validation at every public boundary with sentinel errors
//   - Norm-preserving evolution (rotations only) within 1e-9 per step
//   - Optional data-parallelism inside a layer with identical results
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      — dense row-major matrices, Householder QR
//	problem/     — Ising problem descriptor, driver variants, Z2 symmetry breaking
//	spin/        — spin vectors, states and histories
//	schedule/    — β/γ schedules, annealing ramp
//	meanfield/   — layer-by-layer evolution and observables
//	fluctuation/ — tangent-map Lyapunov exponents (Benettin method)
//	builder/     — problem generators with explicit RNG
//	tuning/      — schedule optimization
//	chart/       — trajectory and spectrum plots
//	config/      — YAML run descriptions
//	report/      — run reports and problem fingerprints
//
// Quick example:
//
//	p, _ := problem.New(100, nil, J)                  // Z2 symmetry broken on the last qubit
//	sched, _ := schedule.Annealing(100, 0.5)
//	hist, _ := meanfield.Evolve(p, spin.NewState(p.NumQubits()), sched, nil)
//	sigma := meanfield.Solution(hist.Final())
//
//	go get github.com/katalvlaran/mfaoa
package mfaoa
