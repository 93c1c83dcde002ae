// Package builder generates Ising problems for the classic combinatorial
// optimization benchmarks, ready to be evolved by package meanfield.
//
// Every generator maps a combinatorial cost onto
//
//	H(σ) = Σ_i h_i σ_i + Σ_{i<j} J_ij σ_i σ_j
//
// and returns a validated *problem.Problem:
//
//   - MaxCut(n, edges):          J_ij = −½ on every edge, h = 0.
//   - MinVertexCover(n, edges):  h_i = 1 − ¾·deg(i), J_ij = −¾ on every edge.
//   - Partition(a):              J_ij = −2·a_i·a_j for i ≠ j, h = 0.
//   - SherringtonKirkpatrick(n, σ²): J_ij ~ N(0, σ²)/√n for i<j, mirrored, h = 0.
//
// Edge sets come from CycleEdges, CompleteEdges and RandomSparseEdges, or are
// passed in directly as [][2]int.
//
// Configuration flows through functional options resolved into an immutable
// builderConfig (layers, driver, RNG, pinning, problem options). Stochastic
// generators never touch global random state: they require WithSeed or WithRand
// and fail with ErrNeedRandSource otherwise.
//
// Option constructors panic on meaningless values; generators return wrapped
// sentinel errors (errors.Is) and never panic.
package builder
