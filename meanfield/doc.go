// Package meanfield evolves classical spin vectors through the alternating
// problem/driver rotations of the mean-field approximate optimization
// algorithm, and reads observables off the resulting snapshots.
//
// 🚀 Layer update (k = 1..p, all qubits from the same layer-start snapshot):
//
//	m_i   = h_i + Σ_j J_ij n_j^z
//	(x,y) ← R(2·m_i·γ_k) (x,y)        problem stage, rotation about z
//	(y,z) ← R(2·Δ_i·β_k) (y,z)        driver stage, rotation about x
//
// The order of the two stages is fixed: they do not commute.
//
// ✨ Modes: Options.KeepHistory selects final-only (one snapshot returned) or
// full history (p+1 snapshots, index 0 = initial). Both go through the same
// kernel, so the last history entry equals the final-only result bit for bit.
//
// ⚙️ Concurrency: within a layer every qubit reads only the layer-start
// snapshot, so Options.Workers > 1 splits the qubits into contiguous chunks
// processed by an errgroup. Results do not depend on Workers.
//
// Observables:
//
//	Expectation(S,h,J) = −Σ_i (h_i + Σ_{j≠i} J_ij n_j^z) n_i^z
//	Solution(S)_i      = sign(n_i^z), with sign(0) = +1
//	UpProbabilities(S) = (1 + n_i^z)/2
package meanfield
