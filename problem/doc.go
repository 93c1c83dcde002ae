// Package problem defines the immutable Ising problem descriptor consumed by
// every other part of the module.
//
// A Problem carries N local fields h_i, a symmetric N×N coupling matrix J_ij
// with zero diagonal, the number of layers p, and the driver variant that
// selects the rotation generator of the driver stage. The edge set (pairs i<j
// with J_ij ≠ 0) is derived once at construction.
//
// Z2 symmetry breaking:
//
//	H = Σ h_i σ_i + Σ_{i<j} J_ij σ_i σ_j is invariant under σ → −σ when all h_i = 0.
//	Starting from n_i = (1,0,0) the mean-field magnetizations are then all zero
//	and nothing ever rotates. New therefore pins the last qubit with a small
//	field (SymmetryBreakingField) whenever the fields are absent or all zero,
//	unless WithoutSymmetryBreaking is given. NewPinned instead fixes σ_N = +1
//	and folds its couplings into effective fields of the remaining N−1 qubits.
//
// Errors are the root sentinels mfaoa.ErrShape / mfaoa.ErrValue /
// mfaoa.ErrUnsupportedDriver wrapped with "problem: <Op>: ...".
package problem
