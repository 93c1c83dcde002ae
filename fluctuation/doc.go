// Package fluctuation measures how sensitive a mean-field trajectory is to
// small perturbations by computing the Lyapunov spectrum of the layer map.
//
// One layer maps the 3N spin components n → F_k(n). Its Jacobian M_k
// (TangentMatrix) has, per qubit i:
//
//	block (i,i)        R_x(φ_i)·R_z(θ_i),           θ_i = 2·m_i·γ_k,  φ_i = 2·Δ_i·β_k
//	z-column of (i,j)  += 2·γ_k·J_ij·(−y'_i, cos φ_i·x'_i, sin φ_i·x'_i)
//
// where (x'_i, y'_i) are the components after the problem rotation.
//
// Analyze uses the Benettin method: starting from Q_0 = I it propagates the
// basis Y = M_k·Q_{k−1}, re-orthonormalizes Y = Q_k·R_k (diag R_k ≥ 0) and
// accumulates log R_k[i,i]. The exponents are the sums divided by p·τ,
// sorted in descending order. A direction that collapses exactly yields −Inf,
// which is reported as is.
package fluctuation
