// SPDX-License-Identifier: MIT

// Package design estimates the spherical-design strength of a configuration.
//
// For a finite X ⊂ S^(d−1) and degree k, the normalised moment
//
//	s_k = (1/N²) · Σ_{x,y ∈ X} G_k(⟨x,y⟩)
//
// is zero exactly when X averages every degree-k zonal harmonic like the
// uniform measure. G_k is the Gegenbauer polynomial C_k^λ, λ = (d−2)/2,
// normalised so G_k(1) = 1; for d = 2 it is the Chebyshev polynomial
// T_k(t) = cos(k·arccos t). The sum runs over all ordered pairs, diagonal
// included.
//
// The strength t is the longest prefix s_1..s_t with |s_k| ≤ tol. The scan
// stops at the first violation even if later moments are small again.
//
// Moments are computed for all N² inner products at once with the
// three-term recurrence
//
//	C_0 = 1,  C_1 = 2λt,
//	C_k = (2(k+λ−1)/k)·t·C_{k−1} − ((k+2λ−2)/k)·C_{k−2},
//
// normalised by the same recurrence evaluated at t = 1.
//
// Complexity: O(N²·(d + K)) time, O(N²) memory.
package design
