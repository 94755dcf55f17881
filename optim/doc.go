// SPDX-License-Identifier: MIT

// Package optim evolves a point configuration on the unit sphere under a
// pairwise potential by projected (Riemannian) gradient descent.
//
// One Step:
//
//  1. Accumulate the Euclidean gradient gᵢ over all ordered pairs (i,j), i≠j.
//     Radial potentials contribute f'(r)·(xᵢ−xⱼ)/max(r,ε); the frame
//     potential contributes c(⟨xᵢ,xⱼ⟩)·xⱼ.
//  2. Project onto the tangent plane at xᵢ: gᵢ − (gᵢ·xᵢ)xᵢ.
//  3. Take the Euclidean step yᵢ = xᵢ − η·proj.
//  4. Retract with vec.Normalize.
//
// Retraction by normalisation restores unit norm for every η, at the cost of
// only approximating geodesic motion when η is large.
//
// All functions are pure: the input PointSet is never modified and each call
// returns a fresh one. There is no cancellation inside an O(N²) pass; callers
// that need interruption chunk StepMany themselves.
//
// Complexity: Step and EnergyAndMinDist are O(N²·d) time, O(N·d) memory.
package optim
