// SPDX-License-Identifier: MIT

// Package structure extracts the geometric structure of a point configuration
// on the sphere from its pairwise inner products.
//
// Pipeline (Analyze):
//
//  1. PairwiseInnerProducts: the N(N−1)/2 values ⟨xᵢ,xⱼ⟩, i<j, clamped to
//     [−1,1].
//  2. Cluster1D: sort ascending, cut wherever the gap between neighbours
//     exceeds tol. Each segment is a "distance layer"; its center is the mean.
//  3. Contact graph: the pairs labelled with the layer of largest center
//     (highest inner product, i.e. smallest chordal distance).
//  4. EdgesByLayer: every pair assigned to its nearest center, for
//     visualisation.
//
// Gap clustering is a single greedy pass. A chain of sub-tol steps is merged
// into one layer even when its endpoints are far apart; this is the intended
// behaviour, not density clustering.
//
// EdgesByLayer and the contact graph use different assignment policies
// (nearest center vs. gap-cluster label). Do not derive one from the other.
//
// Auxiliary views: Gram (gonum SymDense), GramSpectrum (eigenvalues and numerical
// rank of the Gram matrix), DegreeSummary and Graph.Components.
//
// Complexity: O(N²·d) for inner products, O(M log M) for clustering with
// M = N(N−1)/2, O(M·K) for EdgesByLayer.
package structure
