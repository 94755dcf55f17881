// SPDX-License-Identifier: MIT

// Package sphere holds the data model shared by the optimizer and the
// analyzers: a Point is a unit vector in ℝᵈ, a PointSet is an ordered
// sequence of N ≥ 2 of them whose indices are stable identities.
//
// The package also supplies the two ways a configuration comes into being:
//
//   - Random draws N points uniformly on S^(d−1) by normalising standard
//     Gaussian samples. Pass WithSeed for reproducible draws.
//   - Platonic returns the vertices of one of the five regular solids, which
//     serve as known optima and analysis fixtures.
//
// Unit norm is maintained by the optimizer's retraction step; Validate checks
// shape (N, dimension, finiteness) only and does not re-verify norms.
package sphere
