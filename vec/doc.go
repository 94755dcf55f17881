// SPDX-License-Identifier: MIT

// Package vec provides the small set of geometric primitives the optimizer
// and analyzers are written in terms of: dot, subtract, add, scale, norm and
// normalize over fixed-length real vectors.
//
// Every operation allocates and returns a fresh slice; operands are never
// mutated. Length mismatches are programmer errors and panic, mirroring the
// gonum floats package the operations delegate to.
//
// Normalize is total: a zero or non-finite input maps to the canonical unit
// vector e₀ of the same dimension, so a retraction step can never poison the
// state with NaNs.
package vec
