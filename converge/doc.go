// SPDX-License-Identifier: MIT

// Package converge decides when an energy trajectory has gone quiet.
//
// A Tracker counts consecutive observations whose relative energy change
// |Eₙ−Eₙ₋₁| / max(1, |Eₙ₋₁|) stays below a threshold (default 1e-6). Once the
// streak reaches the required length (default 25) the configuration is
// "near-converged"; one noisy observation resets the streak and the flag.
//
// This is a liveness gate for expensive downstream analysis, not a proof of
// convergence.
package converge
