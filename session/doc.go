// SPDX-License-Identifier: MIT

// Package session owns the mutable state of one interactive optimisation:
// the point configuration, the chosen potential and step size, the step
// counter, the convergence tracker and a bounded energy history.
//
// A Session is safe for concurrent use. Every method that changes the points
// or the potential bumps Revision, so callers can cache derived analysis per
// (ID, Revision).
//
//	s, _ := session.New(session.WithN(12), session.WithSeed(7))
//	for !s.Snapshot().NearConverged {
//		_, _ = s.Advance(10)
//	}
//	a, _ := s.Analyze(ctx, session.AnalyzeOptions{RequireConvergence: true})
package session
