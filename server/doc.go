// SPDX-License-Identifier: MIT

// Package server exposes sessions over HTTP with JSON bodies.
//
// Routes:
//
//	POST   /sessions                     create; body {n, dim, eta, potential{kind,param}, seed}
//	GET    /sessions/{id}                snapshot
//	DELETE /sessions/{id}
//	POST   /sessions/{id}/step           body {k}
//	POST   /sessions/{id}/randomize
//	POST   /sessions/{id}/reset-step
//	DELETE /sessions/{id}/history
//	PUT    /sessions/{id}/potential      body {kind, param}
//	PUT    /sessions/{id}/eta            body {eta}
//	PUT    /sessions/{id}/n              body {n}
//	PUT    /sessions/{id}/points         body {points} or {platonic}
//	GET    /sessions/{id}/structure      ?tol=&spectrum=
//	GET    /sessions/{id}/design         ?kmax=&tol=&force=
//	POST   /sessions/{id}/autgroup       ?tol=
//	GET    /metrics
//	GET    /healthz
//
// Validation failures answer 400, unknown sessions 404, a design request on
// a session that is not near-converged 409 (unless force=true) and a failing
// automorphism collaborator 502.
package server
