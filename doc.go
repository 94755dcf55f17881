// SPDX-License-Identifier: MIT

// Package spherelab minimises pair energies of point sets on the unit sphere
// and analyses the configurations it finds: distance layers, contact graphs
// and spherical-design strength.
//
// The numerical kernel is a set of small, lock-free packages:
//
//	vec/         fixed-length vector arithmetic over []float64
//	potential/   Riesz, log, power and p-frame pair potentials
//	sphere/      point sets, random sampling, Platonic fixtures
//	optim/       projected gradient steps, energy and minimum distance
//	converge/    relative-change streak tracker
//	structure/   1-D gap clustering, layers, contact graph, Gram spectrum
//	design/      Gegenbauer moments and design strength
//
// On top of it:
//
//	session/     owned, concurrency-safe optimisation state with history
//	autgroup/    automorphism group of a contact graph via an external process
//	server/      chi HTTP API over sessions, with an LRU analysis cache
//	cmd/spherelab  `serve` and headless `run`
//
// Quick example: the regular tetrahedron is stationary for every potential,
// has a single distance layer and is a spherical 2-design.
//
//	ps, _ := sphere.Platonic(sphere.Tetrahedron)
//	next, _ := optim.Step(ps, potential.Riesz{S: 1}, 0.01)
//	sum, _ := structure.Analyze(next, structure.DefaultTol)   // sum.Layer.K == 1
//	rep, _ := design.Estimate(next, 6, design.DefaultTol)     // rep.Strength == 2
package spherelab
