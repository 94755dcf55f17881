// SPDX-License-Identifier: MIT

// Package potential defines the pairwise energy kernels driving the sphere
// optimizer.
//
// The Potential type is a closed sum type with exactly four members:
//
//	Riesz{S}   f(r) = r^(−s)            radial
//	Log{}      f(r) = −ln r             radial
//	Power{P}   f(r) = −r^p              radial (maximises r^p)
//	PFrame{P}  f(t) = |t|^p, t = ⟨x,y⟩   inner-product
//
// Radial members implement Radial and are evaluated on pairwise Euclidean
// distance. PFrame implements InnerProduct instead and deliberately does not
// implement Radial: its gradient is a multiple of the other point rather than
// of the chord, so passing it to a radial evaluator does not compile.
//
// Singularities are guarded by epsilon substitution (Eps for distances, EpsT
// for inner products), never by errors.
//
//	p, err := potential.Parse("riesz", 1)
//	switch k := p.(type) {
//	case potential.Radial:
//	    f, fp := k.Eval(r)
//	case potential.InnerProduct:
//	    c := k.Coeff(t)
//	}
package potential
