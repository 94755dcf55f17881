// SPDX-License-Identifier: MIT

package design

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// Estimate computes the moments s_1..s_kmax of ps and the resulting strength.
//
// Complexity: O(N²·(d + kmax)) time, O(N²) memory.
func Estimate(ps sphere.PointSet, kmax int, tol float64) (Report, error) {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		return Report{}, fmt.Errorf("%s: tol=%g: %w", methodEstimate, tol, ErrBadTolerance)
	}
	s, err := Moments(ps, kmax)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", methodEstimate, err)
	}

	return Report{
		Dim:      ps.Dim(),
		N:        len(ps),
		KMax:     kmax,
		Tol:      tol,
		S:        s,
		Strength: EstimateStrength(s, tol),
	}, nil
}

// Moments returns s_k for k = 1..kmax over all ordered pairs of ps.
//
// Errors: shape sentinels from sphere.PointSet.Validate, ErrDimensionTooSmall,
// ErrBadKMax.
//
// Complexity: O(N²·d) for the inner products, then O(N²·kmax) for the
// recurrence; three N² buffers are live at once.
func Moments(ps sphere.PointSet, kmax int) ([]float64, error) {
	if err := ps.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodMoments, err)
	}
	if ps.Dim() < 2 {
		return nil, fmt.Errorf("%s: d=%d: %w", methodMoments, ps.Dim(), ErrDimensionTooSmall)
	}
	if kmax < 1 {
		return nil, fmt.Errorf("%s: kmax=%d: %w", methodMoments, kmax, ErrBadKMax)
	}

	ips := innerProducts(ps)
	if ps.Dim() == 2 {
		return chebyshevMoments(ips, len(ps), kmax), nil
	}

	return gegenbauerMoments(ips, len(ps), float64(ps.Dim()-2)/2, kmax), nil
}

// EstimateStrength returns the largest t such that |s_k| ≤ tol for every
// k ≤ t, where s[k−1] = s_k. Returns 0 when s_1 already fails or s is empty.
func EstimateStrength(s []float64, tol float64) int {
	t := 0
	for k, v := range s {
		if !(math.Abs(v) <= tol) {
			break
		}
		t = k + 1
	}

	return t
}

// innerProducts returns ⟨xᵢ,xⱼ⟩ for all ordered pairs, row-major, clamped
// to [−1,1].
func innerProducts(ps sphere.PointSet) []float64 {
	n := len(ps)
	ips := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ips[i*n+j] = max(-1, min(1, vec.Dot(ps[i], ps[j])))
		}
	}

	return ips
}

// chebyshevMoments evaluates T_k(t) = cos(k·arccos t) per pair.
func chebyshevMoments(ips []float64, n, kmax int) []float64 {
	norm := float64(n) * float64(n)
	s := make([]float64, kmax)
	for k := 1; k <= kmax; k++ {
		sum := 0.0
		for _, t := range ips {
			sum += math.Cos(float64(k) * math.Acos(t))
		}
		s[k-1] = sum / norm
	}

	return s
}

// gegenbauerMoments runs the three-term recurrence over all values at once.
func gegenbauerMoments(ips []float64, n int, lambda float64, kmax int) []float64 {
	norm := float64(n) * float64(n)
	s := make([]float64, kmax)

	prev2 := make([]float64, len(ips)) // C_{k−2}
	for m := range prev2 {
		prev2[m] = 1
	}
	prev1 := make([]float64, len(ips)) // C_{k−1}
	for m, t := range ips {
		prev1[m] = 2 * lambda * t
	}
	at1Prev2, at1Prev1 := 1.0, 2*lambda

	s[0] = normalisedMean(prev1, at1Prev1, norm)
	for k := 2; k <= kmax; k++ {
		a := 2 * (float64(k) + lambda - 1) / float64(k)
		b := (float64(k) + 2*lambda - 2) / float64(k)

		cur := prev2 // reuse C_{k−2}'s storage
		for m, t := range ips {
			cur[m] = a*t*prev1[m] - b*prev2[m]
		}
		at1 := a*at1Prev1 - b*at1Prev2

		s[k-1] = normalisedMean(cur, at1, norm)
		prev2, prev1 = prev1, cur
		at1Prev2, at1Prev1 = at1Prev1, at1
	}

	return s
}

// normalisedMean returns Σ c/c1 / norm, with c1 = 0 replaced by 1.
func normalisedMean(c []float64, c1, norm float64) float64 {
	if c1 == 0 {
		c1 = 1
	}
	sum := 0.0
	for _, v := range c {
		sum += v / c1
	}

	return sum / norm
}
