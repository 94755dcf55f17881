// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cluster1D segments values by gaps: after sorting ascending, a new cluster
// starts wherever the difference between consecutive values exceeds tol.
//
// Centers are member means in ascending order; Labels are reported in the
// input order. The result depends only on the multiset of values.
//
// Errors: ErrBadTolerance for tol < 0 or non-finite.
func Cluster1D(values []float64, tol float64) (Clusters, error) {
	if !(tol >= 0) || math.IsInf(tol, 1) {
		return Clusters{}, fmt.Errorf("%s: tol=%g: %w", methodCluster1D, tol, ErrBadTolerance)
	}
	if len(values) == 0 {
		return Clusters{Centers: []float64{}, Counts: []int{}, Widths: []float64{}, Labels: []int{}}, nil
	}

	sorted := append([]float64(nil), values...)
	idx := make([]int, len(values))
	floats.ArgsortStable(sorted, idx)

	c := Clusters{Labels: make([]int, len(values))}
	start := 0
	sum := sorted[0]
	flush := func(end int) {
		c.Centers = append(c.Centers, sum/float64(end-start))
		c.Counts = append(c.Counts, end-start)
		c.Widths = append(c.Widths, sorted[end-1]-sorted[start])
		label := len(c.Centers) - 1
		for u := start; u < end; u++ {
			c.Labels[idx[u]] = label
		}
	}

	for t := 1; t < len(sorted); t++ {
		if sorted[t]-sorted[t-1] > tol {
			flush(t)
			start = t
			sum = sorted[t]
			continue
		}
		sum += sorted[t]
	}
	flush(len(sorted))

	return c, nil
}
