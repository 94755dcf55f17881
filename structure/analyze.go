// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spherelab/sphere"
)

// Analyze computes the layer summary, the layered edge partition and the
// contact graph of ps, clustering inner products with gap threshold tol.
//
// Errors: shape sentinels from sphere.PointSet.Validate; ErrBadTolerance.
// Complexity: O(N²·d + M log M + M·K), M = N(N−1)/2 pairs, K layers.
func Analyze(ps sphere.PointSet, tol float64) (Summary, error) {
	if err := ps.Validate(); err != nil {
		return Summary{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	pairs := PairwiseInnerProducts(ps)
	values := make([]float64, len(pairs))
	for t, p := range pairs {
		values[t] = p.V
	}
	cl, err := Cluster1D(values, tol)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	// contact layer: the largest center, i.e. the closest chordal distance
	contact := 0
	for k := 1; k < len(cl.Centers); k++ {
		if cl.Centers[k] > cl.Centers[contact] {
			contact = k
		}
	}
	var edges [][2]int
	for t, p := range pairs {
		if cl.Labels[t] == contact {
			edges = append(edges, [2]int{p.I, p.J})
		}
	}
	g, err := BuildGraph(len(ps), edges)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", methodAnalyze, err)
	}

	dist := make([]float64, len(cl.Centers))
	for k, c := range cl.Centers {
		dist[k] = math.Sqrt(math.Max(0, 2-2*c))
	}

	return Summary{
		N:   len(ps),
		Tol: tol,
		Layer: LayerSummary{
			Centers:   cl.Centers,
			Distances: dist,
			Counts:    cl.Counts,
			K:         len(cl.Centers),
			Tol:       tol,
		},
		Layers:  edgesByLayer(pairs, cl.Centers),
		Contact: g,
	}, nil
}
