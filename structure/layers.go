// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spherelab/sphere"
)

// EdgesByLayer assigns every pair i<j to the center nearest its inner product
// (first center on ties). Assignment is unconditional: a pair far from every
// center still lands in the nearest layer, so this partition must not be used
// to rebuild the contact graph.
func EdgesByLayer(ps sphere.PointSet, centers []float64) (LayeredEdges, error) {
	if len(centers) == 0 {
		return LayeredEdges{}, fmt.Errorf("%s: %w", methodEdgesByLayer, ErrNoCenters)
	}

	return edgesByLayer(PairwiseInnerProducts(ps), centers), nil
}

func edgesByLayer(pairs []Pair, centers []float64) LayeredEdges {
	le := LayeredEdges{
		Centers:      append([]float64(nil), centers...),
		EdgesByLayer: make([][][2]int, len(centers)),
	}
	for k := range le.EdgesByLayer {
		le.EdgesByLayer[k] = [][2]int{}
	}
	for _, p := range pairs {
		k := floats.NearestIdx(centers, p.V)
		le.EdgesByLayer[k] = append(le.EdgesByLayer[k], [2]int{p.I, p.J})
	}

	return le
}
