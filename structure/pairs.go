// SPDX-License-Identifier: MIT

package structure

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// PairwiseInnerProducts returns ⟨xᵢ,xⱼ⟩ for all i<j in lexicographic order,
// each clamped to [−1,1]. Shape is not validated.
// Complexity: O(N²·d).
func PairwiseInnerProducts(ps sphere.PointSet) []Pair {
	n := len(ps)
	pairs := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, V: clamp(vec.Dot(ps[i], ps[j]))})
		}
	}

	return pairs
}

// Gram returns the symmetric matrix Gᵢⱼ = ⟨xᵢ,xⱼ⟩. The diagonal is the
// squared norm of each point, 1 for a valid configuration. An empty set
// yields an empty matrix.
func Gram(ps sphere.PointSet) *mat.SymDense {
	n := len(ps)
	if n == 0 {
		return &mat.SymDense{}
	}
	g := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			g.SetSym(i, j, vec.Dot(ps[i], ps[j]))
		}
	}

	return g
}

func clamp(t float64) float64 {
	return max(-1, min(1, t))
}
