// SPDX-License-Identifier: MIT

package sphere

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/spherelab/vec"
)

// Random returns n points drawn uniformly from the unit sphere in ℝᵈ.
// Each coordinate is a standard normal sample; the Gaussian is rotation
// invariant, so normalising yields the uniform measure on S^(d−1).
func Random(n, d int, opts ...Option) (PointSet, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("Random: n=%d: %w", n, ErrTooFewPoints)
	}
	if d < 1 {
		return nil, fmt.Errorf("Random: d=%d: %w", d, ErrBadDimension)
	}
	cfg := gatherOptions(opts...)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: cfg.src}

	ps := make(PointSet, n)
	for i := range ps {
		z := make([]float64, d)
		for k := range z {
			z[k] = normal.Rand()
		}
		ps[i] = vec.Normalize(z)
	}

	return ps, nil
}
