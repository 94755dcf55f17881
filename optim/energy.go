// SPDX-License-Identifier: MIT

package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// Metrics are the scalar observables of one configuration.
type Metrics struct {
	Energy  float64 `json:"energy"`
	MinDist float64 `json:"min_dist"`
}

// EnergyAndMinDist sums the pair energy over unordered pairs i<j and tracks
// the minimum chordal distance. For the frame potential the summand is
// |⟨xᵢ,xⱼ⟩|^p; otherwise f(r) as returned by the radial kernel.
//
// Complexity: O(N²·d) time, O(d) memory.
func EnergyAndMinDist(ps sphere.PointSet, pot potential.Potential) (Metrics, error) {
	if err := ps.Validate(); err != nil {
		return Metrics{}, fmt.Errorf("%s: %w", methodEnergy, err)
	}
	if pot == nil {
		return Metrics{}, fmt.Errorf("%s: %w", methodEnergy, ErrNilPotential)
	}

	m := Metrics{MinDist: math.Inf(1)}
	diff := make([]float64, ps.Dim())
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			floats.SubTo(diff, ps[i], ps[j])
			r := floats.Norm(diff, 2)
			if r < m.MinDist {
				m.MinDist = r
			}
			switch k := pot.(type) {
			case potential.InnerProduct:
				m.Energy += k.Value(vec.Dot(ps[i], ps[j]))
			case potential.Radial:
				f, _ := k.Eval(r)
				m.Energy += f
			}
		}
	}

	return m, nil
}
