package optim_test

import (
	"fmt"

	"github.com/katalvlaran/spherelab/optim"
	"github.com/katalvlaran/spherelab/potential"
	"github.com/katalvlaran/spherelab/sphere"
	"github.com/katalvlaran/spherelab/vec"
)

// ExampleEnergyAndMinDist evaluates the Riesz 1-energy of an antipodal pair.
func ExampleEnergyAndMinDist() {
	ps := sphere.PointSet{{1, 0, 0}, {-1, 0, 0}}
	m, err := optim.EnergyAndMinDist(ps, potential.Riesz{S: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("energy=%.2f min_dist=%.2f\n", m.Energy, m.MinDist)
	// Output:
	// energy=0.50 min_dist=2.00
}

// ExampleStepMany relaxes four points towards the regular tetrahedron.
func ExampleStepMany() {
	ps := sphere.PointSet{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, vec.Normalize([]float64{-1, -1, 0.2})}
	out, err := optim.StepMany(ps, potential.Riesz{S: 1}, 0.05, 2000)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m, _ := optim.EnergyAndMinDist(out, potential.Riesz{S: 1})
	// regular tetrahedron: 6 pairs at distance √(8/3)
	fmt.Printf("energy=%.4f min_dist=%.4f\n", m.Energy, m.MinDist)
	// Output:
	// energy=3.6742 min_dist=1.6330
}
