// SPDX-License-Identifier: MIT

package sphere

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spherelab/vec"
)

// PlatonicName enumerates the five regular solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // N=4,  1 layer  (−1/3)
	Octahedron                       // N=6,  2 layers (0, −1)
	Cube                             // N=8,  3 layers (±1/3, −1)
	Icosahedron                      // N=12, 3 layers (±1/√5, −1)
	Dodecahedron                     // N=20, 5 layers
)

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Octahedron:
		return "Octahedron"
	case Cube:
		return "Cube"
	case Icosahedron:
		return "Icosahedron"
	case Dodecahedron:
		return "Dodecahedron"
	default:
		return "Unknown"
	}
}

// ParsePlatonic maps a solid name, in any case, to a PlatonicName.
func ParsePlatonic(name string) (PlatonicName, error) {
	for p := Tetrahedron; p <= Dodecahedron; p++ {
		if strings.EqualFold(name, p.String()) {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownSolid)
}

// Platonic returns the unit-norm vertices of the named solid in ℝ³.
// Vertex order is fixed, so indices are stable across calls.
func Platonic(name PlatonicName) (PointSet, error) {
	var raw [][3]float64
	phi := (1 + math.Sqrt(5)) / 2

	switch name {
	case Tetrahedron:
		raw = [][3]float64{{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}}
	case Octahedron:
		raw = [][3]float64{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	case Cube:
		for _, x := range []float64{1, -1} {
			for _, y := range []float64{1, -1} {
				for _, z := range []float64{1, -1} {
					raw = append(raw, [3]float64{x, y, z})
				}
			}
		}
	case Icosahedron:
		// cyclic permutations of (0, ±1, ±φ)
		for _, a := range []float64{1, -1} {
			for _, b := range []float64{phi, -phi} {
				raw = append(raw, [3]float64{0, a, b}, [3]float64{a, b, 0}, [3]float64{b, 0, a})
			}
		}
	case Dodecahedron:
		for _, x := range []float64{1, -1} {
			for _, y := range []float64{1, -1} {
				for _, z := range []float64{1, -1} {
					raw = append(raw, [3]float64{x, y, z})
				}
			}
		}
		// cyclic permutations of (0, ±1/φ, ±φ)
		for _, a := range []float64{1 / phi, -1 / phi} {
			for _, b := range []float64{phi, -phi} {
				raw = append(raw, [3]float64{0, a, b}, [3]float64{a, b, 0}, [3]float64{b, 0, a})
			}
		}
	default:
		return nil, fmt.Errorf("Platonic(%d): %w", int(name), ErrUnknownSolid)
	}

	ps := make(PointSet, len(raw))
	for i, r := range raw {
		ps[i] = vec.Normalize(r[:])
	}

	return ps, nil
}
