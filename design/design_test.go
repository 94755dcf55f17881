package design_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spherelab/design"
	"github.com/katalvlaran/spherelab/sphere"
)

func platonic(t *testing.T, name sphere.PlatonicName) sphere.PointSet {
	t.Helper()
	ps, err := sphere.Platonic(name)
	require.NoError(t, err)

	return ps
}

// TestMoments_ChebyshevSanity: two points on the circle with ⟨x,y⟩ = 0.5.
// Ordered pairs contribute T₁(1)+T₁(1)+T₁(0.5)+T₁(0.5) = 3, over N² = 4.
func TestMoments_ChebyshevSanity(t *testing.T) {
	ps := sphere.PointSet{{1, 0}, {0.5, math.Sqrt(0.75)}}
	s, err := design.Moments(ps, 1)
	require.NoError(t, err)
	require.Len(t, s, 1)
	assert.InDelta(t, 0.75, s[0], 1e-12)
}

// TestMoments_ChebyshevRegularPolygon: the regular m-gon is an (m−1)-design
// on S¹ and fails at degree m.
func TestMoments_ChebyshevRegularPolygon(t *testing.T) {
	const m = 7
	ps := make(sphere.PointSet, m)
	for i := range ps {
		a := 2 * math.Pi * float64(i) / m
		ps[i] = sphere.Point{math.Cos(a), math.Sin(a)}
	}
	r, err := design.Estimate(ps, 10, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, m-1, r.Strength)
	assert.InDelta(t, 1.0, r.S[m-1], 1e-9, "T_m sums to N² at the m-th roots")
	assert.Equal(t, 2, r.Dim)
}

// TestMoments_MatchesLegendre: in ℝ³ the normalised Gegenbauer polynomials
// are the Legendre polynomials.
func TestMoments_MatchesLegendre(t *testing.T) {
	tt := 0.3
	ps := sphere.PointSet{{1, 0, 0}, {tt, math.Sqrt(1 - tt*tt), 0}}
	s, err := design.Moments(ps, 4)
	require.NoError(t, err)

	legendre := []float64{
		tt,
		(3*tt*tt - 1) / 2,
		(5*tt*tt*tt - 3*tt) / 2,
		(35*math.Pow(tt, 4) - 30*tt*tt + 3) / 8,
	}
	for k, p := range legendre {
		assert.InDelta(t, (2+2*p)/4, s[k], 1e-12, "k=%d", k+1)
	}
}

// TestMoments_Dimension4: for d = 4, G_k(t) = U_k(t)/(k+1).
func TestMoments_Dimension4(t *testing.T) {
	tt := -0.4
	ps := sphere.PointSet{{1, 0, 0, 0}, {tt, 0, 0, math.Sqrt(1 - tt*tt)}}
	s, err := design.Moments(ps, 3)
	require.NoError(t, err)
	u := []float64{2 * tt, 4*tt*tt - 1, 8*tt*tt*tt - 4*tt}
	for k, uk := range u {
		g := uk / float64(k+2)
		assert.InDelta(t, (2+2*g)/4, s[k], 1e-12, "k=%d", k+1)
	}
}

// TestEstimate_PlatonicStrengths pins the classical design strengths.
func TestEstimate_PlatonicStrengths(t *testing.T) {
	cases := []struct {
		name     sphere.PlatonicName
		strength int
	}{
		{sphere.Tetrahedron, 2},
		{sphere.Octahedron, 3},
		{sphere.Cube, 3},
		{sphere.Icosahedron, 5},
		{sphere.Dodecahedron, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name.String(), func(t *testing.T) {
			r, err := design.Estimate(platonic(t, tc.name), design.DefaultKMax, design.DefaultTol)
			require.NoError(t, err)
			assert.Equal(t, tc.strength, r.Strength)
			assert.Len(t, r.S, design.DefaultKMax)
			assert.Greater(t, math.Abs(r.S[tc.strength]), design.DefaultTol)
		})
	}
}

// TestEstimate_CrossPolytope4: ±eᵢ in ℝ⁴ is a 3-design.
func TestEstimate_CrossPolytope4(t *testing.T) {
	var ps sphere.PointSet
	for i := 0; i < 4; i++ {
		for _, sgn := range []float64{1, -1} {
			p := make(sphere.Point, 4)
			p[i] = sgn
			ps = append(ps, p)
		}
	}
	r, err := design.Estimate(ps, 6, 1e-12)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Strength)
	assert.Equal(t, 4, r.Dim)
	assert.Equal(t, 8, r.N)
}

// TestMoments_NonNegative: by the addition theorem every s_k ≥ 0.
func TestMoments_NonNegative(t *testing.T) {
	for _, d := range []int{2, 3, 5} {
		ps, err := sphere.Random(25, d, sphere.WithSeed(uint64(d)))
		require.NoError(t, err)
		s, err := design.Moments(ps, 12)
		require.NoError(t, err)
		for k, v := range s {
			assert.GreaterOrEqual(t, v, -1e-12, "d=%d k=%d", d, k+1)
		}
	}
}

// TestEstimateStrength_Prefix: the scan stops at the first violation.
func TestEstimateStrength_Prefix(t *testing.T) {
	tol := 1e-6
	assert.Equal(t, 2, design.EstimateStrength([]float64{0, 1e-7, 0.1, 0}, tol), "s₃ fails, s₄ passes")
	assert.Equal(t, 0, design.EstimateStrength([]float64{0.5, 0, 0}, tol))
	assert.Equal(t, 3, design.EstimateStrength([]float64{0, 0, -1e-7}, tol))
	assert.Equal(t, 0, design.EstimateStrength(nil, tol))
	assert.Equal(t, 1, design.EstimateStrength([]float64{1e-6, 2e-6}, tol), "|s_k| = tol passes")
	assert.Equal(t, 1, design.EstimateStrength([]float64{0, math.NaN(), 0}, tol), "NaN is a violation")
}

// TestErrors covers parameter validation.
func TestErrors(t *testing.T) {
	_, err := design.Moments(sphere.PointSet{{1}, {-1}}, 3)
	assert.ErrorIs(t, err, design.ErrDimensionTooSmall)
	_, err = design.Moments(sphere.PointSet{{1, 0}, {0, 1}}, 0)
	assert.ErrorIs(t, err, design.ErrBadKMax)
	_, err = design.Moments(sphere.PointSet{{1, 0}}, 3)
	assert.ErrorIs(t, err, sphere.ErrTooFewPoints)
	_, err = design.Estimate(sphere.PointSet{{1, 0}, {0, 1}}, 3, -1)
	assert.ErrorIs(t, err, design.ErrBadTolerance)
	_, err = design.Estimate(sphere.PointSet{{1, 0}, {0, 1}}, 0, 1e-6)
	assert.ErrorIs(t, err, design.ErrBadKMax)
	assert.ErrorContains(t, err, "Estimate: Moments: kmax=0")
	_, err = design.Estimate(sphere.PointSet{{1, 0}, {0, math.Inf(1)}}, 3, 1e-6)
	assert.ErrorIs(t, err, sphere.ErrNonFinite)
	assert.ErrorContains(t, err, "Estimate: Moments:")
}
