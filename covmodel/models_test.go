package covmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invE = 0.36787944117144233 // e^-1

func TestExponentialCorAtOne(t *testing.T) {
	m, err := NewExponential(Config{})
	require.NoError(t, err)
	assert.InDelta(t, invE, m.Cor(1), 1e-15)
}

func TestGaussianCorAtOne(t *testing.T) {
	// cor(h) = exp(-h^2) also hits e^-1 at h = 1
	m, err := NewGaussian(Config{})
	require.NoError(t, err)
	assert.InDelta(t, invE, m.Cor(1), 1e-15)
}

func TestMaternGaussianLimit(t *testing.T) {
	// beyond nu = 20 the Gaussian limit formula takes over exactly
	m, err := NewMatern(Config{OptArgs: map[string]float64{"nu": 30}})
	require.NoError(t, err)
	h := 0.5
	assert.InDelta(t, math.Exp(-h*h/4), m.Cor(h), 1e-3)
	assert.Equal(t, math.Exp(-h*h/4), m.Cor(h))

	// just below the switch the exact Bessel evaluation must already
	// sit close to the limit
	m2, err := NewMatern(Config{OptArgs: map[string]float64{"nu": 19.9}})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-h*h/4), m2.Cor(h), 5e-3)
}

func TestMaternHalfIntegerClosedForms(t *testing.T) {
	// nu = 1/2: cor(h) = exp(-sqrt(1/2) h)
	m, err := NewMatern(Config{OptArgs: map[string]float64{"nu": 0.5}})
	require.NoError(t, err)
	for _, h := range []float64{0.05, 0.3, 1, 2.5, 6} {
		a := math.Sqrt(0.5) * h
		assert.InEpsilon(t, math.Exp(-a), m.Cor(h), 1e-10, "nu=0.5 h=%v", h)
	}

	// nu = 3/2: cor(h) = (1 + a) exp(-a), a = sqrt(3/2) h
	m, err = NewMatern(Config{OptArgs: map[string]float64{"nu": 1.5}})
	require.NoError(t, err)
	for _, h := range []float64{0.05, 0.3, 1, 2.5, 6} {
		a := math.Sqrt(1.5) * h
		assert.InEpsilon(t, (1+a)*math.Exp(-a), m.Cor(h), 1e-10, "nu=1.5 h=%v", h)
	}
}

func TestMaternFarFieldIsClean(t *testing.T) {
	// far field underflows inside the Bessel evaluation; the result
	// must be a clean zero, never negative or NaN
	m, err := NewMatern(Config{OptArgs: map[string]float64{"nu": 10}})
	require.NoError(t, err)
	for _, h := range []float64{50, 200, 1e4, 1e8} {
		v := m.Cor(h)
		assert.False(t, math.IsNaN(v), "h=%v", h)
		assert.GreaterOrEqual(t, v, 0.0, "h=%v", h)
		assert.LessOrEqual(t, v, 1e-8, "h=%v", h)
	}
}

func TestStableSpecialCases(t *testing.T) {
	// alpha = 1 is the Exponential model, alpha = 2 the Gaussian
	m1, err := NewStable(Config{OptArgs: map[string]float64{"alpha": 1}})
	require.NoError(t, err)
	m2, err := NewStable(Config{OptArgs: map[string]float64{"alpha": 2}})
	require.NoError(t, err)
	for _, h := range []float64{0.1, 0.7, 1.5, 3} {
		assert.InEpsilon(t, math.Exp(-h), m1.Cor(h), 1e-14)
		assert.InEpsilon(t, math.Exp(-h*h), m2.Cor(h), 1e-14)
	}
}

func TestRationalApproachesGaussianForLargeAlpha(t *testing.T) {
	// (1 + h^2/(2 alpha))^(-alpha) -> exp(-h^2/2)
	m, err := NewRational(Config{OptArgs: map[string]float64{"alpha": 1e6}})
	require.NoError(t, err)
	for _, h := range []float64{0.2, 1, 2} {
		assert.InDelta(t, math.Exp(-h*h/2), m.Cor(h), 1e-4, "h=%v", h)
	}
}

func TestHyperSphericalMatchesLowDimensionalModels(t *testing.T) {
	counterparts := map[int]Family{1: Linear{}, 2: Circular{}, 3: Spherical{}}
	for dim, fam := range counterparts {
		hyp, err := NewHyperSpherical(Config{Dim: dim})
		require.NoError(t, err)
		ref, err := New(fam, Config{Dim: dim})
		require.NoError(t, err)
		for _, h := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1, 2} {
			assert.InDelta(t, ref.Cor(h), hyp.Cor(h), 1e-10,
				"dim %d (%s) h=%v", dim, fam.Name(), h)
		}
	}
}

func TestHyperSphericalDensityZeroFrequencyLimit(t *testing.T) {
	m, err := NewHyperSpherical(Config{Dim: 3, LenScale: 2})
	require.NoError(t, err)
	limit := m.SpectralDensity(0)
	assert.False(t, math.IsNaN(limit))
	assert.Greater(t, limit, 0.0)
	// the limit branch must join the generic expression continuously
	assert.InEpsilon(t, limit, m.SpectralDensity(1e-4), 1e-6)
}

func TestFamilyNames(t *testing.T) {
	want := []string{
		"Gaussian", "Exponential", "Matern", "Stable", "Rational",
		"Linear", "Circular", "Spherical", "HyperSpherical",
	}
	for i, fam := range allFamilies {
		assert.Equal(t, want[i], fam.Name())
	}
}
