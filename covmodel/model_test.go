package covmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

var allFamilies = []Family{
	Gaussian{}, Exponential{}, Matern{}, Stable{}, Rational{},
	Linear{}, Circular{}, Spherical{}, HyperSpherical{},
}

func TestConfigDefaults(t *testing.T) {
	m, err := NewGaussian(Config{})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, 1.0, m.LenScale())
	assert.Equal(t, 1.0, m.Variance())
	assert.Equal(t, 0.0, m.Nugget())
	assert.Equal(t, math.SqrtPi/2, m.RescaleFactor())
	assert.Equal(t, math.SqrtPi/2, m.LenRescaled())
	assert.Equal(t, 1.0, m.Sill())
}

func TestConfigDefaultRescaleIsOne(t *testing.T) {
	m, err := NewExponential(Config{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.RescaleFactor())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"negative dim", Config{Dim: -1}, ErrDim},
		{"negative len scale", Config{LenScale: -1}, ErrLenScale},
		{"negative variance", Config{Var: -2}, ErrVariance},
		{"negative nugget", Config{Nugget: -0.1}, ErrNugget},
		{"negative rescale", Config{Rescale: -1}, ErrRescale},
		{"unknown shape parameter", Config{OptArgs: map[string]float64{"nu": 1}}, ErrUnknownArg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGaussian(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBoundsEndpoints(t *testing.T) {
	// Stable alpha in (0, 2]: lower open, upper closed
	_, err := NewStable(Config{OptArgs: map[string]float64{"alpha": 0}})
	assert.ErrorIs(t, err, ErrArgBounds)

	_, err = NewStable(Config{OptArgs: map[string]float64{"alpha": 2}})
	assert.NoError(t, err)

	_, err = NewStable(Config{OptArgs: map[string]float64{"alpha": 2.0001}})
	assert.ErrorIs(t, err, ErrArgBounds)

	// Matern nu in [0.2, 30]: closed both ends
	for _, nu := range []float64{0.2, 30} {
		_, err := NewMatern(Config{OptArgs: map[string]float64{"nu": nu}})
		assert.NoError(t, err, "nu=%v", nu)
	}
	for _, nu := range []float64{0.19, 30.1} {
		_, err := NewMatern(Config{OptArgs: map[string]float64{"nu": nu}})
		assert.ErrorIs(t, err, ErrArgBounds, "nu=%v", nu)
	}
}

func TestBoundsString(t *testing.T) {
	assert.Equal(t, "(0, 2]", Bounds{Lower: 0, Upper: 2, LowerOpen: true}.String())
	assert.Equal(t, "[0.2, 30]", Bounds{Lower: 0.2, Upper: 30}.String())
}

func TestSchemaDefaultsApplied(t *testing.T) {
	m, err := NewMatern(Config{})
	require.NoError(t, err)
	nu, ok := m.OptArg("nu")
	require.True(t, ok)
	assert.Equal(t, 1.0, nu)
	assert.Equal(t, map[string]float64{"nu": 1.0}, m.OptArgs())

	schema := m.Schema()
	require.Len(t, schema, 1)
	assert.Equal(t, "nu", schema[0].Name)
}

func TestSetOptArgRevertsOnError(t *testing.T) {
	m, err := NewMatern(Config{})
	require.NoError(t, err)

	require.NoError(t, m.SetOptArg("nu", 5))
	nu, _ := m.OptArg("nu")
	assert.Equal(t, 5.0, nu)

	err = m.SetOptArg("nu", 50)
	assert.ErrorIs(t, err, ErrArgBounds)
	nu, _ = m.OptArg("nu")
	assert.Equal(t, 5.0, nu, "rejected value must not stick")

	err = m.SetOptArg("alpha", 1)
	assert.ErrorIs(t, err, ErrUnknownArg)
}

func TestMutatorsRederiveLenRescaled(t *testing.T) {
	m, err := NewGaussian(Config{})
	require.NoError(t, err)

	require.NoError(t, m.SetLenScale(2))
	assert.Equal(t, 2*math.SqrtPi/2, m.LenRescaled())

	require.NoError(t, m.SetRescale(1))
	assert.Equal(t, 2.0, m.LenRescaled())

	assert.ErrorIs(t, m.SetLenScale(-1), ErrLenScale)
	assert.ErrorIs(t, m.SetRescale(0), ErrRescale)
	assert.ErrorIs(t, m.SetVariance(-1), ErrVariance)
	assert.ErrorIs(t, m.SetNugget(-1), ErrNugget)

	require.NoError(t, m.SetVariance(0))
	assert.Equal(t, 0.0, m.Variance())
}

func TestStableInstabilityWarning(t *testing.T) {
	// alpha = 0.2 is inside the bounds but numerically fragile: the
	// model must construct and carry a warning, not fail
	m, err := NewStable(Config{OptArgs: map[string]float64{"alpha": 0.2}})
	require.NoError(t, err)

	warns := m.Warnings()
	require.Len(t, warns, 1)
	assert.Equal(t, SeverityWarning, warns[0].Severity)
	assert.Equal(t, "alpha", warns[0].Arg)

	issues := m.Check()
	require.Len(t, issues, 1)
	assert.Equal(t, SeverityWarning, issues[0].Severity)

	require.NoError(t, m.SetOptArg("alpha", 1.5))
	assert.Empty(t, m.Warnings())
}

func TestCorZeroIsOne(t *testing.T) {
	for _, fam := range allFamilies {
		for dim := 1; dim <= 4; dim++ {
			m, err := New(fam, Config{Dim: dim})
			require.NoError(t, err)
			assert.Equal(t, 1.0, m.Cor(0), "%s dim %d", fam.Name(), dim)
		}
	}
}

func TestVariogramCovarianceDecomposition(t *testing.T) {
	for _, fam := range allFamilies {
		m, err := New(fam, Config{Dim: 2, LenScale: 3, Var: 2.5, Nugget: 0.3})
		require.NoError(t, err)

		assert.Equal(t, 0.3, m.Variogram(0), "%s", fam.Name())
		assert.Equal(t, 2.5, m.Covariance(0), "%s", fam.Name())
		for _, r := range []float64{0.1, 1, 2.5, 7, 40} {
			// variogram and covariance are complementary up to the sill
			assert.InDelta(t, m.Sill(), m.Variogram(r)+m.Covariance(r), 1e-12,
				"%s r=%v", fam.Name(), r)
			c := m.Correlation(r)
			assert.InDelta(t, 2.5*(1-c)+0.3, m.Variogram(r), 1e-12)
		}
	}
}

func TestBoundedSupport(t *testing.T) {
	bounded := []Family{Linear{}, Circular{}, Spherical{}, HyperSpherical{}}
	for _, fam := range bounded {
		for dim := 1; dim <= 3; dim++ {
			m, err := New(fam, Config{Dim: dim})
			require.NoError(t, err)
			for _, h := range []float64{1, 1.0001, 1.5, 2, 10} {
				assert.Equal(t, 0.0, m.Cor(h), "%s dim %d h=%v", fam.Name(), dim, h)
			}
		}
	}
}

func TestSphericalClampedBeyondSupport(t *testing.T) {
	m, err := NewSpherical(Config{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.Cor(2))
}

func TestCorMonotoneNonIncreasing(t *testing.T) {
	hs := floats.Span(make([]float64, 61), 0, 3)
	for _, fam := range allFamilies {
		for dim := 1; dim <= 3; dim++ {
			m, err := New(fam, Config{Dim: dim})
			require.NoError(t, err)
			prev := math.Inf(1)
			for _, h := range hs {
				v := m.Cor(h)
				require.LessOrEqual(t, v, prev+1e-12, "%s dim %d h=%v", fam.Name(), dim, h)
				prev = v
			}
		}
	}
}

func TestCorUsesAbsoluteLag(t *testing.T) {
	m, err := NewExponential(Config{})
	require.NoError(t, err)
	assert.Equal(t, m.Cor(1.5), m.Cor(-1.5))
}

func TestBatchMethods(t *testing.T) {
	m, err := NewGaussian(Config{Dim: 2, Var: 2})
	require.NoError(t, err)

	rs := []float64{0, 0.5, 1, 2}
	got := m.Variograms(nil, rs)
	require.Len(t, got, len(rs))
	for i, r := range rs {
		assert.Equal(t, m.Variogram(r), got[i])
	}

	dst := make([]float64, len(rs))
	out := m.Covariances(dst, rs)
	assert.Equal(t, &dst[0], &out[0], "dst must be reused")

	cors := m.Cors(nil, rs)
	for i, r := range rs {
		assert.Equal(t, m.Cor(r), cors[i])
	}

	assert.Panics(t, func() { m.Variograms(make([]float64, 3), rs) })
}

func TestConcurrentReads(t *testing.T) {
	m, err := NewMatern(Config{Dim: 3})
	require.NoError(t, err)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for _, r := range []float64{0.1, 0.5, 1, 2} {
				_ = m.Variogram(r)
				_ = m.SpectralDensity(r)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
