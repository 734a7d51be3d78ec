package covmodel

import (
	"math"

	"c4science.ch/source/geovar/special"
)

var (
	hyperSpherical HyperSpherical
	_              Family         = hyperSpherical
	_              SpectralFamily = hyperSpherical
)

// HyperSpherical covariance model: the relative intersection volume of
// two d-dimensional hyperspheres,
//
//	:math:`\rho(h) = 1 - h \frac{{}_2F_1(1/2, -\nu; 3/2; h^2)}
//	                           {{}_2F_1(1/2, -\nu; 3/2; 1)}`
//
// for h < 1 and zero beyond, with :math:`\nu = (d-1)/2` derived from
// the dimension. It reduces to Linear in 1D, Circular in 2D and
// Spherical in 3D.
type HyperSpherical struct{}

func NewHyperSpherical(cfg Config) (*Model, error) { return New(HyperSpherical{}, cfg) }

func (HyperSpherical) Name() string { return "HyperSpherical" }

func (HyperSpherical) Cor(s State, h float64) float64 {
	if h >= 1 {
		return 0
	}
	nu := (float64(s.Dim) - 1) / 2
	fac := 1 / special.Hyp2F1(0.5, -nu, 1.5, 1)
	return 1 - h*fac*special.Hyp2F1(0.5, -nu, 1.5, h*h)
}

// SpectralDensity is closed form for any dimension via a Bessel
// function of the first kind. The k^dim division is undefined at
// k = 0; that removable singularity gets its own limit expression.
func (HyperSpherical) SpectralDensity(s State, k float64) (float64, bool) {
	d := float64(s.Dim)
	l := s.LenRescaled
	if k < 1e-8 {
		return math.Pow(l/4, d) / math.Gamma(d/2+1) /
			math.Pow(math.SqrtPi, d), true
	}
	j := special.BesselJ(d/2, k*l/2)
	return math.Gamma(d/2+1) / math.Pow(math.SqrtPi, d) * j * j /
		math.Pow(k, d), true
}
