package covmodel

import (
	"math"

	"gonum.org/v1/gonum/mathext"

	"c4science.ch/source/geovar/special"
)

var (
	matern Matern
	_      Family         = matern
	_      OptArgFamily   = matern
	_      SpectralFamily = matern
	_      IntegralFamily = matern
)

// maternNuGaussLimit is the smoothness beyond which the exact Bessel
// formula is numerically unstable and the Gaussian limit takes over.
const maternNuGaussLimit = 20.0

// Matern covariance model,
//
//	:math:`\rho(h) = \frac{2^{1-\nu}}{\Gamma(\nu)}
//	        (\sqrt{\nu} h)^{\nu} K_{\nu}(\sqrt{\nu} h)`
//
// with the smoothness nu as shape parameter and K the modified Bessel
// function of the second kind. For nu above maternNuGaussLimit the
// Gaussian limit exp(-(h/2)^2) is used.
type Matern struct{}

func NewMatern(cfg Config) (*Model, error) { return New(Matern{}, cfg) }

func (Matern) Name() string { return "Matern" }

func (Matern) DefaultOptArgs() []OptArg {
	return []OptArg{
		{Name: "nu", Default: 1.0, Bounds: Bounds{Lower: 0.2, Upper: 30.0}},
	}
}

func (Matern) Cor(s State, h float64) float64 {
	nu := s.Opt("nu")
	if nu > maternNuGaussLimit {
		return math.Exp(-h * h / 4)
	}
	if h == 0 {
		// the prefactor formula is singular here, the limit is exact
		return 1
	}
	arg := math.Sqrt(nu) * h
	lg, _ := math.Lgamma(nu)
	// log-domain prefactor, the plain product over- and underflows
	res := math.Exp((1-nu)*math.Ln2-lg+nu*math.Log(arg)) *
		special.BesselK(nu, arg)
	// far-field cancellation for large nu
	if math.IsNaN(res) || math.IsInf(res, 0) || res < 0 {
		return 0
	}
	return res
}

func (Matern) SpectralDensity(s State, k float64) (float64, bool) {
	nu := s.Opt("nu")
	d := float64(s.Dim)
	kl := k * s.LenRescaled
	fac := math.Pow(s.LenRescaled/math.SqrtPi, d)
	if nu > maternNuGaussLimit {
		// Gaussian limit with the first-order 1/nu correction
		q := kl*kl - d/2
		return fac * math.Exp(-kl*kl) * (1 + (q*q-d/2)/nu), true
	}
	lgn, _ := math.Lgamma(nu)
	lgnd, _ := math.Lgamma(nu + d/2)
	return fac * math.Exp(-(nu+d/2)*math.Log1p(kl*kl/nu)+
		lgnd-lgn-d/2*math.Log(nu)), true
}

func (Matern) IntegralScale(s State) (float64, bool) {
	nu := s.Opt("nu")
	return s.LenRescaled * math.Pi / math.Sqrt(nu) / mathext.Beta(nu, 0.5), true
}
