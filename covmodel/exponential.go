package covmodel

import "math"

var (
	exponential Exponential
	_           Family         = exponential
	_           SpectralFamily = exponential
	_           RadCDFFamily   = exponential
	_           RadPPFFamily   = exponential
	_           IntegralFamily = exponential
)

// Exponential covariance model, :math:`\rho(h) = \exp(-h)`.
//
// The length scale equals the integral scale at the default rescale
// factor of 1.
type Exponential struct{}

func NewExponential(cfg Config) (*Model, error) { return New(Exponential{}, cfg) }

func (Exponential) Name() string { return "Exponential" }

func (Exponential) Cor(_ State, h float64) float64 {
	return math.Exp(-h)
}

func (Exponential) SpectralDensity(s State, k float64) (float64, bool) {
	d := float64(s.Dim)
	kl := k * s.LenRescaled
	return math.Pow(s.LenRescaled, d) * math.Gamma((d+1)/2) /
		math.Pow(math.Pi*(1+kl*kl), (d+1)/2), true
}

func (Exponential) SpectralRadCDF(s State, r float64) (float64, bool) {
	rl := r * s.LenRescaled
	switch s.Dim {
	case 1:
		return math.Atan(rl) * 2 / math.Pi, true
	case 2:
		return 1 - 1/math.Sqrt(1+rl*rl), true
	case 3:
		return (math.Atan(rl) - rl/(1+rl*rl)) * 2 / math.Pi, true
	}
	return 0, false
}

// SpectralRadPPF has closed forms in 1D and 2D only. The 2D inverse
// diverges where the survival 1-u vanishes; the guard returns +Inf
// instead of dividing by zero.
func (Exponential) SpectralRadPPF(s State, u float64) (float64, bool) {
	switch s.Dim {
	case 1:
		return math.Tan(math.Pi/2*u) / s.LenRescaled, true
	case 2:
		su := 1 - u
		if su == 0 {
			return math.Inf(1), true
		}
		return math.Sqrt(1/(su*su)-1) / s.LenRescaled, true
	}
	return 0, false
}

func (Exponential) IntegralScale(s State) (float64, bool) {
	return s.LenRescaled, true
}
