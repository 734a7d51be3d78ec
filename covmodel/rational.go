package covmodel

import "math"

var (
	rational Rational
	_        Family         = rational
	_        OptArgFamily   = rational
	_        IntegralFamily = rational
)

// Rational quadratic covariance model,
// :math:`\rho(h) = (1 + h^2 / (2\alpha))^{-\alpha}`,
// a scale mixture of Gaussians with shape parameter alpha >= 0.5.
//
// No closed-form spectral representation; the generic numeric
// fallbacks apply.
type Rational struct{}

func NewRational(cfg Config) (*Model, error) { return New(Rational{}, cfg) }

func (Rational) Name() string { return "Rational" }

func (Rational) DefaultOptArgs() []OptArg {
	return []OptArg{
		{Name: "alpha", Default: 1.0, Bounds: Bounds{Lower: 0.5, Upper: math.Inf(1)}},
	}
}

func (Rational) Cor(s State, h float64) float64 {
	alpha := s.Opt("alpha")
	return math.Pow(1+0.5/alpha*h*h, -alpha)
}

func (Rational) IntegralScale(s State) (float64, bool) {
	alpha := s.Opt("alpha")
	// gamma ratio in log domain, Gamma overflows past alpha ~ 170
	lg1, _ := math.Lgamma(alpha - 0.5)
	lg2, _ := math.Lgamma(alpha)
	return s.LenRescaled * math.Sqrt(math.Pi*alpha/2) * math.Exp(lg1-lg2), true
}
