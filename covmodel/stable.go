package covmodel

import "math"

var (
	stable Stable
	_      Family         = stable
	_      OptArgFamily   = stable
	_      OptArgChecker  = stable
	_      IntegralFamily = stable
)

// Stable covariance model, :math:`\rho(h) = \exp(-h^{\alpha})` with
// the stretching alpha in (0, 2] as shape parameter. alpha = 1 is the
// Exponential model, alpha = 2 the Gaussian (up to rescaling).
//
// There is no closed-form spectral representation; the generic
// numeric fallbacks apply.
type Stable struct{}

func NewStable(cfg Config) (*Model, error) { return New(Stable{}, cfg) }

func (Stable) Name() string { return "Stable" }

func (Stable) DefaultOptArgs() []OptArg {
	return []OptArg{
		{Name: "alpha", Default: 1.5, Bounds: Bounds{Lower: 0, Upper: 2, LowerOpen: true}},
	}
}

// CheckOptArgs warns for small alpha, where the model tends to a pure
// nugget and evaluation becomes numerically unstable.
func (Stable) CheckOptArgs(s State) []Issue {
	if s.Opt("alpha") < 0.3 {
		return []Issue{{
			Severity: SeverityWarning,
			Arg:      "alpha",
			Message:  "alpha < 0.3 approaches a nugget model, count with unstable results",
		}}
	}
	return nil
}

func (Stable) Cor(s State, h float64) float64 {
	return math.Exp(-math.Pow(h, s.Opt("alpha")))
}

func (Stable) IntegralScale(s State) (float64, bool) {
	return s.LenRescaled * math.Gamma(1+1/s.Opt("alpha")), true
}
