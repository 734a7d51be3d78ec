package covmodel

import "math"

// The bounded-support models. Each is the relative intersection volume
// of two bodies whose centers are a lag apart: lines in 1D, discs in
// 2D, spheres in 3D. The correlation is exactly zero from the support
// boundary h = 1 on, which is what distinguishes bounded models from
// the asymptotically decaying ones.

var (
	linear    Linear
	spherical Spherical
	circular  Circular
	_         Family = linear
	_         Family = circular
	_         Family = spherical
)

// Linear covariance model, :math:`\rho(h) = \max(1 - h, 0)`.
//
// Only the correlation is in closed form; everything else goes through
// the generic numeric fallbacks, which the finite support keeps cheap.
type Linear struct{}

func NewLinear(cfg Config) (*Model, error) { return New(Linear{}, cfg) }

func (Linear) Name() string { return "Linear" }

func (Linear) Cor(_ State, h float64) float64 {
	return math.Max(1-h, 0)
}

// Circular covariance model,
// :math:`\rho(h) = \frac{2}{\pi}(\arccos(h) - h\sqrt{1 - h^2})` for
// h < 1, zero beyond.
type Circular struct{}

func NewCircular(cfg Config) (*Model, error) { return New(Circular{}, cfg) }

func (Circular) Name() string { return "Circular" }

func (Circular) Cor(_ State, h float64) float64 {
	// arccos is unstable around h = 1; the tail is exactly zero
	if h >= 1 {
		return 0
	}
	return 2 * (math.Acos(h) - h*math.Sqrt(1-h*h)) / math.Pi
}

// Spherical covariance model,
// :math:`\rho(h) = 1 - \frac{3}{2} h + \frac{1}{2} h^3` for h <= 1,
// zero beyond.
type Spherical struct{}

func NewSpherical(cfg Config) (*Model, error) { return New(Spherical{}, cfg) }

func (Spherical) Name() string { return "Spherical" }

func (Spherical) Cor(_ State, h float64) float64 {
	h = math.Min(h, 1)
	return 1 - 1.5*h + 0.5*h*h*h
}
