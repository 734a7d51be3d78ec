package covmodel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"c4science.ch/source/geovar/special"
)

// Generic numeric fallbacks for families without closed forms. The
// spectral density is the isotropic d-dimensional Fourier transform of
// the correlation,
//
//	S(k) = (2 pi)^(-d/2) k^(1-d/2) Int_0^inf cor(r/l) r^(d/2) J_{d/2-1}(k r) dr
//
// evaluated with Gauss-Legendre quadrature on a finite window that
// covers the correlation support. The radial cdf integrates the
// (dispatched) density and the ppf inverts the cdf by bisection.

const (
	corCutoff  = 1e-10
	maxSupport = float64(1 << 40)
	baseNodes  = 400
	maxNodes   = 20000
	cdfNodes   = 256
)

// supportRadius returns a rescaled lag beyond which the correlation is
// below corCutoff, found by doubling.
func (m *Model) supportRadius() float64 {
	s := m.state()
	h := 1.0
	for m.fam.Cor(s, h) > corCutoff && h < maxSupport {
		h *= 2
	}
	return h
}

func (m *Model) densityFallback(k float64) float64 {
	s := m.state()
	d := float64(m.dim)
	l := m.lenRescaled
	rmax := l * m.supportRadius()

	if k == 0 {
		// J_{d/2-1}(kr) (kr)^(1-d/2) has a finite limit; the transform
		// reduces to the plain radial moment of the correlation.
		f := func(r float64) float64 {
			return m.fam.Cor(s, r/l) * math.Pow(r, d-1)
		}
		v := quad.Fixed(f, 0, rmax, baseNodes, nil, 0)
		return math.Pow(2*math.Pi, -d) * sphereSurface(m.dim) * v
	}

	// node count tracks the Bessel oscillation count over the window
	n := baseNodes + int(40*k*rmax/(2*math.Pi))
	if n > maxNodes {
		n = maxNodes
	}
	ord := d/2 - 1
	f := func(r float64) float64 {
		return m.fam.Cor(s, r/l) * math.Pow(r, d/2) * special.BesselJ(ord, k*r)
	}
	v := quad.Fixed(f, 0, rmax, n, nil, 0)
	return math.Pow(2*math.Pi, -d/2) * math.Pow(k, 1-d/2) * v
}

func (m *Model) radCDFFallback(r float64) float64 {
	if r <= 0 {
		return 0
	}
	d := float64(m.dim)
	surf := sphereSurface(m.dim)
	f := func(k float64) float64 {
		return surf * math.Pow(k, d-1) * m.SpectralDensity(k)
	}
	return quad.Fixed(f, 0, r, cdfNodes, nil, 0)
}

func (m *Model) radPPFFallback(u float64) float64 {
	if math.IsNaN(u) || u < 0 || u > 1 {
		return math.NaN()
	}
	if u == 0 {
		return 0
	}
	if u == 1 {
		return math.Inf(1)
	}
	lo, hi := 0.0, 1/m.lenRescaled
	for m.SpectralRadCDF(hi) < u {
		lo = hi
		hi *= 2
		if hi > maxSupport/m.lenRescaled {
			return hi
		}
	}
	for i := 0; i < 200 && hi-lo > 1e-12*hi; i++ {
		mid := 0.5 * (lo + hi)
		if m.SpectralRadCDF(mid) < u {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi)
}

func (m *Model) integralScaleFallback() float64 {
	s := m.state()
	// split at the support boundary h = 1 of the bounded models so no
	// quadrature window straddles their kink, then map the tail
	// through h = 1 + t/(1-t)
	head := quad.Fixed(func(h float64) float64 {
		return m.fam.Cor(s, h)
	}, 0, 1, baseNodes, nil, 0)
	tail := quad.Fixed(func(t float64) float64 {
		omt := 1 - t
		return m.fam.Cor(s, 1+t/omt) / (omt * omt)
	}, 0, 1, baseNodes, nil, 0)
	return m.lenRescaled * (head + tail)
}

// PercentileScale is the distance at which the normalized variogram
// 1 - cor reaches the given percentile, found by bisection on the
// correlation. per must lie in (0, 1).
func (m *Model) PercentileScale(per float64) (float64, error) {
	if !(per > 0 && per < 1) {
		return 0, fmt.Errorf("%w: got %v", ErrPercentile, per)
	}
	s := m.state()
	lo, hi := 0.0, 1.0
	for 1-m.fam.Cor(s, hi) < per {
		lo = hi
		hi *= 2
		if hi > maxSupport {
			return 0, fmt.Errorf("%w: %v not reached by the variogram", ErrPercentile, per)
		}
	}
	for i := 0; i < 200 && hi-lo > 1e-14*hi; i++ {
		mid := 0.5 * (lo + hi)
		if 1-m.fam.Cor(s, mid) < per {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi) * m.lenRescaled, nil
}

// sphereSurface is the surface area of the unit sphere in dim
// dimensions, 2 pi^(d/2) / Gamma(d/2).
func sphereSurface(dim int) float64 {
	d := float64(dim)
	return 2 * math.Pow(math.Pi, d/2) / math.Gamma(d/2)
}
