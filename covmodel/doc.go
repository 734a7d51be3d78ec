// Package covmodel implements isotropic covariance models for
// geostatistical analysis.
//
// A model maps a non-negative lag to a correlation value and derives
// the variogram, covariance and spectral representations from it.
// Anisotropy and rotation are assumed to be applied upstream; a model
// only ever sees a scalar lag.
//
// Basic usage:
//
//	m, err := covmodel.NewGaussian(covmodel.Config{Dim: 2, LenScale: 10, Var: 2.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gamma := m.Variogram(5.0)
//	k := m.SpectralRadPPF(0.25) // radial frequency sampling
//
// All query methods are pure; a model is safe for concurrent reads but
// not for mutation concurrent with reads.
package covmodel
