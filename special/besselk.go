package special

import "math"

const (
	epsK    = 1e-15
	maxIter = 10000
)

// BesselK returns the modified Bessel function of the second kind
// :math:`K_\nu(x)` for real order nu and x > 0.
//
// For x <= 2 the Temme series is used, for x > 2 the Steed continued
// fraction, both at an order mu in [-1/2, 1/2], followed by the upward
// recurrence K_{v+1} = (2v/x) K_v + K_{v-1} which is stable for K.
// Returns NaN for x <= 0.
func BesselK(nu, x float64) float64 {
	if math.IsNaN(nu) || math.IsNaN(x) || x <= 0 {
		return math.NaN()
	}
	// K_{-nu} = K_{nu}
	nu = math.Abs(nu)

	nl := int(nu + 0.5)
	mu := nu - float64(nl)
	mu2 := mu * mu

	var kmu, kmu1 float64
	if x <= 2 {
		kmu, kmu1 = temmeK(mu, mu2, x)
	} else {
		kmu, kmu1 = steedK(mu, mu2, x)
	}

	for i := 0; i < nl; i++ {
		kmu, kmu1 = kmu1, 2*(mu+float64(i)+1)/x*kmu1+kmu
	}
	return kmu
}

// temmeK evaluates K_mu(x) and K_{mu+1}(x) for small x via Temme's series.
func temmeK(mu, mu2, x float64) (kmu, kmu1 float64) {
	x2 := x / 2
	pimu := math.Pi * mu
	fact := 1.0
	if pimu != 0 {
		fact = pimu / math.Sin(pimu)
	}
	d := -math.Log(x2)
	e := mu * d
	fact2 := 1.0
	if e != 0 {
		fact2 = math.Sinh(e) / e
	}
	gam1, gam2, gampl, gammi := gammaTemme(mu)

	ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
	sum := ff
	ee := math.Exp(e)
	p := 0.5 * ee / gampl
	q := 0.5 / (ee * gammi)
	c := 1.0
	d2 := x2 * x2
	sum1 := p
	for i := 1; i <= maxIter; i++ {
		fi := float64(i)
		ff = (fi*ff + p + q) / (fi*fi - mu2)
		c *= d2 / fi
		p /= fi - mu
		q /= fi + mu
		del := c * ff
		sum += del
		sum1 += c * (p - fi*ff)
		if math.Abs(del) < math.Abs(sum)*epsK {
			break
		}
	}
	return sum, sum1 * 2 / x
}

// steedK evaluates K_mu(x) and K_{mu+1}(x) for x > 2 via the CF2
// continued fraction.
func steedK(mu, mu2, x float64) (kmu, kmu1 float64) {
	b := 2 * (1 + x)
	d := 1 / b
	h := d
	delh := d
	q1 := 0.0
	q2 := 1.0
	a1 := 0.25 - mu2
	q := a1
	c := a1
	a := -a1
	s := 1 + q*delh
	for i := 2; i <= maxIter; i++ {
		a -= 2 * float64(i-1)
		c = -a * c / float64(i)
		qnew := (q1 - b*q2) / a
		q1, q2 = q2, qnew
		q += c * qnew
		b += 2
		d = 1 / (b + a*d)
		delh = (b*d - 1) * delh
		h += delh
		dels := q * delh
		s += dels
		if math.Abs(dels/s) < epsK {
			break
		}
	}
	h = a1 * h
	kmu = math.Sqrt(math.Pi/(2*x)) * math.Exp(-x) / s
	kmu1 = kmu * (mu + x + 0.5 - h) / x
	return kmu, kmu1
}

// gammaTemme returns the four gamma combinations used by the Temme series:
//
//	gam1  = [1/Gamma(1-mu) - 1/Gamma(1+mu)] / (2 mu)
//	gam2  = [1/Gamma(1-mu) + 1/Gamma(1+mu)] / 2
//	gampl = 1/Gamma(1+mu)
//	gammi = 1/Gamma(1-mu)
//
// gam1 has a removable singularity at mu = 0 with limit -gamma (Euler).
func gammaTemme(mu float64) (gam1, gam2, gampl, gammi float64) {
	const euler = 0.57721566490153286060651209008240243
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	if math.Abs(mu) < 1e-6 {
		// cancellation kills the direct quotient near mu = 0
		gam1 = -euler
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 = (gammi + gampl) / 2
	return
}
