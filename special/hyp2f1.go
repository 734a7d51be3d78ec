package special

import "math"

// Hyp2F1 returns the Gauss hypergeometric function
// :math:`{}_2F_1(a, b; c; x)` for x in [0, 1].
//
// The argument range covers the correlation-function use where
// x = h^2 with h a rescaled lag inside the unit support. Cases:
//
//   - b a non-positive integer: the series terminates, summed exactly;
//   - x = 1: Gauss summation, valid for c-a-b > 0;
//   - x > 0.75: linear transformation to the 1-x series;
//   - otherwise: direct Gauss series.
//
// Returns NaN outside [0, 1] or when c is a non-positive integer.
func Hyp2F1(a, b, c, x float64) float64 {
	if x < 0 || x > 1 || isNonPosInt(c) {
		return math.NaN()
	}
	if isNonPosInt(b) {
		return hyp2f1Poly(a, int(math.Round(-b)), c, x)
	}
	if isNonPosInt(a) {
		return hyp2f1Poly(b, int(math.Round(-a)), c, x)
	}
	if x == 1 {
		return gaussSum(a, b, c)
	}
	if x > 0.75 {
		return hyp2f1Trans(a, b, c, x)
	}
	return hyp2f1Series(a, b, c, x)
}

// hyp2f1Series sums the defining series, |x| < 1.
func hyp2f1Series(a, b, c, x float64) float64 {
	term := 1.0
	sum := 1.0
	for k := 0; k < maxIter; k++ {
		fk := float64(k)
		term *= (a + fk) * (b + fk) / (c + fk) * x / (fk + 1)
		sum += term
		if math.Abs(term) < math.Abs(sum)*epsK {
			break
		}
	}
	return sum
}

// hyp2f1Poly sums the terminating series with b = -n.
func hyp2f1Poly(a float64, n int, c, x float64) float64 {
	term := 1.0
	sum := 1.0
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= (a + fk) * (fk - float64(n)) / (c + fk) * x / (fk + 1)
		sum += term
	}
	return sum
}

// gaussSum is 2F1(a,b;c;1) = Gamma(c)Gamma(c-a-b) / (Gamma(c-a)Gamma(c-b)).
func gaussSum(a, b, c float64) float64 {
	if c-a-b <= 0 {
		return math.NaN()
	}
	return math.Gamma(c) * math.Gamma(c-a-b) /
		(math.Gamma(c-a) * math.Gamma(c-b))
}

// hyp2f1Trans applies the x -> 1-x linear transformation
//
//	2F1(a,b;c;x) = A * 2F1(a,b;a+b-c+1;1-x)
//	             + B * (1-x)^(c-a-b) * 2F1(c-a,c-b;c-a-b+1;1-x)
//
// valid when c-a-b is not an integer (integer cases terminate earlier
// in Hyp2F1 for the parameter families used here).
func hyp2f1Trans(a, b, c, x float64) float64 {
	s := c - a - b
	if math.Round(s) == s {
		// degenerate transformation; the direct series still converges
		// for x < 1, just more slowly.
		return hyp2f1Series(a, b, c, x)
	}
	y := 1 - x
	fa := math.Gamma(c) * math.Gamma(s) / (math.Gamma(c-a) * math.Gamma(c-b))
	fb := math.Gamma(c) * math.Gamma(-s) / (math.Gamma(a) * math.Gamma(b))
	return fa*hyp2f1Series(a, b, a+b-c+1, y) +
		fb*math.Pow(y, s)*hyp2f1Series(c-a, c-b, c-a-b+1, y)
}

func isNonPosInt(v float64) bool {
	return v <= 0 && math.Round(v) == v
}
