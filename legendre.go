package primecount

// PiLegendre computes pi(x) = phi(x, a) + a - 1 with a = pi(sqrt(x)).
// All the heavy lifting happens inside phi.
func PiLegendre(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	a := int64(len(generatePrimes(isqrt(x)))) - 1
	return Phi(x, a, threads) + a - 1
}

// PiMeissel computes pi(x) = phi(x, a) + a - 1 - P2(x, y) with
// y = x^(1/3) and a = pi(y).
func PiMeissel(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}
	y := icbrt(x)
	a := int64(len(generatePrimes(y))) - 1
	return Phi(x, a, threads) + a - 1 - P2(x, y, threads)
}

// PiLehmer computes pi(x) with Lehmer's extension of Meissel's
// formula. It is kept for the algorithm selector and the consistency
// tests; the asymptotically better variants outperform it everywhere.
func PiLehmer(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}

	x14 := iroot(4, x)
	x13 := icbrt(x)
	sqrtx := isqrt(x)

	// The x/p_i quotients reach x^(3/4); table them directly while
	// that fits, otherwise fall back to Meissel per quotient.
	x34 := x / x14
	tableLimit := min(x34, int64(1)<<31)
	pt := NewPiTable(max(tableLimit, sqrtx))
	a := pt.Pi(x14)
	b := pt.Pi(sqrtx)
	cc := pt.Pi(x13)
	primes := generatePrimes(sqrtx)

	sum := Phi(x, a, threads) + (b+a-2)*(b-a+1)/2

	// Quotients x/p_i for p_i in (x^(1/4), sqrt(x)] reach x^(3/4);
	// the ones beyond the table fall back to Meissel.
	for i := a + 1; i <= b; i++ {
		xi := x / primes[i]
		sum -= piUpTo(xi, pt, threads)
		if i <= cc {
			bi := pt.Pi(isqrt(xi))
			for j := i; j <= bi; j++ {
				sum -= pt.Pi(x/(primes[i]*primes[j])) - (j - 1)
			}
		}
	}
	return sum
}

// piUpTo answers pi(n) through the table when possible and through
// PiMeissel otherwise.
func piUpTo(n int64, pt *PiTable, threads int) int64 {
	if n <= pt.Limit() {
		return pt.Pi(n)
	}
	return PiMeissel(n, threads)
}
