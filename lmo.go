package primecount

// PiLMO computes pi(x) with the Lagarias-Miller-Odlyzko algorithm,
// y = x^(1/3). The special leaves are evaluated directly through a
// shared phi cache instead of a sieve, which keeps the code short at
// the cost of a larger constant factor; the Deleglise-Rivat variants
// are the fast path.
func PiLMO(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}

	y := icbrt(x)
	z := x / y
	p2 := P2(x, y, threads)

	mu := generateMoebius(y)
	lpf := generateLeastPrimeFactors(y)
	primes := generatePrimes(y)

	piY := int64(len(primes)) - 1
	c := min(piY, int64(phiTinyMaxA))
	s1 := S1(x, y, c, primes[c], lpf, mu)

	// Special leaves n = m * p_{b+1} with y/p_{b+1} < m <= y and
	// lpf[m] > p_{b+1}. All quotients x/n are below z, so one pi
	// table up to sqrt(z) serves every phi evaluation.
	pt := NewPiTable(isqrt(z))
	cachePrimes := generateNPrimes(piY + 1)
	cache := newPhiCache(z, piY, cachePrimes, pt)

	s2Sum := int64(0)
	for b := c; b < piY; b++ {
		prime := primes[b+1]
		for m := y/prime + 1; m <= y; m++ {
			if mu[m] != 0 && int64(lpf[m]) > prime {
				s2Sum -= int64(mu[m]) * cache.phi(1, x/(m*prime), b)
			}
		}
	}

	return s1 + s2Sum + piY - 1 - p2
}
