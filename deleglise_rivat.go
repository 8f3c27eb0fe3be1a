package primecount

import (
	"math"
	"sync/atomic"
)

// alphaOverride, when positive, replaces the computed tuning factor.
var alphaOverride atomic.Value

// SetAlpha overrides the alpha tuning factor; 0 restores the default.
// alpha controls the y/z split: y = alpha * x^(1/3), z = x / y.
func SetAlpha(alpha float64) {
	alphaOverride.Store(alpha)
}

// computeAlpha returns the tuning factor, which should grow like
// (log x)^3. divisor is 1500 on the 64-bit path and 1000 on the wide
// path, the empirical optima.
func computeAlpha(x int64, divisor float64) float64 {
	if v, ok := alphaOverride.Load().(float64); ok && v > 0 {
		return inBetweenF(1, v, float64(iroot(6, x)))
	}
	d := float64(x)
	alpha := math.Log(d) * math.Log(d) * math.Log(d) / divisor
	return inBetweenF(1, alpha, float64(iroot(6, x)))
}

// drParams derives y and z from x and alpha.
func drParams(x int64, divisor float64) (y, z int64) {
	alpha := computeAlpha(x, divisor)
	y = int64(alpha * float64(icbrt(x)))
	y = max(y, 1)
	z = x / y
	return y, z
}

// PiDelegliseRivat computes pi(x) with the Deleglise-Rivat algorithm,
// distributing the easy special leaves over threads goroutines.
// Run time O(x^(2/3) / (log x)^2), space O(x^(1/3) * (log x)^3).
func PiDelegliseRivat(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}

	y, z := drParams(x, 1500)
	p2 := P2(x, y, threads)

	mu := generateMoebius(y)
	lpf := generateLeastPrimeFactors(y)
	primes := generatePrimes(y)

	piY := int64(len(primes)) - 1
	c := min(piY, int64(phiTinyMaxA))
	s1 := S1(x, y, c, primes[c], lpf, mu)
	phi := s1 + s2(x, y, z, c, primes, lpf, mu, threads)

	return phi + piY - 1 - p2
}

// PiDelegliseRivat1 is the single-threaded reference variant; it keeps
// the trivial, easy and sieved leaves in separate passes.
func PiDelegliseRivat1(x int64) int64 {
	if x < 2 {
		return 0
	}

	y, z := drParams(x, 1500)
	p2 := P2(x, y, 1)

	mu := generateMoebius(y)
	lpf := generateLeastPrimeFactors(y)
	primes := generatePrimes(y)

	piY := int64(len(primes)) - 1
	c := min(piY, int64(phiTinyMaxA))
	s1 := S1(x, y, c, primes[c], lpf, mu)
	phi := s1 + s2(x, y, z, c, primes, lpf, mu, 1)

	return phi + piY - 1 - p2
}

// PiDelegliseRivatWide is the variant for inputs near the ceiling:
// products p_b * high no longer provably fit into 64 bits, so the
// segment bound arithmetic is promoted to 128 bits. It processes every
// leaf class of one b inside the segment walk instead of separate
// passes.
func PiDelegliseRivatWide(x int64, threads int) int64 {
	if x < 2 {
		return 0
	}

	y, z := drParams(x, 1000)
	p2 := P2(x, y, threads)

	mu := generateMoebius(y)
	lpf := generateLeastPrimeFactors(y)
	primes := generatePrimes(y)

	piY := int64(len(primes)) - 1
	c := min(piY, int64(phiTinyMaxA))
	s1 := S1(x, y, c, primes[c], lpf, mu)
	phi := s1 + s2Merged(x, y, z, c, primes, lpf, mu)

	return phi + piY - 1 - p2
}

// s2Merged computes the special leaves in a single segment walk,
// classifying the leaves of every b on the fly. Quotients whose
// divisor product may exceed 64 bits go through fastDiv128.
func s2Merged(x, y, z, c int64, primes []int64, lpf []int32, mu []int8) int64 {
	pi := generatePi(y)
	piY := int64(pi[y])
	piSqrty := int64(pi[isqrt(y)])
	piSqrtz := int64(pi[min(isqrt(z), y)])
	limit := z + 1
	segmentSize := nextPow2(isqrt(limit))
	sum := int64(0)

	sieve := NewBitSieve(segmentSize)
	counters := NewCounters(segmentSize)
	next := append([]int64(nil), primes[:min(piSqrtz+1, int64(len(primes)))]...)
	phi := make([]int64, len(next))

segments:
	for low := int64(1); low < limit; low += segmentSize {
		high := min(low+segmentSize, limit)
		b := c + 1

		if c < piSqrtz {
			sieve.Fill(low, high)
			for i := int64(2); i <= c; i++ {
				k := next[i]
				for prime := primes[i]; k < high; k += prime * 2 {
					sieve.Unset(k - low)
				}
				next[i] = k
			}
			counters.Init(sieve, segmentSize)
		}

		// For c < b <= pi(sqrt(y)): leaves n = p_b * m with
		// mu[m] != 0 and p_b < lpf[m].
		for ; b <= piSqrty; b++ {
			prime := primes[b]
			minM := max(min(fastDiv128(x, prime, high), y), y/prime)
			maxM := min(fastDiv128(x, prime, low), y)

			if prime >= maxM {
				continue segments
			}

			for m := maxM; m > minM; m-- {
				if mu[m] != 0 && prime < int64(lpf[m]) {
					xn := x / (prime * m)
					phiXn := phi[b] + counters.Query(xn-low)
					sum -= int64(mu[m]) * phiXn
				}
			}

			phi[b] += counters.Query(high - 1 - low)
			crossOff(prime, low, high, &next[b], sieve, counters)
		}

		// For pi(sqrt(y)) < b < pi(y): leaves n = p_b * p_l,
		// classified trivial, clustered, sparse, hard.
		for ; b < piY; b++ {
			prime := primes[b]
			l := int64(pi[min(fastDiv128(x, prime, low), y)])

			if prime >= primes[l] {
				continue segments
			}

			minHard := max(min(fastDiv128(x, prime, high), y), max(y/prime, prime))
			minTrivial := max(minHard, min(x/(prime*prime), y))
			minClustered := max(minHard, min(isqrt(x/prime), y))
			minSparse := max(minHard, min(z/prime, y))

			// Trivial leaves: phi(x/n, b-1) = 1.
			if primes[l] > minTrivial {
				lMin := int64(pi[minTrivial])
				sum += l - lMin
				l = lMin
			}

			// Clustered easy leaves: runs of identical
			// phi(x/n, b-1) = pi(x/n) - b + 2, added per run.
			for primes[l] > minClustered {
				xn := x / (prime * primes[l])
				phiXn := int64(pi[xn]) - b + 2
				jump := b + phiXn - 1
				if jump > piY {
					l2 := int64(pi[minClustered])
					sum += phiXn * (l - l2)
					l = l2
					continue
				}
				xm := max(fastDiv128(x, prime, primes[jump]), minClustered)
				l2 := int64(pi[xm])
				sum += phiXn * (l - l2)
				l = l2
			}

			// Sparse easy leaves.
			for ; primes[l] > minSparse; l-- {
				xn := x / (prime * primes[l])
				sum += int64(pi[xn]) - b + 2
			}

			if b <= piSqrtz {
				// Hard leaves: phi via sieve and counter tree.
				for ; primes[l] > minHard; l-- {
					xn := x / (prime * primes[l])
					sum += phi[b] + counters.Query(xn-low)
				}

				phi[b] += counters.Query(high - 1 - low)
				crossOff(prime, low, high, &next[b], sieve, counters)
			}
		}
	}
	return sum
}
