package primecount

import "math"

// generatePrimes returns all primes <= n as a 1-indexed slice:
// primes[1] = 2, primes[2] = 3, ... primes[0] is a zero sentinel.
func generatePrimes(n int64) []int64 {
	composite := sieveComposite(n)
	primes := make([]int64, 1, 16)
	primes[0] = 0
	for i := int64(2); i <= n; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// generateNPrimes returns the first n primes, 1-indexed with a zero
// sentinel at index 0.
func generateNPrimes(n int64) []int64 {
	if n <= 0 {
		return []int64{0}
	}
	// Rosser-Schoenfeld: p_n < n*(ln n + ln ln n) for n >= 6.
	limit := int64(20)
	if n >= 6 {
		f := float64(n)
		limit = int64(f*(math.Log(f)+math.Log(math.Log(f)))) + 1
	}
	for {
		primes := generatePrimes(limit)
		if int64(len(primes)) > n {
			return primes[:n+1]
		}
		limit *= 2
	}
}

// generatePi returns a lookup table with pi[k] = number of primes <= k
// for 0 <= k <= n.
func generatePi(n int64) []int32 {
	composite := sieveComposite(n)
	pi := make([]int32, n+1)
	count := int32(0)
	for i := int64(2); i <= n; i++ {
		if !composite[i] {
			count++
		}
		pi[i] = count
	}
	return pi
}

// generateMoebius returns the Moebius function mu[m] for 1 <= m <= n.
// mu[0] is unused.
func generateMoebius(n int64) []int8 {
	mu := make([]int8, n+1)
	for i := range mu {
		mu[i] = 1
	}
	if n >= 0 {
		mu[0] = 0
	}
	composite := sieveComposite(n)
	for p := int64(2); p <= n; p++ {
		if composite[p] {
			continue
		}
		for j := p; j <= n; j += p {
			mu[j] = -mu[j]
		}
		if p <= n/p {
			sq := p * p
			for j := sq; j <= n; j += sq {
				mu[j] = 0
			}
		}
	}
	return mu
}

// generateLeastPrimeFactors returns lpf[m], the smallest prime dividing
// m, for 2 <= m <= n. lpf[1] is set to math.MaxInt32 so that the
// ordinary-leaves condition lpf[n] > p_c holds for n = 1.
func generateLeastPrimeFactors(n int64) []int32 {
	lpf := make([]int32, n+1)
	if n >= 1 {
		lpf[1] = math.MaxInt32
	}
	for i := int64(2); i <= n; i++ {
		if lpf[i] == 0 {
			for j := i; j <= n; j += i {
				if lpf[j] == 0 {
					lpf[j] = int32(i)
				}
			}
		}
	}
	return lpf
}

// sieveComposite returns a sieve of Eratosthenes over [0, n]:
// composite[i] is true iff i is composite. 0 and 1 are left false and
// must be excluded by the caller.
func sieveComposite(n int64) []bool {
	composite := make([]bool, n+1)
	for i := int64(2); i*i <= n; i++ {
		if !composite[i] {
			for j := i * i; j <= n; j += i {
				composite[j] = true
			}
		}
	}
	return composite
}
