package primecount

// Brute-force reference implementations shared by the tests.

// bruteforcePi counts primes <= n by trial sieve.
func bruteforcePi(n int64) int64 {
	if n < 2 {
		return 0
	}
	composite := sieveComposite(n)
	count := int64(0)
	for i := int64(2); i <= n; i++ {
		if !composite[i] {
			count++
		}
	}
	return count
}

// bruteforcePhi counts the n <= x not divisible by any of the first a
// primes, straight from the definition.
func bruteforcePhi(x, a int64) int64 {
	primes := generateNPrimes(a)
	count := int64(0)
outer:
	for n := int64(1); n <= x; n++ {
		for _, p := range primes[1:] {
			if n%p == 0 {
				continue outer
			}
		}
		count++
	}
	return count
}

// bruteforceP2 counts n <= x with exactly two prime factors, both > y.
func bruteforceP2(x, y int64) int64 {
	primes := generatePrimes(isqrt(x))
	count := int64(0)
	for i := 1; i < len(primes); i++ {
		p := primes[i]
		if p <= y {
			continue
		}
		for q := p; q <= x/p; q++ {
			if isPrimeNaive(q) {
				count++
			}
		}
	}
	return count
}

func isPrimeNaive(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}
