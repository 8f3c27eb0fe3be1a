package primecount

import (
	"math"
	"testing"
)

func TestGeneratePrimesSmall(t *testing.T) {
	want := []int64{0, 2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	got := generatePrimes(100)
	if len(got) != len(want) {
		t.Fatalf("generatePrimes(100) has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("generatePrimes(100)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGenerateNPrimes(t *testing.T) {
	for _, n := range []int64{0, 1, 5, 100, 6542, 10000} {
		primes := generateNPrimes(n)
		if int64(len(primes)) != n+1 {
			t.Fatalf("generateNPrimes(%d) returned %d entries", n, len(primes))
		}
		for i := 1; i < len(primes); i++ {
			if !isPrimeNaive(primes[i]) {
				t.Fatalf("generateNPrimes(%d)[%d] = %d is not prime", n, i, primes[i])
			}
			if i > 1 && primes[i-1] >= primes[i] {
				t.Fatalf("generateNPrimes(%d) not ascending at %d", n, i)
			}
		}
	}
	// The 10000th prime.
	if p := generateNPrimes(10000); p[10000] != 104729 {
		t.Fatalf("10000th prime = %d, want 104729", p[10000])
	}
}

func TestGeneratePi(t *testing.T) {
	pi := generatePi(1000)
	count := int64(0)
	for k := int64(0); k <= 1000; k++ {
		if isPrimeNaive(k) {
			count++
		}
		if int64(pi[k]) != count {
			t.Fatalf("pi[%d] = %d, want %d", k, pi[k], count)
		}
	}
}

func TestGenerateMoebius(t *testing.T) {
	mu := generateMoebius(10000)
	known := map[int64]int8{
		1: 1, 2: -1, 3: -1, 4: 0, 5: -1, 6: 1, 7: -1, 8: 0, 9: 0,
		10: 1, 12: 0, 30: -1, 210: 1, 1155: 1, 9999: 0,
	}
	for n, want := range known {
		if mu[n] != want {
			t.Fatalf("mu[%d] = %d, want %d", n, mu[n], want)
		}
	}
	// Full cross-check against factorization.
	for n := int64(1); n <= 10000; n++ {
		if mu[n] != bruteforceMoebius(n) {
			t.Fatalf("mu[%d] = %d, want %d", n, mu[n], bruteforceMoebius(n))
		}
	}
}

func bruteforceMoebius(n int64) int8 {
	factors := int8(0)
	for p := int64(2); p*p <= n; p++ {
		if n%p == 0 {
			n /= p
			if n%p == 0 {
				return 0
			}
			factors++
		}
	}
	if n > 1 {
		factors++
	}
	if factors%2 == 0 {
		return 1
	}
	return -1
}

func TestGenerateLeastPrimeFactors(t *testing.T) {
	lpf := generateLeastPrimeFactors(10000)
	if lpf[1] != math.MaxInt32 {
		t.Fatalf("lpf[1] = %d, want MaxInt32", lpf[1])
	}
	for n := int64(2); n <= 10000; n++ {
		want := int32(0)
		for p := int64(2); p <= n; p++ {
			if n%p == 0 {
				want = int32(p)
				break
			}
		}
		if lpf[n] != want {
			t.Fatalf("lpf[%d] = %d, want %d", n, lpf[n], want)
		}
	}
}
