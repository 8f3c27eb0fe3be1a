package primecount

import (
	"math"
	"sync"
)

// Phi computes the partial sieve function (Legendre-sum): the count of
// numbers <= x that are not divisible by any of the first a primes.
// threads <= 0 selects the hardware thread count.
func Phi(x, a int64, threads int) int64 {
	if x < 1 {
		return 0
	}
	if a < 1 {
		return x
	}

	// phi(x, a) = 1 if p_a >= x.
	if a > x/2 {
		return 1
	}
	if isPhiTiny(a) {
		return phiTiny(x, a)
	}

	// phi(x, a) = 1 if a >= pi(x).
	if a >= pixUpper(x) {
		return 1
	}

	sqrtx := isqrt(x)

	// Fast a > pi(sqrt(x)) check with decent accuracy. Storing the
	// first a primes for a huge a would exhaust memory, and there is a
	// faster algorithm in that range anyway.
	if a > pixUpper(sqrtx) {
		return phiPix(x, a, threads)
	}

	pi := NewPiTable(sqrtx)
	piSqrtx := pi.Pi(sqrtx)

	// Strictly greater: dispatching at a == pi(sqrt(x)) would make
	// PiLegendre use another algorithm under the hood and, worse,
	// recurse forever through phiPix.
	if a > piSqrtx {
		return phiPix(x, a, threads)
	}

	primes := generateNPrimes(a + 1)
	c := phiTinyGetC(sqrtx)
	sum := phiTiny(x, c)
	threads = idealNumThreads(threads, x, 1e10)
	st := newStatus("phi", a-c)

	if threads == 1 {
		cache := newPhiCache(x, a, primes, pi)
		for i := c; i < a; i++ {
			sum += cache.phi(-1, x/primes[i+1], i)
			st.Tick(1)
		}
		return sum
	}

	sched := newDynamicSchedule()
	var wg sync.WaitGroup
	var mu sync.Mutex
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine owns its cache to avoid synchronization.
			cache := newPhiCache(x, a, primes, pi)
			local := int64(0)
			for i := sched.Next(c); i < a; i = sched.Next(c) {
				local += cache.phi(-1, x/primes[i+1], i)
				st.Tick(1)
			}
			mu.Lock()
			sum += local
			mu.Unlock()
		}()
	}
	wg.Wait()
	return sum
}

// PhiPrint behaves like Phi but also reports progress. Phi itself
// stays quiet because it backs the internal pi used to initialize
// S1, S2 and P2.
func PhiPrint(x, a int64, threads int) int64 {
	restore := isPrint()
	SetPrint(true)
	defer SetPrint(restore)
	return Phi(x, a, threads)
}

// phiPix computes phi(x, a) for a > pi(sqrt(x)): the survivors are
// then 1 and the primes in (p_a, x], so a single pi(x) suffices. Must
// only be called with a > pi(sqrt(x)) strictly, otherwise the pi
// computation recurses back into here.
func phiPix(x, a int64, threads int) int64 {
	restore := isPrint()
	SetPrint(false)
	pix := piNoPrint(x, threads)
	SetPrint(restore)
	if a <= pix {
		return pix - a + 1
	}
	return 1
}

// pixUpper bounds pi(x) from above:
// pi(x) <= x / (log(x) - 1.1) + 10 for x >= 10.
func pixUpper(x int64) int64 {
	if x <= 10 {
		return 4
	}
	return int64(float64(x)/(math.Log(float64(x))-1.1)) + 10
}
