package primecount

import "sync"

// This file computes S2, the special-leaves sum of the
// Deleglise-Rivat decomposition. The leaves n = p_b * m with
// y/p_b < m <= y split into four classes, cheapest first:
//
//   - trivial: phi(x/n, b-1) = 1, counted in closed form
//   - clustered easy: phi(x/n, b-1) = pi(x/n) - b + 2 and runs of
//     consecutive leaves share the value, added per run
//   - sparse easy: same pi formula, one leaf at a time
//   - hard: phi(x/n, b-1) needs the segmented sieve and counter tree
//
// All intervals are half-open [low, high) so no leaf is counted twice.

// crossOff removes the odd multiples of prime from the sieve segment
// [low, high). Each newly cleared bit updates the counter tree so its
// prefix sums keep matching the sieve.
func crossOff(prime, low, high int64, nextMultiple *int64, sieve *BitSieve, counters *Counters) {
	k := *nextMultiple
	for ; k < high; k += prime * 2 {
		if sieve.Bit(k - low) {
			sieve.Unset(k - low)
			counters.Decrement(k - low)
		}
	}
	*nextMultiple = k
}

// s2Trivial counts the leaves with phi(x/n, b-1) = 1. For
// p_b > sqrt(z) every second factor q in (max(x/p_b^2, p_b), y]
// produces such a leaf, so each b contributes a difference of two pi
// values.
func s2Trivial(x, y, z, c int64, pi []int32, primes []int64) int64 {
	piY := int64(pi[y])
	piSqrtz := int64(pi[min(isqrt(z), y)])
	sum := int64(0)

	for b := max(c, piSqrtz) + 1; b < piY; b++ {
		prime := primes[b]
		sum += piY - int64(pi[max(x/(prime*prime), prime)])
	}
	return sum
}

// s2EasyLeaves computes the clustered and sparse easy leaves of one b.
// Leaves are walked from large second factors downward; inside the
// clustered range consecutive leaves with an identical phi value are
// added as one block by jumping the prime index.
func s2EasyLeaves(x, y, z, b int64, pi []int32, primes []int64) int64 {
	piY := int64(pi[y])
	prime := primes[b]
	minTrivial := x / (prime * prime)
	minClustered := isqrt(x / prime)
	minSparse := z / prime
	minHard := max(y/prime, prime)

	minSparse = max(minSparse, minHard)
	minClustered = max(minClustered, minHard)
	l := int64(pi[min(minTrivial, y)])
	sum := int64(0)

	// Clustered easy leaves: x/n <= y and
	// phi(x/n, b-1) = phi(x/m, b-1) for a whole run of l values.
	for primes[l] > minClustered {
		xn := x / (prime * primes[l])
		phiXn := int64(pi[xn]) - b + 2
		jump := b + phiXn - 1
		if jump > piY {
			// No prime in (xn, y]: every remaining leaf of the
			// clustered range shares this phi value.
			l2 := int64(pi[minClustered])
			sum += phiXn * (l - l2)
			l = l2
			continue
		}
		m := prime * primes[jump]
		xm := max(x/m, minClustered)
		l2 := int64(pi[xm])
		sum += phiXn * (l - l2)
		l = l2
	}

	// Sparse easy leaves: x/n <= y and phi(x/n, b-1) = pi(x/n) - b + 2.
	for ; primes[l] > minSparse; l-- {
		xn := x / (prime * primes[l])
		sum += int64(pi[xn]) - b + 2
	}
	return sum
}

// s2Easy sums the easy leaves over b. The iterations are independent
// and read-only, so they are distributed dynamically over the worker
// goroutines with a single shared atomic counter.
func s2Easy(x, y, z, c int64, pi []int32, primes []int64, threads int) int64 {
	piSqrty := int64(pi[isqrt(y)])
	piX13 := int64(pi[icbrt(x)])
	start := max(c, piSqrty) + 1
	if start > piX13 {
		return 0
	}

	threads = idealNumThreads(threads, icbrt(x), 1000)
	if threads == 1 {
		sum := int64(0)
		for b := start; b <= piX13; b++ {
			sum += s2EasyLeaves(x, y, z, b, pi, primes)
		}
		return sum
	}

	st := newStatus("S2_easy", piX13-start+1)
	sched := newDynamicSchedule()
	sum := int64(0)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := int64(0)
			for b := sched.Next(start); b <= piX13; b = sched.Next(start) {
				local += s2EasyLeaves(x, y, z, b, pi, primes)
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

// s2Sieve computes the hard leaves with a segmented sieve of
// Eratosthenes and a counter tree. Per prime index b the sieve holds
// the survivors of the first b-1 primes, so
// phi(x/n, b-1) = phi[b] + Query(x/n - low). excludeEasyA additionally
// skips the phase-A leaves whose quotient is pi-computable; the
// Gourdon-style engine counts those separately.
func s2Sieve(x, y, z, c int64, pi []int32, primes []int64, lpf []int32, mu []int8, excludeEasyA bool) int64 {
	limit := z + 1
	segmentSize := nextPow2(isqrt(limit))
	piSqrty := int64(pi[isqrt(y)])
	piSqrtz := int64(pi[min(isqrt(z), y)])
	sum := int64(0)

	sieve := NewBitSieve(segmentSize)
	counters := NewCounters(segmentSize)
	next := append([]int64(nil), primes...)
	phi := make([]int64, len(primes))

segments:
	for low := int64(1); low < limit; low += segmentSize {
		// Current segment = interval [low, high).
		high := min(low+segmentSize, limit)
		b := int64(2)

		sieve.Fill(low, high)

		// phi(y, b) nodes with b <= c do not contribute to S2: sieve
		// out the multiples of the first c primes without touching
		// the counter tree.
		for ; b <= c; b++ {
			k := next[b]
			for prime := primes[b]; k < high; k += prime * 2 {
				sieve.Unset(k - low)
			}
			next[b] = k
		}

		counters.Init(sieve, segmentSize)

		// For c < b <= pi(sqrt(y)): leaves n = p_b * m with
		// mu[m] != 0, p_b < lpf[m] and low <= x/n < high.
		for ; b <= piSqrty; b++ {
			prime := primes[b]
			minM := max(x/(prime*high), y/prime)
			maxM := min(x/(prime*low), y)

			if prime >= maxM {
				// No leaves for this or any larger b in this or any
				// later segment.
				continue segments
			}

			easyMax := int64(0)
			if excludeEasyA {
				easyMax = min(prime*prime-1, y)
			}

			for m := maxM; m > minM; m-- {
				if mu[m] != 0 && prime < int64(lpf[m]) {
					xn := x / (prime * m)
					if xn <= easyMax {
						continue
					}
					phiXn := phi[b] + counters.Query(xn-low)
					sum -= int64(mu[m]) * phiXn
				}
			}

			phi[b] += counters.Query(high - 1 - low)
			crossOff(prime, low, high, &next[b], sieve, counters)
		}

		// For pi(sqrt(y)) < b <= pi(sqrt(z)): hard leaves
		// n = p_b * p_l with low <= x/n < high. The z/p_b cap keeps
		// the easy leaves (x/n < y) out of this phase.
		for ; b <= piSqrtz; b++ {
			prime := primes[b]
			l := int64(pi[min(min(x/(prime*low), z/prime), y)])
			minHard := max(max(x/(prime*high), y/prime), prime)

			if prime >= primes[l] {
				continue segments
			}

			for ; primes[l] > minHard; l-- {
				xn := x / (prime * primes[l])
				sum += phi[b] + counters.Query(xn-low)
			}

			phi[b] += counters.Query(high - 1 - low)
			crossOff(prime, low, high, &next[b], sieve, counters)
		}
	}
	return sum
}

// s2 sums the special leaves.
func s2(x, y, z, c int64, primes []int64, lpf []int32, mu []int8, threads int) int64 {
	pi := generatePi(y)
	total := s2Trivial(x, y, z, c, pi, primes)
	total += s2Easy(x, y, z, c, pi, primes, threads)
	total += s2Sieve(x, y, z, c, pi, primes, lpf, mu, false)
	return total
}
