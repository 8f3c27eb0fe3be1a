package primecount

import "sync"

// This file computes pi(x) in the manner of Xavier Gourdon's
// refinement: the pi-computable special leaves are taken out of the
// sieve entirely and evaluated against a paged pi table, merged into
// one segmented walk (the A + C formulas). The composite-m leaves
// whose quotient is below p_b^2 go through the C1 squarefree
// recursion; the prime-l leaves split at x_star into the C2 range
// (clustered + sparse jumps) and the A range (direct accumulation).
// Only the remaining hard leaves still touch the sieve. The leaf
// boundaries follow the Deleglise-Rivat convention, so every term can
// be cross-checked against that code path.

// gourdonXStar returns the x^(1/4) cutoff, raised to x/y^2 when y is
// below x^(3/8), i.e. when alpha < x^(1/24).
func gourdonXStar(x, y int64) int64 {
	xStar := max(iroot(4, x), x/(y*y))
	return max(xStar, 1)
}

// gourdonK returns the sieving depth k = pi(x^(1/4) / alpha), clamped
// so the ordinary leaves stay in PhiTiny's closed form.
func gourdonK(x, piY int64) int64 {
	alpha := computeAlpha(x, 1500)
	t := max(int64(float64(iroot(4, x))/alpha), 2)
	k := int64(len(generatePrimes(t))) - 1
	return inBetween(1, k, min(piY, int64(phiTinyMaxA)))
}

// PiGourdon computes pi(x) with the A + C easy-leaf engine plus the
// shared ordinary-leaf, trivial-leaf, hard-leaf and P2 terms.
func PiGourdon(x int64, threads int) int64 {
	if x < 10 {
		return int64(len(generatePrimes(max(x, 0)))) - 1
	}

	y, z := drParams(x, 1500)
	p2 := P2(x, y, threads)

	mu := generateMoebius(y)
	lpf := generateLeastPrimeFactors(y)
	primes := generatePrimes(y)
	pi := generatePi(y)

	piY := int64(len(primes)) - 1
	k := gourdonK(x, piY)

	phi0 := S1(x, y, k, primes[k], lpf, mu)
	sum := phi0 + s2Trivial(x, y, z, k, pi, primes)
	sum += gourdonAC(x, y, z, k, pi, primes, threads)
	sum += s2Sieve(x, y, z, k, pi, primes, lpf, mu, true)

	return sum + piY - 1 - p2
}

// gourdonAC sums the pi-computable special leaves: the C1 recursion
// for composite second factors and the windowed A/C2 loops for prime
// second factors.
func gourdonAC(x, y, z, k int64, pi []int32, primes []int64, threads int) int64 {
	piY := int64(pi[y])
	piSqrty := int64(pi[isqrt(y)])
	piX13 := int64(pi[icbrt(x)])
	xStar := gourdonXStar(x, y)
	piXStar := int64(pi[min(xStar, y)])
	threads = idealNumThreads(threads, icbrt(x), 1000)

	sum := acC1(x, y, k, piSqrty, piY, pi, primes, threads)

	startB := max(k, piSqrty) + 1
	if startB > piX13 {
		return sum
	}

	// Page the pi(x/n) lookups: quotients of easy prime-l leaves
	// never reach y, each window handles the leaves it covers.
	segmentSize := max(nextPow2(isqrt(y+1)), int64(1)<<17)
	segPi := NewSegmentedPiTable(y, segmentSize)
	st := newStatus("AC", piX13-startB+1)

	for ; !segPi.Finished(); segPi.Next() {
		low := max(segPi.Low(), 1)
		high := segPi.High()

		if threads == 1 {
			for b := startB; b <= piX13; b++ {
				sum += acEasyLeaves(x, y, z, b, b <= piXStar, low, high, piY, pi, primes, segPi)
			}
			continue
		}

		// C2 formula: pi(sqrt(y)) < b <= pi(x_star)
		// A  formula: pi(x_star) < b <= pi(x^(1/3))
		sched := newDynamicSchedule()
		var wg sync.WaitGroup
		var mu sync.Mutex
		for t := 0; t < threads; t++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				local := int64(0)
				for b := sched.Next(startB); b <= piX13; b = sched.Next(startB) {
					local += acEasyLeaves(x, y, z, b, b <= piXStar, low, high, piY, pi, primes, segPi)
					st.Tick(1)
				}
				mu.Lock()
				sum += local
				mu.Unlock()
			}()
		}
		wg.Wait()
	}
	return sum
}

// acC1 computes the composite-m easy leaves: for each p_b below
// sqrt(y), the squarefree m coprime to the first b primes whose
// quotient x/(p_b*m) drops below p_b^2 admit the pi closed form. The
// m are enumerated recursively instead of through a factor table.
func acC1(x, y, k, piSqrty, piY int64, pi []int32, primes []int64, threads int) int64 {
	if k+1 > piSqrty {
		return 0
	}

	worker := func(b int64) int64 {
		prime := primes[b]
		easyMax := min(prime*prime-1, y)
		minM := max(y/prime, x/(prime*(easyMax+1)))
		if minM >= y {
			return 0
		}
		return -c1Leaves(x/prime, b, b, piY, 1, minM, y, -1, primes, pi)
	}

	if threads == 1 {
		sum := int64(0)
		for b := k + 1; b <= piSqrty; b++ {
			sum += worker(b)
		}
		return sum
	}

	sched := newDynamicSchedule()
	sum := int64(0)
	var wg sync.WaitGroup
	var mu sync.Mutex
	for t := 0; t < threads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := int64(0)
			for b := sched.Next(k + 1); b <= piSqrty; b = sched.Next(k + 1) {
				local += worker(b)
			}
			mu.Lock()
			sum += local
			mu.Unlock()
		}()
	}
	wg.Wait()
	return sum
}

// c1Leaves recursively iterates over the squarefree numbers coprime to
// the first b primes, accumulating sign * (pi(xp/m) - b + 2) for the m
// inside (minM, maxM]. The sign alternates with each additional prime
// factor, tracking mu(m).
func c1Leaves(xp int64, b, i, piY int64, m, minM, maxM int64, sign int64, primes []int64, pi []int32) int64 {
	sum := int64(0)
	for i++; i <= piY; i++ {
		m2 := m * primes[i]
		if m2 > maxM {
			return sum
		}
		if m2 > minM {
			sum += sign * (int64(pi[xp/m2]) - b + 2)
		}
		sum += c1Leaves(xp, b, i, piY, m2, minM, maxM, -sign, primes, pi)
	}
	return sum
}

// acEasyLeaves computes the easy prime-l leaves of one b whose
// quotients fall inside the window [low, high) of the paged pi table.
// In the C2 range runs of identical phi values are jumped; the A range
// accumulates leaf by leaf.
func acEasyLeaves(x, y, z, b int64, clustered bool, low, high, piY int64, pi []int32, primes []int64, segPi *SegmentedPiTable) int64 {
	prime := primes[b]
	minTrivial := x / (prime * prime)
	minClustered := isqrt(x / prime)
	minSparse := z / prime
	minHard := max(y/prime, prime)

	minSparse = max(minSparse, minHard)
	minClustered = max(minClustered, minHard)

	// Window restriction: low <= x/(p_b * p_l) < high.
	winLow := x / (prime * high)
	winHigh := x / (prime * low)

	l := int64(pi[min(min(minTrivial, winHigh), y)])
	clusterFloor := max(minClustered, winLow)
	sparseFloor := max(minSparse, winLow)
	sum := int64(0)

	if clustered {
		for primes[l] > clusterFloor {
			xn := x / (prime * primes[l])
			phiXn := segPi.Pi(xn) - b + 2
			jump := b + phiXn - 1
			var l2 int64
			if jump > piY {
				// No prime in (xn, y]: the whole remaining range
				// shares this phi value.
				l2 = int64(pi[clusterFloor])
			} else {
				xq := x / (prime * primes[jump])
				if xq >= high {
					// Run extends past the window; take one leaf and
					// let the next windows finish the run.
					sum += phiXn
					l--
					continue
				}
				l2 = max(segPi.Pi(xq), int64(pi[clusterFloor]))
			}
			sum += phiXn * (l - l2)
			l = l2
		}
	}

	for ; primes[l] > sparseFloor; l-- {
		xn := x / (prime * primes[l])
		sum += segPi.Pi(xn) - b + 2
	}
	return sum
}
