package primecount

// P2 counts the numbers <= x that have exactly two prime factors, both
// greater than y:
//
//	P2(x, y) = sum over primes y < p <= sqrt(x) of pi(x/p) - pi(p) + 1
//
// The primes are walked in descending order so the quotients x/p walk
// the segmented pi table in ascending order; paging the table bounds
// the memory at O(sqrt(x/y)) instead of O(x/y).
func P2(x, y int64, threads int) int64 {
	if x < 4 {
		return 0
	}
	sqrtx := isqrt(x)
	if y >= sqrtx {
		return 0
	}

	primes := generatePrimes(sqrtx)

	// First prime > y.
	first := 1
	for first < len(primes) && primes[first] <= y {
		first++
	}
	if first >= len(primes) {
		return 0
	}

	limit := x / (y + 1)
	segmentSize := max(nextPow2(isqrt(limit+1)), int64(1)<<16)
	segPi := NewSegmentedPiTable(limit, segmentSize)

	sum := int64(0)
	j := len(primes) - 1
	for ; j >= first && !segPi.Finished(); segPi.Next() {
		high := segPi.High()
		for j >= first && x/primes[j] < high {
			// pi(p_j) = j, the primes slice is 1-indexed.
			sum += segPi.Pi(x/primes[j]) - int64(j) + 1
			j--
		}
	}
	return sum
}
