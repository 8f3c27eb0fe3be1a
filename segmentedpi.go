package primecount

// SegmentedPiTable is a pi(k) oracle that pages its lookup table in
// fixed-size windows to bound memory. The caller walks the windows in
// ascending order; lookups are only valid inside the current window
// [Low, High).
type SegmentedPiTable struct {
	limit       int64
	segmentSize int64
	low         int64
	high        int64

	sievingPrimes []int64
	words         []piWord
	countLow      uint64
}

// NewSegmentedPiTable pages pi(k) lookups for 0 <= k <= limit in
// windows of segmentSize integers (rounded up to a multiple of 240).
// The first window is ready after construction.
func NewSegmentedPiTable(limit, segmentSize int64) *SegmentedPiTable {
	t := &SegmentedPiTable{limit: limit}
	if segmentSize < bitsieveWindow {
		segmentSize = bitsieveWindow
	}
	t.segmentSize = ceilDiv(segmentSize, bitsieveWindow) * bitsieveWindow
	t.words = make([]piWord, t.segmentSize/bitsieveWindow)
	t.sievingPrimes = generatePrimes(isqrt(limit))
	t.low = 0
	t.high = min(t.segmentSize, limit+1)
	t.countLow = 3
	t.sieveSegment()
	return t
}

func (t *SegmentedPiTable) Low() int64 { return t.low }

func (t *SegmentedPiTable) High() int64 { return t.high }

func (t *SegmentedPiTable) Finished() bool { return t.low > t.limit }

// Next advances to the next window.
func (t *SegmentedPiTable) Next() {
	t.low += t.segmentSize
	t.high = min(t.low+t.segmentSize, t.limit+1)
	if t.Finished() {
		return
	}
	t.sieveSegment()
}

// Pi returns the number of primes <= x. x must lie inside the current
// window.
func (t *SegmentedPiTable) Pi(x int64) int64 {
	if x < 7 {
		if x < 0 {
			return 0
		}
		return piTinyTable[x]
	}
	if x < t.low || x >= t.high {
		panic("SegmentedPiTable: lookup outside current window")
	}
	w := t.words[(x-t.low)/bitsieveWindow]
	return int64(w.count) + popcnt64(w.bits&unsetLarger240[x%bitsieveWindow])
}

func (t *SegmentedPiTable) sieveSegment() {
	for i := range t.words {
		t.words[i] = piWord{}
	}
	// Mark every residue coprime to 30 as a prime candidate, then
	// cross off composites with the sieving primes >= 7 (2, 3 and 5
	// have no bit in the 240 layout).
	allSet := unsetLarger240[bitsieveWindow-1]
	for i := range t.words {
		t.words[i].bits = allSet
	}
	if t.low == 0 {
		// 1 is not prime.
		t.words[0].bits &= unsetBit240[1]
	}
	// Clear candidates beyond high.
	for n := t.high; n < t.low+t.segmentSize; n++ {
		t.words[(n-t.low)/bitsieveWindow].bits &= unsetBit240[n%bitsieveWindow]
	}
	for _, p := range t.sievingPrimes[1:] {
		if p < 7 {
			continue
		}
		if p*p >= t.high {
			break
		}
		start := max(p*p, ceilDiv(t.low, p)*p)
		if start%2 == 0 {
			start += p
		}
		// Even multiples have no bit in the layout; skip them.
		for n := start; n < t.high; n += p * 2 {
			t.words[(n-t.low)/bitsieveWindow].bits &= unsetBit240[n%bitsieveWindow]
		}
	}
	count := t.countLow
	for i := range t.words {
		t.words[i].count = count
		count += uint64(popcnt64(t.words[i].bits))
	}
	t.countLow = count
}
