package primecount

// piWord packs the prime-counting state of one 240-integer window:
// bits marks the primes coprime to 30 inside the window, count is the
// number of primes below the window start (including 2, 3 and 5).
type piWord struct {
	count uint64
	bits  uint64
}

// piTinyTable[x] = pi(x) for x < 7. The packed words cannot represent
// 2, 3 and 5, so lookups below 7 use this table instead.
var piTinyTable = [7]int64{0, 0, 1, 2, 2, 3, 3}

// PiTable is a random-access pi(k) oracle for 0 <= k <= limit.
// It uses 16 bytes per 240 integers.
type PiTable struct {
	limit int64
	words []piWord
}

func NewPiTable(limit int64) *PiTable {
	t := &PiTable{limit: limit}
	size := ceilDiv(limit+1, bitsieveWindow)
	if size < 1 {
		size = 1
	}
	t.words = make([]piWord, size)
	composite := sieveComposite(limit)
	for n := int64(7); n <= limit; n++ {
		if !composite[n] && bitIndex240[n%bitsieveWindow] >= 0 {
			t.words[n/bitsieveWindow].bits |= uint64(1) << bitIndex240[n%bitsieveWindow]
		}
	}
	count := uint64(3)
	for i := range t.words {
		t.words[i].count = count
		count += uint64(popcnt64(t.words[i].bits))
	}
	return t
}

// Limit returns the largest k the table can answer.
func (t *PiTable) Limit() int64 {
	return t.limit
}

// Pi returns the number of primes <= x.
func (t *PiTable) Pi(x int64) int64 {
	if x < 7 {
		if x < 0 {
			return 0
		}
		return piTinyTable[x]
	}
	if x > t.limit {
		panic("PiTable: lookup above limit")
	}
	w := t.words[x/bitsieveWindow]
	return int64(w.count) + popcnt64(w.bits&unsetLarger240[x%bitsieveWindow])
}
