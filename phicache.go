package primecount

import "math"

// phiCache computes the partial sieve function (Legendre-sum) using
// the recursive formula phi(x, a) = phi(x, a-1) - phi(x / p_a, a-1)
// with four layered shortcuts, tried in order:
//
//  1. phi(x, a) = +-1 when x <= p_a
//  2. the PhiTiny closed form when a <= phiTinyMaxA
//  3. phi(x, a) = pi(x) - a + 1 when x < p_{a+1}^2
//  4. a sieve-backed cache of small (x, a) pairs
//
// Each worker goroutine owns its cache: sharing one would need locking
// and lose NUMA locality.
type phiCache struct {
	primes []int64
	pi     *PiTable

	maxX       int64
	maxXSize   int64
	maxACached int64
	maxA       int64

	// sieve[a] contains only numbers that are not divisible by any
	// of the first a primes. sieve[a][j].count is the number of such
	// survivors below j*240.
	sieve [][]cacheSlot
}

// cacheSlot packs the survivors of one 240-integer window.
type cacheSlot struct {
	count uint32
	bits  uint64
}

const (
	// phiCacheMaxA bounds the cached a-range. The value is empirical:
	// larger or smaller values with the same memory budget are slower.
	phiCacheMaxA = 100

	// phiCacheMegabytes bounds the cache size per goroutine.
	phiCacheMegabytes = 16

	cacheSlotBytes = 16
)

func newPhiCache(x, a int64, primes []int64, pi *PiTable) *phiCache {
	c := &phiCache{primes: primes, pi: pi}

	maxA := int64(phiCacheMaxA)
	tinyA := int64(phiTinyMaxA)

	// Cache only frequently used values.
	a -= min(a, 30)
	maxA = min(a, maxA)
	if maxA <= tinyA {
		return c
	}

	// max_x = x^(1/2.3) balances hit rate against re-sieving cost;
	// sqrt(x) performs better on few cores but does not scale.
	maxX := int64(math.Pow(float64(x), 1/2.3))

	indexes := maxA - tinyA
	maxBytes := int64(phiCacheMegabytes) << 20
	maxBytesPerIndex := maxBytes / indexes
	numbersPerByte := int64(bitsieveWindow / cacheSlotBytes)
	cacheLimit := maxBytesPerIndex * numbersPerByte
	maxX = min(maxX, cacheLimit)

	c.maxXSize = ceilDiv(maxX, bitsieveWindow)

	// For tiny computations caching is not worth it.
	if c.maxXSize < 8 {
		c.maxXSize = 0
		return c
	}

	c.maxX = c.maxXSize*bitsieveWindow - 1
	c.maxA = maxA
	c.sieve = make([][]cacheSlot, maxA+1)
	return c
}

// phi evaluates sign * phi(x, a). The sign flips on each recursion
// level, which keeps a single code path for both parities.
func (c *phiCache) phi(sign int64, x, a int64) int64 {
	if x <= c.primes[a] {
		return sign
	}
	if isPhiTiny(a) {
		return phiTiny(x, a) * sign
	}
	if c.isPix(x, a) {
		return (c.pi.Pi(x) - a + 1) * sign
	}
	if c.isCached(x, a) {
		return c.cacheValue(x, a) * sign
	}

	// Cache all small phi(x, i) results with x <= maxX and
	// i <= min(a, maxA).
	c.sieveCache(x, a)

	sqrtx := isqrt(x)
	cc := phiTinyGetC(sqrtx)
	largerC := min(a, c.maxACached)
	var sum int64

	if cc >= largerC || !c.isCached(x, largerC) {
		sum = phiTiny(x, cc) * sign
	} else {
		// Start the decomposition at the largest cached a instead
		// of the tiny one; the first term is then a single lookup.
		cc = largerC
		sum = c.cacheValue(x, cc) * sign
	}

	i := cc
	for ; i < a; i++ {
		// If p_{i+1} > sqrt(x) then phi(x / p_{i+1}, i) = 1 for this
		// and every remaining i: there is no prime inside
		// ]p_i, x / p_{i+1}].
		if c.primes[i+1] > sqrtx {
			break
		}
		xp := x / c.primes[i+1]
		if c.isPix(xp, i) {
			break
		}
		sum += c.phi(-sign, xp, i)
	}
	for ; i < a; i++ {
		// Every remaining quotient satisfies xp < p_{i+1}^2, so each
		// term is a pi lookup.
		if c.primes[i+1] > sqrtx {
			break
		}
		xp := x / c.primes[i+1]
		sum += (c.pi.Pi(xp) - i + 1) * -sign
	}

	// phi(x / p_{i+1}, i) = 1 for all remaining terms.
	sum += (a - i) * -sign
	return sum
}

// isPix reports whether phi(x, a) = pi(x) - a + 1, which holds when
// x < p_{a+1}^2: the survivors are then exactly 1 and the primes in
// (p_a, x].
func (c *phiCache) isPix(x, a int64) bool {
	return x <= c.pi.Limit() &&
		a+1 < int64(len(c.primes)) &&
		x < isquare(c.primes[a+1])
}

func (c *phiCache) isCached(x, a int64) bool {
	return x <= c.maxX && a <= c.maxACached
}

func (c *phiCache) cacheValue(x, a int64) int64 {
	w := c.sieve[a][x/bitsieveWindow]
	return int64(w.count) + popcnt64(w.bits&unsetLarger240[x%bitsieveWindow])
}

// sieveCache extends the cache rows in place through a. Row i is row
// i-1 with p_i and its odd multiples crossed off, followed by a
// cumulative-count pass. Rows at or below phiTinyMaxA are never
// queried, so their storage is handed to the next row instead of
// copied.
func (c *phiCache) sieveCache(x, a int64) {
	a = min(a, c.maxA)
	if x > c.maxX || a <= c.maxACached {
		return
	}

	i := max(c.maxACached+1, 3)
	tinyA := int64(phiTinyMaxA)
	c.maxACached = a

	for ; i <= a; i++ {
		if i == 3 {
			row := make([]cacheSlot, c.maxXSize)
			for j := range row {
				row[j].bits = ^uint64(0)
			}
			c.sieve[i] = row
			continue
		}

		if i-1 <= tinyA {
			c.sieve[i] = c.sieve[i-1]
			c.sieve[i-1] = nil
		} else {
			c.sieve[i] = append([]cacheSlot(nil), c.sieve[i-1]...)
		}

		prime := c.primes[i]
		row := c.sieve[i]
		if prime <= c.maxX {
			row[prime/bitsieveWindow].bits &= unsetBit240[prime%bitsieveWindow]
		}
		for n := prime * prime; n <= c.maxX; n += prime * 2 {
			row[n/bitsieveWindow].bits &= unsetBit240[n%bitsieveWindow]
		}

		if i > tinyA {
			count := uint64(0)
			for j := range row {
				row[j].count = uint32(count)
				count += uint64(popcnt64(row[j].bits))
			}
		}
	}
}
