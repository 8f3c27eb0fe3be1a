package primecount

import (
	"math"
	"math/bits"
)

// isqrt returns the largest r with r*r <= x.
// The float64 estimate is exact for most inputs; the correction loops
// handle the few cases near 2^52 and above where the rounded estimate
// is off by one.
func isqrt(x int64) int64 {
	if x < 0 {
		panic("isqrt: negative input")
	}
	r := int64(math.Sqrt(float64(x)))
	for r > 0 && r > x/r {
		r--
	}
	for (r+1) <= x/(r+1) {
		r++
	}
	return r
}

// icbrt returns the largest r with r*r*r <= x.
func icbrt(x int64) int64 {
	return iroot(3, x)
}

// iroot returns the largest r with r^k <= x.
func iroot(k int64, x int64) int64 {
	if x < 0 {
		panic("iroot: negative input")
	}
	if k < 1 {
		panic("iroot: k < 1")
	}
	if k == 1 {
		return x
	}
	r := int64(math.Pow(float64(x), 1/float64(k)))
	// Pow can land on either side of the exact root.
	for r > 0 && !rootFits(r, k, x) {
		r--
	}
	for rootFits(r+1, k, x) {
		r++
	}
	return r
}

// rootFits reports whether r^k <= x without overflowing.
func rootFits(r, k, x int64) bool {
	p := int64(1)
	for i := int64(0); i < k; i++ {
		if r != 0 && p > x/r {
			return false
		}
		p *= r
	}
	return p <= x
}

// ipow computes b^e. Overflow is undefined; callers guarantee the
// result fits in int64.
func ipow(b, e int64) int64 {
	r := int64(1)
	for ; e > 0; e-- {
		r *= b
	}
	return r
}

// isquare computes x*x.
func isquare(x int64) int64 {
	return x * x
}

// ilog2 returns floor(log2(x)) for x > 0.
func ilog2(x int64) int64 {
	if x <= 0 {
		panic("ilog2: non-positive input")
	}
	return int64(bits.Len64(uint64(x))) - 1
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return int64(1) << bits.Len64(uint64(n-1))
}

// ceilDiv returns ceil(a / b) for a >= 0, b > 0.
func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}

// inBetween clamps v into [lo, hi].
func inBetween(lo int64, v, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// inBetweenF clamps v into [lo, hi] on float64s.
func inBetweenF(lo, v, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

