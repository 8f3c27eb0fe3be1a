package primecount

import (
	"math/bits"
	"strconv"
)

// uint128 is a minimal unsigned 128-bit integer. It exists for the few
// places where an intermediate product prime*m can exceed 64 bits near
// the input ceiling; quotients x/(prime*m) always fit back into 64 bits
// when the algorithmic preconditions hold.
type uint128 struct {
	hi, lo uint64
}

// mul64 returns a*b as a uint128.
func mul64(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{hi, lo}
}

// cmp64 compares u against the 64-bit value v.
func (u uint128) cmp64(v uint64) int {
	if u.hi != 0 || u.lo > v {
		return 1
	}
	if u.lo == v {
		return 0
	}
	return -1
}

func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi != v.hi:
		if u.hi > v.hi {
			return 1
		}
		return -1
	case u.lo > v.lo:
		return 1
	case u.lo < v.lo:
		return -1
	}
	return 0
}

// divMod64 divides u by d and returns the 128-bit quotient and the
// remainder. d must be non-zero.
func (u uint128) divMod64(d uint64) (uint128, uint64) {
	if u.hi == 0 {
		return uint128{0, u.lo / d}, u.lo % d
	}
	qhi := u.hi / d
	rem := u.hi % d
	qlo, rem := bits.Div64(rem, u.lo, d)
	return uint128{qhi, qlo}, rem
}

// div64 divides u by d assuming the quotient fits into 64 bits, which
// permits a single wide division. The caller guarantees u.hi < d.
func (u uint128) div64(d uint64) uint64 {
	if u.hi == 0 {
		return u.lo / d
	}
	q, _ := bits.Div64(u.hi, u.lo, d)
	return q
}

func (u uint128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	var buf [40]byte
	i := len(buf)
	for u.hi != 0 || u.lo != 0 {
		var r uint64
		u, r = u.divMod64(10)
		i--
		buf[i] = byte('0' + r)
	}
	return string(buf[i:])
}

// fastDiv128 computes x / (a*b) where a*b may exceed 64 bits.
// The quotient always fits since x itself fits.
func fastDiv128(x int64, a, b int64) int64 {
	p := mul64(uint64(a), uint64(b))
	if p.hi != 0 {
		return 0
	}
	return int64(uint64(x) / p.lo)
}
