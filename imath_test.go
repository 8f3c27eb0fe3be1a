package primecount

import (
	"math"
	"testing"
)

func TestIsqrtSmallRange(t *testing.T) {
	for x := int64(0); x <= 10000; x++ {
		r := isqrt(x)
		if r*r > x || (r+1)*(r+1) <= x {
			t.Fatalf("isqrt(%d) = %d", x, r)
		}
	}
}

func TestIsqrtLargeValues(t *testing.T) {
	cases := []struct {
		x, want int64
	}{
		{1 << 62, 1 << 31},
		{(1 << 62) - 1, (1 << 31) - 1},
		{int64(1e18), 1000000000},
		{int64(1e18) - 1, 999999999},
		{3037000499 * 3037000499, 3037000499},
		{3037000499*3037000499 - 1, 3037000498},
		{math.MaxInt64, 3037000499},
	}
	for _, c := range cases {
		if got := isqrt(c.x); got != c.want {
			t.Fatalf("isqrt(%d) = %d, want %d", c.x, got, c.want)
		}
	}
}

func TestIrootRoundTrips(t *testing.T) {
	for _, k := range []int64{2, 3, 4, 6} {
		for v := int64(1); v < 200; v++ {
			p := ipow(v, k)
			if p < 0 || p > int64(1e18) {
				break
			}
			if got := iroot(k, p); got != v {
				t.Fatalf("iroot(%d, %d^%d) = %d", k, v, k, got)
			}
			if p > 1 {
				if got := iroot(k, p-1); got != v-1 {
					t.Fatalf("iroot(%d, %d^%d - 1) = %d, want %d", k, v, k, got, v-1)
				}
			}
		}
	}
}

func TestIrootLarge(t *testing.T) {
	if got := iroot(3, int64(1e18)); got != 1000000 {
		t.Fatalf("iroot(3, 1e18) = %d", got)
	}
	if got := iroot(6, int64(1e18)); got != 1000 {
		t.Fatalf("iroot(6, 1e18) = %d", got)
	}
	if got := iroot(4, int64(1e16)); got != 10000 {
		t.Fatalf("iroot(4, 1e16) = %d", got)
	}
}

func TestNextPow2(t *testing.T) {
	cases := []struct{ in, want int64 }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {4, 4}, {5, 8},
		{1023, 1024}, {1024, 1024}, {1025, 2048},
	}
	for _, c := range cases {
		if got := nextPow2(c.in); got != c.want {
			t.Fatalf("nextPow2(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIlog2(t *testing.T) {
	for e := int64(0); e < 63; e++ {
		if got := ilog2(int64(1) << e); got != e {
			t.Fatalf("ilog2(2^%d) = %d", e, got)
		}
	}
	if got := ilog2(1000); got != 9 {
		t.Fatalf("ilog2(1000) = %d", got)
	}
}

func TestInBetween(t *testing.T) {
	if inBetween(1, 5, 10) != 5 || inBetween(1, 0, 10) != 1 || inBetween(1, 20, 10) != 10 {
		t.Fatal("inBetween clamping broken")
	}
	if inBetweenF(1, 0.5, 2) != 1 || inBetweenF(1, 1.5, 2) != 1.5 || inBetweenF(1, 3, 2) != 2 {
		t.Fatal("inBetweenF clamping broken")
	}
}

func TestCeilDiv(t *testing.T) {
	if ceilDiv(10, 3) != 4 || ceilDiv(9, 3) != 3 || ceilDiv(0, 5) != 0 {
		t.Fatal("ceilDiv broken")
	}
}
