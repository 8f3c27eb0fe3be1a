package primecount

import "testing"

func TestBitIndex240Coverage(t *testing.T) {
	seen := make(map[int8]bool)
	for n := 0; n < bitsieveWindow; n++ {
		coprime := n%2 != 0 && n%3 != 0 && n%5 != 0
		if coprime != (bitIndex240[n] >= 0) {
			t.Fatalf("bitIndex240[%d] = %d, coprime = %v", n, bitIndex240[n], coprime)
		}
		if bitIndex240[n] >= 0 {
			if seen[bitIndex240[n]] {
				t.Fatalf("duplicate bit index %d", bitIndex240[n])
			}
			seen[bitIndex240[n]] = true
		}
	}
	if len(seen) != 64 {
		t.Fatalf("expected 64 distinct bit indexes, got %d", len(seen))
	}
}

func TestUnsetBit240(t *testing.T) {
	for n := 0; n < bitsieveWindow; n++ {
		if bitIndex240[n] < 0 {
			if unsetBit240[n] != ^uint64(0) {
				t.Fatalf("unsetBit240[%d] should be all ones", n)
			}
			continue
		}
		if popcnt64(^unsetBit240[n]) != 1 {
			t.Fatalf("unsetBit240[%d] should clear exactly one bit", n)
		}
		if unsetBit240[n]&(uint64(1)<<bitIndex240[n]) != 0 {
			t.Fatalf("unsetBit240[%d] clears the wrong bit", n)
		}
	}
}

func TestUnsetLarger240(t *testing.T) {
	for r := 0; r < bitsieveWindow; r++ {
		want := int64(0)
		for n := 0; n <= r; n++ {
			if bitIndex240[n] >= 0 {
				want++
			}
		}
		if got := popcnt64(unsetLarger240[r]); got != want {
			t.Fatalf("unsetLarger240[%d] keeps %d bits, want %d", r, got, want)
		}
	}
	if unsetLarger240[bitsieveWindow-1] != ^uint64(0) {
		t.Fatal("unsetLarger240[239] should keep all 64 bits")
	}
}
