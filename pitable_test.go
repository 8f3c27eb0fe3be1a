package primecount

import "testing"

func TestPiTableAgainstGeneratePi(t *testing.T) {
	const limit = 100000
	want := generatePi(limit)
	pt := NewPiTable(limit)
	for k := int64(0); k <= limit; k++ {
		if got := pt.Pi(k); got != int64(want[k]) {
			t.Fatalf("PiTable.Pi(%d) = %d, want %d", k, got, want[k])
		}
	}
}

func TestPiTableTinyLimits(t *testing.T) {
	for limit := int64(0); limit <= 50; limit++ {
		pt := NewPiTable(limit)
		for k := int64(0); k <= limit; k++ {
			if got := pt.Pi(k); got != bruteforcePi(k) {
				t.Fatalf("limit %d: Pi(%d) = %d, want %d", limit, k, got, bruteforcePi(k))
			}
		}
	}
}

func TestSegmentedPiTableWalk(t *testing.T) {
	const limit = 100000
	want := generatePi(limit)
	// A small window forces many segments.
	segPi := NewSegmentedPiTable(limit, 480)
	covered := int64(0)
	for ; !segPi.Finished(); segPi.Next() {
		low, high := segPi.Low(), segPi.High()
		if low != covered {
			t.Fatalf("window starts at %d, expected %d", low, covered)
		}
		for k := low; k < high; k++ {
			if got := segPi.Pi(k); got != int64(want[k]) {
				t.Fatalf("SegmentedPiTable.Pi(%d) = %d, want %d", k, got, want[k])
			}
		}
		covered = high
	}
	if covered != limit+1 {
		t.Fatalf("windows covered [0, %d), want [0, %d)", covered, limit+1)
	}
}

func TestSegmentedPiTableSingleWindow(t *testing.T) {
	const limit = 5000
	want := generatePi(limit)
	segPi := NewSegmentedPiTable(limit, limit+1)
	if segPi.Finished() {
		t.Fatal("first window must be ready after construction")
	}
	for k := int64(0); k <= limit; k++ {
		if got := segPi.Pi(k); got != int64(want[k]) {
			t.Fatalf("Pi(%d) = %d, want %d", k, got, want[k])
		}
	}
	segPi.Next()
	if !segPi.Finished() {
		t.Fatal("expected a single window")
	}
}
