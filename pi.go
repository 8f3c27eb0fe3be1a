package primecount

import (
	"errors"
	"fmt"
	"runtime"
)

// MaxX is the largest supported input. Above it the intermediate
// products of the fast 64-bit paths are no longer guaranteed to fit.
const MaxX = int64(1e18)

// ErrOutOfRange reports an input outside [0, MaxX].
var ErrOutOfRange = errors.New("input out of range")

// Algorithm selects a prime-counting implementation. All algorithms
// return the same pi(x); they differ in speed and memory.
type Algorithm int

const (
	AlgoAuto Algorithm = iota
	AlgoLegendre
	AlgoMeissel
	AlgoLehmer
	AlgoLMO
	AlgoDelegliseRivat1
	AlgoDelegliseRivat
	AlgoDelegliseRivatWide
	AlgoGourdon
)

func (a Algorithm) String() string {
	switch a {
	case AlgoAuto:
		return "auto"
	case AlgoLegendre:
		return "legendre"
	case AlgoMeissel:
		return "meissel"
	case AlgoLehmer:
		return "lehmer"
	case AlgoLMO:
		return "lmo"
	case AlgoDelegliseRivat1:
		return "deleglise_rivat1"
	case AlgoDelegliseRivat:
		return "deleglise_rivat"
	case AlgoDelegliseRivatWide:
		return "deleglise_rivat_wide"
	case AlgoGourdon:
		return "gourdon"
	}
	return "unknown"
}

// ParseAlgorithm maps a name to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range []Algorithm{
		AlgoAuto, AlgoLegendre, AlgoMeissel, AlgoLehmer, AlgoLMO,
		AlgoDelegliseRivat1, AlgoDelegliseRivat, AlgoDelegliseRivatWide,
		AlgoGourdon,
	} {
		if a.String() == name {
			return a, nil
		}
	}
	return AlgoAuto, fmt.Errorf("unknown algorithm %q", name)
}

// Pi returns the number of primes <= x. threads <= 0 selects the
// hardware thread count.
func Pi(x int64, threads int) (int64, error) {
	return PiAlgo(x, AlgoAuto, threads)
}

// PiAlgo computes pi(x) with the selected algorithm.
func PiAlgo(x int64, algo Algorithm, threads int) (int64, error) {
	if x < 0 || x > MaxX {
		return 0, fmt.Errorf("%w: pi(%d), supported domain is [0, %d]", ErrOutOfRange, x, MaxX)
	}
	switch algo {
	case AlgoLegendre:
		return PiLegendre(x, threads), nil
	case AlgoMeissel:
		return PiMeissel(x, threads), nil
	case AlgoLehmer:
		return PiLehmer(x, threads), nil
	case AlgoLMO:
		return PiLMO(x, threads), nil
	case AlgoDelegliseRivat1:
		return PiDelegliseRivat1(x), nil
	case AlgoDelegliseRivat:
		return PiDelegliseRivat(x, threads), nil
	case AlgoDelegliseRivatWide:
		return PiDelegliseRivatWide(x, threads), nil
	case AlgoGourdon:
		return PiGourdon(x, threads), nil
	}
	// Auto: the parallel Deleglise-Rivat path, promoted to the wide
	// variant when the segment products approach 64 bits.
	if x > int64(1e15) {
		return PiDelegliseRivatWide(x, threads), nil
	}
	return PiDelegliseRivat(x, threads), nil
}

// piNoPrint backs the phi escape hatch. It must not print and, for
// a > pi(sqrt(x)), must not call back into phi with a large a; the
// Deleglise-Rivat path only uses phi through PhiTiny.
func piNoPrint(x int64, threads int) int64 {
	restore := isPrint()
	SetPrint(false)
	defer SetPrint(restore)
	return PiDelegliseRivat(x, threads)
}

// idealNumThreads limits the worker count so tiny inputs stay on one
// goroutine: below the threshold the spawn cost dominates the work.
func idealNumThreads(threads int, x int64, threshold int64) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	ideal := max(x/threshold, 1)
	if int64(threads) > ideal {
		threads = int(ideal)
	}
	return max(threads, 1)
}
